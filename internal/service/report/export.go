package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/report"
)

var exportColumns = []string{
	"Çalışan", "Departman", "Tarih", "Düzensizlik", "Detay",
	"Beklenen", "Gerçekleşen", "Beklenen Süre", "Süre",
}

func exportRow(rec report.Irregularity) []string {
	return []string{
		rec.EmployeeName,
		strOrDash(rec.DepartmentName),
		rec.Date,
		string(rec.Type),
		rec.Details,
		strOrDash(rec.Expected),
		strOrDash(rec.Actual),
		strOrDash(rec.ExpectedDuration),
		strOrDash(rec.Duration),
	}
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func renderXLSX(records []report.Irregularity) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Rapor"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build header style: %w", err)
	}

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header: %w", err)
		}
	}

	for r, rec := range records {
		for c, value := range exportRow(rec) {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", r+1, err)
			}
		}
	}

	widths := []float64{22, 18, 12, 22, 48, 12, 12, 16, 16}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func renderPDF(records []report.Irregularity) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	translate := pdf.UnicodeTranslatorFromDescriptor("cp1254")
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, translate("Mesai Düzensizlik Raporu"))
	pdf.Ln(12)

	colWidths := []float64{38, 30, 22, 36, 70, 20, 20, 22, 22}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(221, 235, 247)
	for i, col := range exportColumns {
		pdf.CellFormat(colWidths[i], 7, translate(col), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, rec := range records {
		for i, value := range exportRow(rec) {
			pdf.CellFormat(colWidths[i], 6, translate(value), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(records) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 8, translate("Seçilen aralıkta düzensizlik bulunamadı."))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
