package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/report"
	"github.com/qrmesai/qrmesai-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetWorkHours(w http.ResponseWriter, r *http.Request)
	GetIrregularities(w http.ResponseWriter, r *http.Request)
	ExportIrregularities(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// GetWorkHours implements ReportHandler.
func (h *reportHandlerImpl) GetWorkHours(w http.ResponseWriter, r *http.Request) {
	req := report.WorkHoursRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	result, err := h.reportService.WorkHours(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func irregularityRequestFromQuery(r *http.Request) report.IrregularityReportRequest {
	req := report.IrregularityReportRequest{
		DepartmentID: r.URL.Query().Get("department_id"),
		StartDate:    r.URL.Query().Get("start_date"),
		EndDate:      r.URL.Query().Get("end_date"),
	}
	if raw := r.URL.Query().Get("types"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				req.Types = append(req.Types, t)
			}
		}
	}
	return req
}

// GetIrregularities implements ReportHandler.
func (h *reportHandlerImpl) GetIrregularities(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Irregularities(r.Context(), irregularityRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportIrregularities implements ReportHandler.
func (h *reportHandlerImpl) ExportIrregularities(w http.ResponseWriter, r *http.Request) {
	format := report.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = report.ExportXLSX
	}

	content, filename, err := h.reportService.Export(r.Context(), irregularityRequestFromQuery(r), format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if format == report.ExportPDF {
		contentType = "application/pdf"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
