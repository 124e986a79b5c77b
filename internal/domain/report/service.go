package report

import "context"

// ExportFormat selects the file format for report downloads.
type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportPDF  ExportFormat = "pdf"
)

// ReportService builds the admin-facing views over punch logs: per-day work
// hours for one employee, and the roster-wide irregularity report.
type ReportService interface {
	WorkHours(ctx context.Context, req WorkHoursRequest) (WorkHoursResponse, error)
	Irregularities(ctx context.Context, req IrregularityReportRequest) (IrregularityReportResponse, error)

	// Export renders the irregularity report as a downloadable file and
	// returns the content together with a suggested filename.
	Export(ctx context.Context, req IrregularityReportRequest, format ExportFormat) ([]byte, string, error)
}
