package report

import (
	"github.com/qrmesai/qrmesai-backend-go/internal/pkg/validator"
)

type WorkHoursRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *WorkHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.StartDate != "" {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
		}
	}
	if r.EndDate != "" {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// WorkHoursResponse maps each date with punches to a formatted duration, or
// to the "Hesaplanamadı" sentinel when no work segment could be closed.
type WorkHoursResponse struct {
	EmployeeID string            `json:"employee_id"`
	Days       map[string]string `json:"days"`
}

type IrregularityReportRequest struct {
	DepartmentID string   `json:"department_id"`
	Types        []string `json:"types"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
}

func (r *IrregularityReportRequest) Validate() error {
	var errs validator.ValidationErrors

	for _, t := range r.Types {
		if !validator.IsInSlice(t, IrregularityTypeValues) {
			errs = append(errs, validator.ValidationError{Field: "types", Message: "unknown irregularity type: " + t})
		}
	}
	if r.StartDate != "" {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
		}
	}
	if r.EndDate != "" {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type IrregularityReportResponse struct {
	TotalCount     int            `json:"total_count"`
	Irregularities []Irregularity `json:"irregularities"`
}
