package punchlog

import (
	"mime/multipart"

	"github.com/qrmesai/qrmesai-backend-go/internal/pkg/validator"
)

// RecordPunchRequest carries one decoded QR punch. The client sends the kind
// it decoded from the QR payload; date, time, device info and IP are filled
// in server-side.
type RecordPunchRequest struct {
	Kind string `json:"kind"`

	// Filled by the handler, never trusted from the body.
	EmployeeID string `json:"-"`
	DeviceInfo string `json:"-"`
	IPAddress  string `json:"-"`

	// Optional selfie proof from the multipart form.
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *RecordPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Kind, KindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of check-in, check-out, lunch-start, lunch-end",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListPunchesFilter narrows a log listing. Zero values mean "no constraint";
// the date bounds are inclusive ISO dates.
type ListPunchesFilter struct {
	EmployeeID string
	StartDate  string
	EndDate    string
	Kind       string
}

func (f *ListPunchesFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != "" {
		if _, ok := validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
		}
	}
	if f.EndDate != "" {
		if _, ok := validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
		}
	}
	if f.Kind != "" && f.Kind != "all" && !validator.IsInSlice(f.Kind, KindValues) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "unknown punch kind"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Kind         string  `json:"kind"`
	DeviceInfo   *string `json:"device_info,omitempty"`
	IPAddress    *string `json:"ip_address,omitempty"`
	SelfieURL    *string `json:"selfie_url,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type ListPunchesResponse struct {
	TotalCount int             `json:"total_count"`
	Punches    []PunchResponse `json:"punches"`
}
