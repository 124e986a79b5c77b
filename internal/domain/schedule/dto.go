package schedule

import "github.com/qrmesai/qrmesai-backend-go/internal/pkg/validator"

type UpsertScheduleRequest struct {
	DepartmentID string `json:"-"`
	WorkStart    string `json:"work_start"`
	WorkEnd      string `json:"work_end"`
	LunchStart   string `json:"lunch_start"`
	LunchEnd     string `json:"lunch_end"`
}

func (r *UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	fields := []struct {
		name  string
		value string
	}{
		{"work_start", r.WorkStart},
		{"work_end", r.WorkEnd},
		{"lunch_start", r.LunchStart},
		{"lunch_end", r.LunchEnd},
	}
	for _, f := range fields {
		if !validator.IsValidClockTime(f.value) {
			errs = append(errs, validator.ValidationError{
				Field:   f.name,
				Message: f.name + " must be in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleResponse struct {
	ID           string `json:"id"`
	DepartmentID string `json:"department_id"`
	WorkStart    string `json:"work_start"`
	WorkEnd      string `json:"work_end"`
	LunchStart   string `json:"lunch_start"`
	LunchEnd     string `json:"lunch_end"`
	UpdatedAt    string `json:"updated_at"`
}
