package schedule

import "time"

// WorkSchedule is a department's expected day: four wall-clock "HH:MM"
// strings, department-local. The workStart < lunchStart < lunchEnd < workEnd
// ordering is the admin's responsibility; consumers tolerate malformed
// schedules and simply produce degenerate durations.
type WorkSchedule struct {
	ID           string
	DepartmentID string
	WorkStart    string
	WorkEnd      string
	LunchStart   string
	LunchEnd     string
	UpdatedAt    time.Time
}

// Complete reports whether all four times are present. The irregularity
// classifier refuses to run against a partial schedule.
func (s WorkSchedule) Complete() bool {
	return s.WorkStart != "" && s.WorkEnd != "" && s.LunchStart != "" && s.LunchEnd != ""
}
