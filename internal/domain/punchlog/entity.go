package punchlog

import "time"

// Kind is the closed set of punch actions an employee can record.
type Kind string

const (
	KindCheckIn    Kind = "check-in"
	KindCheckOut   Kind = "check-out"
	KindLunchStart Kind = "lunch-start"
	KindLunchEnd   Kind = "lunch-end"
)

var KindValues = []string{
	string(KindCheckIn),
	string(KindCheckOut),
	string(KindLunchStart),
	string(KindLunchEnd),
}

// PunchEvent is a single timestamped attendance action. Date is ISO
// "YYYY-MM-DD" and Time is wall-clock "HH:MM" or "HH:MM:SS", both in the
// department's local time. Duplicates and out-of-order rows are tolerated
// by every consumer; nothing here is assumed sorted.
type PunchEvent struct {
	ID         string
	EmployeeID string
	Date       string
	Time       string
	Kind       Kind
	DeviceInfo *string
	IPAddress  *string
	SelfieURL  *string
	CreatedAt  time.Time

	// DTO
	EmployeeName *string
}
