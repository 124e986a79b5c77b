package punchlog

import "context"

// PunchLogService defines business logic for recording and browsing punches.
type PunchLogService interface {
	// Record stores one punch for the authenticated employee, stamping the
	// server-side date and time.
	Record(ctx context.Context, req RecordPunchRequest) (PunchResponse, error)

	// GetMyPunches lists the authenticated employee's own events narrowed by
	// the filter.
	GetMyPunches(ctx context.Context, filter ListPunchesFilter) (ListPunchesResponse, error)

	// ListPunches lists events across the roster (admin only).
	ListPunches(ctx context.Context, filter ListPunchesFilter) (ListPunchesResponse, error)

	// GetMyStatus returns the employee's latest event, used by the scan page
	// to show "you checked in at 09:02".
	GetMyStatus(ctx context.Context) (PunchResponse, error)

	// Delete removes a bad punch row (admin only).
	Delete(ctx context.Context, id string) error
}
