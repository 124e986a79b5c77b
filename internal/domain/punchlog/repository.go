package punchlog

import "context"

type PunchLogRepository interface {
	Create(ctx context.Context, event PunchEvent) (PunchEvent, error)

	// ListByEmployee returns all events for one employee joined with the
	// employee name, newest date first. Filtering beyond the employee id is
	// done in memory by the timesheet package.
	ListByEmployee(ctx context.Context, employeeID string) ([]PunchEvent, error)

	// ListRange returns all events across the roster whose date falls in the
	// inclusive [start, end] range. Empty bounds mean unbounded.
	ListRange(ctx context.Context, start, end string) ([]PunchEvent, error)

	// LatestByEmployee returns the most recent event for the employee, or
	// ErrPunchNotFound when none exist.
	LatestByEmployee(ctx context.Context, employeeID string) (PunchEvent, error)

	Delete(ctx context.Context, id string) error
}
