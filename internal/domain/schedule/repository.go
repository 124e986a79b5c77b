package schedule

import "context"

type WorkScheduleRepository interface {
	// Upsert creates or replaces the schedule for its department.
	Upsert(ctx context.Context, sched WorkSchedule) (WorkSchedule, error)

	// GetByDepartment returns ErrScheduleNotFound when the department has no
	// schedule configured.
	GetByDepartment(ctx context.Context, departmentID string) (WorkSchedule, error)

	// List returns every configured schedule keyed by department id.
	List(ctx context.Context) (map[string]WorkSchedule, error)

	Delete(ctx context.Context, departmentID string) error
}
