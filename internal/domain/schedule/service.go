package schedule

import "context"

// WorkScheduleService defines business logic for per-department schedules.
type WorkScheduleService interface {
	Upsert(ctx context.Context, req UpsertScheduleRequest) (ScheduleResponse, error)
	GetByDepartment(ctx context.Context, departmentID string) (ScheduleResponse, error)
	List(ctx context.Context) ([]ScheduleResponse, error)
	Delete(ctx context.Context, departmentID string) error
}
