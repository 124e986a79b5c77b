package schedule

import (
	"context"
	"time"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/department"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/schedule"
)

type WorkScheduleServiceImpl struct {
	schedule.WorkScheduleRepository
	department.DepartmentRepository
}

func NewWorkScheduleService(scheduleRepository schedule.WorkScheduleRepository, departmentRepository department.DepartmentRepository) schedule.WorkScheduleService {
	return &WorkScheduleServiceImpl{
		WorkScheduleRepository: scheduleRepository,
		DepartmentRepository:   departmentRepository,
	}
}

// Upsert implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) Upsert(ctx context.Context, req schedule.UpsertScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	if _, err := s.DepartmentRepository.GetByID(ctx, req.DepartmentID); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	saved, err := s.WorkScheduleRepository.Upsert(ctx, schedule.WorkSchedule{
		DepartmentID: req.DepartmentID,
		WorkStart:    req.WorkStart,
		WorkEnd:      req.WorkEnd,
		LunchStart:   req.LunchStart,
		LunchEnd:     req.LunchEnd,
	})
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return toResponse(saved), nil
}

// GetByDepartment implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) GetByDepartment(ctx context.Context, departmentID string) (schedule.ScheduleResponse, error) {
	sched, err := s.WorkScheduleRepository.GetByDepartment(ctx, departmentID)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return toResponse(sched), nil
}

// List implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) List(ctx context.Context) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.WorkScheduleRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, sched := range schedules {
		responses = append(responses, toResponse(sched))
	}
	return responses, nil
}

// Delete implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) Delete(ctx context.Context, departmentID string) error {
	return s.WorkScheduleRepository.Delete(ctx, departmentID)
}

func toResponse(sched schedule.WorkSchedule) schedule.ScheduleResponse {
	return schedule.ScheduleResponse{
		ID:           sched.ID,
		DepartmentID: sched.DepartmentID,
		WorkStart:    sched.WorkStart,
		WorkEnd:      sched.WorkEnd,
		LunchStart:   sched.LunchStart,
		LunchEnd:     sched.LunchEnd,
		UpdatedAt:    sched.UpdatedAt.Format(time.RFC3339),
	}
}
