package punchlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/punchlog"
	"github.com/qrmesai/qrmesai-backend-go/internal/service/file"
	"github.com/qrmesai/qrmesai-backend-go/internal/timesheet"
)

type PunchLogServiceImpl struct {
	punchlog.PunchLogRepository
	fileService file.FileService
	now         func() time.Time
}

func NewPunchLogService(punchRepository punchlog.PunchLogRepository, fileService file.FileService) punchlog.PunchLogService {
	return &PunchLogServiceImpl{
		PunchLogRepository: punchRepository,
		fileService:        fileService,
		now:                time.Now,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read token claims: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("token has no employee_id claim")
	}
	return employeeID, nil
}

// Record implements punchlog.PunchLogService.
func (s *PunchLogServiceImpl) Record(ctx context.Context, req punchlog.RecordPunchRequest) (punchlog.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punchlog.PunchResponse{}, err
	}

	now := s.now()
	event := punchlog.PunchEvent{
		EmployeeID: req.EmployeeID,
		Date:       now.Format("2006-01-02"),
		Time:       now.Format("15:04:05"),
		Kind:       punchlog.Kind(req.Kind),
	}
	if req.DeviceInfo != "" {
		event.DeviceInfo = &req.DeviceInfo
	}
	if req.IPAddress != "" {
		event.IPAddress = &req.IPAddress
	}

	latest, err := s.PunchLogRepository.LatestByEmployee(ctx, req.EmployeeID)
	switch {
	case err == nil:
		if latest.Date == event.Date && latest.Kind == event.Kind && sameMinute(latest.Time, event.Time) {
			return punchlog.PunchResponse{}, punchlog.ErrDuplicatePunch
		}
	case errors.Is(err, punchlog.ErrPunchNotFound):
		// First punch for this employee, nothing to compare against.
	default:
		return punchlog.PunchResponse{}, fmt.Errorf("failed to check latest punch: %w", err)
	}

	if req.File != nil && req.FileHeader != nil {
		selfiePath, err := s.fileService.UploadPunchSelfie(ctx, req.EmployeeID, event.Date, req.File, req.FileHeader.Filename)
		if err != nil {
			return punchlog.PunchResponse{}, err
		}
		event.SelfieURL = &selfiePath
	}

	created, err := s.PunchLogRepository.Create(ctx, event)
	if err != nil {
		return punchlog.PunchResponse{}, err
	}

	return s.toResponse(ctx, created), nil
}

// GetMyPunches implements punchlog.PunchLogService.
func (s *PunchLogServiceImpl) GetMyPunches(ctx context.Context, filter punchlog.ListPunchesFilter) (punchlog.ListPunchesResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return punchlog.ListPunchesResponse{}, err
	}

	if err := filter.Validate(); err != nil {
		return punchlog.ListPunchesResponse{}, err
	}

	events, err := s.PunchLogRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return punchlog.ListPunchesResponse{}, err
	}

	filter.EmployeeID = employeeID
	filtered := timesheet.Filter(events, filter)
	return s.toListResponse(ctx, filtered), nil
}

// ListPunches implements punchlog.PunchLogService.
func (s *PunchLogServiceImpl) ListPunches(ctx context.Context, filter punchlog.ListPunchesFilter) (punchlog.ListPunchesResponse, error) {
	if err := filter.Validate(); err != nil {
		return punchlog.ListPunchesResponse{}, err
	}

	events, err := s.PunchLogRepository.ListRange(ctx, filter.StartDate, filter.EndDate)
	if err != nil {
		return punchlog.ListPunchesResponse{}, err
	}

	filtered := timesheet.Filter(events, filter)
	return s.toListResponse(ctx, filtered), nil
}

// GetMyStatus implements punchlog.PunchLogService.
func (s *PunchLogServiceImpl) GetMyStatus(ctx context.Context) (punchlog.PunchResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return punchlog.PunchResponse{}, err
	}

	latest, err := s.PunchLogRepository.LatestByEmployee(ctx, employeeID)
	if err != nil {
		return punchlog.PunchResponse{}, err
	}

	return s.toResponse(ctx, latest), nil
}

// Delete implements punchlog.PunchLogService.
func (s *PunchLogServiceImpl) Delete(ctx context.Context, id string) error {
	return s.PunchLogRepository.Delete(ctx, id)
}

// sameMinute compares "HH:MM" or "HH:MM:SS" strings at minute resolution.
func sameMinute(a, b string) bool {
	if len(a) > 5 {
		a = a[:5]
	}
	if len(b) > 5 {
		b = b[:5]
	}
	return a == b
}

func (s *PunchLogServiceImpl) toResponse(ctx context.Context, event punchlog.PunchEvent) punchlog.PunchResponse {
	resp := punchlog.PunchResponse{
		ID:           event.ID,
		EmployeeID:   event.EmployeeID,
		EmployeeName: event.EmployeeName,
		Date:         event.Date,
		Time:         event.Time,
		Kind:         string(event.Kind),
		DeviceInfo:   event.DeviceInfo,
		IPAddress:    event.IPAddress,
		SelfieURL:    event.SelfieURL,
		CreatedAt:    event.CreatedAt.Format(time.RFC3339),
	}
	if event.SelfieURL != nil {
		if url, err := s.fileService.GetFileURL(ctx, *event.SelfieURL); err == nil {
			resp.SelfieURL = &url
		}
	}
	return resp
}

func (s *PunchLogServiceImpl) toListResponse(ctx context.Context, events []punchlog.PunchEvent) punchlog.ListPunchesResponse {
	punches := make([]punchlog.PunchResponse, 0, len(events))
	for _, event := range events {
		punches = append(punches, s.toResponse(ctx, event))
	}
	return punchlog.ListPunchesResponse{
		TotalCount: len(punches),
		Punches:    punches,
	}
}
