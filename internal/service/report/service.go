package report

import (
	"context"
	"fmt"
	"time"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/department"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/employee"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/punchlog"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/report"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/schedule"
	"github.com/qrmesai/qrmesai-backend-go/internal/timesheet"
)

type ReportServiceImpl struct {
	employee.EmployeeRepository
	department.DepartmentRepository
	schedule.WorkScheduleRepository
	punchlog.PunchLogRepository
	now func() time.Time
}

func NewReportService(
	employeeRepository employee.EmployeeRepository,
	departmentRepository department.DepartmentRepository,
	scheduleRepository schedule.WorkScheduleRepository,
	punchRepository punchlog.PunchLogRepository,
) report.ReportService {
	return &ReportServiceImpl{
		EmployeeRepository:     employeeRepository,
		DepartmentRepository:   departmentRepository,
		WorkScheduleRepository: scheduleRepository,
		PunchLogRepository:     punchRepository,
		now:                    time.Now,
	}
}

// WorkHours implements report.ReportService.
func (s *ReportServiceImpl) WorkHours(ctx context.Context, req report.WorkHoursRequest) (report.WorkHoursResponse, error) {
	if err := req.Validate(); err != nil {
		return report.WorkHoursResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return report.WorkHoursResponse{}, err
	}

	events, err := s.PunchLogRepository.ListByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return report.WorkHoursResponse{}, err
	}

	filtered := timesheet.Filter(events, punchlog.ListPunchesFilter{
		EmployeeID: req.EmployeeID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})

	return report.WorkHoursResponse{
		EmployeeID: req.EmployeeID,
		Days:       timesheet.DailyWorkHours(filtered),
	}, nil
}

// Irregularities implements report.ReportService.
func (s *ReportServiceImpl) Irregularities(ctx context.Context, req report.IrregularityReportRequest) (report.IrregularityReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.IrregularityReportResponse{}, err
	}

	records, err := s.buildReport(ctx, req)
	if err != nil {
		return report.IrregularityReportResponse{}, err
	}

	return report.IrregularityReportResponse{
		TotalCount:     len(records),
		Irregularities: records,
	}, nil
}

func (s *ReportServiceImpl) buildReport(ctx context.Context, req report.IrregularityReportRequest) ([]report.Irregularity, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	// Narrowing by department here keeps the per-employee classification
	// from running over rosters the caller never asked about.
	if req.DepartmentID != "" {
		if _, err := s.DepartmentRepository.GetByID(ctx, req.DepartmentID); err != nil {
			return nil, err
		}
		narrowed := employees[:0]
		for _, emp := range employees {
			if emp.DepartmentID != nil && *emp.DepartmentID == req.DepartmentID {
				narrowed = append(narrowed, emp)
			}
		}
		employees = narrowed
	}

	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load departments: %w", err)
	}

	schedules, err := s.WorkScheduleRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules: %w", err)
	}

	events, err := s.PunchLogRepository.ListRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load punch logs: %w", err)
	}

	records := timesheet.BuildRosterReport(timesheet.RosterInput{
		Employees:   employees,
		Events:      events,
		Departments: departments,
		Schedules:   schedules,
		Now:         s.now,
	})

	types := make([]report.IrregularityType, 0, len(req.Types))
	for _, t := range req.Types {
		types = append(types, report.IrregularityType(t))
	}
	return timesheet.FilterReport(records, "", types), nil
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, req report.IrregularityReportRequest, format report.ExportFormat) ([]byte, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	records, err := s.buildReport(ctx, req)
	if err != nil {
		return nil, "", err
	}

	stamp := s.now().Format("2006-01-02")
	switch format {
	case report.ExportXLSX:
		content, err := renderXLSX(records)
		if err != nil {
			return nil, "", err
		}
		return content, fmt.Sprintf("mesai-duzensizlik-raporu-%s.xlsx", stamp), nil
	case report.ExportPDF:
		content, err := renderPDF(records)
		if err != nil {
			return nil, "", err
		}
		return content, fmt.Sprintf("mesai-duzensizlik-raporu-%s.pdf", stamp), nil
	default:
		return nil, "", report.ErrUnsupportedExportFormat
	}
}
