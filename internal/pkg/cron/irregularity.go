package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/department"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/employee"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/punchlog"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/schedule"
	"github.com/qrmesai/qrmesai-backend-go/internal/timesheet"
)

// IrregularityJobs summarizes yesterday's schedule deviations into the
// application log once a day, so operators see data-quality drift without
// opening the report page.
type IrregularityJobs struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	scheduleRepo   schedule.WorkScheduleRepository
	punchRepo      punchlog.PunchLogRepository
}

func NewIrregularityJobs(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	scheduleRepo schedule.WorkScheduleRepository,
	punchRepo punchlog.PunchLogRepository,
) *IrregularityJobs {
	return &IrregularityJobs{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		scheduleRepo:   scheduleRepo,
		punchRepo:      punchRepo,
	}
}

func (j *IrregularityJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddDailyJob("daily_irregularity_summary", 0, j.DailyIrregularitySummary)
}

func (j *IrregularityJobs) DailyIrregularitySummary(ctx context.Context) error {
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	employees, err := j.employeeRepo.List(ctx)
	if err != nil {
		return err
	}
	departments, err := j.departmentRepo.List(ctx)
	if err != nil {
		return err
	}
	schedules, err := j.scheduleRepo.List(ctx)
	if err != nil {
		return err
	}
	events, err := j.punchRepo.ListRange(ctx, yesterday, yesterday)
	if err != nil {
		return err
	}

	records := timesheet.BuildRosterReport(timesheet.RosterInput{
		Employees:   employees,
		Events:      events,
		Departments: departments,
		Schedules:   schedules,
	})

	byDepartment := make(map[string]int)
	for _, rec := range records {
		name := "-"
		if rec.DepartmentName != nil {
			name = *rec.DepartmentName
		}
		byDepartment[name]++
	}

	slog.Info("Cron: daily irregularity summary",
		"date", yesterday,
		"total", len(records),
		"by_department", byDepartment,
	)
	return nil
}
