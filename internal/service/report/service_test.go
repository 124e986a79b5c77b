package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/department"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/employee"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/punchlog"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/report"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/schedule"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error             { return nil }

type fakeDepartmentRepo struct {
	departments []department.Department
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	return dept, nil
}

func (f *fakeDepartmentRepo) GetByID(ctx context.Context, id string) (department.Department, error) {
	for _, dept := range f.departments {
		if dept.ID == id {
			return dept, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (f *fakeDepartmentRepo) List(ctx context.Context) ([]department.Department, error) {
	return f.departments, nil
}

func (f *fakeDepartmentRepo) Update(ctx context.Context, dept department.Department) error {
	return nil
}
func (f *fakeDepartmentRepo) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeDepartmentRepo) CountEmployees(ctx context.Context, id string) (int64, error) {
	return 0, nil
}

type fakeScheduleRepo struct {
	schedules map[string]schedule.WorkSchedule
}

func (f *fakeScheduleRepo) Upsert(ctx context.Context, sched schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	return sched, nil
}

func (f *fakeScheduleRepo) GetByDepartment(ctx context.Context, departmentID string) (schedule.WorkSchedule, error) {
	sched, ok := f.schedules[departmentID]
	if !ok {
		return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
	}
	return sched, nil
}

func (f *fakeScheduleRepo) List(ctx context.Context) (map[string]schedule.WorkSchedule, error) {
	return f.schedules, nil
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, departmentID string) error { return nil }

type fakePunchRepo struct {
	events []punchlog.PunchEvent
}

func (f *fakePunchRepo) Create(ctx context.Context, event punchlog.PunchEvent) (punchlog.PunchEvent, error) {
	return event, nil
}

func (f *fakePunchRepo) ListByEmployee(ctx context.Context, employeeID string) ([]punchlog.PunchEvent, error) {
	var out []punchlog.PunchEvent
	for _, e := range f.events {
		if e.EmployeeID == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) ListRange(ctx context.Context, start, end string) ([]punchlog.PunchEvent, error) {
	var out []punchlog.PunchEvent
	for _, e := range f.events {
		if start != "" && e.Date < start {
			continue
		}
		if end != "" && e.Date > end {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakePunchRepo) LatestByEmployee(ctx context.Context, employeeID string) (punchlog.PunchEvent, error) {
	return punchlog.PunchEvent{}, punchlog.ErrPunchNotFound
}

func (f *fakePunchRepo) Delete(ctx context.Context, id string) error { return nil }

func strPtr(s string) *string { return &s }

func fixtureService() *ReportServiceImpl {
	employees := []employee.Employee{
		{ID: "e1", Name: "Ayşe Yılmaz", Email: "ayse@example.com", DepartmentID: strPtr("d1")},
		{ID: "e2", Name: "Mehmet Demir", Email: "mehmet@example.com", DepartmentID: strPtr("d2")},
	}
	departments := []department.Department{
		{ID: "d1", Name: "Üretim"},
		{ID: "d2", Name: "Satış"},
	}
	schedules := map[string]schedule.WorkSchedule{
		"d1": {ID: "s1", DepartmentID: "d1", WorkStart: "09:00", WorkEnd: "18:00", LunchStart: "12:00", LunchEnd: "13:00"},
		"d2": {ID: "s2", DepartmentID: "d2", WorkStart: "09:00", WorkEnd: "18:00", LunchStart: "12:00", LunchEnd: "13:00"},
	}
	events := []punchlog.PunchEvent{
		// e1: late arrival, on-time departure.
		{ID: "p1", EmployeeID: "e1", Date: "2025-06-10", Time: "09:30", Kind: punchlog.KindCheckIn},
		{ID: "p2", EmployeeID: "e1", Date: "2025-06-10", Time: "12:00", Kind: punchlog.KindLunchStart},
		{ID: "p3", EmployeeID: "e1", Date: "2025-06-10", Time: "13:00", Kind: punchlog.KindLunchEnd},
		{ID: "p4", EmployeeID: "e1", Date: "2025-06-10", Time: "13:00", Kind: punchlog.KindCheckIn},
		{ID: "p5", EmployeeID: "e1", Date: "2025-06-10", Time: "18:00", Kind: punchlog.KindCheckOut},
		// e2: clean day.
		{ID: "p6", EmployeeID: "e2", Date: "2025-06-10", Time: "09:00", Kind: punchlog.KindCheckIn},
		{ID: "p7", EmployeeID: "e2", Date: "2025-06-10", Time: "12:00", Kind: punchlog.KindLunchStart},
		{ID: "p8", EmployeeID: "e2", Date: "2025-06-10", Time: "13:00", Kind: punchlog.KindLunchEnd},
		{ID: "p9", EmployeeID: "e2", Date: "2025-06-10", Time: "13:00", Kind: punchlog.KindCheckIn},
		{ID: "p10", EmployeeID: "e2", Date: "2025-06-10", Time: "18:00", Kind: punchlog.KindCheckOut},
	}

	return &ReportServiceImpl{
		EmployeeRepository:     &fakeEmployeeRepo{employees: employees},
		DepartmentRepository:   &fakeDepartmentRepo{departments: departments},
		WorkScheduleRepository: &fakeScheduleRepo{schedules: schedules},
		PunchLogRepository:     &fakePunchRepo{events: events},
		now: func() time.Time {
			return time.Date(2025, 6, 16, 12, 0, 0, 0, time.Local)
		},
	}
}

func TestWorkHours(t *testing.T) {
	svc := fixtureService()

	resp, err := svc.WorkHours(context.Background(), report.WorkHoursRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	assert.Equal(t, "e1", resp.EmployeeID)
	assert.Equal(t, map[string]string{"2025-06-10": "7 saat 30 dakika"}, resp.Days)
}

func TestWorkHoursUnknownEmployee(t *testing.T) {
	svc := fixtureService()

	_, err := svc.WorkHours(context.Background(), report.WorkHoursRequest{EmployeeID: "ghost"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestIrregularitiesAcrossRoster(t *testing.T) {
	svc := fixtureService()

	resp, err := svc.Irregularities(context.Background(), report.IrregularityReportRequest{})
	require.NoError(t, err)

	// Only the late arrival plus its short workday; e2's day is clean.
	require.Equal(t, 2, resp.TotalCount)
	for _, rec := range resp.Irregularities {
		assert.Equal(t, "e1", rec.EmployeeID)
		assert.Equal(t, "Ayşe Yılmaz", rec.EmployeeName)
	}
}

func TestIrregularitiesNarrowedByDepartment(t *testing.T) {
	svc := fixtureService()

	resp, err := svc.Irregularities(context.Background(), report.IrregularityReportRequest{DepartmentID: "d2"})
	require.NoError(t, err)
	assert.Zero(t, resp.TotalCount)

	_, err = svc.Irregularities(context.Background(), report.IrregularityReportRequest{DepartmentID: "ghost"})
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestIrregularitiesFilteredByType(t *testing.T) {
	svc := fixtureService()

	resp, err := svc.Irregularities(context.Background(), report.IrregularityReportRequest{
		Types: []string{string(report.IrregularityLateArrival)},
	})
	require.NoError(t, err)

	require.Equal(t, 1, resp.TotalCount)
	assert.Equal(t, report.IrregularityLateArrival, resp.Irregularities[0].Type)
}

func TestExportXLSX(t *testing.T) {
	svc := fixtureService()

	content, filename, err := svc.Export(context.Background(), report.IrregularityReportRequest{}, report.ExportXLSX)
	require.NoError(t, err)

	assert.Equal(t, "mesai-duzensizlik-raporu-2025-06-16.xlsx", filename)
	// XLSX files are zip archives.
	require.Greater(t, len(content), 4)
	assert.Equal(t, []byte{'P', 'K'}, content[:2])
}

func TestExportPDF(t *testing.T) {
	svc := fixtureService()

	content, filename, err := svc.Export(context.Background(), report.IrregularityReportRequest{}, report.ExportPDF)
	require.NoError(t, err)

	assert.Equal(t, "mesai-duzensizlik-raporu-2025-06-16.pdf", filename)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestExportUnknownFormat(t *testing.T) {
	svc := fixtureService()

	_, _, err := svc.Export(context.Background(), report.IrregularityReportRequest{}, report.ExportFormat("csv"))
	assert.ErrorIs(t, err, report.ErrUnsupportedExportFormat)
}
