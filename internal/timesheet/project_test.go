package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/department"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/employee"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/punchlog"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/report"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/schedule"
)

func rosterFixture() RosterInput {
	d1 := "d1"
	d2 := "d2"
	return RosterInput{
		Employees: []employee.Employee{
			{ID: "e1", Name: "Ali Kaya", DepartmentID: &d1},
			{ID: "e2", Name: "Ayşe Demir", DepartmentID: &d2}, // d2 has no schedule
			{ID: "e3", Name: "Mehmet Can"},                    // no department
		},
		Events: []punchlog.PunchEvent{
			ev("e1", "2025-06-10", "09:30", punchlog.KindCheckIn),
			ev("e1", "2025-06-10", "18:00", punchlog.KindCheckOut),
			ev("e2", "2025-06-10", "10:00", punchlog.KindCheckIn),
			ev("e3", "2025-06-10", "11:00", punchlog.KindCheckIn),
		},
		Departments: []department.Department{
			{ID: "d1", Name: "Muhasebe"},
			{ID: "d2", Name: "Satış"},
		},
		Schedules: map[string]schedule.WorkSchedule{
			"d1": testSchedule,
		},
		Now: fixedNow,
	}
}

func TestBuildRosterReport_SkipsUnconfiguredEmployees(t *testing.T) {
	got := BuildRosterReport(rosterFixture())

	// Only e1 is classifiable: e2's department has no schedule, e3 has no
	// department. Their irregular days produce nothing rather than errors.
	for _, ir := range got {
		assert.Equal(t, "e1", ir.EmployeeID)
	}
	assert.NotEmpty(t, got)

	late := findByType(t, got, report.IrregularityLateArrival)
	assert.Equal(t, "Ali Kaya", late.EmployeeName)
	assert.Equal(t, "Muhasebe", *late.DepartmentName)
}

func TestFilterReport_ByType(t *testing.T) {
	records := BuildRosterReport(rosterFixture())

	got := FilterReport(records, "", []report.IrregularityType{report.IrregularityLateArrival})

	assert.NotEmpty(t, got)
	for _, ir := range got {
		assert.Equal(t, report.IrregularityLateArrival, ir.Type)
	}
}

func TestFilterReport_ByDepartment(t *testing.T) {
	records := BuildRosterReport(rosterFixture())

	assert.Equal(t, records, FilterReport(records, "Muhasebe", nil))
	assert.Empty(t, FilterReport(records, "Satış", nil))
}

func TestFilterReport_EmptyTypeSetMeansAll(t *testing.T) {
	records := BuildRosterReport(rosterFixture())

	assert.Equal(t, records, FilterReport(records, "", nil))
	assert.Equal(t, records, FilterReport(records, "", []report.IrregularityType{}))
}
