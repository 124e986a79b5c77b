package timesheet

import (
	"time"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/department"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/employee"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/punchlog"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/report"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/schedule"
)

// RosterInput is the full snapshot the roster report is built from.
// Schedules is keyed by department id. Now is optional and forwarded to the
// classifier.
type RosterInput struct {
	Employees   []employee.Employee
	Events      []punchlog.PunchEvent
	Departments []department.Department
	Schedules   map[string]schedule.WorkSchedule
	Now         func() time.Time
}

// BuildRosterReport runs the classifier once per employee and concatenates
// the results. Employees without a department assignment, or whose
// department has no schedule configured, are silently skipped: a missing
// schedule is a configuration gap, not this engine's error to report.
// Per-employee computations are independent; order follows the roster.
func BuildRosterReport(in RosterInput) []report.Irregularity {
	deptNames := make(map[string]string, len(in.Departments))
	for _, d := range in.Departments {
		deptNames[d.ID] = d.Name
	}

	combined := []report.Irregularity{}
	for _, emp := range in.Employees {
		if emp.DepartmentID == nil {
			continue
		}
		sched, ok := in.Schedules[*emp.DepartmentID]
		if !ok {
			continue
		}

		opts := ClassifyOptions{
			EmployeeName: emp.Name,
			Now:          in.Now,
		}
		if name, ok := deptNames[*emp.DepartmentID]; ok {
			opts.DepartmentName = &name
		}

		events := Filter(in.Events, punchlog.ListPunchesFilter{EmployeeID: emp.ID})
		combined = append(combined, Identify(events, sched, opts)...)
	}
	return combined
}

// FilterReport narrows a combined report by department display name and by
// a set of irregularity types. Nil or empty arguments apply no constraint.
func FilterReport(records []report.Irregularity, departmentName string, types []report.IrregularityType) []report.Irregularity {
	wanted := make(map[report.IrregularityType]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	filtered := make([]report.Irregularity, 0, len(records))
	for _, rec := range records {
		if departmentName != "" {
			if rec.DepartmentName == nil || *rec.DepartmentName != departmentName {
				continue
			}
		}
		if len(wanted) > 0 && !wanted[rec.Type] {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}
