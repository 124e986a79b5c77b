package timesheet

import (
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/punchlog"
)

// Filter returns the subsequence of events matching every constraint set on
// the filter. Zero values ("" and the "all" kind sentinel) apply no
// constraint for their dimension. Date bounds are inclusive; plain string
// comparison is correct because dates are zero-padded ISO. Never fails; no
// matches yields an empty slice.
func Filter(events []punchlog.PunchEvent, f punchlog.ListPunchesFilter) []punchlog.PunchEvent {
	filtered := make([]punchlog.PunchEvent, 0, len(events))
	for _, ev := range events {
		if f.EmployeeID != "" && ev.EmployeeID != f.EmployeeID {
			continue
		}
		if f.StartDate != "" && ev.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && ev.Date > f.EndDate {
			continue
		}
		if f.Kind != "" && f.Kind != "all" && string(ev.Kind) != f.Kind {
			continue
		}
		filtered = append(filtered, ev)
	}
	return filtered
}
