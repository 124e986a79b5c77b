package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/punchlog"
)

func TestFilter_AllConstraints(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-01", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-01", "18:00", punchlog.KindCheckOut),
		ev("e2", "2025-06-01", "09:10", punchlog.KindCheckIn),
		ev("e1", "2025-06-02", "09:00", punchlog.KindCheckIn),
		ev("e3", "2025-06-02", "12:00", punchlog.KindLunchStart),
		ev("e1", "2025-06-03", "09:00", punchlog.KindCheckIn),
		ev("e2", "2025-06-03", "17:45", punchlog.KindCheckOut),
		ev("e1", "2025-06-04", "09:05", punchlog.KindCheckIn),
		ev("e3", "2025-06-04", "13:00", punchlog.KindLunchEnd),
		ev("e1", "2025-06-05", "09:00", punchlog.KindCheckIn),
	}

	got := Filter(events, punchlog.ListPunchesFilter{
		EmployeeID: "e1",
		StartDate:  "2025-06-02",
		EndDate:    "2025-06-04",
	})

	want := []punchlog.PunchEvent{
		ev("e1", "2025-06-02", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-03", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-04", "09:05", punchlog.KindCheckIn),
	}
	assert.ElementsMatch(t, want, got)
}

func TestFilter_KindConstraint(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-01", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-01", "18:00", punchlog.KindCheckOut),
	}

	got := Filter(events, punchlog.ListPunchesFilter{EmployeeID: "e1", Kind: "check-out"})

	assert.Len(t, got, 1)
	assert.Equal(t, punchlog.KindCheckOut, got[0].Kind)
}

func TestFilter_AllSentinelAppliesNoKindConstraint(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-01", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-01", "18:00", punchlog.KindCheckOut),
	}

	got := Filter(events, punchlog.ListPunchesFilter{EmployeeID: "e1", Kind: "all"})

	assert.Len(t, got, 2)
}

func TestFilter_NoMatchesIsEmptyNotNil(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-01", "09:00", punchlog.KindCheckIn),
	}

	got := Filter(events, punchlog.ListPunchesFilter{EmployeeID: "nope"})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_InclusiveBounds(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-01", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-02", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-03", "09:00", punchlog.KindCheckIn),
	}

	got := Filter(events, punchlog.ListPunchesFilter{StartDate: "2025-06-01", EndDate: "2025-06-03"})

	assert.Len(t, got, 3)
}
