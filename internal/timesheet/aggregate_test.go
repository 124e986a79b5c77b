package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/punchlog"
)

func ev(employeeID, date, timeStr string, kind punchlog.Kind) punchlog.PunchEvent {
	return punchlog.PunchEvent{
		EmployeeID: employeeID,
		Date:       date,
		Time:       timeStr,
		Kind:       kind,
	}
}

func TestDailyWorkHours_SimpleDay(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-02", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-02", "17:00", punchlog.KindCheckOut),
	}

	got := DailyWorkHours(events)

	assert.Equal(t, map[string]string{"2025-06-02": "8 saat 0 dakika"}, got)
}

func TestDailyWorkHours_LunchExcluded(t *testing.T) {
	// 09:00-12:00 and 13:00-18:00 are worked; the hour in between is lunch.
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-02", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-02", "12:00", punchlog.KindLunchStart),
		ev("e1", "2025-06-02", "13:00", punchlog.KindLunchEnd),
		ev("e1", "2025-06-02", "13:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-02", "18:00", punchlog.KindCheckOut),
	}

	got := DailyWorkHours(events)

	assert.Equal(t, "8 saat 0 dakika", got["2025-06-02"])
}

func TestDailyWorkHours_LunchEndDoesNotResumeClock(t *testing.T) {
	// No check-in after lunch-end: the afternoon is not counted.
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-02", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-02", "12:00", punchlog.KindLunchStart),
		ev("e1", "2025-06-02", "13:00", punchlog.KindLunchEnd),
		ev("e1", "2025-06-02", "18:00", punchlog.KindCheckOut),
	}

	got := DailyWorkHours(events)

	assert.Equal(t, "3 saat 0 dakika", got["2025-06-02"])
}

func TestDailyWorkHours_MissingCheckoutUncounted(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-02", "09:00", punchlog.KindCheckIn),
	}

	got := DailyWorkHours(events)

	assert.Equal(t, Uncalculated, got["2025-06-02"])
}

func TestDailyWorkHours_OrphanEventsIgnored(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-02", "12:00", punchlog.KindLunchStart),
		ev("e1", "2025-06-02", "13:00", punchlog.KindLunchEnd),
		ev("e1", "2025-06-02", "17:00", punchlog.KindCheckOut),
	}

	got := DailyWorkHours(events)

	assert.Equal(t, Uncalculated, got["2025-06-02"])
}

func TestDailyWorkHours_SecondCheckInRestartsSegment(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-02", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-02", "10:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-02", "17:00", punchlog.KindCheckOut),
	}

	got := DailyWorkHours(events)

	assert.Equal(t, "7 saat 0 dakika", got["2025-06-02"])
}

func TestDailyWorkHours_CheckInDuringLunchIgnored(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-02", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-02", "12:00", punchlog.KindLunchStart),
		ev("e1", "2025-06-02", "12:30", punchlog.KindCheckIn),
		ev("e1", "2025-06-02", "17:00", punchlog.KindCheckOut),
	}

	got := DailyWorkHours(events)

	// Only the morning segment counts: the 12:30 check-in happened while
	// still on break and the break never ended.
	assert.Equal(t, "3 saat 0 dakika", got["2025-06-02"])
}

func TestDailyWorkHours_IdempotentUnderReordering(t *testing.T) {
	ordered := []punchlog.PunchEvent{
		ev("e1", "2025-06-02", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-02", "12:00", punchlog.KindLunchStart),
		ev("e1", "2025-06-02", "13:00", punchlog.KindLunchEnd),
		ev("e1", "2025-06-02", "13:05", punchlog.KindCheckIn),
		ev("e1", "2025-06-02", "18:00", punchlog.KindCheckOut),
	}
	shuffled := []punchlog.PunchEvent{ordered[4], ordered[1], ordered[3], ordered[0], ordered[2]}

	assert.Equal(t, DailyWorkHours(ordered), DailyWorkHours(shuffled))
}

func TestDailyWorkHours_MultipleDates(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-02", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-02", "17:30", punchlog.KindCheckOut),
		ev("e1", "2025-06-03", "09:15", punchlog.KindCheckIn),
	}

	got := DailyWorkHours(events)

	assert.Len(t, got, 2)
	assert.Equal(t, "8 saat 30 dakika", got["2025-06-02"])
	assert.Equal(t, Uncalculated, got["2025-06-03"])
}

func TestDailyWorkHours_SubHourTotal(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-02", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-02", "09:45", punchlog.KindCheckOut),
	}

	got := DailyWorkHours(events)

	assert.Equal(t, "45 dakika", got["2025-06-02"])
}

func TestDailyWorkHours_SecondsResolution(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-02", "09:00:30", punchlog.KindCheckIn),
		ev("e1", "2025-06-02", "09:02:30", punchlog.KindCheckOut),
	}

	got := DailyWorkHours(events)

	assert.Equal(t, "2 dakika", got["2025-06-02"])
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{-5, "0 dakika"},
		{0, "0 dakika"},
		{45, "45 dakika"},
		{60, "1 saat 0 dakika"},
		{90, "1 saat 30 dakika"},
		{480, "8 saat 0 dakika"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatMinutes(c.minutes), "FormatMinutes(%d)", c.minutes)
	}
}
