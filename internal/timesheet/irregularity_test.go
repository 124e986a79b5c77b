package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/punchlog"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/report"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/schedule"
)

var testSchedule = schedule.WorkSchedule{
	DepartmentID: "d1",
	WorkStart:    "09:00",
	WorkEnd:      "18:00",
	LunchStart:   "12:00",
	LunchEnd:     "13:00",
}

// fixedNow pins "today" to 2025-06-16 19:00 local time.
func fixedNow() time.Time {
	return time.Date(2025, 6, 16, 19, 0, 0, 0, time.Local)
}

func testOpts() ClassifyOptions {
	return ClassifyOptions{Now: fixedNow}
}

func typesOf(records []report.Irregularity) []report.IrregularityType {
	types := make([]report.IrregularityType, 0, len(records))
	for _, r := range records {
		types = append(types, r.Type)
	}
	return types
}

func findByType(t *testing.T, records []report.Irregularity, typ report.IrregularityType) report.Irregularity {
	t.Helper()
	for _, r := range records {
		if r.Type == typ {
			return r
		}
	}
	t.Fatalf("no irregularity of type %q in %v", typ, typesOf(records))
	return report.Irregularity{}
}

func TestIdentify_IncompleteScheduleYieldsNothing(t *testing.T) {
	sched := testSchedule
	sched.LunchEnd = ""

	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-10", "11:30", punchlog.KindCheckIn),
	}

	got := Identify(events, sched, testOpts())

	assert.Empty(t, got)
}

func TestIdentify_OnTimeFullDayIsClean(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-10", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-10", "12:00", punchlog.KindLunchStart),
		ev("e1", "2025-06-10", "13:00", punchlog.KindLunchEnd),
		ev("e1", "2025-06-10", "18:00", punchlog.KindCheckOut),
	}

	got := Identify(events, testSchedule, testOpts())

	assert.Empty(t, got)
}

func TestIdentify_EarlyDepartureBoundary(t *testing.T) {
	// 09:00-17:00 with no lunch punches: worked 480 = expected (540-60),
	// so the day is NOT short; only the early departure is flagged.
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-10", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-10", "17:00", punchlog.KindCheckOut),
	}

	got := Identify(events, testSchedule, testOpts())

	require.Len(t, got, 1)
	assert.Equal(t, report.IrregularityEarlyDeparture, got[0].Type)
	assert.Equal(t, "18:00", *got[0].Expected)
	assert.Equal(t, "17:00", *got[0].Actual)
}

func TestIdentify_LateArrival(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-10", "09:20", punchlog.KindCheckIn),
		ev("e1", "2025-06-10", "18:00", punchlog.KindCheckOut),
	}

	got := Identify(events, testSchedule, testOpts())

	late := findByType(t, got, report.IrregularityLateArrival)
	assert.Equal(t, "09:00", *late.Expected)
	assert.Equal(t, "09:20", *late.Actual)
	assert.Equal(t, "Beklenen 09:00 yerine 09:20 giriş yapıldı.", late.Details)

	// 09:20-18:00 is 520 min, above the 480 expected: not short.
	assert.Equal(t, []report.IrregularityType{report.IrregularityLateArrival}, typesOf(got))
}

func TestIdentify_MissingCheckoutPastDate(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-10", "09:00", punchlog.KindCheckIn),
	}

	got := Identify(events, testSchedule, testOpts())

	require.Len(t, got, 1)
	assert.Equal(t, report.IrregularityMissingPunch, got[0].Type)
	assert.Equal(t, "Giriş yapıldı (09:00) ancak gün sonu çıkış kaydı bulunamadı.", got[0].Details)
	assert.Equal(t, "Çıkış Bekleniyor", *got[0].Expected)
}

func TestIdentify_MissingCheckoutToday(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-16", "09:00", punchlog.KindCheckIn),
	}

	// At 19:00 the scheduled 18:00 end has passed: flagged.
	got := Identify(events, testSchedule, testOpts())
	require.Len(t, got, 1)
	assert.Equal(t, report.IrregularityMissingPunch, got[0].Type)

	// At 17:00 the day is still running: not flagged.
	earlier := ClassifyOptions{Now: func() time.Time {
		return time.Date(2025, 6, 16, 17, 0, 0, 0, time.Local)
	}}
	got = Identify(events, testSchedule, earlier)
	assert.Empty(t, got)
}

func TestIdentify_LongLunch(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-10", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-10", "12:00", punchlog.KindLunchStart),
		ev("e1", "2025-06-10", "13:30", punchlog.KindLunchEnd),
		ev("e1", "2025-06-10", "18:00", punchlog.KindCheckOut),
	}

	got := Identify(events, testSchedule, testOpts())

	long := findByType(t, got, report.IrregularityLongLunch)
	assert.Equal(t, "1 saat 0 dakika", *long.ExpectedDuration)
	assert.Equal(t, "1 saat 30 dakika", *long.Duration)

	// 540 - 90 = 450 worked < 480 expected: the long lunch also shortens
	// the day.
	short := findByType(t, got, report.IrregularityShortWorkday)
	assert.Equal(t, "8 saat 0 dakika", *short.ExpectedDuration)
	assert.Equal(t, "7 saat 30 dakika", *short.Duration)
}

func TestIdentify_MissingLunchEnd(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-10", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-10", "12:00", punchlog.KindLunchStart),
		ev("e1", "2025-06-10", "18:00", punchlog.KindCheckOut),
	}

	got := Identify(events, testSchedule, testOpts())

	missing := findByType(t, got, report.IrregularityMissingLunch)
	assert.Equal(t, "Öğle arası başladı (12:00) ancak bitiş kaydı yok.", missing.Details)
	assert.Equal(t, "Mola Bitişi Bekleniyor", *missing.Expected)
}

func TestIdentify_MissingLunchStart(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-10", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-10", "13:00", punchlog.KindLunchEnd),
		ev("e1", "2025-06-10", "18:00", punchlog.KindCheckOut),
	}

	got := Identify(events, testSchedule, testOpts())

	missing := findByType(t, got, report.IrregularityMissingLunch)
	assert.Equal(t, "Öğle arası bitiş kaydı (13:00) var ancak başlangıç kaydı yok.", missing.Details)
	assert.Equal(t, "Mola Başlangıcı Bekleniyor", *missing.Expected)
}

func TestIdentify_CoOccurringTypes(t *testing.T) {
	// Late in, long lunch, early out: three flags plus the short day.
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-10", "09:30", punchlog.KindCheckIn),
		ev("e1", "2025-06-10", "12:00", punchlog.KindLunchStart),
		ev("e1", "2025-06-10", "13:45", punchlog.KindLunchEnd),
		ev("e1", "2025-06-10", "17:00", punchlog.KindCheckOut),
	}

	got := Identify(events, testSchedule, testOpts())

	assert.ElementsMatch(t, []report.IrregularityType{
		report.IrregularityLateArrival,
		report.IrregularityLongLunch,
		report.IrregularityEarlyDeparture,
		report.IrregularityShortWorkday,
	}, typesOf(got))
}

func TestIdentify_RedundantPunchesCollapse(t *testing.T) {
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-10", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-10", "09:05", punchlog.KindCheckIn),
		ev("e1", "2025-06-10", "17:55", punchlog.KindCheckOut),
		ev("e1", "2025-06-10", "18:00", punchlog.KindCheckOut),
	}

	// First check-in (09:00) and last check-out (18:00) are canonical:
	// a clean day despite the duplicate punches.
	got := Identify(events, testSchedule, testOpts())

	assert.Empty(t, got)
}

func TestIdentify_CorruptedLunchClampsToZero(t *testing.T) {
	// Lunch-end before lunch-start: the negative duration clamps to zero,
	// so no long-lunch flag and no negative numbers in the short-day math.
	events := []punchlog.PunchEvent{
		ev("e1", "2025-06-10", "09:00", punchlog.KindCheckIn),
		ev("e1", "2025-06-10", "13:00", punchlog.KindLunchStart),
		ev("e1", "2025-06-10", "12:00", punchlog.KindLunchEnd),
		ev("e1", "2025-06-10", "18:00", punchlog.KindCheckOut),
	}

	got := Identify(events, testSchedule, testOpts())

	for _, ir := range got {
		assert.NotEqual(t, report.IrregularityLongLunch, ir.Type)
		if ir.Duration != nil {
			assert.NotContains(t, *ir.Duration, "-")
		}
	}
}

func TestIdentify_NameResolution(t *testing.T) {
	name := "Ayşe Yılmaz"
	withName := punchlog.PunchEvent{
		EmployeeID:   "e1",
		EmployeeName: &name,
		Date:         "2025-06-10",
		Time:         "10:00",
		Kind:         punchlog.KindCheckIn,
	}

	// Per-event name wins when no override is given.
	got := Identify([]punchlog.PunchEvent{withName}, testSchedule, testOpts())
	require.NotEmpty(t, got)
	assert.Equal(t, "Ayşe Yılmaz", got[0].EmployeeName)

	// Explicit override wins over the event name.
	opts := testOpts()
	opts.EmployeeName = "Override"
	got = Identify([]punchlog.PunchEvent{withName}, testSchedule, opts)
	require.NotEmpty(t, got)
	assert.Equal(t, "Override", got[0].EmployeeName)

	// Raw id is the fallback.
	got = Identify([]punchlog.PunchEvent{ev("e9", "2025-06-10", "10:00", punchlog.KindCheckIn)}, testSchedule, testOpts())
	require.NotEmpty(t, got)
	assert.Equal(t, "e9", got[0].EmployeeName)
}

func TestIdentify_IdempotentUnderReordering(t *testing.T) {
	ordered := []punchlog.PunchEvent{
		ev("e1", "2025-06-10", "09:30", punchlog.KindCheckIn),
		ev("e1", "2025-06-10", "12:00", punchlog.KindLunchStart),
		ev("e1", "2025-06-10", "13:45", punchlog.KindLunchEnd),
		ev("e1", "2025-06-10", "17:00", punchlog.KindCheckOut),
	}
	shuffled := []punchlog.PunchEvent{ordered[2], ordered[0], ordered[3], ordered[1]}

	assert.Equal(t, Identify(ordered, testSchedule, testOpts()), Identify(shuffled, testSchedule, testOpts()))
}
