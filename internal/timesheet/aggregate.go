package timesheet

import (
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/punchlog"
)

// dayState is the fold accumulator for one day's scan: the start of the
// currently open work segment (-1 when none) and whether the employee is on
// lunch break.
type dayState struct {
	openSegmentStart int
	onBreak          bool
	totalSeconds     int
}

// DailyWorkHours folds punch events into a per-date worked duration,
// formatted with FormatMinutes. Lunch breaks are excluded: a lunch-start
// closes the open segment, and lunch-end alone never reopens one; only a
// fresh check-in after lunch resumes the clock. Days where no segment could
// be closed map to the Uncalculated sentinel.
//
// Callers normally pre-filter to a single employee; mixed input is tolerated
// but the per-day totals then interleave all employees' segments.
//
// Malformed sequences degrade, never fail: orphan lunch-starts and
// check-outs are no-ops, a repeated check-in restarts the segment, a
// backwards segment is clamped to zero, and a missing final check-out leaves
// that segment uncounted (the classifier reports it separately).
func DailyWorkHours(events []punchlog.PunchEvent) map[string]string {
	workHours := make(map[string]string)
	dates, byDate := groupByDate(events)

	for _, date := range dates {
		st := dayState{openSegmentStart: -1}

		for _, ev := range sortByTime(byDate[date]) {
			now := timeToSeconds(ev.Time)

			switch ev.Kind {
			case punchlog.KindCheckIn:
				// A check-in during lunch is ignored; otherwise it opens
				// (or restarts) the segment.
				if !st.onBreak {
					st.openSegmentStart = now
				}
			case punchlog.KindLunchStart:
				if st.openSegmentStart >= 0 && !st.onBreak {
					st.totalSeconds += clampSeconds(now - st.openSegmentStart)
				}
				st.openSegmentStart = -1
				st.onBreak = true
			case punchlog.KindLunchEnd:
				st.onBreak = false
			case punchlog.KindCheckOut:
				if st.openSegmentStart >= 0 && !st.onBreak {
					st.totalSeconds += clampSeconds(now - st.openSegmentStart)
					st.openSegmentStart = -1
				}
			}
		}

		if minutes := st.totalSeconds / 60; minutes > 0 {
			workHours[date] = FormatMinutes(minutes)
		} else {
			workHours[date] = Uncalculated
		}
	}

	return workHours
}

func clampSeconds(s int) int {
	if s < 0 {
		return 0
	}
	return s
}
