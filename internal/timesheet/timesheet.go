// Package timesheet interprets raw punch logs: it folds an employee's
// events into per-day worked durations and compares daily punch sequences
// against a department schedule to detect irregularities.
//
// Everything here is a pure transformation over in-memory snapshots. The
// package never touches storage, never fails on malformed input, and every
// function sorts its events internally, so callers owe it nothing about
// ordering or deduplication.
package timesheet

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/punchlog"
)

// Uncalculated marks a day that has punch events but no closable work
// segment, so no meaningful total exists.
const Uncalculated = "Hesaplanamadı"

// timeToMinutes converts "HH:MM" or "HH:MM:SS" to minutes from midnight.
// Seconds are dropped. Anything unparseable counts as midnight; corrupt
// rows degrade instead of failing.
func timeToMinutes(timeStr string) int {
	parts := strings.Split(timeStr, ":")
	if len(parts) < 2 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

// timeToSeconds converts "HH:MM[:SS]" to seconds from midnight. The
// aggregator accumulates in seconds so that punches within the same minute
// still order correctly.
func timeToSeconds(timeStr string) int {
	parts := strings.Split(timeStr, ":")
	if len(parts) < 2 {
		return 0
	}
	secs := timeToMinutes(timeStr) * 60
	if len(parts) >= 3 {
		if s, err := strconv.Atoi(parts[2]); err == nil {
			secs += s
		}
	}
	return secs
}

// FormatMinutes renders a minute total as "X saat Y dakika", or just
// "Y dakika" under an hour. Negative totals render as "0 dakika".
func FormatMinutes(totalMinutes int) string {
	if totalMinutes < 0 {
		return "0 dakika"
	}
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	if hours > 0 {
		return fmt.Sprintf("%d saat %d dakika", hours, minutes)
	}
	return fmt.Sprintf("%d dakika", minutes)
}

// displayTime truncates "HH:MM:SS" to "HH:MM" for display.
func displayTime(timeStr string) string {
	parts := strings.Split(timeStr, ":")
	if len(parts) > 2 {
		return parts[0] + ":" + parts[1]
	}
	return timeStr
}

func clampMinutes(m int) int {
	if m < 0 {
		return 0
	}
	return m
}

// groupByDate buckets events by their calendar date, returning the dates in
// ascending order so output is deterministic.
func groupByDate(events []punchlog.PunchEvent) ([]string, map[string][]punchlog.PunchEvent) {
	byDate := make(map[string][]punchlog.PunchEvent)
	for _, ev := range events {
		byDate[ev.Date] = append(byDate[ev.Date], ev)
	}
	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates, byDate
}

// sortByTime orders a single day's events ascending by time-of-day. The
// sort is stable so duplicate timestamps keep their input order.
func sortByTime(events []punchlog.PunchEvent) []punchlog.PunchEvent {
	sorted := make([]punchlog.PunchEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return timeToSeconds(sorted[i].Time) < timeToSeconds(sorted[j].Time)
	})
	return sorted
}
