package timesheet

import (
	"fmt"
	"time"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/punchlog"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/report"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/schedule"
)

// ClassifyOptions carries display-name overrides and the clock used for the
// "missing checkout today" rule. A nil Now defaults to time.Now, so tests
// can pin the current day.
type ClassifyOptions struct {
	EmployeeName   string
	DepartmentName *string
	Now            func() time.Time
}

// Identify compares an employee's punch events against a department schedule
// and returns every detected deviation. An incomplete schedule (any of the
// four times missing) yields an empty result: a partial comparison would
// produce wrong flags, so none are produced at all.
//
// Per date, redundant punches collapse to canonical markers: first check-in,
// last check-out, first lunch-start, last lunch-end. Several irregularity
// types may co-occur on the same day; only the short-workday flag is
// suppressed when the day is already reported as missing its check-out.
// All duration arithmetic clamps at zero, so corrupted timestamps degrade
// to "0 dakika" rather than negative durations.
func Identify(events []punchlog.PunchEvent, sched schedule.WorkSchedule, opts ClassifyOptions) []report.Irregularity {
	irregularities := []report.Irregularity{}
	if !sched.Complete() {
		return irregularities
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	expectedWorkStart := timeToMinutes(sched.WorkStart)
	expectedWorkEnd := timeToMinutes(sched.WorkEnd)
	expectedLunchDuration := clampMinutes(timeToMinutes(sched.LunchEnd) - timeToMinutes(sched.LunchStart))
	expectedWorkDayDuration := clampMinutes(expectedWorkEnd-expectedWorkStart) - expectedLunchDuration

	dates, byDate := groupByDate(events)

	for _, date := range dates {
		daily := sortByTime(byDate[date])

		var checkIns, checkOuts, lunchStarts, lunchEnds []punchlog.PunchEvent
		for _, ev := range daily {
			switch ev.Kind {
			case punchlog.KindCheckIn:
				checkIns = append(checkIns, ev)
			case punchlog.KindCheckOut:
				checkOuts = append(checkOuts, ev)
			case punchlog.KindLunchStart:
				lunchStarts = append(lunchStarts, ev)
			case punchlog.KindLunchEnd:
				lunchEnds = append(lunchEnds, ev)
			}
		}

		employeeName := resolveEmployeeName(opts.EmployeeName, daily)

		nowLocal := now()
		todayDate := nowLocal.Format("2006-01-02")
		currentMinutes := nowLocal.Hour()*60 + nowLocal.Minute()

		record := func(ev punchlog.PunchEvent, typ report.IrregularityType, details string) report.Irregularity {
			return report.Irregularity{
				EmployeeID:     ev.EmployeeID,
				EmployeeName:   employeeName,
				DepartmentName: opts.DepartmentName,
				Date:           date,
				Type:           typ,
				Details:        details,
			}
		}

		// Missing checkout: always for past dates, for today only once the
		// scheduled end of day has passed.
		if len(checkIns) > 0 && len(checkOuts) == 0 {
			firstCheckIn := checkIns[0]
			missing := date < todayDate || (date == todayDate && currentMinutes > expectedWorkEnd)
			if missing {
				ir := record(firstCheckIn, report.IrregularityMissingPunch,
					fmt.Sprintf("Giriş yapıldı (%s) ancak gün sonu çıkış kaydı bulunamadı.", displayTime(firstCheckIn.Time)))
				ir.Actual = ptr(displayTime(firstCheckIn.Time))
				ir.Expected = ptr("Çıkış Bekleniyor")
				irregularities = append(irregularities, ir)
			}
		}

		if len(checkIns) > 0 {
			firstCheckIn := checkIns[0]
			if timeToMinutes(firstCheckIn.Time) > expectedWorkStart {
				ir := record(firstCheckIn, report.IrregularityLateArrival,
					fmt.Sprintf("Beklenen %s yerine %s giriş yapıldı.", displayTime(sched.WorkStart), displayTime(firstCheckIn.Time)))
				ir.Expected = ptr(displayTime(sched.WorkStart))
				ir.Actual = ptr(displayTime(firstCheckIn.Time))
				irregularities = append(irregularities, ir)
			}
		}

		if len(checkOuts) > 0 {
			lastCheckOut := checkOuts[len(checkOuts)-1]
			if timeToMinutes(lastCheckOut.Time) < expectedWorkEnd {
				ir := record(lastCheckOut, report.IrregularityEarlyDeparture,
					fmt.Sprintf("Beklenen %s yerine %s çıkış yapıldı.", displayTime(sched.WorkEnd), displayTime(lastCheckOut.Time)))
				ir.Expected = ptr(displayTime(sched.WorkEnd))
				ir.Actual = ptr(displayTime(lastCheckOut.Time))
				irregularities = append(irregularities, ir)
			}
		}

		// Lunch evaluation, mutually exclusive branches.
		switch {
		case len(lunchStarts) > 0 && len(lunchEnds) > 0:
			firstLunchStart := lunchStarts[0]
			lastLunchEnd := lunchEnds[len(lunchEnds)-1]
			actualLunchDuration := clampMinutes(timeToMinutes(lastLunchEnd.Time) - timeToMinutes(firstLunchStart.Time))
			if actualLunchDuration > expectedLunchDuration {
				ir := record(firstLunchStart, report.IrregularityLongLunch,
					fmt.Sprintf("Beklenen %s yerine %s mola kullanıldı.", FormatMinutes(expectedLunchDuration), FormatMinutes(actualLunchDuration)))
				ir.ExpectedDuration = ptr(FormatMinutes(expectedLunchDuration))
				ir.Duration = ptr(FormatMinutes(actualLunchDuration))
				irregularities = append(irregularities, ir)
			}
		case len(lunchStarts) > 0:
			firstLunchStart := lunchStarts[0]
			ir := record(firstLunchStart, report.IrregularityMissingLunch,
				fmt.Sprintf("Öğle arası başladı (%s) ancak bitiş kaydı yok.", displayTime(firstLunchStart.Time)))
			ir.Actual = ptr(displayTime(firstLunchStart.Time))
			ir.Expected = ptr("Mola Bitişi Bekleniyor")
			irregularities = append(irregularities, ir)
		case len(lunchEnds) > 0:
			lastLunchEnd := lunchEnds[len(lunchEnds)-1]
			ir := record(lastLunchEnd, report.IrregularityMissingLunch,
				fmt.Sprintf("Öğle arası bitiş kaydı (%s) var ancak başlangıç kaydı yok.", displayTime(lastLunchEnd.Time)))
			ir.Actual = ptr(displayTime(lastLunchEnd.Time))
			ir.Expected = ptr("Mola Başlangıcı Bekleniyor")
			irregularities = append(irregularities, ir)
		}

		// Short workday, suppressed when the day is already flagged as
		// incomplete to avoid double-reporting.
		if len(checkIns) > 0 && len(checkOuts) > 0 {
			firstCheckIn := checkIns[0]
			lastCheckOut := checkOuts[len(checkOuts)-1]

			actualWorkDuration := clampMinutes(timeToMinutes(lastCheckOut.Time) - timeToMinutes(firstCheckIn.Time))
			if len(lunchStarts) > 0 && len(lunchEnds) > 0 {
				lunch := clampMinutes(timeToMinutes(lunchEnds[len(lunchEnds)-1].Time) - timeToMinutes(lunchStarts[0].Time))
				actualWorkDuration = clampMinutes(actualWorkDuration - lunch)
			}

			alreadyIncomplete := false
			for _, ir := range irregularities {
				if ir.Date == date && ir.EmployeeID == firstCheckIn.EmployeeID && ir.Type == report.IrregularityMissingPunch {
					alreadyIncomplete = true
					break
				}
			}

			if !alreadyIncomplete && actualWorkDuration < expectedWorkDayDuration {
				ir := record(firstCheckIn, report.IrregularityShortWorkday,
					fmt.Sprintf("Beklenen %s yerine %s çalışıldı.", FormatMinutes(expectedWorkDayDuration), FormatMinutes(actualWorkDuration)))
				ir.ExpectedDuration = ptr(FormatMinutes(expectedWorkDayDuration))
				ir.Duration = ptr(FormatMinutes(actualWorkDuration))
				irregularities = append(irregularities, ir)
			}
		}
	}

	return irregularities
}

// resolveEmployeeName picks the display name: explicit override, then the
// per-event name, then the raw identifier.
func resolveEmployeeName(override string, daily []punchlog.PunchEvent) string {
	if override != "" {
		return override
	}
	if len(daily) > 0 {
		if daily[0].EmployeeName != nil && *daily[0].EmployeeName != "" {
			return *daily[0].EmployeeName
		}
		if daily[0].EmployeeID != "" {
			return daily[0].EmployeeID
		}
	}
	return "Bilinmeyen"
}

func ptr(s string) *string {
	return &s
}
