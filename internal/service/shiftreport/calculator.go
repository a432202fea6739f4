package shiftreport

import (
	"sort"
	"time"

	"github.com/cxops-br/presence-insights-go/internal/domain/attendance"
	"github.com/cxops-br/presence-insights-go/internal/domain/shift"
	"github.com/cxops-br/presence-insights-go/internal/pkg/timefmt"
)

// interval is a maximal run of consecutive same-state events collapsed into
// one presence or absence block. Intervals live only for one day's
// computation and are discarded after shift intersection.
type interval struct {
	entry   time.Time
	exit    time.Time
	present float64
	away    float64
}

// Aggregate reconstructs merged presence/absence intervals per agent per UTC
// calendar day and intersects them against the shift table. Days with a
// single event have no reconstructable interval and are skipped; the calendar
// daily report handles those instead. Pure function, output sorted by date,
// then agent.
func Aggregate(events []attendance.Event, table shift.Table) []shift.DailySummary {
	byUser := attendance.GroupByUser(events)

	summaries := make([]shift.DailySummary, 0)
	for userID, userEvents := range byUser {
		byDay := attendance.GroupByDay(userEvents)
		attendance.ForEachDay(byDay, time.Time{}, time.Time{}, attendance.PolicySkip, func(date string, dayEvents []attendance.Event) {
			if day, ok := aggregateDay(userID, date, dayEvents, table); ok {
				summaries = append(summaries, day)
			}
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Date != summaries[j].Date {
			return summaries[i].Date < summaries[j].Date
		}
		if summaries[i].Name != summaries[j].Name {
			return summaries[i].Name < summaries[j].Name
		}
		return summaries[i].UserID < summaries[j].UserID
	})

	return summaries
}

func aggregateDay(userID, date string, dayEvents []attendance.Event, table shift.Table) (shift.DailySummary, bool) {
	sorted := make([]attendance.Event, len(dayEvents))
	copy(sorted, dayEvents)
	attendance.SortByTimestamp(sorted)

	intervals := mergeIntervals(sorted)
	if len(intervals) == 0 {
		return shift.DailySummary{}, false
	}

	windows := table.Windows()
	shiftPresent := make(map[string]int, len(windows))
	shiftAway := make(map[string]int, len(windows))
	lastExitMinute := make(map[string]int, len(windows))
	active := make(map[string]bool, len(windows))

	for _, iv := range intervals {
		startMin := timefmt.MinuteOfDay(iv.entry)
		endMin := timefmt.MinuteOfDay(iv.exit)
		isPresent := iv.present > 0

		for _, w := range windows {
			overlap := w.Overlap(startMin, endMin)
			if overlap == 0 {
				continue
			}
			active[w.Name] = true
			if isPresent {
				shiftPresent[w.Name] += overlap
			} else {
				shiftAway[w.Name] += overlap
			}
			// Intervals are chronological; the last one touching the window
			// carries the exit time that decides overtime, even when the
			// agent kept working past the window's end.
			lastExitMinute[w.Name] = endMin
		}
	}

	first := sorted[0]
	records := make([]shift.Record, 0, len(windows))

	for _, w := range windows {
		if !active[w.Name] {
			continue
		}
		records = append(records, buildRecord(userID, date, first, sorted, w, shiftPresent[w.Name], shiftAway[w.Name], lastExitMinute[w.Name]))
	}

	dailyPresent, dailyAway, dailyAvailability := Rollup(records)

	return shift.DailySummary{
		UserID:                   userID,
		Name:                     first.Name,
		Email:                    first.Email,
		Date:                     date,
		Shifts:                   records,
		TotalPresentMinutes:      dailyPresent,
		TotalAwayMinutes:         dailyAway,
		TotalPresentFormatted:    timefmt.FormatMinutes(float64(dailyPresent)),
		TotalAwayFormatted:       timefmt.FormatMinutes(float64(dailyAway)),
		TotalAvailabilityPercent: dailyAvailability,
	}, true
}

// mergeIntervals walks consecutive event pairs and collapses runs of
// same-state transitions into single blocks, tolerating duplicate and no-op
// state pings. A trailing event without a successor contributes nothing.
func mergeIntervals(sorted []attendance.Event) []interval {
	var intervals []interval

	for i := 0; i+1 < len(sorted); i++ {
		current := sorted[i]
		next := sorted[i+1]
		duration := next.Timestamp.Sub(current.Timestamp).Minutes()

		if len(intervals) == 0 || current.Away != sorted[i-1].Away {
			iv := interval{entry: current.Timestamp, exit: next.Timestamp}
			if current.Away {
				iv.away = duration
			} else {
				iv.present = duration
			}
			intervals = append(intervals, iv)
			continue
		}

		last := &intervals[len(intervals)-1]
		last.exit = next.Timestamp
		if current.Away {
			last.away += duration
		} else {
			last.present += duration
		}
	}

	return intervals
}

func buildRecord(userID, date string, first attendance.Event, sorted []attendance.Event, w shift.Window, present, away, exitMinute int) shift.Record {
	var inWindow []attendance.Event
	for _, event := range sorted {
		if w.Contains(timefmt.MinuteOfDay(event.Timestamp)) {
			inWindow = append(inWindow, event)
		}
	}

	// Display times come from the first/last raw event inside the window;
	// when every event sits outside, fall back to the window's own bounds.
	var entry, exit time.Time
	if len(inWindow) > 0 {
		entry = inWindow[0].Timestamp
		exit = inWindow[len(inWindow)-1].Timestamp
	} else {
		dayStart, _ := time.Parse("2006-01-02", date)
		entry = dayStart.Add(time.Duration(w.Start) * time.Minute)
		exit = dayStart.Add(time.Duration(w.End) * time.Minute)
	}

	status, label := shift.Classify(present, away, w, exitMinute)

	return shift.Record{
		UserID:              userID,
		Name:                first.Name,
		Email:               first.Email,
		Date:                date,
		Shift:               w.Name,
		ShiftIcon:           w.Icon,
		Entry:               entry.Format(time.RFC3339),
		Exit:                exit.Format(time.RFC3339),
		EntryFormatted:      timefmt.ClockHHMM(entry),
		ExitFormatted:       timefmt.ClockHHMM(exit),
		PresentMinutes:      present,
		AwayMinutes:         away,
		PresentFormatted:    timefmt.FormatMinutes(float64(present)),
		AwayFormatted:       timefmt.FormatMinutes(float64(away)),
		AvailabilityPercent: shift.AvailabilityPercent(present, away),
		Status:              status,
		StatusLabel:         label,
	}
}
