package dailyreport

import (
	"time"

	"github.com/cxops-br/presence-insights-go/internal/domain/attendance"
	"github.com/cxops-br/presence-insights-go/internal/domain/report"
	"github.com/cxops-br/presence-insights-go/internal/pkg/timefmt"
)

// BuildRows produces one calendar row per day of [start, end] inclusive,
// walking raw consecutive event pairs directly, without interval merging or
// shift intersection. Days without events still get a row, with status "none"
// and nil times; this deliberately differs from the shift aggregation, which
// skips such days.
func BuildRows(events []attendance.Event, start, end time.Time) []report.DailyRow {
	byDay := attendance.GroupByDay(events)

	rows := make([]report.DailyRow, 0)
	attendance.ForEachDay(byDay, start, end, attendance.PolicyPlaceholder, func(date string, dayEvents []attendance.Event) {
		rows = append(rows, buildRow(date, dayEvents))
	})

	return rows
}

func buildRow(date string, dayEvents []attendance.Event) report.DailyRow {
	day, _ := time.Parse("2006-01-02", date)

	row := report.DailyRow{
		DateKey:       date,
		Label:         timefmt.DayLabelPTBR(day),
		Weekday:       timefmt.WeekdayPTBR(day),
		CurrentStatus: "none",
		Reasons:       []string{},
	}

	if len(dayEvents) == 0 {
		return row
	}

	sorted := make([]attendance.Event, len(dayEvents))
	copy(sorted, dayEvents)
	attendance.SortByTimestamp(sorted)

	firstTime := timefmt.ClockHHMM(sorted[0].Timestamp)
	lastTime := timefmt.ClockHHMM(sorted[len(sorted)-1].Timestamp)
	row.FirstEventTime = &firstTime
	row.LastEventTime = &lastTime

	seen := make(map[string]bool)
	for i, current := range sorted {
		if i+1 < len(sorted) {
			duration := sorted[i+1].Timestamp.Sub(current.Timestamp).Minutes()
			if current.Away {
				row.TotalAwayMinutes += duration
			} else {
				row.TotalPresentMinutes += duration
			}
		}

		if current.Away {
			reason := "Ausente"
			if current.AwayReason != nil && *current.AwayReason != "" {
				reason = *current.AwayReason
			}
			if !seen[reason] {
				seen[reason] = true
				row.Reasons = append(row.Reasons, reason)
			}
		}
	}

	row.CurrentStatus = "online"
	if sorted[len(sorted)-1].Away {
		row.CurrentStatus = "away"
	}

	return row
}
