package attendance

import (
	"sort"
	"time"

	"github.com/cxops-br/presence-insights-go/internal/pkg/timefmt"
)

// DayPolicy controls how day iteration treats calendar days without events.
// The shift report skips them entirely; the calendar daily report emits a
// placeholder row. Both behaviors are deliberate and must stay distinct.
type DayPolicy int

const (
	// PolicySkip visits only days that have at least one event.
	PolicySkip DayPolicy = iota
	// PolicyPlaceholder visits every day of the range, with an empty event
	// slice for days without activity.
	PolicyPlaceholder
)

// SortByTimestamp orders events ascending by timestamp in place. The sort is
// stable: the feed has no documented tie-break for equal timestamps, so input
// order is preserved for ties as defined behavior.
func SortByTimestamp(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
}

// GroupByUser partitions events per agent, preserving input order inside each
// group.
func GroupByUser(events []Event) map[string][]Event {
	grouped := make(map[string][]Event)
	for _, event := range events {
		grouped[event.UserID] = append(grouped[event.UserID], event)
	}
	return grouped
}

// GroupByDay partitions events by UTC calendar day (YYYY-MM-DD key).
func GroupByDay(events []Event) map[string][]Event {
	grouped := make(map[string][]Event)
	for _, event := range events {
		key := timefmt.DateKey(event.Timestamp)
		grouped[key] = append(grouped[key], event)
	}
	return grouped
}

// ForEachDay visits day groups in chronological order. Under PolicySkip only
// the days present in byDay are visited and the range bounds are ignored.
// Under PolicyPlaceholder every calendar day in [start, end] is visited,
// including empty ones.
func ForEachDay(byDay map[string][]Event, start, end time.Time, policy DayPolicy, fn func(date string, events []Event)) {
	if policy == PolicySkip {
		keys := make([]string, 0, len(byDay))
		for key := range byDay {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fn(key, byDay[key])
		}
		return
	}

	startDay := start.UTC().Truncate(24 * time.Hour)
	endDay := end.UTC().Truncate(24 * time.Hour)
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		key := timefmt.DateKey(d)
		fn(key, byDay[key])
	}
}
