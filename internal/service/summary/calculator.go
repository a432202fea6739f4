package summary

import (
	"math"
	"sort"
	"time"

	"github.com/cxops-br/presence-insights-go/internal/domain/attendance"
)

// Calculate derives one attendance summary per agent from a raw event list.
// It is a pure function: the input may arrive in any order, the output is
// deterministic (sorted by agent name, then id) and fresh on every call.
func Calculate(events []attendance.Event) []attendance.Summary {
	grouped := attendance.GroupByUser(events)

	summaries := make([]attendance.Summary, 0, len(grouped))
	for userID, userEvents := range grouped {
		summaries = append(summaries, summarizeUser(userID, userEvents))
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Name != summaries[j].Name {
			return summaries[i].Name < summaries[j].Name
		}
		return summaries[i].UserID < summaries[j].UserID
	})

	return summaries
}

func summarizeUser(userID string, userEvents []attendance.Event) attendance.Summary {
	sorted := make([]attendance.Event, len(userEvents))
	copy(sorted, userEvents)
	attendance.SortByTimestamp(sorted)

	compacted := compactByMinute(sorted)

	var totalPresent, totalAway float64
	timeline := make([]attendance.TimelineEntry, 0, len(compacted))

	for i, current := range compacted {
		entry := attendance.TimelineEntry{
			Timestamp: current.Timestamp.Format(time.RFC3339),
			Type:      "entry",
			Reason:    current.AwayReason,
		}
		if current.Away {
			entry.Type = "exit"
		}

		if i+1 < len(compacted) {
			duration := compacted[i+1].Timestamp.Sub(current.Timestamp).Minutes()
			entry.DurationMinutes = &duration

			if current.Away {
				totalAway += duration
			} else {
				totalPresent += duration
			}
		}

		timeline = append(timeline, entry)
	}

	last := compacted[len(compacted)-1]
	total := totalPresent + totalAway

	status := "online"
	if last.Away {
		status = "away"
	}

	// An agent with no accrued minutes counts as fully available here; the
	// shift report treats the same case as 0%.
	availability := 100
	if total > 0 {
		availability = int(math.Round(totalPresent / total * 100))
	}

	return attendance.Summary{
		UserID:              userID,
		Name:                userEvents[0].Name,
		Email:               userEvents[0].Email,
		TotalPresentMinutes: totalPresent,
		TotalAwayMinutes:    totalAway,
		CurrentStatus:       status,
		CurrentReason:       last.AwayReason,
		AvailabilityPercent: availability,
		Timeline:            timeline,
	}
}

// compactByMinute collapses consecutive events that fall in the same UTC
// minute, keeping only the later one. This suppresses rapid flapping noise at
// minute resolution.
func compactByMinute(sorted []attendance.Event) []attendance.Event {
	compacted := make([]attendance.Event, 0, len(sorted))
	for _, event := range sorted {
		minute := event.Timestamp.Truncate(time.Minute)
		if len(compacted) > 0 && compacted[len(compacted)-1].Timestamp.Truncate(time.Minute).Equal(minute) {
			compacted[len(compacted)-1] = event
		} else {
			compacted = append(compacted, event)
		}
	}
	return compacted
}
