package dailyreport

import (
	"testing"
	"time"

	"github.com/cxops-br/presence-insights-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(t *testing.T, ts string, away bool, reason *string) attendance.Event {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, ts)
	require.NoError(t, err)
	return attendance.Event{
		UserID:     "u1",
		Name:       "Agent u1",
		Email:      "u1@example.com",
		Timestamp:  parsed,
		Away:       away,
		AwayReason: reason,
	}
}

func strPtr(s string) *string {
	return &s
}

func day(t *testing.T, date string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return parsed
}

func TestBuildRows_EmptyDaysGetPlaceholderRows(t *testing.T) {
	t.Parallel()

	events := []attendance.Event{
		event(t, "2026-01-06T09:00:00Z", false, nil),
		event(t, "2026-01-06T10:00:00Z", true, nil),
	}

	rows := BuildRows(events, day(t, "2026-01-05"), day(t, "2026-01-07"))

	require.Len(t, rows, 3)

	// 2026-01-05 has no events: placeholder row, not skipped.
	empty := rows[0]
	assert.Equal(t, "2026-01-05", empty.DateKey)
	assert.Equal(t, "none", empty.CurrentStatus)
	assert.Nil(t, empty.FirstEventTime)
	assert.Nil(t, empty.LastEventTime)
	assert.Zero(t, empty.TotalPresentMinutes)
	assert.Empty(t, empty.Reasons)
	assert.Equal(t, "segunda-feira", empty.Weekday)
	assert.Equal(t, "Segunda-feira - 05/01/2026", empty.Label)

	active := rows[1]
	assert.Equal(t, "2026-01-06", active.DateKey)
	assert.Equal(t, "away", active.CurrentStatus)
	assert.InDelta(t, 60, active.TotalPresentMinutes, 0.001)

	assert.Equal(t, "2026-01-07", rows[2].DateKey)
	assert.Equal(t, "none", rows[2].CurrentStatus)
}

func TestBuildRows_SingleEventDay(t *testing.T) {
	t.Parallel()

	// A lone event reconstructs no duration but still shows up here, unlike
	// in the shift aggregation.
	events := []attendance.Event{
		event(t, "2026-01-05T14:00:00Z", false, nil),
	}

	rows := BuildRows(events, day(t, "2026-01-05"), day(t, "2026-01-05"))

	require.Len(t, rows, 1)
	row := rows[0]
	require.NotNil(t, row.FirstEventTime)
	require.NotNil(t, row.LastEventTime)
	assert.Equal(t, "14:00", *row.FirstEventTime)
	assert.Equal(t, "14:00", *row.LastEventTime)
	assert.Zero(t, row.TotalPresentMinutes)
	assert.Zero(t, row.TotalAwayMinutes)
	assert.Equal(t, "online", row.CurrentStatus)
}

func TestBuildRows_TotalsAndDistinctReasons(t *testing.T) {
	t.Parallel()

	events := []attendance.Event{
		event(t, "2026-01-05T09:00:00Z", false, nil),
		event(t, "2026-01-05T09:30:00Z", true, strPtr("lunch")),
		event(t, "2026-01-05T10:00:00Z", false, nil),
		event(t, "2026-01-05T11:00:00Z", true, strPtr("lunch")),
		event(t, "2026-01-05T11:10:00Z", false, nil),
		event(t, "2026-01-05T11:30:00Z", true, nil),
	}

	rows := BuildRows(events, day(t, "2026-01-05"), day(t, "2026-01-05"))

	require.Len(t, rows, 1)
	row := rows[0]
	assert.InDelta(t, 110, row.TotalPresentMinutes, 0.001)
	assert.InDelta(t, 40, row.TotalAwayMinutes, 0.001)
	assert.Equal(t, "away", row.CurrentStatus)
	// Repeated reasons collapse; a missing reason reads as "Ausente".
	assert.Equal(t, []string{"lunch", "Ausente"}, row.Reasons)
	assert.Equal(t, "09:00", *row.FirstEventTime)
	assert.Equal(t, "11:30", *row.LastEventTime)
}

func TestBuildRows_NoEventsAtAll(t *testing.T) {
	t.Parallel()

	rows := BuildRows(nil, day(t, "2026-01-05"), day(t, "2026-01-06"))

	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "none", row.CurrentStatus)
		assert.Empty(t, row.Reasons)
	}
}
