package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRecord_Parse(t *testing.T) {
	t.Parallel()

	reason := "lunch"
	record := EventRecord{
		UserID:           "u1",
		Name:             "Maria",
		Email:            "maria@example.com",
		Date:             "2026-01-05T09:30:00Z",
		AwayModeEnabled:  1,
		AwayStatusReason: &reason,
	}

	event, err := record.Parse()

	require.NoError(t, err)
	assert.Equal(t, "u1", event.UserID)
	assert.True(t, event.Away)
	require.NotNil(t, event.AwayReason)
	assert.Equal(t, "lunch", *event.AwayReason)
	assert.Equal(t, time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC), event.Timestamp)
}

func TestEventRecord_ParseZonelessTimestamp(t *testing.T) {
	t.Parallel()

	record := EventRecord{UserID: "u1", Date: "2026-01-05T09:30:45"}

	event, err := record.Parse()

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 5, 9, 30, 45, 0, time.UTC), event.Timestamp)
	assert.False(t, event.Away)
}

func TestParseRecords_InvalidTimestampFailsFast(t *testing.T) {
	t.Parallel()

	records := []EventRecord{
		{UserID: "u1", Date: "2026-01-05T09:30:00Z"},
		{UserID: "u1", Date: "not-a-date"},
	}

	events, err := ParseRecords(records)

	assert.Nil(t, events)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

func TestRangeFilter_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filter  RangeFilter
		wantErr bool
	}{
		{"valid range", RangeFilter{StartDate: "2026-01-01", EndDate: "2026-01-07"}, false},
		{"single day", RangeFilter{StartDate: "2026-01-01", EndDate: "2026-01-01"}, false},
		{"missing start", RangeFilter{EndDate: "2026-01-07"}, true},
		{"missing end", RangeFilter{StartDate: "2026-01-01"}, true},
		{"malformed date", RangeFilter{StartDate: "01/01/2026", EndDate: "2026-01-07"}, true},
		{"end before start", RangeFilter{StartDate: "2026-01-07", EndDate: "2026-01-01"}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.filter.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRangeFilter_Bounds(t *testing.T) {
	t.Parallel()

	filter := RangeFilter{StartDate: "2026-01-01", EndDate: "2026-01-07"}

	start, end := filter.Bounds()

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 7, 23, 59, 59, 0, time.UTC), end)
}
