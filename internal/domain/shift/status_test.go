package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_PriorityOrder(t *testing.T) {
	t.Parallel()

	window := DefaultTable().Windows()[1] // Tarde

	tests := []struct {
		name       string
		present    int
		away       int
		exitMinute int
		want       Status
		wantLabel  string
	}{
		{"no minutes is checkin only", 0, 0, 800, StatusCheckinOnly, "🔄 Check-in"},
		{"under five minutes is suspicious", 3, 0, 800, StatusSuspicious, "⚠️ Suspeito"},
		{"suspicious wins over absence ratio", 1, 3, 800, StatusSuspicious, "⚠️ Suspeito"},
		{"below half availability is high absence", 20, 40, 800, StatusHighAbsence, "❌ Alta ausência"},
		{"high absence wins over overtime", 20, 40, 1100, StatusHighAbsence, "❌ Alta ausência"},
		{"late exit is overtime", 200, 40, 1100, StatusOvertime, "+HE"},
		{"exit at the limit is not overtime", 200, 40, 1080, StatusNormal, "✅"},
		{"everything fine is normal", 300, 60, 1000, StatusNormal, "✅"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status, label := Classify(tt.present, tt.away, window, tt.exitMinute)
			assert.Equal(t, tt.want, status)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestAvailabilityPercent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, AvailabilityPercent(0, 0))
	assert.Equal(t, 100, AvailabilityPercent(90, 0))
	assert.Equal(t, 0, AvailabilityPercent(0, 90))
	assert.Equal(t, 67, AvailabilityPercent(60, 30))
	assert.Equal(t, 50, AvailabilityPercent(45, 45))
}

func TestWindowOverlap(t *testing.T) {
	t.Parallel()

	morning := DefaultTable().Windows()[0]

	// Fully inside.
	assert.Equal(t, 30, morning.Overlap(540, 570))
	// Crossing the noon boundary: only the morning part counts.
	assert.Equal(t, 10, morning.Overlap(710, 730))
	// Fully outside.
	assert.Zero(t, morning.Overlap(720, 800))
	// Zero-length run.
	assert.Zero(t, morning.Overlap(540, 540))
}

func TestDefaultTableBoundaries(t *testing.T) {
	t.Parallel()

	windows := DefaultTable().Windows()
	morning, afternoon, night := windows[0], windows[1], windows[2]

	// Minute 719 belongs to the morning, 720 to the afternoon.
	assert.Equal(t, 1, morning.Overlap(719, 720))
	assert.Zero(t, afternoon.Overlap(719, 720))
	assert.Equal(t, 1, afternoon.Overlap(720, 721))

	// Minute 1080 belongs to the afternoon, 1081 to the night.
	assert.Equal(t, 1, afternoon.Overlap(1080, 1081))
	assert.Zero(t, night.Overlap(1080, 1081))
	assert.Equal(t, 1, night.Overlap(1081, 1082))
}
