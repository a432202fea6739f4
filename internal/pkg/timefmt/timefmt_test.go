package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "0m", FormatMinutes(-5))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
	// Rounded before splitting, so 479.6 never shows as "7h 60m".
	assert.Equal(t, "8h 0m", FormatMinutes(479.6))
}

func TestMinuteOfDay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, MinuteOfDay(time.Date(2026, 1, 5, 0, 0, 30, 0, time.UTC)))
	assert.Equal(t, 719, MinuteOfDay(time.Date(2026, 1, 5, 11, 59, 59, 0, time.UTC)))
	assert.Equal(t, 720, MinuteOfDay(time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)))
}

func TestDayLabelPTBR(t *testing.T) {
	t.Parallel()

	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "segunda-feira", WeekdayPTBR(monday))
	assert.Equal(t, "Segunda-feira - 05/01/2026", DayLabelPTBR(monday))
	assert.Equal(t, "Sábado - 10/01/2026", DayLabelPTBR(saturday))
}
