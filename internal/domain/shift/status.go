package shift

import "math"

// Status classifies the quality of one shift record.
type Status string

const (
	StatusNormal      Status = "normal"
	StatusOvertime    Status = "overtime"
	StatusSuspicious  Status = "suspicious"
	StatusCheckinOnly Status = "checkin_only"
	StatusHighAbsence Status = "high_absence"
)

// Classify applies the record-quality checks in fixed priority order and
// returns the status plus its display label. exitMinute is the minute-of-day
// the agent was last seen working inside this shift.
func Classify(presentMinutes, awayMinutes int, w Window, exitMinute int) (Status, string) {
	total := presentMinutes + awayMinutes
	availability := 0.0
	if total > 0 {
		availability = float64(presentMinutes) / float64(total) * 100
	}

	if total == 0 {
		return StatusCheckinOnly, "🔄 Check-in"
	}

	if total < 5 {
		return StatusSuspicious, "⚠️ Suspeito"
	}

	if availability < 50 {
		return StatusHighAbsence, "❌ Alta ausência"
	}

	if exitMinute > w.OvertimeAfter {
		return StatusOvertime, "+HE"
	}

	return StatusNormal, "✅"
}

// AvailabilityPercent is present ÷ (present+away) × 100, rounded, 0 when no
// minutes accrued.
func AvailabilityPercent(presentMinutes, awayMinutes int) int {
	total := presentMinutes + awayMinutes
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(presentMinutes) / float64(total) * 100))
}
