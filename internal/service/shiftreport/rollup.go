package shiftreport

import (
	"github.com/cxops-br/presence-insights-go/internal/domain/shift"
)

// Rollup sums a day's shift records into daily totals plus the rounded
// availability percentage (0 when nothing accrued). Purely additive.
func Rollup(records []shift.Record) (presentMinutes, awayMinutes, availabilityPercent int) {
	for _, r := range records {
		presentMinutes += r.PresentMinutes
		awayMinutes += r.AwayMinutes
	}
	availabilityPercent = shift.AvailabilityPercent(presentMinutes, awayMinutes)
	return presentMinutes, awayMinutes, availabilityPercent
}
