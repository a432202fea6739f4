package report

import (
	"context"

	"github.com/cxops-br/presence-insights-go/internal/domain/attendance"
	"github.com/cxops-br/presence-insights-go/internal/domain/shift"
)

// ShiftReportService generates the per-attendant shift breakdown.
type ShiftReportService interface {
	// Generate builds the shift report for one agent over a date range.
	Generate(ctx context.Context, req AttendantReportRequest) (ShiftReport, error)

	// Preview aggregates caller-supplied raw feed records without touching
	// the backing store.
	Preview(ctx context.Context, records []attendance.EventRecord) ([]shift.DailySummary, error)
}

// DailyReportService generates the per-attendant calendar view.
type DailyReportService interface {
	Generate(ctx context.Context, req AttendantReportRequest) (DailyReport, error)
}
