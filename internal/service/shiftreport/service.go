package shiftreport

import (
	"context"
	"fmt"
	"time"

	"github.com/cxops-br/presence-insights-go/internal/domain/attendance"
	"github.com/cxops-br/presence-insights-go/internal/domain/report"
	"github.com/cxops-br/presence-insights-go/internal/domain/shift"
	"github.com/google/uuid"
)

type ShiftReportServiceImpl struct {
	eventRepo attendance.EventRepository
	table     shift.Table
}

func NewShiftReportService(eventRepo attendance.EventRepository, table shift.Table) report.ShiftReportService {
	return &ShiftReportServiceImpl{
		eventRepo: eventRepo,
		table:     table,
	}
}

// Generate implements report.ShiftReportService.
func (s *ShiftReportServiceImpl) Generate(ctx context.Context, req report.AttendantReportRequest) (report.ShiftReport, error) {
	if err := req.Validate(); err != nil {
		return report.ShiftReport{}, err
	}

	filter := attendance.RangeFilter{StartDate: req.StartDate, EndDate: req.EndDate}
	start, end := filter.Bounds()

	events, err := s.eventRepo.ListByUser(ctx, req.UserID, start, end)
	if err != nil {
		return report.ShiftReport{}, fmt.Errorf("failed to fetch attendance events: %w", err)
	}

	return report.ShiftReport{
		ReportID:    uuid.New().String(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		UserID:      req.UserID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Days:        Aggregate(events, s.table),
	}, nil
}

// Preview implements report.ShiftReportService.
func (s *ShiftReportServiceImpl) Preview(ctx context.Context, records []attendance.EventRecord) ([]shift.DailySummary, error) {
	events, err := attendance.ParseRecords(records)
	if err != nil {
		return nil, err
	}
	return Aggregate(events, s.table), nil
}
