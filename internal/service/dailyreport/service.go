package dailyreport

import (
	"context"
	"fmt"
	"time"

	"github.com/cxops-br/presence-insights-go/internal/domain/attendance"
	"github.com/cxops-br/presence-insights-go/internal/domain/report"
	"github.com/google/uuid"
)

type DailyReportServiceImpl struct {
	eventRepo attendance.EventRepository
}

func NewDailyReportService(eventRepo attendance.EventRepository) report.DailyReportService {
	return &DailyReportServiceImpl{
		eventRepo: eventRepo,
	}
}

// Generate implements report.DailyReportService.
func (s *DailyReportServiceImpl) Generate(ctx context.Context, req report.AttendantReportRequest) (report.DailyReport, error) {
	if err := req.Validate(); err != nil {
		return report.DailyReport{}, err
	}

	filter := attendance.RangeFilter{StartDate: req.StartDate, EndDate: req.EndDate}
	start, end := filter.Bounds()

	events, err := s.eventRepo.ListByUser(ctx, req.UserID, start, end)
	if err != nil {
		return report.DailyReport{}, fmt.Errorf("failed to fetch attendance events: %w", err)
	}

	rangeStart, _ := time.Parse("2006-01-02", req.StartDate)
	rangeEnd, _ := time.Parse("2006-01-02", req.EndDate)

	return report.DailyReport{
		ReportID:    uuid.New().String(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		UserID:      req.UserID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Rows:        BuildRows(events, rangeStart, rangeEnd),
	}, nil
}
