package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/cxops-br/presence-insights-go/internal/domain/attendance"
)

type SummaryServiceImpl struct {
	eventRepo attendance.EventRepository
}

func NewSummaryService(eventRepo attendance.EventRepository) attendance.SummaryService {
	return &SummaryServiceImpl{
		eventRepo: eventRepo,
	}
}

// GetSummaries implements attendance.SummaryService.
func (s *SummaryServiceImpl) GetSummaries(ctx context.Context, filter attendance.RangeFilter) ([]attendance.Summary, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, end := filter.Bounds()

	var events []attendance.Event
	var err error
	if filter.Name != "" {
		events, err = s.eventRepo.ListByName(ctx, filter.Name, start, end)
	} else {
		events, err = s.eventRepo.ListByDateRange(ctx, start, end)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance events: %w", err)
	}

	return Calculate(events), nil
}

// PreviewSummaries implements attendance.SummaryService.
func (s *SummaryServiceImpl) PreviewSummaries(ctx context.Context, records []attendance.EventRecord) ([]attendance.Summary, error) {
	events, err := attendance.ParseRecords(records)
	if err != nil {
		return nil, err
	}
	return Calculate(events), nil
}

// GetCurrentStatus implements attendance.SummaryService.
func (s *SummaryServiceImpl) GetCurrentStatus(ctx context.Context) ([]attendance.StatusEntry, error) {
	latest, err := s.eventRepo.LatestByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest events: %w", err)
	}

	entries := make([]attendance.StatusEntry, 0, len(latest))
	for _, event := range latest {
		status := "online"
		if event.Away {
			status = "away"
		}
		entries = append(entries, attendance.StatusEntry{
			UserID:    event.UserID,
			Name:      event.Name,
			Email:     event.Email,
			Timestamp: event.Timestamp.Format(time.RFC3339),
			Status:    status,
			Reason:    event.AwayReason,
		})
	}

	return entries, nil
}

// ListAttendants implements attendance.SummaryService.
func (s *SummaryServiceImpl) ListAttendants(ctx context.Context, filter attendance.RangeFilter) ([]attendance.Attendant, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, end := filter.Bounds()

	attendants, err := s.eventRepo.ListAttendants(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendants: %w", err)
	}

	return attendants, nil
}
