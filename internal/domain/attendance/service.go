package attendance

import (
	"context"
)

// SummaryService defines business logic for the overview dashboard.
type SummaryService interface {
	// GetSummaries aggregates per-agent presence totals and timelines for a
	// date range.
	GetSummaries(ctx context.Context, filter RangeFilter) ([]Summary, error)

	// PreviewSummaries aggregates caller-supplied raw feed records without
	// touching the backing store.
	PreviewSummaries(ctx context.Context, records []EventRecord) ([]Summary, error)

	// GetCurrentStatus reports the latest known state of every agent.
	GetCurrentStatus(ctx context.Context) ([]StatusEntry, error)

	// ListAttendants lists the distinct agents seen in a date range.
	ListAttendants(ctx context.Context, filter RangeFilter) ([]Attendant, error)
}
