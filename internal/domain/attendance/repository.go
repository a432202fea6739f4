package attendance

import (
	"context"
	"time"
)

// EventRepository is the read side of the intercom_attendance feed, the only
// I/O in the system. Every List method paginates transparently past the
// per-request row cap and returns rows ordered by timestamp ascending.
type EventRepository interface {
	// ListByDateRange retrieves all events between start and end inclusive.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]Event, error)

	// ListByUser retrieves one agent's events between start and end inclusive.
	ListByUser(ctx context.Context, userID string, start, end time.Time) ([]Event, error)

	// ListByName retrieves events for agents whose name matches the given
	// fragment, case-insensitively.
	ListByName(ctx context.Context, name string, start, end time.Time) ([]Event, error)

	// ListAttendants retrieves the distinct agents seen in the range, sorted
	// by name.
	ListAttendants(ctx context.Context, start, end time.Time) ([]Attendant, error)

	// LatestByUser retrieves the most recent event of every agent.
	LatestByUser(ctx context.Context) ([]Event, error)
}
