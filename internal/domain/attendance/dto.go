package attendance

import (
	"fmt"
	"time"

	"github.com/cxops-br/presence-insights-go/internal/pkg/validator"
)

// ========================================
// FEED DTOs
// ========================================

// EventRecord mirrors one row of the intercom_attendance feed as the
// collaborator delivers it: date is an ISO-8601 UTC string and away mode is
// encoded as 0/1.
type EventRecord struct {
	UserID           string  `json:"id_user"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Date             string  `json:"date"`
	AwayModeEnabled  int     `json:"away_mode_enabled"`
	AwayStatusReason *string `json:"away_status_reason"`
}

// Timestamp layouts accepted from the feed. Supabase exports both zoned and
// zoneless variants depending on the column type.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// Parse converts a raw feed record into a domain event. Unparseable
// timestamps fail fast with ErrInvalidTimestamp instead of propagating
// garbage durations downstream.
func (r EventRecord) Parse() (Event, error) {
	var ts time.Time
	var err error
	for _, layout := range timestampLayouts {
		ts, err = time.Parse(layout, r.Date)
		if err == nil {
			break
		}
	}
	if err != nil {
		return Event{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, r.Date)
	}

	return Event{
		UserID:     r.UserID,
		Name:       r.Name,
		Email:      r.Email,
		Timestamp:  ts.UTC(),
		Away:       r.AwayModeEnabled == 1,
		AwayReason: r.AwayStatusReason,
	}, nil
}

// ParseRecords converts a batch of feed records, failing on the first bad
// timestamp.
func ParseRecords(records []EventRecord) ([]Event, error) {
	events := make([]Event, 0, len(records))
	for _, r := range records {
		event, err := r.Parse()
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

// ========================================
// SUMMARY DTOs
// ========================================

// TimelineEntry is one point of an agent's chronological entry/exit timeline.
// DurationMinutes is nil on the last entry, whose end is unknown.
type TimelineEntry struct {
	Timestamp       string   `json:"timestamp"`
	Type            string   `json:"type"` // entry | exit
	Reason          *string  `json:"reason"`
	DurationMinutes *float64 `json:"duration_minutes,omitempty"`
}

// Summary aggregates one agent's presence over the queried range.
type Summary struct {
	UserID              string          `json:"id_user"`
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	TotalPresentMinutes float64         `json:"total_present_minutes"`
	TotalAwayMinutes    float64         `json:"total_away_minutes"`
	CurrentStatus       string          `json:"current_status"` // online | away
	CurrentReason       *string         `json:"current_reason"`
	AvailabilityPercent int             `json:"availability_percent"`
	Timeline            []TimelineEntry `json:"timeline"`
}

// StatusEntry is the most recent known state of one agent.
type StatusEntry struct {
	UserID    string  `json:"id_user"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Timestamp string  `json:"timestamp"`
	Status    string  `json:"status"` // online | away
	Reason    *string `json:"reason"`
}

// ========================================
// FILTERS
// ========================================

// RangeFilter bounds a query to a closed date range, optionally narrowed by a
// case-insensitive name match.
type RangeFilter struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
	Name      string `json:"name,omitempty"`
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	start, startValid := validator.IsValidDate(f.StartDate)
	if validator.IsEmpty(f.StartDate) || !startValid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required in YYYY-MM-DD format",
		})
	}

	end, endValid := validator.IsValidDate(f.EndDate)
	if validator.IsEmpty(f.EndDate) || !endValid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required in YYYY-MM-DD format",
		})
	}

	if startValid && endValid && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Bounds expands the filter into UTC instants covering the whole range,
// start of the first day through the last second of the last day.
func (f *RangeFilter) Bounds() (time.Time, time.Time) {
	start, _ := time.Parse("2006-01-02", f.StartDate)
	end, _ := time.Parse("2006-01-02", f.EndDate)
	return start, end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
