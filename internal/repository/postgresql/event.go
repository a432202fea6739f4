package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cxops-br/presence-insights-go/internal/domain/attendance"
	"github.com/cxops-br/presence-insights-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// pageSize caps a single fetch; list methods loop past it so callers always
// see the whole range regardless of how many rows it spans.
const pageSize = 1000

type eventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) attendance.EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `id_user, name, email, date, away_mode_enabled, away_status_reason`

func scanEvents(rows pgx.Rows) ([]attendance.Event, error) {
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var event attendance.Event
		var awayMode int
		err := rows.Scan(
			&event.UserID, &event.Name, &event.Email,
			&event.Timestamp, &awayMode, &event.AwayReason,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		event.Timestamp = event.Timestamp.UTC()
		event.Away = awayMode == 1
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance events: %w", err)
	}

	return events, nil
}

// listPaginated runs query page by page until a short page signals the end.
// query must order deterministically and end with LIMIT/OFFSET placeholders.
func (r *eventRepository) listPaginated(ctx context.Context, query string, args ...interface{}) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	var all []attendance.Event
	for offset := 0; ; offset += pageSize {
		pageArgs := append(append([]interface{}{}, args...), pageSize, offset)
		rows, err := q.Query(ctx, query, pageArgs...)
		if err != nil {
			return nil, fmt.Errorf("failed to query attendance events: %w", err)
		}

		page, err := scanEvents(rows)
		if err != nil {
			return nil, err
		}

		all = append(all, page...)
		if len(page) < pageSize {
			break
		}
	}

	return all, nil
}

// ListByDateRange implements attendance.EventRepository.
func (r *eventRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]attendance.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM intercom_attendance
		WHERE date >= $1
		  AND date <= $2
		ORDER BY date ASC, id_user ASC
		LIMIT $3 OFFSET $4
	`, eventColumns)

	return r.listPaginated(ctx, query, start, end)
}

// ListByUser implements attendance.EventRepository.
func (r *eventRepository) ListByUser(ctx context.Context, userID string, start, end time.Time) ([]attendance.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM intercom_attendance
		WHERE id_user = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date ASC
		LIMIT $4 OFFSET $5
	`, eventColumns)

	return r.listPaginated(ctx, query, userID, start, end)
}

// ListByName implements attendance.EventRepository.
func (r *eventRepository) ListByName(ctx context.Context, name string, start, end time.Time) ([]attendance.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM intercom_attendance
		WHERE name ILIKE '%%' || $1 || '%%'
		  AND date >= $2
		  AND date <= $3
		ORDER BY date ASC, id_user ASC
		LIMIT $4 OFFSET $5
	`, eventColumns)

	return r.listPaginated(ctx, query, name, start, end)
}

// ListAttendants implements attendance.EventRepository.
func (r *eventRepository) ListAttendants(ctx context.Context, start, end time.Time) ([]attendance.Attendant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT id_user, name, email
		FROM intercom_attendance
		WHERE date >= $1
		  AND date <= $2
		ORDER BY name ASC, id_user ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendants: %w", err)
	}
	defer rows.Close()

	var attendants []attendance.Attendant
	for rows.Next() {
		var a attendance.Attendant
		if err := rows.Scan(&a.UserID, &a.Name, &a.Email); err != nil {
			return nil, fmt.Errorf("failed to scan attendant: %w", err)
		}
		attendants = append(attendants, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendants: %w", err)
	}

	return attendants, nil
}

// LatestByUser implements attendance.EventRepository.
func (r *eventRepository) LatestByUser(ctx context.Context) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT DISTINCT ON (id_user) %s
		FROM intercom_attendance
		ORDER BY id_user ASC, date DESC
	`, eventColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest events: %w", err)
	}

	return scanEvents(rows)
}
