package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/turnario/turnario-backend-go/internal/domain/event"
	"github.com/turnario/turnario-backend-go/internal/pkg/database"
)

type eventRepositoryImpl struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) event.EventRepository {
	return &eventRepositoryImpl{db: db}
}

const eventSelect = `
	SELECT e.id, e.title, e.client_id, e.brand_id, e.activity_code, e.address,
		   e.start_date, e.end_date, e.contact_name, e.contact_phone, e.notes,
		   e.created_at, e.updated_at,
		   c.name AS client_name, b.name AS brand_name
	FROM events e
	JOIN clients c ON c.id = e.client_id
	LEFT JOIN brands b ON b.id = e.brand_id
`

func scanEvent(row pgx.Row) (event.Event, error) {
	var ev event.Event
	err := row.Scan(
		&ev.ID,
		&ev.Title,
		&ev.ClientID,
		&ev.BrandID,
		&ev.ActivityCode,
		&ev.Address,
		&ev.StartDate,
		&ev.EndDate,
		&ev.ContactName,
		&ev.ContactPhone,
		&ev.Notes,
		&ev.CreatedAt,
		&ev.UpdatedAt,
		&ev.ClientName,
		&ev.BrandName,
	)
	return ev, err
}

// Create implements event.EventRepository.
func (r *eventRepositoryImpl) Create(ctx context.Context, newEvent event.Event) (event.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO events (title, client_id, brand_id, activity_code, address,
			start_date, end_date, contact_name, contact_phone, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		newEvent.Title,
		newEvent.ClientID,
		newEvent.BrandID,
		newEvent.ActivityCode,
		newEvent.Address,
		newEvent.StartDate,
		newEvent.EndDate,
		newEvent.ContactName,
		newEvent.ContactPhone,
		newEvent.Notes,
	).Scan(&id)
	if err != nil {
		return event.Event{}, fmt.Errorf("create event: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements event.EventRepository.
func (r *eventRepositoryImpl) GetByID(ctx context.Context, id string) (event.Event, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanEvent(q.QueryRow(ctx, eventSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return event.Event{}, event.ErrEventNotFound
		}
		return event.Event{}, fmt.Errorf("get event by id: %w", err)
	}

	return found, nil
}

// List implements event.EventRepository.
func (r *eventRepositoryImpl) List(ctx context.Context, start, end *time.Time) ([]event.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := eventSelect + ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	// Range overlap: an event matches when its span touches [start, end].
	if start != nil {
		query += fmt.Sprintf(` AND e.end_date >= $%d`, argIdx)
		args = append(args, *start)
		argIdx++
	}
	if end != nil {
		query += fmt.Sprintf(` AND e.start_date <= $%d`, argIdx)
		args = append(args, *end)
		argIdx++
	}

	query += ` ORDER BY e.start_date ASC, e.title ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return events, nil
}

// Update implements event.EventRepository.
func (r *eventRepositoryImpl) Update(ctx context.Context, ev event.Event) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE events
		SET title = $1, client_id = $2, brand_id = $3, activity_code = $4,
			address = $5, start_date = $6, end_date = $7,
			contact_name = $8, contact_phone = $9, notes = $10, updated_at = NOW()
		WHERE id = $11
	`

	tag, err := q.Exec(ctx, query,
		ev.Title,
		ev.ClientID,
		ev.BrandID,
		ev.ActivityCode,
		ev.Address,
		ev.StartDate,
		ev.EndDate,
		ev.ContactName,
		ev.ContactPhone,
		ev.Notes,
		ev.ID,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}

	return nil
}

// Delete implements event.EventRepository.
func (r *eventRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var hasShifts bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM shifts WHERE event_id = $1)`, id).Scan(&hasShifts)
	if err != nil {
		return fmt.Errorf("check event shifts: %w", err)
	}
	if hasShifts {
		return event.ErrEventHasShifts
	}

	tag, err := q.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}

	return nil
}
