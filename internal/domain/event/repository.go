package event

import (
	"context"
	"time"
)

// EventRepository defines data access methods for events.
type EventRepository interface {
	Create(ctx context.Context, event Event) (Event, error)

	// GetByID retrieves an event joined with its client and brand names.
	GetByID(ctx context.Context, id string) (Event, error)

	// List retrieves events overlapping the inclusive [start, end] range,
	// either bound optional, ordered by start date.
	List(ctx context.Context, start, end *time.Time) ([]Event, error)

	Update(ctx context.Context, event Event) error

	Delete(ctx context.Context, id string) error
}
