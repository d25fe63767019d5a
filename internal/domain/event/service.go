package event

import (
	"context"

	"github.com/turnario/turnario-backend-go/internal/domain/planning"
)

// EventService defines business logic for events and the planner board.
type EventService interface {
	Create(ctx context.Context, req CreateEventRequest) (EventResponse, error)

	// List returns events grouped by day with day and event aggregates,
	// bounded by the inclusive date-range filter.
	List(ctx context.Context, filter ListEventsFilter) (ListEventsResponse, error)

	// Detail returns the flattened slot rows sorted by the requested column
	// plus the footer totals.
	Detail(ctx context.Context, id string, sort planning.SortState) (EventDetailResponse, error)

	Update(ctx context.Context, req UpdateEventRequest) (EventResponse, error)

	Delete(ctx context.Context, id string) error
}
