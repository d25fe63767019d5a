package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access methods for shifts and their slots.
type ShiftRepository interface {
	Create(ctx context.Context, shift Shift) (Shift, error)

	GetByID(ctx context.Context, id string) (Shift, error)

	// ListByEvent returns the shifts of an event in date+start-time order.
	ListByEvent(ctx context.Context, eventID string) ([]Shift, error)

	// ListByDateRange returns shifts whose date falls in [start, end],
	// either bound optional.
	ListByDateRange(ctx context.Context, start, end *time.Time) ([]Shift, error)

	// ListByOperator returns shifts with the operator in any slot.
	ListByOperator(ctx context.Context, operatorID string) ([]Shift, error)

	Update(ctx context.Context, shift Shift) error

	// UpdateSlots replaces the operator slot list and team leader atomically.
	UpdateSlots(ctx context.Context, shiftID string, operatorIDs []string, teamLeaderID *string) error

	Delete(ctx context.Context, id string) error
}
