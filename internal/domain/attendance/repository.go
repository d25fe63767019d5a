package attendance

import (
	"context"
	"time"
)

// CheckinRepository defines data access methods for punch records.
type CheckinRepository interface {
	Create(ctx context.Context, checkin Checkin) (Checkin, error)

	GetByID(ctx context.Context, id string) (Checkin, error)

	// GetByShiftAndOperator retrieves the punch record of an operator on a
	// shift, nil when none exists. Used to reject double check-ins.
	GetByShiftAndOperator(ctx context.Context, shiftID, operatorID string) (*Checkin, error)

	Update(ctx context.Context, checkin Checkin) error

	// ListByOperator returns an operator's records joined with shift and
	// event context, optionally bounded by shift date (inclusive).
	ListByOperator(ctx context.Context, operatorID string, startDate, endDate *time.Time) ([]Checkin, error)

	// ListByShiftIDs returns all punch records for the given shifts.
	ListByShiftIDs(ctx context.Context, shiftIDs []string) ([]Checkin, error)

	// DeleteByShift removes every punch record of a shift. Called when the
	// shift itself is deleted.
	DeleteByShift(ctx context.Context, shiftID string) error
}
