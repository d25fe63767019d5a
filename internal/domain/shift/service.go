package shift

import (
	"context"
)

// ShiftService defines business logic for shifts and slot assignment.
type ShiftService interface {
	// Create builds a shift with the requested number of empty slots.
	// The shift date must not precede the event start date.
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)

	Get(ctx context.Context, id string) (ShiftResponse, error)

	Update(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)

	// AssignSlot assigns or clears one slot by index. Assignments notify
	// the operator.
	AssignSlot(ctx context.Context, req AssignSlotRequest) (ShiftResponse, error)

	// SetTeamLeader marks an assigned operator as team leader (at most one
	// per shift) or clears the flag.
	SetTeamLeader(ctx context.Context, req SetTeamLeaderRequest) (ShiftResponse, error)

	Delete(ctx context.Context, id string) error
}
