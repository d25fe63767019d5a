package shift

import (
	"time"

	"github.com/turnario/turnario-backend-go/internal/pkg/validator"
)

// ========================================
// SHIFT DTOs
// ========================================

type CreateShiftRequest struct {
	EventID           string  `json:"event_id"`
	Date              string  `json:"date"`       // YYYY-MM-DD
	StartTime         string  `json:"start_time"` // HH:mm
	EndTime           string  `json:"end_time"`   // HH:mm
	PauseHours        float64 `json:"pause_hours"`
	RequiredOperators int     `json:"required_operators"`
	ActivityType      string  `json:"activity_type"`
	Role              string  `json:"role"`
	Notes             *string `json:"notes,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EventID) {
		errs = append(errs, validator.ValidationError{
			Field:   "event_id",
			Message: "event_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:mm format",
		})
	}

	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:mm format",
		})
	}

	if r.PauseHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "pause_hours",
			Message: "pause_hours must not be negative",
		})
	}

	if r.RequiredOperators < MinOperatorsPerShift || r.RequiredOperators > MaxOperatorsPerShift {
		errs = append(errs, validator.ValidationError{
			Field:   "required_operators",
			Message: "required_operators must be between 1 and 20",
		})
	}

	if validator.IsEmpty(r.ActivityType) {
		errs = append(errs, validator.ValidationError{
			Field:   "activity_type",
			Message: "activity_type is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	ID           string   `json:"-"`
	Date         *string  `json:"date,omitempty"`       // YYYY-MM-DD
	StartTime    *string  `json:"start_time,omitempty"` // HH:mm
	EndTime      *string  `json:"end_time,omitempty"`   // HH:mm
	PauseHours   *float64 `json:"pause_hours,omitempty"`
	ActivityType *string  `json:"activity_type,omitempty"`
	Role         *string  `json:"role,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Date != nil {
		if _, valid := validator.IsValidDate(*r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.StartTime != nil && !validator.IsValidClockTime(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:mm format",
		})
	}

	if r.EndTime != nil && !validator.IsValidClockTime(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:mm format",
		})
	}

	if r.PauseHours != nil && *r.PauseHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "pause_hours",
			Message: "pause_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AssignSlotRequest assigns an operator to one slot, or clears it when
// OperatorID is nil or empty.
type AssignSlotRequest struct {
	ShiftID    string  `json:"-"`
	SlotIndex  int     `json:"-"`
	OperatorID *string `json:"operator_id,omitempty"`
}

// SetTeamLeaderRequest marks an assigned operator as team leader, or clears
// the flag when OperatorID is nil.
type SetTeamLeaderRequest struct {
	ShiftID    string  `json:"-"`
	OperatorID *string `json:"operator_id,omitempty"`
}

// NewShiftResponse renders a shift for API responses.
func NewShiftResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:                s.ID,
		EventID:           s.EventID,
		EventTitle:        s.EventTitle,
		Date:              s.Date.Format("2006-01-02"),
		StartTime:         s.StartTime,
		EndTime:           s.EndTime,
		PauseHours:        s.PauseHours,
		RequiredOperators: s.RequiredOperators,
		OperatorIDs:       s.OperatorIDs,
		TeamLeaderID:      s.TeamLeaderID,
		ActivityType:      s.ActivityType,
		Role:              s.Role,
		Notes:             s.Notes,
		EffectiveHours:    EffectiveHours(s.StartTime, s.EndTime, s.PauseHours),
		OccupiedSlots:     s.OccupiedSlots(),
		CreatedAt:         s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         s.UpdatedAt.Format(time.RFC3339),
	}
}

type ShiftResponse struct {
	ID                string   `json:"id"`
	EventID           string   `json:"event_id"`
	EventTitle        *string  `json:"event_title,omitempty"`
	Date              string   `json:"date"`
	StartTime         string   `json:"start_time"`
	EndTime           string   `json:"end_time"`
	PauseHours        float64  `json:"pause_hours"`
	RequiredOperators int      `json:"required_operators"`
	OperatorIDs       []string `json:"operator_ids"`
	TeamLeaderID      *string  `json:"team_leader_id,omitempty"`
	ActivityType      string   `json:"activity_type"`
	Role              string   `json:"role"`
	Notes             *string  `json:"notes,omitempty"`
	EffectiveHours    float64  `json:"effective_hours"`
	OccupiedSlots     int      `json:"occupied_slots"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}
