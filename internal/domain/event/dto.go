package event

import (
	"github.com/turnario/turnario-backend-go/internal/domain/planning"
	"github.com/turnario/turnario-backend-go/internal/domain/shift"
	"github.com/turnario/turnario-backend-go/internal/pkg/validator"
)

// ========================================
// EVENT DTOs
// ========================================

type CreateEventRequest struct {
	Title        string  `json:"title"`
	ClientID     string  `json:"client_id"`
	BrandID      *string `json:"brand_id,omitempty"`
	ActivityCode *string `json:"activity_code,omitempty"`
	Address      string  `json:"address"`
	StartDate    string  `json:"start_date"` // YYYY-MM-DD
	EndDate      string  `json:"end_date"`   // YYYY-MM-DD
	ContactName  *string `json:"contact_name,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *CreateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if len(r.Title) > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 200 characters",
		})
	}

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}

	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address is required",
		})
	}

	startDate, startValid := validator.IsValidDate(r.StartDate)
	if !startValid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	endDate, endValid := validator.IsValidDate(r.EndDate)
	if !endValid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startValid && endValid && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not precede start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEventRequest struct {
	ID           string  `json:"-"`
	Title        *string `json:"title,omitempty"`
	ClientID     *string `json:"client_id,omitempty"`
	BrandID      *string `json:"brand_id,omitempty"`
	ActivityCode *string `json:"activity_code,omitempty"`
	Address      *string `json:"address,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *UpdateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}

	if r.StartDate != nil {
		if _, valid := validator.IsValidDate(*r.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EndDate != nil {
		if _, valid := validator.IsValidDate(*r.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListEventsFilter bounds the planner board by an inclusive date range.
type ListEventsFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *ListEventsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	ClientID     string  `json:"client_id"`
	ClientName   *string `json:"client_name,omitempty"`
	BrandID      *string `json:"brand_id,omitempty"`
	BrandName    *string `json:"brand_name,omitempty"`
	ActivityCode *string `json:"activity_code,omitempty"`
	Address      string  `json:"address"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// EventDayItem is one event's row inside a planner-board day.
type EventDayItem struct {
	Event         EventResponse         `json:"event"`
	Shifts        []shift.ShiftResponse `json:"shifts"`
	BilledHours   string                `json:"billed_hours"`   // two decimals
	AssignedHours string                `json:"assigned_hours"` // two decimals
}

// DayGroupResponse is one calendar day of the planner board.
type DayGroupResponse struct {
	Date          string         `json:"date"` // YYYY-MM-DD
	Events        []EventDayItem `json:"events"`
	BilledHours   string         `json:"billed_hours"`
	AssignedHours string         `json:"assigned_hours"`
	OperatorCount int            `json:"operator_count"`
}

type ListEventsResponse struct {
	Days []DayGroupResponse `json:"days"`
}

// SlotRowResponse is one flattened, sorted slot row of the event detail.
type SlotRowResponse struct {
	ShiftID      string `json:"shift_id"`
	SlotIndex    int    `json:"slot_index"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	ActivityType string `json:"activity_type"`
	Role         string `json:"role"`
	OperatorID   string `json:"operator_id,omitempty"`
	OperatorName string `json:"operator_name,omitempty"`
	IsAssigned   bool   `json:"is_assigned"`
	IsTeamLeader bool   `json:"is_team_leader"`
	Hours        string `json:"hours"` // two decimals
}

// EventDetailResponse carries the sorted slot table plus the footer totals
// (one-decimal precision, distinct from the two-decimal row figures).
type EventDetailResponse struct {
	Event              EventResponse      `json:"event"`
	Rows               []SlotRowResponse  `json:"rows"`
	Sort               planning.SortState `json:"sort"`
	TotalBilledHours   string             `json:"total_billed_hours"`   // one decimal
	TotalAssignedHours string             `json:"total_assigned_hours"` // one decimal
}
