package response

import (
	"errors"
	"net/http"

	"github.com/turnario/turnario-backend-go/internal/domain/attendance"
	"github.com/turnario/turnario-backend-go/internal/domain/auth"
	"github.com/turnario/turnario-backend-go/internal/domain/event"
	"github.com/turnario/turnario-backend-go/internal/domain/master/brand"
	"github.com/turnario/turnario-backend-go/internal/domain/master/client"
	"github.com/turnario/turnario-backend-go/internal/domain/notification"
	"github.com/turnario/turnario-backend-go/internal/domain/operator"
	"github.com/turnario/turnario-backend-go/internal/domain/shift"
	"github.com/turnario/turnario-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountDeactivated):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound),
		errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, "Refresh token cookie missing")

	// Operator domain errors
	case errors.Is(err, operator.ErrOperatorNotFound):
		NotFound(w, "Operator not found")
	case errors.Is(err, operator.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, operator.ErrOperatorInactive):
		Conflict(w, "Operator account is deactivated")
	case errors.Is(err, operator.ErrPlannerAccessRequired),
		errors.Is(err, operator.ErrAdminAccessRequired):
		Forbidden(w, err.Error())

	// Event domain errors
	case errors.Is(err, event.ErrEventNotFound):
		NotFound(w, "Event not found")
	case errors.Is(err, event.ErrEventHasShifts):
		Conflict(w, "Event still has shifts")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrSlotIndexOutOfRange):
		BadRequest(w, "Slot index out of range", nil)
	case errors.Is(err, shift.ErrShiftBeforeEventStart):
		BadRequest(w, "Shift date must not precede the event start date", nil)
	case errors.Is(err, shift.ErrOperatorNotInShift):
		BadRequest(w, "Operator is not assigned to this shift", nil)
	case errors.Is(err, shift.ErrOperatorAlreadyInShift):
		Conflict(w, "Operator is already assigned to this shift")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrCheckinNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in for this shift")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out of this shift")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Not checked in for this shift yet", nil)
	case errors.Is(err, attendance.ErrNotAssigned):
		Forbidden(w, "Not assigned to this shift")

	// Master data errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrClientNameExists):
		Conflict(w, "Client name already exists")
	case errors.Is(err, brand.ErrBrandNotFound):
		NotFound(w, "Brand not found")
	case errors.Is(err, brand.ErrBrandNameExists):
		Conflict(w, "Brand name already exists for this client")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this notification")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
