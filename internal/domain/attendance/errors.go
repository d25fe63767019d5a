package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn  = errors.New("you have already checked in for this shift")
	ErrNotCheckedIn      = errors.New("you have not checked in for this shift yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out of this shift")
	ErrNotAssigned       = errors.New("you are not assigned to this shift")

	ErrCheckinNotFound = errors.New("attendance record not found")
)
