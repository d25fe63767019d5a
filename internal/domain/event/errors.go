package event

import "errors"

// Event domain errors
var (
	ErrEventNotFound  = errors.New("event not found")
	ErrEventHasShifts = errors.New("event still has shifts and cannot be deleted")
)
