package shift

import "errors"

// Shift domain errors
var (
	ErrShiftNotFound          = errors.New("shift not found")
	ErrSlotIndexOutOfRange    = errors.New("slot index out of range")
	ErrShiftBeforeEventStart  = errors.New("shift date must not precede the event start date")
	ErrOperatorNotInShift     = errors.New("operator is not assigned to this shift")
	ErrOperatorAlreadyInShift = errors.New("operator is already assigned to another slot of this shift")
)
