package attendance

import (
	"fmt"
	"time"
)

// Status is the derived attendance state of a shift record.
type Status string

const (
	StatusMissed     Status = "missed"
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in_progress"
)

// ClassifyStatus derives the attendance status from the punch pair and the
// shift date. Precedence matters and is fixed: a missing check-in on a past
// shift wins over everything, then a closed punch pair, then in_progress as
// the fallthrough. A future shift with no check-in therefore reports
// in_progress rather than a separate scheduled state.
func ClassifyStatus(shiftDate time.Time, checkIn, checkOut *time.Time, now time.Time) Status {
	if checkIn == nil && shiftDate.Before(now) {
		return StatusMissed
	}
	if checkIn != nil && checkOut != nil {
		return StatusCompleted
	}
	return StatusInProgress
}

// WorkedHours returns the decimal hours between the two punches, zero when
// the pair is open or inverted.
func WorkedHours(checkIn, checkOut *time.Time) float64 {
	if checkIn == nil || checkOut == nil {
		return 0
	}
	diff := checkOut.Sub(*checkIn).Hours()
	if diff < 0 {
		return 0
	}
	return diff
}

// WorkedHoursLabel renders the punch pair as "XhYm", or "-" when the pair
// is still open.
func WorkedHoursLabel(checkIn, checkOut *time.Time) string {
	if checkIn == nil || checkOut == nil {
		return "-"
	}
	minutes := int(checkOut.Sub(*checkIn).Minutes())
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
}
