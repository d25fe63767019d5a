package attendance

import (
	"context"
)

// AttendanceService defines business logic for operator punch operations
type AttendanceService interface {
	// CheckIn records an operator's check-in punch for a shift
	CheckIn(ctx context.Context, req CheckInRequest) (CheckinResponse, error)

	// CheckOut records an operator's check-out punch for a shift
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckinResponse, error)

	// GetMyAttendance retrieves punch history for the authenticated operator
	// with derived statuses and the summary card figures
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (MyAttendanceResponse, error)
}
