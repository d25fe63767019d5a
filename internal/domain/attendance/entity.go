package attendance

import (
	"time"
)

// Checkin is one operator's punch record for a shift. Status is never stored:
// it is derived from the punches and the shift date on every read.
type Checkin struct {
	ID                string
	ShiftID           string
	OperatorID        string
	CheckIn           *time.Time
	CheckOut          *time.Time
	CheckInLatitude   *float64
	CheckInLongitude  *float64
	CheckOutLatitude  *float64
	CheckOutLongitude *float64
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO
	OperatorName *string
	ShiftDate    *time.Time
	StartTime    *string
	EndTime      *string
	EventTitle   *string
	EventAddress *string
	ClientName   *string
	BrandName    *string
}
