package event

import (
	"time"
)

type Event struct {
	ID           string
	Title        string
	ClientID     string
	BrandID      *string
	ActivityCode *string
	Address      string
	StartDate    time.Time
	EndDate      time.Time
	ContactName  *string
	ContactPhone *string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	ClientName *string
	BrandName  *string
}
