package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeShiftAssigned   NotificationType = "shift_assigned"
	TypeShiftUnassigned NotificationType = "shift_unassigned"
	TypeShiftUpdated    NotificationType = "shift_updated"
	TypeTeamLeaderSet   NotificationType = "team_leader_set"
	TypeMissedCheckins  NotificationType = "missed_checkins"
)

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
