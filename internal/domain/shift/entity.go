package shift

import (
	"strings"
	"time"
)

const (
	// Slot count bounds enforced when creating or resizing a shift.
	MinOperatorsPerShift = 1
	MaxOperatorsPerShift = 20
)

// UnassignedSentinel is the legacy placeholder fragment used by older data
// entry for open slots ("da assegnare"). Names containing it are treated as
// unassigned regardless of case.
const UnassignedSentinel = "assegna"

type Shift struct {
	ID                string
	EventID           string
	Date              time.Time
	StartTime         string // HH:mm
	EndTime           string // HH:mm
	PauseHours        float64
	RequiredOperators int
	// OperatorIDs is the authoritative slot list: one entry per slot,
	// empty string meaning an open slot. RequiredOperators is informational
	// only and is never used to pad or truncate this list.
	OperatorIDs  []string
	TeamLeaderID *string
	ActivityType string
	Role         string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	EventTitle *string
	EventStart *time.Time
}

// SlotRow is one slot of a shift flattened into a row, as shown in the
// event-detail table. Slot order follows OperatorIDs order.
type SlotRow struct {
	ShiftID      string
	SlotIndex    int
	OperatorID   string
	IsAssigned   bool
	Date         time.Time
	StartTime    string
	EndTime      string
	PauseHours   float64
	ActivityType string
	Role         string
	IsTeamLeader bool
}

// Slots flattens the shift into one SlotRow per OperatorIDs entry.
func (s Shift) Slots() []SlotRow {
	rows := make([]SlotRow, 0, len(s.OperatorIDs))
	for i, operatorID := range s.OperatorIDs {
		rows = append(rows, SlotRow{
			ShiftID:      s.ID,
			SlotIndex:    i,
			OperatorID:   operatorID,
			IsAssigned:   operatorID != "",
			Date:         s.Date,
			StartTime:    s.StartTime,
			EndTime:      s.EndTime,
			PauseHours:   s.PauseHours,
			ActivityType: s.ActivityType,
			Role:         s.Role,
			IsTeamLeader: s.TeamLeaderID != nil && operatorID != "" && *s.TeamLeaderID == operatorID,
		})
	}
	return rows
}

// OccupiedSlots returns the number of non-empty operator slots.
func (s Shift) OccupiedSlots() int {
	count := 0
	for _, operatorID := range s.OperatorIDs {
		if operatorID != "" {
			count++
		}
	}
	return count
}

// LooksUnassigned reports whether an operator display name denotes an open
// slot: empty or whitespace-only, or containing the legacy placeholder text.
func LooksUnassigned(name string) bool {
	if strings.TrimSpace(name) == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), UnassignedSentinel)
}
