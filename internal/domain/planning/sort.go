package planning

import (
	"sort"
	"strings"
)

// SortKey selects the column a detail table is ordered by.
type SortKey string

const (
	SortByDate      SortKey = "date"
	SortByStartTime SortKey = "startTime"
	SortByEndTime   SortKey = "endTime"
	SortByActivity  SortKey = "activityType"
	SortByOperator  SortKey = "operatorDisplayName"
	SortByHours     SortKey = "hours"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortState is the current ordering of a detail table.
type SortState struct {
	Key SortKey       `json:"key"`
	Dir SortDirection `json:"dir"`
}

// DetailRow is one slot row of the event-detail table, already rendered to
// the string representations the table displays and sorts by.
type DetailRow struct {
	ShiftID      string
	SlotIndex    int
	Date         string // YYYY-MM-DD
	StartTime    string // HH:mm
	EndTime      string // HH:mm
	ActivityType string
	Role         string
	OperatorID   string
	OperatorName string // display name, empty for open slots
	Hours        string // fixed-point, two decimals
	IsTeamLeader bool
	CheckInID    string
}

// ToggleSort flips the direction when the same key is selected again and
// resets to ascending on a new key.
func ToggleSort(cur SortState, key SortKey) SortState {
	if cur.Key == key {
		if cur.Dir == SortAsc {
			return SortState{Key: key, Dir: SortDesc}
		}
		return SortState{Key: key, Dir: SortAsc}
	}
	return SortState{Key: key, Dir: SortAsc}
}

// SortRows orders rows in place by the string value of the selected column.
// Comparison is plain lexicographic on every key, including hours: the
// fixed-point strings make "10.00" sort before "9.00", which matches the
// ordering users have always seen and is kept deliberately. Open slots have
// an empty operator name and therefore sort first ascending.
func SortRows(rows []DetailRow, key SortKey, dir SortDirection) {
	sort.SliceStable(rows, func(i, j int) bool {
		a := sortValue(rows[i], key)
		b := sortValue(rows[j], key)
		if dir == SortDesc {
			return strings.Compare(b, a) < 0
		}
		return strings.Compare(a, b) < 0
	})
}

func sortValue(row DetailRow, key SortKey) string {
	switch key {
	case SortByStartTime:
		return row.StartTime
	case SortByEndTime:
		return row.EndTime
	case SortByActivity:
		return row.ActivityType
	case SortByOperator:
		return row.OperatorName
	case SortByHours:
		return row.Hours
	default:
		return row.Date
	}
}

// DisplayName renders "Firstname [Middle] Lastname" as "Lastname Firstname
// [Middle]": the last whitespace token is taken as the surname and moved to
// the front. Single-token and blank names pass through trimmed.
func DisplayName(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) <= 1 {
		return strings.TrimSpace(fullName)
	}
	last := parts[len(parts)-1]
	return last + " " + strings.Join(parts[:len(parts)-1], " ")
}
