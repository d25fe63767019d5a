package planning

import (
	"testing"
	"time"

	"github.com/turnario/turnario-backend-go/internal/domain/shift"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestShiftBilledHours(t *testing.T) {
	s := shift.Shift{StartTime: "09:00", EndTime: "17:00", PauseHours: 1}
	if got := ShiftBilledHours(s); got != 7.0 {
		t.Errorf("ShiftBilledHours = %v, want 7.0", got)
	}
}

func TestShiftAssignedHours(t *testing.T) {
	tests := []struct {
		name        string
		operatorIDs []string
		want        float64
	}{
		{"three of four slots occupied", []string{"a", "b", "c", ""}, 21.0},
		{"no assignments", []string{"", "", ""}, 0},
		{"single slot", []string{"a"}, 7.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := shift.Shift{
				StartTime:   "09:00",
				EndTime:     "17:00",
				PauseHours:  1,
				OperatorIDs: tt.operatorIDs,
			}
			if got := ShiftAssignedHours(s); got != tt.want {
				t.Errorf("ShiftAssignedHours = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventTotals(t *testing.T) {
	shifts := []shift.Shift{
		{StartTime: "09:00", EndTime: "17:00", PauseHours: 1, OperatorIDs: []string{"a", "b"}},
		{StartTime: "20:00", EndTime: "23:00", OperatorIDs: []string{"c", ""}},
	}

	billed, assigned := EventTotals(shifts)
	if billed != 10.0 {
		t.Errorf("billed = %v, want 10.0", billed)
	}
	// 7h x 2 operators + 3h x 1 operator
	if assigned != 17.0 {
		t.Errorf("assigned = %v, want 17.0", assigned)
	}
}

func TestBuildDays(t *testing.T) {
	events := []EventSnapshot{
		{
			EventID: "ev-1",
			Title:   "Fiera Milano",
			Shifts: []shift.Shift{
				{Date: day(2025, 6, 15), StartTime: "09:00", EndTime: "17:00", OperatorIDs: []string{"a", "b"}},
				{Date: day(2025, 6, 14), StartTime: "09:00", EndTime: "13:00", OperatorIDs: []string{"a"}},
			},
		},
		{
			EventID: "ev-2",
			Title:   "Concerto Arena",
			Shifts: []shift.Shift{
				{Date: day(2025, 6, 15), StartTime: "18:00", EndTime: "23:00", OperatorIDs: []string{"c", ""}},
			},
		},
	}

	days := BuildDays(events)
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}

	// Days sorted ascending.
	if !days[0].Date.Equal(day(2025, 6, 14)) {
		t.Errorf("first day = %v, want 2025-06-14", days[0].Date)
	}
	if len(days[0].Events) != 1 || days[0].BilledHours != 4.0 || days[0].AssignedHours != 4.0 {
		t.Errorf("unexpected first day aggregates: %+v", days[0])
	}
	if days[0].OperatorCount != 1 {
		t.Errorf("first day operator count = %d, want 1", days[0].OperatorCount)
	}

	second := days[1]
	if len(second.Events) != 2 {
		t.Fatalf("expected 2 events on second day, got %d", len(second.Events))
	}
	if second.BilledHours != 13.0 {
		t.Errorf("second day billed = %v, want 13.0", second.BilledHours)
	}
	// 8h x 2 + 5h x 1
	if second.AssignedHours != 21.0 {
		t.Errorf("second day assigned = %v, want 21.0", second.AssignedHours)
	}
	if second.OperatorCount != 3 {
		t.Errorf("second day operator count = %d, want 3", second.OperatorCount)
	}
}

func TestFormatHours(t *testing.T) {
	if got := FormatHours(7.5); got != "7.50" {
		t.Errorf("FormatHours(7.5) = %q, want %q", got, "7.50")
	}
	if got := FormatHoursTotal(7.25); got != "7.2" {
		t.Errorf("FormatHoursTotal(7.25) = %q, want %q", got, "7.2")
	}
	if got := FormatHoursTotal(10.0); got != "10.0" {
		t.Errorf("FormatHoursTotal(10.0) = %q, want %q", got, "10.0")
	}
}
