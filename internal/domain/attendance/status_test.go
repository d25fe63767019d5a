package attendance

import (
	"testing"
	"time"
)

func TestClassifyStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	future := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	punchIn := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	punchOut := time.Date(2025, 6, 10, 17, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		shiftDate time.Time
		checkIn   *time.Time
		checkOut  *time.Time
		want      Status
	}{
		{"past shift never punched", past, nil, nil, StatusMissed},
		{"both punches", past, &punchIn, &punchOut, StatusCompleted},
		{"checked in only", past, &punchIn, nil, StatusInProgress},
		{"future shift not punched", future, nil, nil, StatusInProgress},
		{"future shift both punches", future, &punchIn, &punchOut, StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyStatus(tt.shiftDate, tt.checkIn, tt.checkOut, now)
			if got != tt.want {
				t.Errorf("ClassifyStatus = %v, want %v", got, tt.want)
			}
		})
	}
}

// Missed must win over an open punch pair on a past shift: the no-check-in
// condition is evaluated first.
func TestClassifyStatusPrecedence(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	punchOut := time.Date(2025, 6, 10, 17, 0, 0, 0, time.UTC)

	// Check-out without check-in is inconsistent data, but the classifier
	// still reports missed for a past shift.
	got := ClassifyStatus(past, nil, &punchOut, now)
	if got != StatusMissed {
		t.Errorf("ClassifyStatus with orphan check-out = %v, want %v", got, StatusMissed)
	}
}

func TestWorkedHours(t *testing.T) {
	in := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	out := time.Date(2025, 6, 10, 17, 30, 0, 0, time.UTC)

	if got := WorkedHours(&in, &out); got != 8.5 {
		t.Errorf("WorkedHours = %v, want 8.5", got)
	}
	if got := WorkedHours(&in, nil); got != 0 {
		t.Errorf("open pair should yield 0, got %v", got)
	}
	if got := WorkedHours(&out, &in); got != 0 {
		t.Errorf("inverted pair should yield 0, got %v", got)
	}
}

func TestWorkedHoursLabel(t *testing.T) {
	in := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	out := time.Date(2025, 6, 10, 17, 45, 0, 0, time.UTC)

	if got := WorkedHoursLabel(&in, &out); got != "8h45m" {
		t.Errorf("WorkedHoursLabel = %q, want %q", got, "8h45m")
	}
	if got := WorkedHoursLabel(&in, nil); got != "-" {
		t.Errorf("open pair label = %q, want %q", got, "-")
	}
	if got := WorkedHoursLabel(nil, nil); got != "-" {
		t.Errorf("empty pair label = %q, want %q", got, "-")
	}
}
