package shift

import (
	"testing"
	"time"
)

func TestShiftSlots(t *testing.T) {
	leader := "op-2"
	s := Shift{
		ID:           "shift-1",
		EventID:      "event-1",
		Date:         time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		StartTime:    "09:00",
		EndTime:      "17:00",
		PauseHours:   1,
		OperatorIDs:  []string{"op-1", "", "op-2"},
		TeamLeaderID: &leader,
		ActivityType: "piantonamento",
		Role:         "GPG",
	}

	rows := s.Slots()
	if len(rows) != 3 {
		t.Fatalf("expected 3 slot rows, got %d", len(rows))
	}

	for i, row := range rows {
		if row.SlotIndex != i {
			t.Errorf("row %d has SlotIndex %d", i, row.SlotIndex)
		}
		if row.ShiftID != "shift-1" {
			t.Errorf("row %d has ShiftID %q", i, row.ShiftID)
		}
	}

	if !rows[0].IsAssigned || rows[0].OperatorID != "op-1" {
		t.Errorf("slot 0 should be assigned to op-1, got %+v", rows[0])
	}
	if rows[1].IsAssigned || rows[1].OperatorID != "" {
		t.Errorf("slot 1 should be an open slot, got %+v", rows[1])
	}
	if !rows[2].IsTeamLeader {
		t.Errorf("slot 2 should carry the team leader flag")
	}
	if rows[0].IsTeamLeader {
		t.Errorf("slot 0 should not carry the team leader flag")
	}
}

func TestShiftSlotsEmpty(t *testing.T) {
	s := Shift{ID: "shift-1", RequiredOperators: 5}
	if rows := s.Slots(); len(rows) != 0 {
		t.Errorf("expected no rows for empty OperatorIDs, got %d", len(rows))
	}
}

func TestOccupiedSlots(t *testing.T) {
	s := Shift{OperatorIDs: []string{"op-1", "", "op-2", ""}}
	if got := s.OccupiedSlots(); got != 2 {
		t.Errorf("OccupiedSlots() = %d, want 2", got)
	}
}

func TestLooksUnassigned(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"Da assegnare", true},
		{"DA ASSEGNARE", true},
		{"assegnare al piu presto", true},
		{"Mario Rossi", false},
		{"Alessandro Assegnati", true}, // substring match is intentional
	}

	for _, tt := range tests {
		if got := LooksUnassigned(tt.name); got != tt.want {
			t.Errorf("LooksUnassigned(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
