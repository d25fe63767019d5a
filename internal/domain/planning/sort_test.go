package planning

import (
	"testing"
)

func detailRows() []DetailRow {
	return []DetailRow{
		{Date: "2025-06-15", StartTime: "14:00", EndTime: "22:00", ActivityType: "portierato", OperatorName: "Rossi Mario", Hours: "8.00"},
		{Date: "2025-06-14", StartTime: "09:00", EndTime: "19:00", ActivityType: "piantonamento", OperatorName: "Bianchi Luca", Hours: "10.00"},
		{Date: "2025-06-16", StartTime: "08:00", EndTime: "17:00", ActivityType: "accoglienza", OperatorName: "", Hours: "9.00"},
	}
}

func TestSortRowsByDate(t *testing.T) {
	rows := detailRows()
	SortRows(rows, SortByDate, SortAsc)

	want := []string{"2025-06-14", "2025-06-15", "2025-06-16"}
	for i, w := range want {
		if rows[i].Date != w {
			t.Errorf("row %d date = %q, want %q", i, rows[i].Date, w)
		}
	}

	SortRows(rows, SortByDate, SortDesc)
	if rows[0].Date != "2025-06-16" {
		t.Errorf("descending sort first row = %q, want 2025-06-16", rows[0].Date)
	}
}

func TestSortRowsByOperatorUnassignedFirst(t *testing.T) {
	rows := detailRows()
	SortRows(rows, SortByOperator, SortAsc)

	if rows[0].OperatorName != "" {
		t.Errorf("open slot should sort first ascending, got %q", rows[0].OperatorName)
	}
	if rows[1].OperatorName != "Bianchi Luca" || rows[2].OperatorName != "Rossi Mario" {
		t.Errorf("unexpected operator order: %q, %q", rows[1].OperatorName, rows[2].OperatorName)
	}
}

// Hours sort is lexicographic over the fixed-point strings, so "10.00"
// orders before "9.00". Long-standing display behavior, kept as is.
func TestSortRowsByHoursLexicographic(t *testing.T) {
	rows := detailRows()
	SortRows(rows, SortByHours, SortAsc)

	want := []string{"10.00", "8.00", "9.00"}
	for i, w := range want {
		if rows[i].Hours != w {
			t.Errorf("row %d hours = %q, want %q", i, rows[i].Hours, w)
		}
	}
}

func TestSortRowsStable(t *testing.T) {
	rows := []DetailRow{
		{Date: "2025-06-14", SlotIndex: 0, OperatorName: "Rossi Mario"},
		{Date: "2025-06-14", SlotIndex: 1, OperatorName: "Bianchi Luca"},
		{Date: "2025-06-14", SlotIndex: 2, OperatorName: "Verdi Anna"},
	}
	SortRows(rows, SortByDate, SortAsc)

	for i, row := range rows {
		if row.SlotIndex != i {
			t.Errorf("equal keys must preserve order, row %d has SlotIndex %d", i, row.SlotIndex)
		}
	}
}

func TestToggleSort(t *testing.T) {
	cur := SortState{Key: SortByDate, Dir: SortAsc}

	cur = ToggleSort(cur, SortByDate)
	if cur.Dir != SortDesc {
		t.Errorf("same key should flip to desc, got %v", cur.Dir)
	}

	cur = ToggleSort(cur, SortByDate)
	if cur.Dir != SortAsc {
		t.Errorf("same key should flip back to asc, got %v", cur.Dir)
	}

	cur = ToggleSort(cur, SortByOperator)
	if cur.Key != SortByOperator || cur.Dir != SortAsc {
		t.Errorf("new key should reset ascending, got %+v", cur)
	}

	cur.Dir = SortDesc
	cur = ToggleSort(cur, SortByHours)
	if cur.Dir != SortAsc {
		t.Errorf("new key after desc should reset ascending, got %v", cur.Dir)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Mario Rossi", "Rossi Mario"},
		{"Anna Maria Verdi", "Verdi Anna Maria"},
		{"Cher", "Cher"},
		{"  Mario   Rossi  ", "Rossi Mario"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.in); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
