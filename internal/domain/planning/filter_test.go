package planning

import (
	"testing"
	"time"
)

func TestFilterDaysByRange(t *testing.T) {
	days := []DaySnapshot{
		{Date: day(2025, 6, 13)},
		{Date: day(2025, 6, 14)},
		{Date: day(2025, 6, 15)},
		{Date: day(2025, 6, 16)},
	}

	from := day(2025, 6, 14)
	to := day(2025, 6, 15)

	t.Run("both bounds inclusive", func(t *testing.T) {
		got := FilterDaysByRange(days, &from, &to)
		if len(got) != 2 {
			t.Fatalf("expected 2 days, got %d", len(got))
		}
		if !got[0].Date.Equal(from) || !got[1].Date.Equal(to) {
			t.Errorf("boundary days must be included: %v, %v", got[0].Date, got[1].Date)
		}
	})

	t.Run("only from", func(t *testing.T) {
		got := FilterDaysByRange(days, &from, nil)
		if len(got) != 3 {
			t.Errorf("expected 3 days, got %d", len(got))
		}
	})

	t.Run("only to", func(t *testing.T) {
		got := FilterDaysByRange(days, nil, &to)
		if len(got) != 3 {
			t.Errorf("expected 3 days, got %d", len(got))
		}
	})

	t.Run("no bounds", func(t *testing.T) {
		got := FilterDaysByRange(days, nil, nil)
		if len(got) != 4 {
			t.Errorf("expected all days back, got %d", len(got))
		}
	})

	t.Run("bound with time of day", func(t *testing.T) {
		late := time.Date(2025, 6, 14, 23, 30, 0, 0, time.UTC)
		got := FilterDaysByRange(days, &late, nil)
		if len(got) != 3 {
			t.Errorf("from bound must compare by day, got %d days", len(got))
		}
	})
}

func TestFilterByStatus(t *testing.T) {
	type record struct {
		id     string
		status string
	}
	records := []record{
		{"1", "completed"},
		{"2", "missed"},
		{"3", "completed"},
		{"4", "in_progress"},
	}
	statusOf := func(r record) string { return r.status }

	got := FilterByStatus(records, "completed", statusOf)
	if len(got) != 2 || got[0].id != "1" || got[1].id != "3" {
		t.Errorf("unexpected completed filter result: %+v", got)
	}

	if got := FilterByStatus(records, "all", statusOf); len(got) != 4 {
		t.Errorf("status all must pass everything, got %d", len(got))
	}

	if got := FilterByStatus(records, "missed", statusOf); len(got) != 1 || got[0].id != "2" {
		t.Errorf("unexpected missed filter result: %+v", got)
	}
}
