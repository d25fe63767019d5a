package shift

import "testing"

func TestEffectiveHours(t *testing.T) {
	tests := []struct {
		name       string
		start      string
		end        string
		pauseHours float64
		want       float64
	}{
		{"standard day with pause", "09:00", "17:00", 1, 7.0},
		{"no pause", "09:00", "17:00", 0, 8.0},
		{"half hours", "08:30", "12:00", 0, 3.5},
		{"end before start clamps to zero", "17:00", "09:00", 0, 0},
		{"end before start with pause", "17:00", "09:00", 1, 0},
		{"pause exceeds span", "09:00", "10:00", 2, 0},
		{"pause equals span", "09:00", "10:00", 1, 0},
		{"zero-length shift", "09:00", "09:00", 0, 0},
		{"fractional pause", "09:00", "17:00", 0.5, 7.5},
		{"malformed start", "9am", "17:00", 0, 0},
		{"malformed end", "09:00", "", 1, 0},
		{"out-of-range minutes", "09:75", "17:00", 0, 0},
		{"out-of-range hours", "25:00", "26:00", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveHours(tt.start, tt.end, tt.pauseHours)
			if got != tt.want {
				t.Errorf("EffectiveHours(%q, %q, %v) = %v, want %v",
					tt.start, tt.end, tt.pauseHours, got, tt.want)
			}
		})
	}
}

func TestEffectiveHoursOvernight(t *testing.T) {
	tests := []struct {
		name       string
		start      string
		end        string
		pauseHours float64
		want       float64
	}{
		{"day shift unchanged", "09:00", "17:00", 1, 7.0},
		{"overnight wraps", "22:00", "06:00", 0, 8.0},
		{"overnight with pause", "22:00", "06:00", 1, 7.0},
		{"just past midnight", "23:30", "00:30", 0, 1.0},
		{"overnight pause exceeds span", "23:00", "01:00", 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveHoursOvernight(tt.start, tt.end, tt.pauseHours)
			if got != tt.want {
				t.Errorf("EffectiveHoursOvernight(%q, %q, %v) = %v, want %v",
					tt.start, tt.end, tt.pauseHours, got, tt.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		clock   string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:00", 540, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"12", 0, false},
		{"12:00:00", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseClock(tt.clock)
		if got != tt.minutes || ok != tt.ok {
			t.Errorf("parseClock(%q) = (%d, %v), want (%d, %v)", tt.clock, got, ok, tt.minutes, tt.ok)
		}
	}
}
