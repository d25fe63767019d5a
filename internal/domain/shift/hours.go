package shift

import (
	"strconv"
	"strings"
)

// parseClock parses an HH:mm string into minutes since midnight.
// Returns ok=false for anything malformed.
func parseClock(clock string) (int, bool) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}

// overnightEnabled is the deployment-wide overnight policy, set once at
// startup before any traffic.
var overnightEnabled bool

// SetAllowOvernight switches EffectiveHours to the overnight-aware
// interpretation for the whole process.
func SetAllowOvernight(enabled bool) {
	overnightEnabled = enabled
}

// EffectiveHours computes billable hours for a start/end clock pair minus the
// unpaid pause. Negative spans (end before start) clamp to zero unless the
// overnight policy is enabled, and a pause exceeding the gross span clamps
// too. Malformed clocks yield 0.
func EffectiveHours(startTime, endTime string, pauseHours float64) float64 {
	return effectiveHours(startTime, endTime, pauseHours, overnightEnabled)
}

// EffectiveHoursOvernight is the overnight-aware variant: a negative span is
// interpreted as crossing midnight and wraps by 24 hours before the pause is
// subtracted.
func EffectiveHoursOvernight(startTime, endTime string, pauseHours float64) float64 {
	return effectiveHours(startTime, endTime, pauseHours, true)
}

func effectiveHours(startTime, endTime string, pauseHours float64, allowOvernight bool) float64 {
	startMin, ok := parseClock(startTime)
	if !ok {
		return 0
	}
	endMin, ok := parseClock(endTime)
	if !ok {
		return 0
	}

	gross := float64(endMin-startMin) / 60.0
	if gross < 0 {
		if allowOvernight {
			gross += 24
		} else {
			gross = 0
		}
	}

	effective := gross - pauseHours
	if effective < 0 {
		return 0
	}
	return effective
}
