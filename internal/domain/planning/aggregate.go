package planning

import (
	"fmt"
	"sort"
	"time"

	"github.com/turnario/turnario-backend-go/internal/domain/shift"
)

// The aggregation engine is a pure recompute over shift snapshots: no totals
// are stored anywhere, every figure is derived from scratch on each call.

// EventSnapshot is the slice of an event the planner board needs.
type EventSnapshot struct {
	EventID string
	Title   string
	Shifts  []shift.Shift
}

// EventDayView is one event's share of a single day.
type EventDayView struct {
	EventID       string
	Title         string
	Shifts        []shift.Shift
	BilledHours   float64
	AssignedHours float64
}

// DaySnapshot groups the events active on one calendar day with day totals.
type DaySnapshot struct {
	Date          time.Time
	Events        []EventDayView
	BilledHours   float64
	AssignedHours float64
	OperatorCount int
}

// ShiftBilledHours is the client-billed figure for a shift: the effective
// hours counted once regardless of how many slots the shift has.
func ShiftBilledHours(s shift.Shift) float64 {
	return shift.EffectiveHours(s.StartTime, s.EndTime, s.PauseHours)
}

// ShiftAssignedHours is the operator-hour figure: billed hours multiplied by
// the number of occupied slots. A shift with no assignments contributes zero.
func ShiftAssignedHours(s shift.Shift) float64 {
	return ShiftBilledHours(s) * float64(s.OccupiedSlots())
}

// EventTotals sums billed and assigned hours over an event's shifts.
func EventTotals(shifts []shift.Shift) (billed, assigned float64) {
	for _, s := range shifts {
		billed += ShiftBilledHours(s)
		assigned += ShiftAssignedHours(s)
	}
	return billed, assigned
}

// BuildDays regroups event shifts by calendar day, ascending, with per-event
// and per-day aggregates. The operator count is the number of occupied slots
// across all of the day's shifts, duplicates included.
func BuildDays(events []EventSnapshot) []DaySnapshot {
	type dayKey struct {
		year  int
		month time.Month
		day   int
	}

	byDay := make(map[dayKey]*DaySnapshot)
	eventOrder := make(map[dayKey][]string)
	eventViews := make(map[dayKey]map[string]*EventDayView)

	for _, ev := range events {
		for _, s := range ev.Shifts {
			key := dayKey{s.Date.Year(), s.Date.Month(), s.Date.Day()}

			day, ok := byDay[key]
			if !ok {
				day = &DaySnapshot{
					Date: time.Date(key.year, key.month, key.day, 0, 0, 0, 0, s.Date.Location()),
				}
				byDay[key] = day
				eventViews[key] = make(map[string]*EventDayView)
			}

			view, ok := eventViews[key][ev.EventID]
			if !ok {
				view = &EventDayView{EventID: ev.EventID, Title: ev.Title}
				eventViews[key][ev.EventID] = view
				eventOrder[key] = append(eventOrder[key], ev.EventID)
			}

			view.Shifts = append(view.Shifts, s)
			billed := ShiftBilledHours(s)
			assigned := ShiftAssignedHours(s)
			view.BilledHours += billed
			view.AssignedHours += assigned
			day.BilledHours += billed
			day.AssignedHours += assigned
			day.OperatorCount += s.OccupiedSlots()
		}
	}

	days := make([]DaySnapshot, 0, len(byDay))
	for key, day := range byDay {
		for _, eventID := range eventOrder[key] {
			day.Events = append(day.Events, *eventViews[key][eventID])
		}
		days = append(days, *day)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days
}

// FormatHours renders an hours figure with two decimals, the precision used
// on per-shift and per-event rows.
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.2f", hours)
}

// FormatHoursTotal renders a footer total with one decimal. The event detail
// footer uses coarser precision than the rows above it and both renderings
// are visible to the user, so they stay distinct.
func FormatHoursTotal(hours float64) string {
	return fmt.Sprintf("%.1f", hours)
}
