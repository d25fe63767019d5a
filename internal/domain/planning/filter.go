package planning

import "time"

// FilterDaysByRange keeps the days falling inside [from, to], both bounds
// inclusive. A nil bound leaves that side open, so a single bound filters
// one-sided; with neither bound the input is returned unchanged.
func FilterDaysByRange(days []DaySnapshot, from, to *time.Time) []DaySnapshot {
	if from == nil && to == nil {
		return days
	}

	filtered := make([]DaySnapshot, 0, len(days))
	for _, day := range days {
		if from != nil && day.Date.Before(truncateToDay(*from)) {
			continue
		}
		if to != nil && day.Date.After(truncateToDay(*to)) {
			continue
		}
		filtered = append(filtered, day)
	}
	return filtered
}

// FilterByStatus keeps the records whose status label matches exactly.
// The "all" status passes everything through.
func FilterByStatus[T any](records []T, status string, statusOf func(T) string) []T {
	if status == "all" || status == "" {
		return records
	}

	filtered := make([]T, 0, len(records))
	for _, record := range records {
		if statusOf(record) == status {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
