// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// PeriodStart resolves a reporting period keyword to the start of its
// aggregation window. The window always ends at "now".
//
//	day   -> start of the current calendar day
//	week  -> now minus 7*24h
//	month -> first day of the current calendar month
//	year  -> January 1 of the current year
//
// Anything else falls back to month.
func PeriodStart(period string, now time.Time) time.Time {
	switch period {
	case "day":
		return BeginningOfDay(now)
	case "week":
		return now.Add(-7 * 24 * time.Hour)
	case "year":
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default: // month
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}

// DayBounds returns the [start, end) range of the calendar day that is
// "offset" days before the day containing t.
func DayBounds(t time.Time, offset int) (time.Time, time.Time) {
	start := BeginningOfDay(t).AddDate(0, 0, -offset)
	return start, start.Add(24 * time.Hour)
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}
