// utils/dates.go
package utils

import "time"

// DayKey buckets a timestamp into its calendar day as YYYY-MM-DD.
// All "today" filtering (attendance, assignments, drop-offs) keys on this.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Today returns the current day bucket.
func Today() string {
	return DayKey(time.Now())
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}
