package journal

import "time"

// StartOfDay returns the day key for t: milliseconds at local midnight
// of t's calendar day.
func StartOfDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).UnixMilli()
}

// Today returns the day key for the current local calendar day.
func Today() int64 {
	return StartOfDay(time.Now())
}

// Weekday returns the local calendar day-of-week for a day key.
func Weekday(dayKey int64) time.Weekday {
	return time.UnixMilli(dayKey).Weekday()
}

// DayLabel formats a day key for display, e.g. "Mon, Jan 2, 2006".
func DayLabel(dayKey int64) string {
	return time.UnixMilli(dayKey).Format("Mon, Jan 2, 2006")
}
