package booking

import "time"

// ===============================
// Date normalization
// ===============================

// NormalizeToNoon pins a booking date to 12:00 of its calendar day so that
// timezone drift can never push the stored value across a day boundary.
func NormalizeToNoon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// DayBounds returns the [start, end) window covering the full calendar day
// of t. Availability queries must use the whole day, never an exact
// timestamp match, since stored dates sit at noon.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}

// IsPastDay compares calendar days only: a booking for today is fine, a
// booking for yesterday is not.
func IsPastDay(date time.Time, now time.Time) bool {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dayStart.Before(todayStart)
}

// SameDay reports whether two instants fall on the same calendar day in
// a's location. Used by the editor instead of comparing date strings.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
