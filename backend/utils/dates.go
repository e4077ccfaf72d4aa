package utils

import "time"

// DateOnly drops the time-of-day component, keeping the calendar day in UTC.
// All date-keyed rows (water intake, gratitude, streaks) store this form so
// equality and range queries line up regardless of server timezone.
func DateOnly(t time.Time) time.Time {
	// Read the calendar date in UTC so the same instant always maps to the
	// same day regardless of the value's location.
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}
