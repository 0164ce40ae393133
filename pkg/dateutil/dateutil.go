package dateutil

import (
	"time"
)

// MonthLayout is the canonical text form of a calendar month.
const MonthLayout = "2006-01"

// MonthOf normalizes a date to its calendar month: first day, midnight, UTC.
// All month identifiers flowing through the engine are normalized this way.
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths returns the month n calendar months after (or before, for
// negative n) the given month.
func AddMonths(month time.Time, n int) time.Time {
	return MonthOf(month).AddDate(0, n, 0)
}

// MonthsBetween counts the calendar months from start to end. The result is
// negative when end precedes start.
func MonthsBetween(start, end time.Time) int {
	s, e := MonthOf(start), MonthOf(end)
	return (e.Year()-s.Year())*12 + int(e.Month()) - int(s.Month())
}

// SameMonth reports whether two dates fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// ParseMonth parses a "YYYY-MM" month identifier.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return MonthOf(t), nil
}

// FormatMonth renders a month as "YYYY-MM".
func FormatMonth(t time.Time) string {
	return t.Format(MonthLayout)
}

// IsJanuary reports whether the month is a January, i.e. the first month of
// a new calendar year.
func IsJanuary(month time.Time) bool {
	return month.Month() == time.January
}
