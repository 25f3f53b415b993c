// Package datefmt parses the two date shapes the application accepts:
// DD-MM-YYYY (the application convention) and YYYY-MM-DD (the native
// date-input convention). Parsing never panics; unparseable values are
// reported through the ok return and are expected to be treated as
// "no match" by date-bounded queries.
package datefmt

import (
	"strings"
	"time"
)

const (
	dayFirstLayout = "2-1-2006"
	isoLayout      = "2006-1-2"
)

// Parse parses a date string in either accepted shape. A four-digit
// leading segment selects the ISO form; otherwise the value is read
// day-first.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	layout := dayFirstLayout
	if len(parts[0]) == 4 {
		layout = isoLayout
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Midnight truncates t to its calendar date
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// EndOfWeek returns the last day of the calendar week containing ref,
// at midnight. Weeks run Sunday through Sunday, so a Sunday reference
// extends a full seven days ahead.
func EndOfWeek(ref time.Time) time.Time {
	return Midnight(ref).AddDate(0, 0, 7-int(ref.Weekday()))
}

// Display renders a stored date string in the day-first convention.
// Values that do not parse are returned unchanged.
func Display(s string) string {
	t, ok := Parse(s)
	if !ok {
		return s
	}
	return t.Format("02-01-2006")
}
