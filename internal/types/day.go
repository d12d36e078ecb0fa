// Package types implements special types for Provenance.
package types

import (
	"fmt"
	"time"
)

// Day is a calendar day in a specific location.
type Day time.Time

// NewDay returns a new Day.
func NewDay(year int, month time.Month, day int) Day {
	return Day(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
}

// DayOf returns the Day on which a time occurs in that time's location.
// The day boundary is start of day, not rounding.
func DayOf(t time.Time) Day {
	year, month, day := t.Date()
	return Day(time.Date(year, month, day, 0, 0, 0, 0, t.Location()))
}

// String returns the day formatted as YYYY-MM-DD.
func (d Day) String() string {
	year, month, day := time.Time(d).Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// Format returns the day formatted for display, e.g. "Saturday, 2 August 2025".
func (d Day) Format() string {
	return time.Time(d).Format("Monday, 2 January 2006")
}

// Time returns the start-of-day instant the Day represents.
func (d Day) Time() time.Time {
	return time.Time(d)
}

// IsZero reports if the day is the zero value.
func (d Day) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before reports whether the day instant d is before e.
func (d Day) Before(e Day) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether the day instant d is after e.
func (d Day) After(e Day) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e represent the same day.
func (d Day) Equal(e Day) bool {
	return time.Time(d).Equal(time.Time(e))
}

// DaysSince returns the number of calendar days from e to d. The
// dates are compared in UTC so that a shortened or lengthened DST
// transition day still counts as one day.
func (d Day) DaysSince(e Day) int {
	dYear, dMonth, dDay := time.Time(d).Date()
	eYear, eMonth, eDay := time.Time(e).Date()

	from := time.Date(eYear, eMonth, eDay, 0, 0, 0, 0, time.UTC)
	to := time.Date(dYear, dMonth, dDay, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from) / (24 * time.Hour))
}

// Contains reports whether the time instant is in the day.
func (d Day) Contains(t time.Time) bool {
	year, month, day := time.Time(d).Date()
	tYear, tMonth, tDay := t.Date()
	return year == tYear && month == tMonth && day == tDay
}
