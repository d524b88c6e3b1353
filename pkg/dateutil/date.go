package dateutil

import (
	"fmt"
	"time"
)

// Date represents a calendar date without time-of-day or timezone.
// It is a comparable value type: two Dates are equal (==) exactly when
// they name the same calendar day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate creates a Date and validates that the year/month/day triple is a
// real Gregorian date.
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.valid() {
		return Date{}, fmt.Errorf("invalid date: %d-%d-%d", year, int(month), day)
	}
	return d, nil
}

// DateOf extracts the calendar date from a time.Time.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// valid reports whether the triple survives a round-trip through time.Date,
// which normalizes out-of-range components (e.g. Feb 30 becomes Mar 1/2).
func (d Date) valid() bool {
	y, m, dd := d.Time().Date()
	return y == d.Year && m == d.Month && dd == d.Day
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns the date n calendar days later (earlier for negative n),
// rolling over month and year boundaries.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is later than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// String returns the date in ISO 8601 form, YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
