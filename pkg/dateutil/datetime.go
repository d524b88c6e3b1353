package dateutil

import (
	"fmt"
	"time"
)

// DateTime represents a calendar date with a time-of-day, without timezone.
// Like Date it is a comparable value type.
type DateTime struct {
	Date   Date
	Hour   int
	Minute int
	Second int
}

// NewDateTime creates a DateTime and validates both the date and the
// time-of-day components.
func NewDateTime(year int, month time.Month, day, hour, minute, second int) (DateTime, error) {
	date, err := NewDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return DateTime{}, fmt.Errorf("invalid time: %02d:%02d:%02d", hour, minute, second)
	}
	return DateTime{Date: date, Hour: hour, Minute: minute, Second: second}, nil
}

// DateTimeOf extracts the calendar date and time-of-day from a time.Time.
func DateTimeOf(t time.Time) DateTime {
	return DateTime{
		Date:   DateOf(t),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// Time returns the datetime as a time.Time in UTC.
func (dt DateTime) Time() time.Time {
	return time.Date(dt.Date.Year, dt.Date.Month, dt.Date.Day,
		dt.Hour, dt.Minute, dt.Second, 0, time.UTC)
}

// AddHours returns the datetime n wall-clock hours later (earlier for
// negative n), rolling over day, month and year boundaries. Leap seconds
// are not handled.
func (dt DateTime) AddHours(n int) DateTime {
	return DateTimeOf(dt.Time().Add(time.Duration(n) * time.Hour))
}

// AddDays returns the datetime n calendar days later (earlier for negative n)
// at the same time-of-day.
func (dt DateTime) AddDays(n int) DateTime {
	return DateTimeOf(dt.Time().AddDate(0, 0, n))
}

// String returns the datetime in ISO 8601 form, YYYY-MM-DDTHH:MM:SS.
func (dt DateTime) String() string {
	return fmt.Sprintf("%sT%02d:%02d:%02d", dt.Date, dt.Hour, dt.Minute, dt.Second)
}
