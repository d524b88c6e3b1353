package dateutil

import "time"

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date Date) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date Date) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// DaysBetween returns the number of calendar days from a to b.
// Negative if b is before a.
func DaysBetween(a, b Date) int {
	return int(b.Time().Sub(a.Time()) / (24 * time.Hour))
}

// Today returns today's date
func Today() Date {
	return DateOf(time.Now())
}

// Yesterday returns yesterday's date
func Yesterday() Date {
	return DateOf(time.Now().AddDate(0, 0, -1))
}
