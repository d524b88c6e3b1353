// Package calendar computes business-day arithmetic under French
// public-holiday rules: fixed holidays, the Easter-derived movable feasts,
// and forward/backward working-day traversal at day and hour granularity.
package calendar

import (
	"sort"
	"time"

	"github.com/username/workday-calendar/pkg/dateutil"
)

// Calendar answers day-off queries and working-day traversals for a given
// year. It is immutable after construction and safe for concurrent reads.
//
// The holiday set covers the construction year plus its immediate
// neighbours; queries on dates outside {year-1, year, year+1} may miss
// holidays and are not supported.
type Calendar struct {
	year        int
	saturdayOff bool
	sundayOff   bool
	holidays    map[dateutil.Date]struct{}
}

// New creates a Calendar for the given year with Saturdays and Sundays off.
func New(year int) (*Calendar, error) {
	return NewWithDaysOff(year, true, true)
}

// NewWithDaysOff creates a Calendar for the given year with an explicit
// weekend policy.
func NewWithDaysOff(year int, saturdayOff, sundayOff bool) (*Calendar, error) {
	return NewWithClosures(year, saturdayOff, sundayOff, nil)
}

// NewWithClosures creates a Calendar with an explicit weekend policy and
// extra closure dates (e.g. company closures) treated like holidays.
func NewWithClosures(year int, saturdayOff, sundayOff bool, closures []dateutil.Date) (*Calendar, error) {
	holidays, err := buildHolidays(year)
	if err != nil {
		return nil, err
	}

	for _, date := range closures {
		holidays[date] = struct{}{}
	}

	return &Calendar{
		year:        year,
		saturdayOff: saturdayOff,
		sundayOff:   sundayOff,
		holidays:    holidays,
	}, nil
}

// Year returns the year the Calendar was built for.
func (c *Calendar) Year() int {
	return c.year
}

// IsHoliday reports whether the date is in the materialized holiday set
// (public holiday or closure), ignoring the weekend policy.
func (c *Calendar) IsHoliday(date dateutil.Date) bool {
	_, ok := c.holidays[date]
	return ok
}

// IsDayOff reports whether the given date is a holiday, a closure, or a
// weekend day the policy marks as off.
func (c *Calendar) IsDayOff(date dateutil.Date) bool {
	if c.IsHoliday(date) {
		return true
	}

	weekday := date.Weekday()
	saturdayOff := weekday == time.Saturday && c.saturdayOff
	sundayOff := weekday == time.Sunday && c.sundayOff

	return saturdayOff || sundayOff
}

// NextWorkingDay steps days calendar days forward from date, then keeps
// stepping one day forward until the candidate is a working day.
//
// Note days is not "days working days ahead": the first step is a plain
// calendar step, only the landing is rolled off weekends and holidays.
func (c *Calendar) NextWorkingDay(date dateutil.Date, days int) dateutil.Date {
	return c.workingDayAt(date, days, func(d dateutil.Date, n int) dateutil.Date {
		return d.AddDays(n)
	})
}

// PreviousWorkingDay steps days calendar days backward from date, then keeps
// stepping one day backward until the candidate is a working day.
func (c *Calendar) PreviousWorkingDay(date dateutil.Date, days int) dateutil.Date {
	return c.workingDayAt(date, days, func(d dateutil.Date, n int) dateutil.Date {
		return d.AddDays(-n)
	})
}

// workingDayAt applies the first step at full magnitude, then corrective
// steps of one day in the same direction. Iterative rather than recursive;
// depth is bounded by runs of consecutive off days.
func (c *Calendar) workingDayAt(date dateutil.Date, days int, leap func(dateutil.Date, int) dateutil.Date) dateutil.Date {
	candidate := leap(date, days)
	for c.IsDayOff(candidate) {
		candidate = leap(candidate, 1)
	}
	return candidate
}

// NextWorkingDayHours steps hours wall-clock hours forward from dt, then
// keeps stepping 24 hours forward until the date component is a working
// day. Corrective steps preserve the candidate's time-of-day.
func (c *Calendar) NextWorkingDayHours(dt dateutil.DateTime, hours int) dateutil.DateTime {
	return c.workingDayAtHour(dt, hours, func(d dateutil.DateTime, n int) dateutil.DateTime {
		return d.AddHours(n)
	})
}

// PreviousWorkingDayHours steps hours wall-clock hours backward from dt,
// then keeps stepping 24 hours backward until the date component is a
// working day.
func (c *Calendar) PreviousWorkingDayHours(dt dateutil.DateTime, hours int) dateutil.DateTime {
	return c.workingDayAtHour(dt, hours, func(d dateutil.DateTime, n int) dateutil.DateTime {
		return d.AddHours(-n)
	})
}

func (c *Calendar) workingDayAtHour(dt dateutil.DateTime, hours int, leap func(dateutil.DateTime, int) dateutil.DateTime) dateutil.DateTime {
	candidate := leap(dt, hours)
	for c.IsDayOff(candidate.Date) {
		candidate = leap(candidate, 24)
	}
	return candidate
}

// Holidays returns the holidays and closures falling in the Calendar's own
// year, sorted by date.
func (c *Calendar) Holidays() []dateutil.Date {
	var result []dateutil.Date
	for date := range c.holidays {
		if date.Year == c.year {
			result = append(result, date)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Before(result[j])
	})
	return result
}
