package calendar

import (
	"fmt"
	"math"
	"time"

	"github.com/username/workday-calendar/pkg/dateutil"
)

// Easter returns Easter Sunday for the given year, computed with the
// anonymous Gregorian algorithm (Meeus/Jones/Butcher).
//
// All arithmetic is truncating integer division on uint32; the algorithm
// guarantees every subtraction stays non-negative for valid Gregorian
// years, and the order of divisions and moduli below is load-bearing.
func Easter(year int) (dateutil.Date, error) {
	if year < 0 || int64(year) > math.MaxUint32 {
		return dateutil.Date{}, &CalendarError{Msg: fmt.Sprintf("year %d not representable as uint32", year)}
	}
	y := uint32(year)

	a, b := y/100, y%100
	c, d := (3*(a+25))/4, (3*(a+25))%4
	e := (8 * (a + 11)) / 25
	f := (5*a + b) % 19
	g := (19*f + c - e) % 30
	h := (f + 11*g) / 319
	j, k := (60*(5-d)+b)/4, (60*(5-d)+b)%4
	m := (2*j - k - g + h) % 7
	n, p := (g-h+m+114)/31, (g-h+m+114)%31

	month := time.Month(n)
	day := int(p + 1)

	date, err := dateutil.NewDate(year, month, day)
	if err != nil {
		return dateutil.Date{}, &CalendarError{
			Msg: fmt.Sprintf("%d-%d-%d", year, int(month), day),
			Err: err,
		}
	}
	return date, nil
}

// EasterMonday returns the Monday after Easter Sunday for the given year.
func EasterMonday(year int) (dateutil.Date, error) {
	return movableFeast(year, easterMondayOffset)
}

// Ascension returns Ascension Thursday, 39 days after Easter Sunday.
func Ascension(year int) (dateutil.Date, error) {
	return movableFeast(year, ascensionOffset)
}

// WhitMonday returns Whit Monday (Pentecost Monday), 50 days after Easter
// Sunday.
func WhitMonday(year int) (dateutil.Date, error) {
	return movableFeast(year, whitMondayOffset)
}

func movableFeast(year, offset int) (dateutil.Date, error) {
	easter, err := Easter(year)
	if err != nil {
		return dateutil.Date{}, err
	}
	return easter.AddDays(offset), nil
}
