// Package format converts dates and datetimes between their French locale,
// legacy Teliway and ISO 8601 textual representations. The calendar engine
// does not depend on this package; both operate on the pkg/dateutil value
// types.
package format

import (
	"fmt"

	"github.com/username/workday-calendar/pkg/dateutil"
)

// LocaleDate formats a date as DD/MM/YYYY.
func LocaleDate(date dateutil.Date) string {
	return fmt.Sprintf("%02d/%02d/%d", date.Day, int(date.Month), date.Year)
}

// LocaleTime formats the time-of-day of a datetime as HH:MM.
func LocaleTime(dt dateutil.DateTime) string {
	return fmt.Sprintf("%02d:%02d", dt.Hour, dt.Minute)
}

// LegacyToISO converts a Teliway fixed-width date ("YYYYMMDD") and hour
// ("HHMMSS") to ISO text ("YYYY-MM-DD", "HH:MM:SS").
//
// Only the length is validated; digit content is passed through untouched,
// so malformed digits yield malformed but well-formed-length output.
func LegacyToISO(dateDigits, hourDigits string) (isoDate, isoTime string, err error) {
	if len(dateDigits) != 8 {
		return "", "", &ParamsError{Msg: fmt.Sprintf("legacy date must be 8 digits, got %q", dateDigits)}
	}
	if len(hourDigits) != 6 {
		return "", "", &ParamsError{Msg: fmt.Sprintf("legacy hour must be 6 digits, got %q", hourDigits)}
	}

	isoDate = fmt.Sprintf("%s-%s-%s", dateDigits[:4], dateDigits[4:6], dateDigits[6:])
	isoTime = fmt.Sprintf("%s:%s:%s", hourDigits[:2], hourDigits[2:4], hourDigits[4:])
	return isoDate, isoTime, nil
}

// ToLegacyDate formats a date in the Teliway fixed-width form, YYYYMMDD.
func ToLegacyDate(date dateutil.Date) string {
	return fmt.Sprintf("%04d%02d%02d", date.Year, int(date.Month), date.Day)
}

// ToLegacyHour formats the time-of-day of a datetime in the Teliway
// fixed-width form, HHMM.
func ToLegacyHour(dt dateutil.DateTime) string {
	return fmt.Sprintf("%02d%02d", dt.Hour, dt.Minute)
}

// ToHour formats the time-of-day of a datetime as HH:MM.
func ToHour(dt dateutil.DateTime) string {
	return fmt.Sprintf("%02d:%02d", dt.Hour, dt.Minute)
}
