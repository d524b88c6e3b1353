package format

import (
	"fmt"
	"time"

	"github.com/username/workday-calendar/pkg/dateutil"
)

// ParamsError reports malformed textual date or time input.
type ParamsError struct {
	Msg string
	Err error
}

func (e *ParamsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ParamsError) Unwrap() error {
	return e.Err
}

// ParseISODate parses a date in ISO 8601 form, YYYY-MM-DD.
func ParseISODate(value string) (dateutil.Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return dateutil.Date{}, &ParamsError{Msg: fmt.Sprintf("invalid ISO date %q", value), Err: err}
	}
	return dateutil.DateOf(t), nil
}

// ParseISODateTime parses a datetime in ISO 8601 form, YYYY-MM-DDTHH:MM:SS.
func ParseISODateTime(value string) (dateutil.DateTime, error) {
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		return dateutil.DateTime{}, &ParamsError{Msg: fmt.Sprintf("invalid ISO datetime %q", value), Err: err}
	}
	return dateutil.DateTimeOf(t), nil
}
