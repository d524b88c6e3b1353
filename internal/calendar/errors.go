package calendar

import "fmt"

// CalendarError reports an invalid year or an invalid constructed date.
// These should be unreachable for real-world year ranges but are checked
// and propagated rather than panicking.
type CalendarError struct {
	Msg string
	Err error
}

func (e *CalendarError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("calendar: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("calendar: %s", e.Msg)
}

func (e *CalendarError) Unwrap() error {
	return e.Err
}
