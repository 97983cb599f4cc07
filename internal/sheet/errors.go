package sheet

import (
	"errors"
	"fmt"
)

// ErrNoEmployees is matched by a FormatError raised when no employee row exists
var ErrNoEmployees = errors.New("no employee rows found")

// FormatError reports a worksheet that does not follow the timesheet layout
type FormatError struct {
	Row    int
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("timesheet format error at row %d: %s", e.Row, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
