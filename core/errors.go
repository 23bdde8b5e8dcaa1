package core

import (
	"errors"
	"fmt"
)

// ErrEmptySeries is returned when no valid samples remain after filtering.
// Callers must surface this as "no data for this period/area", never as a
// zero-change result.
var ErrEmptySeries = errors.New("no valid samples in series")

// InvalidDateError reports a sample date that could not be parsed. The whole
// evaluation aborts; partial results are never produced.
type InvalidDateError struct {
	Input string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid sample date %q: %v", e.Input, e.Err)
}

func (e *InvalidDateError) Unwrap() error {
	return e.Err
}
