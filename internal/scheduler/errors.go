package scheduler

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Load when the dataset path does not exist.
var ErrNotFound = errors.New("dataset not found")

// ParseError reports a dataset line that is not exactly two non-negative
// integers separated by a comma.
type ParseError struct {
	Line int    // 1-based line number in the file, header included
	Text string // the offending line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	errFieldCount = errors.New("expected exactly two comma-separated fields")
	errNegative   = errors.New("value must not be negative")
)
