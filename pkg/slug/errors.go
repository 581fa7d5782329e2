package slug

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrPatternTimeout is returned when a pattern pass does not finish within the
// call's matching-time budget.
var ErrPatternTimeout = errors.New("slug: pattern matching timed out")

// TimeoutError describes a budget overrun. It matches ErrPatternTimeout and
// context.DeadlineExceeded with errors.Is.
type TimeoutError struct {
	Timeout  time.Duration // The budget that was exceeded
	InputLen int           // Length in bytes of the text being matched
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("slug: pattern matching timed out after %s (input %d bytes)", e.Timeout, e.InputLen)
}

// Is reports whether target is ErrPatternTimeout.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrPatternTimeout
}

func (e *TimeoutError) Unwrap() error {
	return context.DeadlineExceeded
}

// IsTimeoutError returns true if err is a TimeoutError.
func IsTimeoutError(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}

// AsTimeoutError extracts the TimeoutError from an error if present.
func AsTimeoutError(err error) (*TimeoutError, bool) {
	var te *TimeoutError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
