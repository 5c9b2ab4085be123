package engine

import (
	"errors"
	"fmt"
)

// ErrOverflow is returned when the answer does not fit in a uint64.
var ErrOverflow = errors.New("no representable prime in uint64 range")

// CanceledError reports an operation stopped by its context. Everything
// confirmed before the stop is already in the cache.
type CanceledError struct {
	Op Operation
	// Last is the last candidate that was fully tested. It is unset for
	// OpCheck, whose only cancellable path is a single wheel test.
	Last uint64
	Err  error
}

func (e *CanceledError) Error() string {
	if e.Op == OpCheck {
		return fmt.Sprintf("%s canceled: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s canceled after %d: %v", e.Op, e.Last, e.Err)
}

func (e *CanceledError) Unwrap() error { return e.Err }

// IsCanceled checks if an error is a CanceledError.
func IsCanceled(err error) bool {
	var ce *CanceledError
	return errors.As(err, &ce)
}
