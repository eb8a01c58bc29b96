package result

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNilOperation reports an absent operation passed to a capture or
	// interior combinator.
	ErrNilOperation = errors.New("operation is nil")
	// ErrNilError reports a nil error supplied where a replacement error
	// was required.
	ErrNilError = errors.New("replacement error is nil")
	// ErrNilValue reports a nil payload where a present value was required.
	ErrNilValue = errors.New("value is nil")
)

// PanicError wraps a non-error value recovered from a panicking operation.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// EqualErrors compares two errors by dynamic type and message, ignoring any
// wrapped cause chain. The comparison is intentionally approximate, suited
// for test assertions rather than exact error identity.
func EqualErrors(a, b error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.TypeOf(a) == reflect.TypeOf(b) && a.Error() == b.Error()
}

// IsCancellation reports whether err represents a context cancellation or
// deadline expiry captured as a failure.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
