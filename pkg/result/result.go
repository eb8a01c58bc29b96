package result

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is a two-state container: either a success carrying a value or a
// failure carrying an error. A nil err is the sole signal of success; the
// value may legitimately be a zero or nil payload in the success state.
// Instances are immutable after construction and safe to share freely.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure requires a non-nil error: a failure with no error would be
// indistinguishable from a success. Passing nil terminates the process.
func Failure[T any](err error) Result[T] {
	if err == nil {
		fatalf("Failure: constructed with nil error")
	}
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom propagates an existing failure into a new payload type,
// keeping the original error and identity stamps. The source must be a
// failure; calling it on a success terminates the process.
func FailureFrom[In, Out any](from Result[In]) Result[Out] {
	if from.err == nil {
		fatalf("FailureFrom: source is not a failure")
	}
	return Result[Out]{
		err:       from.err,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

func (r Result[T]) IsError() bool {
	return r.err != nil
}

// Value returns the raw payload. In the failure state it is the zero value
// of T and carries no meaning; branch on IsSuccess first or use Unwrap,
// Unpack or Match instead.
func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the success value. Unwrapping a failure is a programming
// error and terminates the process.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		fatalf("Unwrap: called on failure: %v", r.err)
	}
	return r.value
}

// Unpack destructures the container into its value and error.
func (r Result[T]) Unpack() (T, error) {
	return r.value, r.err
}

// UnpackStatus destructures the container including the success flag.
func (r Result[T]) UnpackStatus() (T, error, bool) {
	return r.value, r.err, r.err == nil
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// CreatedAt is the construction time (UTC).
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("ERROR(%v)", r.err)
	}
	return fmt.Sprintf("%v", r.value)
}
