package result

import "reflect"

// IsNil reports whether i is nil or a typed nil of a nil-able kind
// (pointer, slice, map, channel or func).
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// FromNullable converts an absent input into an explicit failure carrying
// ErrNilValue, and a present input into a success. Unlike Success, which
// treats absence as a legitimate payload, here absence means failure; the two
// give callers an explicit choice of semantics.
func FromNullable[T any](v T) Result[T] {
	if IsNil(v) {
		return Failure[T](ErrNilValue)
	}
	return Success(v)
}

// RemoveNullable collapses a container of an optional payload into one whose
// payload is guaranteed present: a failure propagates, a success holding nil
// becomes a failure carrying ErrNilValue, and a success holding a value
// dereferences it.
func RemoveNullable[T any](r Result[*T]) Result[T] {
	if r.IsError() {
		return FailureFrom[*T, T](r)
	}
	if r.value == nil {
		return Failure[T](ErrNilValue)
	}
	return Success(*r.value)
}
