package result

// recoveredError converts a recovered panic value into an error. Panics that
// already carry an error keep it unchanged, so a failure produced from
// panic(err) compares equal to Failure(err).
func recoveredError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return &PanicError{Value: rec}
}

// capture invokes op, converting a returned error or a panic into a failure.
func capture[T any](op func() (T, error)) (res Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Failure[T](recoveredError(rec))
		}
	}()
	v, err := op()
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// captureResult invokes an op that builds its own container, still converting
// a panic into a failure.
func captureResult[T any](op func() Result[T]) (res Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Failure[T](recoveredError(rec))
		}
	}()
	return op()
}

// Try invokes op and converts its outcome into a Result: an error return or a
// panic becomes a failure, anything else a success. A nil op is reported as a
// failure rather than a crash, since Try is the entry point of a pipeline.
func Try[T any](op func() (T, error)) Result[T] {
	if op == nil {
		return Failure[T](ErrNilOperation)
	}
	return capture(op)
}

// TryWith is Try for a one-argument operation.
func TryWith[In, T any](op func(In) (T, error), in In) Result[T] {
	if op == nil {
		return Failure[T](ErrNilOperation)
	}
	return capture(func() (T, error) { return op(in) })
}

// Call invokes an op that returns a Result directly. A panic from op is still
// converted to a failure even though op was expected not to need panicking.
func Call[T any](op func() Result[T]) Result[T] {
	if op == nil {
		return Failure[T](ErrNilOperation)
	}
	return captureResult(op)
}
