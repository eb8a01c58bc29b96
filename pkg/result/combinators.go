package result

// Then applies f to the success value under capture semantics: a panic from f
// becomes a failure. On a failed receiver f is never invoked and the original
// error propagates unchanged.
func Then[In, Out any](r Result[In], f func(In) Out) Result[Out] {
	if r.IsError() {
		return FailureFrom[In, Out](r)
	}
	if f == nil {
		return Failure[Out](ErrNilOperation)
	}
	return capture(func() (Out, error) { return f(r.value), nil })
}

// ThenResult applies a function that builds its own container. Short-circuits
// on a failed receiver; a panic from f is still captured.
func ThenResult[In, Out any](r Result[In], f func(In) Result[Out]) Result[Out] {
	if r.IsError() {
		return FailureFrom[In, Out](r)
	}
	if f == nil {
		return Failure[Out](ErrNilOperation)
	}
	return captureResult(func() Result[Out] { return f(r.value) })
}

// ThenDo runs a side-effecting action on the success value, producing
// Result[Unit]. Capture and short-circuit semantics match Then.
func (r Result[T]) ThenDo(f func(T)) Result[Unit] {
	if r.IsError() {
		return FailureFrom[T, Unit](r)
	}
	if f == nil {
		return Failure[Unit](ErrNilOperation)
	}
	return capture(func() (Unit, error) {
		f(r.value)
		return UnitValue, nil
	})
}

// Transform runs exactly one of the two sides and wraps its return value as a
// success. A panic from the chosen side (or an absent side) becomes a failure,
// never a termination, so for non-panicking functions the output is always a
// success of Out.
func Transform[In, Out any](r Result[In], onSuccess func(In) Out, onFailure func(error) Out) Result[Out] {
	if r.IsSuccess() {
		if onSuccess == nil {
			return Failure[Out](ErrNilOperation)
		}
		return capture(func() (Out, error) { return onSuccess(r.value), nil })
	}
	if onFailure == nil {
		return Failure[Out](ErrNilOperation)
	}
	return capture(func() (Out, error) { return onFailure(r.err), nil })
}

// TransformResult dispatches like Transform but the chosen handler returns a
// full container. An absent handler terminates the process, same as Match; a
// panic from inside either handler is captured as a failure.
func TransformResult[In, Out any](r Result[In], onSuccess func(In) Result[Out], onFailure func(error) Result[Out]) Result[Out] {
	if onSuccess == nil || onFailure == nil {
		fatalf("TransformResult: nil handler")
	}
	if r.IsSuccess() {
		return captureResult(func() Result[Out] { return onSuccess(r.value) })
	}
	return captureResult(func() Result[Out] { return onFailure(r.err) })
}

// Pipe passes the whole container to f, which returns a full new container.
// This is the mechanism for panic-free continuations: failure is signalled by
// construction rather than panicking. A panic from f is still captured.
func Pipe[In, Out any](r Result[In], f func(Result[In]) Result[Out]) Result[Out] {
	if f == nil {
		return Failure[Out](ErrNilOperation)
	}
	return captureResult(func() Result[Out] { return f(r) })
}

// OnError recovers a failure with a replacement success value. No-op on a
// successful receiver; a panic from f becomes a failure.
func (r Result[T]) OnError(f func(error) T) Result[T] {
	if r.IsSuccess() {
		return r
	}
	if f == nil {
		return Failure[T](ErrNilOperation)
	}
	return capture(func() (T, error) { return f(r.err), nil })
}

// OnErrorResult recovers a failure with a full container.
func (r Result[T]) OnErrorResult(f func(error) Result[T]) Result[T] {
	if r.IsSuccess() {
		return r
	}
	if f == nil {
		return Failure[T](ErrNilOperation)
	}
	return captureResult(func() Result[T] { return f(r.err) })
}

// OnErrorReplace swaps the error of a failure for err. A nil replacement does
// NOT flip the container to success: it yields a failure carrying ErrNilError.
func (r Result[T]) OnErrorReplace(err error) Result[T] {
	if r.IsSuccess() {
		return r
	}
	if err == nil {
		return Failure[T](ErrNilError)
	}
	return Failure[T](err)
}

// OnErrorRewrite maps the error of a failure through f. A panic from f
// becomes a failure carrying the panicking error; a nil result from f yields
// a failure carrying ErrNilError.
func (r Result[T]) OnErrorRewrite(f func(error) error) Result[T] {
	if r.IsSuccess() {
		return r
	}
	if f == nil {
		return Failure[T](ErrNilOperation)
	}
	return captureResult(func() Result[T] {
		newErr := f(r.err)
		if newErr == nil {
			return Failure[T](ErrNilError)
		}
		return Failure[T](newErr)
	})
}
