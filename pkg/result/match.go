package result

// Match reduces the container to a plain value by running exactly one of the
// two handlers. Match is a trust boundary: handlers are assumed to fully
// resolve the result, so an absent handler or a panic from inside a handler
// terminates the process.
func Match[In, Out any](r Result[In], onSuccess func(In) Out, onFailure func(error) Out) Out {
	if onSuccess == nil || onFailure == nil {
		fatalf("Match: nil handler")
	}
	defer func() {
		if rec := recover(); rec != nil {
			fatalf("Match: handler panicked: %v", rec)
		}
	}()
	if r.IsSuccess() {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// MatchDefault dispatches like Match, but an absent handler or a panic during
// handler execution yields the zero value of Out instead of terminating. For
// contexts where best-effort degradation beats a crash.
func MatchDefault[In, Out any](r Result[In], onSuccess func(In) Out, onFailure func(error) Out) (out Out) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero Out
			out = zero
		}
	}()
	if onSuccess == nil || onFailure == nil {
		return
	}
	if r.IsSuccess() {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// Switch runs exactly one of the two side-effecting handlers. Same fatal
// rules as Match.
func (r Result[T]) Switch(onSuccess func(T), onFailure func(error)) {
	if onSuccess == nil || onFailure == nil {
		fatalf("Switch: nil handler")
	}
	defer func() {
		if rec := recover(); rec != nil {
			fatalf("Switch: handler panicked: %v", rec)
		}
	}()
	if r.IsSuccess() {
		onSuccess(r.value)
	} else {
		onFailure(r.err)
	}
}
