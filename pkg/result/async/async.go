package async

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/result"
)

// ErrClosed reports a result channel that was closed without delivering.
var ErrClosed = errors.New("result channel closed")

// ready wraps an already-computed result into a delivered channel.
func ready[T any](r result.Result[T]) <-chan result.Result[T] {
	out := make(chan result.Result[T], 1)
	out <- r
	close(out)
	return out
}

// Try invokes op on its own goroutine and delivers the captured outcome on
// the returned channel. The channel is buffered and closed after one send, so
// an abandoned consumer never leaks the worker. A context already done before
// op runs yields a failure carrying ctx.Err(); cancellation observed by op
// itself is captured the same way as any other error.
func Try[T any](ctx context.Context, op func(ctx context.Context) (T, error)) <-chan result.Result[T] {
	if op == nil {
		return ready(result.Failure[T](result.ErrNilOperation))
	}
	out := make(chan result.Result[T], 1)
	go func() {
		defer close(out)
		if err := ctx.Err(); err != nil {
			out <- result.Failure[T](err)
			return
		}
		out <- result.Try(func() (T, error) { return op(ctx) })
	}()
	return out
}

// Call is Try for an op that returns a Result directly; a panic from op is
// still captured.
func Call[T any](ctx context.Context, op func(ctx context.Context) result.Result[T]) <-chan result.Result[T] {
	if op == nil {
		return ready(result.Failure[T](result.ErrNilOperation))
	}
	out := make(chan result.Result[T], 1)
	go func() {
		defer close(out)
		if err := ctx.Err(); err != nil {
			out <- result.Failure[T](err)
			return
		}
		out <- result.Call(func() result.Result[T] { return op(ctx) })
	}()
	return out
}

// Then chains op on the status of r: a failed r short-circuits without
// invoking op. Then deliberately does not forward the success value of r into
// op; callers needing the value must close over it or use ThenWith.
func Then[In, Out any](ctx context.Context, r result.Result[In], op func(ctx context.Context) (Out, error)) <-chan result.Result[Out] {
	if r.IsError() {
		return ready(result.FailureFrom[In, Out](r))
	}
	return Try(ctx, op)
}

// ThenWith is the value-forwarding variant of Then: op receives the success
// value of r alongside the context.
func ThenWith[In, Out any](ctx context.Context, r result.Result[In], op func(ctx context.Context, in In) (Out, error)) <-chan result.Result[Out] {
	if r.IsError() {
		return ready(result.FailureFrom[In, Out](r))
	}
	if op == nil {
		return ready(result.Failure[Out](result.ErrNilOperation))
	}
	in := r.Value()
	return Try(ctx, func(ctx context.Context) (Out, error) { return op(ctx, in) })
}

// ThenCall chains an op that returns a Result directly, short-circuiting on a
// failed r. Like Then, the success value is not forwarded.
func ThenCall[In, Out any](ctx context.Context, r result.Result[In], op func(ctx context.Context) result.Result[Out]) <-chan result.Result[Out] {
	if r.IsError() {
		return ready(result.FailureFrom[In, Out](r))
	}
	return Call(ctx, op)
}

// Await blocks until the result arrives or ctx is done, whichever happens
// first. Cancellation yields a failure carrying ctx.Err().
func Await[T any](ctx context.Context, ch <-chan result.Result[T]) result.Result[T] {
	select {
	case r, ok := <-ch:
		if !ok {
			return result.Failure[T](ErrClosed)
		}
		return r
	case <-ctx.Done():
		return result.Failure[T](ctx.Err())
	}
}
