package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/result"
)

// Chain threads a context through a same-type result pipeline.
type Chain[T any] struct {
	ctx context.Context
	res result.Result[T]
}

func Start[T any](ctx context.Context, r result.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, result.Success(v))
}

func (c Chain[T]) Result() result.Result[T] {
	return c.res
}

// Then composes functions that already return result.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) result.Result[T]) Chain[T] {
	if c.res.IsError() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: result.ThenResult(c.res, func(t T) result.Result[T] {
		return onSuccess(c.ctx, t)
	})}
}

// ThenTry composes functions that return (T, error) — like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsError() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: result.ThenResult(c.res, func(t T) result.Result[T] {
		return result.Try(func() (T, error) { return try(c.ctx, t) })
	})}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsError() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: result.Then(c.res, func(t T) T {
		return onSuccess(c.ctx, t)
	})}
}

// OnError recovers a failed pipeline with a full container
func (c Chain[T]) OnError(onFailure func(ctx context.Context, err error) result.Result[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: c.res.OnErrorResult(func(err error) result.Result[T] {
		return onFailure(c.ctx, err)
	})}
}

func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) result.Result[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsError() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsError() || !until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) result.Result[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or keeps the receiver when it succeeded, otherwise falls back to the first
// successful alternative; if none succeeded the receiver's failure stands.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	return c
}

// And yields the first failure among the receiver and required, otherwise the
// result of required.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsError() {
		return c
	}
	return required
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsError() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}
	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to result.Match
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	return result.Match(c.res,
		func(t T) T { return onSuccess(c.ctx, t) },
		func(err error) T { return onFailure(c.ctx, err) })
}

// Unwrap extracts the success value, terminating on a failed pipeline.
func (c Chain[T]) Unwrap() T {
	return c.res.Unwrap()
}
