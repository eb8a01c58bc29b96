package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/outcome/pkg/result"
)

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := Start(ctx, result.Success(5))

	out := c.Result()
	if !out.IsSuccess() || out.Value() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 7).Result()
	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected success with 7, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")
	c := Start(ctx, result.Failure[int](err))

	called := false
	c = c.Then(func(ctx context.Context, v int) result.Result[int] {
		called = true
		return result.Success(v + 1)
	})

	out := c.Result()
	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	if called {
		t.Fatalf("onSuccess should not be called when initial result is failure")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 3).
		Then(func(ctx context.Context, v int) result.Result[int] { return result.Success(v * 2) }).
		Result()

	if !out.IsSuccess() || out.Value() != 6 {
		t.Fatalf("expected success with 6, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestThenTry_ErrorPropagation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 10).
		ThenTry(func(ctx context.Context, v int) (int, error) {
			return 0, errors.New("try-error")
		}).
		Result()

	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestThenTry_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 4).
		ThenTry(func(ctx context.Context, v int) (int, error) { return v * v, nil }).
		Result()

	if !out.IsSuccess() || out.Value() != 16 {
		t.Fatalf("expected success with 16, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 5).
		Map(func(ctx context.Context, v int) int { return v + 10 }).
		Result()

	if !out.IsSuccess() || out.Value() != 15 {
		t.Fatalf("expected success with 15, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestOnError_Recovers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := Start(ctx, result.Failure[int](errors.New("boom"))).
		OnError(func(ctx context.Context, err error) result.Result[int] {
			return result.Success(-1)
		}).
		Result()

	if !out.IsSuccess() || out.Value() != -1 {
		t.Fatalf("expected recovered success with -1, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestRepeatUntil(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 1).
		RepeatUntil(
			func(ctx context.Context, v int) result.Result[int] { return result.Success(v * 2) },
			func(ctx context.Context, v int) bool { return v >= 8 }).
		Result()

	if !out.IsSuccess() || out.Value() != 8 {
		t.Fatalf("expected success with 8, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestWhile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 0).
		While(
			func(ctx context.Context, v int) result.Result[int] { return result.Success(v + 3) },
			func(ctx context.Context, v int) bool { return v < 10 }).
		Result()

	if !out.IsSuccess() || out.Value() != 12 {
		t.Fatalf("expected success with 12, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestOr_PicksFirstSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	failed := Start(ctx, result.Failure[int](errors.New("boom")))
	backup := FromValue(ctx, 99)

	out := failed.Or(backup).Result()
	if !out.IsSuccess() || out.Value() != 99 {
		t.Fatalf("expected fallback success with 99, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestOr_KeepsReceiverFailureWhenAllFail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	first := Start(ctx, result.Failure[int](errors.New("first")))
	second := Start(ctx, result.Failure[int](errors.New("second")))

	out := first.Or(second).Result()
	if out.IsSuccess() || out.Err().Error() != "first" {
		t.Fatalf("expected failure 'first', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestAnd_FirstFailureWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ok := FromValue(ctx, 1)
	bad := Start(ctx, result.Failure[int](errors.New("required failed")))

	out := ok.And(bad).Result()
	if out.IsSuccess() || out.Err().Error() != "required failed" {
		t.Fatalf("expected failure 'required failed', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestEnsure_SideEffects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var seen int
	FromValue(ctx, 5).Ensure(
		func(ctx context.Context, v int) { seen = v },
		nil)
	if seen != 5 {
		t.Fatalf("expected success side effect with 5, got: %d", seen)
	}

	var seenErr error
	Start(ctx, result.Failure[int](errors.New("boom"))).Ensure(
		nil,
		func(ctx context.Context, err error) { seenErr = err })
	if seenErr == nil || seenErr.Error() != "boom" {
		t.Fatalf("expected failure side effect, got: %v", seenErr)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	got := FromValue(ctx, 21).
		Map(func(ctx context.Context, v int) int { return v * 2 }).
		Finally(
			func(ctx context.Context, v int) int { return v },
			func(ctx context.Context, err error) int { return -1 })
	if got != 42 {
		t.Fatalf("expected 42, got: %d", got)
	}
}

func TestUnwrap_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	if got := FromValue(ctx, 9).Unwrap(); got != 9 {
		t.Fatalf("expected 9, got: %d", got)
	}
}
