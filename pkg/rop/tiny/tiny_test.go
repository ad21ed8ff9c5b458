package tiny

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/resultlib/pkg/rop"
)

func TestStartAndOption_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	chain := Start(ctx, rop.Success(5))

	out := chain.Option()
	if !out.IsSuccess() || out.Result().Unwrap() != 5 {
		t.Fatalf("expected success with 5, got: %v", out)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")
	chain := Start(ctx, rop.FailedCause[int](err))

	called := false
	chain = chain.Then(func(ctx context.Context, t int) rop.Option[int] {
		called = true
		return rop.Success(t + 1)
	})

	out := chain.Option()
	if !out.IsFailed() || out.UnwrapErr() != err {
		t.Fatalf("expected failure 'boom', got: %v", out)
	}
	if called {
		t.Fatalf("onSuccess should not be called when initial option is failed")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	chain := FromValue(ctx, 3).
		Then(func(ctx context.Context, t int) rop.Option[int] { return rop.Success(t * 2) })

	out := chain.Option()
	if !out.IsSuccess() || out.Result().Unwrap() != 6 {
		t.Fatalf("expected success with 6, got: %v", out)
	}
}

func TestRepeatUntilAndWhile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	inc := func(ctx context.Context, t int) rop.Option[int] { return rop.Success(t + 1) }

	out := FromValue(ctx, 0).RepeatUntil(inc, func(ctx context.Context, t int) bool { return t < 5 }).Option()
	if out.Result().Unwrap() != 5 {
		t.Fatalf("expected 5, got %v", out)
	}

	out = FromValue(ctx, 10).RepeatUntil(inc, func(ctx context.Context, t int) bool { return false }).Option()
	if out.Result().Unwrap() != 11 {
		t.Fatalf("expected RepeatUntil to run once, got %v", out)
	}

	out = FromValue(ctx, 10).While(inc, func(ctx context.Context, t int) bool { return t < 3 }).Option()
	if out.Result().Unwrap() != 10 {
		t.Fatalf("expected While to skip, got %v", out)
	}

	stop := func(ctx context.Context, t int) rop.Option[int] {
		if t == 2 {
			return rop.Canceled[int]()
		}
		return rop.Success(t + 1)
	}
	out = FromValue(ctx, 0).While(stop, func(ctx context.Context, t int) bool { return true }).Option()
	if !out.IsCanceled() {
		t.Fatalf("expected While to stop on canceled, got %v", out)
	}
}

func TestOrAnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	failed := Start(ctx, rop.FailedMessage[int]("f"))
	canceled := Start(ctx, rop.Canceled[int]())
	ok := FromValue(ctx, 1)

	if out := failed.Or(canceled, ok).Option(); !out.IsSuccess() {
		t.Fatalf("expected success, got %v", out)
	}
	if out := failed.Or(canceled).Option(); !out.IsCanceled() {
		t.Fatalf("expected canceled to win over failed, got %v", out)
	}
	if out := ok.And(FromValue(ctx, 2), failed, canceled).Option(); !out.IsFailed() {
		t.Fatalf("expected first non-success, got %v", out)
	}
	if out := ok.And(FromValue(ctx, 2)).Option(); out.Result().Unwrap() != 2 {
		t.Fatalf("expected last chain, got %v", out)
	}
}

func TestThenTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 4).
		ThenTry(func(ctx context.Context, t int) (int, error) { return t * t, nil }).
		Option()
	if !out.IsSuccess() || out.Result().Unwrap() != 16 {
		t.Fatalf("expected success with 16, got: %v", out)
	}

	out = FromValue(ctx, 10).
		ThenTry(func(ctx context.Context, t int) (int, error) { return 0, errors.New("try-error") }).
		Option()
	if !out.IsFailed() || out.UnwrapErr().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: %v", out)
	}

	out = FromValue(ctx, 10).
		ThenTry(func(ctx context.Context, t int) (int, error) { return 0, context.DeadlineExceeded }).
		Option()
	if !out.IsCanceled() {
		t.Fatalf("expected canceled on deadline, got: %v", out)
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 5).Map(func(ctx context.Context, t int) int { return t + 3 }).Option()
	if !out.IsSuccess() || out.Result().Unwrap() != 8 {
		t.Fatalf("expected success with 8, got: %v", out)
	}

	out = Start(ctx, rop.FailedMessage[int]("oops")).Map(func(ctx context.Context, t int) int { return t + 100 }).Option()
	if !out.IsFailed() || out.UnwrapErr().Error() != "oops" {
		t.Fatalf("expected failure 'oops', got: %v", out)
	}
}

func TestEnsure_SideEffects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen []string
	onSuccess := func(ctx context.Context, v int) { seen = append(seen, "success") }
	onFailure := func(ctx context.Context, err error) { seen = append(seen, "failure") }
	onCancel := func(ctx context.Context, err error) { seen = append(seen, "cancel") }

	FromValue(ctx, 11).Ensure(onSuccess, onFailure, onCancel)
	Start(ctx, rop.FailedMessage[int]("bad")).Ensure(onSuccess, onFailure, onCancel)
	Start(ctx, rop.Canceled[int]()).Ensure(onSuccess, onFailure, onCancel)

	if len(seen) != 3 || seen[0] != "success" || seen[1] != "failure" || seen[2] != "cancel" {
		t.Fatalf("unexpected side effects: %v", seen)
	}

	out := FromValue(ctx, 1).Ensure(nil, nil, nil).Option()
	if !out.IsSuccess() || out.Result().Unwrap() != 1 {
		t.Fatalf("expected unchanged success, got: %v", out)
	}
}

func TestFinally_SuccessFailureCancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onSuccess := func(ctx context.Context, v int) int { return v + 100 }
	onFailure := func(ctx context.Context, err error) int { return -1 }
	onCancel := func(ctx context.Context, err error) int { return -2 }

	if s := FromValue(ctx, 3).Finally(onSuccess, onFailure, onCancel); s != 103 {
		t.Fatalf("expected 103, got %d", s)
	}
	if f := Start(ctx, rop.FailedMessage[int]("x")).Finally(onSuccess, onFailure, onCancel); f != -1 {
		t.Fatalf("expected -1 for failure, got %d", f)
	}
	if c := Start(ctx, rop.CanceledCause[int](errors.New("c"))).Finally(onSuccess, onFailure, onCancel); c != -2 {
		t.Fatalf("expected -2 for cancel, got %d", c)
	}
}
