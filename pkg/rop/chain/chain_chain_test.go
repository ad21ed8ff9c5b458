package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/resultlib/pkg/rop"
)

func TestStart_Option_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	base := rop.Success(10)
	c := Start(ctx, base)
	out := c.Option()
	if !out.IsSuccess() || out.Result().Unwrap() != 10 {
		t.Fatalf("expected success with 10, got %v", out)
	}
	if out.ID() != base.ID() {
		t.Fatalf("expected the chain to keep the option identity")
	}
}

func TestFromValue_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 7).Result()
	if !out.IsOk() || out.Unwrap() != 7 {
		t.Fatalf("expected ok with 7, got %v", out)
	}
}

func TestFromResult_ErrorBecomesFailed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromResult(ctx, rop.ErrMessage[int]("boom")).Option()
	if !out.IsFailed() || out.UnwrapErr().Error() != "boom" {
		t.Fatalf("expected failed 'boom', got %v", out)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")
	c := Start(ctx, rop.FailedCause[int](err))
	called := false
	c2 := Then(c, func(ctx context.Context, v int) rop.Option[string] {
		called = true
		return rop.Success("ok")
	})
	out := c2.Option()
	if !out.IsFailed() || out.UnwrapErr() != err {
		t.Fatalf("expected failure 'boom', got %v", out)
	}
	if called {
		t.Fatalf("Then onSuccess must not be called on failure input")
	}
}

func TestThen_PropagateCancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := Start(ctx, rop.CanceledCause[int](errors.New("cancel")))
	called := false
	c2 := Then(c, func(ctx context.Context, v int) rop.Option[string] {
		called = true
		return rop.Success("x")
	})
	out := c2.Option()
	if !out.IsCanceled() || out.UnwrapErr().Error() != "cancel" {
		t.Fatalf("expected cancel 'cancel', got %v", out)
	}
	if called {
		t.Fatalf("Then onSuccess must not be called on cancel input")
	}
}

func TestThenTry_SuccessAndError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// success path
	c2 := ThenTry(FromValue(ctx, 3), func(ctx context.Context, v int) (string, error) {
		return "val_3", nil
	})
	out := c2.Result()
	if !out.IsOk() || out.Unwrap() != "val_3" {
		t.Fatalf("expected ok 'val_3', got %v", out)
	}

	// error path
	c4 := ThenTry(FromValue(ctx, 9), func(ctx context.Context, v int) (string, error) {
		return "", errors.New("try-error")
	})
	out2 := c4.Option()
	if !out2.IsFailed() || out2.UnwrapErr().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got %v", out2)
	}

	// context errors cancel the chain
	c5 := ThenTry(FromValue(ctx, 1), func(ctx context.Context, v int) (string, error) {
		return "", context.DeadlineExceeded
	})
	if out3 := c5.Option(); !out3.IsCanceled() || !errors.Is(out3.UnwrapErr(), context.DeadlineExceeded) {
		t.Fatalf("expected canceled with deadline exceeded, got %v", out3)
	}
}

func TestMap_SuccessAndFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c2 := Map(FromValue(ctx, 5), func(ctx context.Context, v int) string { return "n:" + string(rune('0'+v)) })
	out := c2.Result()
	if !out.IsOk() || out.Unwrap() != "n:5" {
		t.Fatalf("expected ok 'n:5', got %v", out)
	}

	c4 := Map(Start(ctx, rop.FailedMessage[int]("oops")), func(ctx context.Context, v int) string { return "ignored" })
	out2 := c4.Result()
	if out2.IsOk() || out2.Err().Error() != "oops" {
		t.Fatalf("expected error 'oops', got %v", out2)
	}
}

func TestUnbox(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boxed := Start(ctx, rop.Success(12).Box())
	out := Unbox[int](boxed).Option()
	if !out.IsSuccess() || out.Result().Unwrap() != 12 {
		t.Fatalf("expected success with 12, got %v", out)
	}

	bad := Unbox[string](boxed).Option()
	if !bad.IsFailed() || !errors.Is(bad.UnwrapErr(), rop.ErrInvalidCast) {
		t.Fatalf("expected failed with invalid cast, got %v", bad)
	}
	if r := Unbox[string](boxed).Result(); !errors.Is(r.Err(), rop.ErrInvalidCast) {
		t.Fatalf("expected result error with invalid cast, got %v", r)
	}
}

func TestResult_EmptySuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	src := rop.SuccessEmpty[int]()
	out := Start(ctx, src).Result()
	if !out.IsOk() || out.HasValue() {
		t.Fatalf("expected ok without value, got %v", out)
	}
	if out.ID() != src.ID() {
		t.Fatalf("expected identity %v, got %v", src.ID(), out.ID())
	}
}

func TestEnsure_SideEffectCalledOnSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	called := false
	c := FromValue(ctx, 11).Ensure(func(ctx context.Context, v int) { called = true })
	if out := c.Result(); !out.IsOk() || out.Unwrap() != 11 {
		t.Fatalf("expected ok with 11, got %v", out)
	}
	if !called {
		t.Fatalf("expected Ensure to invoke onSuccess for success option")
	}

	called = false
	c2 := Start(ctx, rop.FailedMessage[int]("x")).Ensure(func(ctx context.Context, v int) { called = true })
	if out2 := c2.Option(); !out2.IsFailed() || out2.UnwrapErr().Error() != "x" {
		t.Fatalf("expected failure 'x', got %v", out2)
	}
	if called {
		t.Fatalf("Ensure onSuccess must not be called for failure option")
	}
}

func TestFinally_SuccessFailureCancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onOk := func(ctx context.Context, v int) string { return "ok" }
	onFail := func(ctx context.Context, err error) string { return "fail" }
	onCancel := func(ctx context.Context, err error) string { return "cancel" }

	if s := Finally(FromValue(ctx, 2), onOk, onFail, onCancel); s != "ok" {
		t.Fatalf("expected 'ok', got %q", s)
	}
	if f := Finally(Start(ctx, rop.FailedMessage[int]("e")), onOk, onFail, onCancel); f != "fail" {
		t.Fatalf("expected 'fail', got %q", f)
	}
	if c := Finally(Start(ctx, rop.Canceled[int]()), onOk, onFail, onCancel); c != "cancel" {
		t.Fatalf("expected 'cancel', got %q", c)
	}
}
