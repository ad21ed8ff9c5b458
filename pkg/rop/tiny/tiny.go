package tiny

import (
	"context"

	"github.com/ib-77/resultlib/pkg/rop"
	"github.com/ib-77/resultlib/pkg/rop/solo"
)

// Chain is a value-typed, single payload type chain over rop.Option[T].
type Chain[T any] struct {
	ctx context.Context
	opt rop.Option[T]
}

func Start[T any](ctx context.Context, o rop.Option[T]) Chain[T] {
	return Chain[T]{ctx: ctx, opt: o}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rop.Success(v))
}

func (c Chain[T]) Option() rop.Option[T] {
	return c.opt
}

func (c Chain[T]) value() T {
	v, _ := c.opt.SuccessResult().AsOk()
	return v
}

func (c Chain[T]) stopped() bool {
	return !c.opt.IsSuccess()
}

// Then composes functions that already return rop.Option[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rop.Option[T]) Chain[T] {
	if c.stopped() {
		return c
	}
	return Chain[T]{ctx: c.ctx, opt: onSuccess(c.ctx, c.value())}
}

// RepeatUntil runs onSuccess at least once and keeps going while until holds.
func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Option[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.stopped() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.stopped() || !until(c.ctx, c.value()) {
			return c
		}
	}
}

func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) rop.Option[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for !c.stopped() && while(c.ctx, c.value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first successful chain. Without one, a Canceled candidate wins
// over a Failed one.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	candidates := append([]Chain[T]{c}, alternatives...)

	var canceled, failed *Chain[T]
	for i := range candidates {
		ch := &candidates[i]
		switch {
		case ch.opt.IsSuccess():
			return *ch
		case ch.opt.IsCanceled() && canceled == nil:
			canceled = ch
		case ch.opt.IsFailed() && failed == nil:
			failed = ch
		}
	}

	if canceled != nil {
		return *canceled
	}
	if failed != nil {
		return *failed
	}
	return c
}

// And returns the first chain that did not succeed, or the last one.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.stopped() {
			return ch
		}
		last = ch
	}
	return last
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, opt: solo.Try(c.ctx, c.opt, try)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, opt: solo.Map(c.ctx, c.opt, onSuccess)}
}

// Ensure triggers side effects per state without changing the option. Nil
// handlers are skipped.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error),
	onCancel func(context.Context, error)) Chain[T] {

	switch {
	case c.opt.IsSuccess():
		if onSuccess != nil {
			onSuccess(c.ctx, c.value())
		}
	case c.opt.IsCanceled():
		if onCancel != nil {
			onCancel(c.ctx, c.opt.UnwrapErr())
		}
	default:
		if onFailure != nil {
			onFailure(c.ctx, c.opt.UnwrapErr())
		}
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
	onCancel func(context.Context, error) T,
) T {
	return solo.Finally(c.ctx, c.opt, onSuccess, onFailure, onCancel)
}
