package chain

import (
	"context"

	"github.com/ib-77/resultlib/pkg/rop"
	"github.com/ib-77/resultlib/pkg/rop/solo"
)

// Chain wraps a rop.Option with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	option rop.Option[T]
}

// Start creates a new chain from a rop.Option
func Start[T any](ctx context.Context, option rop.Option[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		option: option,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// FromResult creates a new chain from a rop.Result
func FromResult[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return Start(ctx, solo.FromResult(result))
}

// Option returns the underlying rop.Option
func (c *Chain[T]) Option() rop.Option[T] {
	return c.option
}

// Result returns the underlying value as a rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return solo.ToResult(c.option)
}

// Box returns the type-erased form of the underlying rop.Option
func (c *Chain[T]) Box() rop.BoxedOption {
	return c.option.Box()
}

// Then chains a function that returns rop.Option[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Option[U]) *Chain[U] {
	return Start(c.ctx, solo.Switch(c.ctx, c.option, onSuccess))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Start(c.ctx, solo.Try(c.ctx, c.option, tryOnSuccess))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Start(c.ctx, solo.Map(c.ctx, c.option, onSuccess))
}

// Unbox chains a checked conversion of a boxed value to U. A failed conversion
// turns the chain Failed with the cast error.
func Unbox[U any](c *Chain[any]) *Chain[U] {
	// out already carries the cast error; callers read it via Option().UnwrapErr().
	out, _ := rop.ToOption[U](c.option.Box())
	return Start(c.ctx, out)
}

// Ensure performs a side effect without changing the option
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return Start(c.ctx, solo.Tee(c.ctx, c.option,
		func(ctx context.Context, option rop.Option[T]) {
			v, _ := option.SuccessResult().AsOk()
			onSuccess(ctx, v)
		}))
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.option, onSuccess, onFailure, onCancel)
}
