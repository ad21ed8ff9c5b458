package solo

import (
	"context"
	"errors"

	"github.com/ib-77/resultlib/pkg/rop"
)

func Succeed[T any](input T) rop.Option[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Option[T] {
	return rop.FailedCause[T](err)
}

func Cancel[T any](err error) rop.Option[T] {
	return rop.CanceledCause[T](err)
}

// FromResult lifts a Result: Ok becomes Success, Error becomes Failed.
func FromResult[T any](r rop.Result[T]) rop.Option[T] {
	if !r.IsOk() {
		return rop.FailedCause[T](r.Err())
	}
	if v, ok := r.AsOk(); ok && r.HasValue() {
		return rop.Success(v)
	}
	return rop.SuccessEmpty[T]()
}

// ToResult drops the Failed/Canceled distinction. An empty Success stays Ok
// without a value.
func ToResult[T any](input rop.Option[T]) rop.Result[T] {
	return input.ToResult()
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Option[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Option[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Option[T] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(ctx, value(input)); !isValid {
			return rop.FailedMessage[T](errMsg)
		}
	}
	return input
}

// ValidateAll runs every validator against input and joins the errors of the
// failed ones. With breakOnError it stops at the first failure.
func ValidateAll[T any](
	ctx context.Context,
	input rop.Option[T],
	breakOnError bool,
	inputsF ...func(ctx context.Context, in rop.Option[T]) rop.Option[T]) rop.Option[T] {

	if !input.IsSuccess() {
		return input
	}

	var err error
	for _, validate := range inputsF {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return rop.CanceledCause[T](ctxErr)
		}

		current := validate(ctx, input)
		if current.IsCanceled() {
			return current
		}
		if current.IsFailed() {
			e := rop.GetErrors(err)
			e = append(e, rop.GetErrors(current.UnwrapErr())...)
			err = errors.Join(e...)
			if breakOnError {
				break
			}
		}
	}

	if rop.IsNil(err) {
		return input
	}
	return rop.FailedCause[T](err)
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Option[In],
	onSuccess func(ctx context.Context, r In) rop.Option[Out]) rop.Option[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, value(input))
	}
	return rop.ForwardOption[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Option[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Option[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, value(input)))
	}
	return rop.ForwardOption[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input rop.Option[T],
	onSuccess func(ctx context.Context, r rop.Option[T])) rop.Option[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input rop.Option[T],
	condition func(ctx context.Context, r rop.Option[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Option[T])) rop.Option[T] {

	if input.IsSuccess() && condition(ctx, input) {
		onSuccessAndCondition(ctx, input)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Option[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) rop.Option[T] {

	input.Match(
		func(v T) { onSuccess(ctx, v) },
		func(err error) { onError(ctx, err) },
		func(err error) { onCancel(ctx, err) })

	return input
}

// DoubleMap maps a Success value; the error handlers observe the other states,
// which are forwarded unchanged.
func DoubleMap[In any, Out any](ctx context.Context, input rop.Option[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) rop.Option[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, value(input)))
	}

	if input.IsCanceled() {
		onCancel(ctx, input.UnwrapErr())
	} else {
		onError(ctx, input.UnwrapErr())
	}
	return rop.ForwardOption[In, Out](input)
}

// Try converts the error of onTryExecute into Failed, or into Canceled when it
// is a context cancellation.
func Try[In any, Out any](ctx context.Context, input rop.Option[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Option[Out] {

	if !input.IsSuccess() {
		return rop.ForwardOption[In, Out](input)
	}

	out, err := onTryExecute(ctx, value(input))
	if err != nil {
		if rop.IsCancellationError(err) {
			return rop.CanceledCause[Out](err)
		}
		return rop.FailedCause[Out](err)
	}
	return rop.Success(out)
}

func FailOnError[T any](ctx context.Context, input rop.Option[T],
	maybeErr func(ctx context.Context, in T) error) rop.Option[T] {

	if input.IsSuccess() {
		if err := maybeErr(ctx, value(input)); err != nil {
			return rop.FailedCause[T](err)
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Option[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	return rop.FoldErr(input,
		func(r rop.Result[In]) Out {
			v, _ := r.AsOk()
			return onSuccess(ctx, v)
		},
		func(err error) Out {
			if input.IsCanceled() {
				return onCancel(ctx, err)
			}
			return onError(ctx, err)
		})
}

// Join feeds input through inputsF, passing every step through concat. A done
// ctx stops the run with a Canceled value.
func Join[T any](ctx context.Context,
	input rop.Option[T],
	breakOnError bool,
	concat func(ctx context.Context, current rop.Option[T]) rop.Option[T],
	inputsF ...func(ctx context.Context, in rop.Option[T]) rop.Option[T]) rop.Option[T] {

	if len(inputsF) == 0 || concat == nil {
		return input
	}
	if err := ctx.Err(); err != nil {
		return rop.CanceledCause[T](err)
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if err := ctx.Err(); err != nil {
				return rop.CanceledCause[T](err)
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailed() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}

// value is the Success payload, or the zero T for an empty Success.
func value[T any](input rop.Option[T]) T {
	v, _ := input.SuccessResult().AsOk()
	return v
}
