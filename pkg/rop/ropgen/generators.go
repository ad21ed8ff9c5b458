package ropgen

import (
	"errors"

	"github.com/ib-77/resultlib/pkg/rop"
	"pgregory.net/rapid"
)

// ErrorGen generates errors with alphanumeric messages.
func ErrorGen() *rapid.Generator[error] {
	return rapid.Custom(func(t *rapid.T) error {
		return errors.New(rapid.StringMatching(`[a-zA-Z0-9 ]{1,24}`).Draw(t, "errorMsg"))
	})
}

// ResultGen generates Ok, empty Ok and Error results.
func ResultGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[rop.Result[T]] {
	return rapid.Custom(func(t *rapid.T) rop.Result[T] {
		switch rapid.IntRange(0, 2).Draw(t, "kind") {
		case 0:
			return rop.Ok(valueGen.Draw(t, "value"))
		case 1:
			return rop.OkEmpty[T]()
		default:
			return rop.ErrCause[T](ErrorGen().Draw(t, "error"))
		}
	})
}

// OkGen generates Ok[T] values only.
func OkGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[rop.Result[T]] {
	return rapid.Custom(func(t *rapid.T) rop.Result[T] {
		return rop.Ok(valueGen.Draw(t, "value"))
	})
}

// ErrGen generates Error results only.
func ErrGen[T any]() *rapid.Generator[rop.Result[T]] {
	return rapid.Custom(func(t *rapid.T) rop.Result[T] {
		return rop.ErrCause[T](ErrorGen().Draw(t, "error"))
	})
}

// StateGen generates one of the three option states.
func StateGen() *rapid.Generator[rop.OptionState] {
	return rapid.SampledFrom([]rop.OptionState{rop.StateSuccess, rop.StateFailed, rop.StateCanceled})
}

// TripleGen generates triples in every state, with and without payloads.
func TripleGen[S, F, C any](
	successGen *rapid.Generator[S],
	failedGen *rapid.Generator[F],
	canceledGen *rapid.Generator[C]) *rapid.Generator[rop.Triple[S, F, C]] {

	return rapid.Custom(func(t *rapid.T) rop.Triple[S, F, C] {
		f := rop.TripleOf[S, F, C]{}
		withValue := rapid.Bool().Draw(t, "withValue")
		switch StateGen().Draw(t, "state") {
		case rop.StateSuccess:
			if withValue {
				return f.Success(successGen.Draw(t, "success"))
			}
			return f.SuccessEmpty()
		case rop.StateCanceled:
			if withValue {
				return f.CanceledValue(canceledGen.Draw(t, "canceled"))
			}
			return f.Canceled()
		default:
			err := ErrorGen().Draw(t, "error")
			if withValue {
				return f.FailedCauseValue(err, failedGen.Draw(t, "failed"))
			}
			return f.FailedCause(err)
		}
	})
}

// OptionGen generates Option[T] values in every state.
func OptionGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[rop.Option[T]] {
	return rapid.Map(TripleGen(valueGen, valueGen, valueGen), func(t rop.Triple[T, T, T]) rop.Option[T] {
		return rop.Option[T]{Triple: t}
	})
}
