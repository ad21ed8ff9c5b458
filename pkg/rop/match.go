package rop

// Match calls the callback of the current state. Callbacks of the other states
// are never inspected and may be nil.
func (t Triple[S, F, C]) Match(onSuccess func(S), onFailed func(error), onCanceled func(error)) {
	switch t.state {
	case StateSuccess:
		if onSuccess == nil {
			panic(nilArgument("onSuccess"))
		}
		onSuccess(t.success.value)
	case StateFailed:
		if onFailed == nil {
			panic(nilArgument("onFailed"))
		}
		onFailed(t.failure())
	case StateCanceled:
		if onCanceled == nil {
			panic(nilArgument("onCanceled"))
		}
		onCanceled(t.failure())
	default:
		panic(invalidOptionState(t.state))
	}
}

// MatchWithResult is Match with the payload slots passed along.
func (t Triple[S, F, C]) MatchWithResult(
	onSuccess func(Result[S]),
	onFailed func(Result[F], error),
	onCanceled func(Result[C], error)) {

	switch t.state {
	case StateSuccess:
		if onSuccess == nil {
			panic(nilArgument("onSuccess"))
		}
		onSuccess(t.success)
	case StateFailed:
		if onFailed == nil {
			panic(nilArgument("onFailed"))
		}
		onFailed(t.failed, t.failure())
	case StateCanceled:
		if onCanceled == nil {
			panic(nilArgument("onCanceled"))
		}
		onCanceled(t.canceled, t.failure())
	default:
		panic(invalidOptionState(t.state))
	}
}

// MatchSuccessOrFailed does nothing when t is Canceled.
func (t Triple[S, F, C]) MatchSuccessOrFailed(onSuccess func(Result[S]), onFailed func(Result[F], error)) {
	switch t.state {
	case StateSuccess, StateFailed:
		t.MatchWithResult(onSuccess, onFailed, nil)
	case StateCanceled:
	default:
		panic(invalidOptionState(t.state))
	}
}

// MatchSuccessOrCanceled does nothing when t is Failed.
func (t Triple[S, F, C]) MatchSuccessOrCanceled(onSuccess func(Result[S]), onCanceled func(Result[C], error)) {
	switch t.state {
	case StateSuccess, StateCanceled:
		t.MatchWithResult(onSuccess, nil, onCanceled)
	case StateFailed:
	default:
		panic(invalidOptionState(t.state))
	}
}

// MatchFailedOrCanceled does nothing when t is Success.
func (t Triple[S, F, C]) MatchFailedOrCanceled(onFailed func(Result[F], error), onCanceled func(Result[C], error)) {
	switch t.state {
	case StateFailed, StateCanceled:
		t.MatchWithResult(nil, onFailed, onCanceled)
	case StateSuccess:
	default:
		panic(invalidOptionState(t.state))
	}
}

// Fold reduces o to an R through the callback of its current state. Option,
// Dual and Triple all satisfy Tristate.
func Fold[S, F, C, R any](o Tristate[S, F, C],
	onSuccess func(Result[S]) R,
	onFailed func(Result[F], error) R,
	onCanceled func(Result[C], error) R) R {

	switch o.State() {
	case StateSuccess:
		if onSuccess == nil {
			panic(nilArgument("onSuccess"))
		}
		return onSuccess(o.SuccessResult())
	case StateFailed:
		if onFailed == nil {
			panic(nilArgument("onFailed"))
		}
		return onFailed(o.FailedResult(), o.ErrIfFailedOrCanceled())
	case StateCanceled:
		if onCanceled == nil {
			panic(nilArgument("onCanceled"))
		}
		return onCanceled(o.CanceledResult(), o.ErrIfFailedOrCanceled())
	default:
		panic(invalidOptionState(o.State()))
	}
}

// FoldErr treats Failed and Canceled alike.
func FoldErr[S, R any](o WithSuccess[S], onSuccess func(Result[S]) R, onErr func(error) R) R {
	switch o.State() {
	case StateSuccess:
		if onSuccess == nil {
			panic(nilArgument("onSuccess"))
		}
		return onSuccess(o.SuccessResult())
	case StateFailed, StateCanceled:
		if onErr == nil {
			panic(nilArgument("onErr"))
		}
		return onErr(o.ErrIfFailedOrCanceled())
	default:
		panic(invalidOptionState(o.State()))
	}
}

// FoldSuccessOrFailed returns the zero R when o is Canceled.
func FoldSuccessOrFailed[S, F, R any](o interface {
	WithSuccess[S]
	WithFailed[F]
}, onSuccess func(Result[S]) R, onFailed func(Result[F], error) R) R {
	switch o.State() {
	case StateSuccess:
		if onSuccess == nil {
			panic(nilArgument("onSuccess"))
		}
		return onSuccess(o.SuccessResult())
	case StateFailed:
		if onFailed == nil {
			panic(nilArgument("onFailed"))
		}
		return onFailed(o.FailedResult(), o.ErrIfFailedOrCanceled())
	case StateCanceled:
		var zero R
		return zero
	default:
		panic(invalidOptionState(o.State()))
	}
}

// FoldSuccessOrCanceled returns the zero R when o is Failed.
func FoldSuccessOrCanceled[S, C, R any](o interface {
	WithSuccess[S]
	WithCanceled[C]
}, onSuccess func(Result[S]) R, onCanceled func(Result[C], error) R) R {
	switch o.State() {
	case StateSuccess:
		if onSuccess == nil {
			panic(nilArgument("onSuccess"))
		}
		return onSuccess(o.SuccessResult())
	case StateCanceled:
		if onCanceled == nil {
			panic(nilArgument("onCanceled"))
		}
		return onCanceled(o.CanceledResult(), o.ErrIfFailedOrCanceled())
	case StateFailed:
		var zero R
		return zero
	default:
		panic(invalidOptionState(o.State()))
	}
}

// FoldFailedOrCanceled returns the zero R when o is Success.
func FoldFailedOrCanceled[F, C, R any](o interface {
	WithFailed[F]
	WithCanceled[C]
}, onFailed func(Result[F], error) R, onCanceled func(Result[C], error) R) R {
	switch o.State() {
	case StateFailed:
		if onFailed == nil {
			panic(nilArgument("onFailed"))
		}
		return onFailed(o.FailedResult(), o.ErrIfFailedOrCanceled())
	case StateCanceled:
		if onCanceled == nil {
			panic(nilArgument("onCanceled"))
		}
		return onCanceled(o.CanceledResult(), o.ErrIfFailedOrCanceled())
	case StateSuccess:
		var zero R
		return zero
	default:
		panic(invalidOptionState(o.State()))
	}
}
