package rop

// Option is the single payload type three-state outcome: Success, Failed or
// Canceled, each optionally carrying a T. It embeds Triple, so predicates,
// accessors, Match and Box come from there.
type Option[T any] struct {
	Triple[T, T, T]
}

// BoxedOption is the type-erased Option. ToOption, ToDual and ToTriple recover
// typed values from it.
type BoxedOption = Option[any]

// Dual carries S on Success and E on both Failed and Canceled.
type Dual[S, E any] struct {
	Triple[S, E, E]
}

func Success[T any](v T) Option[T] {
	return Option[T]{TripleOf[T, T, T]{}.Success(v)}
}

func SuccessEmpty[T any]() Option[T] {
	return Option[T]{TripleOf[T, T, T]{}.SuccessEmpty()}
}

func Failed[T any]() Option[T] {
	return Option[T]{TripleOf[T, T, T]{}.Failed()}
}

func FailedMessage[T any](message string) Option[T] {
	return Option[T]{TripleOf[T, T, T]{}.FailedMessage(message)}
}

func FailedMessageValue[T any](message string, v T) Option[T] {
	return Option[T]{TripleOf[T, T, T]{}.FailedMessageValue(message, v)}
}

// FailedCause stores err as is; a nil err gives the default error.
func FailedCause[T any](err error) Option[T] {
	return Option[T]{TripleOf[T, T, T]{}.FailedCause(err)}
}

func FailedCauseValue[T any](err error, v T) Option[T] {
	return Option[T]{TripleOf[T, T, T]{}.FailedCauseValue(err, v)}
}

func FailedValue[T any](v T) Option[T] {
	return Option[T]{TripleOf[T, T, T]{}.FailedValue(v)}
}

func Canceled[T any]() Option[T] {
	return Option[T]{TripleOf[T, T, T]{}.Canceled()}
}

func CanceledCause[T any](err error) Option[T] {
	return Option[T]{TripleOf[T, T, T]{}.CanceledCause(err)}
}

func CanceledValue[T any](v T) Option[T] {
	return Option[T]{TripleOf[T, T, T]{}.CanceledValue(v)}
}

// Result returns the payload slot of the current state.
func (o Option[T]) Result() Result[T] {
	switch o.state {
	case StateSuccess:
		return o.success
	case StateCanceled:
		return o.canceled
	default:
		return o.failed
	}
}

// ToResult folds o into a Result with o's identity. A Success becomes Ok, with
// a value only when o has one; Failed and Canceled become an Error with o's error.
func (o Option[T]) ToResult() Result[T] {
	switch {
	case o.state != StateSuccess:
		return errWith[T](o.failure(), o.id, o.createdAt)
	case o.success.IsOk():
		return o.success
	default:
		return Result[T]{id: o.id, createdAt: o.createdAt, state: StateOk}
	}
}

func (o Option[T]) Equal(other Option[T]) bool {
	return o.Triple.Equal(other.Triple)
}

func (o Option[T]) Compare(other Option[T]) int {
	return o.Triple.Compare(other.Triple)
}

func (o Option[T]) Less(other Option[T]) bool {
	return o.Compare(other) < 0
}

// ForwardOption re-types a Failed or Canceled Option, keeping its error and
// identity and dropping the payload. It panics with ErrInvalidForward on
// Success.
func ForwardOption[In, Out any](o Option[In]) Option[Out] {
	if o.state == StateSuccess {
		panic(newError(ErrInvalidForward, "option: forward is only available for states [Failed] or [Canceled]"))
	}
	return Option[Out]{blankTriple[Out, Out, Out](o.state, o.err, o.id, o.createdAt)}
}

// DualOf groups the Dual factories for one pair of payload types.
type DualOf[S, E any] struct{}

func (DualOf[S, E]) Success(v S) Dual[S, E] {
	return Dual[S, E]{TripleOf[S, E, E]{}.Success(v)}
}

func (DualOf[S, E]) SuccessEmpty() Dual[S, E] {
	return Dual[S, E]{TripleOf[S, E, E]{}.SuccessEmpty()}
}

func (DualOf[S, E]) Failed() Dual[S, E] {
	return Dual[S, E]{TripleOf[S, E, E]{}.Failed()}
}

func (DualOf[S, E]) FailedMessage(message string) Dual[S, E] {
	return Dual[S, E]{TripleOf[S, E, E]{}.FailedMessage(message)}
}

func (DualOf[S, E]) FailedMessageValue(message string, v E) Dual[S, E] {
	return Dual[S, E]{TripleOf[S, E, E]{}.FailedMessageValue(message, v)}
}

func (DualOf[S, E]) FailedCause(err error) Dual[S, E] {
	return Dual[S, E]{TripleOf[S, E, E]{}.FailedCause(err)}
}

func (DualOf[S, E]) FailedCauseValue(err error, v E) Dual[S, E] {
	return Dual[S, E]{TripleOf[S, E, E]{}.FailedCauseValue(err, v)}
}

func (DualOf[S, E]) FailedValue(v E) Dual[S, E] {
	return Dual[S, E]{TripleOf[S, E, E]{}.FailedValue(v)}
}

func (DualOf[S, E]) Canceled() Dual[S, E] {
	return Dual[S, E]{TripleOf[S, E, E]{}.Canceled()}
}

func (DualOf[S, E]) CanceledCause(err error) Dual[S, E] {
	return Dual[S, E]{TripleOf[S, E, E]{}.CanceledCause(err)}
}

func (DualOf[S, E]) CanceledValue(v E) Dual[S, E] {
	return Dual[S, E]{TripleOf[S, E, E]{}.CanceledValue(v)}
}

func (d Dual[S, E]) Equal(other Dual[S, E]) bool {
	return d.Triple.Equal(other.Triple)
}

func (d Dual[S, E]) Compare(other Dual[S, E]) int {
	return d.Triple.Compare(other.Triple)
}

func (d Dual[S, E]) Less(other Dual[S, E]) bool {
	return d.Compare(other) < 0
}
