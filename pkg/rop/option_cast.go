package rop

import (
	"fmt"
	"reflect"
)

// ToOption recovers a typed Option from a boxed one. Only the slot of the
// current state is converted, following the rules of ToResult.
func ToOption[T any](b BoxedOption) (Option[T], error) {
	t, err := castTriple[T, T, T](b, CastExplicit)
	return Option[T]{t}, err
}

func AssignOption[T any](dst *Option[T], b BoxedOption) error {
	if dst == nil {
		panic(nilArgument("dst"))
	}
	t, err := castTriple[T, T, T](b, CastImplicit)
	if err != nil {
		return err
	}
	*dst = Option[T]{t}
	return nil
}

func ToDual[S, E any](b BoxedOption) (Dual[S, E], error) {
	t, err := castTriple[S, E, E](b, CastExplicit)
	return Dual[S, E]{t}, err
}

func AssignDual[S, E any](dst *Dual[S, E], b BoxedOption) error {
	if dst == nil {
		panic(nilArgument("dst"))
	}
	t, err := castTriple[S, E, E](b, CastImplicit)
	if err != nil {
		return err
	}
	*dst = Dual[S, E]{t}
	return nil
}

func ToTriple[S, F, C any](b BoxedOption) (Triple[S, F, C], error) {
	return castTriple[S, F, C](b, CastExplicit)
}

func AssignTriple[S, F, C any](dst *Triple[S, F, C], b BoxedOption) error {
	if dst == nil {
		panic(nilArgument("dst"))
	}
	t, err := castTriple[S, F, C](b, CastImplicit)
	if err != nil {
		return err
	}
	*dst = t
	return nil
}

// castTriple converts the slot of the current state. On failure it returns a
// Failed value with the cast error and the identity of b.
func castTriple[S, F, C any](b BoxedOption, mode CastMode) (Triple[S, F, C], error) {
	out := blankTriple[S, F, C](b.state, b.err, b.id, b.createdAt)

	var err error
	switch b.state {
	case StateSuccess:
		out.success, err = castSlot[S](b.success, mode)
	case StateFailed:
		out.failed, err = castSlot[F](b.failed, mode)
	case StateCanceled:
		out.canceled, err = castSlot[C](b.canceled, mode)
	default:
		err = invalidOptionState(b.state)
	}
	if err != nil {
		return failedWith[S, F, C](err, b.id, b.createdAt), err
	}
	return out, nil
}

// Merge collapses a Triple into a Dual whose error side carries F.
//
// A Success merges whatever F and C are, as does a Failed or Canceled t whose
// current slot holds no payload. A Failed or Canceled t with a payload merges
// only when C is F, otherwise Merge fails with ErrMergeTypeMismatch.
func Merge[S, F, C any](t Triple[S, F, C]) (Dual[S, F], error) {
	d := Dual[S, F]{blankTriple[S, F, F](t.state, t.err, t.id, t.createdAt)}
	d.success = t.success
	d.failed = t.failed
	if c, ok := any(t.canceled).(Result[F]); ok {
		d.canceled = c
		return d, nil
	}

	if t.state == StateSuccess || !t.slotHasPayload() {
		d.canceled = Result[F]{id: t.canceled.id, createdAt: t.canceled.createdAt, err: t.canceled.err}
		return d, nil
	}

	from, to := reflect.TypeOf((*C)(nil)).Elem(), reflect.TypeOf((*F)(nil)).Elem()
	err := &Error{
		Kind: ErrMergeTypeMismatch,
		Message: fmt.Sprintf("option: can not merge, canceled type %s differs from failed type %s",
			typeName(from), typeName(to)),
		From: from,
		To:   to,
	}
	return Dual[S, F]{failedWith[S, F, F](err, t.id, t.createdAt)}, err
}

func (t Triple[S, F, C]) slotHasPayload() bool {
	switch t.state {
	case StateFailed:
		return t.failed.IsOk()
	case StateCanceled:
		return t.canceled.IsOk()
	default:
		return t.success.IsOk()
	}
}
