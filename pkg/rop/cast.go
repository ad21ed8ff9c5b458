package rop

import "reflect"

const (
	scopeResult = "result"
	scopeOption = "option"
)

// ToResult recovers a typed Result from a boxed one.
//
// An Error passes through with its error. An Ok without a value becomes an Ok
// without a value whatever T is. An Ok holding nil, typed or not, fails with
// ErrInvalidNullCast, and a value of another type fails with ErrInvalidCast.
// On failure the returned Result is an Error carrying the same error.
func ToResult[T any](b Boxed) (Result[T], error) {
	return castResult[T](b, CastExplicit, scopeResult)
}

// AssignResult is the assignment form of ToResult. dst is left untouched when
// the conversion fails, and errors report CastImplicit.
func AssignResult[T any](dst *Result[T], b Boxed) error {
	if dst == nil {
		panic(nilArgument("dst"))
	}
	r, err := castResult[T](b, CastImplicit, scopeResult)
	if err != nil {
		return err
	}
	*dst = r
	return nil
}

func castResult[T any](b Boxed, mode CastMode, scope string) (Result[T], error) {
	out := Result[T]{id: b.id, createdAt: b.createdAt, err: b.err, state: b.state}
	if b.state != StateOk || !b.hasValue {
		return out, nil
	}

	if IsNil(b.value) {
		err := newNullCastError(mode, scope, reflect.TypeOf((*T)(nil)).Elem())
		return errWith[T](err, b.id, b.createdAt), err
	}

	v, ok := b.value.(T)
	if !ok {
		err := newCastError(mode, scope, reflect.TypeOf(b.value), reflect.TypeOf((*T)(nil)).Elem())
		return errWith[T](err, b.id, b.createdAt), err
	}

	out.value, out.hasValue = v, true
	return out, nil
}

// castSlot converts the payload slot of a boxed option. A slot without a
// value stays an empty placeholder.
func castSlot[T any](slot Boxed, mode CastMode) (Result[T], error) {
	if slot.state != StateOk {
		return Result[T]{id: slot.id, createdAt: slot.createdAt, err: slot.err}, nil
	}
	return castResult[T](slot, mode, scopeOption)
}
