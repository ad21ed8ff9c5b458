package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is either Ok, optionally carrying a value, or Error carrying an error.
// The zero value is an Error that reports ErrUninitialized.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	state     ResultState
	hasValue  bool
}

// Boxed is the type-erased Result. Use ToResult or AssignResult to recover a
// typed Result from it.
type Boxed = Result[any]

var errResultUninitialized = newError(ErrUninitialized, msgResultUninitialized)

func newIdentity() (uuid.UUID, time.Time) {
	return uuid.New(), time.Now().UTC()
}

func okWith[T any](v T, id uuid.UUID, at time.Time) Result[T] {
	return Result[T]{id: id, createdAt: at, value: v, state: StateOk, hasValue: true}
}

func errWith[T any](err error, id uuid.UUID, at time.Time) Result[T] {
	return Result[T]{id: id, createdAt: at, err: err, state: StateError}
}

// emptyWith is the placeholder stored in an Option slot that has no payload.
func emptyWith[T any](id uuid.UUID, at time.Time) Result[T] {
	return errWith[T](newError(ErrFailure, msgResultDefault), id, at)
}

func requiredWith[T any](v T, id uuid.UUID, at time.Time) Result[T] {
	if IsNil(v) {
		return errWith[T](newError(ErrFailure, msgResultNilRequired), id, at)
	}
	return okWith(v, id, at)
}

func Ok[T any](v T) Result[T] {
	id, at := newIdentity()
	return okWith(v, id, at)
}

// OkEmpty returns an Ok Result without a value.
func OkEmpty[T any]() Result[T] {
	id, at := newIdentity()
	return Result[T]{id: id, createdAt: at, state: StateOk}
}

func Err[T any]() Result[T] {
	id, at := newIdentity()
	return errWith[T](newError(ErrFailure, msgResultDefault), id, at)
}

func ErrMessage[T any](message string) Result[T] {
	id, at := newIdentity()
	return errWith[T](newError(ErrFailure, message), id, at)
}

// ErrCause stores err as is. A nil err gives the default error.
func ErrCause[T any](err error) Result[T] {
	if err == nil {
		return Err[T]()
	}
	id, at := newIdentity()
	return errWith[T](err, id, at)
}

// FromRequired returns Ok(v), or an Error when v is nil.
func FromRequired[T any](v T) Result[T] {
	id, at := newIdentity()
	return requiredWith(v, id, at)
}

func (r Result[T]) ID() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) State() ResultState {
	return r.state
}

func (r Result[T]) IsOk() bool {
	return r.state == StateOk
}

func (r Result[T]) IsError() bool {
	return r.state != StateOk
}

// HasValue reports whether r is Ok and was built with a value.
func (r Result[T]) HasValue() bool {
	return r.state == StateOk && r.hasValue
}

// AsOk returns the value and true when r is Ok.
func (r Result[T]) AsOk() (T, bool) {
	if r.state == StateOk {
		return r.value, true
	}
	var zero T
	return zero, false
}

// AsError returns the error and true when r is Error.
func (r Result[T]) AsError() (error, bool) {
	if r.state == StateOk {
		return nil, false
	}
	return r.failure(), true
}

func (r Result[T]) failure() error {
	if r.err == nil {
		return errResultUninitialized
	}
	return r.err
}

// Unwrap returns the value and panics with ErrUnwrap when r is Error.
func (r Result[T]) Unwrap() T {
	if r.state != StateOk {
		panic(&Error{
			Kind:    ErrUnwrap,
			Message: "result: can not unwrap Result with state [Error]",
			cause:   r.failure(),
		})
	}
	return r.value
}

func (r Result[T]) UnwrapOr(defaultValue T) T {
	if r.state == StateOk {
		return r.value
	}
	return defaultValue
}

// UnwrapOrElse calls fn only when r is Error, so fn may be nil for an Ok r.
func (r Result[T]) UnwrapOrElse(fn func() T) T {
	if r.state == StateOk {
		return r.value
	}
	if fn == nil {
		panic(nilArgument("fn"))
	}
	return fn()
}

func (r Result[T]) TryUnwrap() (T, error) {
	if r.state == StateOk {
		return r.value, nil
	}
	var zero T
	return zero, r.failure()
}

// Some returns the value and true only when r is Ok with a non-nil value.
func (r Result[T]) Some() (T, bool) {
	if r.state == StateOk && r.hasValue && !IsNil(r.value) {
		return r.value, true
	}
	var zero T
	return zero, false
}

// SomeOr is like Some but falls back to defaultValue, which must not be nil.
func (r Result[T]) SomeOr(defaultValue T) T {
	if v, ok := r.Some(); ok {
		return v
	}
	if IsNil(defaultValue) {
		panic(newError(ErrInvalidSome, "result: some default value must not be nil"))
	}
	return defaultValue
}

func (r Result[T]) SomeOrElse(fn func() T) T {
	if v, ok := r.Some(); ok {
		return v
	}
	if fn == nil {
		panic(nilArgument("fn"))
	}
	v := fn()
	if IsNil(v) {
		panic(newError(ErrInvalidSome, "result: some func must return a value which is not nil"))
	}
	return v
}

// UnwrapErr returns the error and panics with ErrUnwrap when r is Ok.
func (r Result[T]) UnwrapErr() error {
	if r.state == StateOk {
		panic(newError(ErrUnwrap, "result: can not unwrap error with state [Ok]"))
	}
	return r.failure()
}

// Err returns nil when r is Ok, the error otherwise.
func (r Result[T]) Err() error {
	if r.state == StateOk {
		return nil
	}
	return r.failure()
}

// Match calls exactly one of onOk and onErr. Only the callback that runs must
// be non-nil.
func (r Result[T]) Match(onOk func(T), onErr func(error)) {
	switch r.state {
	case StateOk:
		if onOk == nil {
			panic(nilArgument("onOk"))
		}
		onOk(r.value)
	case StateError:
		if onErr == nil {
			panic(nilArgument("onErr"))
		}
		onErr(r.failure())
	default:
		panic(invalidResultState(r.state))
	}
}

func MatchResult[T, R any](r Result[T], onOk func(T) R, onErr func(error) R) R {
	switch r.state {
	case StateOk:
		if onOk == nil {
			panic(nilArgument("onOk"))
		}
		return onOk(r.value)
	case StateError:
		if onErr == nil {
			panic(nilArgument("onErr"))
		}
		return onErr(r.failure())
	default:
		panic(invalidResultState(r.state))
	}
}

func invalidResultState(s ResultState) *Error {
	return newError(ErrInvalidState, fmt.Sprintf("result: state %d is not recognized, should be [Ok] or [Error]", uint8(s)))
}

// ForwardError returns a new Error Result carrying r's error.
func (r Result[T]) ForwardError() Result[T] {
	return Forward[T, T](r)
}

// Forward re-types an Error Result, keeping its error and identity. It panics
// with ErrInvalidForward when r is Ok.
func Forward[T, U any](r Result[T]) Result[U] {
	if r.state == StateOk {
		panic(newError(ErrInvalidForward, "result: forward is only available for state [Error]"))
	}
	return errWith[U](r.failure(), r.id, r.createdAt)
}

// Box erases the value type. An Ok r holding nil, as an interface or a typed
// nil such as (*T)(nil), boxes to Ok without a value.
func (r Result[T]) Box() Boxed {
	b := Boxed{id: r.id, createdAt: r.createdAt, err: r.err, state: r.state}
	if r.state == StateOk && r.hasValue {
		if v := any(r.value); !IsNil(v) {
			b.value, b.hasValue = v, true
		}
	}
	return b
}

func (r Result[T]) String() string {
	if r.state == StateOk {
		if !r.hasValue || IsNil(r.value) {
			return "Ok = null"
		}
		return fmt.Sprintf("Ok = %v", r.value)
	}
	return "Error = " + r.failure().Error()
}
