package rop

import (
	"context"
	"fmt"
	"reflect"

	"github.com/samber/lo"
)

// Kind classifies every error the library produces itself. A Kind is an error,
// so callers can match with errors.Is(err, rop.ErrInvalidCast).
type Kind uint8

const (
	ErrFailure Kind = iota
	ErrUninitialized
	ErrUnwrap
	ErrInvalidSome
	ErrInvalidForward
	ErrInvalidCast
	ErrInvalidNullCast
	ErrInvalidState
	ErrMergeTypeMismatch
	ErrCanceled
	ErrNilArgument
)

var kindNames = [...]string{
	ErrFailure:           "failure",
	ErrUninitialized:     "uninitialized value",
	ErrUnwrap:            "unwrap on wrong state",
	ErrInvalidSome:       "invalid some operation",
	ErrInvalidForward:    "invalid forward",
	ErrInvalidCast:       "invalid cast",
	ErrInvalidNullCast:   "invalid nil cast",
	ErrInvalidState:      "invalid state",
	ErrMergeTypeMismatch: "option merge type mismatch",
	ErrCanceled:          "operation canceled",
	ErrNilArgument:       "nil argument",
}

func (k Kind) Error() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) String() string {
	return k.Error()
}

// CastMode tells which call site attempted a boxed to typed conversion.
type CastMode uint8

const (
	CastExplicit CastMode = iota
	CastImplicit
)

func (m CastMode) String() string {
	return lo.Ternary(m == CastImplicit, "implicit", "explicit")
}

const (
	msgResultDefault       = "result: something went wrong"
	msgResultUninitialized = "result: must be instantiated with a factory"
	msgResultNilRequired   = "result: value could not be nil"
	msgOptionDefault       = "option: something went wrong"
	msgOptionUninitialized = "option: must be instantiated with a factory"
	msgOptionCanceled      = "option: operation canceled"
)

// Error is the error value produced by the library. Caller supplied errors are
// never wrapped into it; they travel through Result and Option untouched.
type Error struct {
	Kind    Kind
	Message string

	// Mode, From and To are set for ErrInvalidCast, From and To for
	// ErrMergeTypeMismatch.
	Mode CastMode
	From reflect.Type
	To   reflect.Type

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches a Kind, and context.Canceled for canceled errors.
func (e *Error) Is(target error) bool {
	if k, ok := target.(Kind); ok {
		return k == e.Kind
	}
	return e.Kind == ErrCanceled && target == context.Canceled
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func newCastError(mode CastMode, scope string, from, to reflect.Type) *Error {
	return &Error{
		Kind: ErrInvalidCast,
		Message: fmt.Sprintf("%s: value could not be cast from %s to %s, possibility of losing data in %s conversion",
			scope, typeName(from), typeName(to), mode),
		Mode: mode,
		From: from,
		To:   to,
	}
}

func newNullCastError(mode CastMode, scope string, to reflect.Type) *Error {
	return &Error{
		Kind:    ErrInvalidNullCast,
		Message: fmt.Sprintf("%s: cannot hold a nil value when ok, %s cast to %s", scope, mode, typeName(to)),
		Mode:    mode,
		To:      to,
	}
}

func nilArgument(name string) *Error {
	return newError(ErrNilArgument, "rop: argument "+name+" is nil")
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
