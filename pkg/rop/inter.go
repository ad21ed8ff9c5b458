package rop

import (
	"time"

	"github.com/google/uuid"
)

type Identified interface {
	// ID returns the identity shared by a value and its conversions
	ID() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Outcome is the read side of a Result.
type Outcome[T any] interface {
	Identified
	// IsOk returns true if the operation was successful
	IsOk() bool
	// TryUnwrap returns the value or the error
	TryUnwrap() (T, error)
	// Err returns the error if operation failed
	Err() error
}

// Stateful is implemented by Option, Dual and Triple.
type Stateful interface {
	Identified
	State() OptionState
	IsSuccess() bool
	IsFailed() bool
	IsCanceled() bool
	// ErrIfFailedOrCanceled returns the error unless the state is Success
	ErrIfFailedOrCanceled() error
}

type WithSuccess[S any] interface {
	Stateful
	SuccessResult() Result[S]
}

type WithFailed[F any] interface {
	Stateful
	FailedResult() Result[F]
}

type WithCanceled[C any] interface {
	Stateful
	CanceledResult() Result[C]
}

// Tristate exposes all three payload slots.
type Tristate[S, F, C any] interface {
	WithSuccess[S]
	WithFailed[F]
	WithCanceled[C]
}

var (
	_ Outcome[int]                  = Result[int]{}
	_ Tristate[int, string, bool]   = Triple[int, string, bool]{}
	_ Tristate[int, int, int]       = Option[int]{}
	_ Tristate[int, string, string] = Dual[int, string]{}
)
