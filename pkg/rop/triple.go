package rop

import (
	"cmp"
	"fmt"
	"hash/maphash"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Triple is a three-state outcome with its own payload type per state. Only the
// Result slot of the current state is meaningful; the others are empty
// placeholders. The zero value is Failed and reports ErrUninitialized.
type Triple[S, F, C any] struct {
	id        uuid.UUID
	createdAt time.Time
	success   Result[S]
	failed    Result[F]
	canceled  Result[C]
	err       error
	state     OptionState
}

var (
	errOptionUninitialized = newError(ErrUninitialized, msgOptionUninitialized)
	errOptionCanceled      = newError(ErrCanceled, msgOptionCanceled)
)

func blankTriple[S, F, C any](state OptionState, err error, id uuid.UUID, at time.Time) Triple[S, F, C] {
	return Triple[S, F, C]{
		id:        id,
		createdAt: at,
		success:   emptyWith[S](id, at),
		failed:    emptyWith[F](id, at),
		canceled:  emptyWith[C](id, at),
		err:       err,
		state:     state,
	}
}

func newTriple[S, F, C any](state OptionState, err error) Triple[S, F, C] {
	id, at := newIdentity()
	return blankTriple[S, F, C](state, err, id, at)
}

func failedWith[S, F, C any](err error, id uuid.UUID, at time.Time) Triple[S, F, C] {
	return blankTriple[S, F, C](StateFailed, err, id, at)
}

func optionFailure(err error) error {
	if err == nil {
		return newError(ErrFailure, msgOptionDefault)
	}
	return err
}

// TripleOf groups the Triple factories for one set of payload types:
//
//	o := rop.TripleOf[int, string, float64]{}.FailedValue("x")
type TripleOf[S, F, C any] struct{}

func (TripleOf[S, F, C]) Success(v S) Triple[S, F, C] {
	t := newTriple[S, F, C](StateSuccess, nil)
	t.success = requiredWith(v, t.id, t.createdAt)
	return t
}

func (TripleOf[S, F, C]) SuccessEmpty() Triple[S, F, C] {
	return newTriple[S, F, C](StateSuccess, nil)
}

func (TripleOf[S, F, C]) Failed() Triple[S, F, C] {
	return newTriple[S, F, C](StateFailed, optionFailure(nil))
}

func (TripleOf[S, F, C]) FailedMessage(message string) Triple[S, F, C] {
	return newTriple[S, F, C](StateFailed, newError(ErrFailure, message))
}

func (f TripleOf[S, F, C]) FailedMessageValue(message string, v F) Triple[S, F, C] {
	t := f.FailedMessage(message)
	t.failed = requiredWith(v, t.id, t.createdAt)
	return t
}

func (TripleOf[S, F, C]) FailedCause(err error) Triple[S, F, C] {
	return newTriple[S, F, C](StateFailed, optionFailure(err))
}

func (f TripleOf[S, F, C]) FailedCauseValue(err error, v F) Triple[S, F, C] {
	t := f.FailedCause(err)
	t.failed = requiredWith(v, t.id, t.createdAt)
	return t
}

// FailedValue is Failed with the default error and a payload.
func (f TripleOf[S, F, C]) FailedValue(v F) Triple[S, F, C] {
	return f.FailedCauseValue(nil, v)
}

func (TripleOf[S, F, C]) Canceled() Triple[S, F, C] {
	return newTriple[S, F, C](StateCanceled, errOptionCanceled)
}

// CanceledCause keeps err as the cancellation reason; a nil err gives the
// default canceled error.
func (TripleOf[S, F, C]) CanceledCause(err error) Triple[S, F, C] {
	if err == nil {
		err = errOptionCanceled
	}
	return newTriple[S, F, C](StateCanceled, err)
}

func (f TripleOf[S, F, C]) CanceledValue(v C) Triple[S, F, C] {
	t := f.Canceled()
	t.canceled = requiredWith(v, t.id, t.createdAt)
	return t
}

func (t Triple[S, F, C]) ID() uuid.UUID {
	return t.id
}

func (t Triple[S, F, C]) CreatedAt() time.Time {
	return t.createdAt
}

func (t Triple[S, F, C]) State() OptionState {
	return t.state
}

func (t Triple[S, F, C]) IsSuccess() bool {
	return t.state == StateSuccess
}

func (t Triple[S, F, C]) IsFailed() bool {
	return t.state == StateFailed
}

func (t Triple[S, F, C]) IsCanceled() bool {
	return t.state == StateCanceled
}

func (t Triple[S, F, C]) IsSuccessOrCanceled() bool {
	return t.IsSuccess() || t.IsCanceled()
}

func (t Triple[S, F, C]) IsSuccessOrFailed() bool {
	return t.IsSuccess() || t.IsFailed()
}

func (t Triple[S, F, C]) IsFailedOrCanceled() bool {
	return t.IsFailed() || t.IsCanceled()
}

func (t Triple[S, F, C]) SuccessResult() Result[S] {
	return t.success
}

func (t Triple[S, F, C]) FailedResult() Result[F] {
	return t.failed
}

func (t Triple[S, F, C]) CanceledResult() Result[C] {
	return t.canceled
}

// AsSuccess returns the Success slot together with IsSuccess.
func (t Triple[S, F, C]) AsSuccess() (Result[S], bool) {
	return t.success, t.IsSuccess()
}

func (t Triple[S, F, C]) AsFailed() (Result[F], bool) {
	return t.failed, t.IsFailed()
}

func (t Triple[S, F, C]) AsCanceled() (Result[C], bool) {
	return t.canceled, t.IsCanceled()
}

func (t Triple[S, F, C]) AsSuccessOrCanceled() (Result[S], Result[C], bool) {
	return t.success, t.canceled, t.IsSuccessOrCanceled()
}

func (t Triple[S, F, C]) AsSuccessOrFailed() (Result[S], Result[F], bool) {
	return t.success, t.failed, t.IsSuccessOrFailed()
}

func (t Triple[S, F, C]) AsFailedOrCanceled() (Result[F], Result[C], bool) {
	return t.failed, t.canceled, t.IsFailedOrCanceled()
}

func (t Triple[S, F, C]) failure() error {
	if t.err == nil {
		if t.state == StateCanceled {
			return errOptionCanceled
		}
		return errOptionUninitialized
	}
	return t.err
}

// UnwrapErr returns the error of a Failed or Canceled value. A Success has no
// error, so asking for one panics with ErrUnwrap.
func (t Triple[S, F, C]) UnwrapErr() error {
	switch t.state {
	case StateSuccess:
		panic(newError(ErrUnwrap, "option: does not have an error in state [Success]"))
	case StateFailed, StateCanceled:
		return t.failure()
	default:
		panic(invalidOptionState(t.state))
	}
}

func (t Triple[S, F, C]) ErrIfFailed() error {
	if t.IsFailed() {
		return t.failure()
	}
	return nil
}

func (t Triple[S, F, C]) ErrIfCanceled() error {
	if t.IsCanceled() {
		return t.failure()
	}
	return nil
}

func (t Triple[S, F, C]) ErrIfFailedOrCanceled() error {
	if t.IsFailedOrCanceled() {
		return t.failure()
	}
	return nil
}

func invalidOptionState(s OptionState) *Error {
	return newError(ErrInvalidState,
		fmt.Sprintf("option: state %d is not recognized, should be [Success], [Failed] or [Canceled]", uint8(s)))
}

// Equal compares state, the slot of that state and, for Failed and Canceled,
// the error message ignoring case.
func (t Triple[S, F, C]) Equal(other Triple[S, F, C]) bool {
	if t.state != other.state {
		return false
	}
	switch t.state {
	case StateSuccess:
		return t.success.Equal(other.success)
	case StateFailed:
		return t.failed.Equal(other.failed) && equalErrors(t.failure(), other.failure())
	case StateCanceled:
		return t.canceled.Equal(other.canceled) && equalErrors(t.failure(), other.failure())
	default:
		return false
	}
}

// Compare orders Success > Failed > Canceled, then by the slot of the shared
// state, then by error.
func (t Triple[S, F, C]) Compare(other Triple[S, F, C]) int {
	if t.state != other.state {
		return cmp.Compare(t.state.rank(), other.state.rank())
	}
	switch t.state {
	case StateSuccess:
		return t.success.Compare(other.success)
	case StateFailed:
		return compareSlots(t.failed, other.failed, t.failure(), other.failure())
	case StateCanceled:
		return compareSlots(t.canceled, other.canceled, t.failure(), other.failure())
	default:
		return 0
	}
}

func compareSlots[P any](a, b Result[P], errA, errB error) int {
	switch {
	case a.IsOk() && b.IsOk():
		if c := a.Compare(b); c != 0 {
			return c
		}
		return compareErrors(errA, errB)
	case a.IsOk():
		return 1
	case b.IsOk():
		return -1
	default:
		return compareErrors(errA, errB)
	}
}

func (t Triple[S, F, C]) Less(other Triple[S, F, C]) bool {
	return t.Compare(other) < 0
}

func (t Triple[S, F, C]) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	_ = h.WriteByte(byte(t.state))
	switch t.state {
	case StateSuccess:
		t.success.writeHash(&h)
	case StateFailed:
		t.failed.writeHash(&h)
	case StateCanceled:
		t.canceled.writeHash(&h)
	}
	if t.state != StateSuccess {
		_, _ = h.WriteString(strings.ToLower(t.failure().Error()))
	}
	return h.Sum64()
}

func (t Triple[S, F, C]) String() string {
	switch t.state {
	case StateSuccess:
		return "Success; Value: {" + t.success.String() + "}"
	case StateFailed:
		return "Failed; Error = " + t.failure().Error() + "; Value: {" + t.failed.String() + "}"
	case StateCanceled:
		return "Canceled; Value: {" + t.canceled.String() + "}"
	default:
		return "Unrecognized State"
	}
}

// Box erases the payload types. The slot of the current state is boxed, the
// others become empty placeholders.
func (t Triple[S, F, C]) Box() BoxedOption {
	b := blankTriple[any, any, any](t.state, t.err, t.id, t.createdAt)
	switch t.state {
	case StateSuccess:
		b.success = t.success.Box()
	case StateFailed:
		b.failed = t.failed.Box()
	case StateCanceled:
		b.canceled = t.canceled.Box()
	}
	return BoxedOption{b}
}
