package rop

import (
	"context"
	"errors"

	"github.com/samber/lo"
)

// IsNil reports whether v is nil, including typed nils held in an interface.
func IsNil(v any) bool {
	return lo.IsNil(v)
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
