// Package errors is the error toolkit shared by dropzone packages. Sentinels
// come from the standard library; wrapped errors carry a pkg/errors stack.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a sentinel error without a stack trace.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether err or anything it wraps matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As stores the first error in err's chain that is assignable to target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsType returns the first error in err's chain of type T.
func AsType[T error](err error) (T, bool) {
	var found T
	if stderrors.As(err, &found) {
		return found, true
	}

	return found, false
}

// Wrap prefixes err with message and records the caller's stack.
// A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// WithStack records the caller's stack on err without changing its message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
