// Package errors is the single import for error construction: sentinel checks
// go through the standard library, wrapping through pkg/errors so that 5xx logs
// carry a stack trace.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Wrap annotates err with message and the caller's stack.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// WithMessage annotates err without adding a stack; used for sentinel details.
func WithMessage(err error, message string) error {
	return pkgerrors.WithMessage(err, message)
}
