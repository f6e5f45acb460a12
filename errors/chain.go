package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	// If already an Error, preserve the code and op
	if e, ok := err.(*Error); ok {
		return &Error{
			Code:    e.Code,
			Op:      e.Op,
			Message: message,
			Details: e.Details,
			cause:   err,
		}
	}
	return New(ErrCodeInternal, message).WithCause(err)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Join combines errs into one error, dropping nils. It returns nil when
// every err is nil.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// RootCause traverses the error chain to find the root cause.
func RootCause(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}
