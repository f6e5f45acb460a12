// Package errors provides typed errors raised while interpreting views.
// Supports Go 1.25+ features including generic error type assertions.
package errors

import (
	"errors"
	"fmt"
)

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// ErrorCode represents an optics failure category.
type ErrorCode string

// Error codes for all optics failure categories.
const (
	// A view was asked for a capability it does not expose.
	ErrCodeMissingCapability ErrorCode = "MISSING_CAPABILITY"
	// A value is not the container kind a view or key expects.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// A key cannot address any container.
	ErrCodeInvalidKey ErrorCode = "INVALID_KEY"
	// A payload has the wrong shape for the write it feeds.
	ErrCodeInvalidPayload ErrorCode = "INVALID_PAYLOAD"
	// Invoke named a method the value does not have.
	ErrCodeMethodNotFound ErrorCode = "METHOD_NOT_FOUND"
	// A document could not be decoded or encoded.
	ErrCodeCodec ErrorCode = "CODEC_ERROR"
	// Any other failure wrapped with optics context.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error is the standard optics error type.
type Error struct {
	Code    ErrorCode      `json:"code"`
	Op      string         `json:"op,omitempty"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	prefix := fmt.Sprintf("[%s]", e.Code)
	if e.Op != "" {
		prefix += " " + e.Op + ":"
	}
	if e.cause != nil {
		return fmt.Sprintf("%s %s: %v", prefix, e.Message, e.cause)
	}
	return fmt.Sprintf("%s %s", prefix, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause sets the underlying cause.
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

// WithOp records the dispatch operation that failed.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// WithDetail adds a detail to the error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Is checks if the error matches a target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.cause, target)
}

// Sentinels for errors.Is comparisons by code.
var (
	ErrMissingCapability = &Error{Code: ErrCodeMissingCapability}
	ErrTypeMismatch      = &Error{Code: ErrCodeTypeMismatch}
	ErrInvalidKey        = &Error{Code: ErrCodeInvalidKey}
	ErrInvalidPayload    = &Error{Code: ErrCodeInvalidPayload}
	ErrMethodNotFound    = &Error{Code: ErrCodeMethodNotFound}
	ErrCodec             = &Error{Code: ErrCodeCodec}
)

// HasCode reports whether any error in the chain carries code.
func HasCode(err error, code ErrorCode) bool {
	e, ok := AsType[*Error](err)
	for ok {
		if e.Code == code {
			return true
		}
		e, ok = AsType[*Error](e.cause)
	}
	return false
}
