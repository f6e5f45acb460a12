package errors

import "fmt"

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// MissingCapability reports that a view lacks the method an operation needs.
func MissingCapability(op, method string) *Error {
	return New(ErrCodeMissingCapability, "view does not implement "+method).
		WithOp(op).
		WithDetail("method", method)
}

// TypeMismatch reports a value that is not the expected container kind.
func TypeMismatch(op, expected string, actual any) *Error {
	return New(ErrCodeTypeMismatch, fmt.Sprintf("expected %s, got %T", expected, actual)).
		WithOp(op).
		WithDetail("expected", expected)
}

// InvalidKey reports a key that cannot address a container.
func InvalidKey(key any) *Error {
	return New(ErrCodeInvalidKey, fmt.Sprintf("key %v (%T) is neither an index nor a name", key, key))
}

// InvalidPayload reports a payload of the wrong shape.
func InvalidPayload(op, expected string, actual any) *Error {
	return New(ErrCodeInvalidPayload, fmt.Sprintf("payload must be %s, got %T", expected, actual)).
		WithOp(op)
}

// MethodNotFound reports a method lookup failure on a value.
func MethodNotFound(method string, value any) *Error {
	return New(ErrCodeMethodNotFound, fmt.Sprintf("%T has no method %s", value, method)).
		WithDetail("method", method)
}

// Codec wraps an encoding or decoding failure.
func Codec(format string, cause error) *Error {
	return New(ErrCodeCodec, "failed to process "+format).WithCause(cause)
}
