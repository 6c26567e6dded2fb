// Package apierrors carries the client's domain error type and the
// boundary wrapper that collapses internal failures into a single generic
// error for callers that must not see details.
package apierrors

import (
	"errors"
)

// Code is a machine-readable error category.
type Code string

const (
	// CodeInternal marks failures whose details stay server-side.
	CodeInternal Code = "INTERNAL"
	// CodeInvalidArgument marks caller mistakes.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeUnavailable marks transient upstream failures.
	CodeUnavailable Code = "UNAVAILABLE"
)

// Error is the domain error type with structured metadata.
type Error struct {
	Code    Code   // machine-readable category
	Message string // internal message for logs
	Cause   error  // wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// simplifiedMessage is what callers see when details are collapsed.
const simplifiedMessage = "there was a problem communicating with the server"

// SimplifyOptions controls Simplify at a call site.
type SimplifyOptions struct {
	// Collapse turns any error into a single generic Error. When false,
	// Simplify passes err through untouched.
	Collapse bool
	// Exempt lists sentinel errors to pass through even when collapsing,
	// matched with errors.Is. Useful when one failure mode needs separate
	// handling while the rest stay hidden.
	Exempt []error
	// Message overrides the generic message.
	Message string
}

// Simplify applies the error-simplification policy to the outcome of an
// API call. Collapsed errors keep the original as their cause, so logs
// and errors.Is/As on the chain still work server-side.
func Simplify(err error, opts SimplifyOptions) error {
	if err == nil || !opts.Collapse {
		return err
	}
	for _, exempt := range opts.Exempt {
		if errors.Is(err, exempt) {
			return err
		}
	}
	message := opts.Message
	if message == "" {
		message = simplifiedMessage
	}
	return Wrap(CodeInternal, message, err)
}
