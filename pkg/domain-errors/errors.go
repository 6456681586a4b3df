// Package domainerrors classifies business-rule failures with stable codes.
//
// Aggregates return these instead of bare strings so callers can branch on
// the class of failure (HasCode) without string matching, and external layers
// can map codes onto their own reporting without knowing every rule. Richer,
// per-aggregate detail types (e.g. a quorum failure carrying required and
// present counts) are wrapped inside an Error and recovered with errors.As.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies the class of a domain failure.
type Code string

const (
	// CodeInvalidInput marks malformed external input rejected at a trust
	// boundary (bad identifier, malformed corporate number, wrong currency).
	CodeInvalidInput Code = "invalid_input"

	// CodeInvariantViolation marks a command that would break an aggregate
	// invariant (headcount minimums, share conservation, term caps).
	CodeInvariantViolation Code = "invariant_violation"

	// CodeConflict marks a command valid in itself but contradicting current
	// state (duplicate director, status transition from the wrong state).
	CodeConflict Code = "conflict"

	// CodeNotFound marks a reference to an entity the aggregate does not hold.
	CodeNotFound Code = "not_found"

	// CodeInternal marks unexpected failures that are not business rules.
	CodeInternal Code = "internal"
)

// Error is a classified domain error. The zero value is not useful; construct
// via New, Newf, or Wrap.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a classified error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error. The cause remains reachable through
// errors.Is and errors.As, so typed detail structs survive the wrapping.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether err or any error in its chain carries the code.
func HasCode(err error, code Code) bool {
	var de *Error
	for errors.As(err, &de) {
		if de.Code == code {
			return true
		}
		err = de.Err
		if err == nil {
			return false
		}
	}
	return false
}

// CodeOf returns the code of the outermost classified error in the chain,
// or CodeInternal when err carries no classification.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
