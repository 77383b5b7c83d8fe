// Package errs provides the coded domain errors returned by the rules engine.
//
// Every error carries a Code; errors.Is matches on Code, so call sites may wrap
// a sentinel with extra context and still be recognised by the caller.
package errs

import "fmt"

// Code is a machine-readable error code.
type Code string

const (
	// CodeInvalidAction is returned when an intent is not legal in the current turn or state.
	CodeInvalidAction Code = "INVALID_ACTION"
	// CodeInsufficientResource is returned when a cost (MP or gold) exceeds what is available.
	CodeInsufficientResource Code = "INSUFFICIENT_RESOURCE"
	// CodeNotFound is returned when an identifier does not resolve against the reference tables.
	CodeNotFound Code = "NOT_FOUND"
	// CodeSkillNotUnlocked is returned when the caster's level is below the skill's required level.
	CodeSkillNotUnlocked Code = "SKILL_NOT_UNLOCKED"
)

// Sentinels for errors.Is comparisons.
var (
	ErrInvalidAction        = New(CodeInvalidAction, "invalid action")
	ErrInsufficientResource = New(CodeInsufficientResource, "insufficient resource")
	ErrNotFound             = New(CodeNotFound, "not found")
	ErrSkillNotUnlocked     = New(CodeSkillNotUnlocked, "skill not unlocked")
)

// Error is a domain error with structured metadata.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]string
	Cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
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

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithMetadata creates a domain error carrying metadata for the caller to render.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{Code: code, Message: message, Metadata: metadata}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// NotFound returns a CodeNotFound error naming the kind and id that failed to resolve.
//
// Postcondition: errors.Is(result, ErrNotFound) is true.
func NotFound(kind, id string) *Error {
	return WithMetadata(CodeNotFound, fmt.Sprintf("%s %q not found", kind, id),
		map[string]string{"kind": kind, "id": id})
}

// CodeOf returns the Code of err if it is (or wraps) an *Error, or "" otherwise.
func CodeOf(err error) Code {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
