// Package errors provides structured error types for repocards.
//
// Fetch outcomes fall into three terminal categories:
//   - TRANSPORT_ERROR: non-OK status, network failure or undecodable body
//   - RATE_LIMITED: the API quota is exhausted (informational, not fatal)
//   - EMPTY_RESULT: the account has no public repositories (informational)
//
// None of them is retried. Surfaces turn them into a single line of text via
// [UserMessage] and never show codes to the user.
//
// # Usage
//
//	err := errors.Transport(404, "Not Found")
//	if errors.Is(err, errors.ErrCodeTransport) {
//	    // show the error region
//	}
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	ErrCodeTransport    Code = "TRANSPORT_ERROR"
	ErrCodeRateLimited  Code = "RATE_LIMITED"
	ErrCodeEmptyResult  Code = "EMPTY_RESULT"
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
)

// ErrEmptyResult is returned when a fetch succeeds with zero repositories.
var ErrEmptyResult = New(ErrCodeEmptyResult, "No public repositories found.")

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Status  int    // HTTP status code, 0 when not applicable
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Transport creates a TRANSPORT_ERROR for a non-OK HTTP status.
// When detail is non-empty it is appended to the message.
func Transport(status int, detail string) *Error {
	msg := fmt.Sprintf("GitHub API error: %d", status)
	if detail != "" {
		msg += " - " + detail
	}
	return &Error{Code: ErrCodeTransport, Message: msg, Status: status}
}

// TransportCause creates a TRANSPORT_ERROR for a network or decoding failure.
// The message carries the underlying description.
func TransportCause(cause error) *Error {
	return &Error{Code: ErrCodeTransport, Message: cause.Error(), Cause: cause}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
// A *RateLimitedError matches ErrCodeRateLimited.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error carries no code.
func GetCode(err error) Code {
	var rl *RateLimitedError
	if errors.As(err, &rl) {
		return ErrCodeRateLimited
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var rl *RateLimitedError
	if errors.As(err, &rl) {
		return rl.Message(time.Local)
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// RateLimitedError reports an exhausted API quota.
type RateLimitedError struct {
	ResetAt *time.Time // When the quota resets, nil if the API did not say
}

// Error implements the error interface.
func (e *RateLimitedError) Error() string {
	if e.ResetAt != nil {
		return fmt.Sprintf("rate limited: resets at %s", e.ResetAt.UTC().Format(time.RFC3339))
	}
	return "rate limited"
}

// Code returns the error code for this error type.
func (e *RateLimitedError) Code() Code {
	return ErrCodeRateLimited
}

// Message renders the user-facing notice with the reset time in loc.
func (e *RateLimitedError) Message(loc *time.Location) string {
	const base = "GitHub API rate limit exceeded. Try again later"
	if e.ResetAt == nil {
		return base + "."
	}
	return base + "; resets at " + e.ResetAt.In(loc).Format("15:04:05") + "."
}
