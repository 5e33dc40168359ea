// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with code, severity, source
//              line, and metadata. Maintains compatibility with Go's
//              standard error interface and errors.Is/As chains while
//              giving the CLI enough structure to render line-tagged
//              diagnostics.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with contextual errors

package error

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Error represents a structured error with code, severity, and metadata
type Error struct {
	// Core error information
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	// Context and metadata
	line      int // 1-based source line; 0 when not tied to a source position
	operation string
	details   map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context. Wrapping nil
// returns nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := New(message)
	wrapped.cause = err

	// Inherit classification from a wrapped structured error.
	var inner *Error
	if errors.As(err, &inner) {
		wrapped.code = inner.code
		wrapped.severity = inner.severity
		wrapped.line = inner.line
	}

	return wrapped
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code and derives a default severity from it
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	e.severity = GetSeverityFromCode(code)
	return e
}

// WithSeverity overrides the severity of the error
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithLine attaches the 1-based source line the error refers to
func (e *Error) WithLine(line int) *Error {
	e.line = line
	return e
}

// WithOperation records the operation that produced the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail attaches a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	e.details[key] = value
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Line returns the source line of the error, or 0 if none is attached
func (e *Error) Line() int {
	return e.line
}

// Operation returns the operation that produced the error
func (e *Error) Operation() string {
	return e.operation
}

// Details returns the attached details; the returned map is a copy
func (e *Error) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

// Timestamp returns the creation time of the error
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// String returns a verbose representation for logs
func (e *Error) String() string {
	var b strings.Builder
	b.WriteString(string(e.code))
	if e.line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.line)
	}
	b.WriteString(": ")
	b.WriteString(e.Error())
	if e.operation != "" {
		fmt.Fprintf(&b, " [op=%s]", e.operation)
	}
	return b.String()
}

// HasCode checks whether err or any error in its chain carries the code
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode extracts the error code from err, or CodeUnknown for foreign
// errors.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

// GetSeverity extracts the severity from err, or SeverityMedium for
// foreign errors.
func GetSeverity(err error) Severity {
	var e *Error
	if errors.As(err, &e) {
		return e.severity
	}
	return SeverityMedium
}

// GetLine extracts the source line from err, or 0 when the error is not
// tied to a source position.
func GetLine(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.line
	}
	return 0
}

// IsDiagnostic reports whether err describes a problem with the user's
// program (as opposed to an engine or environment failure).
func IsDiagnostic(err error) bool {
	return GetCode(err).IsDiagnostic()
}

// Diagnostic renders err in the canonical diagnostic format of the
// language: "ERROR (line <n>): <message>". Errors without a line render
// as "ERROR: <message>".
func Diagnostic(err error) string {
	var e *Error
	if errors.As(err, &e) && e.line > 0 {
		return fmt.Sprintf("ERROR (line %d): %s", e.line, e.Error())
	}
	return "ERROR: " + err.Error()
}
