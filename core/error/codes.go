// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the wordlang engine. Codes separate
//              user-facing language diagnostics from configuration, I/O,
//              and internal engine failures.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the wordlang engine
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Language diagnostics (user input errors)
	CodeSyntax             Code = "SYNTAX"
	CodeUnexpectedEOF      Code = "UNEXPECTED_EOF"
	CodeUndeclaredVariable Code = "UNDECLARED_VARIABLE"
	CodeVariableRedeclared Code = "VARIABLE_REDECLARED"
	CodeUnsupported        Code = "UNSUPPORTED"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Input and output
	CodeIORead       Code = "IO_READ"
	CodeIOWrite      Code = "IO_WRITE"
	CodeSourceTooBig Code = "SOURCE_TOO_BIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeSyntax, CodeUnexpectedEOF, CodeUndeclaredVariable,
		CodeVariableRedeclared, CodeUnsupported,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeIORead, CodeIOWrite, CodeSourceTooBig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntax, CodeUnexpectedEOF, CodeUndeclaredVariable,
		CodeVariableRedeclared, CodeUnsupported:
		return "diagnostic"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeIORead, CodeIOWrite, CodeSourceTooBig:
		return "io"
	case CodeInternal:
		return "internal"
	default:
		return "generic"
	}
}

// IsDiagnostic reports whether the code describes a problem with the user's
// source program rather than a failure of the engine itself.
func (c Code) IsDiagnostic() bool {
	return c.Category() == "diagnostic"
}
