// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization in logs and exit handling. A bad script is a
//              low-severity event for the engine; a broken invariant in the
//              evaluator is not.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem with user input, such as a syntax
	// error or an undeclared variable. The engine itself is healthy.
	SeverityLow Severity = iota

	// SeverityMedium indicates a recoverable operational problem, such as
	// an unreadable configuration value with a usable default.
	SeverityMedium

	// SeverityHigh indicates a failure that aborts the current run, such as
	// an unreadable source file.
	SeverityHigh

	// SeverityCritical indicates a violated internal invariant; the engine
	// produced or consumed a malformed syntax tree. These are defects, not
	// user errors.
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Priority returns a priority value for sorting (higher = more severe)
func (s Severity) Priority() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for an
// error code when the caller does not set one explicitly.
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeIORead, CodeIOWrite, CodeSourceTooBig:
		return SeverityHigh
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityMedium
	case CodeSyntax, CodeUnexpectedEOF, CodeUndeclaredVariable,
		CodeVariableRedeclared, CodeUnsupported:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
