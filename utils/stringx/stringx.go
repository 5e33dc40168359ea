// File: stringx.go
// Title: Extended String Utilities
// Description: Provides string helper functions used across the wordlang
//              engine, such as blank checks and safe truncation for log
//              output.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty checks if a string has zero length
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank checks if a string is empty or consists only of whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotBlank checks if a string contains at least one non-whitespace rune
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// DefaultIfBlank returns the fallback when s is blank, otherwise s
func DefaultIfBlank(s, fallback string) string {
	if IsBlank(s) {
		return fallback
	}
	return s
}

// Truncate shortens s to at most max runes, appending an ellipsis when
// something was cut. Used to keep source snippets in log output bounded.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	runes := []rune(s)
	return string(runes[:max]) + "..."
}

// IsIdentifier reports whether s is a valid wordlang identifier: a letter
// or underscore followed by letters, digits, or underscores.
func IsIdentifier(s string) bool {
	if IsEmpty(s) {
		return false
	}

	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
