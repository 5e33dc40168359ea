// File: stringx_test.go
// Title: String Utilities Unit Tests
// Description: Unit tests for the extended string utility functions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial test suite

package stringx

import "testing"

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"x", false},
		{"  x  ", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDefaultIfBlank(t *testing.T) {
	if got := DefaultIfBlank("", "fallback"); got != "fallback" {
		t.Errorf("DefaultIfBlank = %q, want fallback", got)
	}
	if got := DefaultIfBlank("value", "fallback"); got != "value" {
		t.Errorf("DefaultIfBlank = %q, want value", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated", 5, "trunc..."},
		{"abc", 0, ""},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"abc", true},
		{"_private", true},
		{"with_digits9", true},
		{"", false},
		{"9starts_with_digit", false},
		{"has-dash", false},
		{"has space", false},
	}

	for _, tt := range tests {
		if got := IsIdentifier(tt.input); got != tt.want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
