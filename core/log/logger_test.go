// File: logger_test.go
// Title: Logger Unit Tests
// Description: Unit tests for the structured logger covering level
//              filtering, context field inheritance, and both output
//              formats.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial test suite

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func newTestLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: buf,
		Name:   "test",
	})
	return logger, buf
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("suppressed levels leaked into output: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn message missing from output: %q", out)
	}
}

func TestLogger_TextFormat(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug, FormatText)

	logger.WithField("component", "lexer").Debug("token scan", Fields{"count": 7})

	out := buf.String()
	for _, want := range []string{"[DBG]", "test:", "token scan", "component=lexer", "count=7"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q: %q", want, out)
		}
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo, FormatJSON)

	logger.WithRunID("run-1").ErrorWithErr("load failed", errors.New("no such file"))

	var payload map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, buf.String())
	}
	if payload["level"] != "error" {
		t.Errorf("level = %v, want error", payload["level"])
	}
	if payload["runID"] != "run-1" {
		t.Errorf("runID = %v, want run-1", payload["runID"])
	}
	if payload["error"] != "no such file" {
		t.Errorf("error = %v", payload["error"])
	}
}

func TestLogger_DerivedContext(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug, FormatText)

	child := logger.WithField("component", "parser")
	child.Debug("one")

	// The parent must not inherit the child's field.
	logger.Debug("two")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "component=parser") {
		t.Errorf("child line missing bound field: %q", lines[0])
	}
	if strings.Contains(lines[1], "component=parser") {
		t.Errorf("parent line leaked child field: %q", lines[1])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"WARN", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"", LevelInfo, false},
		{"shout", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
