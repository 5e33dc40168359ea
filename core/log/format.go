// File: format.go
// Title: Log Output Formatters
// Description: Implements the output formatters for log entries. Text is
//              the default for interactive use; JSON is available for
//              machine consumption.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with text and JSON formatters

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Format identifies a log output format
type Format int

const (
	// FormatText renders human-readable single-line entries (default)
	FormatText Format = iota

	// FormatJSON renders one JSON object per entry
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat converts a format name into a Format value
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format: %q", name)
	}
}

// Formatter converts a log entry into its serialized representation
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for the given format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	default:
		return NewTextFormatter()
	}
}

// TextFormatter renders entries as single human-readable lines
type TextFormatter struct {
	// TimestampLayout controls timestamp rendering; defaults to RFC3339
	TimestampLayout string
}

// NewTextFormatter creates a text formatter with default settings
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampLayout: "2006-01-02T15:04:05.000Z07:00"}
}

// Format implements the Formatter interface
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Timestamp.Format(f.TimestampLayout))
	b.WriteString(" [")
	b.WriteString(entry.Level.ShortString())
	b.WriteString("]")

	if entry.Logger != "" {
		b.WriteString(" ")
		b.WriteString(entry.Logger)
		b.WriteString(":")
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	if entry.RunID != "" {
		fmt.Fprintf(&b, " run=%s", entry.RunID)
	}

	// Deterministic field order.
	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
	}

	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%q", entry.Error.Error())
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}

// JSONFormatter renders entries as one JSON object per line
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format implements the Formatter interface
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	payload := map[string]interface{}{
		"timestamp": entry.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"),
		"level":     entry.Level.String(),
		"message":   entry.Message,
	}

	if entry.Logger != "" {
		payload["logger"] = entry.Logger
	}
	if entry.RunID != "" {
		payload["runID"] = entry.RunID
	}
	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			payload[k] = err.Error()
			continue
		}
		payload[k] = v
	}
	if entry.Error != nil {
		payload["error"] = entry.Error.Error()
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling log entry: %w", err)
	}

	return append(data, '\n'), nil
}
