// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the main Logger type that provides structured
//              logging with contextual fields, level filtering, and
//              pluggable output formats. Loggers are cheap to derive and
//              safe for concurrent use.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with structured logging

package log

import (
	"io"
	"os"
	"sync"
	"time"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	// Configuration
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	// Context fields that are added to all log entries
	contextFields Fields
	runID         string

	// Thread safety
	mutex sync.RWMutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a new logger with default configuration. Output goes to
// stderr so it never interleaves with script output on stdout.
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewTextFormatter(),
		output:        os.Stderr,
		contextFields: make(Fields),
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:         config.Level,
		formatter:     GetFormatter(config.Format),
		output:        config.Output,
		name:          config.Name,
		contextFields: make(Fields),
	}

	if config.Output == nil {
		logger.output = os.Stderr
	}

	return logger
}

// WithName returns a derived logger with the given name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField returns a derived logger with an additional context field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields returns a derived logger with additional context fields
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	clone.contextFields.merge(fields)
	return clone
}

// WithRunID returns a derived logger bound to an execution run ID
func (l *Logger) WithRunID(runID string) *Logger {
	clone := l.clone()
	clone.runID = runID
	return clone
}

// Trace logs a message at trace level
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs a message at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Fatal logs a message at fatal level. The logger does not exit the
// process; termination policy belongs to the caller.
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
}

// ErrorWithErr logs a message at error level together with an error value
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a message at warn level together with an error value
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// IsLevelEnabled reports whether messages at the given level are emitted
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return level >= l.level
}

// GetLevel returns the current minimum level
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.level
}

// SetLevel changes the minimum level of the logger
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.level = level
}

// SetOutput changes the output writer of the logger
func (l *Logger) SetOutput(output io.Writer) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.output = output
}

// SetFormatter changes the output formatter of the logger
func (l *Logger) SetFormatter(formatter Formatter) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.formatter = formatter
}

// log builds and emits a single entry
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !l.IsLevelEnabled(level) {
		return
	}

	entry := &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Logger:    l.name,
		RunID:     l.runID,
		Fields:    make(Fields, len(l.contextFields)),
		Error:     err,
	}

	l.mutex.RLock()
	entry.Fields.merge(l.contextFields)
	for _, f := range fields {
		entry.Fields.merge(f)
	}
	formatter := l.formatter
	output := l.output
	l.mutex.RUnlock()

	data, ferr := formatter.Format(entry)
	if ferr != nil {
		return // formatting failures must never take down the engine
	}

	l.mutex.Lock()
	_, _ = output.Write(data)
	l.mutex.Unlock()
}

// clone creates a derived logger sharing configuration but owning its own
// field map.
func (l *Logger) clone() *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	fields := make(Fields, len(l.contextFields))
	fields.merge(l.contextFields)

	return &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: fields,
		runID:         l.runID,
	}
}

// Default logger management

var (
	defaultLogger *Logger
	defaultMutex  sync.RWMutex
)

// GetDefault returns the process-wide default logger
func GetDefault() *Logger {
	defaultMutex.RLock()
	if defaultLogger != nil {
		defer defaultMutex.RUnlock()
		return defaultLogger
	}
	defaultMutex.RUnlock()

	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	if defaultLogger == nil {
		defaultLogger = New()
	}
	return defaultLogger
}

// SetDefault replaces the process-wide default logger
func SetDefault(logger *Logger) {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	defaultLogger = logger
}

// Package-level convenience functions using the default logger

// Debug logs a message at debug level using the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs a message at info level using the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs a message at warn level using the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs a message at error level using the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
