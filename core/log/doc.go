// File: doc.go
// Title: Log Package Documentation
// Description: Package documentation for the wordlang structured logger.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial documentation

// Package log provides structured, leveled logging for the wordlang
// engine.
//
// Log output never mixes with program output: the executor writes a
// script's print results to its own writer while the logger defaults to
// stderr. Components derive child loggers with bound context fields:
//
//	logger := wllog.GetDefault().WithField("component", "parser")
//	logger.Debug("parse complete", wllog.Fields{"statements": n})
package log
