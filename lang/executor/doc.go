// File: doc.go
// Title: Executor Package Documentation
// Description: Package documentation for the wordlang tree-walking
//              evaluator.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial documentation

// Package executor evaluates a compiled wordlang program.
//
// The executor walks the AST directly. Variable storage is a flat slice
// of word sets sized from the program's slot count; the parser has
// already resolved every name to a slot, so execution never touches a
// scope structure. Statements are executed in order, expressions
// evaluate to word sets, and print output goes to a configurable writer.
//
// Cancellation is checked at statement boundaries via context.Context.
// Runtime failures (unreadable word list files aside, which are skipped)
// surface as *wlerror.Error values rather than terminating the process.
package executor
