// File: doc.go
// Title: Error Package Documentation
// Description: Package documentation for the wordlang structured error
//              system.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial documentation

// Package error provides structured errors for the wordlang engine.
//
// Every error carries a classification code, a severity, and optional
// context such as the source line that produced it and the operation that
// failed. Compiler diagnostics (bad input) and internal invariant
// violations (engine bugs) share the same type but are distinguished by
// code and severity, so the CLI can render the former as user-facing
// messages and treat the latter as defects.
//
// The package name intentionally shadows the builtin; import it with an
// alias:
//
//	wlerror "github.com/msto63/wordlang/core/error"
//
//	err := wlerror.New("expected ';'").
//		WithCode(wlerror.CodeSyntax).
//		WithLine(12)
package error
