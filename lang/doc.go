// File: doc.go
// Title: Lang Package Documentation
// Description: Package documentation for the wordlang engine facade.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial documentation

// Package lang is the embedding surface of wordlang. It bundles the
// parser and executor behind an Engine that compiles source to a program
// and runs it, tagging each run with a unique ID for log correlation.
//
// Typical use:
//
//	engine := lang.New(lang.Options{})
//	if err := engine.Run(ctx, source); err != nil {
//		fmt.Fprintln(os.Stderr, wlerror.Diagnostic(err))
//	}
package lang
