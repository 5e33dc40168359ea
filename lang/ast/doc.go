// File: doc.go
// Title: AST Package Documentation
// Description: Package documentation for the wordlang abstract syntax
//              tree.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial documentation

// Package ast defines the abstract syntax tree of the wordlang language.
//
// Each node kind is its own struct carrying exactly the fields that kind
// needs, so arity mistakes are impossible by construction: a Filter always
// has a source and a pattern, an Assign always has a target and a value.
// There is no "empty" node kind; statements that produce nothing (a bare
// semicolon, a plain declaration) simply contribute no node to their
// enclosing block.
//
// Variable references carry the flat slot index resolved at parse time;
// the tree is the complete compilation artifact and the evaluator never
// consults names again.
package ast
