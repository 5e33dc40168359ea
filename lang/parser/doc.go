// File: doc.go
// Title: Parser Package Documentation
// Description: Package documentation for the wordlang lexical analyzer
//              and recursive-descent parser.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial documentation

// Package parser turns wordlang source text into an abstract syntax tree.
//
// Lexical analysis is table driven: a deterministic finite automaton,
// built once at package initialization, recognizes comments, whitespace,
// string literals, identifiers, and the keyword set with maximal-munch
// matching. Any byte the automaton cannot start a token with becomes a
// single-character token tagged with its own byte value, so the scanner
// always makes progress.
//
// Parsing is recursive descent with one method per grammar production.
// Lexical scope is resolved entirely at parse time: the symbol table maps
// names to dense slot indices and variable references in the tree carry
// only slots, never names. The scope stack does not survive parsing.
package parser
