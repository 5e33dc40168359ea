// File: nodes.go
// Title: AST Node Definitions
// Description: Defines all AST node types of the wordlang language as a
//              sum type: one struct per node kind, with a Node/Expr
//              interface pair separating value-producing expressions from
//              effect-only statements.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial AST node definitions

package ast

import (
	wlset "github.com/msto63/wordlang/lang/wordset"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// Pos returns the 1-based source line the node begins on
	Pos() int
}

// Expr represents a node that evaluates to a word set
type Expr interface {
	Node
	exprNode() // marker method
}

// Variable describes one declared variable of a program. The slice index
// within Program.Variables is the variable's slot.
type Variable struct {
	Name string // Declared name
	Line int    // Declaration line
}

// Program is the root of a compiled wordlang script
type Program struct {
	// Body holds the top-level statements
	Body *StatementBlock

	// Variables lists every declared variable in slot order. Slots are
	// dense and never reused; shadowed variables keep their slot for the
	// whole run.
	Variables []Variable
}

// SlotCount returns the number of variable slots the program needs
func (p *Program) SlotCount() int {
	return len(p.Variables)
}

// StatementBlock represents a sequence of statements, either the program
// body or a `{ }` block.
type StatementBlock struct {
	Line       int
	Statements []Node
}

// Pos returns the source line of the block
func (b *StatementBlock) Pos() int { return b.Line }

// Print represents a `print(expr, ...)` statement
type Print struct {
	Line int
	Args []Expr
}

// Pos returns the source line of the print statement
func (p *Print) Pos() int { return p.Line }

// Assign represents an assignment. Assignment is an expression: it stores
// the value of Value into Target's slot and yields the stored set, which
// is what makes `a = b = expr` work.
type Assign struct {
	Line   int
	Target *VariableRef
	Value  Expr
}

// Pos returns the source line of the assignment
func (a *Assign) Pos() int { return a.Line }

func (a *Assign) exprNode() {}

// SetOperator identifies a binary set operation
type SetOperator int

const (
	// OpUnion is the `+` operator
	OpUnion SetOperator = iota

	// OpDifference is the `-` operator
	OpDifference
)

// String returns the surface syntax of the operator
func (op SetOperator) String() string {
	switch op {
	case OpUnion:
		return "+"
	case OpDifference:
		return "-"
	default:
		return "?"
	}
}

// BinarySetOp represents `left + right` or `left - right`
type BinarySetOp struct {
	Line  int
	Op    SetOperator
	Left  Expr
	Right Expr
}

// Pos returns the source line of the operation
func (b *BinarySetOp) Pos() int { return b.Line }

func (b *BinarySetOp) exprNode() {}

// VariableRef represents a reference to a declared variable. Slot is the
// flat storage index resolved at parse time; Name is retained for
// diagnostics and debug dumps only.
type VariableRef struct {
	Line int
	Slot int
	Name string
}

// Pos returns the source line of the reference
func (v *VariableRef) Pos() int { return v.Line }

func (v *VariableRef) exprNode() {}

// Literal represents a string literal, already converted to its
// one-element word set.
type Literal struct {
	Line  int
	Words *wlset.Set
}

// Pos returns the source line of the literal
func (l *Literal) Pos() int { return l.Line }

func (l *Literal) exprNode() {}

// Load represents `load(expr)`. Names evaluates to the set of file names
// to read.
type Load struct {
	Line  int
	Names Expr
}

// Pos returns the source line of the load expression
func (l *Load) Pos() int { return l.Line }

func (l *Load) exprNode() {}

// Filter represents `source | filter(pattern)`: keep the words of the
// source that contain any pattern word as a substring.
type Filter struct {
	Line    int
	Source  Expr
	Pattern Expr
}

// Pos returns the source line of the filter
func (f *Filter) Pos() int { return f.Line }

func (f *Filter) exprNode() {}

// FilterOut represents `source | filter_out(pattern)`: keep the words of
// the source that contain no pattern word as a substring.
type FilterOut struct {
	Line    int
	Source  Expr
	Pattern Expr
}

// Pos returns the source line of the filter
func (f *FilterOut) Pos() int { return f.Line }

func (f *FilterOut) exprNode() {}
