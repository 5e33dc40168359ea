// File: scope.go
// Title: Symbol Table and Scope Resolution
// Description: Parse-time resolution of variable names to dense slot
//              indices. Scopes nest lexically; slot numbers are global
//              and append-only so the evaluator can store all variables
//              in a single flat slice.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation

package parser

import (
	"github.com/msto63/wordlang/lang/ast"

	wlerror "github.com/msto63/wordlang/core/error"
)

// SymbolTable tracks declared variables during parsing. Names live only
// here: once parsing is done, variable references carry slot indices and
// the scope stack is discarded.
type SymbolTable struct {
	variables []ast.Variable
	scopes    []map[string]int
}

// NewSymbolTable creates a table with the root scope already open.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		scopes: []map[string]int{{}},
	}
}

// PushScope opens a nested scope for a statement block.
func (st *SymbolTable) PushScope() {
	st.scopes = append(st.scopes, map[string]int{})
}

// PopScope closes the innermost scope. Declarations made inside it become
// unreachable by name, but their slots stay allocated so shadowed outer
// variables keep distinct storage.
func (st *SymbolTable) PopScope() error {
	if len(st.scopes) <= 1 {
		return wlerror.New("cannot pop the root scope").
			WithCode(wlerror.CodeInternal).
			WithOperation("PopScope")
	}
	st.scopes = st.scopes[:len(st.scopes)-1]
	return nil
}

// Depth returns the number of open scopes, root included.
func (st *SymbolTable) Depth() int {
	return len(st.scopes)
}

// Declare registers name in the innermost scope and returns its slot.
// Redeclaring a name in the same scope is an error; shadowing a name from
// an enclosing scope is not.
func (st *SymbolTable) Declare(name string, line int) (int, error) {
	current := st.scopes[len(st.scopes)-1]
	if _, exists := current[name]; exists {
		return 0, wlerror.Newf("variable '%s' is already declared in this scope", name).
			WithCode(wlerror.CodeVariableRedeclared).
			WithLine(line)
	}
	slot := len(st.variables)
	st.variables = append(st.variables, ast.Variable{Name: name, Line: line})
	current[name] = slot
	return slot, nil
}

// Lookup resolves name against the scope stack, innermost first.
func (st *SymbolTable) Lookup(name string) (int, bool) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if slot, ok := st.scopes[i][name]; ok {
			return slot, true
		}
	}
	return 0, false
}

// Variables returns the flat declaration list in slot order.
func (st *SymbolTable) Variables() []ast.Variable {
	return st.variables
}
