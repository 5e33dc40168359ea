// File: scope_test.go
// Title: Symbol Table Tests
// Description: Tests for scope nesting, shadowing, slot assignment, and
//              redeclaration detection.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial tests

package parser

import (
	"testing"

	wlerror "github.com/msto63/wordlang/core/error"
)

func TestSymbolTableDeclareAndLookup(t *testing.T) {
	st := NewSymbolTable()

	slotA, err := st.Declare("a", 1)
	if err != nil {
		t.Fatalf("Declare(a) error: %v", err)
	}
	slotB, err := st.Declare("b", 2)
	if err != nil {
		t.Fatalf("Declare(b) error: %v", err)
	}
	if slotA != 0 || slotB != 1 {
		t.Errorf("slots = %d, %d, want 0, 1", slotA, slotB)
	}

	if slot, ok := st.Lookup("a"); !ok || slot != slotA {
		t.Errorf("Lookup(a) = %d, %v, want %d, true", slot, ok, slotA)
	}
	if _, ok := st.Lookup("missing"); ok {
		t.Error("Lookup(missing) found a slot")
	}
}

func TestSymbolTableRedeclaration(t *testing.T) {
	st := NewSymbolTable()
	if _, err := st.Declare("x", 1); err != nil {
		t.Fatalf("Declare error: %v", err)
	}

	_, err := st.Declare("x", 3)
	if err == nil {
		t.Fatal("redeclaring in the same scope should fail")
	}
	if !wlerror.HasCode(err, wlerror.CodeVariableRedeclared) {
		t.Errorf("error code = %v, want CodeVariableRedeclared", wlerror.GetCode(err))
	}
	if wlerror.GetLine(err) != 3 {
		t.Errorf("error line = %d, want 3", wlerror.GetLine(err))
	}
}

func TestSymbolTableShadowing(t *testing.T) {
	st := NewSymbolTable()
	outer, _ := st.Declare("x", 1)

	st.PushScope()
	inner, err := st.Declare("x", 2)
	if err != nil {
		t.Fatalf("shadowing in a nested scope should be allowed: %v", err)
	}
	if inner == outer {
		t.Fatal("shadowing variable reused the outer slot")
	}
	if slot, _ := st.Lookup("x"); slot != inner {
		t.Errorf("Lookup inside block = %d, want inner slot %d", slot, inner)
	}

	if err := st.PopScope(); err != nil {
		t.Fatalf("PopScope error: %v", err)
	}
	if slot, _ := st.Lookup("x"); slot != outer {
		t.Errorf("Lookup after block = %d, want outer slot %d", slot, outer)
	}

	// slots stay allocated after the scope closes
	if len(st.Variables()) != 2 {
		t.Errorf("Variables() len = %d, want 2", len(st.Variables()))
	}
}

func TestSymbolTableOuterScopeVisible(t *testing.T) {
	st := NewSymbolTable()
	slot, _ := st.Declare("words", 1)

	st.PushScope()
	st.PushScope()
	if got, ok := st.Lookup("words"); !ok || got != slot {
		t.Errorf("Lookup from depth %d = %d, %v, want %d, true", st.Depth(), got, ok, slot)
	}
}

func TestSymbolTablePopRootScope(t *testing.T) {
	st := NewSymbolTable()
	err := st.PopScope()
	if err == nil {
		t.Fatal("popping the root scope should fail")
	}
	if !wlerror.HasCode(err, wlerror.CodeInternal) {
		t.Errorf("error code = %v, want CodeInternal", wlerror.GetCode(err))
	}
}

func TestSymbolTableSlotOrder(t *testing.T) {
	st := NewSymbolTable()
	st.Declare("a", 1)
	st.PushScope()
	st.Declare("b", 2)
	st.PopScope()
	st.Declare("c", 4)

	vars := st.Variables()
	wantNames := []string{"a", "b", "c"}
	wantLines := []int{1, 2, 4}
	if len(vars) != len(wantNames) {
		t.Fatalf("Variables() len = %d, want %d", len(vars), len(wantNames))
	}
	for i := range vars {
		if vars[i].Name != wantNames[i] || vars[i].Line != wantLines[i] {
			t.Errorf("slot %d = %s (line %d), want %s (line %d)",
				i, vars[i].Name, vars[i].Line, wantNames[i], wantLines[i])
		}
	}
}
