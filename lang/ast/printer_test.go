// File: printer_test.go
// Title: Tree Dump Tests
// Description: Tests for the syntax tree debug printer.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial tests

package ast

import (
	"bytes"
	"strings"
	"testing"

	wlset "github.com/msto63/wordlang/lang/wordset"
)

// sample builds the tree for: List x = "cat" + "dog"; print(x | filter("c"));
func sample() *Program {
	xDecl := &VariableRef{Line: 1, Slot: 0, Name: "x"}
	return &Program{
		Body: &StatementBlock{
			Line: 1,
			Statements: []Node{
				&Assign{
					Line:   1,
					Target: xDecl,
					Value: &BinarySetOp{
						Line:  1,
						Op:    OpUnion,
						Left:  &Literal{Line: 1, Words: wlset.New("cat")},
						Right: &Literal{Line: 1, Words: wlset.New("dog")},
					},
				},
				&Print{
					Line: 2,
					Args: []Expr{
						&Filter{
							Line:    2,
							Source:  &VariableRef{Line: 2, Slot: 0, Name: "x"},
							Pattern: &Literal{Line: 2, Words: wlset.New("c")},
						},
					},
				},
			},
		},
		Variables: []Variable{{Name: "x", Line: 1}},
	}
}

func TestDumpTree(t *testing.T) {
	var out bytes.Buffer
	if err := DumpTree(&out, sample(), DumpOptions{}); err != nil {
		t.Fatalf("DumpTree error: %v", err)
	}

	want := []string{
		"STATEMENT_BLOCK",
		"  ASSIGN",
		"    VARIABLE x (slot 0)",
		"    SET_OP '+'",
		"      LITERAL {cat}",
		"      LITERAL {dog}",
		"  PRINT",
		"    FILTER",
		"      VARIABLE x (slot 0)",
		"      LITERAL {c}",
	}
	got := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("DumpTree produced %d lines, want %d:\n%s", len(got), len(want), out.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDumpTreeCustomIndentAndDecoration(t *testing.T) {
	var out bytes.Buffer
	opts := DumpOptions{
		Indent:       "\t",
		DecorateKind: func(kind string) string { return "<" + kind + ">" },
	}
	if err := DumpTree(&out, sample(), opts); err != nil {
		t.Fatalf("DumpTree error: %v", err)
	}

	lines := strings.Split(out.String(), "\n")
	if !strings.HasPrefix(lines[0], "<STATEMENT_BLOCK>") {
		t.Errorf("first line = %q, want decorated block label", lines[0])
	}
	if !strings.HasPrefix(lines[1], "\t<ASSIGN>") {
		t.Errorf("second line = %q, want tab-indented assign", lines[1])
	}
}
