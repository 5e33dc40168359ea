// File: printer.go
// Title: AST Debug Printer
// Description: Renders a compiled program as an indented tree for
//              inspection. This is a pure diagnostic surface used by the
//              `wordlang ast` command; the executor never touches it.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial tree printer

package ast

import (
	"fmt"
	"io"
	"strings"
)

// DumpOptions configures tree rendering
type DumpOptions struct {
	// Indent is the per-level indentation (default two spaces)
	Indent string

	// DecorateKind post-processes each node kind label, e.g. to apply
	// terminal styling. Nil means plain text.
	DecorateKind func(kind string) string
}

// DumpTree writes an indented representation of the program to w
func DumpTree(w io.Writer, program *Program, opts DumpOptions) error {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	if opts.DecorateKind == nil {
		opts.DecorateKind = func(kind string) string { return kind }
	}

	d := &dumper{w: w, opts: opts, program: program}
	return d.node(program.Body, 0)
}

type dumper struct {
	w       io.Writer
	opts    DumpOptions
	program *Program
}

func (d *dumper) line(depth int, kind, detail string) error {
	label := d.opts.DecorateKind(kind)
	if detail != "" {
		label += " " + detail
	}
	_, err := fmt.Fprintf(d.w, "%s%s\n", strings.Repeat(d.opts.Indent, depth), label)
	return err
}

func (d *dumper) node(n Node, depth int) error {
	switch n := n.(type) {
	case *StatementBlock:
		if err := d.line(depth, "STATEMENT_BLOCK", ""); err != nil {
			return err
		}
		for _, stmt := range n.Statements {
			if err := d.node(stmt, depth+1); err != nil {
				return err
			}
		}
		return nil

	case *Print:
		if err := d.line(depth, "PRINT", ""); err != nil {
			return err
		}
		for _, arg := range n.Args {
			if err := d.node(arg, depth+1); err != nil {
				return err
			}
		}
		return nil

	case *Assign:
		if err := d.line(depth, "ASSIGN", ""); err != nil {
			return err
		}
		if err := d.node(n.Target, depth+1); err != nil {
			return err
		}
		return d.node(n.Value, depth+1)

	case *BinarySetOp:
		if err := d.line(depth, "SET_OP", fmt.Sprintf("'%s'", n.Op)); err != nil {
			return err
		}
		if err := d.node(n.Left, depth+1); err != nil {
			return err
		}
		return d.node(n.Right, depth+1)

	case *VariableRef:
		return d.line(depth, "VARIABLE", fmt.Sprintf("%s (slot %d)", n.Name, n.Slot))

	case *Literal:
		return d.line(depth, "LITERAL", n.Words.String())

	case *Load:
		if err := d.line(depth, "LOAD", ""); err != nil {
			return err
		}
		return d.node(n.Names, depth+1)

	case *Filter:
		if err := d.line(depth, "FILTER", ""); err != nil {
			return err
		}
		if err := d.node(n.Source, depth+1); err != nil {
			return err
		}
		return d.node(n.Pattern, depth+1)

	case *FilterOut:
		if err := d.line(depth, "FILTER_OUT", ""); err != nil {
			return err
		}
		if err := d.node(n.Source, depth+1); err != nil {
			return err
		}
		return d.node(n.Pattern, depth+1)

	default:
		return fmt.Errorf("unknown node type %T", n)
	}
}
