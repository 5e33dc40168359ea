// File: executor.go
// Title: Tree-Walking Evaluator
// Description: Executes a compiled wordlang program over flat variable
//              slots. One eval case per expression kind; statements run
//              in order with cancellation checks between them.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation

package executor

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/msto63/wordlang/lang/ast"
	wlset "github.com/msto63/wordlang/lang/wordset"

	wlerror "github.com/msto63/wordlang/core/error"
	wllog "github.com/msto63/wordlang/core/log"
)

// Options configures an Executor.
type Options struct {
	// Logger receives debug output. When nil the default logger is used.
	Logger *wllog.Logger

	// Output receives print statement output. Defaults to os.Stdout.
	Output io.Writer

	// WarnMissingFiles logs a warning for word list files that load
	// skips. Skipped files are never an error either way.
	WarnMissingFiles bool
}

// Executor runs compiled programs. It is reusable but not safe for
// concurrent use: each Execute call owns the slot slice for its duration.
type Executor struct {
	slots  []*wlset.Set
	out    io.Writer
	logger *wllog.Logger
	loader *Loader
}

// New creates an Executor with the given options.
func New(opts Options) *Executor {
	logger := opts.Logger
	if logger == nil {
		logger = wllog.GetDefault()
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	return &Executor{
		out:    out,
		logger: logger.WithName("executor"),
		loader: NewLoader(logger, opts.WarnMissingFiles),
	}
}

// Execute runs program to completion. All variable slots start as empty
// sets. The context is checked between statements, so a cancelled run
// stops at the next statement boundary.
func (e *Executor) Execute(ctx context.Context, program *ast.Program) error {
	if program == nil || program.Body == nil {
		return wlerror.New("cannot execute a nil program").
			WithCode(wlerror.CodeInternal).
			WithOperation("Execute")
	}

	e.slots = make([]*wlset.Set, program.SlotCount())
	for i := range e.slots {
		e.slots[i] = wlset.New()
	}
	e.logger.Debug("executing program",
		wllog.Int("statements", len(program.Body.Statements)),
		wllog.Int("slots", program.SlotCount()))

	return e.execBlock(ctx, program.Body)
}

// execBlock runs the statements of a block in order.
func (e *Executor) execBlock(ctx context.Context, block *ast.StatementBlock) error {
	for _, stmt := range block.Statements {
		if err := ctx.Err(); err != nil {
			return wlerror.Wrap(err, "execution cancelled").
				WithLine(stmt.Pos())
		}
		if err := e.execStatement(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// execStatement runs a single statement.
func (e *Executor) execStatement(ctx context.Context, stmt ast.Node) error {
	switch node := stmt.(type) {
	case *ast.StatementBlock:
		return e.execBlock(ctx, node)

	case *ast.Print:
		return e.execPrint(ctx, node)

	case ast.Expr:
		// expression statement: evaluate for its side effects
		_, err := e.eval(ctx, node)
		return err

	default:
		return wlerror.Newf("unexpected statement node %T", stmt).
			WithCode(wlerror.CodeInternal).
			WithLine(stmt.Pos())
	}
}

// execPrint writes one bracketed line per argument.
func (e *Executor) execPrint(ctx context.Context, node *ast.Print) error {
	for _, arg := range node.Args {
		words, err := e.eval(ctx, arg)
		if err != nil {
			return err
		}
		if err := writeWords(e.out, words); err != nil {
			return wlerror.Wrap(err, "writing print output").
				WithCode(wlerror.CodeIOWrite).
				WithLine(node.Line)
		}
	}
	return nil
}

// writeWords renders a word set in print format: an opening bracket, a
// comma before every word, then a space and the closing bracket.
func writeWords(w io.Writer, words *wlset.Set) error {
	if _, err := fmt.Fprint(w, "["); err != nil {
		return err
	}
	for _, word := range words.Words() {
		if _, err := fmt.Fprintf(w, ",%s", word); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, " ]")
	return err
}

// eval computes the word set value of an expression.
func (e *Executor) eval(ctx context.Context, expr ast.Expr) (*wlset.Set, error) {
	switch node := expr.(type) {
	case *ast.Literal:
		return node.Words, nil

	case *ast.VariableRef:
		if node.Slot < 0 || node.Slot >= len(e.slots) {
			return nil, wlerror.Newf("variable '%s' resolves to slot %d of %d",
				node.Name, node.Slot, len(e.slots)).
				WithCode(wlerror.CodeInternal).
				WithLine(node.Line)
		}
		return e.slots[node.Slot], nil

	case *ast.Assign:
		value, err := e.eval(ctx, node.Value)
		if err != nil {
			return nil, err
		}
		if node.Target.Slot < 0 || node.Target.Slot >= len(e.slots) {
			return nil, wlerror.Newf("assignment target '%s' resolves to slot %d of %d",
				node.Target.Name, node.Target.Slot, len(e.slots)).
				WithCode(wlerror.CodeInternal).
				WithLine(node.Line)
		}
		// store a copy so later mutations of the source never alias
		e.slots[node.Target.Slot] = value.Clone()
		return e.slots[node.Target.Slot], nil

	case *ast.BinarySetOp:
		left, err := e.eval(ctx, node.Left)
		if err != nil {
			return nil, err
		}
		right, err := e.eval(ctx, node.Right)
		if err != nil {
			return nil, err
		}
		switch node.Op {
		case ast.OpUnion:
			return wlset.Union(left, right), nil
		case ast.OpDifference:
			return wlset.Difference(left, right), nil
		default:
			return nil, wlerror.Newf("unknown set operator %d", int(node.Op)).
				WithCode(wlerror.CodeInternal).
				WithLine(node.Line)
		}

	case *ast.Filter:
		return e.evalFilter(ctx, node.Source, node.Pattern, false)

	case *ast.FilterOut:
		return e.evalFilter(ctx, node.Source, node.Pattern, true)

	case *ast.Load:
		names, err := e.eval(ctx, node.Names)
		if err != nil {
			return nil, err
		}
		return e.loader.Load(names.Words()), nil

	default:
		return nil, wlerror.Newf("unexpected expression node %T", expr).
			WithCode(wlerror.CodeInternal).
			WithLine(expr.Pos())
	}
}

// evalFilter keeps the source words that match (or, for filter_out, do
// not match) any pattern word as a substring. An empty pattern set
// matches nothing, so filter yields the empty set and filter_out yields
// the source unchanged.
func (e *Executor) evalFilter(ctx context.Context, source, pattern ast.Expr, invert bool) (*wlset.Set, error) {
	words, err := e.eval(ctx, source)
	if err != nil {
		return nil, err
	}
	patterns, err := e.eval(ctx, pattern)
	if err != nil {
		return nil, err
	}

	result := wlset.New()
	for _, word := range words.Words() {
		if patterns.MatchesAny(word) != invert {
			result.Add(word)
		}
	}
	return result, nil
}
