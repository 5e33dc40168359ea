// File: lang.go
// Title: Engine Facade
// Description: Couples the parser and executor into a single engine with
//              source size limits, per-run IDs for log correlation, and
//              convenience entry points for running source text or files.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation

package lang

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/msto63/wordlang/lang/ast"
	"github.com/msto63/wordlang/lang/executor"
	"github.com/msto63/wordlang/lang/parser"

	wlerror "github.com/msto63/wordlang/core/error"
	wllog "github.com/msto63/wordlang/core/log"
	"github.com/msto63/wordlang/utils/filex"
)

// DefaultMaxSourceSize bounds script size unless Options overrides it.
const DefaultMaxSourceSize = 1 << 20 // 1 MiB

// Options configures an Engine.
type Options struct {
	// Logger receives engine, parser, and executor output. When nil the
	// default logger is used.
	Logger *wllog.Logger

	// Output receives print statement output. Defaults to os.Stdout.
	Output io.Writer

	// WarnMissingFiles logs a warning when load skips an unreadable
	// word list file.
	WarnMissingFiles bool

	// MaxSourceSize caps script size in bytes. Zero means
	// DefaultMaxSourceSize; negative disables the check.
	MaxSourceSize int64
}

// Engine compiles and runs wordlang programs.
type Engine struct {
	opts   Options
	logger *wllog.Logger
}

// New creates an Engine with the given options.
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = wllog.GetDefault()
	}
	return &Engine{
		opts:   opts,
		logger: logger.WithName("lang"),
	}
}

// maxSourceSize resolves the configured size cap.
func (e *Engine) maxSourceSize() int64 {
	if e.opts.MaxSourceSize == 0 {
		return DefaultMaxSourceSize
	}
	return e.opts.MaxSourceSize
}

// checkSize rejects oversized scripts before tokenizing them.
func (e *Engine) checkSize(size int64) error {
	max := e.maxSourceSize()
	if max > 0 && size > max {
		return wlerror.Newf("source size %d exceeds limit of %d bytes", size, max).
			WithCode(wlerror.CodeSourceTooBig)
	}
	return nil
}

// Compile parses source into a runnable program.
func (e *Engine) Compile(source string) (*ast.Program, error) {
	if err := e.checkSize(int64(len(source))); err != nil {
		return nil, err
	}
	return parser.New(parser.Options{Logger: e.logger}).Parse(source)
}

// Execute runs a compiled program.
func (e *Engine) Execute(ctx context.Context, program *ast.Program) error {
	exec := executor.New(executor.Options{
		Logger:           e.logger,
		Output:           e.opts.Output,
		WarnMissingFiles: e.opts.WarnMissingFiles,
	})
	return exec.Execute(ctx, program)
}

// Run compiles and executes source under a fresh run ID.
func (e *Engine) Run(ctx context.Context, source string) error {
	if err := e.checkSize(int64(len(source))); err != nil {
		return err
	}

	runID := uuid.New().String()
	logger := e.logger.WithRunID(runID)
	logger.Debug("run starting", wllog.Int("source_bytes", len(source)))

	program, err := parser.New(parser.Options{Logger: logger}).Parse(source)
	if err != nil {
		logger.Debug("run failed during parse")
		return err
	}

	exec := executor.New(executor.Options{
		Logger:           logger,
		Output:           e.opts.Output,
		WarnMissingFiles: e.opts.WarnMissingFiles,
	})
	if err := exec.Execute(ctx, program); err != nil {
		logger.Debug("run failed during execution")
		return err
	}
	logger.Debug("run complete")
	return nil
}

// RunFile reads a script file and runs it. The size limit is checked
// against the file before reading it into memory.
func (e *Engine) RunFile(ctx context.Context, path string) error {
	size, err := filex.Size(path)
	if err != nil {
		return wlerror.Wrap(err, "cannot stat script file").
			WithCode(wlerror.CodeIORead).
			WithDetail("file", path)
	}
	if err := e.checkSize(size); err != nil {
		return err
	}

	source, err := filex.ReadString(path)
	if err != nil {
		return wlerror.Wrap(err, "cannot read script file").
			WithCode(wlerror.CodeIORead).
			WithDetail("file", path)
	}
	return e.Run(ctx, source)
}
