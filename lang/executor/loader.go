// File: loader.go
// Title: Word List Loader
// Description: Reads whitespace-separated word files for the load
//              expression. Unreadable files are skipped; the result is
//              the union of all words found.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation

package executor

import (
	wlset "github.com/msto63/wordlang/lang/wordset"

	wllog "github.com/msto63/wordlang/core/log"
	"github.com/msto63/wordlang/utils/filex"
)

// Loader reads word list files for load expressions.
type Loader struct {
	logger      *wllog.Logger
	warnMissing bool
}

// NewLoader creates a Loader. When warnMissing is set, skipped files are
// reported on the log; either way they never fail the program.
func NewLoader(logger *wllog.Logger, warnMissing bool) *Loader {
	return &Loader{
		logger:      logger.WithName("loader"),
		warnMissing: warnMissing,
	}
}

// Load reads every named file and returns the union of their words.
// Words are split on whitespace. Files that cannot be read contribute
// nothing.
func (l *Loader) Load(names []string) *wlset.Set {
	result := wlset.New()
	for _, name := range names {
		words, err := filex.ReadWords(name)
		if err != nil {
			if l.warnMissing {
				l.logger.WarnWithErr("skipping unreadable word list", err,
					wllog.String("file", name))
			}
			continue
		}
		for _, word := range words {
			result.Add(word)
		}
		l.logger.Debug("loaded word list",
			wllog.String("file", name),
			wllog.Int("words", len(words)))
	}
	return result
}
