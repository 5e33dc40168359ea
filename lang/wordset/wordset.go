// File: wordset.go
// Title: Word Set Value Type
// Description: Implements the word set, the only runtime value type of the
//              wordlang language. A word set is a duplicate-free collection
//              of words kept in sorted order so that every operation and
//              every printed result is deterministic.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial word set implementation

package wordset

import (
	"sort"
	"strings"
)

// Set represents an unordered, duplicate-free collection of words.
// The backing slice is kept sorted at all times; iteration order is
// therefore the lexicographic order of the words.
type Set struct {
	words []string
}

// New creates a new set containing the given words
func New(words ...string) *Set {
	s := &Set{}
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts a word into the set. Adding a word that is already present
// is a no-op.
func (s *Set) Add(word string) {
	i := sort.SearchStrings(s.words, word)
	if i < len(s.words) && s.words[i] == word {
		return
	}
	s.words = append(s.words, "")
	copy(s.words[i+1:], s.words[i:])
	s.words[i] = word
}

// Remove deletes a word from the set if present
func (s *Set) Remove(word string) {
	i := sort.SearchStrings(s.words, word)
	if i < len(s.words) && s.words[i] == word {
		s.words = append(s.words[:i], s.words[i+1:]...)
	}
}

// Has reports whether the set contains the given word
func (s *Set) Has(word string) bool {
	i := sort.SearchStrings(s.words, word)
	return i < len(s.words) && s.words[i] == word
}

// Len returns the number of words in the set
func (s *Set) Len() int {
	return len(s.words)
}

// Words returns the words of the set in sorted order. The returned slice
// is a copy; mutating it does not affect the set.
func (s *Set) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// Clone returns an independent copy of the set
func (s *Set) Clone() *Set {
	return &Set{words: s.Words()}
}

// Union returns a new set containing every word present in a or b
func Union(a, b *Set) *Set {
	out := a.Clone()
	for _, w := range b.words {
		out.Add(w)
	}
	return out
}

// Difference returns a new set containing every word of a that is not
// present in b.
func Difference(a, b *Set) *Set {
	out := a.Clone()
	for _, w := range b.words {
		out.Remove(w)
	}
	return out
}

// MatchesAny reports whether any word of the set occurs as a substring of
// the candidate. An empty set matches nothing.
func (s *Set) MatchesAny(candidate string) bool {
	for _, w := range s.words {
		if strings.Contains(candidate, w) {
			return true
		}
	}
	return false
}

// String returns a readable representation of the set for logs and
// diagnostics. This is not the language's print format, which belongs to
// the executor.
func (s *Set) String() string {
	return "{" + strings.Join(s.words, ", ") + "}"
}
