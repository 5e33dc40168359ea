// File: dfa.go
// Title: Tokenizer State Machine
// Description: Deterministic finite automaton for wordlang tokens. The
//              transition table is constructed at package initialization
//              from the lexical rules and covers the ASCII byte range plus
//              two synthetic control symbols for line boundaries.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation

package parser

// The automaton reads one column per input byte (0-127) plus two
// synthetic symbols the scanner injects at line boundaries. Control
// symbols with no outgoing transition leave the state unchanged instead
// of killing the match, so rules that do not care about line boundaries
// need no extra table entries.
const (
	symbolCount = 130
	symLineOpen = 128 // injected before the first byte of a line
	symLineEnd  = 129 // injected before a newline or end of input
)

// identifier chars and whitespace per the lexical rules
const (
	identStartChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"
	identChars      = identStartChars + "0123456789"
	whitespaceChars = " \t\n\r\v\f"
)

// dfa is the compiled transition table. States are indices into next and
// accept; a table entry of -1 means no transition. accept holds the token
// type recognized when the automaton stops in that state, or TokenEOF for
// non-accepting states.
type dfa struct {
	next   [][symbolCount]int16
	accept []TokenType
	start  int
	ident  int
}

// machine is the one shared automaton. It is immutable after init, so
// concurrent lexers can walk it without locking.
var machine = buildMachine()

// addState appends a fresh state with no outgoing transitions.
func (d *dfa) addState(accept TokenType) int {
	var row [symbolCount]int16
	for i := range row {
		row[i] = -1
	}
	d.next = append(d.next, row)
	d.accept = append(d.accept, accept)
	return len(d.next) - 1
}

// link adds a transition from state on every byte in chars.
func (d *dfa) link(state int, chars string, to int) {
	for i := 0; i < len(chars); i++ {
		d.next[state][chars[i]] = int16(to)
	}
}

// linkExcept adds a transition from state on every ASCII byte not in chars.
func (d *dfa) linkExcept(state int, chars string, to int) {
	var excluded [128]bool
	for i := 0; i < len(chars); i++ {
		excluded[chars[i]] = true
	}
	for c := 0; c < 128; c++ {
		if !excluded[c] {
			d.next[state][c] = int16(to)
		}
	}
}

// addKeyword threads word through the keyword trie rooted at the start
// state. Every intermediate state accepts as an identifier, keeps the
// identifier continuation for bytes that leave the keyword, and the final
// state accepts as the keyword token. Shared prefixes (filter, filter_out)
// reuse the existing chain.
func (d *dfa) addKeyword(word string, kind TokenType) {
	cur := d.start
	for i := 0; i < len(word); i++ {
		c := word[i]
		nxt := int(d.next[cur][c])
		if nxt < 0 || nxt == d.ident {
			state := d.addState(TokenIdentifier)
			d.link(state, identChars, d.ident)
			d.next[cur][c] = int16(state)
			nxt = state
		}
		cur = nxt
	}
	d.accept[cur] = kind
}

// step advances the automaton by one symbol. An unused control symbol
// keeps the current state alive so line boundaries never abort a match
// that does not mention them.
func (d *dfa) step(state, sym int) int {
	if state < 0 {
		return -1
	}
	nxt := int(d.next[state][sym])
	if sym >= symLineOpen && nxt < 0 {
		return state
	}
	return nxt
}

// stop reports the token type accepted in state, or TokenEOF when the
// state is not accepting.
func (d *dfa) stop(state int) TokenType {
	if state < 0 {
		return TokenEOF
	}
	return d.accept[state]
}

// buildMachine compiles the lexical rules into the shared automaton.
func buildMachine() *dfa {
	d := &dfa{}
	d.start = d.addState(TokenEOF)

	// whitespace is deliberately single-character: the scanner emits one
	// discarded token per blank byte, which keeps line accounting trivial
	ws := d.addState(TokenWhitespace)
	d.link(d.start, whitespaceChars, ws)

	// line comment //... up to but not including the newline
	slash := d.addState(TokenEOF)
	comment := d.addState(TokenComment)
	d.next[d.start]['/'] = int16(slash)
	d.next[slash]['/'] = int16(comment)
	d.linkExcept(comment, "\n", comment)

	// string literal: double quotes, backslash escapes, no raw newlines
	strOpen := d.addState(TokenEOF)
	strEsc := d.addState(TokenEOF)
	strClose := d.addState(TokenString)
	d.next[d.start]['"'] = int16(strOpen)
	d.linkExcept(strOpen, "\"\\\n", strOpen)
	d.next[strOpen]['\\'] = int16(strEsc)
	d.next[strOpen]['"'] = int16(strClose)
	d.linkExcept(strEsc, "\n", strOpen)

	// identifiers, then keywords carved out of the identifier space
	d.ident = d.addState(TokenIdentifier)
	d.link(d.start, identStartChars, d.ident)
	d.link(d.ident, identChars, d.ident)

	d.addKeyword("in", TokenKwIn)
	d.addKeyword("print", TokenKwPrint)
	d.addKeyword("foreach", TokenKwForeach)
	d.addKeyword("filter_out", TokenKwFilterOut)
	d.addKeyword("filter", TokenKwFilter)
	d.addKeyword("load", TokenKwLoad)
	d.addKeyword("List", TokenKwList)

	return d
}
