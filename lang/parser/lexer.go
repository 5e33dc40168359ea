// File: lexer.go
// Title: Lexical Scanner
// Description: Token type definitions and the maximal-munch scanner that
//              walks the shared automaton. Single-character tokens carry
//              their byte value as token type so punctuation needs no
//              dedicated lexical rules.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation

package parser

import (
	"fmt"
	"strings"
)

// TokenType identifies a lexical token class. Values below 256 are raw
// byte tokens: the type IS the byte, so '+' scans as TokenType('+').
// Named classes start above the byte range.
type TokenType int

// TokenEOF marks the end of the token stream. It doubles as the
// "no token" value inside the automaton.
const TokenEOF TokenType = 0

// Named token classes. Comment and whitespace tokens are produced by the
// scanner but discarded by Tokenize before the parser sees them.
const (
	TokenComment TokenType = iota + 256
	TokenWhitespace
	TokenString
	TokenIdentifier
	TokenKwIn
	TokenKwPrint
	TokenKwForeach
	TokenKwFilterOut
	TokenKwFilter
	TokenKwLoad
	TokenKwList
)

// Token is one lexeme with its source line for diagnostics.
type Token struct {
	Type  TokenType
	Value string
	Line  int
}

// TokenName renders a token type for error messages.
func TokenName(t TokenType) string {
	switch t {
	case TokenEOF:
		return "end of input"
	case TokenComment:
		return "comment"
	case TokenWhitespace:
		return "whitespace"
	case TokenString:
		return "string literal"
	case TokenIdentifier:
		return "identifier"
	case TokenKwIn:
		return "'in'"
	case TokenKwPrint:
		return "'print'"
	case TokenKwForeach:
		return "'foreach'"
	case TokenKwFilterOut:
		return "'filter_out'"
	case TokenKwFilter:
		return "'filter'"
	case TokenKwLoad:
		return "'load'"
	case TokenKwList:
		return "'List'"
	}
	if t > 0 && t < 256 {
		return fmt.Sprintf("'%c'", rune(t))
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// String implements fmt.Stringer for debug output.
func (t Token) String() string {
	return fmt.Sprintf("%s %q (line %d)", TokenName(t.Type), t.Value, t.Line)
}

// Lexer scans one source text. It keeps only a cursor and a line counter;
// the automaton itself is shared and read-only.
type Lexer struct {
	input string
	pos   int
	line  int
}

// NewLexer creates a scanner over input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: input,
		line:  1,
	}
}

// NextToken scans the longest token starting at the cursor. When no rule
// matches, the single byte under the cursor is emitted as a raw byte
// token, so the scanner cannot get stuck. At end of input it returns an
// EOF token forever.
func (l *Lexer) NextToken() Token {
	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Line: l.line}
	}

	state := machine.start
	if l.pos == 0 || l.input[l.pos-1] == '\n' {
		state = machine.step(state, symLineOpen)
	}

	// maximal munch: remember the last accepting position and keep
	// feeding bytes until the automaton dies
	cur := l.pos
	best := l.pos
	bestType := TokenEOF
	for state >= 0 && cur < len(l.input) {
		c := l.input[cur]
		if c >= 0x80 {
			break
		}
		cur++
		state = machine.step(state, int(c))
		if t := machine.stop(state); t != TokenEOF {
			best, bestType = cur, t
		}
		if cur == len(l.input) || l.input[cur] == '\n' {
			if t := machine.stop(machine.step(state, symLineEnd)); t != TokenEOF {
				best, bestType = cur, t
			}
		}
	}

	if best == l.pos {
		// no rule matched: the byte becomes its own token
		bestType = TokenType(l.input[l.pos])
		best = l.pos + 1
	}

	tok := Token{
		Type:  bestType,
		Value: l.input[l.pos:best],
		Line:  l.line,
	}
	l.line += strings.Count(tok.Value, "\n")
	l.pos = best
	return tok
}

// Tokenize scans the whole input, drops comments and whitespace, and
// terminates the stream with an EOF token.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokenComment || tok.Type == TokenWhitespace {
			continue
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}
