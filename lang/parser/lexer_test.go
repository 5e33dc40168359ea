// File: lexer_test.go
// Title: Lexical Scanner Tests
// Description: Tests for the table-driven tokenizer: keyword vs.
//              identifier discrimination, maximal munch, string literals,
//              comments, raw byte fallback, and line accounting.
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
)

// scan tokenizes input and strips the trailing EOF token.
func scan(t *testing.T, input string) []Token {
	t.Helper()
	tokens := NewLexer(input).Tokenize()
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != TokenEOF {
		t.Fatalf("token stream not terminated by EOF: %v", tokens)
	}
	return tokens[:len(tokens)-1]
}

func TestTokenizeKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{"in", TokenKwIn},
		{"print", TokenKwPrint},
		{"foreach", TokenKwForeach},
		{"filter", TokenKwFilter},
		{"filter_out", TokenKwFilterOut},
		{"load", TokenKwLoad},
		{"List", TokenKwList},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := scan(t, tt.input)
			if len(tokens) != 1 {
				t.Fatalf("Tokenize(%q) = %d tokens, want 1", tt.input, len(tokens))
			}
			if tokens[0].Type != tt.want {
				t.Errorf("Tokenize(%q) type = %s, want %s",
					tt.input, TokenName(tokens[0].Type), TokenName(tt.want))
			}
			if tokens[0].Value != tt.input {
				t.Errorf("Tokenize(%q) value = %q", tt.input, tokens[0].Value)
			}
		})
	}
}

func TestTokenizeKeywordPrefixesAreIdentifiers(t *testing.T) {
	// maximal munch must not stop at an embedded keyword
	tests := []string{
		"prin",       // proper prefix
		"printer",    // keyword plus identifier tail
		"filter_",    // keyword plus underscore
		"filter_outX",
		"loads",
		"Lists",
		"list", // keywords are case sensitive
		"inner",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			tokens := scan(t, input)
			if len(tokens) != 1 {
				t.Fatalf("Tokenize(%q) = %d tokens, want 1", input, len(tokens))
			}
			if tokens[0].Type != TokenIdentifier {
				t.Errorf("Tokenize(%q) type = %s, want identifier",
					input, TokenName(tokens[0].Type))
			}
			if tokens[0].Value != input {
				t.Errorf("Tokenize(%q) value = %q, want whole input", input, tokens[0].Value)
			}
		})
	}
}

func TestTokenizeStringLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", `"cat"`, `"cat"`},
		{"empty", `""`, `""`},
		{"escaped quote", `"a\"b"`, `"a\"b"`},
		{"escaped backslash", `"a\\"`, `"a\\"`},
		{"spaces inside", `"two words"`, `"two words"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scan(t, tt.input)
			if len(tokens) != 1 {
				t.Fatalf("Tokenize(%q) = %d tokens, want 1", tt.input, len(tokens))
			}
			if tokens[0].Type != TokenString {
				t.Fatalf("Tokenize(%q) type = %s, want string literal",
					tt.input, TokenName(tokens[0].Type))
			}
			if tokens[0].Value != tt.want {
				t.Errorf("Tokenize(%q) value = %q, want %q", tt.input, tokens[0].Value, tt.want)
			}
		})
	}
}

func TestTokenizeUnterminatedStringFallsBack(t *testing.T) {
	// an unterminated literal must not swallow the rest of the input:
	// the opening quote degrades to a raw byte token
	tokens := scan(t, "\"abc\nx")
	if len(tokens) == 0 {
		t.Fatal("no tokens")
	}
	if tokens[0].Type != TokenType('"') {
		t.Errorf("first token type = %s, want '\"' fallback", TokenName(tokens[0].Type))
	}
	last := tokens[len(tokens)-1]
	if last.Type != TokenIdentifier || last.Value != "x" {
		t.Errorf("last token = %v, want identifier x", last)
	}
	if last.Line != 2 {
		t.Errorf("last token line = %d, want 2", last.Line)
	}
}

func TestTokenizeCommentsDiscarded(t *testing.T) {
	tokens := scan(t, "print // rest of line ignored \"even quotes\"\n;")
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens %v, want 2", len(tokens), tokens)
	}
	if tokens[0].Type != TokenKwPrint {
		t.Errorf("first token = %s, want 'print'", TokenName(tokens[0].Type))
	}
	if tokens[1].Type != TokenType(';') {
		t.Errorf("second token = %s, want ';'", TokenName(tokens[1].Type))
	}
	if tokens[1].Line != 2 {
		t.Errorf("semicolon line = %d, want 2", tokens[1].Line)
	}
}

func TestTokenizeSingleSlashIsRawByte(t *testing.T) {
	tokens := scan(t, "a / b")
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens %v, want 3", len(tokens), tokens)
	}
	if tokens[1].Type != TokenType('/') {
		t.Errorf("middle token = %s, want '/'", TokenName(tokens[1].Type))
	}
}

func TestTokenizePunctuation(t *testing.T) {
	tokens := scan(t, `List x = "a" + "b" - "c" | ( ) { } , ;`)
	want := []TokenType{
		TokenKwList, TokenIdentifier, TokenType('='),
		TokenString, TokenType('+'), TokenString, TokenType('-'), TokenString,
		TokenType('|'), TokenType('('), TokenType(')'),
		TokenType('{'), TokenType('}'), TokenType(','), TokenType(';'),
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(tokens), tokens, len(want))
	}
	for i, w := range want {
		if tokens[i].Type != w {
			t.Errorf("token %d = %s, want %s", i, TokenName(tokens[i].Type), TokenName(w))
		}
	}
}

func TestTokenizeLineNumbers(t *testing.T) {
	input := "List a;\n\nprint(a);\n// comment\nList b;"
	tokens := scan(t, input)

	lines := []int{}
	for _, tok := range tokens {
		if tok.Type == TokenKwList || tok.Type == TokenKwPrint {
			lines = append(lines, tok.Line)
		}
	}
	want := []int{1, 3, 5}
	if len(lines) != len(want) {
		t.Fatalf("keyword count = %d, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("keyword %d on line %d, want %d", i, lines[i], want[i])
		}
	}
}

func TestNextTokenAfterEOF(t *testing.T) {
	l := NewLexer(";")
	if tok := l.NextToken(); tok.Type != TokenType(';') {
		t.Fatalf("first token = %s", TokenName(tok.Type))
	}
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Type != TokenEOF {
			t.Errorf("call %d after end = %s, want EOF", i, TokenName(tok.Type))
		}
	}
}

func TestTokenName(t *testing.T) {
	tests := []struct {
		t    TokenType
		want string
	}{
		{TokenEOF, "end of input"},
		{TokenString, "string literal"},
		{TokenIdentifier, "identifier"},
		{TokenKwFilterOut, "'filter_out'"},
		{TokenType(';'), "';'"},
		{TokenType('+'), "'+'"},
	}
	for _, tt := range tests {
		if got := TokenName(tt.t); got != tt.want {
			t.Errorf("TokenName(%d) = %q, want %q", int(tt.t), got, tt.want)
		}
	}
}
