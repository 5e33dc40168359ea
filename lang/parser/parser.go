// File: parser.go
// Title: Recursive-Descent Parser
// Description: Parses a wordlang token stream into an abstract syntax
//              tree. One method per grammar production; precedence is
//              assignment (right associative), then +/-, then pipe
//              filters, then terms. Scope resolution happens inline via
//              the symbol table.
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

	"github.com/msto63/wordlang/lang/ast"
	wlset "github.com/msto63/wordlang/lang/wordset"

	wlerror "github.com/msto63/wordlang/core/error"
	wllog "github.com/msto63/wordlang/core/log"
)

// Options configures a Parser.
type Options struct {
	// Logger receives debug output. When nil the default logger is used.
	Logger *wllog.Logger
}

// Parser builds an AST from wordlang source. A Parser is reusable but
// not safe for concurrent use; each Parse call starts from a fresh token
// stream and symbol table.
type Parser struct {
	tokens  []Token
	pos     int
	symbols *SymbolTable
	logger  *wllog.Logger
}

// New creates a Parser with the given options.
func New(opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = wllog.GetDefault()
	}
	return &Parser{
		logger: logger.WithName("parser"),
	}
}

// Parse compiles source into a Program. The returned error, if any, is a
// *wlerror.Error carrying a syntax code and the offending source line.
func (p *Parser) Parse(source string) (*ast.Program, error) {
	p.tokens = NewLexer(source).Tokenize()
	p.pos = 0
	p.symbols = NewSymbolTable()

	p.logger.Debug("parsing source", wllog.Int("tokens", len(p.tokens)-1))

	body := &ast.StatementBlock{Line: 1}
	for p.current().Type != TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			body.Statements = append(body.Statements, stmt)
		}
	}

	program := &ast.Program{
		Body:      body,
		Variables: p.symbols.Variables(),
	}
	p.logger.Debug("parse complete",
		wllog.Int("statements", len(body.Statements)),
		wllog.Int("variables", program.SlotCount()))
	return program, nil
}

// current returns the token under the cursor. The stream always ends in
// EOF, so the cursor never runs past the slice.
func (p *Parser) current() Token {
	return p.tokens[p.pos]
}

// advance consumes and returns the current token. EOF is never consumed.
func (p *Parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Type != TokenEOF {
		p.pos++
	}
	return tok
}

// accept consumes the current token if it has the given type.
func (p *Parser) accept(t TokenType) bool {
	if p.current().Type == t {
		p.pos++
		return true
	}
	return false
}

// expect consumes the current token if it has the given type and returns
// a syntax error otherwise.
func (p *Parser) expect(t TokenType) (Token, error) {
	tok := p.current()
	if tok.Type != t {
		return tok, p.syntaxErrorf(tok, "expected %s but found %s", TokenName(t), TokenName(tok.Type))
	}
	return p.advance(), nil
}

// syntaxError builds a line-tagged syntax error from tok.
func (p *Parser) syntaxError(tok Token, message string) error {
	code := wlerror.CodeSyntax
	if tok.Type == TokenEOF {
		code = wlerror.CodeUnexpectedEOF
	}
	return wlerror.New(message).WithCode(code).WithLine(tok.Line)
}

// syntaxErrorf is syntaxError with formatting.
func (p *Parser) syntaxErrorf(tok Token, format string, args ...interface{}) error {
	return p.syntaxError(tok, fmt.Sprintf(format, args...))
}

// parseStatement dispatches on the leading token. Semicolons on their own
// are empty statements and produce no node. Bare expressions (typically
// assignments) are statements too; their trailing semicolon is absorbed
// as an empty statement by the next round.
func (p *Parser) parseStatement() (ast.Node, error) {
	tok := p.current()
	switch tok.Type {
	case TokenType(';'):
		p.advance()
		return nil, nil
	case TokenType('{'):
		return p.parseBlock()
	case TokenKwList:
		return p.parseDeclaration()
	case TokenKwPrint:
		return p.parsePrint()
	case TokenKwForeach:
		return nil, wlerror.New("foreach is not supported").
			WithCode(wlerror.CodeUnsupported).
			WithLine(tok.Line)
	default:
		return p.parseExpression()
	}
}

// parseBlock parses `{ statement* }` with its own variable scope.
func (p *Parser) parseBlock() (ast.Node, error) {
	open, err := p.expect(TokenType('{'))
	if err != nil {
		return nil, err
	}
	p.symbols.PushScope()

	block := &ast.StatementBlock{Line: open.Line}
	for p.current().Type != TokenType('}') {
		if p.current().Type == TokenEOF {
			return nil, p.syntaxError(p.current(), "unexpected end of input inside block; expected '}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	p.advance()

	if err := p.symbols.PopScope(); err != nil {
		return nil, err
	}
	return block, nil
}

// parseDeclaration parses `List name ;` or `List name = expr ;`. A bare
// declaration only reserves the slot and produces no node; with an
// initializer it lowers to an assignment.
func (p *Parser) parseDeclaration() (ast.Node, error) {
	p.advance() // List
	nameTok, err := p.expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}
	slot, err := p.symbols.Declare(nameTok.Value, nameTok.Line)
	if err != nil {
		return nil, err
	}

	if p.accept(TokenType(';')) {
		return nil, nil
	}
	if !p.accept(TokenType('=')) {
		return nil, p.syntaxErrorf(p.current(), "expected ';' or '=' after declaration of '%s' but found %s",
			nameTok.Value, TokenName(p.current().Type))
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenType(';')); err != nil {
		return nil, err
	}
	return &ast.Assign{
		Line:   nameTok.Line,
		Target: &ast.VariableRef{Line: nameTok.Line, Slot: slot, Name: nameTok.Value},
		Value:  value,
	}, nil
}

// parsePrint parses `print ( expr [, expr]* ) ;`.
func (p *Parser) parsePrint() (ast.Node, error) {
	kw := p.advance() // print
	if _, err := p.expect(TokenType('(')); err != nil {
		return nil, err
	}

	stmt := &ast.Print{Line: kw.Line}
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Args = append(stmt.Args, arg)
		if !p.accept(TokenType(',')) {
			break
		}
	}

	if _, err := p.expect(TokenType(')')); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenType(';')); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseExpression parses at the lowest precedence level.
func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseAssign()
}

// parseAssign parses right-associative assignment. The left side must
// resolve to a variable reference.
func (p *Parser) parseAssign() (ast.Expr, error) {
	lhs, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}
	eq := p.current()
	if !p.accept(TokenType('=')) {
		return lhs, nil
	}

	target, ok := lhs.(*ast.VariableRef)
	if !ok {
		return nil, p.syntaxError(eq, "left side of assignment must be a variable")
	}
	rhs, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Line: target.Line, Target: target, Value: rhs}, nil
}

// parseAddSub parses left-associative `+` and `-` chains.
func (p *Parser) parseAddSub() (ast.Expr, error) {
	lhs, err := p.parsePipe()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.SetOperator
		switch p.current().Type {
		case TokenType('+'):
			op = ast.OpUnion
		case TokenType('-'):
			op = ast.OpDifference
		default:
			return lhs, nil
		}
		tok := p.advance()
		rhs, err := p.parsePipe()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinarySetOp{Line: tok.Line, Op: op, Left: lhs, Right: rhs}
	}
}

// parsePipe parses left-associative `| filter(expr)` and
// `| filter_out(expr)` chains.
func (p *Parser) parsePipe() (ast.Expr, error) {
	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.accept(TokenType('|')) {
		kind := p.advance()
		switch kind.Type {
		case TokenKwFilter, TokenKwFilterOut:
		default:
			return nil, p.syntaxErrorf(kind, "unexpected %s after '|'; expected 'filter' or 'filter_out'",
				TokenName(kind.Type))
		}
		if _, err := p.expect(TokenType('(')); err != nil {
			return nil, err
		}
		pattern, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
		if kind.Type == TokenKwFilter {
			lhs = &ast.Filter{Line: kind.Line, Source: lhs, Pattern: pattern}
		} else {
			lhs = &ast.FilterOut{Line: kind.Line, Source: lhs, Pattern: pattern}
		}
	}
	return lhs, nil
}

// parseTerm parses the atoms: variable references, string literals,
// load expressions, and parenthesized expressions.
func (p *Parser) parseTerm() (ast.Expr, error) {
	tok := p.advance()
	switch tok.Type {
	case TokenIdentifier:
		slot, ok := p.symbols.Lookup(tok.Value)
		if !ok {
			return nil, wlerror.Newf("unknown variable '%s'", tok.Value).
				WithCode(wlerror.CodeUndeclaredVariable).
				WithLine(tok.Line)
		}
		return &ast.VariableRef{Line: tok.Line, Slot: slot, Name: tok.Value}, nil

	case TokenString:
		// strip the delimiting quotes; escape sequences stay verbatim
		word := tok.Value[1 : len(tok.Value)-1]
		return &ast.Literal{Line: tok.Line, Words: wlset.New(word)}, nil

	case TokenKwLoad:
		if _, err := p.expect(TokenType('(')); err != nil {
			return nil, err
		}
		names, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
		return &ast.Load{Line: tok.Line, Names: names}, nil

	case TokenType('('):
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
		return expr, nil

	case TokenEOF:
		return nil, p.syntaxError(tok, "unexpected end of input; expected expression")

	default:
		return nil, p.syntaxErrorf(tok, "expected expression but found %s", TokenName(tok.Type))
	}
}
