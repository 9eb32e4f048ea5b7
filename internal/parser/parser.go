// Package parser turns a previewable token stream into an AST. It is a
// predictive recursive-descent recognizer: every production is a method
// returning either a node or a *diag.ParseError, and the first error is
// fatal — there is no recovery.
package parser

import (
	"loom/internal/ast"
	"loom/internal/diag"
	"loom/internal/source"
	"loom/internal/token"
)

// TokenStream is the previewable token source the parser consumes:
// peek a token without consuming it, or consume and return the next
// one. *lexer.Lexer satisfies it; the parser depends only on this
// interface so the lexer stays an external, swappable collaborator.
type TokenStream interface {
	Peek() token.Token
	Next() token.Token
}

// Parser holds the state of one parse: the token stream and the AST
// arenas new nodes are allocated into.
type Parser struct {
	ts   TokenStream
	b    *ast.Builder
	last source.Position // position of the most recently consumed token
}

// New creates a Parser reading from ts and allocating nodes into b.
func New(ts TokenStream, b *ast.Builder) *Parser {
	return &Parser{ts: ts, b: b}
}

// Parse runs the Program production ("Program := Import* Decl* EOF")
// to completion.
func Parse(ts TokenStream, b *ast.Builder) (*ast.Program, error) {
	p := New(ts, b)
	return p.parseProgram()
}

// --- core combinators ---

// peek returns the next token without consuming it.
func (p *Parser) peek() token.Token {
	return p.ts.Peek()
}

// nextToken consumes and returns the next token, failing if the stream
// is already exhausted.
func (p *Parser) nextToken() (token.Token, error) {
	tok := p.ts.Next()
	if tok.Kind == token.EOF {
		return tok, p.errHere(tok, "end of token stream", "")
	}
	p.last = tok.Pos
	return tok, nil
}

// at reports whether the next token has the given kind (and, if rep is
// given, lexeme) without consuming it.
func (p *Parser) at(k token.Kind, rep ...string) bool {
	return p.peek().Is(k, rep...)
}

// consume demands a token of kind k (and, if rep given, lexeme rep); on
// mismatch it raises a ParseError citing the mismatched token and the
// expectation.
func (p *Parser) consume(k token.Kind, rep ...string) (token.Token, error) {
	if p.at(k, rep...) {
		return p.nextToken()
	}
	tok := p.peek()
	want := k.String()
	if len(rep) > 0 {
		want = rep[0]
	}
	return token.Token{}, p.errHere(tok, describeToken(tok), want)
}

// errHere builds a ParseError anchored at tok's position.
func (p *Parser) errHere(tok token.Token, unexpected, expected string) error {
	return &diag.ParseError{Pos: tok.Pos, Unexpected: unexpected, Expected: expected}
}

func describeToken(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of token stream"
	}
	return tok.Rep
}

// manyWhile repeatedly applies parseOne while pred(peek) holds,
// producing a (possibly empty) sequence.
func manyWhile[T any](p *Parser, pred func(token.Token) bool, parseOne func() (T, error)) ([]T, error) {
	var out []T
	for pred(p.peek()) {
		item, err := parseOne()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// commaSeparated parses one element, then zero or more "," element
// pairs; it does not allow a trailing comma.
func commaSeparated[T any](p *Parser, parseOne func() (T, error)) ([]T, error) {
	first, err := parseOne()
	if err != nil {
		return nil, err
	}
	out := []T{first}
	for p.at(token.Punctuation, ",") {
		if _, err := p.consume(token.Punctuation, ","); err != nil {
			return nil, err
		}
		item, err := parseOne()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
