package parser

import (
	"loom/internal/ast"
	"loom/internal/token"
)

// parseType implements "Type := TypeAtom ('->' Type)?". The arrow is
// right-associative: `int -> int -> int` parses as Func(int, Func(int,
// int)).
func (p *Parser) parseType() (ast.TypeID, error) {
	atom, err := p.parseTypeAtom()
	if err != nil {
		return ast.NoTypeID, err
	}
	if p.at(token.Operator, "->") {
		pos, _ := p.consume(token.Operator, "->")
		ret, err := p.parseType()
		if err != nil {
			return ast.NoTypeID, err
		}
		return p.b.Types.NewFunc(pos.Pos, atom, ret), nil
	}
	return atom, nil
}

// parseTypeAtom implements "TypeAtom := '[' Type ']' | '(' (Type (','
// Type)*)? ')' | SimpleType".
func (p *Parser) parseTypeAtom() (ast.TypeID, error) {
	switch {
	case p.at(token.Punctuation, "["):
		open, _ := p.consume(token.Punctuation, "[")
		elem, err := p.parseType()
		if err != nil {
			return ast.NoTypeID, err
		}
		if _, err := p.consume(token.Punctuation, "]"); err != nil {
			return ast.NoTypeID, err
		}
		return p.b.Types.NewList(open.Pos, elem), nil

	case p.at(token.Punctuation, "("):
		open, _ := p.consume(token.Punctuation, "(")
		// Empty tuple type `()` is legal.
		if p.at(token.Punctuation, ")") {
			p.consume(token.Punctuation, ")")
			return p.b.Types.NewTuple(open.Pos, nil), nil
		}
		items, err := commaSeparated(p, p.parseType)
		if err != nil {
			return ast.NoTypeID, err
		}
		if _, err := p.consume(token.Punctuation, ")"); err != nil {
			return ast.NoTypeID, err
		}
		// A single-element tuple type reduces to a 1-item TupleType: there
		// is no distinct "parenthesized type" node.
		return p.b.Types.NewTuple(open.Pos, items), nil

	default:
		return p.parseSimpleType()
	}
}

// parseSimpleType consumes an identifier and resolves it against the
// fixed set of simple type names; an unrecognized name raises
// ParseError("unknown type", rep) at the identifier's position, since
// loom has no user-defined named types.
func (p *Parser) parseSimpleType() (ast.TypeID, error) {
	tok, err := p.consume(token.Ident)
	if err != nil {
		return ast.NoTypeID, err
	}
	kind, ok := ast.SimpleTypeKind(tok.Rep)
	if !ok {
		return ast.NoTypeID, p.errHere(tok, "unknown type", tok.Rep)
	}
	return p.b.Types.NewSimple(kind, tok.Pos), nil
}
