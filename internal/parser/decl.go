package parser

import (
	"loom/internal/ast"
	"loom/internal/token"
)

// parseDecl implements "Decl := 'let' Ident (':' Type)? '=' Expr".
func (p *Parser) parseDecl() (ast.Decl, error) {
	kw, err := p.consume(token.Keyword, "let")
	if err != nil {
		return ast.Decl{}, err
	}
	name, err := p.parseIdent()
	if err != nil {
		return ast.Decl{}, err
	}

	typeID := ast.NoTypeID
	if p.at(token.Punctuation, ":") {
		p.consume(token.Punctuation, ":")
		typeID, err = p.parseType()
		if err != nil {
			return ast.Decl{}, err
		}
	}

	if _, err := p.consume(token.Punctuation, "="); err != nil {
		return ast.Decl{}, err
	}
	expr, err := p.parseExpr(-1)
	if err != nil {
		return ast.Decl{}, err
	}

	return ast.Decl{Pos: kw.Pos, Name: name, Type: typeID, Expr: expr}, nil
}
