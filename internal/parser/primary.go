package parser

import (
	"loom/internal/ast"
	"loom/internal/token"
)

// parsePrimExpr implements "PrimExpr := Literal | Ident | TupleExpr |
// ListExpr".
func (p *Parser) parsePrimExpr() (ast.ExprID, error) {
	tok := p.peek()
	switch {
	case tok.IsLiteral():
		return p.parseLiteral()
	case tok.Kind == token.Ident:
		p.consume(token.Ident)
		return p.b.Exprs.NewIdent(tok.Pos, tok.Rep), nil
	case tok.Is(token.Punctuation, "("):
		return p.parseTupleExpr()
	case tok.Is(token.Punctuation, "["):
		return p.parseListExpr()
	default:
		return ast.NoExprID, p.errHere(tok, describeToken(tok), "expression")
	}
}

func litKindFor(k token.Kind) ast.LitKind {
	switch k {
	case token.IntLit:
		return ast.LitInt
	case token.FloatLit:
		return ast.LitFloat
	case token.StrLit:
		return ast.LitStr
	case token.BoolLit:
		return ast.LitBool
	case token.CharLit:
		return ast.LitChar
	default:
		return ast.LitInvalid
	}
}

func (p *Parser) parseLiteral() (ast.ExprID, error) {
	tok, err := p.nextToken()
	if err != nil {
		return ast.NoExprID, err
	}
	return p.b.Exprs.NewLit(tok.Pos, litKindFor(tok.Kind), tok.Rep, tok.Value), nil
}

// parseTupleExpr implements "TupleExpr := '(' (Expr (',' Expr)*)? ')'".
// An empty tuple `()` is legal; a single-element tuple reduces to a
// 1-item TupleExpr with no distinct parenthesized-expression node — so
// `(1)` and a 1-tuple are indistinguishable in the AST.
func (p *Parser) parseTupleExpr() (ast.ExprID, error) {
	open, err := p.consume(token.Punctuation, "(")
	if err != nil {
		return ast.NoExprID, err
	}
	if p.at(token.Punctuation, ")") {
		p.consume(token.Punctuation, ")")
		return p.b.Exprs.NewTuple(open.Pos, nil), nil
	}
	items, err := commaSeparated(p, func() (ast.ExprID, error) { return p.parseExpr(-1) })
	if err != nil {
		return ast.NoExprID, err
	}
	if _, err := p.consume(token.Punctuation, ")"); err != nil {
		return ast.NoExprID, err
	}
	return p.b.Exprs.NewTuple(open.Pos, items), nil
}

// parseListExpr implements "ListExpr := '[' (Expr (',' Expr)*)? ']'".
func (p *Parser) parseListExpr() (ast.ExprID, error) {
	open, err := p.consume(token.Punctuation, "[")
	if err != nil {
		return ast.NoExprID, err
	}
	if p.at(token.Punctuation, "]") {
		p.consume(token.Punctuation, "]")
		return p.b.Exprs.NewList(open.Pos, nil), nil
	}
	items, err := commaSeparated(p, func() (ast.ExprID, error) { return p.parseExpr(-1) })
	if err != nil {
		return ast.NoExprID, err
	}
	if _, err := p.consume(token.Punctuation, "]"); err != nil {
		return ast.NoExprID, err
	}
	return p.b.Exprs.NewList(open.Pos, items), nil
}

// parseFuncExpr implements "KeywordExpr := 'fn' '(' (Param (','
// Param)*)? ')' Type (Block | Expr)".
func (p *Parser) parseFuncExpr() (ast.ExprID, error) {
	kw, err := p.consume(token.Keyword, "fn")
	if err != nil {
		return ast.NoExprID, err
	}
	if _, err := p.consume(token.Punctuation, "("); err != nil {
		return ast.NoExprID, err
	}

	var params []ast.FuncParam
	if !p.at(token.Punctuation, ")") {
		params, err = commaSeparated(p, p.parseParam)
		if err != nil {
			return ast.NoExprID, err
		}
	}
	if _, err := p.consume(token.Punctuation, ")"); err != nil {
		return ast.NoExprID, err
	}

	returnType, err := p.parseType()
	if err != nil {
		return ast.NoExprID, err
	}

	var body ast.Block
	if p.at(token.Punctuation, "{") {
		body, err = p.parseBlock()
		if err != nil {
			return ast.NoExprID, err
		}
	} else {
		bodyExpr, err := p.parseExpr(-1)
		if err != nil {
			return ast.NoExprID, err
		}
		body = ast.Block{Pos: kw.Pos, Bodies: []ast.BlockItem{{IsDecl: false, Expr: bodyExpr}}}
	}

	return p.b.Exprs.NewFunc(kw.Pos, params, returnType, body), nil
}

// parseParam implements "Param := Ident Type" — note the absence of a
// separating `:` here, unlike Decl's optional type annotation.
func (p *Parser) parseParam() (ast.FuncParam, error) {
	name, err := p.parseIdent()
	if err != nil {
		return ast.FuncParam{}, err
	}
	typeID, err := p.parseType()
	if err != nil {
		return ast.FuncParam{}, err
	}
	return ast.FuncParam{Name: name.Name, Type: typeID}, nil
}
