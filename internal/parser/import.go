package parser

import (
	"loom/internal/ast"
	"loom/internal/token"
)

// parseImport implements "Import := 'import' StrLit '(' ImportElem (','
// ImportElem)* ')'". The result is purely syntactic: no path resolution
// happens here, and nothing links an import beyond parsing the
// declaration into AST form.
func (p *Parser) parseImport() (ast.Import, error) {
	kw, err := p.consume(token.Keyword, "import")
	if err != nil {
		return ast.Import{}, err
	}
	pathTok, err := p.consume(token.StrLit)
	if err != nil {
		return ast.Import{}, err
	}
	path := p.b.Exprs.NewLit(pathTok.Pos, ast.LitStr, pathTok.Rep, pathTok.Value)

	if _, err := p.consume(token.Punctuation, "("); err != nil {
		return ast.Import{}, err
	}
	elems, err := commaSeparated(p, p.parseImportElem)
	if err != nil {
		return ast.Import{}, err
	}
	if _, err := p.consume(token.Punctuation, ")"); err != nil {
		return ast.Import{}, err
	}

	return ast.Import{Pos: kw.Pos, Path: path, Elems: elems}, nil
}

// parseImportElem implements "ImportElem := Ident ('as' Ident)?".
func (p *Parser) parseImportElem() (ast.ImportElem, error) {
	name, err := p.parseIdent()
	if err != nil {
		return ast.ImportElem{}, err
	}
	if p.at(token.Keyword, "as") {
		p.consume(token.Keyword, "as")
		alias, err := p.parseIdent()
		if err != nil {
			return ast.ImportElem{}, err
		}
		return ast.ImportElem{Name: name, As: &alias}, nil
	}
	return ast.ImportElem{Name: name}, nil
}

func (p *Parser) parseIdent() (ast.Ident, error) {
	tok, err := p.consume(token.Ident)
	if err != nil {
		return ast.Ident{}, err
	}
	return ast.Ident{Name: tok.Rep, Pos: tok.Pos}, nil
}
