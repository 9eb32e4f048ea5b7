package parser

import (
	"loom/internal/ast"
	"loom/internal/token"
)

// parseProgram implements "Program := Import* Decl* EOF": all imports
// must precede all declarations.
func (p *Parser) parseProgram() (*ast.Program, error) {
	imports, err := manyWhile(p, func(tok token.Token) bool {
		return tok.Is(token.Keyword, "import")
	}, p.parseImport)
	if err != nil {
		return nil, err
	}

	decls, err := manyWhile(p, func(tok token.Token) bool {
		return tok.Is(token.Keyword, "let")
	}, p.parseDecl)
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Kind != token.EOF {
		return nil, p.errHere(tok, describeToken(tok), token.EOF.String())
	}

	return &ast.Program{Imports: imports, Decls: decls}, nil
}
