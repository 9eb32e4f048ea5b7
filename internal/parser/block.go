package parser

import (
	"loom/internal/ast"
	"loom/internal/token"
)

// parseBlock implements "Block := '{' '}'": block body parsing is a
// known, intentionally unimplemented stub — loom recognizes the braces
// but never populates Bodies, always returning an empty,
// implicitly-void block. A future revision that lifts this stub would
// extend this function, not its callers.
func (p *Parser) parseBlock() (ast.Block, error) {
	open, err := p.consume(token.Punctuation, "{")
	if err != nil {
		return ast.Block{}, err
	}
	if _, err := p.consume(token.Punctuation, "}"); err != nil {
		return ast.Block{}, err
	}
	return ast.Block{Pos: open.Pos, ReturnVoid: true}, nil
}
