package lexer

import (
	"loom/internal/source"
	"loom/internal/token"
)

func (lx *Lexer) scanIdentOrKeyword(pos source.Position) token.Token {
	start := lx.pos
	for {
		r, size := lx.peekRune()
		if size == 0 || !isIdentCont(r) {
			break
		}
		lx.bump()
	}
	rep := lx.src[start:lx.pos]

	switch rep {
	case "true", "false":
		return token.Token{Kind: token.BoolLit, Pos: pos, Rep: rep, Value: rep == "true"}
	default:
	}
	if token.IsKeyword(rep) {
		return token.Token{Kind: token.Keyword, Pos: pos, Rep: rep}
	}
	return token.Token{Kind: token.Ident, Pos: pos, Rep: normalize(rep)}
}
