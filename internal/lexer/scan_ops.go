package lexer

import (
	"loom/internal/source"
	"loom/internal/token"
)

// twoByteOps lists the two-character operator lexemes, including the
// arrow `->`, in the order they must be tried (longest match first is
// implicit since all entries here are exactly two bytes).
var twoByteOps = []string{"==", "!=", "<=", ">=", "&&", "||", "->"}

// punctuationRunes lists single-character punctuation.
var punctuationRunes = map[byte]bool{
	'(': true, ')': true, '[': true, ']': true, '{': true, '}': true,
	',': true, ':': true, ';': true, '=': true,
}

// operatorRunes lists single-character operator lexemes.
var operatorRunes = map[byte]bool{
	'+': true, '-': true, '*': true, '/': true, '%': true,
	'<': true, '>': true, '|': true, '^': true, '&': true, '!': true,
}

func (lx *Lexer) scanOperatorOrPunct(pos source.Position) token.Token {
	b0 := lx.peekByteAt(0)
	b1 := lx.peekByteAt(1)
	two := string([]byte{b0, b1})
	for _, op := range twoByteOps {
		if two == op {
			lx.bump()
			lx.bump()
			return token.Token{Kind: token.Operator, Pos: pos, Rep: op}
		}
	}

	lx.bump()
	rep := string(b0)
	switch {
	case punctuationRunes[b0]:
		return token.Token{Kind: token.Punctuation, Pos: pos, Rep: rep}
	case operatorRunes[b0]:
		return token.Token{Kind: token.Operator, Pos: pos, Rep: rep}
	default:
		return token.Token{Kind: token.Invalid, Pos: pos, Rep: rep}
	}
}
