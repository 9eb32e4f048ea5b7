package lexer

import (
	"strings"

	"loom/internal/source"
	"loom/internal/token"
)

// escapeRune decodes a single-character escape (\n \t \r \\ \" \' \0).
func escapeRune(r rune) (rune, bool) {
	switch r {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '\\':
		return '\\', true
	case '"':
		return '"', true
	case '\'':
		return '\'', true
	case '0':
		return 0, true
	default:
		return 0, false
	}
}

func (lx *Lexer) scanString(pos source.Position) token.Token {
	lx.bump() // opening quote
	var b strings.Builder
	rawStart := lx.pos
	for {
		r, size := lx.peekRune()
		if size == 0 || r == '"' {
			break
		}
		if r == '\\' {
			lx.bump()
			esc, size := lx.peekRune()
			if size == 0 {
				break
			}
			if decoded, ok := escapeRune(esc); ok {
				b.WriteRune(decoded)
			} else {
				b.WriteRune(esc)
			}
			lx.bump()
			continue
		}
		b.WriteRune(r)
		lx.bump()
	}
	raw := lx.src[rawStart:lx.pos]
	lx.bump() // closing quote (or EOF; unterminated strings are a known gap in this lexer)
	return token.Token{Kind: token.StrLit, Pos: pos, Rep: raw, Value: normalize(b.String())}
}

func (lx *Lexer) scanChar(pos source.Position) token.Token {
	lx.bump() // opening quote
	r, size := lx.peekRune()
	var value rune
	if size != 0 {
		if r == '\\' {
			lx.bump()
			esc, escSize := lx.peekRune()
			if escSize != 0 {
				if decoded, ok := escapeRune(esc); ok {
					value = decoded
				} else {
					value = esc
				}
				lx.bump()
			}
		} else {
			value = r
			lx.bump()
		}
	}
	raw := string(value)
	if r, size := lx.peekRune(); size != 0 && r == '\'' {
		lx.bump()
	}
	return token.Token{Kind: token.CharLit, Pos: pos, Rep: raw, Value: value}
}
