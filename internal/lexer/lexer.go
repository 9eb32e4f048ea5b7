// Package lexer turns loom source text into the previewable token
// stream the parser consumes. It supplies a small, real implementation
// grounded on the teacher's internal/lexer scan-by-category structure,
// needed to drive the CLI and the parser's tests.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"loom/internal/diag"
	"loom/internal/source"
	"loom/internal/token"
)

// Lexer scans one source file into tokens, buffering exactly one token
// of lookahead (teacher's lexer.go Peek/Next/Push shape).
type Lexer struct {
	file *source.File
	src  string
	pos  int // byte offset into src
	row  uint32
	col  uint32

	buffered bool
	lookhead token.Token

	errs []*diag.ParseError
}

// New creates a Lexer over file's content.
func New(file *source.File) *Lexer {
	return &Lexer{
		file: file,
		src:  string(file.Content),
		row:  1,
		col:  1,
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if !lx.buffered {
		lx.lookhead = lx.scan()
		lx.buffered = true
	}
	return lx.lookhead
}

// Next consumes and returns the next token.
func (lx *Lexer) Next() token.Token {
	if lx.buffered {
		lx.buffered = false
		return lx.lookhead
	}
	return lx.scan()
}

func (lx *Lexer) here() source.Position {
	return source.Position{Row: lx.row, Column: lx.col}
}

// peekRune returns the rune at pos without advancing, and its size.
func (lx *Lexer) peekRune() (rune, int) {
	if lx.pos >= len(lx.src) {
		return 0, 0
	}
	r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
	return r, size
}

// peekByteAt returns the byte offset bytes ahead of pos (0 past the end),
// for two-byte operator lookahead.
func (lx *Lexer) peekByteAt(offset int) byte {
	if lx.pos+offset >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+offset]
}

func (lx *Lexer) bump() {
	r, size := lx.peekRune()
	if size == 0 {
		return
	}
	lx.pos += size
	if r == '\n' {
		lx.row++
		lx.col = 1
	} else {
		lx.col++
	}
}

func (lx *Lexer) skipTrivia() {
	for {
		r, size := lx.peekRune()
		if size == 0 {
			return
		}
		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			lx.bump()
		case r == '/' && lx.peekByteAt(1) == '/':
			for {
				r, size := lx.peekRune()
				if size == 0 || r == '\n' {
					break
				}
				lx.bump()
			}
		default:
			return
		}
	}
}

func (lx *Lexer) scan() token.Token {
	lx.skipTrivia()
	pos := lx.here()
	r, size := lx.peekRune()
	if size == 0 {
		return token.Token{Kind: token.EOF, Pos: pos, Rep: ""}
	}

	switch {
	case isIdentStart(r):
		return lx.scanIdentOrKeyword(pos)
	case unicode.IsDigit(r):
		return lx.scanNumber(pos)
	case r == '"':
		return lx.scanString(pos)
	case r == '\'':
		return lx.scanChar(pos)
	default:
		return lx.scanOperatorOrPunct(pos)
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentCont(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// normalize applies NFC normalization the way the teacher's
// internal/vm/intrinsic_string.go normalizes runtime strings, so
// visually identical identifiers/string contents always compare equal.
func normalize(s string) string {
	return norm.NFC.String(s)
}
