package token

// Keywords lists the reserved words the lexer tags with the Keyword
// kind. Only import, let, as, and fn are consumed by the current
// grammar; the rest are reserved so a later grammar extension can use
// them without a lexer change — mirroring the teacher's KwTask, "not
// produced by the lexer" in its current grammar but reserved regardless.
//
// Simple type names (int, float, string, boolean, char, void) and the
// boolean literals (true, false) are deliberately absent: BoolLit is
// its own literal token kind, and type names are matched as plain
// identifiers by the parser (an unknown one is a ParseError, not a lex
// error) — see parser.parseSimpleType.
var Keywords = map[string]bool{
	"import": true,
	"let":    true,
	"as":     true,
	"fn":     true,
	"if":     true,
	"else":   true,
	"while":  true,
	"for":    true,
	"break":  true,
}

// IsKeyword reports whether rep is a reserved word.
func IsKeyword(rep string) bool {
	return Keywords[rep]
}
