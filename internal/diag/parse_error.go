package diag

import (
	"fmt"

	"loom/internal/source"
)

// ParseError is the parser's only error shape: a single fatal failure
// at a precise source location. Unlike the teacher's diag.Bag, which
// collects many diagnostics and keeps going, loom's parser never
// recovers — the first ParseError terminates parsing, so there is
// exactly one of these per failed parse.
type ParseError struct {
	Pos        source.Position
	Unexpected string
	Expected   string // optional; empty if there is no single expected token
}

func (e *ParseError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("%s: unexpected %s", e.Pos, e.Unexpected)
	}
	return fmt.Sprintf("%s: unexpected %s, expected %s", e.Pos, e.Unexpected, e.Expected)
}
