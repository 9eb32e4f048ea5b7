package emit

import "loom/internal/ast"

// Operator-to-instruction lowering turns a BinaryExpr's operator into a
// concrete WAT instruction, grounded on the teacher's
// internal/backend/llvm/emit_instr_binary.go dispatch-table style, so
// the CLI produces real, runnable WAT rather than stopping at the parse
// tree.
//
// The operand numeric kind ("i32" or "f64") comes from the left
// operand's type-checker-attached resolved type when present, and defaults
// to "i32" otherwise — the same default the literal-lowering table uses
// for int/bool/char.
type binaryInstr struct {
	i32 string
	f64 string // "" if the operator has no float form
}

var binaryInstrs = map[ast.BinaryOp]binaryInstr{
	ast.OpAdd:        {"i32.add", "f64.add"},
	ast.OpSub:        {"i32.sub", "f64.sub"},
	ast.OpMul:        {"i32.mul", "f64.mul"},
	ast.OpDiv:        {"i32.div_s", "f64.div"},
	ast.OpMod:        {"i32.rem_s", ""},
	ast.OpBitAnd:     {"i32.and", ""},
	ast.OpBitOr:      {"i32.or", ""},
	ast.OpBitXor:     {"i32.xor", ""},
	ast.OpEq:         {"i32.eq", "f64.eq"},
	ast.OpNotEq:      {"i32.ne", "f64.ne"},
	ast.OpLess:       {"i32.lt_s", "f64.lt"},
	ast.OpLessEq:     {"i32.le_s", "f64.le"},
	ast.OpGreater:    {"i32.gt_s", "f64.gt"},
	ast.OpGreaterEq:  {"i32.ge_s", "f64.ge"},
	ast.OpAnd:        {"i32.and", ""},
	ast.OpOr:         {"i32.or", ""},
}

func binaryInstrFor(op ast.BinaryOp, numKind string) (string, bool) {
	entry, ok := binaryInstrs[op]
	if !ok {
		return "", false
	}
	if numKind == "f64" {
		if entry.f64 == "" {
			return "", false
		}
		return entry.f64, true
	}
	return entry.i32, true
}

// numKindOf returns the resolved-type-directed numeric kind for an
// expression, defaulting to "i32" absent type-checker information.
func numKindOf(b *ast.Builder, id ast.ExprID) string {
	node := b.Exprs.Get(id)
	if node == nil || node.ResolvedType == nil {
		return "i32"
	}
	if watType(b, *node.ResolvedType) == "f64" {
		return "f64"
	}
	return "i32"
}
