package emit

import (
	"fmt"
	"strconv"

	"loom/internal/ast"
)

// constText renders a LitExpr's value as the literal WAT constant text
// used both for the constant-global branch and for LitExpr expression
// dispatch. String literals have no constant WAT representation yet —
// their linear-memory offset is undefined in this core — so constText
// reports ok=false for LitStr; callers fall back to the
// deferred-initializer path, whose expression emission then also skips
// the literal (see emitExpr).
func constText(lit *ast.ExprLitData) (string, bool) {
	switch lit.Lit {
	case ast.LitInt:
		v, _ := lit.Value.(int64)
		return strconv.FormatInt(v, 10), true
	case ast.LitFloat:
		v, _ := lit.Value.(float64)
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case ast.LitBool:
		v, _ := lit.Value.(bool)
		if v {
			return "1", true
		}
		return "0", true
	case ast.LitChar:
		v, _ := lit.Value.(rune)
		return strconv.Itoa(int(v)), true
	default:
		return "", false
	}
}

// zeroValueFor returns the type-directed zero value for a deferred
// global's placeholder initial value: "0" for numeric/boolean/char
// types. String zero-initialization is reserved; it still lowers to i32
// (watType) but zeroValueFor returns ok=false for it so callers know
// not to trust the value as a real memory offset.
func zeroValueFor(kind ast.TypeKind) (string, bool) {
	switch kind {
	case ast.TypeInt, ast.TypeFloat, ast.TypeBool, ast.TypeChar:
		return "0", true
	case ast.TypeStr:
		return "0", false
	default:
		return "", false
	}
}

func instrConst(wt, text string) string {
	return fmt.Sprintf("(%s.const %s)", wt, text)
}

// litWATType returns the WAT type a literal's constant instruction
// uses: f64 for FloatLit, i32 for everything else lowerable.
func litWATType(kind ast.LitKind) string {
	if kind == ast.LitFloat {
		return "f64"
	}
	return "i32"
}
