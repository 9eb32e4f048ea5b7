package emit

import (
	"fmt"

	"loom/internal/ast"
	"loom/internal/diag"
)

// emitGlobalVar lowers one global variable declaration: a literal
// initializer emits a constant global; any other initializer emits a
// mutable global seeded with its type-directed zero value and records a
// deferred initializer to be run from the synthesized start function.
func (e *Emitter) emitGlobalVar(decl ast.Decl) error {
	typeID := declType(e.b, decl)
	kind := typeKindOf(e.b, typeID)
	if !lowerableGlobalType(kind) {
		// Compound types (list, tuple, function) have no representation
		// in this core; skip the whole declaration rather than emit a
		// global with no type.
		e.addDiag(diag.SevWarning, "skipped global with unsupported type", decl.Pos)
		return nil
	}
	wt := watType(e.b, typeID)
	name := e.ctx.PushName(decl.Name.Name)

	exprNode := e.b.Exprs.Get(decl.Expr)
	if exprNode.Kind == ast.ExprLit {
		litData, _ := e.b.Exprs.Lit(decl.Expr)
		if text, ok := constText(litData); ok {
			fmt.Fprintf(&e.buf, " (global $%s %s %s)", name, wt, text)
			return nil
		}
	}

	zero, _ := zeroValueFor(kind)
	fmt.Fprintf(&e.buf, " (global $%s (mut %s) %s)", name, wt, zero)
	e.ctx.PushInitializer(name, decl.Expr)
	return nil
}

// emitStart synthesizes the $/start function, iff at least one deferred
// initializer exists: "$/start" is reserved and never collides with
// user names since user names never contain '/' at module scope.
func (e *Emitter) emitStart() error {
	inits := e.ctx.GlobalInitializers()
	if len(inits) == 0 {
		return nil
	}
	e.buf.WriteString(" (func $/start")
	for _, init := range inits {
		wrote, err := e.emitExpr(init.Expr)
		if err != nil {
			return err
		}
		if wrote {
			fmt.Fprintf(&e.buf, " (set_global $%s)", init.Name)
		}
	}
	e.buf.WriteString(")")
	e.buf.WriteString(" (start $/start)")
	return nil
}
