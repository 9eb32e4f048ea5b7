package emit

import (
	"fmt"

	"loom/internal/ast"
	"loom/internal/diag"
)

// emitExpr lowers one expression in post-order stack-machine style. It
// reports whether it actually pushed a value onto the stack — callers
// that follow an expression with a set_local / set_global (block
// execution pass, deferred initializers) use this to skip that trailing
// instruction when the expression is one of the deliberate
// under-approximations this package makes, instead of emitting an
// instruction with nothing beneath it on the stack.
func (e *Emitter) emitExpr(id ast.ExprID) (bool, error) {
	node := e.b.Exprs.Get(id)
	if node == nil {
		return false, fmt.Errorf("emit: nil expression node")
	}

	switch node.Kind {
	case ast.ExprLit:
		return e.emitLit(id, node)
	case ast.ExprIdent:
		return e.emitIdent(id)
	case ast.ExprCall:
		return e.emitCall(id, node)
	case ast.ExprBinary:
		return e.emitBinary(id, node)
	case ast.ExprUnary:
		return e.emitUnary(id, node)
	default:
		// TupleExpr, ListExpr, and nested FuncExpr in expression position
		// are syntactically legal but this core does not lower compound
		// values; skip with a diagnostic rather than emit malformed
		// instructions.
		e.addDiag(diag.SevWarning, "skipped unsupported expression construct", node.Pos)
		return false, nil
	}
}

func (e *Emitter) emitLit(id ast.ExprID, node *ast.Expr) (bool, error) {
	litData, ok := e.b.Exprs.Lit(id)
	if !ok {
		return false, fmt.Errorf("emit: malformed literal node")
	}
	text, ok := constText(litData)
	if !ok {
		// String literal: reserved, no WAT constant representation yet.
		e.addDiag(diag.SevWarning, "skipped string literal (linear-memory layout not implemented)", node.Pos)
		return false, nil
	}
	fmt.Fprintf(&e.buf, " %s", instrConst(litWATType(litData.Lit), text))
	return true, nil
}

func (e *Emitter) emitIdent(id ast.ExprID) (bool, error) {
	identData, ok := e.b.Exprs.Ident(id)
	if !ok {
		return false, fmt.Errorf("emit: malformed ident node")
	}
	if local, ok := e.ctx.GetLocalWATName(identData.Name); ok {
		fmt.Fprintf(&e.buf, " (get_local $%s)", local)
		return true, nil
	}
	global, ok := e.ctx.GetGlobalWATName(identData.Name)
	if !ok {
		// A missing name at lookup time is a type-checker/scope-handling
		// bug, not a codegen error; the emitter assumes it reaches here
		// only for names that exist.
		return false, fmt.Errorf("emit: internal error: undeclared name %q reached get_global emission", identData.Name)
	}
	fmt.Fprintf(&e.buf, " (get_global $%s)", global)
	return true, nil
}

func (e *Emitter) emitCall(id ast.ExprID, node *ast.Expr) (bool, error) {
	callData, ok := e.b.Exprs.Call(id)
	if !ok {
		return false, fmt.Errorf("emit: malformed call node")
	}
	calleeNode := e.b.Exprs.Get(callData.Func)
	if calleeNode.Kind != ast.ExprIdent {
		// CallExpr requires func to be an IdentExpr; any other callee is
		// silently skipped as an unsupported call form.
		e.addDiag(diag.SevWarning, "skipped call with non-identifier callee", node.Pos)
		return false, nil
	}
	identData, _ := e.b.Exprs.Ident(callData.Func)

	for _, arg := range callArgs(e.b, callData.Args) {
		if _, err := e.emitExpr(arg); err != nil {
			return false, err
		}
	}

	fnName, ok := e.ctx.GetGlobalWATName(identData.Name)
	if !ok {
		return false, fmt.Errorf("emit: internal error: undeclared function %q reached call emission", identData.Name)
	}
	fmt.Fprintf(&e.buf, " (call $%s)", fnName)
	return true, nil
}

// callArgs returns the argument expressions in left-to-right order:
// CallExpr.Args is a TupleExpr for `f(a, b)`, or a single Expr for the
// narrower single-arg call form `f(a)`.
func callArgs(b *ast.Builder, args ast.ExprID) []ast.ExprID {
	if tup, ok := b.Exprs.Tuple(args); ok {
		return tup.Items
	}
	return []ast.ExprID{args}
}

func (e *Emitter) emitBinary(id ast.ExprID, node *ast.Expr) (bool, error) {
	data, ok := e.b.Exprs.Binary(id)
	if !ok {
		return false, fmt.Errorf("emit: malformed binary node")
	}
	if _, err := e.emitExpr(data.Left); err != nil {
		return false, err
	}
	if _, err := e.emitExpr(data.Right); err != nil {
		return false, err
	}
	numKind := numKindOf(e.b, data.Left)
	instr, ok := binaryInstrFor(data.Op, numKind)
	if !ok {
		e.addDiag(diag.SevWarning, "skipped binary operator with no lowering for this operand type", node.Pos)
		return false, nil
	}
	fmt.Fprintf(&e.buf, " (%s)", instr)
	return true, nil
}

func (e *Emitter) emitUnary(id ast.ExprID, node *ast.Expr) (bool, error) {
	data, ok := e.b.Exprs.Unary(id)
	if !ok {
		return false, fmt.Errorf("emit: malformed unary node")
	}
	numKind := numKindOf(e.b, data.Right)

	switch data.Op {
	case ast.OpPos:
		return e.emitExpr(data.Right)
	case ast.OpNeg:
		if numKind == "f64" {
			if _, err := e.emitExpr(data.Right); err != nil {
				return false, err
			}
			e.buf.WriteString(" (f64.neg)")
			return true, nil
		}
		e.buf.WriteString(" (i32.const 0)")
		if _, err := e.emitExpr(data.Right); err != nil {
			return false, err
		}
		e.buf.WriteString(" (i32.sub)")
		return true, nil
	case ast.OpNot:
		if _, err := e.emitExpr(data.Right); err != nil {
			return false, err
		}
		e.buf.WriteString(" (i32.eqz)")
		return true, nil
	default:
		e.addDiag(diag.SevWarning, "skipped unsupported unary operator", node.Pos)
		return false, nil
	}
}
