package emit

import (
	"fmt"

	"loom/internal/ast"
)

// emitFunc lowers a top-level function declaration: the outer PushName
// registers the function in the enclosing (module) scope, EnterFunction
// then opens the parameter scope, and the body is lowered as a block
// with an unconditional (return) appended.
func (e *Emitter) emitFunc(decl ast.Decl, fn *ast.ExprFuncData) error {
	name := e.ctx.PushName(decl.Name.Name)

	e.ctx.EnterFunction()
	defer e.ctx.LeaveFunction()

	fmt.Fprintf(&e.buf, " (func $%s", name)
	for _, p := range fn.Params {
		pname := e.ctx.PushName(p.Name)
		if wt := watType(e.b, p.Type); wt != "" {
			fmt.Fprintf(&e.buf, " (param $%s %s)", pname, wt)
		}
	}
	if wt := watType(e.b, fn.ReturnType); wt != "" {
		fmt.Fprintf(&e.buf, " (result %s)", wt)
	}

	if err := e.emitBlock(fn.Body); err != nil {
		return err
	}
	e.buf.WriteString(" (return))")
	return nil
}

// isFuncAliasDecl reports whether a nested Decl's initializer is an
// identifier resolved to function type — such aliases record the alias
// and emit nothing, rather than copying the referenced function.
func (e *Emitter) isFuncAliasDecl(decl ast.Decl) bool {
	exprNode := e.b.Exprs.Get(decl.Expr)
	return exprNode.Kind == ast.ExprIdent && isFuncTyped(e.b, exprNode)
}

// emitBlock implements two-pass block lowering, required because
// WebAssembly mandates all local declarations precede any instruction
// in a function body:
//  1. Declaration pass: allocate a local slot for each nested Decl.
//  2. Execution pass: walk bodies in source order, emitting expressions
//     and, for nested Decls, the initializer followed by set_local.
func (e *Emitter) emitBlock(block ast.Block) error {
	localNames := make([]string, len(block.Bodies))

	for i, item := range block.Bodies {
		if !item.IsDecl || e.isFuncAliasDecl(item.Decl) {
			continue
		}
		name := e.ctx.PushName(item.Decl.Name.Name)
		localNames[i] = name
		typeID := declType(e.b, item.Decl)
		if !lowerableGlobalType(typeKindOf(e.b, typeID)) {
			continue
		}
		if wt := watType(e.b, typeID); wt != "" {
			fmt.Fprintf(&e.buf, " (local $%s %s)", name, wt)
		}
	}

	for i, item := range block.Bodies {
		if item.IsDecl {
			if e.isFuncAliasDecl(item.Decl) {
				identData, _ := e.b.Exprs.Ident(item.Decl.Expr)
				e.ctx.PushAlias(item.Decl.Name.Name, identData.Name)
				continue
			}
			wrote, err := e.emitExpr(item.Decl.Expr)
			if err != nil {
				return err
			}
			if wrote {
				fmt.Fprintf(&e.buf, " (set_local $%s)", localNames[i])
			}
			continue
		}
		if _, err := e.emitExpr(item.Expr); err != nil {
			return err
		}
	}
	return nil
}
