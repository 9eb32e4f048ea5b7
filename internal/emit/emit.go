// Package emit lowers a parsed loom ast.Program into WebAssembly text.
// The emitter is a single-pass, single-threaded walk: one Emitter owns
// one codegen.Context for the lifetime of one module.
package emit

import (
	"fmt"
	"strings"

	"loom/internal/ast"
	"loom/internal/codegen"
	"loom/internal/diag"
	"loom/internal/source"
)

// Emitter lowers one parsed Program to assembly text, grounded on the
// teacher's internal/backend/llvm.Emitter buffer-plus-emitX-methods
// shape: a strings.Builder stands in for the lazy emission a language
// with cheap generators could use instead.
type Emitter struct {
	b     *ast.Builder
	ctx   *codegen.Context
	buf   strings.Builder
	diags *diag.Bag
}

// Module is the result of emitting one Program: the assembly text and
// the soft diagnostics the pass collected along the way.
type Module struct {
	Text  string
	Diags *diag.Bag
}

// EmitModule emits prog's declarations, in source order, into a single
// WAT module, exporting exportName's function under that name: global
// declarations and function definitions in source order, followed by
// the synthesized start function (if any) and the export clause.
func EmitModule(b *ast.Builder, prog *ast.Program, exportName string) (*Module, error) {
	e := &Emitter{b: b, ctx: codegen.NewContext(), diags: diag.NewBag()}

	e.buf.WriteString("(module")
	for _, decl := range prog.Decls {
		if err := e.emitTopDecl(decl); err != nil {
			return nil, err
		}
	}
	if err := e.emitStart(); err != nil {
		return nil, err
	}

	exportAsm, ok := e.ctx.GetGlobalWATName(exportName)
	if !ok {
		return nil, fmt.Errorf("emit: export name %q does not resolve to any declared global or function", exportName)
	}
	fmt.Fprintf(&e.buf, " (export %q (func $%s))", exportName, exportAsm)
	e.buf.WriteString(")")

	return &Module{Text: e.buf.String(), Diags: e.diags}, nil
}

// emitTopDecl dispatches one top-level Decl: a FuncExpr becomes a
// function definition, an IdentExpr resolved to a FuncType becomes a
// name alias with no emission, and anything else becomes a global
// variable.
func (e *Emitter) emitTopDecl(decl ast.Decl) error {
	exprNode := e.b.Exprs.Get(decl.Expr)

	if exprNode.Kind == ast.ExprFunc {
		fn, _ := e.b.Exprs.Func(decl.Expr)
		return e.emitFunc(decl, fn)
	}

	if exprNode.Kind == ast.ExprIdent && isFuncTyped(e.b, exprNode) {
		identData, _ := e.b.Exprs.Ident(decl.Expr)
		e.ctx.PushAlias(decl.Name.Name, identData.Name)
		return nil
	}

	return e.emitGlobalVar(decl)
}

// isFuncTyped reports whether node's type-checker-attached resolved
// type is a FuncType.
func isFuncTyped(b *ast.Builder, node *ast.Expr) bool {
	if node.ResolvedType == nil {
		return false
	}
	t := b.Types.Get(*node.ResolvedType)
	return t != nil && t.Kind == ast.TypeFunc
}

// addDiag files a soft diagnostic for a construct the emitter
// deliberately under-approximates rather than raising.
func (e *Emitter) addDiag(sev diag.Severity, msg string, pos source.Position) {
	e.diags.Add(diag.Diagnostic{Severity: sev, Message: msg, Pos: pos})
}
