// Package interchange msgpack-encodes loom's in-memory AST and emitted
// WAT modules for downstream tooling. It is a serialization convenience
// only — the CLI always parses and emits fresh and uses this solely for
// the `parse --emit-ast` and `build --emit-module` dump flags.
// Grounded on the teacher's internal/driver/dcache.go use of
// github.com/vmihailenco/msgpack/v5, repurposed from a disk cache keyed
// by content hash into a plain marshal/unmarshal pair with no cache
// semantics.
package interchange

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"loom/internal/ast"
)

// EncodeProgram serializes a parsed Program together with every arena
// its Builder allocated into a single self-contained msgpack payload.
func EncodeProgram(b *ast.Builder, prog *ast.Program) ([]byte, error) {
	wp := wireProgram{
		Imports: make([]wireImport, len(prog.Imports)),
		Decls:   make([]wireDecl, len(prog.Decls)),
	}
	for i, imp := range prog.Imports {
		wp.Imports[i] = toWireImport(imp)
	}
	for i, decl := range prog.Decls {
		wp.Decls[i] = toWireDecl(decl)
	}

	for _, n := range b.Exprs.Arena.All() {
		var resolved ast.TypeID
		hasResolved := n.ResolvedType != nil
		if hasResolved {
			resolved = *n.ResolvedType
		}
		wp.ExprNodes = append(wp.ExprNodes, wireExpr{
			Kind:         n.Kind,
			Pos:          toWirePos(n.Pos),
			HasResolved:  hasResolved,
			ResolvedType: resolved,
			Payload:      n.Payload,
		})
	}
	for _, d := range b.Exprs.Idents.All() {
		wp.Idents = append(wp.Idents, wireExprIdent{Name: d.Name})
	}
	for _, d := range b.Exprs.Lits.All() {
		wp.Lits = append(wp.Lits, toWireLit(d))
	}
	for _, d := range b.Exprs.Tuples.All() {
		wp.Tuples = append(wp.Tuples, wireExprTuple{Items: d.Items})
	}
	for _, d := range b.Exprs.Lists.All() {
		wp.Lists = append(wp.Lists, wireExprList{Elems: d.Elems})
	}
	for _, d := range b.Exprs.Funcs.All() {
		wp.Funcs = append(wp.Funcs, toWireFunc(d))
	}
	for _, d := range b.Exprs.Calls.All() {
		wp.Calls = append(wp.Calls, wireExprCall{Func: d.Func, Args: d.Args})
	}
	for _, d := range b.Exprs.Unary.All() {
		wp.Unary = append(wp.Unary, wireExprUnary{Op: d.Op, Right: d.Right})
	}
	for _, d := range b.Exprs.Binary.All() {
		wp.Binary = append(wp.Binary, wireExprBinary{Op: d.Op, Left: d.Left, Right: d.Right})
	}

	for _, n := range b.Types.Arena.All() {
		wp.TypeNodes = append(wp.TypeNodes, wireType{Kind: n.Kind, Pos: toWirePos(n.Pos), Payload: n.Payload})
	}
	for _, d := range b.Types.Lists.All() {
		wp.TypeLists = append(wp.TypeLists, wireTypeList{Element: d.Element})
	}
	for _, d := range b.Types.Tuples.All() {
		wp.TypeTuples = append(wp.TypeTuples, wireTypeTuple{Items: d.Items})
	}
	for _, d := range b.Types.Funcs.All() {
		wp.TypeFuncs = append(wp.TypeFuncs, wireTypeFunc{Param: d.Param, Return: d.Return})
	}

	data, err := msgpack.Marshal(&wp)
	if err != nil {
		return nil, fmt.Errorf("interchange: failed to encode program: %w", err)
	}
	return data, nil
}

// DecodeProgram reconstructs a Builder and Program from a payload
// produced by EncodeProgram. Every per-kind arena is replayed in its
// original allocation order, so every ast.ExprID/ast.TypeID/
// ast.PayloadID in the decoded Program refers to the same logical node
// it did before encoding.
func DecodeProgram(data []byte) (*ast.Builder, *ast.Program, error) {
	var wp wireProgram
	if err := msgpack.Unmarshal(data, &wp); err != nil {
		return nil, nil, fmt.Errorf("interchange: failed to decode program: %w", err)
	}

	b := ast.NewBuilder()
	for _, n := range wp.ExprNodes {
		var resolved *ast.TypeID
		if n.HasResolved {
			t := n.ResolvedType
			resolved = &t
		}
		b.Exprs.Arena.Allocate(ast.Expr{
			Kind:         n.Kind,
			Pos:          fromWirePos(n.Pos),
			ResolvedType: resolved,
			Payload:      n.Payload,
		})
	}
	for _, d := range wp.Idents {
		b.Exprs.Idents.Allocate(ast.ExprIdentData{Name: d.Name})
	}
	for _, d := range wp.Lits {
		b.Exprs.Lits.Allocate(fromWireLit(d))
	}
	for _, d := range wp.Tuples {
		b.Exprs.Tuples.Allocate(ast.ExprTupleData{Items: d.Items})
	}
	for _, d := range wp.Lists {
		b.Exprs.Lists.Allocate(ast.ExprListData{Elems: d.Elems})
	}
	for _, d := range wp.Funcs {
		b.Exprs.Funcs.Allocate(fromWireFunc(d))
	}
	for _, d := range wp.Calls {
		b.Exprs.Calls.Allocate(ast.ExprCallData{Func: d.Func, Args: d.Args})
	}
	for _, d := range wp.Unary {
		b.Exprs.Unary.Allocate(ast.ExprUnaryData{Op: d.Op, Right: d.Right})
	}
	for _, d := range wp.Binary {
		b.Exprs.Binary.Allocate(ast.ExprBinaryData{Op: d.Op, Left: d.Left, Right: d.Right})
	}

	for _, n := range wp.TypeNodes {
		b.Types.Arena.Allocate(ast.Type{Kind: n.Kind, Pos: fromWirePos(n.Pos), Payload: n.Payload})
	}
	for _, d := range wp.TypeLists {
		b.Types.Lists.Allocate(ast.TypeListData{Element: d.Element})
	}
	for _, d := range wp.TypeTuples {
		b.Types.Tuples.Allocate(ast.TypeTupleData{Items: d.Items})
	}
	for _, d := range wp.TypeFuncs {
		b.Types.Funcs.Allocate(ast.TypeFuncData{Param: d.Param, Return: d.Return})
	}

	prog := &ast.Program{
		Imports: make([]ast.Import, len(wp.Imports)),
		Decls:   make([]ast.Decl, len(wp.Decls)),
	}
	for i, imp := range wp.Imports {
		prog.Imports[i] = fromWireImport(imp)
	}
	for i, decl := range wp.Decls {
		prog.Decls[i] = fromWireDecl(decl)
	}

	return b, prog, nil
}

func toWireIdent(id ast.Ident) wireIdent {
	return wireIdent{Name: id.Name, Pos: toWirePos(id.Pos)}
}

func fromWireIdent(w wireIdent) ast.Ident {
	return ast.Ident{Name: w.Name, Pos: fromWirePos(w.Pos)}
}

func toWireImport(imp ast.Import) wireImport {
	w := wireImport{Pos: toWirePos(imp.Pos), Path: imp.Path, Elems: make([]wireImportElem, len(imp.Elems))}
	for i, e := range imp.Elems {
		elem := wireImportElem{Name: toWireIdent(e.Name)}
		if e.As != nil {
			elem.HasAs = true
			elem.As = toWireIdent(*e.As)
		}
		w.Elems[i] = elem
	}
	return w
}

func fromWireImport(w wireImport) ast.Import {
	imp := ast.Import{Pos: fromWirePos(w.Pos), Path: w.Path, Elems: make([]ast.ImportElem, len(w.Elems))}
	for i, e := range w.Elems {
		elem := ast.ImportElem{Name: fromWireIdent(e.Name)}
		if e.HasAs {
			as := fromWireIdent(e.As)
			elem.As = &as
		}
		imp.Elems[i] = elem
	}
	return imp
}

func toWireDecl(d ast.Decl) wireDecl {
	return wireDecl{Pos: toWirePos(d.Pos), Name: toWireIdent(d.Name), Type: d.Type, Expr: d.Expr}
}

func fromWireDecl(w wireDecl) ast.Decl {
	return ast.Decl{Pos: fromWirePos(w.Pos), Name: fromWireIdent(w.Name), Type: w.Type, Expr: w.Expr}
}

func toWireBlock(blk ast.Block) wireBlock {
	w := wireBlock{Pos: toWirePos(blk.Pos), Bodies: make([]wireBlockItem, len(blk.Bodies)), ReturnVoid: blk.ReturnVoid}
	for i, item := range blk.Bodies {
		w.Bodies[i] = wireBlockItem{IsDecl: item.IsDecl, Decl: toWireDecl(item.Decl), Expr: item.Expr}
	}
	return w
}

func fromWireBlock(w wireBlock) ast.Block {
	blk := ast.Block{Pos: fromWirePos(w.Pos), Bodies: make([]ast.BlockItem, len(w.Bodies)), ReturnVoid: w.ReturnVoid}
	for i, item := range w.Bodies {
		blk.Bodies[i] = ast.BlockItem{IsDecl: item.IsDecl, Decl: fromWireDecl(item.Decl), Expr: item.Expr}
	}
	return blk
}

func toWireLit(d ast.ExprLitData) wireExprLit {
	w := wireExprLit{Lit: d.Lit, Raw: d.Raw}
	switch d.Lit {
	case ast.LitInt:
		w.IntValue, _ = d.Value.(int64)
	case ast.LitFloat:
		w.FloatValue, _ = d.Value.(float64)
	case ast.LitBool:
		w.BoolValue, _ = d.Value.(bool)
	case ast.LitChar:
		if r, ok := d.Value.(rune); ok {
			w.CharValue = int32(r)
		}
	}
	return w
}

func fromWireLit(w wireExprLit) ast.ExprLitData {
	d := ast.ExprLitData{Lit: w.Lit, Raw: w.Raw}
	switch w.Lit {
	case ast.LitInt:
		d.Value = w.IntValue
	case ast.LitFloat:
		d.Value = w.FloatValue
	case ast.LitBool:
		d.Value = w.BoolValue
	case ast.LitChar:
		d.Value = rune(w.CharValue)
	}
	return d
}

func toWireFunc(d ast.ExprFuncData) wireExprFunc {
	w := wireExprFunc{Params: make([]wireFuncParam, len(d.Params)), ReturnType: d.ReturnType, Body: toWireBlock(d.Body)}
	for i, p := range d.Params {
		w.Params[i] = wireFuncParam{Name: p.Name, Type: p.Type}
	}
	return w
}

func fromWireFunc(w wireExprFunc) ast.ExprFuncData {
	d := ast.ExprFuncData{Params: make([]ast.FuncParam, len(w.Params)), ReturnType: w.ReturnType, Body: fromWireBlock(w.Body)}
	for i, p := range w.Params {
		d.Params[i] = ast.FuncParam{Name: p.Name, Type: p.Type}
	}
	return d
}
