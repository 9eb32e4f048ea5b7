package parser

import (
	"testing"

	"loom/internal/ast"
	"loom/internal/diag"
	"loom/internal/lexer"
	"loom/internal/source"
)

func parseExprSrc(t *testing.T, src string) (ast.ExprID, *ast.Builder, error) {
	t.Helper()
	b := ast.NewBuilder()
	lx := lexer.New(source.FromBytes("test.lm", []byte(src)))
	p := New(lx, b)
	id, err := p.parseExpr(-1)
	return id, b, err
}

func parseProgramSrc(t *testing.T, src string) (*ast.Program, *ast.Builder, error) {
	t.Helper()
	b := ast.NewBuilder()
	lx := lexer.New(source.FromBytes("test.lm", []byte(src)))
	prog, err := Parse(lx, b)
	return prog, b, err
}

// E1: `1 + 2 * 3` parses as Add(1, Mul(2, 3)) — multiplicative binds
// tighter than additive.
func TestParser_E1_PrecedenceGroupsMultiplicationTighter(t *testing.T) {
	id, b, err := parseExprSrc(t, "1 + 2 * 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	add, ok := b.Exprs.Binary(id)
	if !ok || add.Op != ast.OpAdd {
		t.Fatalf("expected top-level Add, got %+v", add)
	}
	mul, ok := b.Exprs.Binary(add.Right)
	if !ok || mul.Op != ast.OpMul {
		t.Fatalf("expected right operand Mul, got %+v", mul)
	}
}

// Left-associativity: `1 - 2 - 3` parses as Sub(Sub(1,2), 3).
func TestParser_LeftAssociativity(t *testing.T) {
	id, b, err := parseExprSrc(t, "1 - 2 - 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outer, ok := b.Exprs.Binary(id)
	if !ok || outer.Op != ast.OpSub {
		t.Fatalf("expected outer Sub, got %+v", outer)
	}
	inner, ok := b.Exprs.Binary(outer.Left)
	if !ok || inner.Op != ast.OpSub {
		t.Fatalf("expected left operand to be nested Sub, got %+v", inner)
	}
	if _, isBinary := b.Exprs.Binary(outer.Right); isBinary {
		t.Fatalf("expected right operand to be the literal 3, not a binary expr")
	}
}

// Empty tuple expression and type are both legal.
func TestParser_EmptyTupleExprIsLegal(t *testing.T) {
	id, b, err := parseExprSrc(t, "()")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tup, ok := b.Exprs.Tuple(id)
	if !ok || len(tup.Items) != 0 {
		t.Fatalf("expected empty tuple, got %+v", tup)
	}
}

// A single-element tuple reduces to a 1-item TupleExpr.
func TestParser_SingleElementTupleReduces(t *testing.T) {
	id, b, err := parseExprSrc(t, "(1)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tup, ok := b.Exprs.Tuple(id)
	if !ok || len(tup.Items) != 1 {
		t.Fatalf("expected 1-item tuple, got %+v", tup)
	}
}

// E6: `int -> int -> int` is right-associative.
func TestParser_E6_FuncTypeIsRightAssociative(t *testing.T) {
	prog, b, err := parseProgramSrc(t, "let f: int -> int -> int = g")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outer, ok := b.Types.Func(prog.Decls[0].Type)
	if !ok {
		t.Fatalf("expected a func type")
	}
	if k := b.Types.Get(outer.Param).Kind; k != ast.TypeInt {
		t.Fatalf("expected param int, got %v", k)
	}
	inner, ok := b.Types.Func(outer.Return)
	if !ok {
		t.Fatalf("expected return type to be nested func, got %+v", inner)
	}
}

// Unknown simple type names raise ParseError("unknown type", rep).
func TestParser_UnknownSimpleTypeName(t *testing.T) {
	_, _, err := parseProgramSrc(t, "let x: frobnicator = 1")
	pe, ok := err.(*diag.ParseError)
	if !ok {
		t.Fatalf("expected *diag.ParseError, got %v", err)
	}
	if pe.Unexpected != "unknown type" {
		t.Fatalf("expected unexpected = \"unknown type\", got %q", pe.Unexpected)
	}
}

// E7: parsing "foo +" fails with ParseError at the position of `+`,
// unexpected = non-binary operator.
func TestParser_E7_TrailingBinaryOperatorFails(t *testing.T) {
	_, _, err := parseExprSrc(t, "foo +")
	pe, ok := err.(*diag.ParseError)
	if !ok {
		t.Fatalf("expected *diag.ParseError, got %v", err)
	}
	if pe.Unexpected != "non-binary operator" {
		t.Fatalf("expected unexpected = \"non-binary operator\", got %q", pe.Unexpected)
	}
	if pe.Pos.Column != 5 {
		t.Fatalf("expected error anchored at '+' (col 5), got %+v", pe.Pos)
	}
}

// A unary-only operator in binary-continuation position is rejected.
func TestParser_StrayUnaryOnlyOperatorInBinaryPosition(t *testing.T) {
	_, _, err := parseExprSrc(t, "foo ! bar")
	pe, ok := err.(*diag.ParseError)
	if !ok {
		t.Fatalf("expected *diag.ParseError, got %v", err)
	}
	if pe.Unexpected != "non-binary operator" {
		t.Fatalf("expected unexpected = \"non-binary operator\", got %q", pe.Unexpected)
	}
}

func TestParser_CallExprChains(t *testing.T) {
	id, b, err := parseExprSrc(t, "f(1, 2)(3)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outer, ok := b.Exprs.Call(id)
	if !ok {
		t.Fatalf("expected outer CallExpr")
	}
	outerArgs, ok := b.Exprs.Tuple(outer.Args)
	if !ok || len(outerArgs.Items) != 1 {
		t.Fatalf("expected outer call with one arg, got %+v", outerArgs)
	}
	inner, ok := b.Exprs.Call(outer.Func)
	if !ok {
		t.Fatalf("expected inner CallExpr as outer's callee")
	}
	innerArgs, ok := b.Exprs.Tuple(inner.Args)
	if !ok || len(innerArgs.Items) != 2 {
		t.Fatalf("expected inner call with two args, got %+v", innerArgs)
	}
}

func TestParser_FuncExprWithExpressionBody(t *testing.T) {
	id, b, err := parseExprSrc(t, "fn(x int, y int) int x + y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn, ok := b.Exprs.Func(id)
	if !ok {
		t.Fatalf("expected ExprFunc")
	}
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Params))
	}
	if fn.Body.ReturnVoid {
		t.Fatalf("expression-bodied function should not be ReturnVoid")
	}
	if len(fn.Body.Bodies) != 1 || fn.Body.Bodies[0].IsDecl {
		t.Fatalf("expected a single expr body item, got %+v", fn.Body.Bodies)
	}
}

func TestParser_FuncExprWithBlockBodyIsStubbed(t *testing.T) {
	id, b, err := parseExprSrc(t, "fn() void {}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn, ok := b.Exprs.Func(id)
	if !ok {
		t.Fatalf("expected ExprFunc")
	}
	if !fn.Body.ReturnVoid || len(fn.Body.Bodies) != 0 {
		t.Fatalf("expected stubbed empty block, got %+v", fn.Body)
	}
}

func TestParser_ImportDecl(t *testing.T) {
	prog, _, err := parseProgramSrc(t, `import "std/io" (println, printf as pf)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Imports) != 1 {
		t.Fatalf("expected 1 import, got %d", len(prog.Imports))
	}
	elems := prog.Imports[0].Elems
	if len(elems) != 2 || elems[0].As != nil || elems[1].As == nil || elems[1].As.Name != "pf" {
		t.Fatalf("unexpected import elems: %+v", elems)
	}
}

func TestParser_ListTypeAndListExpr(t *testing.T) {
	prog, b, err := parseProgramSrc(t, "let xs: [int] = [1, 2, 3]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	listType, ok := b.Types.List(prog.Decls[0].Type)
	if !ok || b.Types.Get(listType.Element).Kind != ast.TypeInt {
		t.Fatalf("expected [int] type, got %+v", listType)
	}
	listExpr, ok := b.Exprs.List(prog.Decls[0].Expr)
	if !ok || len(listExpr.Elems) != 3 {
		t.Fatalf("expected 3-elem list expr, got %+v", listExpr)
	}
}
