package ast

import (
	"testing"

	"loom/internal/source"
)

func TestExprs_BinaryGroupsLeftAndRightCorrectly(t *testing.T) {
	b := NewBuilder()
	one := b.Exprs.NewLit(source.Position{Row: 1, Column: 1}, LitInt, "1", int64(1))
	two := b.Exprs.NewLit(source.Position{Row: 1, Column: 5}, LitInt, "2", int64(2))
	three := b.Exprs.NewLit(source.Position{Row: 1, Column: 9}, LitInt, "3", int64(3))

	mul := b.Exprs.NewBinary(source.Position{Row: 1, Column: 7}, OpMul, two, three)
	add := b.Exprs.NewBinary(source.Position{Row: 1, Column: 3}, OpAdd, one, mul)

	node, ok := b.Exprs.Binary(add)
	if !ok {
		t.Fatalf("expected a binary node")
	}
	if node.Op != OpAdd || node.Left != one || node.Right != mul {
		t.Fatalf("unexpected binary shape: %+v", node)
	}

	inner, ok := b.Exprs.Binary(node.Right)
	if !ok || inner.Op != OpMul {
		t.Fatalf("expected nested Mul(2,3), got %+v ok=%v", inner, ok)
	}
}

func TestTypes_FuncIsRightAssociative(t *testing.T) {
	b := NewBuilder()
	intType := b.Types.NewSimple(TypeInt, source.Position{})
	innerFunc := b.Types.NewFunc(source.Position{}, intType, intType)
	outerFunc := b.Types.NewFunc(source.Position{}, intType, innerFunc)

	outer, ok := b.Types.Func(outerFunc)
	if !ok || outer.Param != intType || outer.Return != innerFunc {
		t.Fatalf("expected outer func(int, inner), got %+v", outer)
	}
	inner, ok := b.Types.Func(outer.Return)
	if !ok || inner.Param != intType || inner.Return != intType {
		t.Fatalf("expected inner func(int,int), got %+v", inner)
	}
}

func TestTypes_EmptyTupleIsLegal(t *testing.T) {
	b := NewBuilder()
	id := b.Types.NewTuple(source.Position{}, nil)
	tup, ok := b.Types.Tuple(id)
	if !ok || len(tup.Items) != 0 {
		t.Fatalf("expected empty tuple type, got %+v", tup)
	}
}

func TestSimpleTypeKind_UnknownNameNotRecognized(t *testing.T) {
	if _, ok := SimpleTypeKind("bogus"); ok {
		t.Fatalf("expected unknown type name to be unrecognized")
	}
	if k, ok := SimpleTypeKind("int"); !ok || k != TypeInt {
		t.Fatalf("expected int to resolve to TypeInt, got %v ok=%v", k, ok)
	}
}
