package interchange

import (
	"loom/internal/ast"
	"loom/internal/source"
)

// The wire* types mirror ast's arena-based AST as plain, fully exported
// structs msgpack can serialize by reflection (ast.Arena's backing slice
// is unexported by design, so it has nothing to reflect over directly).
// Every ID (ast.ExprID, ast.TypeID, ast.PayloadID) is a plain integer
// that keeps meaning across encode/decode as long as each per-kind
// arena is replayed in its original allocation order, which
// EncodeProgram/DecodeProgram preserve.

type wirePosition struct {
	Row    uint32
	Column uint32
}

func toWirePos(p source.Position) wirePosition {
	return wirePosition{Row: p.Row, Column: p.Column}
}

func fromWirePos(p wirePosition) source.Position {
	return source.Position{Row: p.Row, Column: p.Column}
}

type wireIdent struct {
	Name string
	Pos  wirePosition
}

type wireImportElem struct {
	Name  wireIdent
	HasAs bool
	As    wireIdent
}

type wireImport struct {
	Pos   wirePosition
	Path  ast.ExprID
	Elems []wireImportElem
}

type wireDecl struct {
	Pos  wirePosition
	Name wireIdent
	Type ast.TypeID
	Expr ast.ExprID
}

type wireBlockItem struct {
	IsDecl bool
	Decl   wireDecl
	Expr   ast.ExprID
}

type wireBlock struct {
	Pos        wirePosition
	Bodies     []wireBlockItem
	ReturnVoid bool
}

type wireExpr struct {
	Kind         ast.ExprKind
	Pos          wirePosition
	HasResolved  bool
	ResolvedType ast.TypeID
	Payload      ast.PayloadID
}

type wireExprIdent struct {
	Name string
}

// wireExprLit stores a LitExpr's value untyped by LitKind: msgpack can
// encode any of int64/float64/bool/rune through an `any` field, but
// decoding back into `any` loses the rune/int32 distinction, so the
// concrete fields below are kept separate and reassembled by LitKind on
// decode instead.
type wireExprLit struct {
	Lit        ast.LitKind
	Raw        string
	IntValue   int64
	FloatValue float64
	BoolValue  bool
	CharValue  int32
}

type wireExprTuple struct {
	Items []ast.ExprID
}

type wireExprList struct {
	Elems []ast.ExprID
}

type wireFuncParam struct {
	Name string
	Type ast.TypeID
}

type wireExprFunc struct {
	Params     []wireFuncParam
	ReturnType ast.TypeID
	Body       wireBlock
}

type wireExprCall struct {
	Func ast.ExprID
	Args ast.ExprID
}

type wireExprUnary struct {
	Op    ast.UnaryOp
	Right ast.ExprID
}

type wireExprBinary struct {
	Op    ast.BinaryOp
	Left  ast.ExprID
	Right ast.ExprID
}

type wireType struct {
	Kind    ast.TypeKind
	Pos     wirePosition
	Payload ast.PayloadID
}

type wireTypeList struct {
	Element ast.TypeID
}

type wireTypeTuple struct {
	Items []ast.TypeID
}

type wireTypeFunc struct {
	Param  ast.TypeID
	Return ast.TypeID
}

// wireProgram is the full self-contained interchange payload for one
// parsed file: the Program's own Imports/Decls plus every arena the
// Builder it references allocated, flattened in allocation order.
type wireProgram struct {
	Imports []wireImport
	Decls   []wireDecl

	ExprNodes  []wireExpr
	Idents     []wireExprIdent
	Lits       []wireExprLit
	Tuples     []wireExprTuple
	Lists      []wireExprList
	Funcs      []wireExprFunc
	Calls      []wireExprCall
	Unary      []wireExprUnary
	Binary     []wireExprBinary

	TypeNodes  []wireType
	TypeLists  []wireTypeList
	TypeTuples []wireTypeTuple
	TypeFuncs  []wireTypeFunc
}
