package ast

import "loom/internal/source"

// ExprKind tags an Expr node variant.
type ExprKind uint8

const (
	// ExprInvalid marks an uninitialized expression node.
	ExprInvalid ExprKind = iota
	// ExprLit is a literal expression (LitExpr).
	ExprLit
	// ExprIdent is an identifier reference (IdentExpr).
	ExprIdent
	// ExprTuple is a parenthesized, comma-separated list (TupleExpr).
	ExprTuple
	// ExprList is a bracketed, comma-separated list (ListExpr).
	ExprList
	// ExprFunc is a function literal, currently the only keyword-led
	// expression form (`fn`).
	ExprFunc
	// ExprCall is a function call (CallExpr).
	ExprCall
	// ExprUnary is a prefix unary expression (UnaryExpr).
	ExprUnary
	// ExprBinary is an infix binary expression (BinaryExpr).
	ExprBinary
)

// LitKind tags which Literal variant a LitExpr holds.
type LitKind uint8

const (
	// LitInvalid marks an uninitialized literal.
	LitInvalid LitKind = iota
	// LitInt is an integer literal.
	LitInt
	// LitFloat is a floating point literal.
	LitFloat
	// LitStr is a string literal.
	LitStr
	// LitBool is a boolean literal.
	LitBool
	// LitChar is a character literal.
	LitChar
)

// BinaryOp enumerates binary operators.
type BinaryOp uint8

const (
	// OpOr is `||`.
	OpOr BinaryOp = iota
	// OpAnd is `&&`.
	OpAnd
	// OpEq is `==`.
	OpEq
	// OpNotEq is `!=`.
	OpNotEq
	// OpLess is `<`.
	OpLess
	// OpLessEq is `<=`.
	OpLessEq
	// OpGreater is `>`.
	OpGreater
	// OpGreaterEq is `>=`.
	OpGreaterEq
	// OpAdd is `+`.
	OpAdd
	// OpSub is `-`.
	OpSub
	// OpBitOr is `|`.
	OpBitOr
	// OpBitXor is `^`.
	OpBitXor
	// OpMul is `*`.
	OpMul
	// OpDiv is `/`.
	OpDiv
	// OpMod is `%`.
	OpMod
	// OpBitAnd is `&`.
	OpBitAnd
)

// UnaryOp enumerates unary operators.
type UnaryOp uint8

const (
	// OpPos is prefix `+`.
	OpPos UnaryOp = iota
	// OpNeg is prefix `-`.
	OpNeg
	// OpNot is prefix `!`.
	OpNot
)

// Expr is an expression node.
type Expr struct {
	Kind ExprKind
	Pos  source.Position
	// ResolvedType is attached by the (external) type checker before
	// codegen runs; nil until then.
	ResolvedType *TypeID
	Payload      PayloadID
}

// ExprIdentData is the payload for ExprIdent.
type ExprIdentData struct {
	Name string
}

// ExprLitData is the payload for ExprLit: the raw lexeme plus the
// parsed value.
type ExprLitData struct {
	Lit   LitKind
	Raw   string
	Value any // int64, float64, bool, rune, or string
}

// ExprTupleData is the payload for ExprTuple.
type ExprTupleData struct {
	Items []ExprID
}

// ExprListData is the payload for ExprList.
type ExprListData struct {
	Elems []ExprID
}

// FuncParam is one parameter of a function literal.
type FuncParam struct {
	Name string
	Type TypeID
}

// ExprFuncData is the payload for ExprFunc.
type ExprFuncData struct {
	Params     []FuncParam
	ReturnType TypeID
	Body       Block
}

// ExprCallData is the payload for ExprCall. Args is the parsed argument
// expression as written: a TupleExpr for `f(a, b)`, or any other Expr
// for the syntactically legal but semantically narrower single-arg
// call form `f(a)`.
type ExprCallData struct {
	Func ExprID
	Args ExprID
}

// ExprUnaryData is the payload for ExprUnary.
type ExprUnaryData struct {
	Op    UnaryOp
	Right ExprID
}

// ExprBinaryData is the payload for ExprBinary.
type ExprBinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

// Exprs manages allocation of expression nodes, one arena per payload
// shape (teacher's internal/ast/exprs.go pattern).
type Exprs struct {
	Arena  *Arena[Expr]
	Idents *Arena[ExprIdentData]
	Lits   *Arena[ExprLitData]
	Tuples *Arena[ExprTupleData]
	Lists  *Arena[ExprListData]
	Funcs  *Arena[ExprFuncData]
	Calls  *Arena[ExprCallData]
	Unary  *Arena[ExprUnaryData]
	Binary *Arena[ExprBinaryData]
}

// NewExprs allocates an Exprs container with capacity hint capHint.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:  NewArena[Expr](capHint),
		Idents: NewArena[ExprIdentData](capHint),
		Lits:   NewArena[ExprLitData](capHint),
		Tuples: NewArena[ExprTupleData](capHint),
		Lists:  NewArena[ExprListData](capHint),
		Funcs:  NewArena[ExprFuncData](capHint),
		Calls:  NewArena[ExprCallData](capHint),
		Unary:  NewArena[ExprUnaryData](capHint),
		Binary: NewArena[ExprBinaryData](capHint),
	}
}

// Get returns the expression node for id.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) new(kind ExprKind, pos source.Position, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: kind, Pos: pos, Payload: payload}))
}

// NewIdent creates an ExprIdent node.
func (e *Exprs) NewIdent(pos source.Position, name string) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, pos, PayloadID(payload))
}

// Ident returns the ExprIdent payload for id.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	n := e.Get(id)
	if n == nil || n.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(n.Payload)), true
}

// NewLit creates an ExprLit node.
func (e *Exprs) NewLit(pos source.Position, kind LitKind, raw string, value any) ExprID {
	payload := e.Lits.Allocate(ExprLitData{Lit: kind, Raw: raw, Value: value})
	return e.new(ExprLit, pos, PayloadID(payload))
}

// Lit returns the ExprLit payload for id.
func (e *Exprs) Lit(id ExprID) (*ExprLitData, bool) {
	n := e.Get(id)
	if n == nil || n.Kind != ExprLit {
		return nil, false
	}
	return e.Lits.Get(uint32(n.Payload)), true
}

// NewTuple creates an ExprTuple node.
func (e *Exprs) NewTuple(pos source.Position, items []ExprID) ExprID {
	payload := e.Tuples.Allocate(ExprTupleData{Items: items})
	return e.new(ExprTuple, pos, PayloadID(payload))
}

// Tuple returns the ExprTuple payload for id.
func (e *Exprs) Tuple(id ExprID) (*ExprTupleData, bool) {
	n := e.Get(id)
	if n == nil || n.Kind != ExprTuple {
		return nil, false
	}
	return e.Tuples.Get(uint32(n.Payload)), true
}

// NewList creates an ExprList node.
func (e *Exprs) NewList(pos source.Position, elems []ExprID) ExprID {
	payload := e.Lists.Allocate(ExprListData{Elems: elems})
	return e.new(ExprList, pos, PayloadID(payload))
}

// List returns the ExprList payload for id.
func (e *Exprs) List(id ExprID) (*ExprListData, bool) {
	n := e.Get(id)
	if n == nil || n.Kind != ExprList {
		return nil, false
	}
	return e.Lists.Get(uint32(n.Payload)), true
}

// NewFunc creates an ExprFunc node.
func (e *Exprs) NewFunc(pos source.Position, params []FuncParam, returnType TypeID, body Block) ExprID {
	payload := e.Funcs.Allocate(ExprFuncData{Params: params, ReturnType: returnType, Body: body})
	return e.new(ExprFunc, pos, PayloadID(payload))
}

// Func returns the ExprFunc payload for id.
func (e *Exprs) Func(id ExprID) (*ExprFuncData, bool) {
	n := e.Get(id)
	if n == nil || n.Kind != ExprFunc {
		return nil, false
	}
	return e.Funcs.Get(uint32(n.Payload)), true
}

// NewCall creates an ExprCall node.
func (e *Exprs) NewCall(pos source.Position, fn, args ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{Func: fn, Args: args})
	return e.new(ExprCall, pos, PayloadID(payload))
}

// Call returns the ExprCall payload for id.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	n := e.Get(id)
	if n == nil || n.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(n.Payload)), true
}

// NewUnary creates an ExprUnary node.
func (e *Exprs) NewUnary(pos source.Position, op UnaryOp, right ExprID) ExprID {
	payload := e.Unary.Allocate(ExprUnaryData{Op: op, Right: right})
	return e.new(ExprUnary, pos, PayloadID(payload))
}

// Unary returns the ExprUnary payload for id.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	n := e.Get(id)
	if n == nil || n.Kind != ExprUnary {
		return nil, false
	}
	return e.Unary.Get(uint32(n.Payload)), true
}

// NewBinary creates an ExprBinary node.
func (e *Exprs) NewBinary(pos source.Position, op BinaryOp, left, right ExprID) ExprID {
	payload := e.Binary.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, pos, PayloadID(payload))
}

// Binary returns the ExprBinary payload for id.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	n := e.Get(id)
	if n == nil || n.Kind != ExprBinary {
		return nil, false
	}
	return e.Binary.Get(uint32(n.Payload)), true
}
