package ast

// ExprID identifies an expression node allocated in an Exprs arena.
// The zero value, NoExprID, means "absent".
type ExprID uint32

// NoExprID is the zero ExprID, meaning "no expression".
const NoExprID ExprID = 0

// TypeID identifies a type node allocated in a Types arena.
type TypeID uint32

// NoTypeID is the zero TypeID, meaning "no type annotation".
const NoTypeID TypeID = 0

// PayloadID indexes into whichever per-kind payload arena a node's Kind
// says to look in (teacher's ast.PayloadID pattern).
type PayloadID uint32
