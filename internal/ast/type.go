package ast

import "loom/internal/source"

// TypeKind tags a Type node variant.
type TypeKind uint8

const (
	// TypeInvalid marks an uninitialized type node.
	TypeInvalid TypeKind = iota
	// TypeInt is the simple int type.
	TypeInt
	// TypeFloat is the simple float type.
	TypeFloat
	// TypeStr is the simple string type.
	TypeStr
	// TypeBool is the simple boolean type.
	TypeBool
	// TypeChar is the simple char type.
	TypeChar
	// TypeVoid is the simple void type.
	TypeVoid
	// TypeList is `[ element ]`.
	TypeList
	// TypeTuple is `( items... )`, possibly empty.
	TypeTuple
	// TypeFunc is `param -> return`, right-associative.
	TypeFunc
)

func (k TypeKind) String() string {
	switch k {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeStr:
		return "string"
	case TypeBool:
		return "boolean"
	case TypeChar:
		return "char"
	case TypeVoid:
		return "void"
	case TypeList:
		return "list"
	case TypeTuple:
		return "tuple"
	case TypeFunc:
		return "func"
	default:
		return "invalid"
	}
}

// simpleTypeNames maps the identifier spellings the grammar accepts for
// a simple type name to their TypeKind. Used by the parser to recognize
// a simple type name, or reject an unknown one.
var simpleTypeNames = map[string]TypeKind{
	"int":     TypeInt,
	"float":   TypeFloat,
	"string":  TypeStr,
	"boolean": TypeBool,
	"char":    TypeChar,
	"void":    TypeVoid,
}

// SimpleTypeKind returns the TypeKind for a simple type name, and
// whether the name was recognized.
func SimpleTypeKind(name string) (TypeKind, bool) {
	k, ok := simpleTypeNames[name]
	return k, ok
}

// Type is a type-expression node.
type Type struct {
	Kind    TypeKind
	Pos     source.Position
	Payload PayloadID // meaningful for TypeList, TypeTuple, TypeFunc only
}

// TypeListData is the payload for TypeList.
type TypeListData struct {
	Element TypeID
}

// TypeTupleData is the payload for TypeTuple (Items may be empty).
type TypeTupleData struct {
	Items []TypeID
}

// TypeFuncData is the payload for TypeFunc (right-associative: Return
// may itself be a TypeFunc).
type TypeFuncData struct {
	Param  TypeID
	Return TypeID
}

// Types manages allocation of type nodes.
type Types struct {
	Arena  *Arena[Type]
	Lists  *Arena[TypeListData]
	Tuples *Arena[TypeTupleData]
	Funcs  *Arena[TypeFuncData]
}

// NewTypes allocates a Types container with capacity hint capHint.
func NewTypes(capHint uint) *Types {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Types{
		Arena:  NewArena[Type](capHint),
		Lists:  NewArena[TypeListData](capHint),
		Tuples: NewArena[TypeTupleData](capHint),
		Funcs:  NewArena[TypeFuncData](capHint),
	}
}

// Get returns the type node for id.
func (t *Types) Get(id TypeID) *Type {
	return t.Arena.Get(uint32(id))
}

func (t *Types) new(kind TypeKind, pos source.Position, payload PayloadID) TypeID {
	return TypeID(t.Arena.Allocate(Type{Kind: kind, Pos: pos, Payload: payload}))
}

// NewSimple creates a simple (non-compound) type node.
func (t *Types) NewSimple(kind TypeKind, pos source.Position) TypeID {
	return t.new(kind, pos, 0)
}

// NewList creates a TypeList node.
func (t *Types) NewList(pos source.Position, element TypeID) TypeID {
	payload := t.Lists.Allocate(TypeListData{Element: element})
	return t.new(TypeList, pos, PayloadID(payload))
}

// List returns the TypeList payload for id.
func (t *Types) List(id TypeID) (*TypeListData, bool) {
	n := t.Get(id)
	if n == nil || n.Kind != TypeList {
		return nil, false
	}
	return t.Lists.Get(uint32(n.Payload)), true
}

// NewTuple creates a TypeTuple node (items may be empty).
func (t *Types) NewTuple(pos source.Position, items []TypeID) TypeID {
	payload := t.Tuples.Allocate(TypeTupleData{Items: items})
	return t.new(TypeTuple, pos, PayloadID(payload))
}

// Tuple returns the TypeTuple payload for id.
func (t *Types) Tuple(id TypeID) (*TypeTupleData, bool) {
	n := t.Get(id)
	if n == nil || n.Kind != TypeTuple {
		return nil, false
	}
	return t.Tuples.Get(uint32(n.Payload)), true
}

// NewFunc creates a TypeFunc node.
func (t *Types) NewFunc(pos source.Position, param, ret TypeID) TypeID {
	payload := t.Funcs.Allocate(TypeFuncData{Param: param, Return: ret})
	return t.new(TypeFunc, pos, PayloadID(payload))
}

// Func returns the TypeFunc payload for id.
func (t *Types) Func(id TypeID) (*TypeFuncData, bool) {
	n := t.Get(id)
	if n == nil || n.Kind != TypeFunc {
		return nil, false
	}
	return t.Funcs.Get(uint32(n.Payload)), true
}
