package ast

import "loom/internal/source"

// Ident wraps a source identifier together with the position of its
// occurrence.
type Ident struct {
	Name string
	Pos  source.Position
}

// ImportElem is one imported member: `name` or `name as alias`.
type ImportElem struct {
	Name Ident
	As   *Ident // nil if no alias
}

// Import is a module import declaration. This node is purely syntactic:
// nothing in loom resolves the imported path to another compiled
// module or links it beyond parsing the declaration itself.
type Import struct {
	Pos   source.Position
	Path  ExprID // the ExprLit(LitStr) naming the module
	Elems []ImportElem
}

// Decl is a top-level or nested `let` binding.
type Decl struct {
	Pos  source.Position
	Name Ident
	Type TypeID // NoTypeID if the annotation was omitted
	Expr ExprID
}

// BlockItem is one element of a Block body: either a nested Decl or an
// Expr, in source order.
type BlockItem struct {
	IsDecl bool
	Decl   Decl
	Expr   ExprID
}

// Block is a function body: either brace-delimited, or a single
// expression body wrapped as one non-Decl item.
type Block struct {
	Pos        source.Position
	Bodies     []BlockItem
	ReturnVoid bool
}

// Program is the root AST node for one compiled file.
type Program struct {
	Imports []Import
	Decls   []Decl
}
