package ast

// Builder bundles the arenas a single parse needs. One Builder per
// parsed file, grounded on the teacher's internal/ast/builder.go.
type Builder struct {
	Exprs *Exprs
	Types *Types
}

// NewBuilder allocates a Builder with default arena capacities.
func NewBuilder() *Builder {
	return &Builder{
		Exprs: NewExprs(0),
		Types: NewTypes(0),
	}
}
