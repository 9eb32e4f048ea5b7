package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is a generic typed arena for allocating AST nodes. Grounded on
// the teacher's internal/ast/arena.go: a 1-based index lets the zero
// value of an ID mean "absent" without an extra sentinel field.
type Arena[T any] struct {
	data []*T
}

// NewArena creates an Arena with capacity capHint (a hint, not a limit).
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{data: make([]*T, 0, capHint)}
}

// Allocate appends a value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	elem := new(T)
	*elem = value
	a.data = append(a.data, elem)
	return a.Len()
}

// Get returns a pointer to the element at the given 1-based index, or
// nil if index is 0.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 {
		return nil
	}
	return a.data[index-1]
}

// All returns a copy of every element in the arena, in allocation order
// (1-based ID i is at index i-1). Used by internal/interchange to
// flatten a Builder for serialization.
func (a *Arena[T]) All() []T {
	out := make([]T, len(a.data))
	for i, p := range a.data {
		out[i] = *p
	}
	return out
}

// Len returns the number of elements in the arena.
func (a *Arena[T]) Len() uint32 {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("arena len overflow: %w", err))
	}
	return n
}
