// Package codegen holds the emitter's scope/alias/initializer bookkeeping.
// Context is mutated by exactly one emission pass and never read
// concurrently.
package codegen

import (
	"fmt"

	"loom/internal/ast"
)

// Initializer is one deferred global initializer, recorded in
// first-declaration order.
type Initializer struct {
	Name string
	Expr ast.ExprID
}

// Context is the mutable per-module codegen state: scope/alias stacks
// plus the deferred global-initializer list. One Context is created per
// emitted module and lives for the entire emission pass.
type Context struct {
	globalNameMap map[string]string

	// localNameMaps and aliasMaps are parallel stacks: pushed and popped
	// together so they always share depth within a function.
	localNameMaps []map[string]string
	aliasMaps     []map[string]string

	scopeIDStack []int
	incrScopeID  int

	globalInitializers []Initializer
}

// NewContext returns a fresh Context with the single always-present
// module-scope alias frame.
func NewContext() *Context {
	return &Context{
		globalNameMap: make(map[string]string),
		aliasMaps:     []map[string]string{make(map[string]string)},
	}
}

// EnterFunction pushes fresh name and alias frames and resets the
// scope-ID counter and stack, since function bodies number their scope
// IDs independently.
func (c *Context) EnterFunction() {
	c.localNameMaps = append(c.localNameMaps, make(map[string]string))
	c.aliasMaps = append(c.aliasMaps, make(map[string]string))
	c.scopeIDStack = nil
	c.incrScopeID = 0
}

// LeaveFunction pops the frames EnterFunction pushed.
func (c *Context) LeaveFunction() {
	c.localNameMaps = c.localNameMaps[:len(c.localNameMaps)-1]
	c.aliasMaps = c.aliasMaps[:len(c.aliasMaps)-1]
}

// EnterBlock pushes fresh name and alias frames plus a new unique scope
// ID.
func (c *Context) EnterBlock() {
	c.localNameMaps = append(c.localNameMaps, make(map[string]string))
	c.aliasMaps = append(c.aliasMaps, make(map[string]string))
	c.incrScopeID++
	c.scopeIDStack = append(c.scopeIDStack, c.incrScopeID)
}

// LeaveBlock pops both frames and the scope ID EnterBlock pushed.
func (c *Context) LeaveBlock() {
	c.localNameMaps = c.localNameMaps[:len(c.localNameMaps)-1]
	c.aliasMaps = c.aliasMaps[:len(c.aliasMaps)-1]
	c.scopeIDStack = c.scopeIDStack[:len(c.scopeIDStack)-1]
}

// PushName binds origName in the innermost active frame (local if any,
// else global), using origName at function/module scope and
// origName/scopeID inside nested blocks, guaranteeing uniqueness under
// shadowing.
func (c *Context) PushName(origName string) string {
	assemblyName := origName
	if len(c.scopeIDStack) > 0 {
		assemblyName = fmt.Sprintf("%s/%d", origName, c.scopeIDStack[len(c.scopeIDStack)-1])
	}
	if len(c.localNameMaps) > 0 {
		c.localNameMaps[len(c.localNameMaps)-1][origName] = assemblyName
		return assemblyName
	}
	c.globalNameMap[origName] = assemblyName
	return assemblyName
}

// PushAlias records that from resolves (transparently) to the
// already-bound name to, in the innermost alias frame.
func (c *Context) PushAlias(from, to string) {
	c.aliasMaps[len(c.aliasMaps)-1][from] = to
}

// PushInitializer appends to the ordered deferred-initializer list.
// assemblyName must already be bound in globalNameMap.
func (c *Context) PushInitializer(assemblyName string, expr ast.ExprID) {
	c.globalInitializers = append(c.globalInitializers, Initializer{Name: assemblyName, Expr: expr})
}

// GlobalInitializers returns the deferred initializers in
// first-declaration order. Callers must not mutate the result.
func (c *Context) GlobalInitializers() []Initializer {
	return c.globalInitializers
}

// GetLocalWATName walks local frames innermost-first, returning the
// first hit.
func (c *Context) GetLocalWATName(origName string) (string, bool) {
	for i := len(c.localNameMaps) - 1; i >= 0; i-- {
		if name, ok := c.localNameMaps[i][origName]; ok {
			return name, true
		}
	}
	return "", false
}

// GetGlobalWATName walks alias frames innermost-first to resolve
// aliases — the first alias hit replaces the lookup key — then looks up
// the (possibly rewritten) key in the global name map.
//
// This walks the entire aliasMaps stack, including frames belonging to
// functions other than the one currently being emitted, rather than
// restricting the walk to the current function's frames plus the module
// frame (see DESIGN.md for why this is safe in practice: emission is
// sequential and a function's frames are popped before its sibling's
// frames are pushed).
func (c *Context) GetGlobalWATName(origName string) (string, bool) {
	key := origName
	for i := len(c.aliasMaps) - 1; i >= 0; i-- {
		if target, ok := c.aliasMaps[i][key]; ok {
			key = target
			break
		}
	}
	name, ok := c.globalNameMap[key]
	return name, ok
}
