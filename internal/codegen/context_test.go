package codegen

import (
	"testing"

	"loom/internal/ast"
)

func TestContext_PushNameAtModuleScopeUsesBareName(t *testing.T) {
	c := NewContext()
	name := c.PushName("main")
	if name != "main" {
		t.Fatalf("PushName at module scope = %q, want %q", name, "main")
	}
	got, ok := c.GetGlobalWATName("main")
	if !ok || got != "main" {
		t.Fatalf("GetGlobalWATName(main) = (%q, %v)", got, ok)
	}
}

func TestContext_PushNameInsideBlockAppendsScopeID(t *testing.T) {
	c := NewContext()
	c.EnterFunction()
	defer c.LeaveFunction()
	c.EnterBlock()
	defer c.LeaveBlock()

	name := c.PushName("x")
	if name != "x/1" {
		t.Fatalf("PushName inside block = %q, want %q", name, "x/1")
	}
	got, ok := c.GetLocalWATName("x")
	if !ok || got != "x/1" {
		t.Fatalf("GetLocalWATName(x) = (%q, %v)", got, ok)
	}
}

func TestContext_ShadowingProducesDistinctNamesPerScopeID(t *testing.T) {
	c := NewContext()
	c.EnterFunction()
	defer c.LeaveFunction()

	c.EnterBlock()
	outer := c.PushName("x")
	c.LeaveBlock()

	c.EnterBlock()
	inner := c.PushName("x")
	c.LeaveBlock()

	if outer == inner {
		t.Fatalf("expected distinct names across sibling blocks, both got %q", outer)
	}
	if outer != "x/1" || inner != "x/2" {
		t.Fatalf("got outer=%q inner=%q, want x/1 and x/2", outer, inner)
	}
}

func TestContext_InnermostLocalShadowsOuter(t *testing.T) {
	c := NewContext()
	c.EnterFunction()
	defer c.LeaveFunction()
	c.PushName("x") // function-scope x

	c.EnterBlock()
	defer c.LeaveBlock()
	inner := c.PushName("x")

	got, ok := c.GetLocalWATName("x")
	if !ok || got != inner {
		t.Fatalf("GetLocalWATName(x) = (%q, %v), want innermost binding %q", got, ok, inner)
	}
}

func TestContext_AliasTransparency(t *testing.T) {
	c := NewContext()
	fName := c.PushName("f")
	c.PushAlias("g", "f")

	got, ok := c.GetGlobalWATName("g")
	if !ok || got != fName {
		t.Fatalf("GetGlobalWATName(g) = (%q, %v), want alias target %q", got, ok, fName)
	}
}

func TestContext_PushInitializerOrderPreserved(t *testing.T) {
	c := NewContext()
	a := c.PushName("a")
	b := c.PushName("b")
	c.PushInitializer(a, ast.ExprID(1))
	c.PushInitializer(b, ast.ExprID(2))

	inits := c.GlobalInitializers()
	if len(inits) != 2 || inits[0].Name != a || inits[1].Name != b {
		t.Fatalf("unexpected initializer order: %+v", inits)
	}
}

func TestContext_GetLocalWATNameMissReturnsFalse(t *testing.T) {
	c := NewContext()
	if _, ok := c.GetLocalWATName("nope"); ok {
		t.Fatalf("expected miss for undeclared local")
	}
}

func TestContext_GetGlobalWATNameMissReturnsFalse(t *testing.T) {
	c := NewContext()
	if _, ok := c.GetGlobalWATName("nope"); ok {
		t.Fatalf("expected miss for undeclared global")
	}
}

// Documents the alias-cross-function-lookup behavior: an alias frame
// from a function that is still open on the emission
// stack (e.g. an outer function whose nested block is mid-emission) is
// visible to GetGlobalWATName regardless of which frame pushed it.
func TestContext_AliasLookupWalksEntireAliasStack(t *testing.T) {
	c := NewContext()
	fName := c.PushName("f")

	c.EnterFunction()
	defer c.LeaveFunction()
	c.PushAlias("g", "f") // alias recorded in the function's own frame

	got, ok := c.GetGlobalWATName("g")
	if !ok || got != fName {
		t.Fatalf("GetGlobalWATName(g) = (%q, %v), want %q", got, ok, fName)
	}
}
