package emit

import (
	"strings"
	"testing"

	"loom/internal/ast"
	"loom/internal/lexer"
	"loom/internal/parser"
	"loom/internal/source"
)

func mustParse(t *testing.T, src string) (*ast.Program, *ast.Builder) {
	t.Helper()
	b := ast.NewBuilder()
	lx := lexer.New(source.FromBytes("test.lm", []byte(src)))
	prog, err := parser.Parse(lx, b)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return prog, b
}

// `let main = fn () int { }` exported as main emits a bare function
// with an unconditional return and an export clause — no globals, no
// start function, since the stubbed block body never populates locals.
func TestEmit_E2_EmptyExportedFunc(t *testing.T) {
	prog, b := mustParse(t, "let main = fn() int { }")
	mod, err := EmitModule(b, prog, "main")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `(module (func $main (result i32) (return)) (export "main" (func $main)))`
	if mod.Text != want {
		t.Fatalf("got %q, want %q", mod.Text, want)
	}
}

// `let x: int = 1 + 2 * 3` lowers the parse shape Add(1, Mul(2,3)) into
// the corresponding instruction sequence inside the synthesized start
// function.
func TestEmit_E1_DeferredArithmeticInitializer(t *testing.T) {
	prog, b := mustParse(t, "let x: int = 1 + 2 * 3\nlet main = fn() void { }")
	mod, err := EmitModule(b, prog, "main")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mod.Text, `(global $x (mut i32) 0)`) {
		t.Fatalf("expected mutable zero-initialized global $x, got %q", mod.Text)
	}
	wantStart := `(func $/start (i32.const 1) (i32.const 2) (i32.const 3) (i32.mul) (i32.add) (set_global $x))`
	if !strings.Contains(mod.Text, wantStart) {
		t.Fatalf("expected start body %q, got %q", wantStart, mod.Text)
	}
	if !strings.Contains(mod.Text, `(start $/start)`) {
		t.Fatalf("expected (start $/start) directive, got %q", mod.Text)
	}
}

// Two constant globals require no deferred initialization, so no
// start function is emitted.
func TestEmit_E3_ConstantGlobalsNeedNoStart(t *testing.T) {
	prog, b := mustParse(t, "let a: int = 1\nlet b: int = 2\nlet main = fn() void { }")
	mod, err := EmitModule(b, prog, "main")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(mod.Text, "/start") {
		t.Fatalf("expected no start function, got %q", mod.Text)
	}
	if !strings.Contains(mod.Text, `(global $a i32 1)`) || !strings.Contains(mod.Text, `(global $b i32 2)`) {
		t.Fatalf("expected two constant globals, got %q", mod.Text)
	}
}

// `b`'s initializer references `a`, so only `b` is deferred; `a`
// stays a plain constant global.
func TestEmit_E4_OnlyNonConstantInitializerIsDeferred(t *testing.T) {
	prog, b := mustParse(t, "let a: int = 1\nlet b: int = a + 1\nlet main = fn() void { }")
	mod, err := EmitModule(b, prog, "main")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mod.Text, `(global $a i32 1)`) {
		t.Fatalf("expected constant global $a, got %q", mod.Text)
	}
	if !strings.Contains(mod.Text, `(global $b (mut i32) 0)`) {
		t.Fatalf("expected deferred global $b, got %q", mod.Text)
	}
	wantStart := `(func $/start (get_global $a) (i32.const 1) (i32.add) (set_global $b))`
	if !strings.Contains(mod.Text, wantStart) {
		t.Fatalf("expected start body %q, got %q", wantStart, mod.Text)
	}
}

// Alias transparency: `let g = f` with f of function type never
// copies; references to g call f directly.
func TestEmit_AliasTransparency(t *testing.T) {
	prog, b := mustParse(t, "let f = fn() void { }\nlet g = f\nlet main = fn() void { }")

	// No type-checker runs in this test harness; attach the resolved
	// type the emitter's alias branch depends on directly, the way a
	// real type-checker would before codegen runs.
	gDecl := prog.Decls[1]
	identNode := b.Exprs.Get(gDecl.Expr)
	funcType := b.Types.NewSimple(ast.TypeFunc, source.Position{})
	identNode.ResolvedType = &funcType

	mod, err := EmitModule(b, prog, "main")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(mod.Text, "$g") {
		t.Fatalf("alias g must never be emitted as its own global/func, got %q", mod.Text)
	}
	if !strings.Contains(mod.Text, `(func $f`) {
		t.Fatalf("expected f's function definition, got %q", mod.Text)
	}
}

// Calling through an alias emits a call to the aliased target.
func TestEmit_CallThroughAlias(t *testing.T) {
	prog, b := mustParse(t, "let f = fn() void { }\nlet g = f\nlet main = fn() void g()")

	gDecl := prog.Decls[1]
	identNode := b.Exprs.Get(gDecl.Expr)
	funcType := b.Types.NewSimple(ast.TypeFunc, source.Position{})
	identNode.ResolvedType = &funcType

	mod, err := EmitModule(b, prog, "main")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mod.Text, `(call $f)`) {
		t.Fatalf("expected call through alias to emit (call $f), got %q", mod.Text)
	}
}

// A call whose callee is not a bare identifier is silently skipped,
// with a soft diagnostic recording the limitation.
func TestEmit_NonIdentifierCalleeIsSkipped(t *testing.T) {
	prog, b := mustParse(t, "let main = fn() void fn() void { }()")
	mod, err := EmitModule(b, prog, "main")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(mod.Text, "call") {
		t.Fatalf("expected call to be skipped entirely, got %q", mod.Text)
	}
	if mod.Diags.Len() == 0 {
		t.Fatalf("expected a soft diagnostic for the skipped call")
	}
}

// Shadowing: with block bodies stubbed, the shadowing this grammar can
// express is a function parameter shadowing a global of the same name;
// the expression body's reference must resolve to the parameter through
// get_local. See internal/codegen's shadowing tests for the scope-ID
// mechanics of nested blocks.
func TestEmit_FunctionParamsShadowGlobalsByLocalLookupPriority(t *testing.T) {
	prog, b := mustParse(t, "let x: int = 1\nlet main = fn(x int) int x")
	mod, err := EmitModule(b, prog, "main")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mod.Text, `(func $main (param $x i32) (result i32) (get_local $x) (return))`) {
		t.Fatalf("expected param x to shadow global x via get_local, got %q", mod.Text)
	}
}

// Unknown export name is a usage error, not a panic.
func TestEmit_UnknownExportNameErrors(t *testing.T) {
	prog, b := mustParse(t, "let main = fn() void { }")
	if _, err := EmitModule(b, prog, "nope"); err == nil {
		t.Fatalf("expected an error for an unresolvable export name")
	}
}
