package interchange

import (
	"testing"

	"loom/internal/ast"
	"loom/internal/emit"
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

// Round-tripping a program through Encode/DecodeProgram and re-emitting
// it must produce byte-identical WAT to emitting the original parse,
// since every ExprID/TypeID the decoded Program carries must still
// index into the decoded Builder's matching arena slot.
func TestProgramRoundTrip(t *testing.T) {
	src := "let x: int = 1 + 2 * 3\nlet main = fn() void { }"
	prog, b := mustParse(t, src)

	data, err := EncodeProgram(b, prog)
	if err != nil {
		t.Fatalf("EncodeProgram: %v", err)
	}

	gotBuilder, gotProg, err := DecodeProgram(data)
	if err != nil {
		t.Fatalf("DecodeProgram: %v", err)
	}

	wantMod, err := emit.EmitModule(b, prog, "main")
	if err != nil {
		t.Fatalf("EmitModule(original): %v", err)
	}
	gotMod, err := emit.EmitModule(gotBuilder, gotProg, "main")
	if err != nil {
		t.Fatalf("EmitModule(round-tripped): %v", err)
	}
	if gotMod.Text != wantMod.Text {
		t.Fatalf("round-tripped emission = %q, want %q", gotMod.Text, wantMod.Text)
	}
}

func TestModuleRoundTrip(t *testing.T) {
	want := Module{
		Text:       `(module (func $main (return)) (export "main" (func $main)))`,
		ExportName: "main",
	}
	data, err := EncodeModule(want)
	if err != nil {
		t.Fatalf("EncodeModule: %v", err)
	}
	got, err := DecodeModule(data)
	if err != nil {
		t.Fatalf("DecodeModule: %v", err)
	}
	if got.Text != want.Text || got.ExportName != want.ExportName {
		t.Fatalf("DecodeModule = %+v, want %+v", got, want)
	}
}
