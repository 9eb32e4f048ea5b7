package source

import "testing"

func TestFromBytes_NormalizesCRLFAndBOM(t *testing.T) {
	bom := []byte{0xEF, 0xBB, 0xBF}
	content := append(bom, []byte("let x = 1\r\nlet y = 2\r\n")...)

	f := FromBytes("virtual.lm", content)

	want := "let x = 1\nlet y = 2\n"
	if string(f.Content) != want {
		t.Fatalf("Content = %q, want %q", f.Content, want)
	}
}

func TestFromBytes_HashIsDeterministic(t *testing.T) {
	a := FromBytes("a.lm", []byte("let x = 1"))
	b := FromBytes("b.lm", []byte("let x = 1"))

	if a.Hash != b.Hash {
		t.Fatalf("expected identical content to hash identically")
	}
}

func TestPosition_String(t *testing.T) {
	p := Position{Row: 3, Column: 7}
	if got := p.String(); got != "3:7" {
		t.Fatalf("String() = %q, want %q", got, "3:7")
	}
}
