package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestFileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Manifest
		wantErr error
	}{
		{
			name: "complete",
			body: "[package]\nname = \"hello\"\nentry = \"main.lm\"\nexport = \"main\"\n",
			want: Manifest{Name: "hello", Entry: "main.lm", Export: "main"},
		},
		{
			name:    "missing package section",
			body:    "name = \"hello\"\n",
			wantErr: ErrPackageSectionMissing,
		},
		{
			name:    "missing entry",
			body:    "[package]\nname = \"hello\"\nexport = \"main\"\n",
			wantErr: ErrEntryMissing,
		},
		{
			name:    "missing export",
			body:    "[package]\nname = \"hello\"\nentry = \"main.lm\"\n",
			wantErr: ErrExportMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeManifest(t, dir, tt.body)
			got, err := LoadManifest(path)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error wrapping %v, got nil", tt.wantErr)
				}
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error wrapping %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadManifest returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("LoadManifest = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFindManifestWalksUpToParent(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"hello\"\nentry = \"main.lm\"\nexport = \"main\"\n")

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	path, ok, err := FindManifest(nested)
	if err != nil {
		t.Fatalf("FindManifest returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected to find manifest walking up from %q", nested)
	}
	wantPath := filepath.Join(root, ManifestFileName)
	if path != wantPath {
		t.Fatalf("FindManifest path = %q, want %q", path, wantPath)
	}
}

func TestFindManifestNotFound(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := FindManifest(dir)
	if err != nil {
		t.Fatalf("FindManifest returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected no manifest to be found in an empty directory")
	}
}

func TestManifestEntryPath(t *testing.T) {
	m := Manifest{Name: "hello", Entry: "main.lm", Export: "main"}
	got := m.EntryPath(filepath.Join("proj", "loom.toml"))
	want := filepath.Join("proj", "main.lm")
	if got != want {
		t.Fatalf("EntryPath = %q, want %q", got, want)
	}
}
