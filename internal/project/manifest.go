package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest describes a loom.toml's [package] section: loom compiles a
// single compilation unit, so this trims the teacher's multi-module
// [modules] dependency graph down to one package.
type Manifest struct {
	Name   string `toml:"name"`
	Entry  string `toml:"entry"`
	Export string `toml:"export"`
}

var (
	// ErrPackageSectionMissing indicates that [package] is missing from the manifest.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrEntryMissing indicates that [package].entry is missing or empty.
	ErrEntryMissing = errors.New("missing [package].entry")
	// ErrExportMissing indicates that [package].export is missing or empty.
	ErrExportMissing = errors.New("missing [package].export")
)

type manifestFile struct {
	Package struct {
		Name   string `toml:"name"`
		Entry  string `toml:"entry"`
		Export string `toml:"export"`
	} `toml:"package"`
}

// LoadManifest parses a loom.toml file's [package] section, grounded on
// the teacher's LoadModuleManifest validation shape.
func LoadManifest(path string) (Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	entry := strings.TrimSpace(cfg.Package.Entry)
	if !meta.IsDefined("package", "entry") || entry == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrEntryMissing)
	}
	export := strings.TrimSpace(cfg.Package.Export)
	if !meta.IsDefined("package", "export") || export == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrExportMissing)
	}
	return Manifest{
		Name:   strings.TrimSpace(cfg.Package.Name),
		Entry:  entry,
		Export: export,
	}, nil
}

// EntryPath resolves the manifest's entry file against the directory
// containing the manifest itself. The result is absolute only when
// manifestPath is (as the path FindManifest returns is).
func (m Manifest) EntryPath(manifestPath string) string {
	dir := filepath.Dir(manifestPath)
	return filepath.Join(dir, filepath.FromSlash(m.Entry))
}

// Load finds and parses the nearest loom.toml starting from startDir,
// returning the manifest, its path, and whether one was found at all.
func Load(startDir string) (manifest Manifest, manifestPath string, ok bool, err error) {
	manifestPath, ok, err = FindManifest(startDir)
	if err != nil || !ok {
		return Manifest{}, "", ok, err
	}
	manifest, err = LoadManifest(manifestPath)
	if err != nil {
		return Manifest{}, manifestPath, true, err
	}
	return manifest, manifestPath, true, nil
}
