// Package source loads source files and tracks human-readable positions.
//
// Unlike a byte-offset/span model, loom's AST and token nodes carry
// (row, column) coordinates directly, so this package has no span type
// or line-index resolver: the lexer tracks position incrementally as it
// scans.
package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Position is a 1-based (row, column) source coordinate.
type Position struct {
	Row    uint32
	Column uint32
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}

// File holds the normalized content of a single source file.
type File struct {
	Path    string
	Content []byte
	Hash    [32]byte
}

// Load reads a file from disk, normalizing BOM and CRLF the way the
// teacher's FileSet.Load does, and returns its File record.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content, _ = removeBOM(content)
	content, _ = normalizeCRLF(content)
	return &File{
		Path:    normalizePath(path),
		Content: content,
		Hash:    sha256.Sum256(content),
	}, nil
}

// FromBytes builds a virtual File (e.g. stdin, test fixtures) from memory.
func FromBytes(name string, content []byte) *File {
	content, _ = removeBOM(content)
	content, _ = normalizeCRLF(content)
	return &File{
		Path:    name,
		Content: content,
		Hash:    sha256.Sum256(content),
	}
}

func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}
	out := make([]byte, 0, len(content))
	changed := false
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i++
			changed = true
		} else {
			out = append(out, content[i])
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}
	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
