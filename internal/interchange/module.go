package interchange

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"loom/internal/diag"
)

// Module is the interchange payload for one emitted WAT module: its
// text, the export name it was built for, and the soft diagnostics the
// emit pass collected.
type Module struct {
	Text        string
	ExportName  string
	Diagnostics []diag.Diagnostic
}

// EncodeModule serializes an emitted module for the CLI's --emit-module
// dump flag.
func EncodeModule(m Module) ([]byte, error) {
	data, err := msgpack.Marshal(&m)
	if err != nil {
		return nil, fmt.Errorf("interchange: failed to encode module: %w", err)
	}
	return data, nil
}

// DecodeModule deserializes a payload produced by EncodeModule.
func DecodeModule(data []byte) (Module, error) {
	var m Module
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return Module{}, fmt.Errorf("interchange: failed to decode module: %w", err)
	}
	return m, nil
}
