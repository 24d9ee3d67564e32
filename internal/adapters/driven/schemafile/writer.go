// Package schemafile persists exported JSON Schema documents to disk.
package schemafile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/orgair-labs/orgair-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.SchemaWriter = (*Writer)(nil)

// Writer writes schema documents into a directory as <name>_v1.json.
type Writer struct {
	dir string
}

// NewWriter creates a writer targeting the given directory. A relative
// default of schemas/v1/exports keeps exports inside a project tree.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = filepath.Join("schemas", "v1", "exports")
	}
	return &Writer{dir: dir}
}

// Write stores the schema bytes and returns the written path.
func (w *Writer) Write(name string, data []byte) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("create schema dir: %w", err)
	}
	path := filepath.Join(w.dir, name+"_v1.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write schema: %w", err)
	}
	return path, nil
}
