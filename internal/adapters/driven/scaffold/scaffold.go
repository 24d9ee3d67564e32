// Package scaffold creates the on-disk workspace layout used by an
// assessment project: calibration data, schema exports, docs and test
// directories.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// workspaceDirs is the directory tree relative to the workspace root.
var workspaceDirs = []string{
	"api",
	"api/routes",
	"services",
	"services/scoring",
	"services/extraction",
	"services/retrieval",
	"services/value_creation",
	"services/monitoring",
	"services/portfolio",
	"schemas",
	"schemas/v1",
	"schemas/v1/exports",
	"db",
	"pipelines",
	"config",
	"tests/unit",
	"tests/integration",
	"tests/e2e",
	"data/taxonomies",
	"data/sector_calibrations",
	"data/sample_companies",
	"docs/api",
	"docs/architecture",
	"scripts",
	"docker",
	"dags",
}

// keepDirs are empty by design and get a .gitkeep so the tree survives
// version control.
var keepDirs = []string{
	"data/taxonomies",
	"data/sector_calibrations",
	"data/sample_companies",
	"schemas/v1/exports",
}

// Create builds the workspace tree under base and returns the created
// directories in creation order. Existing directories are left alone, so
// Create is safe to run repeatedly.
func Create(base string) ([]string, error) {
	if base == "" {
		base = "."
	}

	created := make([]string, 0, len(workspaceDirs))
	for _, dir := range workspaceDirs {
		path := filepath.Join(base, dir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
		created = append(created, path)
	}

	for _, dir := range keepDirs {
		keep := filepath.Join(base, dir, ".gitkeep")
		if _, err := os.Stat(keep); err == nil {
			continue
		}
		if err := os.WriteFile(keep, nil, 0644); err != nil {
			return nil, fmt.Errorf("create %s: %w", keep, err)
		}
	}

	return created, nil
}

// CalibrationDir returns the calibration data directory for a workspace.
func CalibrationDir(base string) string {
	return filepath.Join(base, "data", "sector_calibrations")
}

// SchemaExportDir returns the schema export directory for a workspace.
func SchemaExportDir(base string) string {
	return filepath.Join(base, "schemas", "v1", "exports")
}
