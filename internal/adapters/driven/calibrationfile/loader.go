// Package calibrationfile loads sector calibrations from TOML files and
// watches a calibration directory for changes.
//
// Each file holds one calibration. Scores and weights may be written as
// TOML strings ("0.20") to keep them exact; plain floats are accepted too.
package calibrationfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/orgair-labs/orgair-cli/internal/core/domain"
)

const fileExt = ".toml"

// Load reads and validates a single calibration file.
func Load(path string) (domain.SectorCalibration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.SectorCalibration{}, fmt.Errorf("read calibration file: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return domain.SectorCalibration{}, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	sc, err := domain.NewSectorCalibration(normalize(raw))
	if err != nil {
		return domain.SectorCalibration{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return sc, nil
}

// LoadDir reads every calibration file in a directory, in name order.
// The first invalid file aborts the load so a partially bad directory is
// never half-applied.
func LoadDir(dir string) ([]domain.SectorCalibration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read calibration dir: %w", err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isCalibrationFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	calibrations := make([]domain.SectorCalibration, 0, len(paths))
	for _, path := range paths {
		sc, err := Load(path)
		if err != nil {
			return nil, err
		}
		calibrations = append(calibrations, sc)
	}
	return calibrations, nil
}

// isCalibrationFile filters out hidden files and foreign extensions.
func isCalibrationFile(name string) bool {
	return !strings.HasPrefix(name, ".") && strings.EqualFold(filepath.Ext(name), fileExt)
}

// normalize converts TOML-specific value types into the forms the entity
// constructors coerce. TOML local dates become UTC instants and nested
// tables stay as plain maps.
func normalize(raw map[string]any) domain.Record {
	rec := make(domain.Record, len(raw))
	for key, value := range raw {
		rec[key] = normalizeValue(value)
	}
	return rec
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case toml.LocalDate:
		return t.AsTime(time.UTC)
	case toml.LocalDateTime:
		return t.AsTime(time.UTC)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeValue(val)
		}
		return out
	default:
		return v
	}
}
