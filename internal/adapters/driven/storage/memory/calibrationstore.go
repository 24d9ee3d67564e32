package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/orgair-labs/orgair-cli/internal/core/domain"
	"github.com/orgair-labs/orgair-cli/internal/core/ports/driven"
)

// Ensure CalibrationStore implements the interface.
var _ driven.CalibrationStore = (*CalibrationStore)(nil)

// CalibrationStore is an in-memory implementation of
// driven.CalibrationStore, keyed by sector ID.
type CalibrationStore struct {
	mu           sync.RWMutex
	calibrations map[string]domain.SectorCalibration
}

// NewCalibrationStore creates a new in-memory calibration store.
func NewCalibrationStore() *CalibrationStore {
	return &CalibrationStore{
		calibrations: make(map[string]domain.SectorCalibration),
	}
}

// Save stores or updates a calibration.
func (s *CalibrationStore) Save(_ context.Context, calibration domain.SectorCalibration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calibrations[calibration.SectorID] = calibration
	return nil
}

// Get retrieves a calibration by sector ID.
func (s *CalibrationStore) Get(_ context.Context, sectorID string) (*domain.SectorCalibration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	calibration, ok := s.calibrations[sectorID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &calibration, nil
}

// List returns all calibrations, ordered by sector ID for stable output.
func (s *CalibrationStore) List(_ context.Context) ([]domain.SectorCalibration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.SectorCalibration, 0, len(s.calibrations))
	for _, calibration := range s.calibrations {
		result = append(result, calibration)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SectorID < result[j].SectorID
	})
	return result, nil
}
