package driven

import (
	"context"

	"github.com/orgair-labs/orgair-cli/internal/core/domain"
)

// CompanyStore provides company persistence.
// There is deliberately no Delete: the contract defines no deletion path
// for companies.
type CompanyStore interface {
	// Save stores or updates a company.
	Save(ctx context.Context, company domain.Company) error

	// Get retrieves a company by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Company, error)

	// List returns all companies.
	List(ctx context.Context) ([]domain.Company, error)
}

// CalibrationStore provides sector calibration persistence, keyed by
// sector ID.
type CalibrationStore interface {
	// Save stores or updates a calibration.
	Save(ctx context.Context, calibration domain.SectorCalibration) error

	// Get retrieves a calibration by sector ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, sectorID string) (*domain.SectorCalibration, error)

	// List returns all calibrations.
	List(ctx context.Context) ([]domain.SectorCalibration, error)
}
