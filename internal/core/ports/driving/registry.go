package driving

import (
	"context"

	"github.com/orgair-labs/orgair-cli/internal/core/domain"
)

// RegistryService owns the company and calibration collections and the
// referential integrity between them. Companies reference calibrations by
// sector ID only (a soft foreign key); this service is the one place that
// resolves it.
type RegistryService interface {
	// CreateCompany promotes a validated CompanyCreate to a full Company,
	// assigning identity and timestamps, and stores it.
	// Returns domain.ErrNotFound when the referenced sector calibration
	// is not registered.
	CreateCompany(ctx context.Context, cc domain.CompanyCreate) (domain.Company, error)

	// GetCompany retrieves a company by ID.
	GetCompany(ctx context.Context, id string) (*domain.Company, error)

	// ListCompanies returns all registered companies.
	ListCompanies(ctx context.Context) ([]domain.Company, error)

	// RegisterCalibration stores a validated sector calibration.
	// Returns domain.ErrAlreadyExists when the sector is registered and
	// replace is false.
	RegisterCalibration(ctx context.Context, sc domain.SectorCalibration, replace bool) error

	// GetCalibration retrieves a calibration by sector ID.
	GetCalibration(ctx context.Context, sectorID string) (*domain.SectorCalibration, error)

	// ListCalibrations returns all registered calibrations.
	ListCalibrations(ctx context.Context) ([]domain.SectorCalibration, error)
}
