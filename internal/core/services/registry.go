package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/orgair-labs/orgair-cli/internal/core/domain"
	"github.com/orgair-labs/orgair-cli/internal/core/ports/driven"
	"github.com/orgair-labs/orgair-cli/internal/core/ports/driving"
	"github.com/orgair-labs/orgair-cli/internal/logger"
)

// Ensure RegistryService implements the interface.
var _ driving.RegistryService = (*RegistryService)(nil)

// RegistryService owns the company and calibration collections.
// It performs the single impure step of company creation (assigning the
// company ID and timestamps) and enforces the soft foreign key from
// Company.SectorID to SectorCalibration.SectorID, which the value objects
// themselves deliberately do not check.
type RegistryService struct {
	companies    driven.CompanyStore
	calibrations driven.CalibrationStore
	clock        driven.Clock
}

// NewRegistryService creates a registry over the given stores.
func NewRegistryService(companies driven.CompanyStore, calibrations driven.CalibrationStore, clock driven.Clock) *RegistryService {
	return &RegistryService{
		companies:    companies,
		calibrations: calibrations,
		clock:        clock,
	}
}

// CreateCompany promotes a validated CompanyCreate to a full Company and
// stores it. The referenced sector calibration must already be registered.
func (s *RegistryService) CreateCompany(ctx context.Context, cc domain.CompanyCreate) (domain.Company, error) {
	if _, err := s.calibrations.Get(ctx, cc.SectorID); err != nil {
		return domain.Company{}, fmt.Errorf("sector calibration %q: %w", cc.SectorID, err)
	}

	company := domain.PromoteCompany(cc, uuid.NewString(), s.clock.Now().UTC())
	if err := s.companies.Save(ctx, company); err != nil {
		return domain.Company{}, fmt.Errorf("save company: %w", err)
	}

	logger.Debug("company %s created in sector %s", company.CompanyID, company.SectorID)
	return company, nil
}

// GetCompany retrieves a company by ID.
func (s *RegistryService) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	return s.companies.Get(ctx, id)
}

// ListCompanies returns all registered companies.
func (s *RegistryService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return s.companies.List(ctx)
}

// RegisterCalibration stores a validated sector calibration. Unless
// replace is set, registering an already-known sector fails with
// domain.ErrAlreadyExists.
func (s *RegistryService) RegisterCalibration(ctx context.Context, sc domain.SectorCalibration, replace bool) error {
	if !replace {
		if _, err := s.calibrations.Get(ctx, sc.SectorID); err == nil {
			return fmt.Errorf("sector calibration %q: %w", sc.SectorID, domain.ErrAlreadyExists)
		}
	}
	if err := s.calibrations.Save(ctx, sc); err != nil {
		return fmt.Errorf("save calibration: %w", err)
	}

	logger.Debug("calibration registered for sector %s (weight sum %s)", sc.SectorID, sc.WeightSum())
	return nil
}

// GetCalibration retrieves a calibration by sector ID.
func (s *RegistryService) GetCalibration(ctx context.Context, sectorID string) (*domain.SectorCalibration, error) {
	return s.calibrations.Get(ctx, sectorID)
}

// ListCalibrations returns all registered calibrations.
func (s *RegistryService) ListCalibrations(ctx context.Context) ([]domain.SectorCalibration, error) {
	return s.calibrations.List(ctx)
}
