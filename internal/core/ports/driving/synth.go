package driving

import "github.com/orgair-labs/orgair-cli/internal/core/domain"

// SynthService produces randomised entities that always satisfy the domain
// constructors. Generation never fails: every draw is clamped or
// algorithmically guaranteed in range before construction.
type SynthService interface {
	// Company generates a synthetic company in the given sector.
	Company(sectorID string) domain.Company

	// DimensionScore generates a synthetic dimension score input.
	DimensionScore() domain.DimensionScoreInput

	// SectorCalibration generates a synthetic calibration whose weights
	// sum to exactly 1.0, not merely within tolerance.
	SectorCalibration(sectorID, sectorName string) domain.SectorCalibration
}
