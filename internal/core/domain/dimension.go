package domain

import "github.com/shopspring/decimal"

const unknownDescription = "Unknown"

// DimensionName identifies one of the seven assessed axes of AI readiness.
// The set is closed: every weight, target and score map is keyed by exactly
// these values, and adding or removing one is a breaking schema change.
type DimensionName string

// The seven readiness dimensions, in canonical order.
const (
	// DimensionDataInfrastructure covers data pipelines, quality and access.
	DimensionDataInfrastructure DimensionName = "data_infrastructure"

	// DimensionAIGovernance covers policy, risk and model oversight.
	DimensionAIGovernance DimensionName = "ai_governance"

	// DimensionTechnologyStack covers platforms, tooling and integration.
	DimensionTechnologyStack DimensionName = "technology_stack"

	// DimensionTalent covers AI/ML skills and hiring capacity.
	DimensionTalent DimensionName = "talent"

	// DimensionLeadership covers executive sponsorship and strategy.
	DimensionLeadership DimensionName = "leadership"

	// DimensionUseCasePortfolio covers identified and deployed use cases.
	DimensionUseCasePortfolio DimensionName = "use_case_portfolio"

	// DimensionCulture covers adoption readiness and ways of working.
	DimensionCulture DimensionName = "culture"
)

// Dimensions returns all dimension names in canonical order.
// Generators and schema descriptions rely on this order being stable.
func Dimensions() []DimensionName {
	return []DimensionName{
		DimensionDataInfrastructure,
		DimensionAIGovernance,
		DimensionTechnologyStack,
		DimensionTalent,
		DimensionLeadership,
		DimensionUseCasePortfolio,
		DimensionCulture,
	}
}

// IsValid returns true if the dimension name is recognised.
func (d DimensionName) IsValid() bool {
	switch d {
	case DimensionDataInfrastructure, DimensionAIGovernance,
		DimensionTechnologyStack, DimensionTalent, DimensionLeadership,
		DimensionUseCasePortfolio, DimensionCulture:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (d DimensionName) String() string {
	return string(d)
}

// Description returns a human-readable label for the dimension.
func (d DimensionName) Description() string {
	switch d {
	case DimensionDataInfrastructure:
		return "Data Infrastructure"
	case DimensionAIGovernance:
		return "AI Governance"
	case DimensionTechnologyStack:
		return "Technology Stack"
	case DimensionTalent:
		return "Talent"
	case DimensionLeadership:
		return "Leadership"
	case DimensionUseCasePortfolio:
		return "Use Case Portfolio"
	case DimensionCulture:
		return "Culture"
	default:
		return unknownDescription
	}
}

// DefaultWeights returns the default dimension weighting applied when a
// sector calibration has no weights of its own. The values sum to exactly
// 1.0 by construction. A fresh map is returned on each call so callers may
// modify it freely.
func DefaultWeights() map[DimensionName]decimal.Decimal {
	return map[DimensionName]decimal.Decimal{
		DimensionDataInfrastructure: decimal.RequireFromString("0.25"),
		DimensionAIGovernance:       decimal.RequireFromString("0.20"),
		DimensionTechnologyStack:    decimal.RequireFromString("0.15"),
		DimensionTalent:             decimal.RequireFromString("0.15"),
		DimensionLeadership:         decimal.RequireFromString("0.10"),
		DimensionUseCasePortfolio:   decimal.RequireFromString("0.10"),
		DimensionCulture:            decimal.RequireFromString("0.05"),
	}
}
