// Package domain defines the core business entities for the Org-AI-R
// assessment platform and the validation rules that form its data contract.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Company / CompanyCreate: A company under assessment
//   - DimensionScoreInput: One scored readiness dimension
//   - SectorCalibration: Per-sector weights, targets and baseline
//   - Record: Raw field values before validation
//
// Each entity has a constructor (NewCompanyCreate, NewDimensionScoreInput,
// NewSectorCalibration) that accepts a Record and either returns a fully
// validated value or a ValidationErrors listing every violated constraint.
// Constructors are two-phase: all field-level checks run first and are
// collected, whole-object invariants run only once the field phase is clean.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import the Go
// standard library and the decimal type used for exact numeric fields.
// All other packages depend on domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/shopspring/decimal
//   - Cannot Import: Any internal/ package, any adapter dependency
package domain
