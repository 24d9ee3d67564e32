package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WeightSumTolerance is the absolute tolerance on the sum of calibration
// weights. A calibration whose weights deviate from 1.0 by more than this
// fails construction outright; it is an invariant, not a warning.
var WeightSumTolerance = decimal.RequireFromString("0.001")

var weightSumTarget = decimal.NewFromInt(1)

// SectorCalibration is the per-sector scoring configuration: the H^R
// baseline the sector is anchored to, the dimension weights applied when
// aggregating scores, and per-dimension benchmark targets.
type SectorCalibration struct {
	// SectorID uniquely identifies the sector.
	SectorID string `json:"sector_id"`

	// SectorName is the human-readable sector name.
	SectorName string `json:"sector_name"`

	// HRBaseline is the sector's baseline readiness score, 0-100.
	HRBaseline decimal.Decimal `json:"h_r_baseline"`

	// HRCILower is the optional lower confidence-interval bound, 0-100.
	// No ordering against HRBaseline or HRCIUpper is enforced.
	HRCILower *decimal.Decimal `json:"h_r_ci_lower,omitempty"`

	// HRCIUpper is the optional upper confidence-interval bound, 0-100.
	HRCIUpper *decimal.Decimal `json:"h_r_ci_upper,omitempty"`

	// Weights maps every dimension to its weight. The values must sum
	// to 1.0 within WeightSumTolerance.
	Weights map[DimensionName]decimal.Decimal `json:"weights"`

	// Targets maps every dimension to its benchmark score. No sum
	// constraint applies.
	Targets map[DimensionName]decimal.Decimal `json:"targets"`

	// EffectiveDate is when this calibration becomes authoritative.
	// Uniqueness and ordering across calibrations belong to a history
	// service, not to this value object.
	EffectiveDate time.Time `json:"effective_date"`
}

// WeightSum returns the exact sum of the calibration's weights.
func (c SectorCalibration) WeightSum() decimal.Decimal {
	sum := decimal.Zero
	for _, w := range c.Weights {
		sum = sum.Add(w)
	}
	return sum
}

// NewSectorCalibration validates a raw record and returns a
// SectorCalibration. Field-level checks all run and are collected first;
// the weights-sum invariant runs only once every field has independently
// validated, and its failure names the actual computed sum.
func NewSectorCalibration(rec Record) (SectorCalibration, error) {
	var errs ValidationErrors

	sc := SectorCalibration{
		SectorID:   rec.reqString("sector_id", 0, &errs),
		SectorName: rec.reqString("sector_name", 0, &errs),
	}

	if baseline, ok := rec.reqDecimal("h_r_baseline", &errs); ok {
		sc.HRBaseline = baseline
		checkScoreRange("h_r_baseline", baseline, &errs)
	}
	if sc.HRCILower = rec.optDecimal("h_r_ci_lower", &errs); sc.HRCILower != nil {
		checkScoreRange("h_r_ci_lower", *sc.HRCILower, &errs)
	}
	if sc.HRCIUpper = rec.optDecimal("h_r_ci_upper", &errs); sc.HRCIUpper != nil {
		checkScoreRange("h_r_ci_upper", *sc.HRCIUpper, &errs)
	}

	sc.Weights = rec.dimensionMap("weights", &errs)
	sc.Targets = rec.dimensionMap("targets", &errs)
	sc.EffectiveDate = rec.reqDate("effective_date", &errs)

	if err := errs.orNil(); err != nil {
		return SectorCalibration{}, err
	}

	// Cross-field invariant, evaluated only on a clean field phase.
	if sum := sc.WeightSum(); sum.Sub(weightSumTarget).Abs().GreaterThan(WeightSumTolerance) {
		errs.Add("weights", "dimension weights must sum to 1.0, got %s", formatSum(sum))
		return SectorCalibration{}, errs
	}
	return sc, nil
}

// formatSum renders a weight sum without trimming trailing zeros, so seven
// weights of 0.10 report "0.70" rather than "0.7". At least two decimal
// places are shown; finer-grained sums keep their full scale.
func formatSum(sum decimal.Decimal) string {
	places := int32(2)
	if exp := -sum.Exponent(); exp > places {
		places = exp
	}
	return sum.StringFixed(places)
}

func checkScoreRange(field string, d decimal.Decimal, errs *ValidationErrors) {
	if d.IsNegative() {
		errs.Add(field, "must be greater than or equal to 0, got %s", d)
	} else if d.GreaterThan(scoreMax) {
		errs.Add(field, "must be less than or equal to 100, got %s", d)
	}
}
