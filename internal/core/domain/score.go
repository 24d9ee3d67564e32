package domain

import "github.com/shopspring/decimal"

// ConfidenceLevel is the qualitative certainty attached to one dimension
// score. The set is closed and not extensible.
type ConfidenceLevel string

// Possible confidence levels.
const (
	// ConfidenceHigh indicates strong supporting evidence.
	ConfidenceHigh ConfidenceLevel = "high"

	// ConfidenceMedium is the default when unstated.
	ConfidenceMedium ConfidenceLevel = "medium"

	// ConfidenceLow indicates weak or sparse evidence.
	ConfidenceLow ConfidenceLevel = "low"
)

// ConfidenceLevels returns all levels in declaration order.
func ConfidenceLevels() []ConfidenceLevel {
	return []ConfidenceLevel{ConfidenceHigh, ConfidenceMedium, ConfidenceLow}
}

// IsValid returns true if the confidence level is recognised.
func (c ConfidenceLevel) IsValid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c ConfidenceLevel) String() string {
	return string(c)
}

// Score bounds and rounding precision.
var (
	scoreMax   = decimal.NewFromInt(100)
	scoreScale = int32(2)
)

// DimensionScoreInput is one scored dimension for one assessment.
type DimensionScoreInput struct {
	// Dimension names the assessed axis.
	Dimension DimensionName `json:"dimension"`

	// Score is in [0, 100], rounded half-to-even to two decimal places
	// before the range check, so 100.004 is accepted as 100.00 while
	// 100.006 becomes 100.01 and is rejected. The value is exact; render
	// with StringFixed(2) when a fixed two-place form is needed.
	Score decimal.Decimal `json:"score"`

	// ConfidenceLevel defaults to medium.
	ConfidenceLevel ConfidenceLevel `json:"confidence_level"`

	// Rationale is an optional free-text justification, at most 1000
	// characters.
	Rationale *string `json:"rationale,omitempty"`

	// EvidenceChunkIDs are opaque identifiers of supporting source
	// material, resolved by an external retrieval system. Insertion
	// order is preserved and duplicates are permitted.
	EvidenceChunkIDs []string `json:"evidence_chunk_ids"`
}

// NewDimensionScoreInput validates a raw record and returns a
// DimensionScoreInput. Every violated constraint is reported.
func NewDimensionScoreInput(rec Record) (DimensionScoreInput, error) {
	var errs ValidationErrors

	in := DimensionScoreInput{
		Rationale:        rec.optString("rationale", maxRationaleLen, &errs),
		EvidenceChunkIDs: rec.stringSlice("evidence_chunk_ids", &errs),
	}

	if !rec.has("dimension") {
		errs.Add("dimension", "is required")
	} else if s, ok := rec["dimension"].(string); !ok {
		if d, isDim := rec["dimension"].(DimensionName); isDim && d.IsValid() {
			in.Dimension = d
		} else {
			errs.Add("dimension", "must be one of %s, got %v", dimensionList(), rec["dimension"])
		}
	} else if d := DimensionName(s); !d.IsValid() {
		errs.Add("dimension", "must be one of %s, got %q", dimensionList(), s)
	} else {
		in.Dimension = d
	}

	if raw, ok := rec.reqDecimal("score", &errs); ok {
		switch {
		case raw.IsNegative():
			// A negative raw score is rejected before rounding; rounding
			// never rescues an out-of-range sign.
			errs.Add("score", "must be greater than or equal to 0, got %s", raw)
		default:
			in.Score = raw.RoundBank(scoreScale)
			if in.Score.GreaterThan(scoreMax) {
				errs.Add("score", "must be less than or equal to 100, got %s after rounding", in.Score)
			}
		}
	}

	in.ConfidenceLevel = ConfidenceMedium
	if rec.has("confidence_level") {
		s, ok := rec["confidence_level"].(string)
		if !ok {
			errs.Add("confidence_level", "must be a string, got %T", rec["confidence_level"])
		} else if cl := ConfidenceLevel(s); !cl.IsValid() {
			errs.Add("confidence_level", "must be one of high, medium or low, got %q", s)
		} else {
			in.ConfidenceLevel = cl
		}
	}

	if err := errs.orNil(); err != nil {
		return DimensionScoreInput{}, err
	}
	return in, nil
}
