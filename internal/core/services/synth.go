package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/orgair-labs/orgair-cli/internal/core/domain"
	"github.com/orgair-labs/orgair-cli/internal/core/ports/driven"
	"github.com/orgair-labs/orgair-cli/internal/core/ports/driving"
)

// Ensure SynthService implements the interface.
var _ driving.SynthService = (*SynthService)(nil)

// Value ranges used by the generators. All draws land strictly inside the
// domain constructors' accepted ranges, so generation can never fail.
const (
	evMin = 1_000_000
	evMax = 10_000_000_000

	baselineMinCents = 50_00
	baselineMaxCents = 90_00
	ciLowerMinCents  = 45_00
	ciLowerMaxCents  = 80_00
	ciUpperMinCents  = 60_00
	ciUpperMaxCents  = 95_00
	targetMinCents   = 60_00
	targetMaxCents   = 85_00

	optionalFieldPct = 70
	subSectorPct     = 30
	fundIDPct        = 50
)

// SynthService produces synthetic entities for development, demos and
// tests. Randomness and time are injected so output is reproducible; every
// generated value is passed back through the domain constructors, making
// validity a structural guarantee rather than a convention.
type SynthService struct {
	faker *gofakeit.Faker
	clock driven.Clock
}

// NewSynthService creates a generator using the given faker and clock.
func NewSynthService(faker *gofakeit.Faker, clock driven.Clock) *SynthService {
	return &SynthService{faker: faker, clock: clock}
}

// Company generates a synthetic company in the given sector. The creation
// timestamp is drawn from five to one years ago and the update timestamp
// from one year ago to now, against the same now, so UpdatedAt never
// precedes CreatedAt.
func (s *SynthService) Company(sectorID string) domain.Company {
	now := s.clock.Now().UTC()

	rec := domain.Record{
		"company_id":       s.faker.UUID(),
		"name":             s.faker.Company(),
		"ticker":           strings.ToUpper(s.faker.Lexify("???")) + s.faker.Numerify("###"),
		"domain":           s.faker.DomainName(),
		"cik":              s.faker.LetterN(9),
		"sector_id":        sectorID,
		"enterprise_value": decimal.NewFromInt(int64(s.faker.Number(evMin, evMax))),
		"ev_currency":      s.faker.CurrencyShort(),
		"ev_as_of_date":    dateOnly(s.dateBetween(now.AddDate(-2, 0, 0), now)),
		"ownership_type":   string(pick(s.faker, domain.OwnershipTypes())),
		"status":           string(pick(s.faker, domain.CompanyStatuses())),
		"created_at":       s.dateBetween(now.AddDate(-5, 0, 0), now.AddDate(-1, 0, 0)),
		"updated_at":       s.dateBetween(now.AddDate(-1, 0, 0), now),
	}
	if s.chance(subSectorPct) {
		rec["sub_sector_id"] = s.faker.Word()
	}
	if s.chance(fundIDPct) {
		rec["fund_id"] = s.faker.UUID()
	}

	company, err := domain.NewCompany(rec)
	if err != nil {
		panic(fmt.Sprintf("synth: generated company failed validation: %v", err))
	}
	return company
}

// DimensionScore generates a synthetic dimension score input with a score
// drawn uniformly over [0, 100] at exactly two decimal places.
func (s *SynthService) DimensionScore() domain.DimensionScoreInput {
	rec := domain.Record{
		"dimension":        string(pick(s.faker, domain.Dimensions())),
		"score":            decimal.New(int64(s.faker.Number(0, 100_00)), -2),
		"confidence_level": string(pick(s.faker, domain.ConfidenceLevels())),
	}
	if s.chance(optionalFieldPct) {
		rec["rationale"] = s.faker.Sentence(10)
	}

	ids := make([]string, s.faker.Number(0, 3))
	for i := range ids {
		ids[i] = s.faker.UUID()
	}
	rec["evidence_chunk_ids"] = ids

	in, err := domain.NewDimensionScoreInput(rec)
	if err != nil {
		panic(fmt.Sprintf("synth: generated score failed validation: %v", err))
	}
	return in
}

// SectorCalibration generates a synthetic calibration. Weights are drawn
// uniformly from [0.1, 1.0], normalised by their sum, and the final
// dimension in canonical order is forced to 1.0 minus the first six, so
// the weights sum to exactly 1.0 regardless of rounding in the division.
func (s *SynthService) SectorCalibration(sectorID, sectorName string) domain.SectorCalibration {
	now := s.clock.Now().UTC()
	dims := domain.Dimensions()

	raw := make([]decimal.Decimal, len(dims))
	total := decimal.Zero
	for i := range raw {
		raw[i] = decimal.NewFromFloat(s.faker.Float64Range(0.1, 1.0)).Round(6)
		total = total.Add(raw[i])
	}

	weights := make(map[domain.DimensionName]decimal.Decimal, len(dims))
	partial := decimal.Zero
	for i, dim := range dims {
		if i == len(dims)-1 {
			// The forced adjustment always lands on the last dimension
			// in canonical order, a deliberate, reproducible choice.
			weights[dim] = decimal.NewFromInt(1).Sub(partial)
			break
		}
		w := raw[i].DivRound(total, 12)
		weights[dim] = w
		partial = partial.Add(w)
	}

	targets := make(map[domain.DimensionName]decimal.Decimal, len(dims))
	for _, dim := range dims {
		targets[dim] = s.cents(targetMinCents, targetMaxCents)
	}

	rec := domain.Record{
		"sector_id":      sectorID,
		"sector_name":    sectorName,
		"h_r_baseline":   s.cents(baselineMinCents, baselineMaxCents),
		"weights":        weights,
		"targets":        targets,
		"effective_date": dateOnly(s.dateBetween(now.AddDate(-1, 0, 0), now)),
	}
	// CI bounds are drawn independently of the baseline and of each other;
	// no ordering is guaranteed, matching the loose contract.
	if s.chance(optionalFieldPct) {
		rec["h_r_ci_lower"] = s.cents(ciLowerMinCents, ciLowerMaxCents)
	}
	if s.chance(optionalFieldPct) {
		rec["h_r_ci_upper"] = s.cents(ciUpperMinCents, ciUpperMaxCents)
	}

	sc, err := domain.NewSectorCalibration(rec)
	if err != nil {
		panic(fmt.Sprintf("synth: generated calibration failed validation: %v", err))
	}
	return sc
}

// cents draws a uniform two-decimal value between the given bounds
// expressed in hundredths.
func (s *SynthService) cents(min, max int) decimal.Decimal {
	return decimal.New(int64(s.faker.Number(min, max)), -2)
}

// chance returns true pct percent of the time.
func (s *SynthService) chance(pct int) bool {
	return s.faker.Number(1, 100) <= pct
}

// dateBetween draws a uniform instant in [start, end].
func (s *SynthService) dateBetween(start, end time.Time) time.Time {
	return s.faker.DateRange(start, end).UTC()
}

// dateOnly truncates an instant to midnight UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// pick returns a uniformly random element of items.
func pick[T any](f *gofakeit.Faker, items []T) T {
	return items[f.Number(0, len(items)-1)]
}
