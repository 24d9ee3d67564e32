package services

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/orgair-labs/orgair-cli/internal/core/domain"
	"github.com/orgair-labs/orgair-cli/internal/core/ports/driven"
	"github.com/orgair-labs/orgair-cli/internal/core/ports/driving"
	"github.com/orgair-labs/orgair-cli/internal/logger"
)

// Ensure SchemaService implements the interface.
var _ driving.SchemaService = (*SchemaService)(nil)

// Entity names exposed by the schema service.
const (
	EntityCompany             = "company"
	EntityCompanyCreate       = "company_create"
	EntityDimensionScoreInput = "dimension_score_input"
	EntitySectorCalibration   = "sector_calibration"
)

const schemaDialect = "https://json-schema.org/draft/2020-12/schema"

// SchemaService derives JSON Schema documents from the entity definitions.
// The documents are built statically: they describe exactly the constraints
// the domain constructors enforce, so downstream consumers validating
// against them accept the same inputs the constructors do.
type SchemaService struct {
	writer  driven.SchemaWriter
	schemas map[string]*jsonschema.Schema
	names   []string
}

// NewSchemaService creates a schema service. The writer is only needed for
// Export and may be nil when exporting is not used.
func NewSchemaService(writer driven.SchemaWriter) *SchemaService {
	return &SchemaService{
		writer: writer,
		schemas: map[string]*jsonschema.Schema{
			EntityCompany:             companySchema(true),
			EntityCompanyCreate:       companySchema(false),
			EntityDimensionScoreInput: dimensionScoreInputSchema(),
			EntitySectorCalibration:   sectorCalibrationSchema(),
		},
		names: []string{
			EntityCompany,
			EntityCompanyCreate,
			EntityDimensionScoreInput,
			EntitySectorCalibration,
		},
	}
}

// List returns the known entity names in stable order.
func (s *SchemaService) List() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// JSON returns the pretty-printed JSON Schema for an entity.
func (s *SchemaService) JSON(name string) ([]byte, error) {
	schema, ok := s.schemas[name]
	if !ok {
		return nil, fmt.Errorf("schema %q: %w", name, domain.ErrUnknownEntity)
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema %q: %w", name, err)
	}
	return data, nil
}

// Export writes every schema through the configured writer.
func (s *SchemaService) Export() ([]string, error) {
	if s.writer == nil {
		return nil, fmt.Errorf("schema export: no writer configured")
	}

	paths := make([]string, 0, len(s.names))
	for _, name := range s.names {
		data, err := s.JSON(name)
		if err != nil {
			return nil, err
		}
		path, err := s.writer.Write(name, data)
		if err != nil {
			return nil, fmt.Errorf("export schema %q: %w", name, err)
		}
		logger.Debug("schema %s exported to %s", name, path)
		paths = append(paths, path)
	}
	return paths, nil
}

// scoreSchema describes a 0-100 decimal carried as a JSON string to keep
// the value exact.
func scoreSchema(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     `^\d{1,3}(\.\d+)?$`,
		Description: desc + " Decimal in [0, 100], serialised as a string for exactness.",
	}
}

func stringSchema(desc string, maxLen int) *jsonschema.Schema {
	s := &jsonschema.Schema{Type: "string", Description: desc}
	if maxLen > 0 {
		s.MaxLength = intPtr(maxLen)
	}
	return s
}

func enumSchema[T ~string](desc string, values []T) *jsonschema.Schema {
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = string(v)
	}
	return &jsonschema.Schema{Type: "string", Enum: enum, Description: desc}
}

// dimensionMapSchema describes an object keyed by exactly the seven
// canonical dimensions.
func dimensionMapSchema(desc string) *jsonschema.Schema {
	dims := domain.Dimensions()
	props := make(map[string]*jsonschema.Schema, len(dims))
	required := make([]string, len(dims))
	for i, dim := range dims {
		props[string(dim)] = scoreSchema(dim.Description() + " value.")
		required[i] = string(dim)
	}
	return &jsonschema.Schema{
		Type:                 "object",
		Description:          desc,
		Properties:           props,
		Required:             required,
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}

func dateSchema(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Format: "date", Description: desc}
}

func companySchema(full bool) *jsonschema.Schema {
	title := "CompanyCreate"
	desc := "Creation-time company fields, before identity assignment."
	props := map[string]*jsonschema.Schema{
		"name":          stringSchema("Legal or trading name.", 200),
		"ticker":        stringSchema("Stock ticker.", 20),
		"domain":        stringSchema("Primary web domain.", 200),
		"cik":           stringSchema("SEC Central Index Key.", 20),
		"sector_id":     stringSchema("Reference to a sector calibration.", 0),
		"sub_sector_id": stringSchema("Optional sector refinement.", 0),
		"enterprise_value": {
			Type:        "string",
			Pattern:     `^\d+(\.\d+)?$`,
			Description: "Non-negative enterprise value, serialised as a string for exactness.",
		},
		"ev_currency": {
			Type:        "string",
			MinLength:   intPtr(3),
			MaxLength:   intPtr(3),
			Description: "ISO 4217 currency code. Defaults to USD.",
			Default:     json.RawMessage(`"USD"`),
		},
		"ev_as_of_date":  dateSchema("Valuation date for the enterprise value."),
		"ownership_type": enumSchema("Fund relationship. Defaults to target at creation.", domain.OwnershipTypes()),
		"fund_id":        stringSchema("Optional fund link.", 0),
	}
	required := []string{"name", "sector_id"}

	if full {
		title = "Company"
		desc = "Full company entity, including system-assigned fields."
		props["company_id"] = stringSchema("Globally unique identity, immutable.", 0)
		props["status"] = enumSchema("Lifecycle status. Defaults to active.", domain.CompanyStatuses())
		props["created_at"] = &jsonschema.Schema{Type: "string", Format: "date-time", Description: "Set once at creation."}
		props["updated_at"] = &jsonschema.Schema{Type: "string", Format: "date-time", Description: "Refreshed on every mutation."}
		required = append(required, "company_id", "created_at", "updated_at")
	}

	return &jsonschema.Schema{
		Schema:      schemaDialect,
		Title:       title,
		Description: desc,
		Type:        "object",
		Properties:  props,
		Required:    required,
	}
}

func dimensionScoreInputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Schema:      schemaDialect,
		Title:       "DimensionScoreInput",
		Description: "One scored readiness dimension for one assessment.",
		Type:        "object",
		Properties: map[string]*jsonschema.Schema{
			"dimension": enumSchema("Assessed readiness axis.", domain.Dimensions()),
			"score":     scoreSchema("Dimension score, rounded half-to-even to two places."),
			"confidence_level": func() *jsonschema.Schema {
				s := enumSchema("Qualitative certainty. Defaults to medium.", domain.ConfidenceLevels())
				s.Default = json.RawMessage(`"medium"`)
				return s
			}(),
			"rationale": stringSchema("Free-text justification.", 1000),
			"evidence_chunk_ids": {
				Type:        "array",
				Items:       &jsonschema.Schema{Type: "string"},
				Description: "Opaque evidence identifiers in insertion order; duplicates permitted.",
			},
		},
		Required: []string{"dimension", "score"},
	}
}

func sectorCalibrationSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Schema:      schemaDialect,
		Title:       "SectorCalibration",
		Description: "Per-sector weights, targets and H^R baseline. Weight values must sum to 1.0 within 0.001.",
		Type:        "object",
		Properties: map[string]*jsonschema.Schema{
			"sector_id":      stringSchema("Unique sector identifier.", 0),
			"sector_name":    stringSchema("Human-readable sector name.", 0),
			"h_r_baseline":   scoreSchema("Sector baseline readiness score."),
			"h_r_ci_lower":   scoreSchema("Optional lower confidence-interval bound."),
			"h_r_ci_upper":   scoreSchema("Optional upper confidence-interval bound."),
			"weights":        dimensionMapSchema("Per-dimension weights; values sum to 1.0 within 0.001."),
			"targets":        dimensionMapSchema("Per-dimension benchmark targets; no sum constraint."),
			"effective_date": dateSchema("When this calibration becomes authoritative."),
		},
		Required: []string{"sector_id", "sector_name", "h_r_baseline", "weights", "targets", "effective_date"},
	}
}

func intPtr(i int) *int { return &i }
