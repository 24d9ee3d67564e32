package driving

// SchemaService derives machine-readable JSON Schema documents from the
// entity definitions, for contract sharing with downstream consumers.
// The descriptions are static: they reflect the constraints the domain
// constructors enforce, not runtime state.
type SchemaService interface {
	// List returns the known entity names in stable order.
	List() []string

	// JSON returns the pretty-printed JSON Schema for an entity.
	// Returns domain.ErrUnknownEntity for unrecognised names.
	JSON(name string) ([]byte, error)

	// Export writes every schema through the configured writer and
	// returns the written paths.
	Export() ([]string, error)
}
