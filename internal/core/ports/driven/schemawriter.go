package driven

// SchemaWriter persists an exported schema document.
type SchemaWriter interface {
	// Write stores the schema bytes under the given entity name and
	// returns the path it was written to.
	Write(name string, data []byte) (string, error)
}
