package tui

import "errors"

// ErrMissingRegistryService is returned when the registry service is not provided.
var ErrMissingRegistryService = errors.New("tui: registry service is required")

// ErrMissingSynthService is returned when the synth service is not provided.
var ErrMissingSynthService = errors.New("tui: synth service is required")

// ErrMissingSchemaService is returned when the schema service is not provided.
var ErrMissingSchemaService = errors.New("tui: schema service is required")
