// Package tui provides an interactive terminal user interface for orgair.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/orgair-labs/orgair-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Registry manages the company and calibration collections.
	Registry driving.RegistryService

	// Synth generates synthetic entities.
	Synth driving.SynthService

	// Schema provides entity schema descriptions.
	Schema driving.SchemaService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(registry driving.RegistryService, synth driving.SynthService, schema driving.SchemaService) *Ports {
	return &Ports{
		Registry: registry,
		Synth:    synth,
		Schema:   schema,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Registry == nil {
		return ErrMissingRegistryService
	}
	if p.Synth == nil {
		return ErrMissingSynthService
	}
	if p.Schema == nil {
		return ErrMissingSchemaService
	}
	return nil
}
