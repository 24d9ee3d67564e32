// Package driving defines the interfaces through which the outside world
// drives the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// CLI and TUI adapters call these interfaces; the services package
// implements them.
//
//   - RegistryService: validated company and calibration collections
//   - SynthService: invariant-safe synthetic data generation
//   - SchemaService: machine-readable schema descriptions and export
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
