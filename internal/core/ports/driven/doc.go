// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - CompanyStore: company persistence
//   - CalibrationStore: sector calibration persistence
//   - ConfigStore: application configuration
//   - Clock: source of current time (injected so tests control it)
//   - SchemaWriter: JSON Schema file export
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
