// Package cli implements the orgair command-line interface.
//
// Commands are thin: they parse flags and input, call the driving ports
// and print results. All validation lives in the domain constructors.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/orgair-labs/orgair-cli/internal/core/ports/driven"
	"github.com/orgair-labs/orgair-cli/internal/core/ports/driving"
	"github.com/orgair-labs/orgair-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services wired in by main. Commands check for nil so unit tests can
// exercise parsing without a full backend.
var (
	registryService driving.RegistryService
	synthService    driving.SynthService
	schemaService   driving.SchemaService
	synthFactory    func(seed uint64) driving.SynthService
	configStore     driven.ConfigStore
)

// Services bundles the driving ports the CLI needs.
type Services struct {
	Registry driving.RegistryService
	Synth    driving.SynthService
	Schema   driving.SchemaService

	// SynthFactory builds a seeded generator for reproducible output.
	SynthFactory func(seed uint64) driving.SynthService

	// Config persists CLI settings.
	Config driven.ConfigStore
}

// SetServices wires the driving ports into the command tree.
func SetServices(s Services) {
	registryService = s.Registry
	synthService = s.Synth
	schemaService = s.Schema
	synthFactory = s.SynthFactory
	configStore = s.Config
}

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "orgair",
	Short: "Organizational AI readiness data toolkit",
	Long: `orgair manages the data contracts of an AI readiness assessment:
companies, dimension scores and sector calibrations.

Entities are validated on construction: every command that accepts input
reports all field errors at once, and generated data is guaranteed valid.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
