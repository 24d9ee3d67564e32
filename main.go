package main

import (
	"fmt"
	"os"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/orgair-labs/orgair-cli/internal/adapters/driven/config/file"
	"github.com/orgair-labs/orgair-cli/internal/adapters/driven/schemafile"
	"github.com/orgair-labs/orgair-cli/internal/adapters/driven/storage/memory"
	"github.com/orgair-labs/orgair-cli/internal/adapters/driving/cli"
	"github.com/orgair-labs/orgair-cli/internal/core/ports/driven"
	"github.com/orgair-labs/orgair-cli/internal/core/ports/driving"
	"github.com/orgair-labs/orgair-cli/internal/core/services"
)

func main() {
	clock := driven.SystemClock()

	registry := services.NewRegistryService(
		memory.NewCompanyStore(),
		memory.NewCalibrationStore(),
		clock,
	)
	synth := services.NewSynthService(gofakeit.New(0), clock)
	schema := services.NewSchemaService(schemafile.NewWriter(""))

	config, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	cli.SetServices(cli.Services{
		Registry: registry,
		Synth:    synth,
		Schema:   schema,
		SynthFactory: func(seed uint64) driving.SynthService {
			return services.NewSynthService(gofakeit.New(seed), clock)
		},
		Config: config,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
