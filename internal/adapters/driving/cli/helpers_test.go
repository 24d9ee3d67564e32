package cli

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/orgair-labs/orgair-cli/internal/adapters/driven/config/file"
	"github.com/orgair-labs/orgair-cli/internal/adapters/driven/schemafile"
	"github.com/orgair-labs/orgair-cli/internal/adapters/driven/storage/memory"
	"github.com/orgair-labs/orgair-cli/internal/core/domain"
	"github.com/orgair-labs/orgair-cli/internal/core/ports/driven"
	"github.com/orgair-labs/orgair-cli/internal/core/ports/driving"
	"github.com/orgair-labs/orgair-cli/internal/core/services"
)

var testClock = driven.ClockFunc(func() time.Time {
	return time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
})

// setupTestServices wires real services backed by in-memory stores, with
// a "tech" calibration pre-registered, and returns a cleanup that restores
// the previous wiring.
func setupTestServices() func() {
	oldRegistry := registryService
	oldSynth := synthService
	oldSchema := schemaService
	oldFactory := synthFactory
	oldConfig := configStore

	tmpDir, err := os.MkdirTemp("", "orgair-cli-test")
	if err != nil {
		panic(err)
	}

	registry := services.NewRegistryService(memory.NewCompanyStore(), memory.NewCalibrationStore(), testClock)
	sc, err := domain.NewSectorCalibration(domain.Record{
		"sector_id":      "tech",
		"sector_name":    "Technology",
		"h_r_baseline":   "72.50",
		"weights":        domain.DefaultWeights(),
		"targets":        domain.DefaultWeights(),
		"effective_date": "2026-01-01",
	})
	if err != nil {
		panic(err)
	}
	if err := registry.RegisterCalibration(context.Background(), sc, false); err != nil {
		panic(err)
	}

	cfg, err := file.NewConfigStore(tmpDir)
	if err != nil {
		panic(err)
	}

	SetServices(Services{
		Registry: registry,
		Synth:    services.NewSynthService(gofakeit.New(42), testClock),
		Schema:   services.NewSchemaService(schemafile.NewWriter(filepath.Join(tmpDir, "exports"))),
		SynthFactory: func(seed uint64) driving.SynthService {
			return services.NewSynthService(gofakeit.New(seed), testClock)
		},
		Config: cfg,
	})

	return func() {
		SetServices(Services{
			Registry:     oldRegistry,
			Synth:        oldSynth,
			Schema:       oldSchema,
			SynthFactory: oldFactory,
			Config:       oldConfig,
		})
		os.RemoveAll(tmpDir)
	}
}
