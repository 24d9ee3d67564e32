package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGenerateFlags() {
	generateCount = 1
	generateJSONFlag = false
	generateSectorID = "synthetic-sector"
	generateSectorName = "Synthetic Sector"
	generateSeed = 0
}

func TestGenerateCmd_Use(t *testing.T) {
	assert.Equal(t, "generate", generateCmd.Use)
}

func TestGenerateCmd_HasSubcommands(t *testing.T) {
	commands := generateCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "company")
	assert.Contains(t, commandNames, "score")
	assert.Contains(t, commandNames, "calibration")
}

func TestGenerateCmd_HasCountFlag(t *testing.T) {
	flag := generateCmd.PersistentFlags().Lookup("count")
	require.NotNil(t, flag, "count flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "1", flag.DefValue)
}

func TestGenerateCompanyCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"generate", "company"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetGenerateFlags()
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.NotEmpty(t, buf.String())
}

func TestGenerateCompanyCmd_CountFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"generate", "company", "-n", "5"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetGenerateFlags()
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 5)
}

func TestGenerateCompanyCmd_SectorIDFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"generate", "company", "--json", "--sector-id", "industrials"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetGenerateFlags()
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"sector_id": "industrials"`)
}

func TestGenerateCompanyCmd_SeedIsReproducible(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	run := func() string {
		buf := new(bytes.Buffer)
		rootCmd.SetOut(buf)
		rootCmd.SetArgs([]string{"generate", "company", "--json", "--seed", "7"})
		defer func() {
			rootCmd.SetArgs(nil)
			resetGenerateFlags()
		}()
		require.NoError(t, rootCmd.Execute())
		return buf.String()
	}

	assert.Equal(t, run(), run())
}

func TestGenerateScoreCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"generate", "score", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetGenerateFlags()
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"dimension"`)
	assert.Contains(t, buf.String(), `"score"`)
}

func TestGenerateCalibrationCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"generate", "calibration"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetGenerateFlags()
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "weight sum 1")
}

func TestGenerateCalibrationCmd_CountSuffixesSectorIDs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"generate", "calibration", "-n", "3"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetGenerateFlags()
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "synthetic-sector-1")
	assert.Contains(t, buf.String(), "synthetic-sector-3")
}

func TestGenerateCmd_ServiceNotConfigured(t *testing.T) {
	oldSynth := synthService
	oldFactory := synthFactory
	synthService = nil
	synthFactory = nil
	defer func() {
		synthService = oldSynth
		synthFactory = oldFactory
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"generate", "company"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetGenerateFlags()
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "synth service not configured")
}
