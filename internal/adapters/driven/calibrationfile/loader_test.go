package calibrationfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgair-labs/orgair-cli/internal/core/domain"
)

const validCalibrationTOML = `
sector_id = "tech"
sector_name = "Technology"
h_r_baseline = "72.50"
h_r_ci_lower = "65.00"
h_r_ci_upper = "80.00"
effective_date = 2026-01-01

[weights]
data_infrastructure = "0.20"
ai_governance = "0.20"
technology_stack = "0.15"
talent = "0.15"
leadership = "0.10"
use_case_portfolio = "0.10"
culture = "0.10"

[targets]
data_infrastructure = "75.00"
ai_governance = "70.00"
technology_stack = "72.00"
talent = "68.00"
leadership = "65.00"
use_case_portfolio = "70.00"
culture = "60.00"
`

func writeCalibration(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeCalibration(t, dir, "tech.toml", validCalibrationTOML)

	sc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tech", sc.SectorID)
	assert.Equal(t, "Technology", sc.SectorName)
	assert.True(t, sc.HRBaseline.Equal(decimal.RequireFromString("72.50")))
	assert.True(t, sc.WeightSum().Equal(decimal.NewFromInt(1)))
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), sc.EffectiveDate)
}

func TestLoad_FloatWeights(t *testing.T) {
	dir := t.TempDir()
	path := writeCalibration(t, dir, "flat.toml", `
sector_id = "flat"
sector_name = "Flat"
h_r_baseline = 70.0
effective_date = 2026-01-01

[weights]
data_infrastructure = 0.20
ai_governance = 0.20
technology_stack = 0.15
talent = 0.15
leadership = 0.10
use_case_portfolio = 0.10
culture = 0.10

[targets]
data_infrastructure = 75.0
ai_governance = 70.0
technology_stack = 72.0
talent = 68.0
leadership = 65.0
use_case_portfolio = 70.0
culture = 60.0
`)

	sc, err := Load(path)
	require.NoError(t, err)
	assert.True(t, sc.WeightSum().Equal(decimal.NewFromInt(1)))
}

func TestLoad_InvalidCalibration(t *testing.T) {
	dir := t.TempDir()
	// Weight sum far from 1.0.
	bad := `
sector_id = "bad"
sector_name = "Bad"
h_r_baseline = "70.00"
effective_date = 2026-01-01

[weights]
data_infrastructure = "0.50"
ai_governance = "0.50"
technology_stack = "0.50"
talent = "0.50"
leadership = "0.50"
use_case_portfolio = "0.50"
culture = "0.50"

[targets]
data_infrastructure = "75.00"
ai_governance = "70.00"
technology_stack = "72.00"
talent = "68.00"
leadership = "65.00"
use_case_portfolio = "70.00"
culture = "60.00"
`
	path := writeCalibration(t, dir, "bad.toml", bad)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "bad.toml")
}

func TestLoad_MalformedTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeCalibration(t, dir, "broken.toml", "sector_id = [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.toml")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeCalibration(t, dir, "tech.toml", validCalibrationTOML)
	writeCalibration(t, dir, "notes.txt", "not a calibration")
	writeCalibration(t, dir, ".hidden.toml", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0755))

	calibrations, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, calibrations, 1)
	assert.Equal(t, "tech", calibrations[0].SectorID)
}

func TestLoadDir_AbortsOnInvalidFile(t *testing.T) {
	dir := t.TempDir()
	writeCalibration(t, dir, "a-broken.toml", "not valid toml [")
	writeCalibration(t, dir, "z-tech.toml", validCalibrationTOML)

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a-broken.toml")
}

func TestLoadDir_MissingDir(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestIsCalibrationFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"tech.toml", true},
		{"TECH.TOML", true},
		{".hidden.toml", false},
		{"notes.txt", false},
		{"toml", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isCalibrationFile(tt.name), tt.name)
	}
}

func TestWatcher_HandleFsEvent(t *testing.T) {
	dir := t.TempDir()
	path := writeCalibration(t, dir, "tech.toml", validCalibrationTOML)

	watcher, err := NewWatcher(dir)
	require.NoError(t, err)
	defer watcher.Close()

	t.Run("write of valid file", func(t *testing.T) {
		event := watcher.handleFsEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})
		require.NotNil(t, event)
		assert.Equal(t, EventLoaded, event.Type)
		require.NotNil(t, event.Calibration)
		assert.Equal(t, "tech", event.Calibration.SectorID)
	})

	t.Run("write of invalid file", func(t *testing.T) {
		badPath := writeCalibration(t, dir, "bad.toml", "sector_id = [")
		event := watcher.handleFsEvent(fsnotify.Event{Name: badPath, Op: fsnotify.Write})
		require.NotNil(t, event)
		assert.Equal(t, EventInvalid, event.Type)
		assert.Error(t, event.Err)
	})

	t.Run("remove", func(t *testing.T) {
		event := watcher.handleFsEvent(fsnotify.Event{Name: path, Op: fsnotify.Remove})
		require.NotNil(t, event)
		assert.Equal(t, EventRemoved, event.Type)
	})

	t.Run("foreign extension ignored", func(t *testing.T) {
		event := watcher.handleFsEvent(fsnotify.Event{
			Name: filepath.Join(dir, "notes.txt"),
			Op:   fsnotify.Write,
		})
		assert.Nil(t, event)
	})

	t.Run("chmod ignored", func(t *testing.T) {
		event := watcher.handleFsEvent(fsnotify.Event{Name: path, Op: fsnotify.Chmod})
		assert.Nil(t, event)
	})
}

func TestWatcher_Watch(t *testing.T) {
	dir := t.TempDir()

	watcher, err := NewWatcher(dir)
	require.NoError(t, err)
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := watcher.Watch(ctx)

	go func() {
		time.Sleep(50 * time.Millisecond)
		writeCalibration(t, dir, "tech.toml", validCalibrationTOML)
	}()

	select {
	case event := <-events:
		assert.Equal(t, EventLoaded, event.Type)
		assert.Contains(t, event.Path, "tech.toml")
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for calibration file event")
	}

	cancel()
}
