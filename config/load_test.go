package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotConfig(t *testing.T) {
	t.Helper()
	mouse, loco, turn := Mouse, Locomotion, Turn
	t.Cleanup(func() {
		Mouse, Locomotion, Turn = mouse, loco, turn
	})
}

func TestLoadFileAppliesOverrides(t *testing.T) {
	snapshotConfig(t)

	path := filepath.Join(t.TempDir(), "strider.yaml")
	data := []byte("mouse:\n  sensitivity: 0.1\nlocomotion:\n  maxSpeed: 7.5\nturn:\n  stepDegrees: 30\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	require.NoError(t, LoadFile(path))

	assert.InDelta(t, 0.1, float64(Mouse.Sensitivity), 1e-6)
	assert.InDelta(t, 7.5, float64(Locomotion.MaxSpeed), 1e-6)
	assert.InDelta(t, 30, float64(Turn.StepDegrees), 1e-6)
	// Keys the file does not mention keep their defaults.
	assert.InDelta(t, 90, float64(Mouse.PitchLimit), 1e-6)
	assert.InDelta(t, 1.1, float64(Locomotion.FloatHeight), 1e-6)
}

func TestLoadFileMissingLeavesDefaults(t *testing.T) {
	snapshotConfig(t)

	require.NoError(t, LoadFile(filepath.Join(t.TempDir(), "absent.yaml")))

	assert.InDelta(t, 0.04, float64(Mouse.Sensitivity), 1e-6)
	assert.InDelta(t, 5.0, float64(Locomotion.MaxSpeed), 1e-6)
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	snapshotConfig(t)

	path := filepath.Join(t.TempDir(), "strider.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mouse:\n  senstivity: 0.1\n"), 0o644))

	assert.Error(t, LoadFile(path))
}

func TestLoadFileEmptyIsFine(t *testing.T) {
	snapshotConfig(t)

	path := filepath.Join(t.TempDir(), "strider.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	require.NoError(t, LoadFile(path))
	assert.InDelta(t, 0.04, float64(Mouse.Sensitivity), 1e-6)
}
