package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "helicam.toml")

	require.NoError(t, WriteExampleConfig(path))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "helicam.toml")

	toml := `
speed = 8000.0

[shape]
length = 80.0

[cutting]
cut_feed_rate = 350.0
enable_xy_offset_compensation = true
`
	require.NoError(t, os.WriteFile(path, []byte(toml), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 80.0, cfg.Shape.Length)
	assert.Equal(t, 350.0, cfg.Cutting.CutFeedRate)
	assert.True(t, cfg.Cutting.EnableXYOffsetCompensation)
	assert.Equal(t, 8000.0, cfg.Speed)

	// values not in the file keep their defaults
	def := DefaultConfig()
	assert.Equal(t, def.Shape.StockDiameter, cfg.Shape.StockDiameter)
	assert.Equal(t, def.Cutting.LastPassCuttingDepth, cfg.Cutting.LastPassCuttingDepth)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadConfigBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("shape = {"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
