package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesDeducerDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 3, cfg.BlockHeight)
	assert.Equal(t, 3, cfg.BlockWidth)
	assert.Equal(t, "123456789", cfg.Marks)
	assert.True(t, cfg.LowerLevelFirst)
	assert.Equal(t, -1, cfg.MaxLevels.Naked)
	assert.Equal(t, -1, cfg.MaxLevels.Hidden)
	assert.Equal(t, -1, cfg.MaxLevels.Linked)

	dc := cfg.DeducerConfig()
	assert.Equal(t, -1, dc.NakedMaxLevel)
	assert.Equal(t, -1, dc.HiddenMaxLevel)
	assert.Equal(t, -1, dc.LinkedMaxLevel)
	assert.True(t, dc.LowerLevelFirst)
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadParsesYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solver.yaml")
	body := "blockHeight: 2\nblockWidth: 2\nmarks: \"1234\"\nlowerLevelFirst: false\nmaxLevels:\n  naked: 2\n  hidden: 1\n  linked: 0\nmaxSolutions: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.BlockHeight)
	assert.Equal(t, 2, cfg.BlockWidth)
	assert.Equal(t, "1234", cfg.Marks)
	assert.False(t, cfg.LowerLevelFirst)
	assert.Equal(t, 2, cfg.MaxLevels.Naked)
	assert.Equal(t, 1, cfg.MaxLevels.Hidden)
	assert.Equal(t, 0, cfg.MaxLevels.Linked)
	assert.Equal(t, 5, cfg.MaxSolutions)

	g, err := cfg.Grid()
	require.NoError(t, err)
	assert.Equal(t, 4, g.Size())
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("blockHeight: [this is not"))
	require.Error(t, err)
	var iie *InvalidInputError
	assert.ErrorAs(t, err, &iie)
}

func TestParsePartialOverrideKeepsOtherDefaults(t *testing.T) {
	cfg, err := Parse([]byte("maxSolutions: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.MaxSolutions)
	assert.Equal(t, Default().BlockHeight, cfg.BlockHeight)
	assert.Equal(t, Default().Marks, cfg.Marks)
}
