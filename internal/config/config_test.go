package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Color)
	assert.False(t, cfg.WarningsAsErrors)
}

func TestLoadProjectFile(t *testing.T) {
	path := writeConfig(t, `color: never
warnings_as_errors: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "never", cfg.Color)
	assert.True(t, cfg.WarningsAsErrors)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `warnings_as_errors: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Color)
	assert.True(t, cfg.WarningsAsErrors)
}

func TestLoadRejectsInvalidColorMode(t *testing.T) {
	path := writeConfig(t, `color: sometimes
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid color mode 'sometimes'")
}

func TestLoadRejectsMalformedYaml(t *testing.T) {
	path := writeConfig(t, "color: [unterminated\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadNear(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("color: always\n"), 0o644))

	cfg, err := LoadNear(filepath.Join(dir, "token.sola"))
	require.NoError(t, err)
	assert.Equal(t, "always", cfg.Color)
}

func TestUseColorRespectsExplicitModes(t *testing.T) {
	always := &Config{Color: "always"}
	never := &Config{Color: "never"}

	assert.True(t, always.UseColor(os.Stdout))
	assert.False(t, never.UseColor(os.Stdout))
}
