package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "auto", cfg.Output.Color)
	assert.False(t, cfg.Output.Quiet)
	assert.False(t, cfg.Output.Workbench)
	assert.True(t, cfg.Include.Follow)
	assert.Equal(t, "json", cfg.Export.Format)
	assert.Empty(t, cfg.Clipboard.Command)
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	// Use a path that doesn't exist
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Output.Color, cfg.Output.Color)
	assert.True(t, cfg.Include.Follow)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	// Create a temporary config file
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[output]
color = "never"
quiet = true
workbench = true

[include]
follow = false

[export]
format = "yaml"

[clipboard]
command = "xclip"
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "never", cfg.Output.Color)
	assert.True(t, cfg.Output.Quiet)
	assert.True(t, cfg.Output.Workbench)
	assert.False(t, cfg.Include.Follow)
	assert.Equal(t, "yaml", cfg.Export.Format)
	assert.Equal(t, "xclip", cfg.Clipboard.Command)
}

func TestLoadConfig_PartialConfig(t *testing.T) {
	// Create a config with only some fields
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[output]
quiet = true
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// Changed field
	assert.True(t, cfg.Output.Quiet)

	// Unchanged fields should have defaults
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.True(t, cfg.Include.Follow)
	assert.Equal(t, "json", cfg.Export.Format)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `this is not valid toml [`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_RejectsBadColorMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[output]
color = "sometimes"
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sometimes")
}

func TestLoadConfig_RejectsBadExportFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[export]
format = "xml"
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestConfig_Save(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "config.toml")

	cfg := DefaultConfig()
	cfg.Output.Color = "always"
	cfg.Export.Format = "plain"

	err := cfg.Save(path)
	require.NoError(t, err)

	// Verify file was created
	_, err = os.Stat(path)
	require.NoError(t, err)

	// Reload and verify
	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "always", loaded.Output.Color)
	assert.Equal(t, "plain", loaded.Export.Format)
}

func TestConfigPath(t *testing.T) {
	// Test with XDG_CONFIG_HOME set
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/vscolors/config.toml", ConfigPath())
}

func TestConfigPathDefault(t *testing.T) {
	// Test without XDG_CONFIG_HOME (uses default)
	path := ConfigPath()
	assert.Contains(t, path, "vscolors/config.toml")
}
