// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultColorMode    = "auto"
	DefaultExportFormat = "json"
)

// Config represents the vscolors configuration.
type Config struct {
	Output    OutputConfig    `toml:"output"`
	Include   IncludeConfig   `toml:"include"`
	Export    ExportConfig    `toml:"export"`
	Clipboard ClipboardConfig `toml:"clipboard"`
}

// OutputConfig holds default output options.
type OutputConfig struct {
	Color     string `toml:"color"` // auto, always, never
	Quiet     bool   `toml:"quiet"`
	Workbench bool   `toml:"workbench"` // Include workbench colors alongside token colors
}

// IncludeConfig holds include-chain options.
type IncludeConfig struct {
	Follow bool `toml:"follow"` // Resolve "include" references in theme files
}

// ExportConfig holds default export options.
type ExportConfig struct {
	Format string `toml:"format"` // json, yaml, plain
}

// ClipboardConfig holds clipboard settings (TUI only).
type ClipboardConfig struct {
	Command string `toml:"command"` // Auto-detected if empty
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Color:     DefaultColorMode,
			Quiet:     false,
			Workbench: false,
		},
		Include: IncludeConfig{
			Follow: true,
		},
		Export: ExportConfig{
			Format: DefaultExportFormat,
		},
		Clipboard: ClipboardConfig{
			Command: "", // Auto-detect
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "vscolors", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q, must be one of: auto, always, never", c.Output.Color)
	}

	switch c.Export.Format {
	case "json", "yaml", "plain":
	default:
		return fmt.Errorf("invalid export format %q, must be one of: json, yaml, plain", c.Export.Format)
	}

	return nil
}
