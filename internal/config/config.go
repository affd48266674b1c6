package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up next to the
// sources being checked.
const FileName = "sola.yaml"

// Config holds the project settings the command-line tools honor.
type Config struct {
	// Color controls diagnostic coloring: "auto", "always" or "never".
	Color string `yaml:"color"`
	// WarningsAsErrors makes any warning fail the run.
	WarningsAsErrors bool `yaml:"warnings_as_errors"`
}

// Default returns the settings used when no project file exists.
func Default() *Config {
	return &Config{Color: "auto"}
}

// Load reads the project file at path. A missing file is not an error;
// the defaults are returned instead.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadNear looks for the project file in the directory containing the
// given source file.
func LoadNear(sourcePath string) (*Config, error) {
	return Load(filepath.Join(filepath.Dir(sourcePath), FileName))
}

func (c *Config) validate() error {
	switch c.Color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("invalid color mode '%s' (expected auto, always or never)", c.Color)
	}
}

// UseColor decides whether diagnostics should be colored, resolving the
// "auto" mode against the given output stream.
func (c *Config) UseColor(out *os.File) bool {
	switch c.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	}
}
