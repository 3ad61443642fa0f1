package config

import (
	"github.com/arthur-debert/dashtabs/pkg/errors"
	"github.com/arthur-debert/dashtabs/pkg/render"
)

// Config is the complete dashtabs configuration
type Config struct {
	Log       LoggingConfig   `koanf:"log"`
	Output    OutputConfig    `koanf:"output"`
	Manifests ManifestsConfig `koanf:"manifests"`
	Modules   ModulesConfig   `koanf:"modules"`
}

// LoggingConfig controls the zerolog setup
type LoggingConfig struct {
	Verbosity int    `koanf:"verbosity"`
	File      string `koanf:"file"`
}

// OutputConfig controls how groups and tabs are rendered
type OutputConfig struct {
	Format string `koanf:"format"`
	Style  string `koanf:"style"`
	Width  int    `koanf:"width"`
}

// ManifestsConfig lists declarative tab manifests
type ManifestsConfig struct {
	Paths []string `koanf:"paths"`
}

// ModulesConfig selects the built-in modules
type ModulesConfig struct {
	Enabled  []string `koanf:"enabled"`
	Disabled []string `koanf:"disabled"`
}

// Validate checks values that koanf cannot type-check
func (c *Config) Validate() error {
	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid output.format %q", c.Output.Format)
	}
	if c.Output.Width < 0 {
		return errors.Newf(errors.ErrConfigValid, "output.width must not be negative, got %d", c.Output.Width)
	}
	if c.Log.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "log.verbosity must not be negative, got %d", c.Log.Verbosity)
	}
	return nil
}

// ActiveModules returns the enabled modules minus the disabled ones, in order
func (c *Config) ActiveModules() []string {
	disabled := make(map[string]bool, len(c.Modules.Disabled))
	for _, name := range c.Modules.Disabled {
		disabled[name] = true
	}

	var active []string
	for _, name := range c.Modules.Enabled {
		if !disabled[name] {
			active = append(active, name)
		}
	}
	return active
}
