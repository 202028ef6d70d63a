// Package config builds the settings for a conversion from the config file,
// environment variables, command-line flags and interactive prompts.
package config

import (
	"fmt"

	"github.com/ayoisaiah/zwoparse/internal/render"
)

type (
	// Config holds all configuration settings
	Config struct {
		// Format is the output type: txt, csv, json or parquet.
		Format string
		// OutFile is the output path. Empty means "workout.<Format>".
		OutFile string
		// InputPath is the workout file to convert.
		InputPath string
		// Weight is the rider mass in kilograms.
		Weight float64
		// FTP is the rider's functional threshold power in watts.
		FTP int
		// MinDuration is the merge threshold in seconds. Zero disables
		// merging.
		MinDuration int
		// Verbose echoes the rendered output to the console.
		Verbose bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	DefaultFTP     = 266
	DefaultWeight  = 71
	DefaultFormat  = render.FormatTxt
	defaultOutName = "workout"
)

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		FTP:     DefaultFTP,
		Weight:  DefaultWeight,
		Format:  DefaultFormat,
		Verbose: true,
	}
}

// New creates a new Config with default values, applies options in order
// and validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := Default()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithBase returns an Option that replaces the current settings with a copy
// of base.
func WithBase(base *Config) Option {
	return func(c *Config) error {
		*c = *base
		return nil
	}
}

// OutputPath returns the file the rendered output is written to.
func (c *Config) OutputPath() string {
	if c.OutFile != "" {
		return c.OutFile
	}

	return fmt.Sprintf("%s.%s", defaultOutName, c.Format)
}

// Athlete returns the rider values used by the renderers.
func (c *Config) Athlete() render.Athlete {
	return render.Athlete{
		FTP:    c.FTP,
		Weight: c.Weight,
	}
}
