package config

import (
	"strings"

	"github.com/ayoisaiah/zwoparse/internal/render"
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if c.FTP <= 0 {
		return ErrInvalidFTP.Fmt(c.FTP)
	}

	if c.Weight <= 0 {
		return ErrInvalidWeight.Fmt(c.Weight)
	}

	if !render.IsSupported(c.Format) {
		return ErrInvalidFormat.Fmt(strings.Join(render.Formats, ", "), c.Format)
	}

	if c.MinDuration < 0 {
		return ErrInvalidMinDuration.Fmt(c.MinDuration)
	}

	return nil
}
