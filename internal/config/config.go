// Package config provides configuration for the draughts server and tools.
package config

import (
	"strings"

	"github.com/lgbarn/draughts-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Network
	ListenAddr   string
	AllowOrigins []string

	// Storage
	DataDir string

	// Rendering
	SquareSize int

	// Replay verification
	VerifyWorkers int

	// Verbosity: 0=errors only, 1=lifecycle events, 2=running commentary
	Verbosity int
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		ListenAddr:    ":8080",
		DataDir:       "draughts-data",
		SquareSize:    48,
		VerifyWorkers: 4,
		Verbosity:     1,
	}
}

// Validate checks the configuration, returning errors.ErrInvalidConfig with
// context for the first bad value found.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ListenAddr) == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "listen address must not be empty")
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "data directory must not be empty")
	}
	if c.SquareSize <= 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "square size %d must be positive", c.SquareSize)
	}
	if c.VerifyWorkers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verify workers %d must be at least 1", c.VerifyWorkers)
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d out of range [0,2]", c.Verbosity)
	}
	return nil
}
