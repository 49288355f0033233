package config

import (
	"errors"
	"testing"

	errs "github.com/lgbarn/draughts-go/internal/errors"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.ListenAddr == "" {
		t.Error("default ListenAddr is empty")
	}
	if cfg.DataDir == "" {
		t.Error("default DataDir is empty")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty listen address", func(c *Config) { c.ListenAddr = "  " }, true},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, true},
		{"zero square size", func(c *Config) { c.SquareSize = 0 }, true},
		{"negative square size", func(c *Config) { c.SquareSize = -3 }, true},
		{"zero verify workers", func(c *Config) { c.VerifyWorkers = 0 }, true},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
		{"verbosity negative", func(c *Config) { c.Verbosity = -1 }, true},
		{"origins may be empty", func(c *Config) { c.AllowOrigins = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, errs.ErrInvalidConfig) {
					t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
				}
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
