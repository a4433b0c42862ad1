// Package simulator drives a sheet.Sheet with many concurrent simulated users,
// each issuing a stream of random cell and structural operations.
package simulator

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("simulator: invalid config")

// Config describes one simulation run.
type Config struct {
	Rows       int           `yaml:"rows"`
	Cols       int           `yaml:"cols"`
	Users      int           `yaml:"users"`
	Operations int           `yaml:"operations"` // per user
	Sleep      time.Duration `yaml:"sleep"`      // pause between a user's operations
	UserLimit  int           `yaml:"user_limit"` // sheet sizing hint, <= 0 unlimited
	Seed       int64         `yaml:"seed"`
	MaxRows    int           `yaml:"max_rows"` // add_row is skipped once reached (soft cap), 0 = none
	MaxCols    int           `yaml:"max_cols"` // add_col is skipped once reached (soft cap), 0 = none
	SavePath   string        `yaml:"save_path"`
}

// DefaultConfig returns a small run that finishes in well under a second.
func DefaultConfig() Config {
	return Config{
		Rows:       10,
		Cols:       10,
		Users:      8,
		Operations: 100,
		Sleep:      time.Millisecond,
		Seed:       1,
		MaxRows:    40,
		MaxCols:    40,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the run can start.
func (c Config) Validate() error {
	switch {
	case c.Rows < 1 || c.Cols < 1:
		return fmt.Errorf("%w: shape %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	case c.Users < 1:
		return fmt.Errorf("%w: users must be >= 1, got %d", ErrInvalidConfig, c.Users)
	case c.Operations < 0:
		return fmt.Errorf("%w: operations must be >= 0, got %d", ErrInvalidConfig, c.Operations)
	case c.Sleep < 0:
		return fmt.Errorf("%w: sleep must be >= 0, got %s", ErrInvalidConfig, c.Sleep)
	}

	return nil
}
