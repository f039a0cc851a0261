// Package config loads the settings of a hex grid from a YAML file and the
// environment.
//
// Precedence: built-in defaults < YAML file < environment variables
// (HEXGRID_LAYOUT, HEXGRID_INSCRIBED_RADIUS).
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexlath/grid"
	"github.com/katalvlaran/hexlath/layout"
)

// ErrInvalidConfig indicates a configuration that cannot build a grid.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults.
const (
	DefaultLayout          = "pointy-odd"
	DefaultInscribedRadius = 1.0
)

// Config describes one grid.
type Config struct {
	// Layout is a layout name accepted by layout.Parse, e.g. "flat-even".
	Layout string `yaml:"layout" env:"HEXGRID_LAYOUT"`
	// InscribedRadius is the center-to-edge distance of a cell; must be > 0.
	InscribedRadius float64 `yaml:"inscribed_radius" env:"HEXGRID_INSCRIBED_RADIUS"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Layout:          DefaultLayout,
		InscribedRadius: DefaultInscribedRadius,
	}
}

// Load reads path (if non-empty), fills unset fields with defaults and
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if cfg.Layout == "" {
		cfg.Layout = DefaultLayout
	}
	if cfg.InscribedRadius == 0 {
		cfg.InscribedRadius = DefaultInscribedRadius
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the layout parses and the radius is finite and
// positive.
func (c Config) Validate() error {
	if _, err := layout.Parse(c.Layout); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	r := c.InscribedRadius
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return fmt.Errorf("%w: inscribed_radius must be finite and > 0, got %v", ErrInvalidConfig, r)
	}
	return nil
}

// NewGrid validates c and builds the grid it describes.
func (c Config) NewGrid() (*grid.Grid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	l, _ := layout.Parse(c.Layout)
	return grid.New(l, c.InscribedRadius)
}
