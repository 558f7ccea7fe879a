// Package config loads the generator configuration from YAML and
// enforces the generation preconditions up front, so the generators
// themselves never see invalid parameters.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Terrain holds the base terrain shape parameters.
type Terrain struct {
	BaseHeight int     `yaml:"base_height"`
	Variation  float64 `yaml:"variation"`
}

// Village holds the village scheduler and build parameters.
type Village struct {
	// GridSize is the spacing of candidate cells in blocks; MaxOffset
	// the jitter of each cell's origin within the cell.
	GridSize  int `yaml:"grid_size"`
	MaxOffset int `yaml:"max_offset"`

	// MaxDepth bounds the road graph; MaxSize is the village radius.
	MaxDepth int `yaml:"max_depth"`
	MaxSize  int `yaml:"max_size"`

	// Densities are in [0, 100]; each village draws its building
	// density from this range.
	MinDensity int `yaml:"min_density"`
	MaxDensity int `yaml:"max_density"`
}

// Config is the full generator configuration.
type Config struct {
	Seed    int64   `yaml:"seed"`
	Terrain Terrain `yaml:"terrain"`
	Village Village `yaml:"village"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Seed: 0,
		Terrain: Terrain{
			BaseHeight: 66,
			Variation:  14,
		},
		Village: Village{
			GridSize:   384,
			MaxOffset:  128,
			MaxDepth:   2,
			MaxSize:    128,
			MinDensity: 50,
			MaxDensity: 80,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the generation preconditions.
func (c Config) Validate() error {
	v := c.Village
	if v.GridSize <= 0 {
		return fmt.Errorf("village grid_size must be positive, got %d", v.GridSize)
	}
	if v.MaxOffset <= 0 || v.MaxOffset > v.GridSize {
		return fmt.Errorf("village max_offset must be in [1, grid_size], got %d", v.MaxOffset)
	}
	if v.MaxDepth < 0 {
		return fmt.Errorf("village max_depth must not be negative, got %d", v.MaxDepth)
	}
	if v.MaxSize <= 0 {
		return fmt.Errorf("village max_size must be positive, got %d", v.MaxSize)
	}
	if v.MinDensity < 0 || v.MinDensity > 100 {
		return fmt.Errorf("village min_density must be in [0, 100], got %d", v.MinDensity)
	}
	if v.MaxDensity < 0 || v.MaxDensity > 100 {
		return fmt.Errorf("village max_density must be in [0, 100], got %d", v.MaxDensity)
	}
	if v.MinDensity > v.MaxDensity {
		return fmt.Errorf("village min_density %d exceeds max_density %d", v.MinDensity, v.MaxDensity)
	}
	if c.Terrain.BaseHeight < 1 || c.Terrain.BaseHeight > 250 {
		return fmt.Errorf("terrain base_height must be in [1, 250], got %d", c.Terrain.BaseHeight)
	}
	return nil
}
