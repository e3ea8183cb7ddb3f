// Package config loads and saves run settings as YAML. Parameter values in
// a config are applied through sim.Params, so out-of-range values in a file
// are clamped rather than rejected.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/k-sandesh/edusim/internal/sim"
)

const (
	DefaultDt       = 0.05
	DefaultDuration = 30.0
	DefaultFPS      = 30
	DefaultTheme    = "chalkboard"
)

type Config struct {
	Model    string             `yaml:"model"`
	Theme    string             `yaml:"theme"`
	FPS      int                `yaml:"fps"`
	Dt       float64            `yaml:"dt"`
	Duration float64            `yaml:"duration"`
	Params   map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:    "projectile",
		Theme:    DefaultTheme,
		FPS:      DefaultFPS,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Params:   map[string]float64{},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Dt <= 0 {
		cfg.Dt = DefaultDt
	}
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply copies the config's parameter values into p. Unknown names are
// skipped so configs survive model revisions; known values are clamped by
// the parameter layer.
func (c *Config) Apply(p *sim.Params) {
	for name, val := range c.Params {
		_ = p.Set(name, val)
	}
}
