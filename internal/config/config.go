package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/steiner/internal/curve"
)

const (
	DefaultFixed   = 3.0
	DefaultRolling = 1.0
	DefaultOffset  = 1.0
	DefaultSteps   = 300
	DefaultTickMS  = 10
	DefaultTheme   = "cyberpunk"
)

// Config holds curve parameters and playback settings. Precedence is
// flags over config file over defaults, resolved at the CLI layer.
type Config struct {
	Fixed   float64 `yaml:"R"`
	Rolling float64 `yaml:"r"`
	Offset  float64 `yaml:"d"`
	Steps   int     `yaml:"steps"`
	TickMS  int     `yaml:"tick_ms"`
	Theme   string  `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Fixed:   DefaultFixed,
		Rolling: DefaultRolling,
		Offset:  DefaultOffset,
		Steps:   DefaultSteps,
		TickMS:  DefaultTickMS,
		Theme:   DefaultTheme,
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
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params extracts the curve parameter triple. Validation happens in the
// curve package, not here.
func (c *Config) Params() curve.Params {
	return curve.Params{Fixed: c.Fixed, Rolling: c.Rolling, Offset: c.Offset}
}
