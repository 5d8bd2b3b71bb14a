package lpio

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linprog/simplex"
)

// Config is the YAML solver configuration consumed by the CLI. Zero
// values mean "use the solver default", so a partial file is fine.
type Config struct {
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
	BigMFactor    float64 `yaml:"big_m_factor"`
	TwoPhase      bool    `yaml:"two_phase"`
}

// ParseConfig decodes a YAML config stream. Unknown keys are rejected so
// a typo cannot silently fall back to defaults.
func ParseConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("lpio: parse config: %w", err)
	}
	if cfg.Tolerance < 0 || cfg.MaxIterations < 0 {
		return Config{}, fmt.Errorf("lpio: config values must be non-negative: %w", ErrBadFormat)
	}
	if cfg.BigMFactor != 0 && cfg.BigMFactor <= 1 {
		return Config{}, fmt.Errorf("lpio: big_m_factor must exceed 1: %w", ErrBadFormat)
	}

	return cfg, nil
}

// LoadConfig reads a YAML config file from disk.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("lpio: open config: %w", err)
	}
	defer f.Close()

	return ParseConfig(f)
}

// Options translates the config into simplex options, skipping zero
// values so solver defaults apply.
func (c Config) Options() []simplex.Option {
	var opts []simplex.Option
	if c.Tolerance > 0 {
		opts = append(opts, simplex.WithTolerance(c.Tolerance))
	}
	if c.MaxIterations > 0 {
		opts = append(opts, simplex.WithMaxIterations(c.MaxIterations))
	}
	if c.BigMFactor > 1 {
		opts = append(opts, simplex.WithBigMFactor(c.BigMFactor))
	}
	if c.TwoPhase {
		opts = append(opts, simplex.WithTwoPhase())
	}

	return opts
}
