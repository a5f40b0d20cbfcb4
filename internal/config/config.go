// SPDX-License-Identifier: MIT

// Package config loads lapsolve settings from an optional YAML or JSON file
// overlaid with LAPSOLVE_* environment variables. Nested keys use a double
// underscore: LAPSOLVE_SOLVER__CORE_SIZE=8 sets solver.core_size.
package config

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlap/instance"
	"github.com/katalvlaran/lvlap/lap"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "LAPSOLVE_"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the full lapsolve configuration.
type Config struct {
	Solver  SolverConfig  `json:"solver"`
	Logging LoggingConfig `json:"logging"`
	Metrics MetricsConfig `json:"metrics"`
	Tracing TracingConfig `json:"tracing"`
	Output  OutputConfig  `json:"output"`
}

// SolverConfig selects and tunes the solver.
type SolverConfig struct {
	Strategy string  `json:"strategy"`
	Epsilon  float64 `json:"epsilon"`
	CoreSize int     `json:"core_size"`
	Workers  int     `json:"workers"` // concurrent solves in batch mode

	// NonAssignCost > 0 lets rectangular instances leave rows and columns
	// unmatched at this price instead of padding them square.
	NonAssignCost float64 `json:"non_assign_cost"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"` // auto, json or console
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `json:"textfile"` // empty disables the export
}

// TracingConfig controls stdout span export.
type TracingConfig struct {
	Enabled bool `json:"enabled"`
	Events  bool `json:"events"` // one span event per augmenting phase
}

// TextFormat selects the human-readable report table instead of an
// encoded format.
const TextFormat = "text"

// OutputConfig controls report encoding.
type OutputConfig struct {
	Format string `json:"format"` // text or an instance format name
}

// Default returns a configuration with every default applied.
func Default() Config {
	var c Config
	c.SetDefaults()

	return c
}

// SetDefaults fills zero values.
func (c *Config) SetDefaults() {
	if c.Solver.Strategy == "" {
		c.Solver.Strategy = lap.StrategyDense.String()
	}
	if c.Solver.Epsilon == 0 {
		c.Solver.Epsilon = lap.DefaultEpsilon
	}
	if c.Solver.CoreSize == 0 {
		c.Solver.CoreSize = lap.DefaultCoreSize
	}
	if c.Solver.Workers == 0 {
		c.Solver.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = zerolog.InfoLevel.String()
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "auto"
	}
	if c.Output.Format == "" {
		c.Output.Format = TextFormat
	}
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := lap.ParseStrategy(c.Solver.Strategy); err != nil {
		return fmt.Errorf("%w: solver.strategy: %w", ErrInvalidConfig, err)
	}
	if math.IsNaN(c.Solver.Epsilon) || math.IsInf(c.Solver.Epsilon, 0) || c.Solver.Epsilon <= 0 {
		return fmt.Errorf("%w: solver.epsilon %v must be finite and > 0", ErrInvalidConfig, c.Solver.Epsilon)
	}
	if c.Solver.CoreSize < 1 {
		return fmt.Errorf("%w: solver.core_size %d must be >= 1", ErrInvalidConfig, c.Solver.CoreSize)
	}
	if c.Solver.Workers < 1 {
		return fmt.Errorf("%w: solver.workers %d must be >= 1", ErrInvalidConfig, c.Solver.Workers)
	}
	if math.IsNaN(c.Solver.NonAssignCost) || math.IsInf(c.Solver.NonAssignCost, 0) || c.Solver.NonAssignCost < 0 {
		return fmt.Errorf("%w: solver.non_assign_cost %v must be finite and >= 0", ErrInvalidConfig, c.Solver.NonAssignCost)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}
	switch c.Logging.Format {
	case "auto", "json", "console":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}
	if c.Output.Format != TextFormat {
		if _, err := instance.ParseFormat(c.Output.Format); err != nil {
			return fmt.Errorf("%w: output.format: %w", ErrInvalidConfig, err)
		}
	}

	return nil
}

// SolverOptions converts the solver section into lap options.
func (c *Config) SolverOptions() []lap.Option {
	return []lap.Option{
		lap.WithEpsilon(c.Solver.Epsilon),
		lap.WithCoreSize(c.Solver.CoreSize),
	}
}

// Load reads path (YAML or JSON; empty means no file), applies environment
// overrides, fills defaults and validates.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		var parser koanf.Parser
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps LAPSOLVE_SOLVER__CORE_SIZE to solver.core_size.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))

	return strings.ReplaceAll(s, "__", ".")
}
