// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlap/internal/config"
	"github.com/katalvlaran/lvlap/lap"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "dense", cfg.Solver.Strategy)
	assert.Equal(t, lap.DefaultEpsilon, cfg.Solver.Epsilon)
	assert.Equal(t, lap.DefaultCoreSize, cfg.Solver.CoreSize)
	assert.GreaterOrEqual(t, cfg.Solver.Workers, 1)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "auto", cfg.Logging.Format)
	assert.Equal(t, config.TextFormat, cfg.Output.Format)
	assert.Equal(t, config.Default(), *cfg)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "lapsolve.yaml", `
solver:
  strategy: sparse
  core_size: 2
  workers: 3
logging:
  level: debug
  format: json
tracing:
  enabled: true
output:
  format: yaml
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sparse", cfg.Solver.Strategy)
	assert.Equal(t, 2, cfg.Solver.CoreSize)
	assert.Equal(t, 3, cfg.Solver.Workers)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Tracing.Enabled)
	assert.False(t, cfg.Tracing.Events)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Len(t, cfg.SolverOptions(), 2)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "lapsolve.json", `{"solver": {"strategy": "sparse", "core_size": 2}}`)
	t.Setenv("LAPSOLVE_SOLVER__CORE_SIZE", "6")
	t.Setenv("LAPSOLVE_METRICS__TEXTFILE", "/tmp/lap.prom")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sparse", cfg.Solver.Strategy)
	assert.Equal(t, 6, cfg.Solver.CoreSize)
	assert.Equal(t, "/tmp/lap.prom", cfg.Metrics.Textfile)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(writeFile(t, "c.ini", "x=1"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "bad.yaml", "solver: [unclosed"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"Strategy", func(c *config.Config) { c.Solver.Strategy = "auction" }},
		{"Epsilon", func(c *config.Config) { c.Solver.Epsilon = -1 }},
		{"CoreSize", func(c *config.Config) { c.Solver.CoreSize = -2 }},
		{"Workers", func(c *config.Config) { c.Solver.Workers = -1 }},
		{"NonAssignCost", func(c *config.Config) { c.Solver.NonAssignCost = -3 }},
		{"Level", func(c *config.Config) { c.Logging.Level = "loud" }},
		{"LogFormat", func(c *config.Config) { c.Logging.Format = "xml" }},
		{"OutputFormat", func(c *config.Config) { c.Output.Format = "xml" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
}
