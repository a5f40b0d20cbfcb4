// SPDX-License-Identifier: MIT

package telemetry_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlap/lap"
	"github.com/katalvlaran/lvlap/telemetry"
)

func mustRows(t *testing.T, rows [][]float64) lap.CostSource {
	t.Helper()
	src, err := lap.FromRows(rows)
	require.NoError(t, err)

	return src
}

func TestRecorderSolve(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := telemetry.NewRecorder(reg)
	require.NoError(t, err)

	src := mustRows(t, [][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}})
	res, err := rec.Solve(lap.StrategyDense, src)
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.TotalCost)

	blocked := mustRows(t, [][]float64{{1, 2}, {math.Inf(1), math.Inf(1)}})
	_, err = rec.Solve(lap.StrategyDense, blocked)
	require.ErrorIs(t, err, lap.ErrInfeasible)

	expected := `
# HELP lap_solves_total Completed solves by strategy and status.
# TYPE lap_solves_total counter
lap_solves_total{status="infeasible",strategy="dense"} 1
lap_solves_total{status="optimal",strategy="dense"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "lap_solves_total"))
	count, err := testutil.GatherAndCount(reg, "lap_solve_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	count, err = testutil.GatherAndCount(reg, "lap_augmenting_path_length")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecorderCoreGrowth(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := telemetry.NewRecorder(reg)
	require.NoError(t, err)

	src := mustRows(t, [][]float64{{1, 2}, {5, 3}})
	_, err = rec.Solve(lap.StrategySparse, src, lap.WithCoreSize(1))
	require.NoError(t, err)

	expected := `
# HELP lap_core_expansions_total Sparse core enlargements by reason.
# TYPE lap_core_expansions_total counter
lap_core_expansions_total{reason="pricing"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "lap_core_expansions_total"))
}

func TestNewRecorderTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := telemetry.NewRecorder(reg)
	require.NoError(t, err)
	b, err := telemetry.NewRecorder(reg)
	require.NoError(t, err)

	a.Observe(lap.Result{Status: lap.StatusOptimal}, 0)
	b.Observe(lap.Result{Status: lap.StatusOptimal}, 0)

	expected := `
# HELP lap_solves_total Completed solves by strategy and status.
# TYPE lap_solves_total counter
lap_solves_total{status="optimal",strategy="dense"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "lap_solves_total"))
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := telemetry.NewRecorder(reg)
	require.NoError(t, err)
	rec.Observe(lap.Result{Status: lap.StatusCanceled, Stats: lap.Stats{Strategy: lap.StrategySparse}}, 0)

	path := filepath.Join(t.TempDir(), "lap.prom")
	require.NoError(t, telemetry.WriteTextfile(path, reg))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `lap_solves_total{status="canceled",strategy="sparse"} 1`)

	assert.Error(t, telemetry.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"), reg))
}
