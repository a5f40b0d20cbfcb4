// SPDX-License-Identifier: MIT

package lap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlap/lap"
)

func TestStrategyNames(t *testing.T) {
	for _, s := range lap.Strategies {
		got, err := lap.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := lap.ParseStrategy("SPARSE-JV")
	require.NoError(t, err)
	assert.Equal(t, lap.StrategySparseJV, got)

	_, err = lap.ParseStrategy("hungarian")
	assert.ErrorIs(t, err, lap.ErrUnknownStrategy)

	res, err := lap.Solve(lap.Strategy(42), mustRows(t, [][]float64{{1}}))
	assert.ErrorIs(t, err, lap.ErrUnknownStrategy)
	assert.Equal(t, lap.StatusInvalidInput, res.Status)
	assert.Equal(t, "strategy(42)", lap.Strategy(42).String())
}

func TestStatusString(t *testing.T) {
	want := map[lap.Status]string{
		lap.StatusUnsolved:           "unsolved",
		lap.StatusOptimal:            "optimal",
		lap.StatusInfeasible:         "infeasible",
		lap.StatusDimensionMismatch:  "dimension_mismatch",
		lap.StatusNumericInstability: "numeric_instability",
		lap.StatusInvalidInput:       "invalid_input",
		lap.StatusCanceled:           "canceled",
	}
	for s, name := range want {
		assert.Equal(t, name, s.String())
	}
}

func TestInfeasibleErrorMessage(t *testing.T) {
	_, err := lap.SolveDense(mustRows(t, [][]float64{{1, 2}, {inf, inf}}))
	var ie *lap.InfeasibleError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "lap: infeasible assignment: no edges (rows [1])", err.Error())
}
