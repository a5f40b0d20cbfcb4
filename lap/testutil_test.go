// SPDX-License-Identifier: MIT

// Package lap_test holds helpers shared by the solver tests: fixture
// builders, a brute-force reference and a cross-strategy runner.
package lap_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/lvlap/builder"
	"github.com/katalvlaran/lvlap/lap"
	"github.com/katalvlaran/lvlap/matrix"
)

const (
	// costTol bounds the disagreement allowed between strategies on
	// integer-valued instances.
	costTol = 1e-9

	// bruteMax is the largest n checked against exhaustive enumeration.
	bruteMax = 8
)

var inf = math.Inf(1)

// mustRows wraps a table (+Inf = no edge) or fails the test.
func mustRows(t testing.TB, rows [][]float64) lap.CostSource {
	t.Helper()
	src, err := lap.FromRows(rows)
	require.NoError(t, err)

	return src
}

// mustSparse builds an n×n neighbor source from triples.
func mustSparse(t testing.TB, n int, entries []matrix.Entry) lap.NeighborSource {
	t.Helper()
	s, err := matrix.NewSparse(n, n, entries)
	require.NoError(t, err)
	src, err := lap.FromSparse(s)
	require.NoError(t, err)

	return src
}

// randomInstance returns a seeded n×n instance with integer costs in
// [-5, 20] and edge density p, as a table with +Inf holes. planted keeps
// it feasible.
func randomInstance(t testing.TB, seed int64, n int, p float64, planted bool) [][]float64 {
	t.Helper()
	opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithIntUniformWeight(-5, 20)}
	if planted {
		opts = append(opts, builder.WithPlantedMatching())
	}
	s, err := builder.RandomSparse(n, p, opts...)
	require.NoError(t, err)

	return s.ToDense(inf).ToRows()
}

// bruteForce enumerates every permutation and returns the cheapest total
// over existing edges; ok=false when no perfect matching exists.
func bruteForce(rows [][]float64) (best float64, ok bool) {
	n := len(rows)
	if n == 0 {
		return 0, true
	}
	best = inf
	gen := combin.NewPermutationGenerator(n, n)
	perm := make([]int, n)
	for gen.Next() {
		gen.Permutation(perm)
		total := 0.0
		for i, j := range perm {
			total += rows[i][j]
		}
		if total < best {
			best = total
		}
	}

	return best, !math.IsInf(best, 1)
}

// solveAll runs every strategy on src.
func solveAll(src lap.CostSource, opts ...lap.Option) (map[lap.Strategy]lap.Result, map[lap.Strategy]error) {
	results := make(map[lap.Strategy]lap.Result, len(lap.Strategies))
	errs := make(map[lap.Strategy]error, len(lap.Strategies))
	for _, s := range lap.Strategies {
		results[s], errs[s] = lap.Solve(s, src, opts...)
	}

	return results, errs
}

// requireAgree checks that all strategies reach the same verdict on src and,
// when feasible, the same optimal cost verified against the source.
// It returns the common cost and feasibility.
func requireAgree(t testing.TB, src lap.CostSource) (float64, bool) {
	t.Helper()
	results, errs := solveAll(src)

	ref := errs[lap.StrategyDense]
	for _, s := range lap.Strategies {
		err := errs[s]
		if ref == nil {
			require.NoError(t, err, "strategy %s", s)
		} else {
			require.ErrorIs(t, err, lap.ErrInfeasible, "strategy %s", s)
			var ie *lap.InfeasibleError
			require.True(t, errors.As(err, &ie), "strategy %s", s)
			require.NotEmpty(t, append(ie.Rows, ie.Cols...), "strategy %s", s)
			require.Equal(t, lap.StatusInfeasible, results[s].Status)
		}
	}
	if ref != nil {
		return 0, false
	}

	want := results[lap.StrategyDense].TotalCost
	for _, s := range lap.Strategies {
		res := results[s]
		require.Equal(t, lap.StatusOptimal, res.Status)
		require.InDelta(t, want, res.TotalCost, costTol, "strategy %s", s)
		require.NoError(t, lap.Verify(src, res), "strategy %s", s)
	}

	return want, true
}
