// SPDX-License-Identifier: MIT

package lap_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/lvlap/lap"
)

// lpOptimum solves the assignment LP relaxation of a complete n×n table
// with the simplex method. The polytope is integral, so its optimum equals
// the assignment optimum.
//
// Variables are x[i*n+j]. Constraints: one per row, one per column except
// the last (the dropped one is implied and would break full row rank).
// The initial basis is the spanning path (0,0),(0,1),(1,1),(1,2),... whose
// basic solution is the identity assignment.
func lpOptimum(t *testing.T, rows [][]float64) float64 {
	t.Helper()
	n := len(rows)
	m := 2*n - 1
	c := make([]float64, n*n)
	a := mat.NewDense(m, n*n, nil)
	b := make([]float64, m)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c[i*n+j] = rows[i][j]
			a.Set(i, i*n+j, 1)
			if j < n-1 {
				a.Set(n+j, i*n+j, 1)
			}
		}
		b[i] = 1
	}
	for j := 0; j < n-1; j++ {
		b[n+j] = 1
	}
	basis := make([]int, 0, m)
	for i := 0; i < n; i++ {
		basis = append(basis, i*n+i)
		if i < n-1 {
			basis = append(basis, i*n+i+1)
		}
	}

	opt, _, err := lp.Simplex(c, a, b, 1e-10, basis)
	require.NoError(t, err)

	return opt
}

func TestSolveMatchesLinearProgram(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		n := 2 + int(seed%4)
		rows := randomInstance(t, seed, n, 1, false)
		res, err := lap.SolveDense(mustRows(t, rows))
		require.NoError(t, err)
		require.InDelta(t, lpOptimum(t, rows), res.TotalCost, 1e-6, "seed %d", seed)
	}
}
