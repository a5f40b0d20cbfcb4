// SPDX-License-Identifier: MIT

package lap

// recomputePotentials repairs column potentials for a fixed assignment.
//
// With u[i] = c[i][x[i]] - v[x[i]], dual feasibility of every edge (i, j)
// reads v[j] <= v[x[i]] + c[i][j] - c[i][x[i]]. That is a shortest-path
// system over columns, so a Bellman–Ford pass starting from the current v
// restores it, lowering v only. Matched edges stay tight by construction.
//
// It returns false when relaxation has not settled after n+1 sweeps, which
// means a negative cycle: the assignment itself is not optimal.
// Relaxations smaller than tol/1000 are ignored so that rounding noise on
// zero-cost cycles cannot keep the loop alive.
//
// Complexity: O(n·|E|).
func recomputePotentials(rows *sparseRows, x []int, xcost, v []float64, tol float64) bool {
	var (
		n       = rows.n
		slack   = tol / 1000
		sweep   int
		i, p, j int
		cand    float64
		changed bool
	)
	for sweep = 0; sweep <= n; sweep++ {
		changed = false
		for i = 0; i < n; i++ {
			for p, j = range rows.cols[i] {
				cand = v[x[i]] + rows.costs[i][p] - xcost[i]
				if cand < v[j]-slack {
					v[j] = cand
					changed = true
				}
			}
		}
		if !changed {
			return true
		}
	}

	return false
}
