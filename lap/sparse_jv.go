// SPDX-License-Identifier: MIT

package lap

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// SolveSparseJV solves a sparse instance by imputing every missing edge
// with a padding cost and running the dense Jonker–Volgenant phases on the
// completed table. Rows that the optimum still matches through an imputed
// edge are reported in *InfeasibleError.
//
// Unlike SolveDense it reads the source only through its neighbor view and
// performs no up-front empty-line check; infeasibility is always derived
// from imputed pairs in the optimum.
//
// Complexity: O(n³) time, O(n²) space.
func SolveSparseJV(src CostSource, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	n, err := squareDims("SolveSparseJV", src)
	if err != nil {
		return failed(StrategySparseJV, Stats{}, err)
	}
	rows, err := loadRows(src, n)
	if err != nil {
		return failed(StrategySparseJV, Stats{}, err)
	}

	return solveTable(StrategySparseJV, imputeTable(rows), o)
}

// imputeTable completes rows into a dense table with paddingCost in every
// missing cell.
// Complexity: O(n² + |E|).
func imputeTable(rows *sparseRows) *denseTable {
	var (
		n      = rows.n
		lo, hi = math.Inf(1), math.Inf(-1)
		i, p   int
		nnz    int
	)
	for i = 0; i < n; i++ {
		for _, c := range rows.costs[i] {
			lo, hi = math.Min(lo, c), math.Max(hi, c)
		}
		nnz += len(rows.cols[i])
	}

	t := &denseTable{n: n, c: make([]float64, n*n), maxAbs: rows.maxAbs}
	if nnz == n*n {
		for i = 0; i < n; i++ {
			for p = range rows.cols[i] {
				t.c[i*n+rows.cols[i][p]] = rows.costs[i][p]
			}
		}
		return t
	}

	t.pad = paddingCost(n, lo, hi)
	t.absent = bitset.New(uint(n * n))
	for k := range t.c {
		t.c[k] = t.pad
		t.absent.Set(uint(k))
	}
	for i = 0; i < n; i++ {
		for p = range rows.cols[i] {
			k := i*n + rows.cols[i][p]
			t.c[k] = rows.costs[i][p]
			t.absent.Clear(uint(k))
		}
	}

	return t
}
