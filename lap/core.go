// SPDX-License-Identifier: MIT

package lap

import (
	"fmt"
	"math"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// sparseRows is the full edge set of a square sparse instance.
type sparseRows struct {
	n      int
	cols   [][]int     // per row, strictly ascending
	costs  [][]float64 // aligned with cols
	maxAbs float64
}

// loadRows reads every row of src through its neighbor view and validates
// ordering and bounds. Per-edge finiteness checks are skipped for sources
// declaring CapFinite.
// Complexity: O(nnz) for neighbor sources, O(n²) otherwise.
func loadRows(src CostSource, n int) (*sparseRows, error) {
	ns, err := AsSparse(src)
	if err != nil {
		return nil, err
	}
	r := &sparseRows{n: n, cols: make([][]int, n), costs: make([][]float64, n)}

	var (
		caps     = ns.Capabilities()
		complete = caps.Has(CapComplete)
		finite   = caps.Has(CapFinite)
		edges    []Edge
		i, k     int
		e        Edge
	)
	for i = 0; i < n; i++ {
		if edges, err = ns.Neighbors(i); err != nil {
			return nil, err
		}
		if complete && len(edges) != n {
			return nil, fmt.Errorf("Neighbors(%d): %d edges in a %s source of width %d: %w", i, len(edges), CapComplete, n, ErrMissingCapability)
		}
		r.cols[i] = make([]int, len(edges))
		r.costs[i] = make([]float64, len(edges))
		for k, e = range edges {
			if e.Col < 0 || e.Col >= n {
				return nil, boundsErrorf("Neighbors", i, e.Col)
			}
			if k > 0 && e.Col <= edges[k-1].Col {
				return nil, fmt.Errorf("Neighbors(%d): columns not strictly ascending at %d: %w", i, e.Col, ErrMissingCapability)
			}
			if !finite && (math.IsNaN(e.Cost) || math.IsInf(e.Cost, 0)) {
				return nil, fmt.Errorf("Cost(%d,%d): %w", i, e.Col, ErrNonFiniteCost)
			}
			r.cols[i][k] = e.Col
			r.costs[i][k] = e.Cost
			r.maxAbs = math.Max(r.maxAbs, math.Abs(e.Cost))
		}
	}

	return r, nil
}

// emptyLines returns rows and columns without any edge.
func (r *sparseRows) emptyLines() (rows, cols []int) {
	seen := bitset.New(uint(r.n))
	var i int
	for i = 0; i < r.n; i++ {
		if len(r.cols[i]) == 0 {
			rows = append(rows, i)
		}
		for _, j := range r.cols[i] {
			seen.Set(uint(j))
		}
	}
	for i = 0; i < r.n; i++ {
		if !seen.Test(uint(i)) {
			cols = append(cols, i)
		}
	}

	return rows, cols
}

// cost returns the cost of (i, j) and whether the edge exists.
// Complexity: O(log d).
func (r *sparseRows) cost(i, j int) (float64, bool) {
	k := sort.SearchInts(r.cols[i], j)
	if k < len(r.cols[i]) && r.cols[i][k] == j {
		return r.costs[i][k], true
	}

	return 0, false
}

// rowCore is the subset of a row's edges visible to the augmenting search.
// idx lists positions into the full row in ascending column order.
type rowCore struct {
	idx    []int
	member *bitset.BitSet // membership over full-row positions
	full   bool
}

// coreSet holds one rowCore per row.
type coreSet struct {
	rows  *sparseRows
	cores []rowCore
}

// newCoreSet seeds every row with its k cheapest edges (ties: lower column).
// Complexity: O(nnz log d).
func newCoreSet(rows *sparseRows, k int) *coreSet {
	cs := &coreSet{rows: rows, cores: make([]rowCore, rows.n)}
	var (
		i, p  int
		order []int
	)
	for i = 0; i < rows.n; i++ {
		d := len(rows.cols[i])
		rc := rowCore{member: bitset.New(uint(d))}
		if d <= k {
			rc.full = true
			for p = 0; p < d; p++ {
				rc.member.Set(uint(p))
			}
		} else {
			order = order[:0]
			for p = 0; p < d; p++ {
				order = append(order, p)
			}
			costs := rows.costs[i]
			sort.SliceStable(order, func(a, b int) bool { return costs[order[a]] < costs[order[b]] })
			for _, p = range order[:k] {
				rc.member.Set(uint(p))
			}
		}
		rc.idx = positions(rc.member, d)
		cs.cores[i] = rc
	}

	return cs
}

// positions lists set bits of m below d in ascending order.
func positions(m *bitset.BitSet, d int) []int {
	out := make([]int, 0, m.Count())
	for p, ok := m.NextSet(0); ok && int(p) < d; p, ok = m.NextSet(p + 1) {
		out = append(out, int(p))
	}

	return out
}

// expand makes row i's core equal to its full row. It reports whether the
// core changed.
func (cs *coreSet) expand(i int) bool {
	rc := &cs.cores[i]
	if rc.full {
		return false
	}
	d := len(cs.rows.cols[i])
	for p := 0; p < d; p++ {
		rc.member.Set(uint(p))
	}
	rc.idx = positions(rc.member, d)
	rc.full = true

	return true
}

// add inserts full-row positions ps into row i's core.
func (cs *coreSet) add(i int, ps []int) {
	rc := &cs.cores[i]
	for _, p := range ps {
		rc.member.Set(uint(p))
	}
	d := len(cs.rows.cols[i])
	rc.idx = positions(rc.member, d)
	rc.full = len(rc.idx) == d
}

// size returns the number of core edges of row i.
func (cs *coreSet) size(i int) int { return len(cs.cores[i].idx) }
