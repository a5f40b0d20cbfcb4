// SPDX-License-Identifier: MIT

package lap

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// denseTable is a square cost table materialized for the dense solver.
// Missing edges hold pad and are flagged in absent.
type denseTable struct {
	n      int
	c      []float64      // row-major n*n
	absent *bitset.BitSet // nil when every edge exists
	maxAbs float64        // largest |cost| over existing edges
	pad    float64        // value stored in absent cells
}

// at returns c[i][j].
func (t *denseTable) at(i, j int) float64 { return t.c[i*t.n+j] }

// missing reports whether (i, j) is a padded cell.
func (t *denseTable) missing(i, j int) bool {
	return t.absent != nil && t.absent.Test(uint(i*t.n+j))
}

// squareDims validates src and returns n for an n×n source.
func squareDims(op string, src CostSource) (int, error) {
	if src == nil {
		return 0, fmt.Errorf("%s: %w", op, ErrNilSource)
	}
	rows, cols := src.Dimensions()
	if rows != cols {
		return 0, fmt.Errorf("%s: %d rows vs %d cols: %w", op, rows, cols, ErrDimensionMismatch)
	}

	return rows, nil
}

// loadTable copies an n×n source into a denseTable with +Inf in missing
// cells. Sources declaring CapNeighbors are read row by row; *matrixSource
// takes its row fast path; everything else goes through Cost.
//
// A source declaring CapComplete|CapFinite skips the missing-cell and
// non-finite scans; one that then omits an edge fails with
// ErrMissingCapability. CapFinite alone skips the NaN/-Inf check.
//
// Complexity: O(n²).
func loadTable(src CostSource, n int) (*denseTable, error) {
	t := &denseTable{n: n, c: make([]float64, n*n)}
	var (
		caps     = src.Capabilities()
		complete = caps.Has(CapComplete)
		i, j     int
		err      error
	)
	switch s := src.(type) {
	case *matrixSource:
		for i = 0; i < n; i++ {
			if err = s.rowInto(i, t.c[i*n:(i+1)*n]); err != nil {
				return nil, err
			}
		}
	default:
		ns, listed, err := neighborSource(src)
		if err != nil {
			return nil, err
		}
		if listed {
			for i = range t.c {
				t.c[i] = math.Inf(1)
			}
			var edges []Edge
			for i = 0; i < n; i++ {
				if edges, err = ns.Neighbors(i); err != nil {
					return nil, err
				}
				if complete && len(edges) != n {
					return nil, fmt.Errorf("Neighbors(%d): %d edges in a %s source of width %d: %w", i, len(edges), CapComplete, n, ErrMissingCapability)
				}
				for k, e := range edges {
					if e.Col < 0 || e.Col >= n {
						return nil, boundsErrorf("Neighbors", i, e.Col)
					}
					if complete && e.Col != k {
						return nil, fmt.Errorf("Neighbors(%d): column %d at position %d: %w", i, e.Col, k, ErrMissingCapability)
					}
					t.c[i*n+e.Col] = e.Cost
				}
			}
			break
		}
		var (
			v  float64
			ok bool
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if v, ok, err = src.Cost(i, j); err != nil {
					return nil, err
				}
				if !ok {
					if complete {
						return nil, fmt.Errorf("Cost(%d,%d): no edge in a %s source: %w", i, j, CapComplete, ErrMissingCapability)
					}
					v = math.Inf(1)
				}
				t.c[i*n+j] = v
			}
		}
	}

	var (
		lo, hi = math.Inf(1), math.Inf(-1)
		finite = caps.Has(CapFinite)
		v      float64
		k      int
	)
	if complete && finite {
		for _, v = range t.c {
			t.maxAbs = math.Max(t.maxAbs, math.Abs(v))
		}
		return t, nil
	}

	// Flag missing cells, reject NaN/-Inf, track the finite range.
	for k, v = range t.c {
		switch {
		case math.IsInf(v, 1):
			if t.absent == nil {
				t.absent = bitset.New(uint(n * n))
			}
			t.absent.Set(uint(k))
		case !finite && (math.IsNaN(v) || math.IsInf(v, -1)):
			return nil, fmt.Errorf("Cost(%d,%d): %w", k/n, k%n, ErrNonFiniteCost)
		default:
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
			t.maxAbs = math.Max(t.maxAbs, math.Abs(v))
		}
	}
	if t.absent != nil {
		t.pad = paddingCost(n, lo, hi)
		for k = range t.c {
			if t.absent.Test(uint(k)) {
				t.c[k] = t.pad
			}
		}
	}

	return t, nil
}

// paddingCost returns a value P such that any assignment using at least one
// P cell costs strictly more than any assignment using none:
// P = n·(hi−lo) + |hi| + 1. With no finite edge at all it returns 1.
func paddingCost(n int, lo, hi float64) float64 {
	if math.IsInf(lo, 1) {
		return 1
	}

	return float64(n)*(hi-lo) + math.Abs(hi) + 1
}

// emptyLines returns the rows and columns of t without any existing edge.
func (t *denseTable) emptyLines() (rows, cols []int) {
	if t.absent == nil {
		return nil, nil
	}
	var (
		n        = t.n
		i, j     int
		rowEmpty bool
	)
	colSeen := bitset.New(uint(n))
	for i = 0; i < n; i++ {
		rowEmpty = true
		for j = 0; j < n; j++ {
			if !t.absent.Test(uint(i*n + j)) {
				rowEmpty = false
				colSeen.Set(uint(j))
			}
		}
		if rowEmpty {
			rows = append(rows, i)
		}
	}
	for j = 0; j < n; j++ {
		if !colSeen.Test(uint(j)) {
			cols = append(cols, j)
		}
	}

	return rows, cols
}
