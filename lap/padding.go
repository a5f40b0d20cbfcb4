// SPDX-License-Identifier: MIT

// Package lap - rectangular padding policies.
//
// PadSquare embeds a rows×cols source with rows != cols into a k×k square,
// k = max(rows, cols). Dummy rows or dummy columns carry a constant cost;
// every real edge keeps its own cost and missing edges stay missing. With a
// constant dummy cost every complete assignment pays it the same number of
// times, so the optimum over real pairs is unaffected.
//
// SolveSparseRectangular instead uses the diagonal cost extension, which
// lets rows and columns stay unmatched at a price and keeps the instance
// sparse.
package lap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlap/matrix"
)

// DefaultDummyCost is the cost of every dummy cell added by PadSquare.
const DefaultDummyCost = 0.0

// paddedSource is the square embedding produced by PadSquare.
type paddedSource struct {
	src        CostSource
	rows, cols int
	k          int
	dummy      float64
	caps       Capability
}

// PadSquare embeds src into a k×k source with dummy cells costing dummy.
// The result declares CapComplete only when src does, and never
// CapNeighbors.
//
// Errors: ErrNilSource.
func PadSquare(src CostSource, dummy float64) (CostSource, error) {
	if src == nil {
		return nil, fmt.Errorf("PadSquare: %w", ErrNilSource)
	}
	rows, cols := src.Dimensions()
	k := max(rows, cols)

	return &paddedSource{
		src:   src,
		rows:  rows,
		cols:  cols,
		k:     k,
		dummy: dummy,
		caps:  src.Capabilities() &^ CapNeighbors,
	}, nil
}

func (p *paddedSource) Dimensions() (int, int) { return p.k, p.k }

func (p *paddedSource) Capabilities() Capability { return p.caps }

func (p *paddedSource) Cost(row, col int) (float64, bool, error) {
	if row < 0 || row >= p.k || col < 0 || col >= p.k {
		return 0, false, boundsErrorf("Cost", row, col)
	}
	if row >= p.rows || col >= p.cols {
		return p.dummy, true, nil
	}

	return p.src.Cost(row, col)
}

// SolveRectangular assigns min(rows, cols) pairs of a rows×cols source at
// minimum total cost. It pads with DefaultDummyCost and runs SolveDense.
// Assignment has one entry per real row; rows left without a real column
// (rows > cols) map to -1. TotalCost covers real pairs only. Potentials
// are those of the padded square instance.
func SolveRectangular(src CostSource, opts ...Option) (Result, error) {
	sq, err := PadSquare(src, DefaultDummyCost)
	if err != nil {
		return failed(StrategyDense, Stats{}, err)
	}
	res, err := SolveDense(sq, opts...)
	if err != nil {
		return res, err
	}

	rows, cols := src.Dimensions()
	assignment := make([]int, rows)
	var total float64
	for i := 0; i < rows; i++ {
		j := res.Assignment[i]
		if j >= cols {
			assignment[i] = unassigned
			continue
		}
		assignment[i] = j
		c, _, _ := src.Cost(i, j)
		total += c
	}
	res.Assignment = assignment
	res.TotalCost = total

	return res, nil
}

// SolveSparseRectangular solves a rows×cols source in which any row or
// column may stay unmatched for nonAssign. It builds the diagonal cost
// extension, a (rows+cols)-square instance with 2|E| + rows + cols edges,
// and runs SolveSparse on it:
//
//	                 cols 0..C            cols C..C+R
//	rows 0..R        c[i][j]              h at (i, C+i)
//	rows R..R+C      h at (R+j, j)        0 at (R+j, C+i) for each edge (i, j)
//
// with h = nonAssign/2: an unmatched row pays h through its dummy column
// and the dummy row it displaces pays h again. h must exceed every edge
// cost, so leaving a pair unmatched never beats matching it.
//
// Assignment has one entry per real row, -1 for unmatched rows; unmatched
// columns are those absent from it. TotalCost covers real pairs only.
// Potentials are those of the extended instance.
//
// Errors: ErrNilSource, ErrNonFiniteCost, ErrPaddingTooSmall,
// ErrOutOfBounds, ErrMissingCapability and any error from SolveSparse.
func SolveSparseRectangular(src CostSource, nonAssign float64, opts ...Option) (Result, error) {
	if src == nil {
		return failed(StrategySparse, Stats{}, fmt.Errorf("SolveSparseRectangular: %w", ErrNilSource))
	}
	if math.IsNaN(nonAssign) || math.IsInf(nonAssign, 0) {
		return failed(StrategySparse, Stats{}, fmt.Errorf("SolveSparseRectangular: non-assignment cost %v: %w", nonAssign, ErrNonFiniteCost))
	}
	ext, err := diagonalExtension(src, nonAssign)
	if err != nil {
		return failed(StrategySparse, Stats{}, err)
	}
	res, err := SolveSparse(ext, opts...)
	if err != nil {
		return res, err
	}

	rows, cols := src.Dimensions()
	assignment := make([]int, rows)
	var total float64
	for i := 0; i < rows; i++ {
		j := res.Assignment[i]
		if j >= cols {
			assignment[i] = unassigned
			continue
		}
		assignment[i] = j
		c, _, _ := ext.Cost(i, j)
		total += c
	}
	res.Assignment = assignment
	res.TotalCost = total

	return res, nil
}

// diagonalExtension builds the extended instance used by
// SolveSparseRectangular.
// Complexity: O(|E| log |E|).
func diagonalExtension(src CostSource, nonAssign float64) (*sparseSource, error) {
	ns, err := AsSparse(src)
	if err != nil {
		return nil, err
	}
	var (
		rows, cols = ns.Dimensions()
		half       = nonAssign / 2
		hi         = math.Inf(-1)
		entries    = make([]matrix.Entry, 0, 2*(rows+cols))
		byCol      = make([][]int, cols)
		edges      []Edge
		i, j, k    int
		e          Edge
	)
	for i = 0; i < rows; i++ {
		if edges, err = ns.Neighbors(i); err != nil {
			return nil, err
		}
		for k, e = range edges {
			if e.Col < 0 || e.Col >= cols {
				return nil, boundsErrorf("Neighbors", i, e.Col)
			}
			if k > 0 && e.Col <= edges[k-1].Col {
				return nil, fmt.Errorf("Neighbors(%d): columns not strictly ascending at %d: %w", i, e.Col, ErrMissingCapability)
			}
			if math.IsNaN(e.Cost) || math.IsInf(e.Cost, 0) {
				return nil, fmt.Errorf("Cost(%d,%d): %w", i, e.Col, ErrNonFiniteCost)
			}
			hi = math.Max(hi, e.Cost)
			entries = append(entries, matrix.Entry{Row: i, Col: e.Col, Value: e.Cost})
			byCol[e.Col] = append(byCol[e.Col], i)
		}
		entries = append(entries, matrix.Entry{Row: i, Col: cols + i, Value: half})
	}
	if nonAssign <= 0 || half <= hi {
		return nil, fmt.Errorf("SolveSparseRectangular: half of %g does not exceed max edge cost %g: %w", nonAssign, hi, ErrPaddingTooSmall)
	}
	for j = 0; j < cols; j++ {
		entries = append(entries, matrix.Entry{Row: rows + j, Col: j, Value: half})
		for _, i = range byCol[j] {
			entries = append(entries, matrix.Entry{Row: rows + j, Col: cols + i, Value: 0})
		}
	}

	s, err := matrix.NewSparse(rows+cols, rows+cols, entries)
	if err != nil {
		return nil, fmt.Errorf("SolveSparseRectangular: %w", err)
	}

	return wrapSparse(s), nil
}
