// SPDX-License-Identifier: MIT

// Package lap - CostSource adapters.
//
// Each adapter declares its own capabilities:
//
//	FromMatrix  dense storage; CapFinite, plus CapComplete when no cell is +Inf
//	FromSparse  CSR storage;   CapNeighbors|CapFinite, plus CapComplete when full
//	FromRows    [][]float64 via FromMatrix
//	FromFunc    caller-declared (CapNeighbors is never granted)
//	AsSparse    neighbor-list view of any source
package lap

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlap/matrix"
)

// ---------- dense ----------

// matrixSource adapts a matrix.Matrix. +Inf cells mean "no edge".
type matrixSource struct {
	m    matrix.Matrix
	caps Capability
}

// FromMatrix wraps m as a CostSource. Every cell is validated once: NaN and
// -Inf are rejected, +Inf marks a forbidden pair.
//
// Errors: ErrNilSource, ErrNonFiniteCost.
// Complexity: O(r*c).
func FromMatrix(m matrix.Matrix) (CostSource, error) {
	if m == nil {
		return nil, fmt.Errorf("FromMatrix: %w", ErrNilSource)
	}
	if err := matrix.ValidateFinite(m, true); err != nil {
		return nil, fmt.Errorf("FromMatrix: %w: %w", ErrNonFiniteCost, err)
	}

	caps := CapFinite | CapComplete
	var (
		i, j int
		v    float64
	)
scan:
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if math.IsInf(v, 1) {
				caps &^= CapComplete
				break scan
			}
		}
	}

	return &matrixSource{m: m, caps: caps}, nil
}

// FromRows copies a rectangular table (+Inf = no edge) into a source.
//
// Errors: ErrDimensionMismatch for ragged rows, ErrNonFiniteCost.
func FromRows(rows [][]float64) (CostSource, error) {
	d, err := matrix.NewDenseFrom(rows, matrix.WithAllowPosInf())
	switch {
	case errors.Is(err, matrix.ErrBadShape):
		return nil, fmt.Errorf("FromRows: %w: %w", ErrDimensionMismatch, err)
	case errors.Is(err, matrix.ErrNaNInf):
		return nil, fmt.Errorf("FromRows: %w: %w", ErrNonFiniteCost, err)
	case err != nil:
		return nil, err
	}

	return FromMatrix(d)
}

func (s *matrixSource) Dimensions() (int, int) { return s.m.Rows(), s.m.Cols() }

func (s *matrixSource) Capabilities() Capability { return s.caps }

func (s *matrixSource) Cost(row, col int) (float64, bool, error) {
	v, err := s.m.At(row, col)
	if err != nil {
		if errors.Is(err, matrix.ErrOutOfRange) {
			return 0, false, boundsErrorf("Cost", row, col)
		}
		return 0, false, err
	}
	if math.IsInf(v, 1) {
		return 0, false, nil
	}

	return v, true, nil
}

// rowInto copies row i into dst with +Inf for missing edges. *matrix.Dense
// takes the RowView fast path.
func (s *matrixSource) rowInto(i int, dst []float64) error {
	if d, ok := s.m.(*matrix.Dense); ok {
		row, err := d.RowView(i)
		if err != nil {
			return boundsErrorf("Cost", i, 0)
		}
		copy(dst, row)
		return nil
	}
	var (
		j   int
		err error
	)
	for j = range dst {
		if dst[j], err = s.m.At(i, j); err != nil {
			return boundsErrorf("Cost", i, j)
		}
	}

	return nil
}

// ---------- sparse ----------

// sparseSource adapts an immutable *matrix.Sparse.
type sparseSource struct {
	s    *matrix.Sparse
	caps Capability
}

// FromSparse wraps s as a NeighborSource. Stored values must be finite.
//
// Errors: ErrNilSource, ErrNonFiniteCost.
// Complexity: O(nnz).
func FromSparse(s *matrix.Sparse) (NeighborSource, error) {
	if s == nil {
		return nil, fmt.Errorf("FromSparse: %w", ErrNilSource)
	}
	var e matrix.Entry
	for _, e = range s.Entries() {
		if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
			return nil, fmt.Errorf("FromSparse(%d,%d): %w", e.Row, e.Col, ErrNonFiniteCost)
		}
	}

	return wrapSparse(s), nil
}

// wrapSparse declares capabilities for s without scanning its values.
func wrapSparse(s *matrix.Sparse) *sparseSource {
	caps := CapNeighbors | CapFinite
	if s.NNZ() == s.Rows()*s.Cols() {
		caps |= CapComplete
	}

	return &sparseSource{s: s, caps: caps}
}

func (s *sparseSource) Dimensions() (int, int) { return s.s.Rows(), s.s.Cols() }

func (s *sparseSource) Capabilities() Capability { return s.caps }

func (s *sparseSource) Cost(row, col int) (float64, bool, error) {
	v, ok, err := s.s.Lookup(row, col)
	if err != nil {
		return 0, false, boundsErrorf("Cost", row, col)
	}

	return v, ok, nil
}

func (s *sparseSource) Neighbors(row int) ([]Edge, error) {
	cols, vals, err := s.s.Row(row)
	if err != nil {
		return nil, boundsErrorf("Neighbors", row, 0)
	}
	out := make([]Edge, len(cols))
	var k int
	for k = range cols {
		out[k] = Edge{Col: cols[k], Cost: vals[k]}
	}

	return out, nil
}

// ---------- func ----------

// CostFunc returns the cost of (row, col) and whether the edge exists.
type CostFunc func(row, col int) (float64, bool)

type funcSource struct {
	rows, cols int
	fn         CostFunc
	caps       Capability
}

// FromFunc wraps fn as a CostSource of the given dimensions. caps is the
// caller's own declaration (e.g. CapComplete when fn never returns false);
// CapNeighbors is stripped because a function cannot enumerate neighbors.
// Non-finite values returned by fn surface as ErrNonFiniteCost from Cost.
//
// Panics when rows or cols is negative or fn is nil.
func FromFunc(rows, cols int, fn CostFunc, caps Capability) CostSource {
	if rows < 0 || cols < 0 {
		panic("lap: FromFunc: negative dimensions")
	}
	if fn == nil {
		panic("lap: FromFunc: nil CostFunc")
	}

	return &funcSource{rows: rows, cols: cols, fn: fn, caps: caps &^ CapNeighbors}
}

func (s *funcSource) Dimensions() (int, int) { return s.rows, s.cols }

func (s *funcSource) Capabilities() Capability { return s.caps }

func (s *funcSource) Cost(row, col int) (float64, bool, error) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return 0, false, boundsErrorf("Cost", row, col)
	}
	v, ok := s.fn(row, col)
	if !ok {
		return 0, false, nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, fmt.Errorf("Cost(%d,%d): %w", row, col, ErrNonFiniteCost)
	}

	return v, true, nil
}

// ---------- views ----------

// AsSparse returns src as a NeighborSource. Sources declaring CapNeighbors
// are returned as-is; any other source is materialized through Cost into a
// CSR copy. Values of a CapFinite source are not re-checked, and a
// CapComplete source reporting a missing edge fails.
//
// Errors: ErrNilSource, ErrMissingCapability and any error from src.Cost.
// Complexity: O(r*c) when materializing.
func AsSparse(src CostSource) (NeighborSource, error) {
	if src == nil {
		return nil, fmt.Errorf("AsSparse: %w", ErrNilSource)
	}
	if ns, ok, err := neighborSource(src); err != nil {
		return nil, err
	} else if ok {
		return ns, nil
	}

	var (
		rows, cols = src.Dimensions()
		caps       = src.Capabilities()
		entries    []matrix.Entry
		i, j       int
		v          float64
		ok         bool
		err        error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, ok, err = src.Cost(i, j); err != nil {
				return nil, err
			}
			switch {
			case ok:
				entries = append(entries, matrix.Entry{Row: i, Col: j, Value: v})
			case caps.Has(CapComplete):
				return nil, fmt.Errorf("AsSparse: Cost(%d,%d): no edge in a %s source: %w", i, j, CapComplete, ErrMissingCapability)
			}
		}
	}
	s, err := matrix.NewSparse(rows, cols, entries)
	if err != nil {
		return nil, fmt.Errorf("AsSparse: %w", err)
	}
	if caps.Has(CapFinite) {
		return wrapSparse(s), nil
	}

	return FromSparse(s)
}
