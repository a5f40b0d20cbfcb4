// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose read-only row views so assignment solvers can scan rows without copies.
//   - Enforce a numeric policy (finite-only, optional +Inf for forbidden pairs).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/RowView: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxRowView = "RowView" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w". Preserves the sentinel for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - policy is the numeric policy applied by Set (copied from Options on creation).
type Dense struct {
	r, c   int       // row and column counts (>=0; zero only via NewDenseFrom)
	data   []float64 // contiguous row-major storage (len == r*c)
	policy Options   // numeric guard used by Set
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//   - Stage 3: resolve numeric policy from opts.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Empty (0×0) cost instances are built with NewDenseFrom(nil).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDenseZeroOK(rows, cols, gatherOptions(opts...))
}

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0.
// Complexity: O(rows*cols).
func newDenseZeroOK(rows, cols int, policy Options) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:      rows,
		c:      cols,
		data:   make([]float64, rows*cols),
		policy: policy,
	}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf validates (row,col) and returns the flat offset.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with the per-instance numeric policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (NaN/-Inf always rejected under
//     validation; +Inf only when WithAllowPosInf was given).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for values refused by policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if !m.policy.admits(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// RowView returns row i as a slice aliasing the internal buffer.
// Callers MUST NOT modify the returned slice; it is valid until the next Set.
//
// Errors: ErrOutOfRange for an invalid row.
// Complexity: O(1), no allocation.
func (m *Dense) RowView(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRowView, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, policy: m.policy}
}

// AllClose reports whether m and other share a shape and every pair of
// cells differs by at most eps (DefaultEpsilon unless WithEpsilon is given).
// +Inf cells compare equal only to +Inf.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func (m *Dense) AllClose(other Matrix, opts ...Option) (bool, error) {
	if other == nil {
		return false, ErrNilMatrix
	}
	if other.Rows() != m.r || other.Cols() != m.c {
		return false, ErrDimensionMismatch
	}
	o := gatherOptions(opts...)

	var (
		i, j int
		a, b float64
		err  error
	)
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			a = m.data[i*m.c+j]
			if b, err = other.At(i, j); err != nil {
				return false, err
			}
			if isPosInf(a) || isPosInf(b) {
				if a != b {
					return false, nil
				}
				continue
			}
			if abs(a-b) > o.eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// String renders rows as bracketed, comma-separated lines for diagnostics.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString("[")
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
