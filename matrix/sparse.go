// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (compressed sparse rows).
//
// Purpose:
//   - Hold per-row ordered (column, value) pairs where absence means "no entry".
//   - Give O(1) access to a whole row (aliasing views) and O(log d) point lookups.
//   - Stay immutable after construction; assignment solvers read it concurrently.
//
// Layout:
//   - rowPtr has Rows()+1 offsets; row i occupies [rowPtr[i], rowPtr[i+1]).
//   - colIdx is strictly increasing inside every row.
//
// Complexity quicksheet:
//   - NewSparse: O(nnz log nnz); Row: O(1); Lookup: O(log d); ToDense: O(r*c).
package matrix

import (
	"fmt"
	"sort"
)

// Sparse is an immutable CSR matrix. The zero value is a valid 0×0 matrix.
type Sparse struct {
	r, c   int
	rowPtr []int
	colIdx []int
	vals   []float64
}

// sparseErrorf mirrors denseErrorf for the sparse surface.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// NewSparse builds a rows×cols CSR matrix from entries given in any order.
//
// Implementation:
//   - Stage 1: validate shape (non-negative) and every coordinate.
//   - Stage 2: apply the numeric policy to every value.
//   - Stage 3: stable-sort a copy by (Row, Col) and reject duplicates.
//   - Stage 4: fill rowPtr/colIdx/vals.
//
// Errors:
//   - ErrInvalidDimensions, ErrOutOfRange, ErrNaNInf, ErrDuplicateEntry
//     (coordinate-carrying wrappers keep the sentinel for errors.Is).
//
// Complexity: O(nnz log nnz) time, O(r + nnz) space.
func NewSparse(rows, cols int, entries []Entry, opts ...Option) (*Sparse, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	pol := gatherOptions(opts...)

	var (
		sorted = make([]Entry, len(entries))
		e      Entry
		k      int
	)
	for k, e = range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, sparseErrorf("New", e.Row, e.Col, ErrOutOfRange)
		}
		if !pol.admits(e.Value) {
			return nil, sparseErrorf("New", e.Row, e.Col, ErrNaNInf)
		}
		sorted[k] = e
	}
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Row != sorted[b].Row {
			return sorted[a].Row < sorted[b].Row
		}
		return sorted[a].Col < sorted[b].Col
	})

	s := &Sparse{
		r:      rows,
		c:      cols,
		rowPtr: make([]int, rows+1),
		colIdx: make([]int, len(sorted)),
		vals:   make([]float64, len(sorted)),
	}
	for k, e = range sorted {
		if k > 0 && sorted[k-1].Row == e.Row && sorted[k-1].Col == e.Col {
			return nil, sparseErrorf("New", e.Row, e.Col, ErrDuplicateEntry)
		}
		s.rowPtr[e.Row+1]++
		s.colIdx[k] = e.Col
		s.vals[k] = e.Value
	}
	for k = 0; k < rows; k++ {
		s.rowPtr[k+1] += s.rowPtr[k]
	}

	return s, nil
}

// SparseFromDense keeps every cell of m that is not +Inf.
// Use it to turn a dense cost matrix with forbidden (+Inf) pairs into its
// edge list.
//
// Errors: ErrNilMatrix, errors from m.At.
// Complexity: O(r*c).
func SparseFromDense(m Matrix) (*Sparse, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	var (
		rows, cols = m.Rows(), m.Cols()
		entries    = make([]Entry, 0, rows*cols)
		i, j       int
		v          float64
		err        error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if isPosInf(v) {
				continue
			}
			entries = append(entries, Entry{Row: i, Col: j, Value: v})
		}
	}

	return NewSparse(rows, cols, entries, WithNoValidateNaNInf())
}

// Rows returns the number of rows.
func (s *Sparse) Rows() int { return s.r }

// Cols returns the number of columns.
func (s *Sparse) Cols() int { return s.c }

// NNZ returns the number of stored entries.
func (s *Sparse) NNZ() int { return len(s.colIdx) }

// Row returns the column indices and values of row i. Both slices alias
// internal storage and MUST NOT be modified.
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (s *Sparse) Row(i int) (cols []int, vals []float64, err error) {
	if i < 0 || i >= s.r {
		return nil, nil, sparseErrorf("Row", i, 0, ErrOutOfRange)
	}
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]

	return s.colIdx[lo:hi:hi], s.vals[lo:hi:hi], nil
}

// RowLen returns the number of entries stored in row i (0 for invalid rows).
func (s *Sparse) RowLen(i int) int {
	if i < 0 || i >= s.r {
		return 0
	}

	return s.rowPtr[i+1] - s.rowPtr[i]
}

// Lookup returns the value at (i, j) and whether it is stored.
//
// Errors: ErrOutOfRange.
// Complexity: O(log d) with d = RowLen(i).
func (s *Sparse) Lookup(i, j int) (float64, bool, error) {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return 0, false, sparseErrorf("Lookup", i, j, ErrOutOfRange)
	}
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]
	k := lo + sort.SearchInts(s.colIdx[lo:hi], j)
	if k < hi && s.colIdx[k] == j {
		return s.vals[k], true, nil
	}

	return 0, false, nil
}

// Entries returns all stored triples in (Row, Col) order.
// Complexity: O(nnz).
func (s *Sparse) Entries() []Entry {
	out := make([]Entry, 0, len(s.colIdx))
	var i, k int
	for i = 0; i < s.r; i++ {
		for k = s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			out = append(out, Entry{Row: i, Col: s.colIdx[k], Value: s.vals[k]})
		}
	}

	return out
}

// ToDense materializes s with fill in every absent cell. The result allows
// +Inf so fill may mark forbidden pairs.
// Complexity: O(r*c + nnz).
func (s *Sparse) ToDense(fill float64) *Dense {
	d, _ := newDenseZeroOK(s.r, s.c, Options{eps: DefaultEpsilon})
	var i, k int
	for k = range d.data {
		d.data[k] = fill
	}
	for i = 0; i < s.r; i++ {
		for k = s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			d.data[i*s.c+s.colIdx[k]] = s.vals[k]
		}
	}

	return d
}
