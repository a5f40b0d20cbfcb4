// SPDX-License-Identifier: MIT

// Package matrix - constructors from native Go slices.
//
// NewDenseFrom accepts any integer or float element type so callers holding
// integer cost tables (common for assignment benchmarks) need not convert
// by hand. Empty input yields a legal 0×0 matrix; r empty rows yield r×0.
package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint accepted by NewDenseFrom.
type Number interface {
	constraints.Integer | constraints.Float
}

// NewDenseFrom copies a rectangular [][]T into a new Dense.
//
// Implementation:
//   - Stage 1: check every row has len(rows[0]) entries (ErrBadShape).
//   - Stage 2: convert each value to float64 and apply the numeric policy.
//
// Errors:
//   - ErrBadShape for ragged input; ErrNaNInf (wrapped with coordinates)
//     for values refused by policy.
//
// Complexity: O(r*c).
func NewDenseFrom[T Number](rows [][]T, opts ...Option) (*Dense, error) {
	var (
		r    = len(rows)
		c    int
		pol  = gatherOptions(opts...)
		i, j int
		v    float64
	)
	if r > 0 {
		c = len(rows[0])
	}
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrBadShape)
		}
	}
	m, err := newDenseZeroOK(r, c, pol)
	if err != nil {
		return nil, err
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = float64(rows[i][j])
			if !pol.admits(v) {
				return nil, denseErrorf("NewDenseFrom", i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// ToRows returns a copy of m as [][]float64.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}
