// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Cost tables often arrive as *mat.Dense from numeric pipelines; these
// helpers copy in both directions without sharing storage.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromGonum copies any gonum matrix into a new Dense under the numeric
// policy opts. Zero-sized gonum matrices map to a 0×0 Dense.
//
// Errors: ErrNilMatrix, ErrNaNInf (wrapped with coordinates).
// Complexity: O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	var (
		r, c = src.Dims()
		pol  = gatherOptions(opts...)
		i, j int
		v    float64
	)
	d, err := newDenseZeroOK(r, c, pol)
	if err != nil {
		return nil, err
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = src.At(i, j)
			if !pol.admits(v) {
				return nil, denseErrorf("FromGonum", i, j, ErrNaNInf)
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}

// ToGonum copies m into a new *mat.Dense. It returns nil for a matrix with
// a zero dimension, which gonum cannot represent.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	if m.r == 0 || m.c == 0 {
		return nil
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}
