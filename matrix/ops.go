// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Shape and value transforms on cost tables that leave the optimal
//     assignment predictable: Transpose swaps the roles of rows and columns,
//     Scale multiplies every cost, ShiftRows/ShiftCols add one offset per
//     line (which moves the optimum's total by the sum of offsets only).
//
// Determinism & Performance:
//   - Fixed loop orders (i→j).
//   - Dense fast-path operates on the flat row-major buffer.
//   - Results are new *Dense values carrying the input's numeric policy;
//     O(r*c) time and space.

package matrix

import "fmt"

const (
	opTranspose = "Transpose"
	opScale     = "Scale"
	opShiftRows = "ShiftRows"
	opShiftCols = "ShiftCols"
)

// matrixErrorf wraps err with the operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("matrix.%s: %w", tag, err)
}

// policyOf returns the numeric policy of m, or a permissive default for
// foreign Matrix implementations.
func policyOf(m Matrix) Options {
	if d, ok := m.(*Dense); ok {
		return d.policy
	}
	p := defaultOptions()
	p.allowPosInf = true

	return p
}

// mapCells builds out[i,j] = f(i, j, m[i,j]) and applies the policy of m.
func mapCells(tag string, m Matrix, outRows, outCols int, at func(i, j int) (int, int), f func(i, j int, v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	pol := policyOf(m)
	out, err := newDenseZeroOK(outRows, outCols, pol)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	var (
		rows, cols = m.Rows(), m.Cols()
		i, j, r, c int
		v          float64
	)
	dm, fast := m.(*Dense)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if fast {
				v = dm.data[i*cols+j]
			} else if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			v = f(i, j, v)
			if !pol.admits(v) {
				return nil, matrixErrorf(tag, denseErrorf("Set", i, j, ErrNaNInf))
			}
			r, c = at(i, j)
			out.data[r*outCols+c] = v
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
// Errors: ErrNilMatrix.
// Complexity: O(r·c).
func Transpose(m Matrix) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}

	return mapCells(opTranspose, m, m.Cols(), m.Rows(),
		func(i, j int) (int, int) { return j, i },
		func(_, _ int, v float64) float64 { return v })
}

// Scale returns alpha·m. A negative alpha turns a +Inf cell into -Inf,
// which the default policy rejects with ErrNaNInf.
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(r·c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	if m == nil {
		return nil, matrixErrorf(opScale, ErrNilMatrix)
	}

	return mapCells(opScale, m, m.Rows(), m.Cols(), identity,
		func(_, _ int, v float64) float64 { return v * alpha })
}

// ShiftRows returns m with offsets[i] added to every cell of row i.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(r·c).
func ShiftRows(m Matrix, offsets []float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opShiftRows, ErrNilMatrix)
	}
	if len(offsets) != m.Rows() {
		return nil, matrixErrorf(opShiftRows, ErrDimensionMismatch)
	}

	return mapCells(opShiftRows, m, m.Rows(), m.Cols(), identity,
		func(i, _ int, v float64) float64 { return v + offsets[i] })
}

// ShiftCols returns m with offsets[j] added to every cell of column j.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(r·c).
func ShiftCols(m Matrix, offsets []float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opShiftCols, ErrNilMatrix)
	}
	if len(offsets) != m.Cols() {
		return nil, matrixErrorf(opShiftCols, ErrDimensionMismatch)
	}

	return mapCells(opShiftCols, m, m.Rows(), m.Cols(), identity,
		func(_, j int, v float64) float64 { return v + offsets[j] })
}

func identity(i, j int) (int, int) { return i, j }
