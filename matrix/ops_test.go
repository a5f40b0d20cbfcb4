// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlap/matrix"
)

func TestTranspose(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr.ToRows())

	// generic path
	tr2, err := matrix.Transpose(hide{m})
	require.NoError(t, err)
	assert.Equal(t, tr.ToRows(), tr2.ToRows())

	_, err = matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScale(t *testing.T) {
	m := MustDense(t, [][]float64{{1, -2}, {0, 4}})

	s, err := matrix.Scale(m, -2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-2, 4}, {0, -8}}, s.ToRows())

	_, err = matrix.Scale(m, math.NaN())
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	inf := MustDense(t, [][]float64{{1, math.Inf(1)}}, matrix.WithAllowPosInf())
	_, err = matrix.Scale(inf, -1)
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "+Inf would turn into -Inf")

	pos, err := matrix.Scale(inf, 3)
	require.NoError(t, err)
	v, err := pos.At(0, 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
}

func TestShiftRowsCols(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 2}, {3, 4}})

	r, err := matrix.ShiftRows(m, []float64{10, -1})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{11, 12}, {2, 3}}, r.ToRows())

	c, err := matrix.ShiftCols(m, []float64{0, 5})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 7}, {3, 9}}, c.ToRows())

	_, err = matrix.ShiftRows(m, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ShiftCols(m, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
