package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlap/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDenseFromIntegers(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.ToRows())
}

func TestNewDenseFromFloat32(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float32{{0.5}})
	require.NoError(t, err)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.5, v)
}

func TestNewDenseFromEmptyAndRagged(t *testing.T) {
	m, err := matrix.NewDenseFrom[float64](nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())

	m, err = matrix.NewDenseFrom([][]float64{{}, {}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 0, m.Cols())

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestNewDenseFromPolicy(t *testing.T) {
	_, err := matrix.NewDenseFrom([][]float64{{1, math.Inf(1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewDenseFrom([][]float64{{1, math.Inf(1)}}, matrix.WithAllowPosInf())
	require.NoError(t, err)
	v, _ := m.At(0, 1)
	require.True(t, math.IsInf(v, 1))
}
