// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlap/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateSquare(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, [][]float64{{1, 2}})), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquare(MustDense(t, [][]float64{{1}})))
}

func TestValidateSameShape(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2}})
	require.NoError(t, matrix.ValidateSameShape(a, hide{a}))
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustDense(t, [][]float64{{1}})), matrix.ErrDimensionMismatch)
}

func TestValidateFinite(t *testing.T) {
	loose := MustDense(t, [][]float64{{1, math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.ErrorIs(t, matrix.ValidateFinite(loose, false), matrix.ErrNaNInf)
	require.NoError(t, matrix.ValidateFinite(loose, true))

	nan := MustDense(t, [][]float64{{math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.ErrorIs(t, matrix.ValidateFinite(nan, true), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(nil, true), matrix.ErrNilMatrix)
}
