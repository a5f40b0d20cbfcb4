// SPDX-License-Identifier: MIT

package instance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlap/instance"
	"github.com/katalvlaran/lvlap/lap"
	"github.com/katalvlaran/lvlap/matrix"
)

var inf = math.Inf(1)

func denseInstance() *instance.Instance {
	return &instance.Instance{
		Name:      "small",
		Rows:      3,
		Cols:      3,
		Costs:     [][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}},
		Forbidden: [][2]int{{2, 0}},
	}
}

func sparseInstance() *instance.Instance {
	return &instance.Instance{
		Name: "chain",
		Rows: 3,
		Cols: 3,
		Edges: []instance.Edge{
			{Row: 0, Col: 0, Cost: 2}, {Row: 0, Col: 1, Cost: 1},
			{Row: 1, Col: 1, Cost: 3}, {Row: 1, Col: 2, Cost: 1.5},
			{Row: 2, Col: 0, Cost: 0.5}, {Row: 2, Col: 2, Cost: 4},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   instance.Instance
	}{
		{"Negative", instance.Instance{Rows: -1}},
		{"RowCount", instance.Instance{Rows: 2, Cols: 1, Costs: [][]float64{{1}}}},
		{"Ragged", instance.Instance{Rows: 2, Cols: 2, Costs: [][]float64{{1, 2}, {3}}}},
		{"Both", instance.Instance{Rows: 1, Cols: 1, Costs: [][]float64{{1}}, Edges: []instance.Edge{{}}}},
		{"ForbiddenRange", instance.Instance{Rows: 1, Cols: 1, Costs: [][]float64{{1}}, Forbidden: [][2]int{{0, 1}}}},
		{"EdgeRange", instance.Instance{Rows: 2, Cols: 2, Edges: []instance.Edge{{Row: 2, Col: 0}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.in.Validate(), instance.ErrInvalidInstance)
		})
	}

	require.NoError(t, denseInstance().Validate())
	require.NoError(t, sparseInstance().Validate())
	require.NoError(t, (&instance.Instance{}).Validate())
}

func TestTable(t *testing.T) {
	assert.Equal(t, [][]float64{{4, 1, 3}, {2, 0, 5}, {inf, 2, 2}}, denseInstance().Table())
	assert.Equal(t, [][]float64{{2, 1, inf}, {inf, 3, 1.5}, {0.5, inf, 4}}, sparseInstance().Table())
	assert.False(t, denseInstance().IsSparse())
	assert.True(t, sparseInstance().IsSparse())
}

func TestSource(t *testing.T) {
	src, err := denseInstance().Source()
	require.NoError(t, err)
	assert.False(t, src.Capabilities().Has(lap.CapNeighbors))
	res, err := lap.SolveDense(src)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, res.Assignment)
	assert.Equal(t, 5.0, res.TotalCost)

	src, err = sparseInstance().Source()
	require.NoError(t, err)
	assert.True(t, src.Capabilities().Has(lap.CapNeighbors))
	res, err = lap.SolveSparse(src)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, res.Assignment)
	assert.Equal(t, 3.0, res.TotalCost)

	_, err = (&instance.Instance{Rows: 1, Cols: 1, Costs: [][]float64{}}).Source()
	assert.ErrorIs(t, err, instance.ErrInvalidInstance)
}

func TestNegated(t *testing.T) {
	in := &instance.Instance{Rows: 2, Cols: 2, Costs: [][]float64{{4, 1}, {2, 3}}}
	neg, err := in.Negated()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-4, -1}, {-2, -3}}, neg.Costs)
	assert.Equal(t, [][]float64{{4, 1}, {2, 3}}, in.Costs)

	src, err := neg.Source()
	require.NoError(t, err)
	res, err := lap.SolveDense(src)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Assignment)
	assert.Equal(t, -7.0, res.TotalCost)

	negSparse, err := sparseInstance().Negated()
	require.NoError(t, err)
	assert.Equal(t, -0.5, negSparse.Edges[4].Cost)
}

func TestFromMatrices(t *testing.T) {
	d, err := matrix.NewDenseFrom([][]float64{{1, inf}, {2, 3}}, matrix.WithAllowPosInf())
	require.NoError(t, err)
	in := instance.FromDense("d", d)
	assert.Equal(t, [][2]int{{0, 1}}, in.Forbidden)
	assert.Equal(t, [][]float64{{1, inf}, {2, 3}}, in.Table())

	s, err := matrix.NewSparse(2, 2, []matrix.Entry{{Row: 1, Col: 0, Value: 5}})
	require.NoError(t, err)
	in = instance.FromSparse("s", s)
	assert.True(t, in.IsSparse())
	assert.Equal(t, []instance.Edge{{Row: 1, Col: 0, Cost: 5}}, in.Edges)
}
