// SPDX-License-Identifier: MIT

package lap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlap/lap"
	"github.com/katalvlaran/lvlap/matrix"
)

func TestCapabilityString(t *testing.T) {
	assert.Equal(t, "none", lap.Capability(0).String())
	assert.Equal(t, "complete|finite", (lap.CapComplete | lap.CapFinite).String())
	assert.Equal(t, "complete|neighbors|finite", (lap.CapComplete | lap.CapNeighbors | lap.CapFinite).String())
	assert.True(t, (lap.CapNeighbors | lap.CapFinite).Has(lap.CapNeighbors))
	assert.False(t, lap.CapFinite.Has(lap.CapFinite|lap.CapComplete))
}

func TestFromRows(t *testing.T) {
	full := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	assert.Equal(t, lap.CapComplete|lap.CapFinite, full.Capabilities())

	holes := mustRows(t, [][]float64{{1, inf}, {3, 4}})
	assert.Equal(t, lap.CapFinite, holes.Capabilities())
	_, ok, err := holes.Cost(0, 1)
	require.NoError(t, err)
	assert.False(t, ok)
	c, ok, err := holes.Cost(1, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3.0, c)

	_, _, err = holes.Cost(2, 0)
	assert.ErrorIs(t, err, lap.ErrOutOfBounds)
	_, _, err = holes.Cost(0, -1)
	assert.ErrorIs(t, err, lap.ErrOutOfBounds)

	_, err = lap.FromRows([][]float64{{math.NaN()}})
	assert.ErrorIs(t, err, lap.ErrNonFiniteCost)
	_, err = lap.FromRows([][]float64{{-inf}})
	assert.ErrorIs(t, err, lap.ErrNonFiniteCost)
}

func TestFromMatrix(t *testing.T) {
	_, err := lap.FromMatrix(nil)
	assert.ErrorIs(t, err, lap.ErrNilSource)

	d, err := matrix.NewDense(2, 2, matrix.WithAllowPosInf())
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 1, inf))
	src, err := lap.FromMatrix(d)
	require.NoError(t, err)
	rows, cols := src.Dimensions()
	assert.Equal(t, [2]int{2, 2}, [2]int{rows, cols})
	assert.False(t, src.Capabilities().Has(lap.CapComplete))

	d2, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, d2.Set(0, 0, math.NaN()))
	_, err = lap.FromMatrix(d2)
	assert.ErrorIs(t, err, lap.ErrNonFiniteCost)
}

func TestFromSparse(t *testing.T) {
	_, err := lap.FromSparse(nil)
	assert.ErrorIs(t, err, lap.ErrNilSource)

	src := mustSparse(t, 2, []matrix.Entry{{Row: 1, Col: 1, Value: 4}, {Row: 0, Col: 1, Value: 2}, {Row: 1, Col: 0, Value: 3}})
	assert.Equal(t, lap.CapNeighbors|lap.CapFinite, src.Capabilities())

	edges, err := src.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []lap.Edge{{Col: 0, Cost: 3}, {Col: 1, Cost: 4}}, edges)

	_, err = src.Neighbors(2)
	assert.ErrorIs(t, err, lap.ErrOutOfBounds)
	_, _, err = src.Cost(0, 5)
	assert.ErrorIs(t, err, lap.ErrOutOfBounds)

	full := mustSparse(t, 1, []matrix.Entry{{Row: 0, Col: 0, Value: 1}})
	assert.True(t, full.Capabilities().Has(lap.CapComplete))
}

func TestFromFunc(t *testing.T) {
	src := lap.FromFunc(2, 3, func(i, j int) (float64, bool) { return float64(i*10 + j), j != 2 },
		lap.CapNeighbors|lap.CapFinite)
	assert.Equal(t, lap.CapFinite, src.Capabilities(), "a function cannot promise neighbor lists")

	c, ok, err := src.Cost(1, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 11.0, c)
	_, ok, err = src.Cost(1, 2)
	require.NoError(t, err)
	assert.False(t, ok)
	_, _, err = src.Cost(2, 0)
	assert.ErrorIs(t, err, lap.ErrOutOfBounds)

	assert.Panics(t, func() { lap.FromFunc(-1, 1, func(int, int) (float64, bool) { return 0, true }, 0) })
	assert.Panics(t, func() { lap.FromFunc(1, 1, nil, 0) })
}

func TestAsSparse(t *testing.T) {
	_, err := lap.AsSparse(nil)
	assert.ErrorIs(t, err, lap.ErrNilSource)

	dense := mustRows(t, [][]float64{{1, inf}, {inf, 2}})
	ns, err := lap.AsSparse(dense)
	require.NoError(t, err)
	edges, err := ns.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []lap.Edge{{Col: 1, Cost: 2}}, edges)

	native := mustSparse(t, 1, []matrix.Entry{{Row: 0, Col: 0, Value: 1}})
	same, err := lap.AsSparse(native)
	require.NoError(t, err)
	assert.Same(t, native, same)
}

// undeclaredNeighbors has a Neighbors method but does not declare
// CapNeighbors; its lists are deliberately wrong.
type undeclaredNeighbors struct{ rows [][]float64 }

func (u undeclaredNeighbors) Dimensions() (int, int) { return len(u.rows), len(u.rows) }
func (u undeclaredNeighbors) Capabilities() lap.Capability { return lap.CapComplete | lap.CapFinite }
func (u undeclaredNeighbors) Cost(i, j int) (float64, bool, error) {
	return u.rows[i][j], true, nil
}
func (u undeclaredNeighbors) Neighbors(int) ([]lap.Edge, error) {
	return []lap.Edge{{Col: 0, Cost: -1000}}, nil
}

func TestCapabilitiesAreNeverInferred(t *testing.T) {
	src := undeclaredNeighbors{rows: [][]float64{{4, 1}, {2, 3}}}
	for _, s := range lap.Strategies {
		res, err := lap.Solve(s, src)
		require.NoError(t, err, s.String())
		assert.Equal(t, []int{1, 0}, res.Assignment, s.String())
		assert.Equal(t, 3.0, res.TotalCost, s.String())
	}
}

// claimsNeighbors declares CapNeighbors without implementing Neighbors.
type claimsNeighbors struct{}

func (claimsNeighbors) Dimensions() (int, int) { return 1, 1 }
func (claimsNeighbors) Capabilities() lap.Capability { return lap.CapNeighbors }
func (claimsNeighbors) Cost(int, int) (float64, bool, error) {
	return 1, true, nil
}

func TestDeclaredCapabilityMustBeImplemented(t *testing.T) {
	_, err := lap.AsSparse(claimsNeighbors{})
	assert.ErrorIs(t, err, lap.ErrMissingCapability)
	for _, s := range lap.Strategies {
		res, err := lap.Solve(s, claimsNeighbors{})
		require.ErrorIs(t, err, lap.ErrMissingCapability, s.String())
		assert.Equal(t, lap.StatusInvalidInput, res.Status)
	}
}

// shuffledComplete declares a complete neighbor view but repeats column 0
// in row 1.
type shuffledComplete struct{}

func (shuffledComplete) Dimensions() (int, int) { return 2, 2 }
func (shuffledComplete) Capabilities() lap.Capability {
	return lap.CapComplete | lap.CapNeighbors | lap.CapFinite
}
func (shuffledComplete) Cost(int, int) (float64, bool, error) { return 1, true, nil }
func (shuffledComplete) Neighbors(row int) ([]lap.Edge, error) {
	if row == 1 {
		return []lap.Edge{{Col: 0, Cost: 1}, {Col: 0, Cost: 2}}, nil
	}
	return []lap.Edge{{Col: 0, Cost: 1}, {Col: 1, Cost: 2}}, nil
}

func TestCompleteSourceMustHaveEveryEdge(t *testing.T) {
	holey := lap.FromFunc(2, 2, func(i, j int) (float64, bool) {
		return float64(i + j), i != 1 || j != 1
	}, lap.CapComplete|lap.CapFinite)

	_, err := lap.AsSparse(holey)
	assert.ErrorIs(t, err, lap.ErrMissingCapability)
	for _, src := range []lap.CostSource{holey, shuffledComplete{}} {
		for _, s := range lap.Strategies {
			res, err := lap.Solve(s, src)
			require.ErrorIs(t, err, lap.ErrMissingCapability, "%T %s", src, s)
			assert.Equal(t, lap.StatusInvalidInput, res.Status)
		}
	}
}

func TestDeclaredCompleteFinite(t *testing.T) {
	table := [][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}}
	src := lap.FromFunc(3, 3, func(i, j int) (float64, bool) {
		return table[i][j], true
	}, lap.CapComplete|lap.CapFinite)

	ns, err := lap.AsSparse(src)
	require.NoError(t, err)
	assert.True(t, ns.Capabilities().Has(lap.CapComplete|lap.CapFinite|lap.CapNeighbors))

	for _, s := range lap.Strategies {
		res, err := lap.Solve(s, src)
		require.NoError(t, err, s.String())
		assert.Equal(t, []int{1, 0, 2}, res.Assignment, s.String())
		assert.Equal(t, 5.0, res.TotalCost, s.String())
		require.NoError(t, lap.Verify(src, res), s.String())
	}
}
