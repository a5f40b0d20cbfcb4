// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlap/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
type hide struct{ matrix.Matrix }

// MustDense builds a Dense from rows or fails the test.
func MustDense(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows, opts...)
	require.NoError(t, err)

	return m
}

// MustSparse builds a Sparse or fails the test.
func MustSparse(t *testing.T, r, c int, entries []matrix.Entry) *matrix.Sparse {
	t.Helper()
	s, err := matrix.NewSparse(r, c, entries)
	require.NoError(t, err)

	return s
}
