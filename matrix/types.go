// SPDX-License-Identifier: MIT

// Package matrix: storage-facing interfaces.
// This file contains ONLY the public Matrix contract and the sparse Entry
// triple. Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Entry is one stored (Row, Col, Value) triple of a sparse matrix.
// Ingestion order is irrelevant; Sparse sorts entries by (Row, Col).
type Entry struct {
	Row   int     // 0-based row index
	Col   int     // 0-based column index
	Value float64 // stored value (finite unless the policy allows +Inf)
}
