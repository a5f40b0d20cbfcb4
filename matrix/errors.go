// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors and accessors MUST return these sentinels and tests
// MUST check them via errors.Is. Panics are reserved for invalid options.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for grep-ability. Call sites
// attach coordinates with fmt.Errorf("Dense.At(%d,%d): %w", ...) so callers
// still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> index -> NaN/Inf -> structural (duplicates, ragged rows).

var (
	// ErrBadShape is returned when row slices have unequal lengths or a
	// declared shape disagrees with the supplied data.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates negative (or, for NewDense, zero) dimensions.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy forbids it.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrDuplicateEntry is returned by sparse constructors when the same
	// (row, col) coordinate is supplied twice.
	ErrDuplicateEntry = errors.New("matrix: duplicate sparse entry")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
