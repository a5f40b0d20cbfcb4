// SPDX-License-Identifier: MIT

// Package lap: sentinel error set.
// Every solver failure is reported through exactly one of these sentinels
// (possibly wrapped with context); callers match with errors.Is / errors.As.
package lap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDimensionMismatch indicates a non-square source where squareness is
	// required, or a ragged table passed to FromRows.
	ErrDimensionMismatch = errors.New("lap: dimension mismatch")

	// ErrInfeasible indicates that no perfect matching exists.
	// Solvers return it wrapped in *InfeasibleError.
	ErrInfeasible = errors.New("lap: infeasible assignment")

	// ErrNumericInstability indicates the dual-feasibility invariant was
	// violated beyond tolerance and could not be restored.
	ErrNumericInstability = errors.New("lap: numeric instability")

	// ErrOutOfBounds indicates a row or column index beyond declared dimensions.
	ErrOutOfBounds = errors.New("lap: index out of bounds")

	// ErrNonFiniteCost indicates that an existing edge carries NaN or ±Inf.
	ErrNonFiniteCost = errors.New("lap: non-finite edge cost")

	// ErrNilSource indicates a nil CostSource or nil backing storage.
	ErrNilSource = errors.New("lap: nil cost source")

	// ErrMissingCapability indicates a source that does not honor a
	// capability it declares: missing methods, unsorted or duplicate
	// neighbor lists, or an absent edge in a complete source.
	ErrMissingCapability = errors.New("lap: declared capability not implemented")

	// ErrPaddingTooSmall indicates a non-assignment cost whose half does not
	// exceed every edge cost.
	ErrPaddingTooSmall = errors.New("lap: non-assignment cost too small")

	// ErrUnknownStrategy indicates an unsupported Strategy value.
	ErrUnknownStrategy = errors.New("lap: unknown strategy")

	// ErrVerification indicates that Verify found a result inconsistent with
	// its source (not a bijection, cost drift, or broken dual feasibility).
	ErrVerification = errors.New("lap: result verification failed")
)

// InfeasibleError carries the blocking set proving that no perfect
// matching exists. Rows and Cols are sorted ascending; either may be empty.
type InfeasibleError struct {
	Rows   []int  // rows that cannot all be matched
	Cols   []int  // columns that no row can reach
	Reason string // short human-readable cause
}

// Error implements error.
func (e *InfeasibleError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrInfeasible.Error())
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	if len(e.Rows) > 0 {
		fmt.Fprintf(&sb, " (rows %v)", e.Rows)
	}
	if len(e.Cols) > 0 {
		fmt.Fprintf(&sb, " (cols %v)", e.Cols)
	}

	return sb.String()
}

// Unwrap makes errors.Is(err, ErrInfeasible) true.
func (e *InfeasibleError) Unwrap() error { return ErrInfeasible }

// infeasible builds an *InfeasibleError.
func infeasible(reason string, rows, cols []int) error {
	return &InfeasibleError{Rows: rows, Cols: cols, Reason: reason}
}

// boundsErrorf reports an out-of-range coordinate at a source boundary.
func boundsErrorf(op string, row, col int) error {
	return fmt.Errorf("%s(%d,%d): %w", op, row, col, ErrOutOfBounds)
}
