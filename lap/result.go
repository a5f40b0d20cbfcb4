// SPDX-License-Identifier: MIT

package lap

import (
	"context"
	"errors"
)

// Status classifies the outcome of a solve.
type Status uint8

const (
	// StatusUnsolved is the zero value; no solver has run.
	StatusUnsolved Status = iota
	// StatusOptimal: Assignment is a minimum-cost bijection.
	StatusOptimal
	// StatusInfeasible: no perfect matching exists (see BlockingRows/BlockingCols).
	StatusInfeasible
	// StatusDimensionMismatch: rows != cols where squareness is required.
	StatusDimensionMismatch
	// StatusNumericInstability: dual feasibility could not be restored.
	StatusNumericInstability
	// StatusInvalidInput: out-of-bounds access, non-finite cost or nil source.
	StatusInvalidInput
	// StatusCanceled: the context passed via WithContext was done.
	StatusCanceled
)

// String returns a stable lower-case name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusDimensionMismatch:
		return "dimension_mismatch"
	case StatusNumericInstability:
		return "numeric_instability"
	case StatusInvalidInput:
		return "invalid_input"
	case StatusCanceled:
		return "canceled"
	default:
		return "unsolved"
	}
}

// Stats are counters collected during one solve.
type Stats struct {
	Strategy       Strategy // solver that produced the result
	Augmentations  int      // per-row phases completed
	ColumnsScanned int      // columns scanned across all phases
	CoreExpansions int      // sparse core enlargements (frontier + pricing)
	PricingRounds  int      // sparse pricing passes over non-core edges
	Recomputed     bool     // potential recomputation was needed
}

// Result is the outcome of a solve. On success Status is StatusOptimal and
// Assignment[i] is the column matched to row i. On failure Assignment and
// the potentials are nil; Status and the Blocking sets describe the cause.
type Result struct {
	Assignment    []int
	TotalCost     float64
	RowPotentials []float64 // u
	ColPotentials []float64 // v
	Status        Status
	BlockingRows  []int
	BlockingCols  []int
	Stats         Stats
}

// IsOptimal reports whether the result carries an optimal assignment.
func (r Result) IsOptimal() bool { return r.Status == StatusOptimal }

// Pairs returns the assignment as (row, col) pairs in row order. Rows
// mapped to -1 (rectangular padding) are skipped.
func (r Result) Pairs() [][2]int {
	out := make([][2]int, 0, len(r.Assignment))
	for i, j := range r.Assignment {
		if j >= 0 {
			out = append(out, [2]int{i, j})
		}
	}

	return out
}

// ColumnOwners inverts Assignment: owners[j] is the row matched to column
// j, or -1. cols is the column count of the source.
func (r Result) ColumnOwners(cols int) []int {
	owners := make([]int, cols)
	for j := range owners {
		owners[j] = -1
	}
	for i, j := range r.Assignment {
		if j >= 0 && j < cols {
			owners[j] = i
		}
	}

	return owners
}

// failed builds the Result returned alongside err; Status follows the
// error class.
func failed(strategy Strategy, stats Stats, err error) (Result, error) {
	stats.Strategy = strategy
	res := Result{Status: statusOf(err), Stats: stats}
	var ie *InfeasibleError
	if errors.As(err, &ie) {
		res.BlockingRows = ie.Rows
		res.BlockingCols = ie.Cols
	}

	return res, err
}

func statusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOptimal
	case errors.Is(err, ErrInfeasible):
		return StatusInfeasible
	case errors.Is(err, ErrDimensionMismatch):
		return StatusDimensionMismatch
	case errors.Is(err, ErrNumericInstability):
		return StatusNumericInstability
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return StatusCanceled
	default:
		return StatusInvalidInput
	}
}
