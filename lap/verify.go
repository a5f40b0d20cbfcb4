// SPDX-License-Identifier: MIT

// Package lap - result self-checks.
//
// These helpers never trust solver bookkeeping: every number is recomputed
// from the source.
package lap

import (
	"fmt"
	"math"
)

// RecomputeCost sums src.Cost(i, assignment[i]) over all rows. Entries of
// -1 are skipped (rectangular padding).
//
// Errors: ErrNilSource, ErrOutOfBounds, and ErrVerification when an
// assigned pair is not an edge.
// Complexity: O(n) Cost calls.
func RecomputeCost(src CostSource, assignment []int) (float64, error) {
	if src == nil {
		return 0, fmt.Errorf("RecomputeCost: %w", ErrNilSource)
	}
	var total float64
	for i, j := range assignment {
		if j == unassigned {
			continue
		}
		c, ok, err := src.Cost(i, j)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, fmt.Errorf("RecomputeCost: pair (%d,%d) is not an edge: %w", i, j, ErrVerification)
		}
		total += c
	}

	return total, nil
}

// Verify checks an optimal square Result against src:
//   - Assignment is a bijection rows -> cols over existing edges;
//   - TotalCost equals RecomputeCost within tolerance;
//   - u[i] + v[j] <= c[i][j] + tol for every edge, with equality
//     (within tol) on matched edges.
//
// The tolerance is the one solvers use (WithEpsilon scaled by max |cost|).
//
// Errors: ErrVerification (wrapped with the first failing check) or errors
// from src.
// Complexity: O(n²) Cost calls.
func Verify(src CostSource, res Result, opts ...Option) error {
	o := gatherOptions(opts...)
	n, err := squareDims("Verify", src)
	if err != nil {
		return err
	}
	if len(res.Assignment) != n {
		return fmt.Errorf("Verify: %d assigned rows, want %d: %w", len(res.Assignment), n, ErrVerification)
	}

	owner := make([]int, n)
	for j := range owner {
		owner[j] = unassigned
	}
	for i, j := range res.Assignment {
		if j < 0 || j >= n {
			return fmt.Errorf("Verify: row %d -> col %d: %w", i, j, ErrVerification)
		}
		if owner[j] != unassigned {
			return fmt.Errorf("Verify: col %d assigned to rows %d and %d: %w", j, owner[j], i, ErrVerification)
		}
		owner[j] = i
	}

	total, err := RecomputeCost(src, res.Assignment)
	if err != nil {
		return err
	}

	var (
		maxAbs float64
		i, j   int
		c      float64
		ok     bool
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if c, ok, err = src.Cost(i, j); err != nil {
				return err
			} else if ok {
				maxAbs = math.Max(maxAbs, math.Abs(c))
			}
		}
	}
	tol := o.tolerance(maxAbs)
	if math.Abs(total-res.TotalCost) > tol*math.Max(1, float64(n)) {
		return fmt.Errorf("Verify: reported cost %g, recomputed %g: %w", res.TotalCost, total, ErrVerification)
	}

	if len(res.RowPotentials) != n || len(res.ColPotentials) != n {
		return fmt.Errorf("Verify: potentials missing: %w", ErrVerification)
	}
	u, v := res.RowPotentials, res.ColPotentials
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if c, ok, _ = src.Cost(i, j); !ok {
				continue
			}
			if u[i]+v[j] > c+tol {
				return fmt.Errorf("Verify: dual infeasible at (%d,%d): %w", i, j, ErrVerification)
			}
			if res.Assignment[i] == j && math.Abs(u[i]+v[j]-c) > tol {
				return fmt.Errorf("Verify: slack on matched (%d,%d): %w", i, j, ErrVerification)
			}
		}
	}

	return nil
}
