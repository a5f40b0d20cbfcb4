// SPDX-License-Identifier: MIT

// Package lap - dense Jonker–Volgenant solver.
//
// Phases of one solve:
//  1. column reduction: v[j] = min_i c[i][j]; the argmin row claims j;
//  2. reduction transfer: every singly-claimed row moves its slack into v;
//  3. one shortest-augmenting-path phase per free row (ascending);
//  4. u[i] = c[i][x[i]] - v[x[i]] and a final dual-feasibility check.
//
// Determinism: every argmin breaks ties toward the lowest index.
package lap

import (
	"fmt"
	"math"
)

const unassigned = -1

// jvState holds potentials, assignment and per-phase scratch of one solve.
type jvState struct {
	n    int
	t    *denseTable
	x    []int     // row -> col
	y    []int     // col -> row
	v    []float64 // column potentials
	d    []float64 // frontier distances (scratch)
	pred []int     // predecessor row per column (scratch)
	done []bool    // scanned columns (scratch)
	seen []int     // scanned columns in scan order (scratch)
}

func newJVState(t *denseTable) *jvState {
	n := t.n
	s := &jvState{
		n:    n,
		t:    t,
		x:    make([]int, n),
		y:    make([]int, n),
		v:    make([]float64, n),
		d:    make([]float64, n),
		pred: make([]int, n),
		done: make([]bool, n),
		seen: make([]int, 0, n),
	}
	for i := 0; i < n; i++ {
		s.x[i] = unassigned
		s.y[i] = unassigned
	}

	return s
}

// SolveDense computes a minimum-cost perfect matching of a square source
// with the Jonker–Volgenant shortest augmenting path method.
//
// Missing edges are replaced by a padding cost larger than any assignment
// of existing edges; an optimum that still uses one proves infeasibility.
// Rows or columns without any edge fail before solving.
//
// Errors: ErrNilSource, ErrDimensionMismatch, ErrOutOfBounds,
// ErrNonFiniteCost, *InfeasibleError, ErrNumericInstability, context errors.
//
// Complexity: O(n³) time, O(n²) space.
func SolveDense(src CostSource, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	n, err := squareDims("SolveDense", src)
	if err != nil {
		return failed(StrategyDense, Stats{}, err)
	}
	t, err := loadTable(src, n)
	if err != nil {
		return failed(StrategyDense, Stats{}, err)
	}
	if !src.Capabilities().Has(CapComplete) {
		if rows, cols := t.emptyLines(); len(rows) > 0 || len(cols) > 0 {
			return failed(StrategyDense, Stats{}, infeasible("no edges", rows, cols))
		}
	}

	return solveTable(StrategyDense, t, o)
}

// solveTable runs the JV phases over t and converts the outcome into a
// Result. Rows matched through padded cells are reported as blocking.
func solveTable(strategy Strategy, t *denseTable, o Options) (Result, error) {
	var stats Stats
	log := o.logger.With().Str("strategy", strategy.String()).Int("n", t.n).Logger()
	log.Debug().Msg("reducing")

	s := newJVState(t)
	free := s.reduce()
	log.Debug().Int("free", len(free)).Msg("augmenting")

	var err error
	for _, f := range free {
		if err = o.canceled(); err != nil {
			return failed(strategy, stats, fmt.Errorf("%s: %w", strategy, err))
		}
		ev, err := s.augment(f)
		if err != nil {
			return failed(strategy, stats, fmt.Errorf("%s: row %d: %w", strategy, f, err))
		}
		stats.Augmentations++
		stats.ColumnsScanned += ev.Scanned
		log.Trace().Int("row", f).Float64("delta", ev.Delta).Int("path", ev.PathLength).Msg("augmented")
		o.emitAugment(ev)
	}

	log.Debug().Msg("finalizing")
	var blocking []int
	for i, j := range s.x {
		if t.missing(i, j) {
			blocking = append(blocking, i)
		}
	}
	if len(blocking) > 0 {
		return failed(strategy, stats, infeasible("no perfect matching over existing edges", blocking, nil))
	}

	u := s.rowPotentials()
	if i, j, ok := dualViolation(t, u, s.v, o.tolerance(t.maxAbs)); !ok {
		return failed(strategy, stats, fmt.Errorf("%s: edge (%d,%d): %w", strategy, i, j, ErrNumericInstability))
	}
	stats.Strategy = strategy

	return Result{
		Assignment:    s.x,
		TotalCost:     assignmentCost(t, s.x),
		RowPotentials: u,
		ColPotentials: s.v,
		Status:        StatusOptimal,
		Stats:         stats,
	}, nil
}

// reduce performs column reduction and reduction transfer and returns the
// free rows in ascending order.
// Complexity: O(n²).
func (s *jvState) reduce() []int {
	var (
		n       = s.n
		t       = s.t
		claims  = make([]int, n)
		i, j    int
		imin    int
		best, h float64
		j1      int
		freeRow []int
	)

	// Column reduction, scanning columns in reverse so lower columns win
	// contested rows last.
	for j = n - 1; j >= 0; j-- {
		imin = 0
		best = t.at(0, j)
		for i = 1; i < n; i++ {
			if h = t.at(i, j); h < best {
				best, imin = h, i
			}
		}
		s.v[j] = best
		claims[imin]++
		switch {
		case claims[imin] == 1:
			s.x[imin], s.y[j] = j, imin
		case s.v[j] < s.v[s.x[imin]]:
			j1 = s.x[imin]
			s.x[imin], s.y[j] = j, imin
			s.y[j1] = unassigned
		default:
			s.y[j] = unassigned
		}
	}

	// Reduction transfer.
	for i = 0; i < n; i++ {
		switch claims[i] {
		case 0:
			freeRow = append(freeRow, i)
		case 1:
			j1 = s.x[i]
			best = math.Inf(1)
			for j = 0; j < n; j++ {
				if j != j1 {
					best = math.Min(best, t.at(i, j)-s.v[j])
				}
			}
			if !math.IsInf(best, 1) {
				s.v[j1] -= best
			}
		}
	}

	return freeRow
}

// augment runs one shortest-augmenting-path phase from free row f and
// flips the path. Columns are scanned in order of (distance, index).
// It fails only when distances overflow to ±Inf or NaN.
// Complexity: O(n²).
func (s *jvState) augment(f int) (AugmentEvent, error) {
	var (
		n    = s.n
		t    = s.t
		j    int
		jmin int
		i    int
		mind float64
		h    float64
		v2   float64
		end  = unassigned
	)
	s.seen = s.seen[:0]
	for j = 0; j < n; j++ {
		s.d[j] = t.at(f, j) - s.v[j]
		s.pred[j] = f
		s.done[j] = false
	}

	for end == unassigned {
		// Closest unscanned column; lowest index on ties.
		jmin, mind = unassigned, math.Inf(1)
		for j = 0; j < n; j++ {
			if !s.done[j] && s.d[j] < mind {
				jmin, mind = j, s.d[j]
			}
		}
		if jmin == unassigned {
			return AugmentEvent{Row: f}, ErrNumericInstability
		}
		if s.y[jmin] == unassigned {
			end = jmin
			break
		}
		s.done[jmin] = true
		s.seen = append(s.seen, jmin)

		// Relax through the row currently owning jmin.
		i = s.y[jmin]
		h = t.at(i, jmin) - s.v[jmin] - mind
		for j = 0; j < n; j++ {
			if s.done[j] {
				continue
			}
			if v2 = t.at(i, j) - s.v[j] - h; v2 < s.d[j] {
				s.d[j] = v2
				s.pred[j] = i
			}
		}
	}

	// Price update for scanned columns.
	for _, j = range s.seen {
		s.v[j] += s.d[j] - mind
	}

	// Flip the alternating path back to f.
	var length int
	for {
		i = s.pred[end]
		s.y[end] = i
		j, s.x[i] = s.x[i], end
		length++
		if i == f {
			break
		}
		end = j
	}

	return AugmentEvent{Row: f, PathLength: length, Scanned: len(s.seen) + 1, Delta: mind}, nil
}

// rowPotentials derives u from the final assignment.
func (s *jvState) rowPotentials() []float64 {
	u := make([]float64, s.n)
	for i, j := range s.x {
		u[i] = s.t.at(i, j) - s.v[j]
	}

	return u
}

// dualViolation checks u[i]+v[j] <= c[i][j]+tol over existing edges and
// returns the first violating edge.
// Complexity: O(n²).
func dualViolation(t *denseTable, u, v []float64, tol float64) (int, int, bool) {
	var i, j int
	for i = 0; i < t.n; i++ {
		for j = 0; j < t.n; j++ {
			if t.missing(i, j) {
				continue
			}
			if u[i]+v[j] > t.at(i, j)+tol {
				return i, j, false
			}
		}
	}

	return 0, 0, true
}

// assignmentCost sums c[i][x[i]] in row order.
func assignmentCost(t *denseTable, x []int) float64 {
	var total float64
	for i, j := range x {
		total += t.at(i, j)
	}

	return total
}
