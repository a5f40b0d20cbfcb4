// SPDX-License-Identifier: MIT

// Package lap - sparse core-restricted solver.
//
// The search only follows "core" edges: initially the few cheapest edges of
// every row. Two events grow a core:
//   - frontier: a search from a free row exhausts its frontier; every row of
//     the failed search tree is widened to its full row and the search retried.
//     If all tree rows were already full, they form a Hall violator and the
//     instance is infeasible.
//   - pricing: once every row is matched, each non-core edge is priced
//     against the current potentials; edges with negative reduced cost join
//     their row's core and the row is re-queued.
//
// An assigned row whose core gains an edge cheaper (in reduced cost) than its
// matched edge is unassigned first, so the search never relies on a stale
// dual.
package lap

import (
	"fmt"
	"math"
	"sort"

	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog"
)

// sparseState holds potentials, assignment and search scratch of one solve.
type sparseState struct {
	n     int
	rows  *sparseRows
	core  *coreSet
	x     []int     // row -> col
	xcost []float64 // cost of the matched edge per row
	y     []int     // col -> row
	v     []float64 // column potentials
	tol   float64

	// search scratch, reset between phases via touched
	d        []float64
	pred     []int
	predCost []float64
	done     *bitset.BitSet
	todo     []int
	scanned  []int
	touched  []int
}

func newSparseState(rows *sparseRows, core *coreSet, tol float64) *sparseState {
	n := rows.n
	s := &sparseState{
		n:        n,
		rows:     rows,
		core:     core,
		x:        make([]int, n),
		xcost:    make([]float64, n),
		y:        make([]int, n),
		v:        make([]float64, n),
		tol:      tol,
		d:        make([]float64, n),
		pred:     make([]int, n),
		predCost: make([]float64, n),
		done:     bitset.New(uint(n)),
	}
	for i := 0; i < n; i++ {
		s.x[i] = unassigned
		s.y[i] = unassigned
		s.d[i] = math.Inf(1)
	}

	return s
}

// SolveSparse computes a minimum-cost perfect matching over the edges of a
// square source, searching a per-row core of cheap edges first.
//
// Sources not declaring CapNeighbors are materialized through AsSparse.
// A row or column without edges fails immediately with *InfeasibleError.
// Dual feasibility is verified over all edges at the end; on violation one
// potential recomputation is attempted before ErrNumericInstability.
//
// Errors: ErrNilSource, ErrDimensionMismatch, ErrOutOfBounds,
// ErrNonFiniteCost, *InfeasibleError, ErrNumericInstability, context errors.
//
// Complexity: O(n·(n + |E|)) per round; in practice bounded by sparsity.
func SolveSparse(src CostSource, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	var stats Stats
	n, err := squareDims("SolveSparse", src)
	if err != nil {
		return failed(StrategySparse, stats, err)
	}
	rows, err := loadRows(src, n)
	if err != nil {
		return failed(StrategySparse, stats, err)
	}
	if !src.Capabilities().Has(CapComplete) {
		if er, ec := rows.emptyLines(); len(er) > 0 || len(ec) > 0 {
			return failed(StrategySparse, stats, infeasible("no edges", er, ec))
		}
	}

	log := o.logger.With().Str("strategy", StrategySparse.String()).Int("n", n).Logger()
	core := newCoreSet(rows, o.coreSize)
	s := newSparseState(rows, core, o.tolerance(rows.maxAbs))

	log.Debug().Msg("reducing")
	queue := s.reduce()

	for {
		log.Debug().Int("free", len(queue)).Int("round", stats.PricingRounds).Msg("augmenting")
		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]
			if s.x[f] != unassigned {
				continue
			}
			if err = o.canceled(); err != nil {
				return failed(StrategySparse, stats, fmt.Errorf("%s: %w", StrategySparse, err))
			}
			requeued, err := s.phase(f, o, &stats)
			if err != nil {
				return failed(StrategySparse, stats, err)
			}
			queue = append(queue, requeued...)
		}

		stats.PricingRounds++
		queue = s.price(o, &stats)
		if len(queue) == 0 {
			break
		}
	}

	log.Debug().Msg("finalizing")
	u, err := s.finalize(log, &stats)
	if err != nil {
		return failed(StrategySparse, stats, err)
	}
	stats.Strategy = StrategySparse

	var total float64
	for _, c := range s.xcost {
		total += c
	}

	return Result{
		Assignment:    s.x,
		TotalCost:     total,
		RowPotentials: u,
		ColPotentials: s.v,
		Status:        StatusOptimal,
		Stats:         stats,
	}, nil
}

// reduce seeds v and a partial assignment from core edges and returns the
// free rows in ascending order. Columns without core edges take the minimum
// over all their edges.
// Complexity: O(|E|).
func (s *sparseState) reduce() []int {
	var (
		n       = s.n
		inf     = math.Inf(1)
		argmin  = make([]int, n)
		argcost = make([]float64, n)
		claims  = make([]int, n)
		i, j    int
		p       int
		c       float64
	)
	for j = 0; j < n; j++ {
		s.v[j] = inf
		argmin[j] = unassigned
	}
	// core column minima (ties: lowest row)
	for i = 0; i < n; i++ {
		for _, p = range s.core.cores[i].idx {
			j, c = s.rows.cols[i][p], s.rows.costs[i][p]
			if c < s.v[j] {
				s.v[j], argmin[j], argcost[j] = c, i, c
			}
		}
	}
	// columns unreachable through cores
	for i = 0; i < n; i++ {
		for p, j = range s.rows.cols[i] {
			if argmin[j] == unassigned {
				s.v[j] = math.Min(s.v[j], s.rows.costs[i][p])
			}
		}
	}

	for j = n - 1; j >= 0; j-- {
		i = argmin[j]
		if i == unassigned {
			continue
		}
		claims[i]++
		switch {
		case claims[i] == 1:
			s.match(i, j, argcost[j])
		case s.v[j] < s.v[s.x[i]]:
			s.y[s.x[i]] = unassigned
			s.match(i, j, argcost[j])
		}
	}

	var free []int
	for i = 0; i < n; i++ {
		switch {
		case s.x[i] == unassigned:
			free = append(free, i)
		case claims[i] == 1:
			best := inf
			for _, p = range s.core.cores[i].idx {
				if j = s.rows.cols[i][p]; j != s.x[i] {
					best = math.Min(best, s.rows.costs[i][p]-s.v[j])
				}
			}
			if !math.IsInf(best, 1) {
				s.v[s.x[i]] -= best
			}
		}
	}

	return free
}

func (s *sparseState) match(i, j int, c float64) {
	s.x[i], s.xcost[i], s.y[j] = j, c, i
}

func (s *sparseState) unassign(i int) {
	if j := s.x[i]; j != unassigned {
		s.y[j] = unassigned
		s.x[i] = unassigned
	}
}

// phase matches free row f, widening cores on frontier exhaustion. It
// returns rows unassigned by core growth, to be queued again.
func (s *sparseState) phase(f int, o Options, stats *Stats) ([]int, error) {
	var requeued []int
	for {
		ev, tree, ok := s.search(f)
		stats.ColumnsScanned += ev.Scanned
		if ok {
			stats.Augmentations++
			o.logger.Trace().Int("row", f).Float64("delta", ev.Delta).Int("path", ev.PathLength).Msg("augmented")
			o.emitAugment(ev)
			return requeued, nil
		}

		widened := false
		for _, r := range tree {
			if !s.core.expand(r) {
				continue
			}
			widened = true
			stats.CoreExpansions++
			o.emitCore(CoreEvent{Row: r, Size: s.core.size(r), Reason: "frontier"})
			if r != f && s.stale(r) {
				s.unassign(r)
				requeued = append(requeued, r)
			}
		}
		if !widened {
			sort.Ints(tree)
			return requeued, infeasible(fmt.Sprintf("row %d cannot reach a free column", f), tree, nil)
		}
	}
}

// stale reports whether assigned row i has a core edge whose reduced cost
// undercuts its matched edge beyond tolerance.
func (s *sparseState) stale(i int) bool {
	if s.x[i] == unassigned {
		return false
	}
	u := s.xcost[i] - s.v[s.x[i]]
	for _, p := range s.core.cores[i].idx {
		if s.rows.costs[i][p]-s.v[s.rows.cols[i][p]] < u-s.tol {
			return true
		}
	}

	return false
}

// search runs one shortest-augmenting-path phase from free row f over core
// edges. On success it flips the path. On frontier exhaustion it returns the
// rows of the search tree (f first) and ok=false.
func (s *sparseState) search(f int) (ev AugmentEvent, tree []int, ok bool) {
	s.resetScratch()
	s.relaxRow(f, 0)

	var (
		j, k, best int
		mind       float64
		end        = unassigned
	)
	for end == unassigned {
		if len(s.todo) == 0 {
			tree = make([]int, 0, len(s.scanned)+1)
			tree = append(tree, f)
			for _, j = range s.scanned {
				tree = append(tree, s.y[j])
			}
			return AugmentEvent{Row: f, Scanned: len(s.scanned)}, tree, false
		}

		// closest reached column; lowest index on ties
		best = 0
		for k = 1; k < len(s.todo); k++ {
			a, b := s.todo[k], s.todo[best]
			if s.d[a] < s.d[b] || (s.d[a] == s.d[b] && a < b) {
				best = k
			}
		}
		j = s.todo[best]
		s.todo[best] = s.todo[len(s.todo)-1]
		s.todo = s.todo[:len(s.todo)-1]
		mind = s.d[j]

		if s.y[j] == unassigned {
			end = j
			break
		}
		s.done.Set(uint(j))
		s.scanned = append(s.scanned, j)

		i := s.y[j]
		// offset so that d(i's matched edge) == mind
		s.relaxRow(i, mind-(s.xcost[i]-s.v[j]))
	}

	for _, j = range s.scanned {
		s.v[j] += s.d[j] - mind
	}

	var (
		i      int
		next   int
		length int
	)
	for {
		i = s.pred[end]
		next = s.x[i]
		s.match(i, end, s.predCost[end])
		length++
		if i == f {
			break
		}
		end = next
	}

	return AugmentEvent{Row: f, PathLength: length, Scanned: len(s.scanned) + 1, Delta: mind}, nil, true
}

// relaxRow offers every core edge (i, j) of row i at distance
// offset + c[i][j] - v[j].
func (s *sparseState) relaxRow(i int, offset float64) {
	var (
		j  int
		c  float64
		d2 float64
	)
	for _, p := range s.core.cores[i].idx {
		j, c = s.rows.cols[i][p], s.rows.costs[i][p]
		if s.done.Test(uint(j)) {
			continue
		}
		d2 = offset + c - s.v[j]
		if d2 < s.d[j] {
			if math.IsInf(s.d[j], 1) {
				s.todo = append(s.todo, j)
				s.touched = append(s.touched, j)
			}
			s.d[j] = d2
			s.pred[j] = i
			s.predCost[j] = c
		}
	}
}

func (s *sparseState) resetScratch() {
	for _, j := range s.touched {
		s.d[j] = math.Inf(1)
	}
	s.touched = s.touched[:0]
	s.todo = s.todo[:0]
	s.scanned = s.scanned[:0]
	s.done.ClearAll()
}

// price adds every non-core edge with negative reduced cost (beyond
// tolerance) to its row's core and unassigns the row. It returns the
// unassigned rows in ascending order.
// Complexity: O(|E|).
func (s *sparseState) price(o Options, stats *Stats) []int {
	var (
		requeued []int
		adds     []int
		u        float64
	)
	for i := 0; i < s.n; i++ {
		rc := &s.core.cores[i]
		if rc.full {
			continue
		}
		u = s.xcost[i] - s.v[s.x[i]]
		adds = adds[:0]
		for p, j := range s.rows.cols[i] {
			if rc.member.Test(uint(p)) {
				continue
			}
			if s.rows.costs[i][p]-s.v[j] < u-s.tol {
				adds = append(adds, p)
			}
		}
		if len(adds) == 0 {
			continue
		}
		s.core.add(i, adds)
		stats.CoreExpansions++
		o.emitCore(CoreEvent{Row: i, Size: s.core.size(i), Reason: "pricing"})
		s.unassign(i)
		requeued = append(requeued, i)
	}

	return requeued
}

// finalize derives row potentials and checks dual feasibility over every
// edge. On violation the column potentials are recomputed once for the
// current assignment; a second failure is ErrNumericInstability.
func (s *sparseState) finalize(log zerolog.Logger, stats *Stats) ([]float64, error) {
	u := s.rowPotentials()
	if _, _, ok := s.dualViolation(u); ok {
		return u, nil
	}

	stats.Recomputed = true
	log.Debug().Msg("recomputing potentials")
	if !recomputePotentials(s.rows, s.x, s.xcost, s.v, s.tol) {
		return nil, fmt.Errorf("%s: %w", StrategySparse, ErrNumericInstability)
	}
	u = s.rowPotentials()
	if i, j, ok := s.dualViolation(u); !ok {
		return nil, fmt.Errorf("%s: edge (%d,%d): %w", StrategySparse, i, j, ErrNumericInstability)
	}

	return u, nil
}

func (s *sparseState) rowPotentials() []float64 {
	u := make([]float64, s.n)
	for i, j := range s.x {
		u[i] = s.xcost[i] - s.v[j]
	}

	return u
}

// dualViolation checks u[i]+v[j] <= c[i][j]+tol over all edges.
func (s *sparseState) dualViolation(u []float64) (int, int, bool) {
	for i := 0; i < s.n; i++ {
		for p, j := range s.rows.cols[i] {
			if u[i]+s.v[j] > s.rows.costs[i][p]+s.tol {
				return i, j, false
			}
		}
	}

	return 0, 0, true
}
