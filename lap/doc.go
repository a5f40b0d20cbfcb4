// SPDX-License-Identifier: MIT

// Package lap solves the linear assignment problem: given an n×n cost
// source, find the perfect matching of rows to columns with minimum total
// cost.
//
// Three independent strategies share one result model:
//
//   - SolveDense: Jonker–Volgenant shortest augmenting paths over a full
//     table, O(n³). Missing edges are padded; an optimum that needs a
//     padded cell proves infeasibility.
//   - SolveSparse: the same augmenting-path structure restricted to a small
//     per-row core of cheap edges, widened on demand (frontier exhaustion,
//     pricing of non-core edges). Work follows the number of edges.
//   - SolveSparseJV: imputes missing edges of a sparse source and reuses the
//     dense phases.
//
// All strategies agree on the optimal total cost; assignments may differ
// only between equally cheap optima. Every solve is single-threaded and
// deterministic (ties go to the lowest column index) and keeps no state
// between calls, so independent solves may run concurrently.
//
// Cost data reaches solvers through CostSource. Adapters declare their
// structural guarantees explicitly via Capabilities:
//
//	src, _ := lap.FromRows([][]float64{{4, 1}, {2, 3}})
//	res, err := lap.SolveDense(src)
//	// res.Assignment == []int{1, 0}, res.TotalCost == 3
//
// Failures are reported as exactly one error (see errors.go); the Result
// returned alongside carries the matching Status and, for infeasible
// instances, the blocking rows and columns.
//
// Complexity:
//   - SolveDense, SolveSparseJV: O(n³) time, O(n²) space.
//   - SolveSparse: O(n·(n+|E|)) per pricing round, O(n+|E|) space.
package lap
