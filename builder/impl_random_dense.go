// SPDX-License-Identifier: MIT
// Package: lvlap/builder
//
// impl_random_dense.go - RandomDense(n) constructor.
//
// Contract:
//   - n ≥ 0 (else ErrBadSize); n == 0 yields a 0×0 table.
//   - Cells are drawn from cfg.weightFn(cfg.rng) in row-major order.
//   - cfg.rng may be nil only when the WeightFn ignores it.
//
// Complexity:
//   - Time O(n²), Space O(n²).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlap/matrix"
)

const methodRandomDense = "RandomDense"

// RandomDense returns an n×n cost table with every cell drawn from the
// configured WeightFn.
func RandomDense(n int, opts ...BuilderOption) (*matrix.Dense, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandomDense, n, ErrBadSize)
	}
	cfg := newBuilderConfig(opts...)

	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			rows[i][j] = cfg.weightFn(cfg.rng)
		}
	}
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodRandomDense, ErrConstructFailed, err)
	}

	return m, nil
}

// Geometric returns the n×n table of squared Euclidean distances between
// n "worker" points and n "task" points drawn uniformly from the unit
// square (workers first, then tasks). cfg.weightFn is not used.
func Geometric(n int, opts ...BuilderOption) (*matrix.Dense, error) {
	if n < 0 {
		return nil, fmt.Errorf("Geometric: n=%d: %w", n, ErrBadSize)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && n > 0 {
		return nil, fmt.Errorf("Geometric: %w", ErrNeedRandSource)
	}

	type point struct{ x, y float64 }
	draw := func() []point {
		ps := make([]point, n)
		for k := range ps {
			ps[k] = point{cfg.rng.Float64(), cfg.rng.Float64()}
		}
		return ps
	}
	workers, tasks := draw(), draw()

	rows := make([][]float64, n)
	for i, w := range workers {
		rows[i] = make([]float64, n)
		for j, t := range tasks {
			rows[i][j] = math.Pow(w.x-t.x, 2) + math.Pow(w.y-t.y, 2)
		}
	}
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("Geometric: %w: %w", ErrConstructFailed, err)
	}

	return m, nil
}
