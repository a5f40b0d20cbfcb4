// SPDX-License-Identifier: MIT
// Package: lvlap/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Include each ordered pair (i,j) independently with probability p.
//   - WithPlantedMatching: additionally include (i, π(i)) for one random
//     permutation π drawn BEFORE the Bernoulli trials.
//
// Contract:
//   - n ≥ 0 (else ErrBadSize).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 or a matching is planted
//     (else ErrNeedRandSource).
//   - Every included edge draws its cost from cfg.weightFn(cfg.rng).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(n + |E|).
//
// Determinism:
//   - Stable trial order: for each i asc, j asc; costs are drawn right after
//     the trial that includes the edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlap/matrix"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse samples an n×n sparse cost instance with edge probability p.
func RandomSparse(n int, p float64, opts ...BuilderOption) (*matrix.Sparse, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandomSparse, n, ErrBadSize)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && n > 0 && (cfg.planted || (p > probMin && p < probMax)) {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	var planted []int
	if cfg.planted {
		planted = permRange(n, cfg.rng)
	}

	var (
		entries []matrix.Entry
		i, j    int
		take    bool
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case planted != nil && planted[i] == j:
				take = true
				if cfg.rng != nil && p > probMin && p < probMax {
					_ = cfg.rng.Float64() // keep the trial stream aligned
				}
			case p == probMax:
				take = true
			case p == probMin:
				take = false
			default:
				take = cfg.rng.Float64() < p
			}
			if take {
				entries = append(entries, matrix.Entry{Row: i, Col: j, Value: cfg.weightFn(cfg.rng)})
			}
		}
	}

	s, err := matrix.NewSparse(n, n, entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodRandomSparse, ErrConstructFailed, err)
	}

	return s, nil
}
