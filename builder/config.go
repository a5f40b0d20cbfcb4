// SPDX-License-Identifier: MIT
// Package: lvlap/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng       = nil                (constructors that sample require a seed)
//   • weightFn  = DefaultWeightFn
//   • planted   = false              (RandomSparse keeps pure Bernoulli edges)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	rng      *rand.Rand // nil means "no randomness"
	weightFn WeightFn   // per-cell cost generator
	planted  bool       // RandomSparse: force a random perfect matching
}

// newBuilderConfig applies options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
