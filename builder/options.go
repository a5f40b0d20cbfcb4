// SPDX-License-Identifier: MIT
// Package: lvlap/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs. The RNG is not goroutine-safe; do not share it.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a fresh RNG. Seed 0 maps to a fixed non-zero default.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rngFromSeed(seed) }
}

// WithWeightFn overrides the per-cell cost generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithPlantedMatching makes RandomSparse include the edges of one random
// permutation, so a perfect matching always exists.
func WithPlantedMatching() BuilderOption {
	return func(c *builderConfig) { c.planted = true }
}
