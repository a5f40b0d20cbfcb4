// SPDX-License-Identifier: MIT
// Package: lvlap/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrBadSize indicates a negative instance size.
var ErrBadSize = errors.New("builder: invalid size")

// ErrInvalidProbability indicates that an edge probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was called
// without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed wraps a failure from the matrix layer while assembling
// an instance.
var ErrConstructFailed = errors.New("builder: construction failed")
