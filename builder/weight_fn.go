// Package builder provides cost distributions for instance constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the cost assigned to each cell when no custom
// WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces one cell cost from an optional *rand.Rand source.
// It must be deterministic for a given RNG state; panics in constructors
// indicate programmer error in configuration.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
// Complexity: O(1). Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value is NaN or ±Inf. Constant tables make every assignment
// optimal, which is useful for tie-break tests.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn samples uniformly in [min, max). Negative bounds are
// allowed: assignment costs need not be positive.
// Panics if max < min or a bound is not finite.
// If rng is nil, yields min.
func UniformWeightFn(min, max float64) WeightFn {
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require finite min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntUniformWeightFn samples integers uniformly in [min, max] inclusive.
// Small ranges produce many equal costs and exercise tie-breaking.
// Panics if max < min. If rng is nil, yields min.
func IntUniformWeightFn(min, max int) WeightFn {
	if max < min {
		panic(fmt.Sprintf("IntUniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// NormalWeightFn samples N(mean, stddev) rounded to the nearest integer.
// Panics if stddev < 0. If rng is nil, yields DefaultEdgeWeight.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Round(rng.NormFloat64()*stddev + mean)
	}
}

// ExponentialWeightFn samples Exp(rate) (mean 1/rate), rounded.
// Panics if rate ≤ 0. If rng is nil, yields DefaultEdgeWeight.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Round(rng.ExpFloat64() / rate)
	}
}

// WithConstantWeight sets a fixed cost via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets costs ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntUniformWeight sets integer costs in [min,max] via IntUniformWeightFn.
func WithIntUniformWeight(min, max int) BuilderOption {
	return WithWeightFn(IntUniformWeightFn(min, max))
}

// WithNormalWeight sets costs ∼ N(mean,stddev) via NormalWeightFn.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight sets costs ∼ Exp(rate) via ExponentialWeightFn.
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
