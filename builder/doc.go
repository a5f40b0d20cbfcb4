// Package builder generates deterministic assignment instances for tests,
// fuzzing, benchmarks and the command line.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, cost distribution and feasibility policy.
//   - Cost distributions (WeightFn implementations):
//     – DefaultWeightFn:     constant cost DefaultEdgeWeight.
//     – ConstantWeightFn:    fixed user-provided value.
//     – UniformWeightFn:     uniform ∼U[min,max).
//     – IntUniformWeightFn:  integers uniform in [min,max] (many ties).
//     – NormalWeightFn:      Gaussian ∼N(mean,stddev), rounded.
//     – ExponentialWeightFn: exponential ∼Exp(rate), rounded.
//   - Instance constructors:
//     – RandomDense:   n×n table, every cell drawn from the WeightFn.
//     – RandomSparse:  n×n Bernoulli(p) edge pattern, optional planted
//     perfect matching (WithPlantedMatching) so the instance stays feasible.
//     – Geometric:     squared Euclidean distances between two random
//     point clouds in the unit square.
//   - RNG helpers: DeriveRand builds independent, reproducible streams for
//     parallel workers.
//
// Determinism: for a fixed seed and options every constructor returns the
// same instance; cells are drawn in row-major order (i asc, j asc).
package builder
