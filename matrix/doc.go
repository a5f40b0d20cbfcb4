// Package matrix offers cost-table storage for assignment solvers.
//
// The matrix package provides:
//
//   - Dense: row-major r×c storage with safe At/Set and aliasing RowView.
//   - Sparse: immutable compressed-sparse-row storage where an absent cell
//     means "no entry"; Row gives O(1) access to a row's sorted columns.
//   - NewDenseFrom: generic construction from [][]int, [][]float32, ...
//   - FromGonum / ToGonum: copies to and from gonum.org/v1/gonum/mat.
//   - Validators and a numeric policy (finite-only by default, with an
//     opt-in +Inf marker for forbidden pairs).
//
// Errors are package-level sentinels (errors.go); match them with errors.Is.
package matrix
