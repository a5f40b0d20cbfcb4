// SPDX-License-Identifier: MIT

// Package lvlap is a linear assignment engine: given an n×n cost table,
// possibly with forbidden pairs, find the bijection of rows to columns with
// the smallest total cost, or prove that none exists.
//
// The module is organized as:
//
//	lap/        solvers (dense Jonker–Volgenant, sparse core-restricted,
//	            sparse with imputed padding), cost sources, verification
//	matrix/     dense and CSR sparse cost storage, transforms, gonum bridge
//	builder/    seeded random instance generators
//	instance/   instance and report files: json, yaml, toml, csv, cbor
//	telemetry/  Prometheus metrics and OpenTelemetry spans for solves
//	cmd/lapsolve  command-line front end
//
// Quick start:
//
//	src, _ := lap.FromRows([][]float64{
//		{4, 1, 3},
//		{2, 0, 5},
//		{3, 2, 2},
//	})
//	res, err := lap.SolveDense(src)
//	// res.Assignment == [1 0 2], res.TotalCost == 5
//
// Forbidden pairs are +Inf cells in dense tables and absent entries in
// sparse ones. When no perfect matching exists the solvers return an
// *lap.InfeasibleError naming the rows (and columns) that block it.
package lvlap
