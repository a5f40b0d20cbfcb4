// SPDX-License-Identifier: MIT

// Package instance reads and writes assignment instances and solve reports.
//
// An Instance is either a dense cost table (Costs, with optional Forbidden
// cells) or a sparse edge list (Edges). Both forms convert to a
// lap.CostSource through Source.
//
// Supported formats, chosen by file extension or explicitly:
//
//	.json        encoding/json
//	.yaml .yml   gopkg.in/yaml.v3
//	.toml        github.com/BurntSushi/toml
//	.csv         dense tables only; an empty or "inf" cell is a forbidden pair
//	.cbor        github.com/fxamacker/cbor/v2
//
// Reports (one per solve) encode to the same formats; CSV reports carry one
// summary line per run.
package instance
