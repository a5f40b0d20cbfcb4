// SPDX-License-Identifier: MIT

// Package lap - cost source contracts.
//
// A CostSource is the only thing solvers see of the caller's data. It is
// read-only for the duration of a solve. Structural guarantees (complete,
// neighbor lists, finite values) are never inferred from the method set of a
// type: each implementation declares them through Capabilities, and solvers
// consult that declaration only.
package lap

import (
	"fmt"
	"strings"
)

// Capability is a bit set of structural guarantees declared by a source.
type Capability uint8

const (
	// CapComplete: every (row, col) pair has an edge.
	CapComplete Capability = 1 << iota

	// CapNeighbors: the source implements NeighborSource and its Neighbors
	// lists are authoritative (no edge outside them).
	CapNeighbors

	// CapFinite: every edge cost has been validated finite on construction.
	CapFinite
)

// Has reports whether every bit of want is declared.
func (c Capability) Has(want Capability) bool { return c&want == want }

// String lists declared capabilities, e.g. "complete|finite".
func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	if c.Has(CapComplete) {
		parts = append(parts, "complete")
	}
	if c.Has(CapNeighbors) {
		parts = append(parts, "neighbors")
	}
	if c.Has(CapFinite) {
		parts = append(parts, "finite")
	}

	return strings.Join(parts, "|")
}

// Edge is one (column, cost) entry of a row.
type Edge struct {
	Col  int
	Cost float64
}

// CostSource is the minimal cost abstraction consumed by every solver.
type CostSource interface {
	// Dimensions returns the fixed (rows, cols) of the source.
	Dimensions() (rows, cols int)

	// Cost returns the cost of edge (row, col). ok=false means "no edge".
	// Out-of-range indices return an error matching ErrOutOfBounds.
	Cost(row, col int) (cost float64, ok bool, err error)

	// Capabilities returns the guarantees this source explicitly declares.
	Capabilities() Capability
}

// NeighborSource adds per-row edge enumeration for sparse data.
// Solvers use it only when Capabilities() declares CapNeighbors.
type NeighborSource interface {
	CostSource

	// Neighbors returns the edges of row sorted by ascending column.
	// The returned slice is owned by the caller.
	Neighbors(row int) ([]Edge, error)
}

// neighborSource returns src as a NeighborSource when it declares
// CapNeighbors. A source declaring the capability without implementing
// Neighbors fails with ErrMissingCapability.
func neighborSource(src CostSource) (NeighborSource, bool, error) {
	if !src.Capabilities().Has(CapNeighbors) {
		return nil, false, nil
	}
	ns, ok := src.(NeighborSource)
	if !ok {
		return nil, false, fmt.Errorf("%T declares %s: %w", src, CapNeighbors, ErrMissingCapability)
	}

	return ns, true, nil
}
