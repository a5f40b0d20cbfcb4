// SPDX-License-Identifier: MIT

package instance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlap/lap"
	"github.com/katalvlaran/lvlap/matrix"
)

// Edge is one (row, col, cost) entry of a sparse instance.
type Edge struct {
	Row  int     `json:"row" yaml:"row" toml:"row" cbor:"row"`
	Col  int     `json:"col" yaml:"col" toml:"col" cbor:"col"`
	Cost float64 `json:"cost" yaml:"cost" toml:"cost" cbor:"cost"`
}

// Instance is a serializable assignment problem.
//
// Dense form: Costs holds Rows rows of Cols finite values; Forbidden lists
// (row, col) cells that are not edges. Sparse form: Costs is nil and Edges
// lists every edge.
type Instance struct {
	Name      string      `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty" cbor:"name,omitempty"`
	Rows      int         `json:"rows" yaml:"rows" toml:"rows" cbor:"rows"`
	Cols      int         `json:"cols" yaml:"cols" toml:"cols" cbor:"cols"`
	Costs     [][]float64 `json:"costs,omitempty" yaml:"costs,omitempty" toml:"costs,omitempty" cbor:"costs,omitempty"`
	Forbidden [][2]int    `json:"forbidden,omitempty" yaml:"forbidden,omitempty" toml:"forbidden,omitempty" cbor:"forbidden,omitempty"`
	Edges     []Edge      `json:"edges,omitempty" yaml:"edges,omitempty" toml:"edges,omitempty" cbor:"edges,omitempty"`
}

// IsSparse reports whether the instance is an edge list.
func (in *Instance) IsSparse() bool { return in.Costs == nil && in.Rows*in.Cols > 0 }

// Validate checks shape and bounds. It does not judge feasibility.
//
// Errors: ErrInvalidInstance.
func (in *Instance) Validate() error {
	if in.Rows < 0 || in.Cols < 0 {
		return fmt.Errorf("%s: %dx%d: %w", in.label(), in.Rows, in.Cols, ErrInvalidInstance)
	}
	if in.Costs != nil && in.Edges != nil {
		return fmt.Errorf("%s: both costs and edges given: %w", in.label(), ErrInvalidInstance)
	}
	if in.Costs != nil {
		if len(in.Costs) != in.Rows {
			return fmt.Errorf("%s: %d cost rows, want %d: %w", in.label(), len(in.Costs), in.Rows, ErrInvalidInstance)
		}
		for i, row := range in.Costs {
			if len(row) != in.Cols {
				return fmt.Errorf("%s: row %d has %d cells, want %d: %w", in.label(), i, len(row), in.Cols, ErrInvalidInstance)
			}
		}
	}
	for _, rc := range in.Forbidden {
		if !in.inRange(rc[0], rc[1]) {
			return fmt.Errorf("%s: forbidden cell %v out of range: %w", in.label(), rc, ErrInvalidInstance)
		}
	}
	for _, e := range in.Edges {
		if !in.inRange(e.Row, e.Col) {
			return fmt.Errorf("%s: edge (%d,%d) out of range: %w", in.label(), e.Row, e.Col, ErrInvalidInstance)
		}
	}

	return nil
}

func (in *Instance) inRange(i, j int) bool {
	return i >= 0 && i < in.Rows && j >= 0 && j < in.Cols
}

func (in *Instance) label() string {
	if in.Name == "" {
		return "instance"
	}

	return "instance " + in.Name
}

// Table returns the dense form with +Inf in every cell without an edge.
func (in *Instance) Table() [][]float64 {
	rows := make([][]float64, in.Rows)
	for i := range rows {
		rows[i] = make([]float64, in.Cols)
		if in.Costs != nil {
			copy(rows[i], in.Costs[i])
			continue
		}
		for j := range rows[i] {
			rows[i][j] = math.Inf(1)
		}
	}
	for _, e := range in.Edges {
		rows[e.Row][e.Col] = e.Cost
	}
	for _, rc := range in.Forbidden {
		rows[rc[0]][rc[1]] = math.Inf(1)
	}

	return rows
}

// Source validates the instance and converts it to a cost source: dense
// instances through lap.FromRows, sparse ones through lap.FromSparse.
func (in *Instance) Source() (lap.CostSource, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if !in.IsSparse() {
		return lap.FromRows(in.Table())
	}

	entries := make([]matrix.Entry, len(in.Edges))
	for k, e := range in.Edges {
		entries[k] = matrix.Entry{Row: e.Row, Col: e.Col, Value: e.Cost}
	}
	s, err := matrix.NewSparse(in.Rows, in.Cols, entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", in.label(), ErrInvalidInstance, err)
	}

	return lap.FromSparse(s)
}

// Negated returns a copy with every cost multiplied by -1, turning a
// maximization problem into the minimization solvers expect.
func (in *Instance) Negated() (*Instance, error) {
	out := &Instance{Name: in.Name, Rows: in.Rows, Cols: in.Cols}
	out.Forbidden = append(out.Forbidden, in.Forbidden...)
	if in.Costs != nil {
		d, err := matrix.NewDenseFrom(in.Costs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", in.label(), ErrInvalidInstance, err)
		}
		neg, err := matrix.Scale(d, -1)
		if err != nil {
			return nil, err
		}
		out.Costs = neg.ToRows()
	}
	for _, e := range in.Edges {
		out.Edges = append(out.Edges, Edge{Row: e.Row, Col: e.Col, Cost: -e.Cost})
	}

	return out, nil
}

// FromDense captures m as a dense instance; +Inf cells become Forbidden.
func FromDense(name string, m *matrix.Dense) *Instance {
	in := &Instance{Name: name, Rows: m.Rows(), Cols: m.Cols(), Costs: m.ToRows()}
	for i, row := range in.Costs {
		for j, v := range row {
			if math.IsInf(v, 1) {
				row[j] = 0
				in.Forbidden = append(in.Forbidden, [2]int{i, j})
			}
		}
	}

	return in
}

// FromSparse captures s as a sparse instance.
func FromSparse(name string, s *matrix.Sparse) *Instance {
	in := &Instance{Name: name, Rows: s.Rows(), Cols: s.Cols(), Edges: []Edge{}}
	for _, e := range s.Entries() {
		in.Edges = append(in.Edges, Edge{Row: e.Row, Col: e.Col, Cost: e.Value})
	}

	return in
}
