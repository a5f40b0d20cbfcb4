// SPDX-License-Identifier: MIT

// Package lap - unified dispatcher.
//
// The three strategies are independent implementations; they agree on the
// optimal total cost of any instance, which the tests cross-check.
package lap

import (
	"fmt"
	"strings"
)

// Strategy selects a solver.
type Strategy uint8

const (
	// StrategyDense is Jonker–Volgenant over a materialized n×n table.
	StrategyDense Strategy = iota
	// StrategySparse is the core-restricted augmenting-path solver.
	StrategySparse
	// StrategySparseJV pads missing edges and runs the dense solver.
	StrategySparseJV
)

// Strategies lists every supported strategy in declaration order.
var Strategies = []Strategy{StrategyDense, StrategySparse, StrategySparseJV}

// String returns the flag-friendly name.
func (s Strategy) String() string {
	switch s {
	case StrategyDense:
		return "dense"
	case StrategySparse:
		return "sparse"
	case StrategySparseJV:
		return "sparse-jv"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// ParseStrategy maps a name produced by String back to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}

	return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
}

// Solve routes src to the solver selected by strategy.
func Solve(strategy Strategy, src CostSource, opts ...Option) (Result, error) {
	switch strategy {
	case StrategyDense:
		return SolveDense(src, opts...)
	case StrategySparse:
		return SolveSparse(src, opts...)
	case StrategySparseJV:
		return SolveSparseJV(src, opts...)
	default:
		return failed(strategy, Stats{}, fmt.Errorf("Solve: %w", ErrUnknownStrategy))
	}
}
