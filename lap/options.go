// SPDX-License-Identifier: MIT

// Package lap - functional options and solver hooks.
//
// Defaults:
//   - no cancellation (context.Background),
//   - tolerance DefaultEpsilon scaled by max(1, max |cost|),
//   - sparse core of DefaultCoreSize cheapest edges per row,
//   - zerolog.Nop() logger, no hooks.
//
// WithX constructors panic on nonsensical values (programmer error).
package lap

import (
	"context"
	"math"

	"github.com/rs/zerolog"
)

const (
	// DefaultEpsilon is the relative dual-feasibility tolerance.
	DefaultEpsilon = 1e-9

	// DefaultCoreSize is the number of cheapest edges per row kept in the
	// initial sparse core.
	DefaultCoreSize = 4
)

const (
	panicNilContext     = "lap: WithContext: nil context"
	panicEpsilonInvalid = "lap: WithEpsilon: eps must be finite and > 0"
	panicCoreSize       = "lap: WithCoreSize: k must be >= 1"
)

// AugmentEvent describes one completed per-row phase.
type AugmentEvent struct {
	Row        int     // free row the phase started from
	PathLength int     // number of columns re-assigned along the path
	Scanned    int     // columns scanned during the search
	Delta      float64 // length of the shortest augmenting path (reduced cost)
}

// CoreEvent describes one enlargement of a sparse row core.
type CoreEvent struct {
	Row    int    // row whose core grew
	Size   int    // core size after the change
	Reason string // "frontier" (search exhausted) or "pricing" (violated edge)
}

// Options holds the resolved configuration of one solve.
type Options struct {
	ctx          context.Context
	eps          float64
	coreSize     int
	logger       zerolog.Logger
	onAugment    func(AugmentEvent)
	onCoreExpand func(CoreEvent)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		ctx:      context.Background(),
		eps:      DefaultEpsilon,
		coreSize: DefaultCoreSize,
		logger:   zerolog.Nop(),
	}
}

// WithContext enables cooperative cancellation, checked at the top of each
// per-row phase. Panics on a nil context.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicNilContext)
	}

	return func(o *Options) { o.ctx = ctx }
}

// WithEpsilon sets the relative tolerance. The absolute tolerance used in
// checks is eps * max(1, max |cost|).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithCoreSize sets how many cheapest edges per row seed the sparse core.
// Only SolveSparse reads it.
func WithCoreSize(k int) Option {
	if k < 1 {
		panic(panicCoreSize)
	}

	return func(o *Options) { o.coreSize = k }
}

// WithLogger routes phase-level debug logs to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithOnAugment registers a hook called after every per-row phase. Hooks
// accumulate: each one runs after those registered before it.
func WithOnAugment(fn func(AugmentEvent)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.onAugment
		if prev == nil {
			o.onAugment = fn
			return
		}
		o.onAugment = func(ev AugmentEvent) {
			prev(ev)
			fn(ev)
		}
	}
}

// WithOnCoreExpand registers a hook called whenever a sparse core grows.
// Hooks accumulate like WithOnAugment.
func WithOnCoreExpand(fn func(CoreEvent)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.onCoreExpand
		if prev == nil {
			o.onCoreExpand = fn
			return
		}
		o.onCoreExpand = func(ev CoreEvent) {
			prev(ev)
			fn(ev)
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// tolerance scales eps by the largest absolute cost.
func (o Options) tolerance(maxAbs float64) float64 {
	return o.eps * math.Max(1, maxAbs)
}

// canceled returns the context error once the context is done.
func (o Options) canceled() error { return o.ctx.Err() }

func (o Options) emitAugment(ev AugmentEvent) {
	if o.onAugment != nil {
		o.onAugment(ev)
	}
}

func (o Options) emitCore(ev CoreEvent) {
	if o.onCoreExpand != nil {
		o.onCoreExpand(ev)
	}
}
