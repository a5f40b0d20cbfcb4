// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric ingestion policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Notes:
//   - validateNaNInf controls whether Set()/ingestion rejects NaN/Inf at all.
//   - allowPosInf is a narrow exception for +Inf as "no edge" in cost
//     matrices. Under validation, NaN and -Inf remain rejected even when
//     allowPosInf=true.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by AllClose.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultAllowPosInf permits +Inf cells that mark a forbidden (absent) pair.
	DefaultAllowPosInf = false
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	allowPosInf    bool    // DefaultAllowPosInf
}

// WithEpsilon sets the numeric tolerance eps used by AllClose.
// Panics with a stable message when eps is negative, NaN or ±Inf.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// The flag propagates only on creation; existing matrices are unaffected.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAllowPosInf permits +Inf entries to represent a forbidden pair in
// cost matrices. NaN and -Inf are still rejected while validation is on.
func WithAllowPosInf() Option {
	return func(o *Options) { o.allowPosInf = true }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		allowPosInf:    DefaultAllowPosInf,
	}
}

// gatherOptions applies opts over defaults in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// admits reports whether v passes the numeric policy o.
// Complexity: O(1).
func (o Options) admits(v float64) bool {
	if !o.validateNaNInf {
		return true
	}
	if v != v { // NaN
		return false
	}
	if isPosInf(v) {
		return o.allowPosInf
	}

	return !isNegInf(v)
}
