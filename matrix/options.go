// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - No global state: the singularity threshold travels with each call, so
//     two calibration runs with different tolerances never interfere.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon is the singularity threshold used by Inverse, Solve and the
// callers that forward it (transform inverses, calibration fits): a matrix
// with |det| < DefaultEpsilon, or an elimination pivot below it, is singular.
const DefaultEpsilon = 1e-10

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the singularity threshold eps.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - eps = 0 only rejects exactly-zero determinants/pivots.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewOptions resolves option setters against documented defaults.
// Useful for packages that accept matrix options and need to read the
// effective epsilon (e.g. a transform guarding a division).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the effective singularity threshold.
func (o Options) Epsilon() float64 { return o.eps }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// gatherOptions applies user-provided setters on top of defaults.
// Nil setters are skipped so callers can forward optional slices verbatim.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
