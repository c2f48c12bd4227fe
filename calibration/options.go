// SPDX-License-Identifier: MIT

package calibration

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/coordkit/matrix"
)

// Option configures Fit, Evaluate and FitBatch.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	eps    float64     // singularity threshold; matrix.DefaultEpsilon
	logger logr.Logger // V(1) fit diagnostics; logr.Discard()
}

// WithEpsilon sets the singularity threshold for the normal-equation solve
// and for the inverses used while mapping conditioned parameters back.
// Panics on a negative or non-finite eps, like matrix.WithEpsilon.
func WithEpsilon(eps float64) Option {
	matrix.WithEpsilon(eps) // validates

	return func(o *Options) { o.eps = eps }
}

// WithLogger routes fit diagnostics to l. Records are emitted at V(1).
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// Epsilon returns the effective singularity threshold.
func (o Options) Epsilon() float64 { return o.eps }

func defaultOptions() Options {
	return Options{eps: matrix.DefaultEpsilon, logger: logr.Discard()}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// matrixOptions forwards the threshold to the matrix kernels.
func (o Options) matrixOptions() []matrix.Option {
	return []matrix.Option{matrix.WithEpsilon(o.eps)}
}
