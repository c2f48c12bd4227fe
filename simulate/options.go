// SPDX-License-Identifier: MIT

package simulate

import (
	"math"

	"github.com/katalvlaran/coordkit/transform"
)

// DefaultJitter is the default bound of the uniform click error per axis.
const DefaultJitter = 5.0

const panicJitterInvalid = "simulate: WithJitter: maxAbs must be finite, non-negative"

// Option configures a Generator.
type Option func(*Options)

// Options holds the effective Generator configuration.
type Options struct {
	jitter     float64             // uniform error bound per axis; DefaultJitter
	distortion transform.Transform // systematic error; nil means none
}

// WithJitter sets the per-axis click error to uniform in [−maxAbs, maxAbs).
// Panics on a negative or non-finite bound.
func WithJitter(maxAbs float64) Option {
	if maxAbs < 0 || math.IsNaN(maxAbs) || math.IsInf(maxAbs, 0) {
		panic(panicJitterInvalid)
	}

	return func(o *Options) { o.jitter = maxAbs }
}

// WithDistortion applies t to every target before jitter is added, modelling
// a systematic pointer error that calibration should undo.
func WithDistortion(t transform.Transform) Option {
	return func(o *Options) { o.distortion = t }
}

func gatherOptions(opts ...Option) Options {
	o := Options{jitter: DefaultJitter}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
