// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coordkit/geom"
	"github.com/katalvlaran/coordkit/matrix"
)

// Transform maps points of one coordinate space into another.
//
// The set of implementations is closed: Offset, Scale, Affine, Perspective.
type Transform interface {
	// Kind reports the variant.
	Kind() Kind
	// Forward maps p. It is total: a Perspective evaluated on its vanishing
	// line yields non-finite coordinates instead of an error.
	Forward(p geom.Point) geom.Point
	// Inverse maps p back. opts carry the singularity threshold.
	Inverse(p geom.Point, opts ...matrix.Option) (geom.Point, error)
	// Homogeneous returns a fresh 3×3 matrix M with M·[x y 1]ᵀ ≅ Forward.
	Homogeneous() *matrix.Dense
	// Params returns a fresh copy of the canonical parameter vector.
	Params() []float64

	sealed()
}

// Identity returns the transform that leaves every point unchanged.
func Identity() Transform { return Offset{} }

// transformErrorf wraps err with the variant name and operation.
func transformErrorf(k Kind, op string, err error) error {
	return fmt.Errorf("%s.%s: %w", k, op, err)
}

// epsilonOf resolves the singularity threshold from matrix options.
func epsilonOf(opts []matrix.Option) float64 {
	return matrix.NewOptions(opts...).Epsilon()
}

// nearZero reports |v| < eps; NaN counts as zero so it never slips through.
func nearZero(v, eps float64) bool {
	return math.IsNaN(v) || math.Abs(v) < eps
}
