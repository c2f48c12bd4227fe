// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/coordkit/geom"
	"github.com/katalvlaran/coordkit/matrix"
)

// Scale applies per-axis scaling followed by a translation:
// p' = (sx·x + dx, sy·y + dy).
type Scale struct {
	SX, SY float64
	DX, DY float64
}

// NewScale returns a pure scaling about the origin.
func NewScale(sx, sy float64) Scale { return Scale{SX: sx, SY: sy} }

func (Scale) sealed() {}

// Kind returns KindScale.
func (Scale) Kind() Kind { return KindScale }

// Forward returns (sx·x + dx, sy·y + dy).
func (s Scale) Forward(p geom.Point) geom.Point {
	return geom.Point{X: s.SX*p.X + s.DX, Y: s.SY*p.Y + s.DY}
}

// Inverse returns ((x − dx)/sx, (y − dy)/sy).
//
// Errors:
//   - ErrDegenerateScale when |sx| < eps or |sy| < eps (eps from opts,
//     default matrix.DefaultEpsilon). The message carries both factors.
func (s Scale) Inverse(p geom.Point, opts ...matrix.Option) (geom.Point, error) {
	eps := epsilonOf(opts)
	if nearZero(s.SX, eps) || nearZero(s.SY, eps) {
		return geom.Point{}, transformErrorf(KindScale, "Inverse",
			fmt.Errorf("sx=%g sy=%g eps=%g: %w", s.SX, s.SY, eps, ErrDegenerateScale))
	}

	return geom.Point{X: (p.X - s.DX) / s.SX, Y: (p.Y - s.DY) / s.SY}, nil
}

// Homogeneous returns [[sx,0,dx],[0,sy,dy],[0,0,1]].
func (s Scale) Homogeneous() *matrix.Dense {
	return matrix.NewMat3(s.SX, 0, s.DX, 0, s.SY, s.DY, 0, 0, 1)
}

// Params returns [sx, sy, dx, dy].
func (s Scale) Params() []float64 { return []float64{s.SX, s.SY, s.DX, s.DY} }
