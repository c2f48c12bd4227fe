// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/coordkit/geom"
	"github.com/katalvlaran/coordkit/matrix"
)

// Perspective is the projective map with homogeneous matrix
// H = [[a,b,c],[d,e,f],[g,h,i]]:
//
//	x' = (a·x + b·y + c) / (g·x + h·y + i)
//	y' = (d·x + e·y + f) / (g·x + h·y + i)
type Perspective struct {
	H [9]float64
}

// NewPerspective builds a Perspective from the row-major coefficients a..i.
func NewPerspective(a, b, c, d, e, f, g, h, i float64) Perspective {
	return Perspective{H: [9]float64{a, b, c, d, e, f, g, h, i}}
}

// NewPerspectiveFromMatrix builds a Perspective from a 3×3 matrix.
//
// Errors:
//   - ErrParamCount if m is nil or not 3×3.
func NewPerspectiveFromMatrix(m *matrix.Dense) (Perspective, error) {
	if m == nil || m.Rows() != 3 || m.Cols() != 3 {
		return Perspective{}, fmt.Errorf("NewPerspectiveFromMatrix: %w", ErrParamCount)
	}
	var p Perspective
	copy(p.H[:], m.Data())

	return p, nil
}

func (Perspective) sealed() {}

// Kind returns KindPerspective.
func (Perspective) Kind() Kind { return KindPerspective }

// Forward applies H and divides by the homogeneous weight. A zero weight
// produces ±Inf or NaN coordinates.
func (t Perspective) Forward(p geom.Point) geom.Point {
	return project(t.H, p)
}

// Inverse applies H⁻¹.
//
// Errors:
//   - matrix.ErrSingular when |det H| < eps.
//   - ErrPointAtInfinity when the weight of H⁻¹·[x y 1]ᵀ is below eps.
func (t Perspective) Inverse(p geom.Point, opts ...matrix.Option) (geom.Point, error) {
	inv, err := matrix.Inverse(t.Homogeneous(), opts...)
	if err != nil {
		return geom.Point{}, transformErrorf(KindPerspective, "Inverse", err)
	}
	v, err := matrix.MatVec(inv, []float64{p.X, p.Y, 1})
	if err != nil {
		return geom.Point{}, transformErrorf(KindPerspective, "Inverse", err)
	}
	if eps := epsilonOf(opts); nearZero(v[2], eps) {
		return geom.Point{}, transformErrorf(KindPerspective, "Inverse",
			fmt.Errorf("%v w=%g: %w", p, v[2], ErrPointAtInfinity))
	}

	return geom.Point{X: v[0] / v[2], Y: v[1] / v[2]}, nil
}

// Homogeneous returns H as a fresh 3×3 matrix.
func (t Perspective) Homogeneous() *matrix.Dense {
	h := t.H
	return matrix.NewMat3(h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7], h[8])
}

// Params returns [a..i].
func (t Perspective) Params() []float64 {
	out := make([]float64, len(t.H))
	copy(out, t.H[:])

	return out
}

// project applies a row-major homogeneous 3×3 matrix to p.
func project(h [9]float64, p geom.Point) geom.Point {
	w := h[6]*p.X + h[7]*p.Y + h[8]

	return geom.Point{
		X: (h[0]*p.X + h[1]*p.Y + h[2]) / w,
		Y: (h[3]*p.X + h[4]*p.Y + h[5]) / w,
	}
}
