// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/coordkit/geom"
	"github.com/katalvlaran/coordkit/matrix"
)

// Affine maps p' = A·p + b with A = [[a, c], [b, d]] and b = (e, f):
//
//	x' = a·x + c·y + e
//	y' = b·x + d·y + f
//
// The linear part is stored by value so an Affine can never be changed
// through a shared *matrix.Dense.
type Affine struct {
	a, b, c, d float64
	e, f       float64
}

// NewAffine builds an Affine from coefficients in canvas order
// (a, b, c, d, e, f): A = [[a, c], [b, d]], offset (e, f).
func NewAffine(a, b, c, d, e, f float64) Affine {
	return Affine{a: a, b: b, c: c, d: d, e: e, f: f}
}

// NewAffineFromMatrix builds an Affine from a 2×2 linear part and an offset.
// Only the shape is checked; a singular A is accepted and fails on Inverse.
//
// Errors:
//   - ErrBadShape if A is nil or not 2×2.
func NewAffineFromMatrix(A *matrix.Dense, offset geom.Point) (Affine, error) {
	if A == nil || A.Rows() != 2 || A.Cols() != 2 {
		return Affine{}, fmt.Errorf("NewAffineFromMatrix: %w", ErrBadShape)
	}
	rows := A.RowsData()

	return Affine{
		a: rows[0][0], c: rows[0][1],
		b: rows[1][0], d: rows[1][1],
		e: offset.X, f: offset.Y,
	}, nil
}

func (Affine) sealed() {}

// Kind returns KindAffine.
func (Affine) Kind() Kind { return KindAffine }

// Linear returns a fresh copy of the 2×2 linear part A.
func (t Affine) Linear() *matrix.Dense { return matrix.NewMat2(t.a, t.c, t.b, t.d) }

// Offset returns the translation b.
func (t Affine) Offset() geom.Point { return geom.Point{X: t.e, Y: t.f} }

// Forward returns A·p + b.
func (t Affine) Forward(p geom.Point) geom.Point {
	return geom.Point{
		X: t.a*p.X + t.c*p.Y + t.e,
		Y: t.b*p.X + t.d*p.Y + t.f,
	}
}

// Inverse returns A⁻¹·(p − b).
//
// Errors:
//   - matrix.ErrSingular when |det A| < eps.
func (t Affine) Inverse(p geom.Point, opts ...matrix.Option) (geom.Point, error) {
	inv, err := matrix.Inverse(t.Linear(), opts...)
	if err != nil {
		return geom.Point{}, transformErrorf(KindAffine, "Inverse", err)
	}
	v, err := matrix.MatVec(inv, []float64{p.X - t.e, p.Y - t.f})
	if err != nil {
		return geom.Point{}, transformErrorf(KindAffine, "Inverse", err)
	}

	return geom.Point{X: v[0], Y: v[1]}, nil
}

// Homogeneous returns [[a,c,e],[b,d,f],[0,0,1]].
func (t Affine) Homogeneous() *matrix.Dense {
	return matrix.NewMat3(t.a, t.c, t.e, t.b, t.d, t.f, 0, 0, 1)
}

// Params returns [a, b, c, d, e, f].
func (t Affine) Params() []float64 { return []float64{t.a, t.b, t.c, t.d, t.e, t.f} }
