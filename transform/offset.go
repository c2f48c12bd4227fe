// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/coordkit/geom"
	"github.com/katalvlaran/coordkit/matrix"
)

// Offset translates by (DX, DY): p' = p + (dx, dy).
type Offset struct {
	DX, DY float64
}

// NewOffset returns Offset{dx, dy}.
func NewOffset(dx, dy float64) Offset { return Offset{DX: dx, DY: dy} }

func (Offset) sealed() {}

// Kind returns KindOffset.
func (Offset) Kind() Kind { return KindOffset }

// Forward returns p + (dx, dy).
func (o Offset) Forward(p geom.Point) geom.Point {
	return geom.Point{X: p.X + o.DX, Y: p.Y + o.DY}
}

// Inverse returns p − (dx, dy). It never fails.
func (o Offset) Inverse(p geom.Point, _ ...matrix.Option) (geom.Point, error) {
	return geom.Point{X: p.X - o.DX, Y: p.Y - o.DY}, nil
}

// Homogeneous returns [[1,0,dx],[0,1,dy],[0,0,1]].
func (o Offset) Homogeneous() *matrix.Dense {
	return matrix.NewMat3(1, 0, o.DX, 0, 1, o.DY, 0, 0, 1)
}

// Params returns [dx, dy].
func (o Offset) Params() []float64 { return []float64{o.DX, o.DY} }
