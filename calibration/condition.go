// SPDX-License-Identifier: MIT

package calibration

import (
	"math"

	"github.com/katalvlaran/coordkit/geom"
	"github.com/katalvlaran/coordkit/matrix"
)

// conditioner is the similarity p ↦ s·(p − c) that moves a point set to its
// centroid and scales its mean distance from it to √2.
type conditioner struct {
	c geom.Point
	s float64
}

func newConditioner(pts []geom.Point) conditioner {
	c := geom.Centroid(pts)
	var sum float64
	for _, p := range pts {
		sum += p.DistanceTo(c)
	}
	mean := sum / float64(len(pts))
	if mean == 0 || math.IsNaN(mean) {
		// Coincident points: leave the scale alone and let the solve
		// report the degenerate design.
		return conditioner{c: c, s: 1}
	}

	return conditioner{c: c, s: math.Sqrt2 / mean}
}

func (k conditioner) apply(p geom.Point) geom.Point {
	return geom.Point{X: k.s * (p.X - k.c.X), Y: k.s * (p.Y - k.c.Y)}
}

// forward returns the 3×3 homogeneous matrix of the conditioning map.
func (k conditioner) forward() *matrix.Dense {
	return matrix.NewMat3(
		k.s, 0, -k.s*k.c.X,
		0, k.s, -k.s*k.c.Y,
		0, 0, 1,
	)
}

// inverse returns the 3×3 homogeneous matrix undoing the conditioning map.
func (k conditioner) inverse() *matrix.Dense {
	return matrix.NewMat3(
		1/k.s, 0, k.c.X,
		0, 1/k.s, k.c.Y,
		0, 0, 1,
	)
}
