// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

// Point is a 2-D point or displacement vector in Cartesian coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Origin is the zero point (0,0).
var Origin = Point{}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p − q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns s·p.
func (p Point) Scale(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Dot returns the scalar product p·q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Len returns the Euclidean norm of p seen as a vector.
func (p Point) Len() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y) }

// DistanceTo returns the Euclidean distance sqrt((Δx)² + (Δy)²) between p and q.
func (p Point) DistanceTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Equals reports whether both coordinates differ by at most eps.
func (p Point) Equals(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// IsFinite reports whether neither coordinate is NaN or ±Inf.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// String formats p as "(x, y)".
func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Centroid returns the arithmetic mean of pts, or Origin for an empty slice.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Origin
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))

	return Point{X: sx / n, Y: sy / n}
}

// Distances returns |a[i] − b[i]| for every i < min(len(a), len(b)).
func Distances(a, b []Point) []float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = a[i].DistanceTo(b[i])
	}

	return out
}
