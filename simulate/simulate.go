// SPDX-License-Identifier: MIT

package simulate

import (
	"math/rand/v2"

	"github.com/katalvlaran/coordkit/calibration"
	"github.com/katalvlaran/coordkit/geom"
)

// Grid returns nx×ny evenly spaced points covering [x0,x1]×[y0,y1],
// row by row. A count of 1 places the single row or column at the lower
// bound; a count below 1 yields no points.
func Grid(x0, x1 float64, nx int, y0, y1 float64, ny int) []geom.Point {
	if nx < 1 || ny < 1 {
		return nil
	}
	out := make([]geom.Point, 0, nx*ny)
	for j := 0; j < ny; j++ {
		y := lerp(y0, y1, j, ny)
		for i := 0; i < nx; i++ {
			out = append(out, geom.Pt(lerp(x0, x1, i, nx), y))
		}
	}

	return out
}

func lerp(lo, hi float64, i, n int) float64 {
	if n == 1 {
		return lo
	}

	return lo + (hi-lo)*float64(i)/float64(n-1)
}

// CalibrationTargets returns the four corners and the centre of a
// 100×100 target area: (20,20), (80,20), (20,80), (80,80), (50,50).
func CalibrationTargets() []geom.Point {
	return []geom.Point{
		{X: 20, Y: 20},
		{X: 80, Y: 20},
		{X: 20, Y: 80},
		{X: 80, Y: 80},
		{X: 50, Y: 50},
	}
}

// Generator draws simulated clicks from a seeded PCG source.
type Generator struct {
	rng  *rand.Rand
	opts Options
}

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed uint64, opts ...Option) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		opts: gatherOptions(opts...),
	}
}

// Click returns where a user aiming at target actually clicks.
func (g *Generator) Click(target geom.Point) geom.Point {
	p := target
	if g.opts.distortion != nil {
		p = g.opts.distortion.Forward(p)
	}

	return p.Add(geom.Pt(g.uniform(g.opts.jitter), g.uniform(g.opts.jitter)))
}

// Samples simulates one click per target.
func (g *Generator) Samples(targets []geom.Point) []calibration.Sample {
	out := make([]calibration.Sample, len(targets))
	for i, t := range targets {
		out[i] = calibration.Sample{Observed: g.Click(t), Target: t}
	}

	return out
}

// Points returns n points drawn uniformly from the rectangle lo..hi.
func (g *Generator) Points(n int, lo, hi geom.Point) []geom.Point {
	if n < 1 {
		return nil
	}
	out := make([]geom.Point, n)
	for i := range out {
		out[i] = geom.Pt(
			lo.X+(hi.X-lo.X)*g.rng.Float64(),
			lo.Y+(hi.Y-lo.Y)*g.rng.Float64(),
		)
	}

	return out
}

// uniform draws from [−m, m).
func (g *Generator) uniform(m float64) float64 {
	return m * (2*g.rng.Float64() - 1)
}
