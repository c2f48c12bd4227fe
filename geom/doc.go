// SPDX-License-Identifier: MIT

// Package geom defines the 2-D point/vector value type shared by every
// coordinate space in coordkit (screen, browser, logical, normalized).
//
// Point is a plain value: copying it is the only way to "change" it, so it is
// safe to share across goroutines without locking. All operations are total
// and never return errors.
//
//	p := geom.Pt(960, 540)
//	q := p.Sub(geom.Pt(200, 100)).Scale(1 / 1.5)
//	d := p.DistanceTo(q)
package geom
