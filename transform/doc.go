// SPDX-License-Identifier: MIT

// Package transform implements the closed set of 2-D point transforms used by
// coordkit: Offset, Scale, Affine and Perspective.
//
// Every variant satisfies the sealed Transform interface: Forward maps a
// point, Inverse maps it back (or reports why it cannot), Homogeneous exposes
// the equivalent 3×3 projective matrix and Params the canonical parameter
// vector.
//
// Construction is permissive: constructors check parameter shape only, and
// invertibility is decided on the first Inverse call. Most call sites only
// ever need Forward, so a transform that can never be inverted is still a
// valid value.
//
// Transforms are immutable values; share them freely between goroutines.
//
//	t := transform.NewAffine(1.02, 0, 0, 0.98, -3, 4)
//	q := t.Forward(geom.Pt(100, 100))
//	p, err := t.Inverse(q)                    // default eps
//	p, err = t.Inverse(q, matrix.WithEpsilon(1e-14))
//
// Descriptor is the JSON shape {"kind": "...", "params": [...]} used to hand
// a fitted transform to a persistence layer and back without loss.
package transform
