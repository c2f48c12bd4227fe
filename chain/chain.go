// SPDX-License-Identifier: MIT

package chain

import (
	"fmt"

	"github.com/katalvlaran/coordkit/geom"
	"github.com/katalvlaran/coordkit/matrix"
	"github.com/katalvlaran/coordkit/transform"
)

// Chain is an ordered, immutable sequence of transforms.
// The zero value is the empty chain, which maps every point to itself.
type Chain struct {
	steps []transform.Transform
}

// New returns a chain over a copy of steps. Nil steps are skipped.
func New(steps ...transform.Transform) Chain {
	return Chain{}.Append(steps...)
}

// Len returns the number of steps.
func (c Chain) Len() int { return len(c.steps) }

// Steps returns a copy of the step slice.
func (c Chain) Steps() []transform.Transform {
	out := make([]transform.Transform, len(c.steps))
	copy(out, c.steps)

	return out
}

// Step returns the i-th step.
//
// Errors:
//   - ErrStepIndex if i is outside [0, Len()).
func (c Chain) Step(i int) (transform.Transform, error) {
	if i < 0 || i >= len(c.steps) {
		return nil, fmt.Errorf("Step(%d) of %d: %w", i, len(c.steps), ErrStepIndex)
	}

	return c.steps[i], nil
}

// Append returns a new chain with steps added after c's own steps.
func (c Chain) Append(steps ...transform.Transform) Chain {
	out := make([]transform.Transform, 0, len(c.steps)+len(steps))
	out = append(out, c.steps...)
	for _, s := range steps {
		if s != nil {
			out = append(out, s)
		}
	}

	return Chain{steps: out}
}

// Compose returns a new chain running c's steps followed by other's.
// Composition is associative: a.Compose(b).Compose(c) and
// a.Compose(b.Compose(c)) hold the same steps in the same order.
func (c Chain) Compose(other Chain) Chain {
	return c.Append(other.steps...)
}

// Forward folds p through every step in order.
func (c Chain) Forward(p geom.Point) geom.Point {
	for _, s := range c.steps {
		p = s.Forward(p)
	}

	return p
}

// Inverse folds p through each step's inverse in reverse order.
//
// Errors:
//   - *StepError wrapping the first failing step's error; there is no
//     partial result.
func (c Chain) Inverse(p geom.Point, opts ...matrix.Option) (geom.Point, error) {
	var err error
	for i := len(c.steps) - 1; i >= 0; i-- {
		if p, err = c.steps[i].Inverse(p, opts...); err != nil {
			return geom.Point{}, &StepError{Index: i, Kind: c.steps[i].Kind(), Err: err}
		}
	}

	return p, nil
}

// ForwardAll applies Forward to every point and returns a new slice.
func (c Chain) ForwardAll(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = c.Forward(p)
	}

	return out
}

// InverseAll applies Inverse to every point. It stops at the first failure,
// reporting the offending point index alongside the *StepError.
func (c Chain) InverseAll(pts []geom.Point, opts ...matrix.Option) ([]geom.Point, error) {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		q, err := c.Inverse(p, opts...)
		if err != nil {
			return nil, fmt.Errorf("InverseAll: point %d %v: %w", i, p, err)
		}
		out[i] = q
	}

	return out, nil
}

// Homogeneous collapses the chain into a single 3×3 projective matrix
// M = M_n · … · M_1, so that M·[x y 1]ᵀ ≅ Forward(x, y). The empty chain
// yields the identity.
func (c Chain) Homogeneous() *matrix.Dense {
	h := c.product()

	return matrix.NewMat3(h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7], h[8])
}

// Collapse returns the chain as one Perspective built from Homogeneous.
func (c Chain) Collapse() transform.Perspective {
	h := c.product()

	return transform.NewPerspective(h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7], h[8])
}

// product folds the step matrices, last step leftmost.
func (c Chain) product() [9]float64 {
	acc := [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}
	for _, s := range c.steps {
		var m [9]float64
		copy(m[:], s.Homogeneous().Data())
		acc = mul3(m, acc)
	}

	return acc
}

// mul3 multiplies two row-major 3×3 matrices.
func mul3(a, b [9]float64) [9]float64 {
	var out [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i*3+j] = a[i*3]*b[j] + a[i*3+1]*b[3+j] + a[i*3+2]*b[6+j]
		}
	}

	return out
}
