// SPDX-License-Identifier: MIT

package calibration

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/coordkit/geom"
	"github.com/katalvlaran/coordkit/matrix"
	"github.com/katalvlaran/coordkit/transform"
)

const opFit = "Fit"

// MinSamples returns the smallest sample count Fit accepts for kind, or 0
// for a kind Fit does not support.
func MinSamples(kind transform.Kind) int {
	switch kind {
	case transform.KindOffset, transform.KindScale:
		return 1
	case transform.KindAffine:
		return 3
	case transform.KindPerspective:
		return 4
	default:
		return 0
	}
}

// Fit estimates the transform of the requested kind that maps observed
// points onto their targets in the least-squares sense.
//
// Errors:
//   - ErrUnsupportedKind for an unknown kind.
//   - ErrInsufficientSamples when len(samples) < MinSamples(kind); the
//     message carries both counts.
//   - ErrNonFiniteSample when a coordinate is NaN or Inf, or overflows
//     while the design matrix is centered or conditioned.
//   - ErrSingularDesign when the design cannot be solved; the matrix cause
//     is wrapped as well: matrix.ErrSingular under eps, or
//     matrix.ErrDimensionMismatch when a Scale fit has a single sample.
//
// Complexity: O(n) for every kind; the solves are at most 8×8.
func Fit(samples []Sample, kind transform.Kind, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	log := o.logger.WithValues("kind", kind.String(), "samples", len(samples))

	t, err := fit(samples, kind, o)
	if err != nil {
		log.V(1).Info("fit failed", "error", err.Error())
		return Result{}, err
	}
	res := newResult(t, samples)
	log.V(1).Info("fit done",
		"meanErrorBefore", res.MeanErrorBefore,
		"meanErrorAfter", res.MeanErrorAfter,
		"params", t.Params())

	return res, nil
}

func fit(samples []Sample, kind transform.Kind, o Options) (transform.Transform, error) {
	need := MinSamples(kind)
	if need == 0 {
		return nil, fmt.Errorf("%s(%s): %w", opFit, kind, ErrUnsupportedKind)
	}
	if len(samples) < need {
		return nil, fmt.Errorf("%s(%s): have %d, need %d: %w", opFit, kind, len(samples), need, ErrInsufficientSamples)
	}
	for i, s := range samples {
		if !s.Observed.IsFinite() || !s.Target.IsFinite() {
			return nil, fmt.Errorf("%s(%s): sample %d %v→%v: %w", opFit, kind, i, s.Observed, s.Target, ErrNonFiniteSample)
		}
	}

	switch kind {
	case transform.KindOffset:
		return fitOffset(samples), nil
	case transform.KindScale:
		return fitScale(samples, o)
	case transform.KindAffine:
		return fitAffine(samples, o)
	default:
		return fitPerspective(samples, o)
	}
}

// singularDesign wraps a matrix failure so that both ErrSingularDesign and
// the matrix sentinel match. Overflow in the normal equations is reported
// as ErrNonFiniteSample instead.
func singularDesign(kind transform.Kind, n int, err error) error {
	if errors.Is(err, matrix.ErrNaNInf) {
		return fmt.Errorf("%s(%s): %d samples: %w: %w", opFit, kind, n, ErrNonFiniteSample, err)
	}

	return fmt.Errorf("%s(%s): %d samples: %w: %w", opFit, kind, n, ErrSingularDesign, err)
}

// fillRow writes vals into row r of m. Set rejects a value that overflowed
// during centering or conditioning; that is reported against sample i.
func fillRow(m *matrix.Dense, r int, kind transform.Kind, i int, vals ...float64) error {
	for j, v := range vals {
		if err := m.Set(r, j, v); err != nil {
			return fmt.Errorf("%s(%s): sample %d: %w: %w", opFit, kind, i, ErrNonFiniteSample, err)
		}
	}

	return nil
}

// fitOffset returns the mean displacement target − observed.
func fitOffset(samples []Sample) transform.Offset {
	var d geom.Point
	for _, s := range samples {
		d = d.Add(s.Target.Sub(s.Observed))
	}

	return transform.NewOffset(d.X/float64(len(samples)), d.Y/float64(len(samples)))
}

// fitScale regresses each target axis on the same observed axis over rows
// [x'_i − c, 1], c being the observed mean, and maps the intercept back.
func fitScale(samples []Sample, o Options) (transform.Scale, error) {
	obs := Observed(samples)
	tgt := Targets(samples)
	c := geom.Centroid(obs)

	sx, dx, err := fitAxis(obs, tgt, func(p geom.Point) float64 { return p.X }, c.X, o)
	if err != nil {
		return transform.Scale{}, err
	}
	sy, dy, err := fitAxis(obs, tgt, func(p geom.Point) float64 { return p.Y }, c.Y, o)
	if err != nil {
		return transform.Scale{}, err
	}

	return transform.Scale{SX: sx, SY: sy, DX: dx, DY: dy}, nil
}

// fitAxis solves target = slope·observed + intercept along one axis.
func fitAxis(obs, tgt []geom.Point, axis func(geom.Point) float64, mean float64, o Options) (slope, intercept float64, err error) {
	x, err := matrix.NewDense(len(obs), 2)
	if err != nil {
		return 0, 0, err
	}
	y := make([]float64, len(obs))
	for i := range obs {
		if err := fillRow(x, i, transform.KindScale, i, axis(obs[i])-mean, 1); err != nil {
			return 0, 0, err
		}
		y[i] = axis(tgt[i])
	}
	theta, err := matrix.LeastSquares(x, y, o.matrixOptions()...)
	if err != nil {
		return 0, 0, singularDesign(transform.KindScale, len(obs), err)
	}

	return theta[0], theta[1] - theta[0]*mean, nil
}

// fitAffine solves the separable per-axis problems
//
//	X·θx ≈ targets.X, X·θy ≈ targets.Y, rows of X = [x̂, ŷ, 1]
//
// over conditioned observed points, then folds the conditioning back in.
func fitAffine(samples []Sample, o Options) (transform.Affine, error) {
	obs := Observed(samples)
	k := newConditioner(obs)

	x, err := matrix.NewDense(len(samples), 3)
	if err != nil {
		return transform.Affine{}, err
	}
	yx := make([]float64, len(samples))
	yy := make([]float64, len(samples))
	for i, s := range samples {
		p := k.apply(s.Observed)
		if err := fillRow(x, i, transform.KindAffine, i, p.X, p.Y, 1); err != nil {
			return transform.Affine{}, err
		}
		yx[i], yy[i] = s.Target.X, s.Target.Y
	}

	tx, err := matrix.LeastSquares(x, yx, o.matrixOptions()...)
	if err != nil {
		return transform.Affine{}, singularDesign(transform.KindAffine, len(samples), err)
	}
	ty, err := matrix.LeastSquares(x, yy, o.matrixOptions()...)
	if err != nil {
		return transform.Affine{}, singularDesign(transform.KindAffine, len(samples), err)
	}

	// x' = θ0·s(x − cx) + θ1·s(y − cy) + θ2
	a, c := tx[0]*k.s, tx[1]*k.s
	b, d := ty[0]*k.s, ty[1]*k.s
	e := tx[2] - a*k.c.X - c*k.c.Y
	f := ty[2] - b*k.c.X - d*k.c.Y

	return transform.NewAffine(a, b, c, d, e, f), nil
}

// fitPerspective is the normalized DLT with i = 1. For each sample
// (x, y) → (X, Y) in conditioned coordinates:
//
//	[x y 1 0 0 0 −xX −yX]·h = X
//	[0 0 0 x y 1 −xY −yY]·h = Y
//
// h (8 values) solves the normal equations; the full matrix is
// H = T_target⁻¹ · Ĥ · T_observed, rescaled so that i = 1.
func fitPerspective(samples []Sample, o Options) (transform.Perspective, error) {
	n := len(samples)
	ko := newConditioner(Observed(samples))
	kt := newConditioner(Targets(samples))

	a, err := matrix.NewDense(2*n, 8)
	if err != nil {
		return transform.Perspective{}, err
	}
	rhs := make([]float64, 2*n)
	for i, s := range samples {
		p, q := ko.apply(s.Observed), kt.apply(s.Target)
		r0, r1 := 2*i, 2*i+1
		if err := fillRow(a, r0, transform.KindPerspective, i, p.X, p.Y, 1, 0, 0, 0, -p.X*q.X, -p.Y*q.X); err != nil {
			return transform.Perspective{}, err
		}
		if err := fillRow(a, r1, transform.KindPerspective, i, 0, 0, 0, p.X, p.Y, 1, -p.X*q.Y, -p.Y*q.Y); err != nil {
			return transform.Perspective{}, err
		}
		rhs[r0], rhs[r1] = q.X, q.Y
	}

	h, err := matrix.LeastSquares(a, rhs, o.matrixOptions()...)
	if err != nil {
		return transform.Perspective{}, singularDesign(transform.KindPerspective, n, err)
	}
	hn := matrix.NewMat3(h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7], 1)

	m, err := matrix.Mul(kt.inverse(), hn)
	if err == nil {
		m, err = matrix.Mul(m, ko.forward())
	}
	if err != nil {
		return transform.Perspective{}, fmt.Errorf("%s(%s): %w", opFit, transform.KindPerspective, err)
	}

	d := m.Data()
	out := transform.NewPerspective(d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7], d[8])
	if w := out.H[8]; w != 0 && !nearZero(w, o.eps) {
		for i := range out.H {
			out.H[i] /= w
		}
	}

	return out, nil
}

func nearZero(v, eps float64) bool { return v < eps && v > -eps }
