// SPDX-License-Identifier: MIT
package calibration_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/katalvlaran/coordkit/calibration"
	"github.com/katalvlaran/coordkit/geom"
	"github.com/katalvlaran/coordkit/matrix"
	"github.com/katalvlaran/coordkit/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exampleSamples is the three-click scenario used throughout the docs.
var exampleSamples = []calibration.Sample{
	{Observed: geom.Pt(22, 18), Target: geom.Pt(20, 20)},
	{Observed: geom.Pt(77, 23), Target: geom.Pt(80, 20)},
	{Observed: geom.Pt(16, 85), Target: geom.Pt(20, 80)},
}

// samplesFrom maps each observed point through truth to produce its target.
func samplesFrom(truth transform.Transform, observed ...geom.Point) []calibration.Sample {
	out := make([]calibration.Sample, len(observed))
	for i, p := range observed {
		out[i] = calibration.Sample{Observed: p, Target: truth.Forward(p)}
	}

	return out
}

func grid3x3() []geom.Point {
	var pts []geom.Point
	for _, y := range []float64{10, 50, 90} {
		for _, x := range []float64{10, 50, 90} {
			pts = append(pts, geom.Pt(x, y))
		}
	}

	return pts
}

func requireMapsOnto(t *testing.T, tr transform.Transform, samples []calibration.Sample, eps float64) {
	t.Helper()
	for i, s := range samples {
		got := tr.Forward(s.Observed)
		require.True(t, s.Target.Equals(got, eps), "sample %d: want %v, got %v", i, s.Target, got)
	}
}

func TestFit_AffineExampleScenario(t *testing.T) {
	t.Parallel()

	res, err := calibration.Fit(exampleSamples, transform.KindAffine)
	require.NoError(t, err)
	require.Equal(t, transform.KindAffine, res.Kind)
	require.Equal(t, 3, res.Samples)
	requireMapsOnto(t, res.Transform, exampleSamples, 1e-6)

	require.Len(t, res.ResidualsBefore, 3)
	assert.InDelta(t, 2.83, res.ResidualsBefore[0], 0.005)
	assert.InDelta(t, 4.24, res.ResidualsBefore[1], 0.005)
	assert.InDelta(t, math.Sqrt(41), res.ResidualsBefore[2], 1e-12)
	assert.InDelta(t, (math.Sqrt(8)+math.Sqrt(18)+math.Sqrt(41))/3, res.MeanErrorBefore, 1e-12)
	assert.InDelta(t, 0, res.MeanErrorAfter, 1e-6)
	for _, r := range res.ResidualsAfter {
		assert.InDelta(t, 0, r, 1e-6)
	}

	s := res.Summary()
	assert.True(t, s.ImprovementDefined)
	assert.InDelta(t, 100, s.ImprovementPercent, 1e-4)
	assert.Contains(t, res.String(), "affine fit over 3 samples")
}

func TestFit_AffineRecoversParameters(t *testing.T) {
	t.Parallel()

	truth := transform.NewAffine(1.03, -0.02, 0.015, 0.97, -4.5, 3.25)
	for _, pts := range [][]geom.Point{
		// exactly determined
		{geom.Pt(20, 20), geom.Pt(80, 20), geom.Pt(20, 80)},
		// over-determined
		grid3x3(),
		// screen pixels
		{geom.Pt(300, 200), geom.Pt(1700, 220), geom.Pt(320, 950), geom.Pt(1650, 980)},
	} {
		res, err := calibration.Fit(samplesFrom(truth, pts...), transform.KindAffine)
		require.NoError(t, err)
		assert.InDeltaSlice(t, truth.Params(), res.Transform.Params(), 1e-8)
	}
}

func TestFit_AffineCollinear(t *testing.T) {
	t.Parallel()

	samples := samplesFrom(transform.NewOffset(1, 1), geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(3, 3))
	_, err := calibration.Fit(samples, transform.KindAffine)
	require.ErrorIs(t, err, calibration.ErrSingularDesign)
	require.ErrorIs(t, err, matrix.ErrSingular)
	assert.Contains(t, err.Error(), "4 samples")

	// Coincident points are the extreme case.
	samples = samplesFrom(transform.NewOffset(1, 1), geom.Pt(5, 5), geom.Pt(5, 5), geom.Pt(5, 5))
	_, err = calibration.Fit(samples, transform.KindAffine)
	require.ErrorIs(t, err, calibration.ErrSingularDesign)
}

func TestFit_InsufficientSamples(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		kind transform.Kind
		n    int
	}{
		{transform.KindOffset, 0},
		{transform.KindScale, 0},
		{transform.KindAffine, 2},
		{transform.KindPerspective, 3},
	} {
		t.Run(tc.kind.String(), func(t *testing.T) {
			_, err := calibration.Fit(exampleSamples[:tc.n], tc.kind)
			require.ErrorIs(t, err, calibration.ErrInsufficientSamples)
			assert.Contains(t, err.Error(), fmt.Sprintf("have %d, need %d", tc.n, calibration.MinSamples(tc.kind)))
		})
	}
}

func TestMinSamples(t *testing.T) {
	assert.Equal(t, 1, calibration.MinSamples(transform.KindOffset))
	assert.Equal(t, 1, calibration.MinSamples(transform.KindScale))
	assert.Equal(t, 3, calibration.MinSamples(transform.KindAffine))
	assert.Equal(t, 4, calibration.MinSamples(transform.KindPerspective))
	assert.Equal(t, 0, calibration.MinSamples(transform.Kind(42)))
}

func TestFit_Offset(t *testing.T) {
	t.Parallel()

	samples := []calibration.Sample{
		{Observed: geom.Pt(0, 0), Target: geom.Pt(2, -1)},
		{Observed: geom.Pt(10, 10), Target: geom.Pt(14, 9)},
	}
	res, err := calibration.Fit(samples, transform.KindOffset)
	require.NoError(t, err)
	assert.Equal(t, transform.NewOffset(3, -1), res.Transform)

	// One sample is exact.
	res, err = calibration.Fit(samples[:1], transform.KindOffset)
	require.NoError(t, err)
	assert.InDelta(t, 0, res.MeanErrorAfter, 1e-12)
}

func TestFit_Scale(t *testing.T) {
	t.Parallel()

	truth := transform.Scale{SX: 1 / 1.5, SY: 1.25, DX: -133.5, DY: 7}
	res, err := calibration.Fit(samplesFrom(truth, grid3x3()...), transform.KindScale)
	require.NoError(t, err)
	assert.InDeltaSlice(t, truth.Params(), res.Transform.Params(), 1e-9)

	// A single sample cannot separate slope from intercept.
	_, err = calibration.Fit(samplesFrom(truth, geom.Pt(1, 1)), transform.KindScale)
	require.ErrorIs(t, err, calibration.ErrSingularDesign)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Neither can samples sharing an x coordinate.
	_, err = calibration.Fit(samplesFrom(truth, geom.Pt(4, 1), geom.Pt(4, 9)), transform.KindScale)
	require.ErrorIs(t, err, calibration.ErrSingularDesign)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestFit_ScaleOverflowIsNonFinite(t *testing.T) {
	t.Parallel()

	for name, samples := range map[string][]calibration.Sample{
		// The observed mean overflows while centering.
		"centering": {
			{Observed: geom.Pt(1.7e308, 1), Target: geom.Pt(0, 1)},
			{Observed: geom.Pt(1.7e308, 2), Target: geom.Pt(0, 2)},
		},
		// Centered values are finite but their squares are not.
		"normal equations": {
			{Observed: geom.Pt(1.7e308, 1), Target: geom.Pt(0, 1)},
			{Observed: geom.Pt(-1.7e308, 2), Target: geom.Pt(1, 2)},
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := calibration.Fit(samples, transform.KindScale)
			require.ErrorIs(t, err, calibration.ErrNonFiniteSample)
			require.ErrorIs(t, err, matrix.ErrNaNInf)
			require.NotErrorIs(t, err, calibration.ErrSingularDesign)
		})
	}
}

func TestFit_Perspective(t *testing.T) {
	t.Parallel()

	truth := transform.NewPerspective(1.1, 0.05, 10, 0.02, 0.95, -5, 1e-3, 5e-4, 1)
	quad := []geom.Point{geom.Pt(10, 10), geom.Pt(90, 12), geom.Pt(85, 95), geom.Pt(8, 88)}

	for name, pts := range map[string][]geom.Point{"exact": quad, "overdetermined": grid3x3()} {
		t.Run(name, func(t *testing.T) {
			samples := samplesFrom(truth, pts...)
			res, err := calibration.Fit(samples, transform.KindPerspective)
			require.NoError(t, err)
			requireMapsOnto(t, res.Transform, samples, 1e-6)
			assert.InDeltaSlice(t, truth.Params(), res.Transform.Params(), 1e-6)
			assert.InDelta(t, 0, res.MeanErrorAfter, 1e-6)

			back, err := res.Transform.Inverse(samples[0].Target)
			require.NoError(t, err)
			assert.True(t, samples[0].Observed.Equals(back, 1e-6))
		})
	}
}

func TestFit_PerspectiveDegenerate(t *testing.T) {
	t.Parallel()

	// Three of the four points on one line.
	samples := samplesFrom(transform.Identity(), geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(0, 5))
	_, err := calibration.Fit(samples, transform.KindPerspective)
	require.ErrorIs(t, err, calibration.ErrSingularDesign)
}

func TestFit_InputValidation(t *testing.T) {
	t.Parallel()

	_, err := calibration.Fit(exampleSamples, transform.Kind(42))
	require.ErrorIs(t, err, calibration.ErrUnsupportedKind)

	bad := append([]calibration.Sample{}, exampleSamples...)
	bad[1].Target = geom.Pt(math.NaN(), 0)
	_, err = calibration.Fit(bad, transform.KindAffine)
	require.ErrorIs(t, err, calibration.ErrNonFiniteSample)
	assert.Contains(t, err.Error(), "sample 1")

	// Samples are not mutated by Fit.
	assert.Equal(t, geom.Pt(77, 23), exampleSamples[1].Observed)
}

func TestFit_EpsilonIsPerCall(t *testing.T) {
	t.Parallel()

	_, err := calibration.Fit(exampleSamples, transform.KindAffine, calibration.WithEpsilon(1e6))
	require.ErrorIs(t, err, calibration.ErrSingularDesign)

	_, err = calibration.Fit(exampleSamples, transform.KindAffine)
	require.NoError(t, err)

	assert.Panics(t, func() { calibration.WithEpsilon(-1) })
}

func TestFit_NoisyImproves(t *testing.T) {
	t.Parallel()

	truth := transform.NewAffine(0.98, 0.01, -0.02, 1.02, 3, -2)
	pts := grid3x3()
	jitter := []geom.Point{
		{X: 0.3, Y: -0.2}, {X: -0.1, Y: 0.4}, {X: 0.2, Y: 0.1},
		{X: -0.4, Y: -0.3}, {X: 0.1, Y: 0.2}, {X: 0.3, Y: -0.1},
		{X: -0.2, Y: 0.3}, {X: 0.0, Y: -0.4}, {X: 0.2, Y: 0.2},
	}
	samples := samplesFrom(truth, pts...)
	for i := range samples {
		samples[i].Target = samples[i].Target.Add(jitter[i])
	}

	res, err := calibration.Fit(samples, transform.KindAffine)
	require.NoError(t, err)
	assert.Less(t, res.MeanErrorAfter, res.MeanErrorBefore)
	assert.Greater(t, res.MeanErrorAfter, 0.0)
	assert.InDeltaSlice(t, truth.Params(), res.Transform.Params(), 0.5)
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	truth := transform.NewAffine(1.03, -0.02, 0.015, 0.97, -4.5, 3.25)
	res, err := calibration.Fit(samplesFrom(truth, grid3x3()...), transform.KindAffine)
	require.NoError(t, err)

	heldOut := samplesFrom(truth, geom.Pt(33, 71), geom.Pt(64, 12), geom.Pt(5, 5))
	s, err := calibration.Evaluate(res.Transform, heldOut)
	require.NoError(t, err)
	assert.Greater(t, s.MeanBefore, 1.0)
	assert.InDelta(t, 0, s.MeanAfter, 1e-8)
	assert.InDelta(t, 0, s.MaxAfter, 1e-8)

	_, err = calibration.Evaluate(res.Transform, nil)
	require.Error(t, err)
}

func TestFit_LogsAtV1(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})

	_, err := calibration.Fit(exampleSamples, transform.KindAffine, calibration.WithLogger(logger))
	require.NoError(t, err)
	_, err = calibration.Fit(exampleSamples[:1], transform.KindAffine, calibration.WithLogger(logger))
	require.Error(t, err)

	require.Len(t, lines, 2)
	assert.True(t, strings.Contains(lines[0], `"msg"="fit done"`), lines[0])
	assert.Contains(t, lines[0], `"kind"="affine"`)
	assert.Contains(t, lines[1], `"msg"="fit failed"`)
}
