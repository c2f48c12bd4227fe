// SPDX-License-Identifier: MIT
package metrics_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/coordkit/geom"
	"github.com/katalvlaran/coordkit/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResiduals(t *testing.T) {
	t.Parallel()

	r, err := metrics.Residuals(
		[]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
		[]geom.Point{{X: 3, Y: 4}, {X: 1, Y: 1}},
	)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0}, r)

	_, err = metrics.Residuals([]geom.Point{{}}, nil)
	require.ErrorIs(t, err, metrics.ErrLengthMismatch)
}

func TestMeanMax(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, metrics.Mean(nil))
	assert.Equal(t, 0.0, metrics.Max(nil))
	assert.InDelta(t, 2.0, metrics.Mean([]float64{1, 2, 3}), 1e-15)
	assert.Equal(t, 3.0, metrics.Max([]float64{1, 3, 2}))
	assert.Equal(t, -1.0, metrics.Max([]float64{-5, -1}))
}

func TestImprovementPercent(t *testing.T) {
	t.Parallel()

	v, ok := metrics.ImprovementPercent(4, 1)
	assert.True(t, ok)
	assert.InDelta(t, 75.0, v, 1e-12)

	v, ok = metrics.ImprovementPercent(2, 3)
	assert.True(t, ok)
	assert.InDelta(t, -50.0, v, 1e-12)

	for _, after := range []float64{0, 1} {
		v, ok = metrics.ImprovementPercent(0, after)
		assert.False(t, ok)
		assert.Equal(t, metrics.NoImprovement, v)
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	target := []geom.Point{{X: 20, Y: 20}, {X: 80, Y: 20}}
	before := []geom.Point{{X: 23, Y: 24}, {X: 80, Y: 21}}
	after := []geom.Point{{X: 20, Y: 20}, {X: 80, Y: 20.5}}

	s, err := metrics.Summarize(before, after, target)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, s.MeanBefore, 1e-12)
	assert.InDelta(t, 0.25, s.MeanAfter, 1e-12)
	assert.InDelta(t, 5.0, s.MaxBefore, 1e-12)
	assert.InDelta(t, 0.5, s.MaxAfter, 1e-12)
	assert.True(t, s.ImprovementDefined)
	assert.InDelta(t, 100*(1-0.25/3.0), s.ImprovementPercent, 1e-9)

	_, err = metrics.Summarize(nil, nil, nil)
	require.ErrorIs(t, err, metrics.ErrEmptyInput)
	_, err = metrics.Summarize(before[:1], after, target)
	require.ErrorIs(t, err, metrics.ErrLengthMismatch)
}

func TestSummarize_PerfectBefore(t *testing.T) {
	t.Parallel()

	pts := []geom.Point{{X: 1, Y: 1}}
	s, err := metrics.Summarize(pts, pts, pts)
	require.NoError(t, err)
	assert.False(t, s.ImprovementDefined)
	assert.Equal(t, metrics.NoImprovement, s.ImprovementPercent)
	assert.Contains(t, s.String(), "improvement n/a")
}

func ExampleSummary_String() {
	s := metrics.SummarizeResiduals([]float64{4, 6}, []float64{1, 1})
	fmt.Println(s)
	// Output: mean 5.000 -> 1.000, max 6.000 -> 1.000, improvement 80.0%
}
