// SPDX-License-Identifier: MIT

package calibration

import (
	"fmt"

	"github.com/katalvlaran/coordkit/geom"
	"github.com/katalvlaran/coordkit/metrics"
	"github.com/katalvlaran/coordkit/transform"
)

// Sample pairs where the pointer landed with where it was aimed.
type Sample struct {
	Observed geom.Point `json:"observed"`
	Target   geom.Point `json:"target"`
}

// Observed returns the observed points of samples in order.
func Observed(samples []Sample) []geom.Point {
	out := make([]geom.Point, len(samples))
	for i, s := range samples {
		out[i] = s.Observed
	}

	return out
}

// Targets returns the target points of samples in order.
func Targets(samples []Sample) []geom.Point {
	out := make([]geom.Point, len(samples))
	for i, s := range samples {
		out[i] = s.Target
	}

	return out
}

// Result is the outcome of one Fit. It is never modified after Fit returns.
type Result struct {
	Kind      transform.Kind
	Transform transform.Transform
	Samples   int

	// ResidualsBefore[i] = |target_i − observed_i|.
	ResidualsBefore []float64
	// ResidualsAfter[i] = |target_i − Transform.Forward(observed_i)|.
	ResidualsAfter []float64

	MeanErrorBefore float64
	MeanErrorAfter  float64
}

func newResult(t transform.Transform, samples []Sample) Result {
	targets := Targets(samples)
	before := geom.Distances(targets, Observed(samples))
	after := geom.Distances(targets, Correct(t, Observed(samples)))

	return Result{
		Kind:            t.Kind(),
		Transform:       t,
		Samples:         len(samples),
		ResidualsBefore: before,
		ResidualsAfter:  after,
		MeanErrorBefore: metrics.Mean(before),
		MeanErrorAfter:  metrics.Mean(after),
	}
}

// Summary aggregates the residuals (means, maxima, improvement).
func (r Result) Summary() metrics.Summary {
	return metrics.SummarizeResiduals(r.ResidualsBefore, r.ResidualsAfter)
}

// String renders kind, sample count and the summary on one line.
func (r Result) String() string {
	return fmt.Sprintf("%s fit over %d samples: %s", r.Kind, r.Samples, r.Summary())
}

// Correct applies t to every observed point.
func Correct(t transform.Transform, observed []geom.Point) []geom.Point {
	out := make([]geom.Point, len(observed))
	for i, p := range observed {
		out[i] = t.Forward(p)
	}

	return out
}

// Evaluate measures how well t corrects samples that were not used to fit
// it (held-out test points).
//
// Errors:
//   - metrics.ErrEmptyInput when samples is empty.
func Evaluate(t transform.Transform, samples []Sample) (metrics.Summary, error) {
	observed := Observed(samples)
	s, err := metrics.Summarize(observed, Correct(t, observed), Targets(samples))
	if err != nil {
		return metrics.Summary{}, fmt.Errorf("Evaluate(%s): %w", t.Kind(), err)
	}

	return s, nil
}
