// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"

	"github.com/katalvlaran/coordkit/geom"
)

// NoImprovement is the improvement reported when the error before
// calibration is zero.
const NoImprovement = 0.0

// Residuals returns |a_i − b_i| for every pair.
//
// Errors:
//   - ErrLengthMismatch if len(a) != len(b).
func Residuals(a, b []geom.Point) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("Residuals(%d vs %d): %w", len(a), len(b), ErrLengthMismatch)
	}

	return geom.Distances(a, b), nil
}

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// Max returns the largest element of xs, or 0 for an empty slice.
func Max(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}

	return m
}

// ImprovementPercent returns 100·(1 − after/before) and true, or
// (NoImprovement, false) when before is zero.
// A negative value means calibration made things worse.
func ImprovementPercent(before, after float64) (float64, bool) {
	if before == 0 {
		return NoImprovement, false
	}

	return 100 * (1 - after/before), true
}

// Summary aggregates residuals before and after a correction.
type Summary struct {
	MeanBefore float64 `json:"mean_before"`
	MeanAfter  float64 `json:"mean_after"`
	MaxBefore  float64 `json:"max_before"`
	MaxAfter   float64 `json:"max_after"`

	// ImprovementPercent is NoImprovement whenever ImprovementDefined is false.
	ImprovementPercent float64 `json:"improvement_percent"`
	ImprovementDefined bool    `json:"improvement_defined"`
}

// Summarize compares raw points (before) and corrected points (after)
// against their targets.
//
// Errors:
//   - ErrEmptyInput if target is empty.
//   - ErrLengthMismatch if the three slices differ in length.
func Summarize(before, after, target []geom.Point) (Summary, error) {
	if len(target) == 0 {
		return Summary{}, fmt.Errorf("Summarize: %w", ErrEmptyInput)
	}
	if len(before) != len(target) || len(after) != len(target) {
		return Summary{}, fmt.Errorf("Summarize(before=%d after=%d target=%d): %w",
			len(before), len(after), len(target), ErrLengthMismatch)
	}

	return SummarizeResiduals(geom.Distances(target, before), geom.Distances(target, after)), nil
}

// SummarizeResiduals aggregates precomputed residual slices.
func SummarizeResiduals(before, after []float64) Summary {
	s := Summary{
		MeanBefore: Mean(before),
		MeanAfter:  Mean(after),
		MaxBefore:  Max(before),
		MaxAfter:   Max(after),
	}
	s.ImprovementPercent, s.ImprovementDefined = ImprovementPercent(s.MeanBefore, s.MeanAfter)

	return s
}

// String renders the summary on one line.
func (s Summary) String() string {
	imp := "n/a"
	if s.ImprovementDefined {
		imp = fmt.Sprintf("%.1f%%", s.ImprovementPercent)
	}

	return fmt.Sprintf("mean %.3f -> %.3f, max %.3f -> %.3f, improvement %s",
		s.MeanBefore, s.MeanAfter, s.MaxBefore, s.MaxAfter, imp)
}
