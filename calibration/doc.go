// SPDX-License-Identifier: MIT

// Package calibration fits correction transforms from observed pointer
// positions to the targets the user meant to hit.
//
// Fit takes (observed, target) sample pairs and a transform.Kind and returns
// the least-squares transform together with per-sample residuals before and
// after correction.
//
// Estimators:
//
//   - Offset: mean of (target − observed). Needs 1 sample.
//   - Scale: per-axis regression target = s·observed + d over rows [x', 1].
//     Needs 1 sample, but a single sample (or samples sharing an observed
//     coordinate) leaves the system singular and is reported as
//     ErrSingularDesign.
//   - Affine: design rows [x', y', 1], solved per output axis through the
//     normal equations (XᵀX)θ = Xᵀy. Needs 3 non-collinear samples; exactly
//     3 interpolate the targets.
//   - Perspective: linear DLT with the last coefficient fixed to 1, two rows
//     per sample, 8×8 normal equations. Needs 4 samples, no 3 collinear.
//
// Observed (and, for Perspective, target) coordinates are conditioned
// before the solve: shifted to their centroid and scaled so the mean distance
// from it is √2. The fitted parameters are mapped back to the original
// coordinates, so conditioning never shows in the result. It keeps the
// normal matrices well scaled, which makes the eps singularity threshold
// meaningful for pixel-sized inputs.
//
// Failures are never approximated: too few samples yield
// ErrInsufficientSamples, degenerate geometry ErrSingularDesign.
//
// FitBatch fits several independent profiles concurrently.
package calibration
