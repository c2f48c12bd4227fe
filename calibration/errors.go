// SPDX-License-Identifier: MIT

package calibration

import "errors"

var (
	// ErrInsufficientSamples indicates fewer samples than the kind requires.
	ErrInsufficientSamples = errors.New("calibration: insufficient samples")

	// ErrSingularDesign indicates a non-invertible normal matrix, e.g.
	// collinear samples for an affine fit.
	ErrSingularDesign = errors.New("calibration: singular design")

	// ErrUnsupportedKind indicates a transform kind Fit cannot estimate.
	ErrUnsupportedKind = errors.New("calibration: unsupported kind")

	// ErrNonFiniteSample indicates a sample coordinate that is NaN or Inf.
	ErrNonFiniteSample = errors.New("calibration: non-finite sample")

	// ErrEmptyJobs indicates FitBatch called without jobs.
	ErrEmptyJobs = errors.New("calibration: no jobs")
)
