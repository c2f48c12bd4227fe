// SPDX-License-Identifier: MIT

package metrics

import "errors"

var (
	// ErrLengthMismatch indicates point or residual slices of different lengths.
	ErrLengthMismatch = errors.New("metrics: length mismatch")

	// ErrEmptyInput indicates a summary requested over zero points.
	ErrEmptyInput = errors.New("metrics: empty input")
)
