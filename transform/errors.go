// SPDX-License-Identifier: MIT

package transform

import "errors"

var (
	// ErrDegenerateScale indicates a Scale inverse with |sx| or |sy| below eps.
	ErrDegenerateScale = errors.New("transform: degenerate scale")

	// ErrPointAtInfinity indicates a Perspective inverse whose homogeneous
	// weight vanishes: the point maps to the line at infinity.
	ErrPointAtInfinity = errors.New("transform: point maps to infinity")

	// ErrUnknownKind indicates an unrecognized transform kind name or value.
	ErrUnknownKind = errors.New("transform: unknown kind")

	// ErrParamCount indicates a parameter vector of the wrong length for its kind.
	ErrParamCount = errors.New("transform: wrong parameter count")

	// ErrBadShape indicates an affine linear part that is not 2×2.
	ErrBadShape = errors.New("transform: linear part must be 2x2")
)
