// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal by delegating nil/shape/length checks here.
//  - Attach the offending shapes to the sentinel so failures can be
//    diagnosed without re-running.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeOf renders "r×c" (or "nil") for error messages.
func shapeOf(m *Dense) string {
	if m == nil {
		return "nil"
	}

	return fmt.Sprintf("%dx%d", m.r, m.c)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare(%s)", shapeOf(m)), ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch (message carries both shapes).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible(%s × %s)", shapeOf(a), shapeOf(b)),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen(len=%d, want %d)", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures every value in xs is finite.
func ValidateFinite(xs []float64) error {
	for i, v := range xs {
		if isNonFinite(v) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite[%d]", i), ErrNaNInf)
		}
	}

	return nil
}
