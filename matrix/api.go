// SPDX-License-Identifier: MIT
// Package matrix: public least-squares facades.
//
// Purpose:
//   - Provide the normal-equation building blocks the calibration estimator
//     composes: Gram (XᵀX), moment vector (Xᵀy) and the solve.
//   - Avoid logic duplication: each facade delegates to the canonical kernels
//     in impl_linear_algebra.go.

package matrix

import "fmt"

const opLeastSquares = "LeastSquares"

// Gram returns XᵀX for a design matrix X (n×p → p×p).
// Complexity: O(n·p²).
func Gram(x *Dense) (*Dense, error) {
	xt, err := Transpose(x)
	if err != nil {
		return nil, err
	}

	return Mul(xt, x)
}

// Moments returns Xᵀy for a design matrix X (n×p) and observations y (len n).
func Moments(x *Dense, y []float64) ([]float64, error) {
	xt, err := Transpose(x)
	if err != nil {
		return nil, err
	}

	return MatVec(xt, y)
}

// LeastSquares returns θ minimizing ||X·θ − y||² via the normal equations
// (XᵀX)·θ = Xᵀy.
//
// When X is square and non-singular the result interpolates y exactly.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(y) != rows, or fewer rows than
//     columns), ErrSingular when XᵀX is singular under eps.
//   - ErrNaNInf when XᵀX or Xᵀy overflows.
//
// Complexity: O(n·p² + p³).
func LeastSquares(x *Dense, y []float64, opts ...Option) ([]float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	if err := ValidateVecLen(y, x.r); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	if x.r < x.c {
		return nil, matrixErrorf(opLeastSquares,
			fmt.Errorf("%s underdetermined: %w", shapeOf(x), ErrDimensionMismatch))
	}
	g, err := Gram(x)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	m, err := Moments(x, y)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	if err = ValidateFinite(g.data); err == nil {
		err = ValidateFinite(m)
	}
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	theta, err := Solve(g, m, opts...)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}

	return theta, nil
}
