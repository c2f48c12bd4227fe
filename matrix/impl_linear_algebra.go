// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by transforms and
// the calibration estimator: multiplication, transpose, matrix-vector
// product, determinant, inverse and linear solve. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches and
// singular inputs.
//
// Notes:
//   - 2×2 and 3×3 inputs use closed forms (the hot path for transforms).
//   - Larger square systems (the 8×8 perspective normal equations) use
//     elimination with partial pivoting.
//   - Kernels never mutate their operands; every result is freshly allocated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for dot-product accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opMatVec      = "MatVec"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opSolve       = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// singularErrorf builds the ErrSingular wrapper carrying shape, the rejected
// quantity (a determinant or an elimination pivot) and eps.
func singularErrorf(tag string, m *Dense, what string, v, eps float64) error {
	return matrixErrorf(tag, fmt.Errorf("%s %s=%g < eps=%g: %w", shapeOf(m), what, math.Abs(v), eps, ErrSingular))
}

// pivotLabel names the pivot of elimination column k.
func pivotLabel(k int) string { return fmt.Sprintf("|pivot[%d]|", k) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j over the flat buffers, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (message carries both shapes).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res := &Dense{r: aRows, c: bCols, data: make([]float64, aRows*bCols)}

	var (
		i, j, k    int
		av         float64
		rowA, rowR int
	)
	for i = 0; i < aRows; i++ {
		rowA = i * aCols
		rowR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			for j = 0; j < bCols; j++ {
				res.data[rowR+j] += av * b.data[k*bCols+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.r, m.c
	res := &Dense{r: cols, c: rows, data: make([]float64, rows*cols)}
	for i := 0; i < rows; i++ {
		base := i * cols
		for j := 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[base+j]
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.r)
	var acc float64
	for i := 0; i < m.r; i++ {
		acc = ZeroSum
		base := i * m.c
		for j := 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// det2 is the closed form a·d − b·c over a row-major 2×2 buffer.
func det2(d []float64) float64 {
	return d[0]*d[3] - d[1]*d[2]
}

// det3 expands [[a,b,c],[d,e,f],[g,h,i]] along the first row:
// a(ei−fh) − b(di−fg) + c(dh−eg).
func det3(m []float64) float64 {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Determinant returns det(m) for a square matrix.
// Implementation:
//   - 1×1, 2×2 and 3×3 use closed forms (cofactor expansion for 3×3).
//   - n>3 multiplies the pivots of a partially pivoted LU factorization.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Determinant(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	switch m.r {
	case 1:
		return m.data[0], nil
	case 2:
		return det2(m.data), nil
	case 3:
		return det3(m.data), nil
	}
	lu, sign := luFactor(m)
	det := sign
	for i := 0; i < m.r; i++ {
		det *= lu[i*m.r+i]
	}

	return det, nil
}

// luFactor returns the packed LU factors of m (partial pivoting) and the
// permutation sign. Zero pivot columns are skipped; their zero diagonal makes
// the determinant zero.
// Complexity: O(n^3) time, O(n^2) space.
func luFactor(m *Dense) ([]float64, float64) {
	n := m.r
	lu := m.Data()
	sign := 1.0
	for k := 0; k < n; k++ {
		p := k
		maxAbs := math.Abs(lu[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(lu[i*n+k]); v > maxAbs {
				maxAbs, p = v, i
			}
		}
		if p != k {
			swapRows(lu, n, k, p)
			sign = -sign
		}
		pivot := lu[k*n+k]
		if pivot == 0 {
			continue
		}
		for i := k + 1; i < n; i++ {
			f := lu[i*n+k] / pivot
			lu[i*n+k] = f
			for j := k + 1; j < n; j++ {
				lu[i*n+j] -= f * lu[k*n+j]
			}
		}
	}

	return lu, sign
}

// swapRows exchanges rows r1 and r2 of a row-major buffer with `cols` columns.
func swapRows(buf []float64, cols, r1, r2 int) {
	a := buf[r1*cols : (r1+1)*cols]
	b := buf[r2*cols : (r2+1)*cols]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}
}

// Inverse returns A⁻¹ for a square matrix.
// Implementation:
//   - 1×1: 1/a.
//   - 2×2: closed form (1/det)·[[d,−b],[−c,a]].
//   - 3×3: adjugate (transposed cofactors) divided by the determinant.
//   - n×n: Gauss–Jordan elimination with partial pivoting.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when |det(A)| < eps (n ≤ 3) or a pivot magnitude < eps (n > 3);
//     eps defaults to DefaultEpsilon and is overridden with WithEpsilon.
//
// Complexity:
//   - O(1) for n ≤ 3, O(n^3) otherwise.
func Inverse(m *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	eps := gatherOptions(opts...).eps

	switch m.r {
	case 1:
		a := m.data[0]
		if math.Abs(a) < eps {
			return nil, singularErrorf(opInverse, m, "|det|", a, eps)
		}
		return &Dense{r: 1, c: 1, data: []float64{1 / a}}, nil

	case 2:
		det := det2(m.data)
		if math.Abs(det) < eps || isNonFinite(det) {
			return nil, singularErrorf(opInverse, m, "|det|", det, eps)
		}
		a, b, c, d := m.data[0], m.data[1], m.data[2], m.data[3]
		return NewMat2(d/det, -b/det, -c/det, a/det), nil

	case 3:
		det := det3(m.data)
		if math.Abs(det) < eps || isNonFinite(det) {
			return nil, singularErrorf(opInverse, m, "|det|", det, eps)
		}
		return adjugate3(m.data, det), nil
	}

	return gaussJordanInverse(m, eps)
}

// adjugate3 returns adj(M)/det for a row-major 3×3 buffer.
func adjugate3(m []float64, det float64) *Dense {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	// Cofactors C_ij; the inverse is Cᵀ/det.
	c00 := e*i - f*h
	c01 := -(d*i - f*g)
	c02 := d*h - e*g
	c10 := -(b*i - c*h)
	c11 := a*i - c*g
	c12 := -(a*h - b*g)
	c20 := b*f - c*e
	c21 := -(a*f - c*d)
	c22 := a*e - b*d

	return NewMat3(
		c00/det, c10/det, c20/det,
		c01/det, c11/det, c21/det,
		c02/det, c12/det, c22/det,
	)
}

// gaussJordanInverse inverts an n×n matrix by reducing [A | I] to [I | A⁻¹].
func gaussJordanInverse(m *Dense, eps float64) (*Dense, error) {
	n := m.r
	w := 2 * n
	aug := make([]float64, n*w)
	for i := 0; i < n; i++ {
		copy(aug[i*w:i*w+n], m.data[i*n:(i+1)*n])
		aug[i*w+n+i] = 1
	}

	for k := 0; k < n; k++ {
		p := k
		maxAbs := math.Abs(aug[k*w+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(aug[i*w+k]); v > maxAbs {
				maxAbs, p = v, i
			}
		}
		if maxAbs < eps {
			return nil, singularErrorf(opInverse, m, pivotLabel(k), maxAbs, eps)
		}
		if p != k {
			swapRows(aug, w, k, p)
		}
		pivot := aug[k*w+k]
		for j := 0; j < w; j++ {
			aug[k*w+j] /= pivot
		}
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			f := aug[i*w+k]
			if f == 0 {
				continue
			}
			for j := 0; j < w; j++ {
				aug[i*w+j] -= f * aug[k*w+j]
			}
		}
	}

	inv := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug[i*w+n:(i+1)*w])
	}

	return inv, nil
}

// Solve returns x with A·x = b.
// Implementation:
//   - n ≤ 3: x = Inverse(A)·b (closed forms).
//   - n > 3: Gaussian elimination with partial pivoting and back substitution.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(b) != n).
//   - ErrSingular under the same condition as Inverse.
func Solve(a *Dense, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.r
	if n <= 3 {
		inv, err := Inverse(a, opts...)
		if err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		return MatVec(inv, b)
	}
	eps := gatherOptions(opts...).eps

	w := n + 1
	aug := make([]float64, n*w)
	for i := 0; i < n; i++ {
		copy(aug[i*w:i*w+n], a.data[i*n:(i+1)*n])
		aug[i*w+n] = b[i]
	}
	// Forward elimination.
	for k := 0; k < n; k++ {
		p := k
		maxAbs := math.Abs(aug[k*w+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(aug[i*w+k]); v > maxAbs {
				maxAbs, p = v, i
			}
		}
		if maxAbs < eps {
			return nil, singularErrorf(opSolve, a, pivotLabel(k), maxAbs, eps)
		}
		if p != k {
			swapRows(aug, w, k, p)
		}
		pivot := aug[k*w+k]
		for i := k + 1; i < n; i++ {
			f := aug[i*w+k] / pivot
			if f == 0 {
				continue
			}
			for j := k; j < w; j++ {
				aug[i*w+j] -= f * aug[k*w+j]
			}
		}
	}
	// Back substitution (bottom-up).
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := aug[i*w+n]
		for j := i + 1; j < n; j++ {
			sum -= aug[i*w+j] * x[j]
		}
		x[i] = sum / aug[i*w+i]
	}

	return x, nil
}
