// Package matrix offers the small dense linear algebra behind coordkit.
//
// The matrix package provides:
//
//   - Dense, a row-major r×c matrix whose shape is fixed at construction
//     (2×2 affine parts, 3×3 homogeneous transforms, n×3 and 2n×8 design
//     matrices for calibration).
//   - Mul, Transpose and MatVec with strict shape validation
//     (ErrDimensionMismatch carries both shapes).
//   - Determinant, Inverse and Solve with closed forms for 2×2 and 3×3 and
//     pivoted elimination for larger systems.
//   - LeastSquares over the normal equations (XᵀX)θ = Xᵀy.
//
// Numeric policy: a matrix is singular when |det| (or an elimination pivot)
// is below eps. eps defaults to DefaultEpsilon (1e-10) and is passed per call
// with WithEpsilon; there is no package-level mutable state, so concurrent
// callers with different tolerances never interfere.
//
//	A := matrix.NewMat2(2, 1, 1, 3)
//	inv, err := matrix.Inverse(A, matrix.WithEpsilon(1e-12))
//	if errors.Is(err, matrix.ErrSingular) {
//		// A cannot be inverted
//	}
package matrix
