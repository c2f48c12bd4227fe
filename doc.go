// Package coordkit converts 2-D points between nested display coordinate
// spaces and corrects systematic pointer error by least-squares calibration.
//
// What is inside?
//
//	geom/        Point: the immutable 2-D value type
//	matrix/      small dense matrices: Mul, Determinant, Inverse, Solve, LeastSquares
//	transform/   Offset, Scale, Affine, Perspective behind one sealed interface
//	chain/       ordered, immutable transform pipelines with step-indexed inverse errors
//	viewport/    screen → browser → logical → normalized chains from a TOML display description
//	calibration/ Fit (offset/scale/affine/perspective), Evaluate, concurrent FitBatch
//	metrics/     residuals, means, maxima and improvement with an explicit no-improvement sentinel
//	simulate/    seeded synthetic clicks for reproducible calibration runs
//	cmd/coordkit command-line front end
//
// Data flows one way:
//
//	samples ─▶ calibration.Fit ─▶ transform ─▶ chain ─▶ corrected points ─▶ metrics
//
// Numeric policy: a matrix is singular when |det| (or an elimination pivot)
// falls below eps, 1e-10 by default. eps is passed per call with
// matrix.WithEpsilon or calibration.WithEpsilon; there is no global
// tolerance.
//
//	go get github.com/katalvlaran/coordkit
package coordkit
