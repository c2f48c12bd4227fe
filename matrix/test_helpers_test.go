// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/coordkit/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the comparison tolerance for floating results in this package.
const tol = 1e-12

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err, "NewFromRows")

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	I, err := matrix.NewIdentity(n)
	require.NoError(t, err, "NewIdentity(%d)", n)

	return I
}

// RequireClose asserts that got matches the literal rows within tol.
func RequireClose(t *testing.T, want [][]float64, got *matrix.Dense, eps float64) {
	t.Helper()
	require.NotNil(t, got)
	require.True(t, matrix.AllClose(MustFromRows(t, want), got, eps), "want %v, got\n%s", want, got)
}

// RequireIdentityProduct asserts a·b ≈ I.
func RequireIdentityProduct(t *testing.T, a, b *matrix.Dense, eps float64) {
	t.Helper()
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, matrix.AllClose(MustIdentity(t, a.Rows()), p, eps), "A·A⁻¹ != I:\n%s", p)
}
