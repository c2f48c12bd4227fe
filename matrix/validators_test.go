// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/coordkit/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	sq := matrix.NewMat2(1, 2, 3, 4)
	rect := MustFromRows(t, [][]float64{{1, 2, 3}})

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateMulCompatible(sq, rect), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateMulCompatible(rect, MustFromRows(t, [][]float64{{1}, {2}, {3}})))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateFinite([]float64{1, math.NaN()}), matrix.ErrNaNInf)
}
