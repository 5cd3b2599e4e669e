package core_test

import (
	"testing"

	"github.com/katalvlaran/unibic/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateMatrix_Shapes covers the accept and reject branches of
// the numeric validator.
func TestValidateMatrix_Shapes(t *testing.T) {
	r, c, err := core.ValidateMatrix([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)

	_, _, err = core.ValidateMatrix(nil)
	assert.ErrorIs(t, err, core.ErrEmptyInput, "nil matrix")

	_, _, err = core.ValidateMatrix([][]float64{{}})
	assert.ErrorIs(t, err, core.ErrEmptyInput, "zero columns")

	_, _, err = core.ValidateMatrix([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, core.ErrDimensionMismatch, "ragged rows")
}

// TestValidateIntMatrix_Shapes mirrors the numeric cases for the
// integer validator.
func TestValidateIntMatrix_Shapes(t *testing.T) {
	r, c, err := core.ValidateIntMatrix([][]int{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)

	_, _, err = core.ValidateIntMatrix([][]int{})
	assert.ErrorIs(t, err, core.ErrEmptyInput)

	_, _, err = core.ValidateIntMatrix([][]int{{1}, {2, 3}})
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
}
