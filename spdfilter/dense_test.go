package spdfilter_test

import (
	"testing"

	"github.com/katalvlaran/lvlspd/grid"
	"github.com/katalvlaran/lvlspd/matrix"
	"github.com/katalvlaran/lvlspd/spdfilter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatrix_Dimensions: the projection is (N1·N2·N3)².
func TestMatrix_Dimensions(t *testing.T) {
	c, err := spdfilter.ConstantCoeffs(grid.MustShape(3, 2, 2), 19, -1)
	require.NoError(t, err)
	f, err := spdfilter.New(c)
	require.NoError(t, err)

	m, err := f.Matrix()
	require.NoError(t, err)
	assert.Equal(t, 12, m.Rows())
	assert.Equal(t, 12, m.Cols())
}

// TestMatrix_BitwiseSymmetric: mirrored placement of the same stored value
// makes the projection exactly symmetric, not merely within tolerance.
func TestMatrix_BitwiseSymmetric(t *testing.T) {
	shape := grid.MustShape(4, 3, 2)
	c, err := spdfilter.RandomSPDCoeffs(shape, 67, 0.5)
	require.NoError(t, err)
	f, err := spdfilter.New(c)
	require.NoError(t, err)

	m, err := f.Matrix()
	require.NoError(t, err)
	ok, err := matrix.IsSymmetric(m)
	require.NoError(t, err)
	assert.True(t, ok, "projection must be bitwise symmetric")
}

// TestMatrix_EncodesStencil spot-checks coefficient placement: diagonal,
// an axial neighbor, and a zero at a non-stencil position.
func TestMatrix_EncodesStencil(t *testing.T) {
	shape := grid.MustShape(3, 3, 3)
	c, err := spdfilter.RandomSPDCoeffs(shape, 71, 1.0)
	require.NoError(t, err)
	f, err := spdfilter.New(c)
	require.NoError(t, err)

	m, err := f.Matrix()
	require.NoError(t, err)

	p := shape.Index(1, 1, 1)
	v, err := m.At(p, p)
	require.NoError(t, err)
	assert.Equal(t, c.S000.Data[p], v, "diagonal carries s000")

	q := shape.Index(2, 1, 1) // neighbor at (d3,d2,d1)=(0,0,+1)
	v, err = m.At(p, q)
	require.NoError(t, err)
	assert.Equal(t, c.S00P.Data[p], v, "axial neighbor carries s00p")

	// (d3,d2,d1)=(+1,+1,+1) is outside the 19-point pattern.
	r := shape.Index(2, 2, 2)
	v, err = m.At(p, r)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "corner offsets are not part of the stencil")
}
