package spdfilter_test

import (
	"testing"

	"github.com/katalvlaran/lvlspd/grid"
	"github.com/katalvlaran/lvlspd/spdfilter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_SinglePoint: on a 1×1×1 grid the factored operator is the
// scalar itself, so the inverse is exact division.
func TestSolve_SinglePoint(t *testing.T) {
	c, err := spdfilter.ConstantCoeffs(grid.MustShape(1, 1, 1), 4, 0)
	require.NoError(t, err)
	f, err := spdfilter.New(c)
	require.NoError(t, err)

	b := grid.NewField(f.Shape())
	x := grid.NewField(f.Shape())
	b.Data[0] = 10

	require.NoError(t, f.ApplyApproximateInverse(b, x))
	assert.Equal(t, 2.5, x.Data[0], "division by a power of two is exact")

	y := grid.NewField(f.Shape())
	require.NoError(t, f.ApplyApproximate(x, y))
	assert.Equal(t, 10.0, y.Data[0])
}

// TestSolve_TridiagonalExact: IC(0) is a complete factorization on a
// tridiagonal system, so the approximate inverse is the true inverse up
// to rounding: A·(M⁻¹·b) must reproduce b.
func TestSolve_TridiagonalExact(t *testing.T) {
	c, err := spdfilter.TridiagonalCoeffs(8, 4, -1)
	require.NoError(t, err)
	f, err := spdfilter.New(c)
	require.NoError(t, err)

	b := grid.Random(f.Shape(), 17)
	x := grid.NewField(f.Shape())
	require.NoError(t, f.ApplyApproximateInverse(b, x))

	back := grid.NewField(f.Shape())
	require.NoError(t, f.Apply(x, back))
	assertClose(t, b.Data, back.Data, 1e-12, "tridiagonal inverse is exact")
}

// TestSolve_RoundTripInverseThenForward pins the left-inverse law on the
// factored operator: L·D·Lᵀ applied to (L·D·Lᵀ)⁻¹·b reproduces b.
func TestSolve_RoundTripInverseThenForward(t *testing.T) {
	shape := grid.MustShape(5, 4, 3)
	c, err := spdfilter.RandomSPDCoeffs(shape, 29, 0.5)
	require.NoError(t, err)
	f, err := spdfilter.New(c)
	require.NoError(t, err)

	b := grid.Random(shape, 31)
	x := grid.NewField(shape)
	y := grid.NewField(shape)
	require.NoError(t, f.ApplyApproximateInverse(b, x))
	require.NoError(t, f.ApplyApproximate(x, y))

	assertClose(t, b.Data, y.Data, 1e-10, "M·M⁻¹·b must equal b")
}

// TestSolve_RoundTripForwardThenInverse pins the right-inverse law:
// (L·D·Lᵀ)⁻¹ applied to L·D·Lᵀ·x reproduces x.
func TestSolve_RoundTripForwardThenInverse(t *testing.T) {
	shape := grid.MustShape(4, 5, 3)
	c, err := spdfilter.RandomSPDCoeffs(shape, 37, 0.5)
	require.NoError(t, err)
	f, err := spdfilter.New(c)
	require.NoError(t, err)

	x := grid.Random(shape, 41)
	y := grid.NewField(shape)
	back := grid.NewField(shape)
	require.NoError(t, f.ApplyApproximate(x, y))
	require.NoError(t, f.ApplyApproximateInverse(y, back))

	assertClose(t, x.Data, back.Data, 1e-10, "M⁻¹·M·x must equal x")
}

// TestSolve_RoundTripBoundaryShapes repeats the inverse laws on grids
// where every point takes the boundary path.
func TestSolve_RoundTripBoundaryShapes(t *testing.T) {
	shapes := []grid.Shape{
		grid.MustShape(8, 1, 1),
		grid.MustShape(1, 8, 1),
		grid.MustShape(1, 1, 8),
		grid.MustShape(2, 2, 2),
		grid.MustShape(1, 4, 5),
	}

	for _, shape := range shapes {
		c, err := spdfilter.RandomSPDCoeffs(shape, 43, 0.5)
		require.NoError(t, err)
		f, err := spdfilter.New(c)
		require.NoError(t, err)

		b := grid.Random(shape, 47)
		x := grid.NewField(shape)
		y := grid.NewField(shape)
		require.NoError(t, f.ApplyApproximateInverse(b, x))
		require.NoError(t, f.ApplyApproximate(x, y))

		assertClose(t, b.Data, y.Data, 1e-10, shape.String())
	}
}

// TestSolve_PreconditionerQuality: for a strongly diagonally dominant
// operator the factored product stays close to the true operator, so
// applying A and then the approximate inverse lands near the original
// field. The bound is loose — IC(0) is an approximation, not a solve.
func TestSolve_PreconditionerQuality(t *testing.T) {
	shape := grid.MustShape(5, 4, 3)
	c, err := spdfilter.ConstantCoeffs(shape, 40, -1)
	require.NoError(t, err)
	f, err := spdfilter.New(c)
	require.NoError(t, err)

	x := grid.Random(shape, 53)
	ax := grid.NewField(shape)
	back := grid.NewField(shape)
	require.NoError(t, f.Apply(x, ax))
	require.NoError(t, f.ApplyApproximateInverse(ax, back))

	require.NoError(t, back.Sub(x))
	assert.Less(t, back.MaxAbs(), 5e-2*x.MaxAbs(),
		"M⁻¹·A·x must stay near x for a dominant operator")
}

// TestSolve_ApproximateMatchesApplyWhenDominant: the factored operator
// L·D·Lᵀ tracks A itself, with a residual that shrinks as dominance
// grows.
func TestSolve_ApproximateMatchesApplyWhenDominant(t *testing.T) {
	shape := grid.MustShape(5, 4, 3)
	c, err := spdfilter.ConstantCoeffs(shape, 40, -1)
	require.NoError(t, err)
	f, err := spdfilter.New(c)
	require.NoError(t, err)

	x := grid.Random(shape, 59)
	exact := grid.NewField(shape)
	approx := grid.NewField(shape)
	require.NoError(t, f.Apply(x, exact))
	require.NoError(t, f.ApplyApproximate(x, approx))

	require.NoError(t, approx.Sub(exact))
	assert.Less(t, approx.MaxAbs(), 5e-2*exact.MaxAbs(),
		"L·D·Lᵀ·x must stay near A·x for a dominant operator")
}

// TestSolve_ArgValidationAndNonMutation: the solver validates like Apply,
// zero-initializes its output, and leaves the right-hand side alone.
func TestSolve_ArgValidationAndNonMutation(t *testing.T) {
	shape := grid.MustShape(3, 3, 2)
	c, err := spdfilter.ConstantCoeffs(shape, 19, -1)
	require.NoError(t, err)
	f, err := spdfilter.New(c)
	require.NoError(t, err)

	b := grid.Random(shape, 61)
	x := grid.NewField(shape)

	assert.ErrorIs(t, f.ApplyApproximateInverse(nil, x), spdfilter.ErrNilField)
	assert.ErrorIs(t, f.ApplyApproximateInverse(b, b), spdfilter.ErrAliasedBuffers)
	assert.ErrorIs(t, f.ApplyApproximate(b, b), spdfilter.ErrAliasedBuffers)

	// A dirty output buffer must not leak into the result.
	bBefore := b.Clone()
	x.Fill(123)
	require.NoError(t, f.ApplyApproximateInverse(b, x))
	dirty := x.Clone()
	x.Fill(-7)
	require.NoError(t, f.ApplyApproximateInverse(b, x))

	assert.Equal(t, dirty.Data, x.Data, "result must not depend on prior output contents")
	assert.Equal(t, bBefore.Data, b.Data, "right-hand side must not be modified")
}
