// Package spdfilter: shared types, the stencil legend, and bias constants.
//
// Offset names encode a (axis3, axis2, axis1) displacement with m=-1, 0=0,
// p=+1: S0PM holds the coefficient coupling a point to its neighbor at
// (d3=0, d2=+1, d1=-1). The ten stored offsets are exactly those with
// lexicographic (d3, d2, d1) ≥ (0, 0, 0) — the stencil's upper half; the
// other nine entries of the 19-point stencil follow from SPD symmetry:
//
//	A(p, p+d) = s_d[p]       for stored d
//	A(p, p-d) = s_d[p-d]     for the mirrored half
//
// Out-of-grid neighbors contribute zero.
package spdfilter

import "github.com/katalvlaran/lvlspd/grid"

// Bias retry constants for the adaptive factorization loop.
const (
	// BiasFloor is the smallest nonzero bias attempted after an unbiased
	// attempt fails (the doubling sequence starts here when the stored
	// bias is zero).
	BiasFloor = 0.001

	// BiasLimit caps the retry range: once the doubled bias reaches this
	// value the factorization is abandoned and ErrFactorization surfaces.
	BiasLimit = 1000.0
)

// numOffDiagonals is the count of stored strictly-upper stencil offsets.
const numOffDiagonals = 9

// offset is a stencil displacement in (d3, d2, d1) axis order.
type offset struct {
	D3, D2, D1 int
}

// offDiagOffsets lists the nine stored off-diagonal offsets in canonical
// order. Every [9]*grid.Field returned by Coeffs.offDiagonals and
// factors.offDiagonals is aligned with this table.
var offDiagOffsets = [numOffDiagonals]offset{
	{0, 0, 1},  // 00P
	{0, 1, -1}, // 0PM
	{0, 1, 0},  // 0P0
	{0, 1, 1},  // 0PP
	{1, -1, 0}, // PM0
	{1, 0, -1}, // P0M
	{1, 0, 0},  // P00
	{1, 0, 1},  // P0P
	{1, 1, 0},  // PP0
}

// Coeffs holds the ten coefficient arrays of a 19-point SPD stencil
// operator, reduced by symmetry to the stored upper half. All ten fields
// must be non-nil and share one shape.
//
// A Filter holds a reference to (not a copy of) these arrays and treats
// them as read-only; callers must not mutate them while the filter is in
// use.
type Coeffs struct {
	S000 *grid.Field // center (0, 0, 0)
	S00P *grid.Field // (0, 0, +1)
	S0PM *grid.Field // (0, +1, -1)
	S0P0 *grid.Field // (0, +1, 0)
	S0PP *grid.Field // (0, +1, +1)
	SPM0 *grid.Field // (+1, -1, 0)
	SP0M *grid.Field // (+1, 0, -1)
	SP00 *grid.Field // (+1, 0, 0)
	SP0P *grid.Field // (+1, 0, +1)
	SPP0 *grid.Field // (+1, +1, 0)
}

// NewCoeffs allocates a zeroed coefficient set over shape.
// Complexity: O(10·n) memory for n = shape.Size().
func NewCoeffs(shape grid.Shape) *Coeffs {
	return &Coeffs{
		S000: grid.NewField(shape),
		S00P: grid.NewField(shape),
		S0PM: grid.NewField(shape),
		S0P0: grid.NewField(shape),
		S0PP: grid.NewField(shape),
		SPM0: grid.NewField(shape),
		SP0M: grid.NewField(shape),
		SP00: grid.NewField(shape),
		SP0P: grid.NewField(shape),
		SPP0: grid.NewField(shape),
	}
}

// Shape returns the grid shape shared by the ten arrays.
// Undefined before validate has accepted the set.
func (c *Coeffs) Shape() grid.Shape { return c.S000.Shape }

// fields returns all ten arrays, center first, in canonical order.
func (c *Coeffs) fields() [1 + numOffDiagonals]*grid.Field {
	return [1 + numOffDiagonals]*grid.Field{
		c.S000, c.S00P, c.S0PM, c.S0P0, c.S0PP,
		c.SPM0, c.SP0M, c.SP00, c.SP0P, c.SPP0,
	}
}

// offDiagonals returns the nine off-diagonal arrays aligned with
// offDiagOffsets.
func (c *Coeffs) offDiagonals() [numOffDiagonals]*grid.Field {
	return [numOffDiagonals]*grid.Field{
		c.S00P, c.S0PM, c.S0P0, c.S0PP,
		c.SPM0, c.SP0M, c.SP00, c.SP0P, c.SPP0,
	}
}

// validate checks that every array is present and that all ten agree on
// shape. Returns ErrNilCoeffs or ErrShapeMismatch.
func (c *Coeffs) validate() error {
	if c == nil {
		return ErrNilCoeffs
	}

	all := c.fields()
	for _, f := range all {
		if f == nil {
			return ErrNilCoeffs
		}
	}

	shape := c.S000.Shape
	for _, f := range all[1:] {
		if !f.Shape.Equal(shape) {
			return ErrShapeMismatch
		}
	}

	return nil
}

// factors holds the cached IC(0) product: D000 stores the INVERSE diagonal
// 1/D, and the nine off-diagonal arrays store the strictly-lower entries of
// the unit-lower-triangular L (L(p+d, p) = l_d[p]), on exactly the
// stencil's footprint. Once installed in a Filter the arrays are read-only.
type factors struct {
	D000 *grid.Field
	L00P *grid.Field
	L0PM *grid.Field
	L0P0 *grid.Field
	L0PP *grid.Field
	LPM0 *grid.Field
	LP0M *grid.Field
	LP00 *grid.Field
	LP0P *grid.Field
	LPP0 *grid.Field
}

// newFactors allocates zeroed factor arrays over shape.
func newFactors(shape grid.Shape) *factors {
	return &factors{
		D000: grid.NewField(shape),
		L00P: grid.NewField(shape),
		L0PM: grid.NewField(shape),
		L0P0: grid.NewField(shape),
		L0PP: grid.NewField(shape),
		LPM0: grid.NewField(shape),
		LP0M: grid.NewField(shape),
		LP00: grid.NewField(shape),
		LP0P: grid.NewField(shape),
		LPP0: grid.NewField(shape),
	}
}

// offDiagonals returns the nine off-diagonal arrays aligned with
// offDiagOffsets.
func (f *factors) offDiagonals() [numOffDiagonals]*grid.Field {
	return [numOffDiagonals]*grid.Field{
		f.L00P, f.L0PM, f.L0P0, f.L0PP,
		f.LPM0, f.LP0M, f.LP00, f.LP0P, f.LPP0,
	}
}
