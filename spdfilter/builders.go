// Package spdfilter: deterministic coefficient-set generators.
//
// These builders produce the canonical operator families used throughout
// the package's tests, examples and benchmarks. All generation is
// validated and reproducible: a given (arguments, seed) pair always
// yields the same coefficient set.
package spdfilter

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlspd/grid"
)

// ConstantCoeffs builds a spatially uniform stencil: s000 ≡ diag and all
// nine off-diagonals ≡ off at every point. With diag ≥ 18·|off| the
// operator is diagonally dominant (a Laplacian-like filter when off < 0).
// Returns grid.ErrBadShape for a non-positive shape.
//
// Complexity: O(10·n).
func ConstantCoeffs(shape grid.Shape, diag, off float64) (*Coeffs, error) {
	if _, err := grid.NewShape(shape.N1, shape.N2, shape.N3); err != nil {
		return nil, err
	}

	c := NewCoeffs(shape)
	c.S000.Fill(diag)
	for _, f := range c.offDiagonals() {
		f.Fill(off)
	}

	return c, nil
}

// TridiagonalCoeffs builds the degenerate 1-D operator on an n×1×1 grid:
// only s000 ≡ diag and s00p ≡ off are nonzero, so the filter reduces to a
// 3-point tridiagonal system — the case where IC(0) is a complete
// factorization and the approximate inverse is exact up to rounding.
// Returns grid.ErrBadShape for non-positive n.
//
// Complexity: O(n).
func TridiagonalCoeffs(n int, diag, off float64) (*Coeffs, error) {
	shape, err := grid.NewShape(n, 1, 1)
	if err != nil {
		return nil, err
	}

	c := NewCoeffs(shape)
	c.S000.Fill(diag)
	c.S00P.Fill(off)

	return c, nil
}

// RandomSPDCoeffs builds a locally varying SPD operator: the nine
// off-diagonal arrays are filled with seeded uniform values in [-0.5, 0.5),
// and the diagonal at each point is set to the exact absolute row sum of
// its in-grid neighbors plus margin. A symmetric matrix with positive
// diagonal that strictly dominates its rows is positive-definite, so any
// margin > 0 warrants SPD. Returns grid.ErrBadShape for a non-positive
// shape.
//
// Identical (shape, seed, margin) triples produce identical coefficient
// sets.
//
// Complexity: O(10·n) plus an O(19·n) dominance pass.
func RandomSPDCoeffs(shape grid.Shape, seed int64, margin float64) (*Coeffs, error) {
	if _, err := grid.NewShape(shape.N1, shape.N2, shape.N3); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	c := NewCoeffs(shape)
	for _, f := range c.offDiagonals() {
		for i := range f.Data {
			f.Data[i] = rng.Float64() - 0.5
		}
	}

	// Row p sums |s_d[p]| over the stored half and |s_d[p-d]| over the
	// mirrored half, skipping out-of-grid neighbors.
	offDiags := c.offDiagonals()
	var i1, i2, i3, i, k int
	var rowSum float64
	for i3 = 0; i3 < shape.N3; i3++ {
		for i2 = 0; i2 < shape.N2; i2++ {
			for i1 = 0; i1 < shape.N1; i1++ {
				i = shape.Index(i1, i2, i3)
				rowSum = 0
				for k = 0; k < numOffDiagonals; k++ {
					d := offDiagOffsets[k]
					if shape.InBounds(i1+d.D1, i2+d.D2, i3+d.D3) {
						rowSum += math.Abs(offDiags[k].Data[i])
					}
					if shape.InBounds(i1-d.D1, i2-d.D2, i3-d.D3) {
						rowSum += math.Abs(offDiags[k].Data[shape.Index(i1-d.D1, i2-d.D2, i3-d.D3)])
					}
				}
				c.S000.Data[i] = rowSum + margin
			}
		}
	}

	return c, nil
}
