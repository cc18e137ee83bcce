// Package spdfilter: dense projection of the stencil operator.
package spdfilter

import "github.com/katalvlaran/lvlspd/matrix"

// Matrix materializes the full n×n operator, n = N1·N2·N3, as a dense
// matrix: each stored coefficient s_d[p] lands at (i, i+Δ) and, mirrored,
// at (i+Δ, i), so the result is exactly (bitwise) symmetric. Out-of-grid
// offsets are skipped.
//
// Intended for small grids only — visualization and correctness tests;
// the memory cost is O(n²).
//
// Complexity: O(n²) memory, O(n) fill time.
func (f *Filter) Matrix() (*matrix.Dense, error) {
	n := f.shape.Size()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	offDiags := f.coeffs.offDiagonals()

	var i1, i2, i3, i, j, k int
	var v float64
	for i3 = 0; i3 < f.shape.N3; i3++ {
		for i2 = 0; i2 < f.shape.N2; i2++ {
			for i1 = 0; i1 < f.shape.N1; i1++ {
				i = f.shape.Index(i1, i2, i3)
				_ = m.Set(i, i, f.coeffs.S000.Data[i])
				for k = 0; k < numOffDiagonals; k++ {
					d := offDiagOffsets[k]
					if !f.shape.InBounds(i1+d.D1, i2+d.D2, i3+d.D3) {
						continue
					}
					j = f.shape.Index(i1+d.D1, i2+d.D2, i3+d.D3)
					v = offDiags[k].Data[i]
					_ = m.Set(i, j, v)
					_ = m.Set(j, i, v)
				}
			}
		}
	}

	return m, nil
}
