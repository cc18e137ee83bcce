// Package spdfilter: narrow white-box surface for tests. Compiled only
// into the test binary.
package spdfilter

import "github.com/katalvlaran/lvlspd/grid"

// FactorArraysForTest forces factorization and returns the inverse
// diagonal plus the nine off-diagonal factor arrays in canonical offset
// order.
func (f *Filter) FactorArraysForTest() (*grid.Field, [numOffDiagonals]*grid.Field, error) {
	fac, err := f.ensureFactors()
	if err != nil {
		return nil, [numOffDiagonals]*grid.Field{}, err
	}

	return fac.D000, fac.offDiagonals(), nil
}

// OffDiagOffsetsForTest returns the canonical stencil offsets as
// (d3, d2, d1) triples, aligned with FactorArraysForTest.
func OffDiagOffsetsForTest() [numOffDiagonals][3]int {
	var out [numOffDiagonals][3]int
	for k, d := range offDiagOffsets {
		out[k] = [3]int{d.D3, d.D2, d.D1}
	}

	return out
}
