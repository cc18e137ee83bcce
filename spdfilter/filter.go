// Package spdfilter: Filter construction and the forward 19-point
// application y = A·x.
package spdfilter

import (
	"math"
	"sync"

	"github.com/katalvlaran/lvlspd/grid"
)

// Filter is a locally varying SPD stencil operator with a lazily built
// IC(0) approximate inverse. Build one with New; the zero value is not
// usable.
//
// The coefficient arrays are referenced, not copied, and are never
// mutated. Factor arrays are built on the first call that needs them and
// cached for the filter's lifetime; a failed factorization leaves the
// cache unset so a later call can retry after the caller adjusts inputs.
type Filter struct {
	coeffs *Coeffs
	shape  grid.Shape
	bias   float64
	trace  TraceFunc

	mu  sync.Mutex
	fac *factors
}

// New constructs a Filter over the given coefficient set.
//
// Contract:
//   - coeffs and all ten arrays must be non-nil and share one shape
//     (ErrNilCoeffs / ErrShapeMismatch);
//   - the bias from WithBias must be non-negative and finite
//     (ErrNegativeBias);
//   - the caller warrants that the encoded operator is symmetric and, for
//     an exact factorization, positive-definite. Neither property is
//     checked here; a violated warranty surfaces later as a factorization
//     failure or as meaningless results.
//
// Complexity: O(1) beyond validation; no arrays are copied.
func New(coeffs *Coeffs, opts ...Option) (*Filter, error) {
	if err := coeffs.validate(); err != nil {
		return nil, err
	}

	o := gatherOptions(opts...)
	if o.bias < 0 || math.IsNaN(o.bias) || math.IsInf(o.bias, 0) {
		return nil, ErrNegativeBias
	}

	return &Filter{
		coeffs: coeffs,
		shape:  coeffs.Shape(),
		bias:   o.bias,
		trace:  o.trace,
	}, nil
}

// Shape returns the filter's grid shape.
func (f *Filter) Shape() grid.Shape { return f.shape }

// Bias returns the initial diagonal bias configured at construction.
func (f *Filter) Bias() float64 { return f.bias }

// checkPair validates an (input, output) field pair against the filter:
// both non-nil, both matching the filter's shape, and not sharing backing
// storage. Argument errors surface before any state changes.
func (f *Filter) checkPair(in, out *grid.Field) error {
	if in == nil || out == nil {
		return ErrNilField
	}
	if !in.Shape.Equal(f.shape) || !out.Shape.Equal(f.shape) {
		return ErrShapeMismatch
	}
	if in.Aliases(out) {
		return ErrAliasedBuffers
	}

	return nil
}

// Apply computes y = A·x, where A is the 19-point operator encoded by the
// coefficient set. x and y must be distinct fields of the filter's shape;
// x is not modified.
//
// The sweep runs in reverse lexicographic (i3, i2, i1) order so that each
// point's scatter targets (which are lexicographically greater) were
// already initialized by earlier iterations: y[p] is assigned exactly
// once, then accumulates the symmetric contributions of later-visited
// points. Each stored coefficient is fetched once and applied both ways.
//
// Complexity: O(n) time, no allocations.
func (f *Filter) Apply(x, y *grid.Field) error {
	if err := f.checkPair(x, y); err != nil {
		return err
	}
	applyForward(f.coeffs, x, y)

	return nil
}

// applyForward is the forward stencil kernel shared by Apply.
//
// Two paths cover each point: an interior fast path with no bounds tests
// (taken when all nine forward neighbors are in grid) and a general path
// that tests bounds per offset. Both evaluate the identical sequence of
// multiply-adds, so overlapping points produce bit-identical results.
func applyForward(c *Coeffs, x, y *grid.Field) {
	n1, n2, n3 := c.S000.Shape.N1, c.S000.Shape.N2, c.S000.Shape.N3
	s2, s3 := n1, n1*n2

	// Linear-address deltas of the nine stored off-diagonal offsets.
	d00p, d0pm, d0p0, d0pp := 1, s2-1, s2, s2+1
	dpm0, dp0m, dp00, dp0p, dpp0 := s3-s2, s3-1, s3, s3+1, s3+s2

	a000, a00p, a0pm, a0p0, a0pp := c.S000.Data, c.S00P.Data, c.S0PM.Data, c.S0P0.Data, c.S0PP.Data
	apm0, ap0m, ap00, ap0p, app0 := c.SPM0.Data, c.SP0M.Data, c.SP00.Data, c.SP0P.Data, c.SPP0.Data
	xd, yd := x.Data, y.Data

	var i, i1, i2, i3 int
	var xi, yi, t float64
	for i3 = n3 - 1; i3 >= 0; i3-- {
		for i2 = n2 - 1; i2 >= 0; i2-- {
			// All i1-independent bounds for this row.
			rowFast := i2 > 0 && i2 < n2-1 && i3 < n3-1
			i = (n1 - 1) + s2*i2 + s3*i3
			for i1 = n1 - 1; i1 >= 0; i1, i = i1-1, i-1 {
				xi = xd[i]
				if rowFast && i1 > 0 && i1 < n1-1 {
					// Interior: all nine forward neighbors in bounds.
					yi = a000[i] * xi
					t = a00p[i]
					yi += t * xd[i+d00p]
					yd[i+d00p] += t * xi
					t = a0pm[i]
					yi += t * xd[i+d0pm]
					yd[i+d0pm] += t * xi
					t = a0p0[i]
					yi += t * xd[i+d0p0]
					yd[i+d0p0] += t * xi
					t = a0pp[i]
					yi += t * xd[i+d0pp]
					yd[i+d0pp] += t * xi
					t = apm0[i]
					yi += t * xd[i+dpm0]
					yd[i+dpm0] += t * xi
					t = ap0m[i]
					yi += t * xd[i+dp0m]
					yd[i+dp0m] += t * xi
					t = ap00[i]
					yi += t * xd[i+dp00]
					yd[i+dp00] += t * xi
					t = ap0p[i]
					yi += t * xd[i+dp0p]
					yd[i+dp0p] += t * xi
					t = app0[i]
					yi += t * xd[i+dpp0]
					yd[i+dpp0] += t * xi
					yd[i] = yi

					continue
				}

				// Boundary: test bounds per offset; out-of-grid terms are zero.
				yi = a000[i] * xi
				if i1 < n1-1 {
					t = a00p[i]
					yi += t * xd[i+d00p]
					yd[i+d00p] += t * xi
				}
				if i2 < n2-1 {
					if i1 > 0 {
						t = a0pm[i]
						yi += t * xd[i+d0pm]
						yd[i+d0pm] += t * xi
					}
					t = a0p0[i]
					yi += t * xd[i+d0p0]
					yd[i+d0p0] += t * xi
					if i1 < n1-1 {
						t = a0pp[i]
						yi += t * xd[i+d0pp]
						yd[i+d0pp] += t * xi
					}
				}
				if i3 < n3-1 {
					if i2 > 0 {
						t = apm0[i]
						yi += t * xd[i+dpm0]
						yd[i+dpm0] += t * xi
					}
					if i1 > 0 {
						t = ap0m[i]
						yi += t * xd[i+dp0m]
						yd[i+dp0m] += t * xi
					}
					t = ap00[i]
					yi += t * xd[i+dp00]
					yd[i+dp00] += t * xi
					if i1 < n1-1 {
						t = ap0p[i]
						yi += t * xd[i+dp0p]
						yd[i+dp0p] += t * xi
					}
					if i2 < n2-1 {
						t = app0[i]
						yi += t * xd[i+dpp0]
						yd[i+dpp0] += t * xi
					}
				}
				yd[i] = yi
			}
		}
	}
}
