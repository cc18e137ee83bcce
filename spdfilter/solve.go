// Package spdfilter: the triangular solves over the cached IC(0) factor.
//
// Both operations traverse the factor with exactly the stencil's sparsity
// pattern. ApplyApproximateInverse solves (L·D·Lᵀ)·x = b — the filter's
// approximate inverse; ApplyApproximate computes y = L·D·Lᵀ·x so callers
// can verify how tightly the factor reconstructs the operator.
package spdfilter

import "github.com/katalvlaran/lvlspd/grid"

// ApplyApproximateInverse solves (L·D·Lᵀ)·x = b, the approximate inverse
// of the filter. b and x must be distinct fields of the filter's shape;
// b is not modified, x is fully overwritten (it is zeroed first).
// Triggers the factorization on first use; returns ErrFactorization when
// no bias in the retry range succeeds.
//
// Step 1 is a forward substitution L·z = b in ascending lexicographic
// order: L carries a unit diagonal implicitly, so each point p first fixes
// z[p] by adding b[p], then scatters −l_d[p]·z[p] into its nine forward
// neighbors. Step 2 combines D·y = z with the back-substitution Lᵀ·x = y
// in descending order: x[p] ← d000[p]·x[p] − Σ_d l_d[p]·x[p+d].
//
// Complexity: O(n) time, no allocations in steady state.
func (f *Filter) ApplyApproximateInverse(b, x *grid.Field) error {
	if err := f.checkPair(b, x); err != nil {
		return err
	}
	fac, err := f.ensureFactors()
	if err != nil {
		return err
	}

	n1, n2, n3 := f.shape.N1, f.shape.N2, f.shape.N3
	s2, s3 := n1, n1*n2
	d00p, d0pm, d0p0, d0pp := 1, s2-1, s2, s2+1
	dpm0, dp0m, dp00, dp0p, dpp0 := s3-s2, s3-1, s3, s3+1, s3+s2

	fd, f00p, f0pm, f0p0, f0pp := fac.D000.Data, fac.L00P.Data, fac.L0PM.Data, fac.L0P0.Data, fac.L0PP.Data
	fpm0, fp0m, fp00, fp0p, fpp0 := fac.LPM0.Data, fac.LP0M.Data, fac.LP00.Data, fac.LP0P.Data, fac.LPP0.Data
	bd, xd := b.Data, x.Data

	x.Zero()

	// Step 1: forward substitution L·z = b, ascending order, unit
	// diagonal implicit, column-oriented scatter into forward neighbors.
	var i, i1, i2, i3 int
	var xi, sum float64
	for i3 = 0; i3 < n3; i3++ {
		for i2 = 0; i2 < n2; i2++ {
			rowFast := i2 > 0 && i2 < n2-1 && i3 < n3-1
			i = s2*i2 + s3*i3
			for i1 = 0; i1 < n1; i1, i = i1+1, i+1 {
				xi = xd[i] + bd[i]
				xd[i] = xi
				if rowFast && i1 > 0 && i1 < n1-1 {
					// Interior: all nine forward neighbors in bounds.
					xd[i+d00p] -= f00p[i] * xi
					xd[i+d0pm] -= f0pm[i] * xi
					xd[i+d0p0] -= f0p0[i] * xi
					xd[i+d0pp] -= f0pp[i] * xi
					xd[i+dpm0] -= fpm0[i] * xi
					xd[i+dp0m] -= fp0m[i] * xi
					xd[i+dp00] -= fp00[i] * xi
					xd[i+dp0p] -= fp0p[i] * xi
					xd[i+dpp0] -= fpp0[i] * xi

					continue
				}

				// Boundary: scatter only to in-grid neighbors.
				if i1 < n1-1 {
					xd[i+d00p] -= f00p[i] * xi
				}
				if i2 < n2-1 {
					if i1 > 0 {
						xd[i+d0pm] -= f0pm[i] * xi
					}
					xd[i+d0p0] -= f0p0[i] * xi
					if i1 < n1-1 {
						xd[i+d0pp] -= f0pp[i] * xi
					}
				}
				if i3 < n3-1 {
					if i2 > 0 {
						xd[i+dpm0] -= fpm0[i] * xi
					}
					if i1 > 0 {
						xd[i+dp0m] -= fp0m[i] * xi
					}
					xd[i+dp00] -= fp00[i] * xi
					if i1 < n1-1 {
						xd[i+dp0p] -= fp0p[i] * xi
					}
					if i2 < n2-1 {
						xd[i+dpp0] -= fpp0[i] * xi
					}
				}
			}
		}
	}

	// Step 2: D·y = z and Lᵀ·x = y combined, descending order; each point
	// gathers from its nine forward neighbors, already final.
	for i3 = n3 - 1; i3 >= 0; i3-- {
		for i2 = n2 - 1; i2 >= 0; i2-- {
			rowFast := i2 > 0 && i2 < n2-1 && i3 < n3-1
			i = (n1 - 1) + s2*i2 + s3*i3
			for i1 = n1 - 1; i1 >= 0; i1, i = i1-1, i-1 {
				if rowFast && i1 > 0 && i1 < n1-1 {
					sum = f00p[i] * xd[i+d00p]
					sum += f0pm[i] * xd[i+d0pm]
					sum += f0p0[i] * xd[i+d0p0]
					sum += f0pp[i] * xd[i+d0pp]
					sum += fpm0[i] * xd[i+dpm0]
					sum += fp0m[i] * xd[i+dp0m]
					sum += fp00[i] * xd[i+dp00]
					sum += fp0p[i] * xd[i+dp0p]
					sum += fpp0[i] * xd[i+dpp0]
					xd[i] = fd[i]*xd[i] - sum

					continue
				}

				sum = 0
				if i1 < n1-1 {
					sum = f00p[i] * xd[i+d00p]
				}
				if i2 < n2-1 {
					if i1 > 0 {
						sum += f0pm[i] * xd[i+d0pm]
					}
					sum += f0p0[i] * xd[i+d0p0]
					if i1 < n1-1 {
						sum += f0pp[i] * xd[i+d0pp]
					}
				}
				if i3 < n3-1 {
					if i2 > 0 {
						sum += fpm0[i] * xd[i+dpm0]
					}
					if i1 > 0 {
						sum += fp0m[i] * xd[i+dp0m]
					}
					sum += fp00[i] * xd[i+dp00]
					if i1 < n1-1 {
						sum += fp0p[i] * xd[i+dp0p]
					}
					if i2 < n2-1 {
						sum += fpp0[i] * xd[i+dpp0]
					}
				}
				xd[i] = fd[i]*xd[i] - sum
			}
		}
	}

	return nil
}

// ApplyApproximate computes y = L·D·Lᵀ·x from the cached factor, the
// verification counterpart of ApplyApproximateInverse: composing the two,
// in either order, reproduces the identity up to rounding. x and y must be
// distinct fields of the filter's shape; x is not modified. Triggers the
// factorization on first use.
//
// Pass 1 gathers y ← Lᵀ·x in descending order. Pass 2 applies y ← L·D·y,
// also descending: dividing y[p] by the stored inverse diagonal d000[p]
// multiplies by D[p]; the subsequent scatter of +l_d[p]·y[p] into the nine
// forward neighbors adds the strictly-lower contributions of L.
//
// Complexity: O(n) time, no allocations.
func (f *Filter) ApplyApproximate(x, y *grid.Field) error {
	if err := f.checkPair(x, y); err != nil {
		return err
	}
	fac, err := f.ensureFactors()
	if err != nil {
		return err
	}

	n1, n2, n3 := f.shape.N1, f.shape.N2, f.shape.N3
	s2, s3 := n1, n1*n2
	d00p, d0pm, d0p0, d0pp := 1, s2-1, s2, s2+1
	dpm0, dp0m, dp00, dp0p, dpp0 := s3-s2, s3-1, s3, s3+1, s3+s2

	fd, f00p, f0pm, f0p0, f0pp := fac.D000.Data, fac.L00P.Data, fac.L0PM.Data, fac.L0P0.Data, fac.L0PP.Data
	fpm0, fp0m, fp00, fp0p, fpp0 := fac.LPM0.Data, fac.LP0M.Data, fac.LP00.Data, fac.LP0P.Data, fac.LPP0.Data
	xd, yd := x.Data, y.Data

	// Pass 1: y ← Lᵀ·x, descending order, gathering from forward
	// neighbors of the unmodified input.
	var i, i1, i2, i3 int
	var yi float64
	for i3 = n3 - 1; i3 >= 0; i3-- {
		for i2 = n2 - 1; i2 >= 0; i2-- {
			rowFast := i2 > 0 && i2 < n2-1 && i3 < n3-1
			i = (n1 - 1) + s2*i2 + s3*i3
			for i1 = n1 - 1; i1 >= 0; i1, i = i1-1, i-1 {
				yi = xd[i]
				if rowFast && i1 > 0 && i1 < n1-1 {
					yi += f00p[i] * xd[i+d00p]
					yi += f0pm[i] * xd[i+d0pm]
					yi += f0p0[i] * xd[i+d0p0]
					yi += f0pp[i] * xd[i+d0pp]
					yi += fpm0[i] * xd[i+dpm0]
					yi += fp0m[i] * xd[i+dp0m]
					yi += fp00[i] * xd[i+dp00]
					yi += fp0p[i] * xd[i+dp0p]
					yi += fpp0[i] * xd[i+dpp0]
					yd[i] = yi

					continue
				}

				if i1 < n1-1 {
					yi += f00p[i] * xd[i+d00p]
				}
				if i2 < n2-1 {
					if i1 > 0 {
						yi += f0pm[i] * xd[i+d0pm]
					}
					yi += f0p0[i] * xd[i+d0p0]
					if i1 < n1-1 {
						yi += f0pp[i] * xd[i+d0pp]
					}
				}
				if i3 < n3-1 {
					if i2 > 0 {
						yi += fpm0[i] * xd[i+dpm0]
					}
					if i1 > 0 {
						yi += fp0m[i] * xd[i+dp0m]
					}
					yi += fp00[i] * xd[i+dp00]
					if i1 < n1-1 {
						yi += fp0p[i] * xd[i+dp0p]
					}
					if i2 < n2-1 {
						yi += fpp0[i] * xd[i+dpp0]
					}
				}
				yd[i] = yi
			}
		}
	}

	// Pass 2: y ← L·D·y, descending order. Scatter targets are
	// lexicographically greater, hence already divided; the added terms
	// are exactly L's strictly-lower contributions.
	for i3 = n3 - 1; i3 >= 0; i3-- {
		for i2 = n2 - 1; i2 >= 0; i2-- {
			rowFast := i2 > 0 && i2 < n2-1 && i3 < n3-1
			i = (n1 - 1) + s2*i2 + s3*i3
			for i1 = n1 - 1; i1 >= 0; i1, i = i1-1, i-1 {
				yi = yd[i] / fd[i]
				yd[i] = yi
				if rowFast && i1 > 0 && i1 < n1-1 {
					yd[i+d00p] += f00p[i] * yi
					yd[i+d0pm] += f0pm[i] * yi
					yd[i+d0p0] += f0p0[i] * yi
					yd[i+d0pp] += f0pp[i] * yi
					yd[i+dpm0] += fpm0[i] * yi
					yd[i+dp0m] += fp0m[i] * yi
					yd[i+dp00] += fp00[i] * yi
					yd[i+dp0p] += fp0p[i] * yi
					yd[i+dpp0] += fpp0[i] * yi

					continue
				}

				if i1 < n1-1 {
					yd[i+d00p] += f00p[i] * yi
				}
				if i2 < n2-1 {
					if i1 > 0 {
						yd[i+d0pm] += f0pm[i] * yi
					}
					yd[i+d0p0] += f0p0[i] * yi
					if i1 < n1-1 {
						yd[i+d0pp] += f0pp[i] * yi
					}
				}
				if i3 < n3-1 {
					if i2 > 0 {
						yd[i+dpm0] += fpm0[i] * yi
					}
					if i1 > 0 {
						yd[i+dp0m] += fp0m[i] * yi
					}
					yd[i+dp00] += fp00[i] * yi
					if i1 < n1-1 {
						yd[i+dp0p] += fp0p[i] * yi
					}
					if i2 < n2-1 {
						yd[i+dpp0] += fpp0[i] * yi
					}
				}
			}
		}
	}

	return nil
}
