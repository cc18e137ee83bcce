// Package spdfilter: lazy IC(0) factorization with adaptive diagonal
// biasing.
//
// The factorization computes L·D·Lᵀ ≈ A where L is unit-lower-triangular
// with exactly the stencil's strictly-lower footprint (no fill) and D is
// diagonal. Working arrays start as copies of the coefficient arrays with
// the diagonal perturbed to s000·(1+b); an ascending lexicographic sweep
// applies the Cholesky recurrence restricted to the stencil pattern:
//
//	l_d[p] ← l_d[p] − Σ_q d000[q] · L(p,q) · L(p+d,q),   q < p
//
// where the sum runs over the earlier points q for which both p−q and
// (p+d)−q are stored offsets. Intersecting the pattern with itself yields
// a closed term list per entry: nine squared terms for the diagonal and
// twenty cross terms spread over the nine off-diagonals (the PP0 entry
// receives none). A non-positive pivot aborts the attempt; the outer loop
// then doubles the bias and retries until BiasLimit.
package spdfilter

import (
	"fmt"
	"math"
)

// ensureFactors returns the cached factor arrays, building them on first
// demand. Idempotent; concurrent callers serialize on the filter's mutex,
// and a failed build leaves the cache unset so a later call retries
// cleanly.
//
// The adaptive outer loop starts at the stored bias b₀ and advances by
// b ← max(b_min, 2·b) — b_min being the stored bias when positive, else
// BiasFloor — attempting one factorization per bias until one succeeds or
// the bias reaches BiasLimit. One trace line is emitted per attempt.
func (f *Filter) ensureFactors() (*factors, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fac != nil {
		return f.fac, nil
	}

	bmin := BiasFloor
	if f.bias > 0 {
		bmin = f.bias
	}

	fac := newFactors(f.shape)
	for b := f.bias; b < BiasLimit; b = math.Max(bmin, 2*b) {
		if attemptIC0(f.coeffs, fac, b) {
			f.traceLine("ic0: success for bias=%g", b)
			f.fac = fac

			return fac, nil
		}
		f.traceLine("ic0: failed for bias=%g", b)
	}

	return nil, ErrFactorization
}

// traceLine formats and forwards one diagnostic line to the configured
// sink, if any.
func (f *Filter) traceLine(format string, args ...any) {
	if f.trace != nil {
		f.trace(fmt.Sprintf(format, args...))
	}
}

// attemptIC0 runs one in-place IC(0) attempt at the given bias, writing
// into fac's arrays. Reports whether every pivot stayed strictly positive.
// On success, fac.D000 holds the inverse diagonal 1/D and the nine
// off-diagonal arrays hold the normalized unit-triangular entries
// L(p+d, p). On failure fac's contents are unspecified; callers either
// retry (overwriting them) or discard fac.
//
// Boundary handling: predecessor terms whose referenced point lies outside
// the grid are omitted. An interior fast path (all nine predecessors in
// range) and a general bounds-tested path evaluate the identical sequence
// of multiply-adds, so overlapping points produce bit-identical results.
//
// Complexity: O(n) time per attempt, no allocations.
func attemptIC0(c *Coeffs, fac *factors, bias float64) bool {
	n1, n2, n3 := c.S000.Shape.N1, c.S000.Shape.N2, c.S000.Shape.N3
	s2, s3 := n1, n1*n2

	// Linear-address deltas of the nine stored off-diagonal offsets;
	// predecessors of p sit at p minus a delta.
	d00p, d0pm, d0p0, d0pp := 1, s2-1, s2, s2+1
	dpm0, dp0m, dp00, dp0p, dpp0 := s3-s2, s3-1, s3, s3+1, s3+s2

	fd, f00p, f0pm, f0p0, f0pp := fac.D000.Data, fac.L00P.Data, fac.L0PM.Data, fac.L0P0.Data, fac.L0PP.Data
	fpm0, fp0m, fp00, fp0p, fpp0 := fac.LPM0.Data, fac.LP0M.Data, fac.LP00.Data, fac.LP0P.Data, fac.LPP0.Data

	// Working arrays start as the coefficient arrays, diagonal perturbed
	// by (1+bias). The stored coefficients are never touched.
	scale := 1 + bias
	a000 := c.S000.Data
	for i := range fd {
		fd[i] = a000[i] * scale
	}
	copy(f00p, c.S00P.Data)
	copy(f0pm, c.S0PM.Data)
	copy(f0p0, c.S0P0.Data)
	copy(f0pp, c.S0PP.Data)
	copy(fpm0, c.SPM0.Data)
	copy(fp0m, c.SP0M.Data)
	copy(fp00, c.SP00.Data)
	copy(fp0p, c.SP0P.Data)
	copy(fpp0, c.SPP0.Data)

	var i, q, i1, i2, i3 int
	var dq, aq float64
	var v000, v00p, v0pm, v0p0, v0pp, vpm0, vp0m, vp00, vp0p, vpp0 float64
	for i3 = 0; i3 < n3; i3++ {
		for i2 = 0; i2 < n2; i2++ {
			// All i1-independent bounds for this row.
			rowFast := i2 > 0 && i2 < n2-1 && i3 > 0
			i = s2*i2 + s3*i3
			for i1 = 0; i1 < n1; i1, i = i1+1, i+1 {
				v000 = fd[i]
				v00p = f00p[i]
				v0pm = f0pm[i]
				v0p0 = f0p0[i]
				v0pp = f0pp[i]
				vpm0 = fpm0[i]
				vp0m = fp0m[i]
				vp00 = fp00[i]
				vp0p = fp0p[i]
				vpp0 = fpp0[i]

				if rowFast && i1 > 0 && i1 < n1-1 {
					// Interior: all nine predecessors in bounds.
					q = i - d00p
					dq = fd[q]
					aq = f00p[q]
					v000 -= dq * aq * aq
					v0pm -= dq * aq * f0p0[q]
					v0p0 -= dq * aq * f0pp[q]
					vp0m -= dq * aq * fp00[q]
					vp00 -= dq * aq * fp0p[q]

					q = i - d0pm
					dq = fd[q]
					aq = f0pm[q]
					v000 -= dq * aq * aq
					v00p -= dq * aq * f0p0[q]
					vpm0 -= dq * aq * fp0m[q]
					vp0p -= dq * aq * fpp0[q]

					q = i - d0p0
					dq = fd[q]
					aq = f0p0[q]
					v000 -= dq * aq * aq
					v00p -= dq * aq * f0pp[q]
					vpm0 -= dq * aq * fp00[q]
					vp00 -= dq * aq * fpp0[q]

					q = i - d0pp
					dq = fd[q]
					aq = f0pp[q]
					v000 -= dq * aq * aq
					vpm0 -= dq * aq * fp0p[q]
					vp0m -= dq * aq * fpp0[q]

					q = i - dpm0
					dq = fd[q]
					aq = fpm0[q]
					v000 -= dq * aq * aq
					v0pm -= dq * aq * fp0m[q]
					v0p0 -= dq * aq * fp00[q]
					v0pp -= dq * aq * fp0p[q]

					q = i - dp0m
					dq = fd[q]
					aq = fp0m[q]
					v000 -= dq * aq * aq
					v00p -= dq * aq * fp00[q]
					v0pp -= dq * aq * fpp0[q]

					q = i - dp00
					dq = fd[q]
					aq = fp00[q]
					v000 -= dq * aq * aq
					v00p -= dq * aq * fp0p[q]
					v0p0 -= dq * aq * fpp0[q]

					q = i - dp0p
					dq = fd[q]
					aq = fp0p[q]
					v000 -= dq * aq * aq
					v0pm -= dq * aq * fpp0[q]

					q = i - dpp0
					dq = fd[q]
					aq = fpp0[q]
					v000 -= dq * aq * aq
				} else {
					// Boundary: test each predecessor's bounds; omitted
					// terms correspond to out-of-grid points.
					if i1 > 0 {
						q = i - d00p
						dq = fd[q]
						aq = f00p[q]
						v000 -= dq * aq * aq
						v0pm -= dq * aq * f0p0[q]
						v0p0 -= dq * aq * f0pp[q]
						vp0m -= dq * aq * fp00[q]
						vp00 -= dq * aq * fp0p[q]
					}
					if i2 > 0 {
						if i1 < n1-1 {
							q = i - d0pm
							dq = fd[q]
							aq = f0pm[q]
							v000 -= dq * aq * aq
							v00p -= dq * aq * f0p0[q]
							vpm0 -= dq * aq * fp0m[q]
							vp0p -= dq * aq * fpp0[q]
						}
						q = i - d0p0
						dq = fd[q]
						aq = f0p0[q]
						v000 -= dq * aq * aq
						v00p -= dq * aq * f0pp[q]
						vpm0 -= dq * aq * fp00[q]
						vp00 -= dq * aq * fpp0[q]
						if i1 > 0 {
							q = i - d0pp
							dq = fd[q]
							aq = f0pp[q]
							v000 -= dq * aq * aq
							vpm0 -= dq * aq * fp0p[q]
							vp0m -= dq * aq * fpp0[q]
						}
					}
					if i3 > 0 {
						if i2 < n2-1 {
							q = i - dpm0
							dq = fd[q]
							aq = fpm0[q]
							v000 -= dq * aq * aq
							v0pm -= dq * aq * fp0m[q]
							v0p0 -= dq * aq * fp00[q]
							v0pp -= dq * aq * fp0p[q]
						}
						if i1 < n1-1 {
							q = i - dp0m
							dq = fd[q]
							aq = fp0m[q]
							v000 -= dq * aq * aq
							v00p -= dq * aq * fp00[q]
							v0pp -= dq * aq * fpp0[q]
						}
						q = i - dp00
						dq = fd[q]
						aq = fp00[q]
						v000 -= dq * aq * aq
						v00p -= dq * aq * fp0p[q]
						v0p0 -= dq * aq * fpp0[q]
						if i1 > 0 {
							q = i - dp0p
							dq = fd[q]
							aq = fp0p[q]
							v000 -= dq * aq * aq
							v0pm -= dq * aq * fpp0[q]
						}
						if i2 > 0 {
							q = i - dpp0
							dq = fd[q]
							aq = fpp0[q]
							v000 -= dq * aq * aq
						}
					}
				}

				// Positive-pivot check; record the inverse diagonal.
				if v000 <= 0 {
					return false
				}
				fd[i] = 1 / v000
				f00p[i] = v00p
				f0pm[i] = v0pm
				f0p0[i] = v0p0
				f0pp[i] = v0pp
				fpm0[i] = vpm0
				fp0m[i] = vp0m
				fp00[i] = vp00
				fp0p[i] = vp0p
				fpp0[i] = vpp0
			}
		}
	}

	// Normalize: scale each column by its inverse pivot so L carries a
	// unit diagonal implicitly and solves avoid division.
	var d float64
	for i = range fd {
		d = fd[i]
		f00p[i] *= d
		f0pm[i] *= d
		f0p0[i] *= d
		f0pp[i] *= d
		fpm0[i] *= d
		fp0m[i] *= d
		fp00[i] *= d
		fp0p[i] *= d
		fpp0[i] *= d
	}

	return true
}
