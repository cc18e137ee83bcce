// Package spdfilter applies locally varying, symmetric positive-definite
// (SPD) 19-point stencil operators on regular 3-D grids, and approximately
// inverts them through a no-fill incomplete Cholesky factorization.
//
// 🚀 What is spdfilter?
//
//	A preconditioner kernel: given ten coefficient fields that encode the
//	upper half of a 19-point stencil (the lower half follows from SPD
//	symmetry), a Filter offers
//
//	  • Apply                   — y = A·x, one pass over the grid,
//	    each stored coefficient fetched once and scattered both ways
//	  • ApplyApproximate        — y = L·D·Lᵀ·x for factor verification
//	  • ApplyApproximateInverse — x = (L·D·Lᵀ)⁻¹·b, the approximate
//	    inverse realized by forward/backward triangular solves
//	  • Matrix                  — dense n×n projection for small grids
//
// ✨ Key features:
//
//   - symmetry-halved storage: ten arrays instead of nineteen
//   - in-place IC(0): the factor shares the stencil's exact sparsity
//   - adaptive diagonal biasing: failed factorizations retry with a
//     doubled bias until success or an upper limit
//   - interior fast paths and boundary-checked general paths that produce
//     bit-identical results
//   - lazy factorization: factors are built on first demand and cached
//
// ⚙️ Usage:
//
//	c, _ := spdfilter.ConstantCoeffs(shape, 19, -1)
//	f, err := spdfilter.New(c)
//	if err != nil { ... }
//	_ = f.Apply(x, y)                   // y = A·x
//	_ = f.ApplyApproximateInverse(y, z) // z ≈ A⁻¹·y
//
// The filter is the preconditioner half of an iterative scheme: compose it
// with an external conjugate-gradient (or similar) solver. No solver is
// included here.
//
// Determinism: every sweep runs in a fixed lexicographic order over
// (i3, i2, i1); identical inputs always produce identical outputs.
// The one-time factorization of a Filter is serialized on an internal
// mutex, so concurrent first calls on one Filter build the factors once;
// distinct Filter instances are fully independent.
package spdfilter
