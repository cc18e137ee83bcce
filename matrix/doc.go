// Package matrix provides the small dense linear-algebra surface used by
// lvlspd for inspection and correctness testing.
//
// 🚀 What is matrix?
//
//	A deliberately minimal row-major Dense type plus the handful of
//	operations the stencil kernels need when projected to full matrices:
//
//	  • Dense          — flat row-major float64 storage
//	  • MulVec         — dense matrix·vector product
//	  • Transpose      — new transposed matrix
//	  • IsSymmetric    — exact (bitwise) symmetry check
//
// The intended consumer is spdfilter.Filter.Matrix(), which materializes a
// 19-point stencil operator on a small grid as an n×n Dense so that tests
// and visualizations can compare the implicit operator against explicit
// linear algebra. Nothing here is tuned for large n.
//
// ✨ Conventions:
//
//   - Sentinel errors, errors.Is discipline, no panics on user input
//   - Fixed loop orders for deterministic results
package matrix
