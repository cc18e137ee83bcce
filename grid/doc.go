// Package grid provides flat, row-major scalar fields on regular 3-D grids
// for the lvlspd numerical kernels.
//
// 🚀 What is grid?
//
//	The storage layer shared by every lvlspd filter:
//
//	  • Shape — validated grid dimensions (N1, N2, N3) with linearized
//	    addressing i = i1 + N1·i2 + N1·N2·i3
//	  • Field — a contiguous float64 block over a Shape, with elementwise
//	    kernels (Zero, Fill, CopyFrom, Scale, Sub, AXPY, Dot, MaxAbs)
//	  • Random — deterministic seeded field generation for tests and
//	    benchmarks
//
// ✨ Key properties:
//
//   - Flat backing slice — cache-friendly inner loops, one allocation
//   - Fixed loop order in every kernel — bitwise reproducible results
//   - Sentinel errors, no panics on user input
//
// ⚙️ Usage:
//
//	shape, err := grid.NewShape(64, 64, 32)
//	if err != nil { ... }
//	x := grid.NewField(shape)
//	x.Fill(1.0)
//
// The contract is over values at (i3, i2, i1), not over layout: callers that
// need raw access may index Data directly via Shape.Index.
package grid
