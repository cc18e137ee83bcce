// Package lvlspd is your toolbox for locally varying, symmetric
// positive-definite (SPD) stencil operators on regular 3-D grids in Go.
//
// 🚀 What is lvlspd?
//
//	A small, deterministic, zero-dependency numerical library that brings
//	together:
//
//	  • grid/      — flat row-major 3-D scalar fields & shape arithmetic
//	  • spdfilter/ — the 19-point SPD stencil filter: forward application,
//	                 no-fill incomplete Cholesky IC(0) factorization with
//	                 adaptive diagonal biasing, and the triangular solves
//	                 that realize the approximate inverse (a preconditioner
//	                 for external iterative solvers)
//	  • matrix/    — a dense projection target for small-grid inspection
//	                 and correctness tests
//
// ✨ Why choose lvlspd?
//
//   - Deterministic          — fixed sweep orders, no hidden randomness
//   - Rock-solid             — sentinel errors, errors.Is discipline, no
//     panics on user input
//   - Symmetric by storage   — ten coefficient arrays encode all nineteen
//     stencil entries; storage and arithmetic are halved
//   - Pure Go                — no cgo, no hidden dependencies
//
// Quick ASCII sketch of the stencil's stored upper half at a point p
// (offsets in (axis3, axis2, axis1) order, m=-1, 0=0, p=+1):
//
//	s000  s00p  s0pm  s0p0  s0pp  spm0  sp0m  sp00  sp0p  spp0
//
// The remaining nine entries follow from SPD symmetry.
//
// Dive into README.md and the packages' runnable Example functions
// (example_test.go), or start with spdfilter.New and a coefficient set from
// spdfilter.ConstantCoeffs.
//
//	go get github.com/katalvlaran/lvlspd/spdfilter
package lvlspd
