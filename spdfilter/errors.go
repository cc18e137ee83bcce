// Package spdfilter: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations
// return these sentinels and tests check them via errors.Is. Argument
// errors surface immediately and prevent any state change; factorization
// attempt failures stay internal (trace lines only) and surface as
// ErrFactorization once every bias in the retry range is exhausted.
package spdfilter

import "errors"

var (
	// ErrNilCoeffs indicates that a nil or incomplete coefficient set was
	// passed to New (every one of the ten arrays must be present).
	ErrNilCoeffs = errors.New("spdfilter: nil or incomplete coefficients")

	// ErrNilField indicates that a nil *grid.Field was passed to an
	// apply/solve operation.
	ErrNilField = errors.New("spdfilter: nil field")

	// ErrShapeMismatch indicates that an input or output field does not
	// match the filter's grid shape, or that the ten coefficient arrays
	// disagree on shape.
	ErrShapeMismatch = errors.New("spdfilter: shape mismatch")

	// ErrAliasedBuffers indicates that the input and output of an
	// apply/solve operation share backing storage; the kernels require
	// distinct buffers.
	ErrAliasedBuffers = errors.New("spdfilter: input and output buffers must be distinct")

	// ErrNegativeBias indicates a negative (or non-finite) initial bias.
	ErrNegativeBias = errors.New("spdfilter: bias must be non-negative and finite")

	// ErrFactorization indicates that the incomplete Cholesky factorization
	// failed for every bias in the retry range. Not recoverable for the
	// current coefficients; retry with a larger initial bias, modified
	// coefficients, or a different preconditioner.
	ErrFactorization = errors.New("spdfilter: incomplete Cholesky factorization failed")
)
