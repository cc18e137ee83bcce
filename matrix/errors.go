// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All functions return
// these sentinels and tests check them via errors.Is; panics are reserved
// for programmer errors in private helpers.
package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MulVec where len(x) != Cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed as an argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
