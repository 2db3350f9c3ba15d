// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// Every message is prefixed with "sparse: ..." so log lines grep cleanly.
// Operations MUST return these sentinels and tests MUST check them via
// errors.Is; wrapping with fmt.Errorf("ctx: %w", ErrX) is allowed at outer
// boundaries only.

package sparse

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Add with different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates a nil matrix receiver or argument.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value at ingestion.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")
)
