// SPDX-License-Identifier: MIT
// Package compress: sentinel error set.
// ErrInconsistentIndices is the internal-consistency failure of the
// requirements: it is never expected on correct input and signals a defect
// in index construction or a corrupted translation table.

package compress

import "errors"

var (
	// ErrNilRep indicates a nil representation argument.
	ErrNilRep = errors.New("compress: nil representation")

	// ErrRankUnsupported indicates a representation of rank ≠ 3 was passed to
	// a rank-3 builder.
	ErrRankUnsupported = errors.New("compress: builder requires a rank-3 representation")

	// ErrBadTranslations indicates a malformed translation-permutation table.
	ErrBadTranslations = errors.New("compress: malformed translation permutations")

	// ErrBadIndepAtoms indicates an independent-atom list with out-of-range
	// or repeated entries.
	ErrBadIndepAtoms = errors.New("compress: malformed independent atom list")

	// ErrInconsistentIndices indicates an index-map invariant failed
	// (assigned ids × n_lp ≠ raw size, or an index outside the compressed
	// range). Always fatal; not user-recoverable.
	ErrInconsistentIndices = errors.New("compress: internal index inconsistency")

	// ErrBadCompression indicates a decompression index array whose length is
	// not divisible by n_lp.
	ErrBadCompression = errors.New("compress: index array length not divisible by n_lp")

	// ErrBasisShape indicates a reduction basis whose row count does not
	// match the compressed space dimension.
	ErrBasisShape = errors.New("compress: reduction basis shape mismatch")
)
