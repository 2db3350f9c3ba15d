// SPDX-License-Identifier: MIT
// Package spgrep: sentinel error set.

package spgrep

import "errors"

var (
	// ErrNilCell indicates a nil *crystal.Cell argument.
	ErrNilCell = errors.New("spgrep: cell is nil")

	// ErrNilCollaborator indicates a nil SymmetryFinder or PermutationResolver.
	ErrNilCollaborator = errors.New("spgrep: nil symmetry collaborator")

	// ErrBadPermutation indicates a resolver produced an atom map that is not
	// a bijection on [0, N). The structure is incompatible with the claimed
	// symmetry operation.
	ErrBadPermutation = errors.New("spgrep: atom permutation is not a bijection")

	// ErrNoLatticeTranslations indicates the operation set contains no
	// identity-rotation operation; a well-formed space group always carries
	// at least the identity.
	ErrNoLatticeTranslations = errors.New("spgrep: no pure lattice translation found")

	// ErrBadRank indicates a tensor rank outside {1, 2, 3}.
	ErrBadRank = errors.New("spgrep: tensor rank must be 1, 2 or 3")

	// ErrCosetIndex indicates a coset-representative index out of range.
	ErrCosetIndex = errors.New("spgrep: coset representative index out of range")

	// ErrBadMask indicates a tuple mask whose length is not N^K.
	ErrBadMask = errors.New("spgrep: tuple mask length mismatch")
)
