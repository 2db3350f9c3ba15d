// SPDX-License-Identifier: MIT
// Package crystal: sentinel error set.
// All constructors and accessors return these sentinels; tests match them
// via errors.Is. Nothing in this package panics on user input.

package crystal

import "errors"

var (
	// ErrSingularLattice indicates the lattice matrix is singular (or so
	// close to singular that fractional↔Cartesian conversion is meaningless).
	ErrSingularLattice = errors.New("crystal: singular lattice matrix")

	// ErrSizeMismatch indicates positions and species have different lengths.
	ErrSizeMismatch = errors.New("crystal: positions and species length mismatch")

	// ErrNoAtoms indicates an empty atom list.
	ErrNoAtoms = errors.New("crystal: cell must contain at least one atom")

	// ErrNaNInf signals a NaN or ±Inf value in the lattice or positions.
	ErrNaNInf = errors.New("crystal: NaN or Inf encountered")

	// ErrAtomIndex indicates an atom index outside [0, NumAtoms).
	ErrAtomIndex = errors.New("crystal: atom index out of range")
)
