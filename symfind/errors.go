// SPDX-License-Identifier: MIT
// Package symfind: sentinel error set.

package symfind

import "errors"

var (
	// ErrNilCell indicates a nil *crystal.Cell argument.
	ErrNilCell = errors.New("symfind: cell is nil")

	// ErrBadTolerance indicates a non-positive matching tolerance.
	ErrBadTolerance = errors.New("symfind: tolerance must be > 0")

	// ErrNoOperations indicates that no consistent symmetry operation set was
	// found. Fatal: the structure and tolerance disagree; retrying does not help.
	ErrNoOperations = errors.New("symfind: no symmetry operations found")

	// ErrNoMatch indicates an operation maps some atom onto no unique
	// same-species image within tolerance. Fatal: the structure is
	// incompatible with the claimed operation.
	ErrNoMatch = errors.New("symfind: no atom image within tolerance")

	// ErrBadTranslations indicates a malformed translation-permutation table.
	ErrBadTranslations = errors.New("symfind: malformed translation permutations")
)
