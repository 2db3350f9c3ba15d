// SPDX-License-Identifier: MIT

// Package spgrep: collaborator contracts and functional configuration.
// The symmetry backend sits behind two narrow interfaces so synthetic
// operation sets can drive tests without a real detector.

package spgrep

import "github.com/latticeforge/fcsym/crystal"

// Operation is one space-group operation: an integer rotation matrix in the
// lattice basis and a fractional translation vector. The full operation set
// of a structure is closed under composition and inversion.
type Operation struct {
	Rotation    [3][3]int
	Translation [3]float64
}

// IsIdentityRotation reports whether the rotation part is the 3×3 identity.
func (op Operation) IsIdentityRotation() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0
			if i == j {
				want = 1
			}
			if op.Rotation[i][j] != want {
				return false
			}
		}
	}

	return true
}

// SymmetryFinder discovers the full space-group operation set of a cell.
// Implementations fail with a detection error when no consistent operation
// set exists for the given tolerance.
type SymmetryFinder interface {
	FindOperations(cell *crystal.Cell, tol float64) ([]Operation, error)
}

// PermutationResolver maps an operation to the permutation it induces on
// atom indices: perm[i] is the index of the atom that atom i lands on.
// Implementations fail when any atom has no unique image within tolerance.
type PermutationResolver interface {
	ResolvePermutation(cell *crystal.Cell, op Operation, tol float64) ([]int, error)
}

// DefaultTolerance is the position-matching tolerance (fractional
// coordinates, per component) used when no WithTolerance option is given.
const DefaultTolerance = 1e-5

// Option configures NewRep.
type Option func(*options)

type options struct {
	tol float64
}

// WithTolerance overrides the symmetry and matching tolerance.
// Non-positive values are a programmer error and panic.
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic("spgrep: WithTolerance requires tol > 0")
	}

	return func(o *options) { o.tol = tol }
}

func gatherOptions(opts []Option) options {
	o := options{tol: DefaultTolerance}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
