// SPDX-License-Identifier: MIT

package spgrep

import (
	"fmt"

	"github.com/latticeforge/fcsym/crystal"
)

// Rep is the base representation of a cell's space group: every operation,
// the atom permutation it induces, the pure lattice-translation subset and
// the coset-representative index list. Immutable after NewRep.
type Rep struct {
	cell       *crystal.Cell
	ops        []Operation
	perms      [][]int // one permutation per operation
	transPerms [][]int // permutations of identity-rotation operations
	cosetIdx   []int   // operation index per distinct rotation, first occurrence
}

// NewRep discovers the symmetry of cell and derives the base representation.
// Stage 1 (Discover): finder produces the full operation set.
// Stage 2 (Permute): resolver maps every operation to an atom permutation,
// validated as a bijection on [0, N).
// Stage 3 (Partition): identity-rotation permutations form the translation
// subset; the first occurrence of each distinct rotation becomes its coset
// representative.
// Collaborator failures propagate unmodified.
// Complexity: O(ops·N) for permutations plus O(ops²) for the
// first-occurrence rotation scan.
func NewRep(cell *crystal.Cell, finder SymmetryFinder, resolver PermutationResolver, opts ...Option) (*Rep, error) {
	if cell == nil {
		return nil, ErrNilCell
	}
	if finder == nil || resolver == nil {
		return nil, ErrNilCollaborator
	}
	o := gatherOptions(opts)

	ops, err := finder.FindOperations(cell, o.tol)
	if err != nil {
		return nil, err
	}

	n := cell.NumAtoms()
	perms := make([][]int, len(ops))
	for i, op := range ops {
		perm, err := resolver.ResolvePermutation(cell, op, o.tol)
		if err != nil {
			return nil, err
		}
		if !isBijection(perm, n) {
			return nil, fmt.Errorf("operation %d: %w", i, ErrBadPermutation)
		}
		perms[i] = perm
	}

	var transPerms [][]int
	for i, op := range ops {
		if op.IsIdentityRotation() {
			transPerms = append(transPerms, perms[i])
		}
	}
	if len(transPerms) == 0 {
		return nil, ErrNoLatticeTranslations
	}

	return &Rep{
		cell:       cell,
		ops:        ops,
		perms:      perms,
		transPerms: transPerms,
		cosetIdx:   uniqueRotationIndices(ops),
	}, nil
}

// uniqueRotationIndices keeps the index of the first operation carrying each
// distinct rotation matrix, in scan order. Deliberately quadratic: space
// groups of conventional cells top out at a few hundred operations.
func uniqueRotationIndices(ops []Operation) []int {
	var seen [][3][3]int
	var idx []int
	for i, op := range ops {
		found := false
		for _, r := range seen {
			if r == op.Rotation {
				found = true
				break
			}
		}
		if !found {
			seen = append(seen, op.Rotation)
			idx = append(idx, i)
		}
	}

	return idx
}

// isBijection reports whether perm is a permutation of {0..n-1}.
func isBijection(perm []int, n int) bool {
	if len(perm) != n {
		return false
	}
	hit := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || hit[p] {
			return false
		}
		hit[p] = true
	}

	return true
}

// Cell returns the structure the representation was built from.
func (r *Rep) Cell() *crystal.Cell { return r.cell }

// Operations returns a copy of the full operation list.
func (r *Rep) Operations() []Operation {
	out := make([]Operation, len(r.ops))
	copy(out, r.ops)

	return out
}

// Permutations returns a deep copy of the per-operation atom permutations.
func (r *Rep) Permutations() [][]int {
	return clonePerms(r.perms)
}

// TranslationPermutations returns a deep copy of the atom permutations whose
// rotation part is the identity, shape (n_lp, N). Row order follows
// operation order.
func (r *Rep) TranslationPermutations() [][]int {
	return clonePerms(r.transPerms)
}

// CosetIndices returns a copy of the operation index of every coset
// representative, in first-occurrence order.
func (r *Rep) CosetIndices() []int {
	out := make([]int, len(r.cosetIdx))
	copy(out, r.cosetIdx)

	return out
}

// NumCosets returns the number of coset representatives.
func (r *Rep) NumCosets() int { return len(r.cosetIdx) }

// NumLatticePoints returns n_lp, the number of pure lattice translations.
func (r *Rep) NumLatticePoints() int { return len(r.transPerms) }

// cosetPermutation returns the atom permutation of the i-th coset
// representative without copying.
func (r *Rep) cosetPermutation(i int) ([]int, error) {
	if i < 0 || i >= len(r.cosetIdx) {
		return nil, ErrCosetIndex
	}

	return r.perms[r.cosetIdx[i]], nil
}

// cosetRotation returns the rotation matrix of the i-th coset representative.
func (r *Rep) cosetRotation(i int) ([3][3]int, error) {
	if i < 0 || i >= len(r.cosetIdx) {
		return [3][3]int{}, ErrCosetIndex
	}

	return r.ops[r.cosetIdx[i]].Rotation, nil
}

func clonePerms(src [][]int) [][]int {
	out := make([][]int, len(src))
	for i, p := range src {
		out[i] = make([]int, len(p))
		copy(out[i], p)
	}

	return out
}
