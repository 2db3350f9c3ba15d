package spgrep_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeforge/fcsym/crystal"
	"github.com/latticeforge/fcsym/spgrep"
	"github.com/latticeforge/fcsym/symfind"
)

// Synthetic collaborators: canned operation sets drive the base
// representation without a real symmetry backend.

type fakeFinder struct {
	ops []spgrep.Operation
	err error
}

func (f fakeFinder) FindOperations(*crystal.Cell, float64) ([]spgrep.Operation, error) {
	return f.ops, f.err
}

type fakeResolver struct {
	perms [][]int
	err   error
	calls int
}

func (r *fakeResolver) ResolvePermutation(*crystal.Cell, spgrep.Operation, float64) ([]int, error) {
	if r.err != nil {
		return nil, r.err
	}
	p := r.perms[r.calls%len(r.perms)]
	r.calls++

	return p, nil
}

func identityOp() spgrep.Operation {
	return spgrep.Operation{Rotation: [3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

func twoAtomCell(t *testing.T) *crystal.Cell {
	t.Helper()
	cell, err := crystal.NewCell(
		[3][3]float64{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}},
		[][3]float64{{0, 0, 0}, {0.5, 0.5, 0.5}},
		[]int{1, 1},
	)
	require.NoError(t, err)

	return cell
}

// TestNewRep_NilArguments covers the nil sentinels.
func TestNewRep_NilArguments(t *testing.T) {
	cell := twoAtomCell(t)

	_, err := spgrep.NewRep(nil, fakeFinder{}, &fakeResolver{})
	assert.ErrorIs(t, err, spgrep.ErrNilCell)

	_, err = spgrep.NewRep(cell, nil, &fakeResolver{})
	assert.ErrorIs(t, err, spgrep.ErrNilCollaborator)

	_, err = spgrep.NewRep(cell, fakeFinder{}, nil)
	assert.ErrorIs(t, err, spgrep.ErrNilCollaborator)
}

// TestNewRep_FinderErrorPropagates verifies collaborator failures reach the
// caller unmodified.
func TestNewRep_FinderErrorPropagates(t *testing.T) {
	boom := errors.New("backend exploded")
	_, err := spgrep.NewRep(twoAtomCell(t), fakeFinder{err: boom}, &fakeResolver{})
	assert.ErrorIs(t, err, boom)
}

// TestNewRep_BadPermutation rejects a resolver output that is not a
// bijection on [0, N).
func TestNewRep_BadPermutation(t *testing.T) {
	finder := fakeFinder{ops: []spgrep.Operation{identityOp()}}
	resolver := &fakeResolver{perms: [][]int{{0, 0}}}

	_, err := spgrep.NewRep(twoAtomCell(t), finder, resolver)
	assert.ErrorIs(t, err, spgrep.ErrBadPermutation)
}

// TestNewRep_NoLatticeTranslations rejects an operation set that lacks an
// identity-rotation member.
func TestNewRep_NoLatticeTranslations(t *testing.T) {
	inv := spgrep.Operation{Rotation: [3][3]int{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}}}
	finder := fakeFinder{ops: []spgrep.Operation{inv}}
	resolver := &fakeResolver{perms: [][]int{{0, 1}}}

	_, err := spgrep.NewRep(twoAtomCell(t), finder, resolver)
	assert.ErrorIs(t, err, spgrep.ErrNoLatticeTranslations)
}

// TestNewRep_FirstOccurrenceCosets verifies a duplicated rotation keeps the
// first operation index only, in scan order.
func TestNewRep_FirstOccurrenceCosets(t *testing.T) {
	inv := spgrep.Operation{Rotation: [3][3]int{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}}}
	shifted := identityOp()
	shifted.Translation = [3]float64{0.5, 0.5, 0.5}

	finder := fakeFinder{ops: []spgrep.Operation{identityOp(), inv, shifted, inv}}
	resolver := &fakeResolver{perms: [][]int{{0, 1}, {0, 1}, {1, 0}, {0, 1}}}

	rep, err := spgrep.NewRep(twoAtomCell(t), finder, resolver)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, rep.CosetIndices())
	assert.Equal(t, 2, rep.NumCosets())
	assert.Equal(t, 2, rep.NumLatticePoints())
}

// rocksaltRep builds the NaCl conventional-cell representation through the
// real backend.
func rocksaltRep(t *testing.T) *spgrep.Rep {
	t.Helper()
	cell, err := crystal.NewCell(
		[3][3]float64{{5.64, 0, 0}, {0, 5.64, 0}, {0, 0, 5.64}},
		[][3]float64{
			{0, 0, 0}, {0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0},
			{0.5, 0.5, 0.5}, {0.5, 0, 0}, {0, 0.5, 0}, {0, 0, 0.5},
		},
		[]int{11, 11, 11, 11, 17, 17, 17, 17},
	)
	require.NoError(t, err)

	rep, err := spgrep.NewRep(cell, symfind.NewFinder(), symfind.Resolver{})
	require.NoError(t, err)

	return rep
}

// TestRep_Rocksalt checks the group bookkeeping of the NaCl cell:
// 192 operations, 4 lattice translations, 48 coset representatives, and
// coset count × n_lp == operation count.
func TestRep_Rocksalt(t *testing.T) {
	rep := rocksaltRep(t)

	assert.Len(t, rep.Operations(), 192)
	assert.Equal(t, 4, rep.NumLatticePoints())
	assert.Equal(t, 48, rep.NumCosets())
	assert.Equal(t, len(rep.Operations()), rep.NumCosets()*rep.NumLatticePoints())
}

// TestRep_PermutationsAreBijections verifies every induced permutation is a
// bijection on [0, N).
func TestRep_PermutationsAreBijections(t *testing.T) {
	rep := rocksaltRep(t)
	n := rep.Cell().NumAtoms()

	for _, perm := range rep.Permutations() {
		require.Len(t, perm, n)
		seen := make([]bool, n)
		for _, p := range perm {
			require.GreaterOrEqual(t, p, 0)
			require.Less(t, p, n)
			require.False(t, seen[p])
			seen[p] = true
		}
	}
}

// TestRep_TranslationRowsPermute verifies each translation row is itself a
// permutation and the first row is the identity.
func TestRep_TranslationRowsPermute(t *testing.T) {
	rep := rocksaltRep(t)
	tp := rep.TranslationPermutations()
	require.Len(t, tp, 4)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, tp[0], "identity with zero translation is scanned first")
}

// TestRep_AccessorsCopy verifies mutation of returned slices does not leak
// into the representation.
func TestRep_AccessorsCopy(t *testing.T) {
	rep := rocksaltRep(t)

	perms := rep.Permutations()
	perms[0][0] = 99
	assert.NotEqual(t, 99, rep.Permutations()[0][0])

	idx := rep.CosetIndices()
	idx[0] = -5
	assert.NotEqual(t, -5, rep.CosetIndices()[0])
}
