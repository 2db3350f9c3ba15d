package compress_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeforge/fcsym/crystal"
	"github.com/latticeforge/fcsym/sparse"
	"github.com/latticeforge/fcsym/spgrep"
	"github.com/latticeforge/fcsym/symfind"
)

// fixture bundles everything the compression tests need for one cell.
type fixture struct {
	cell  *crystal.Cell
	rep   *spgrep.Rep
	rank3 *spgrep.RankRep
	indep []int
}

func buildFixture(t *testing.T, lattice [3][3]float64, positions [][3]float64, species []int) fixture {
	t.Helper()
	cell, err := crystal.NewCell(lattice, positions, species)
	require.NoError(t, err)
	rep, err := spgrep.NewRep(cell, symfind.NewFinder(), symfind.Resolver{})
	require.NoError(t, err)
	rank3, err := spgrep.NewRankRep(rep, 3)
	require.NoError(t, err)
	indep, err := symfind.IndependentAtoms(rep.TranslationPermutations())
	require.NoError(t, err)

	return fixture{cell: cell, rep: rep, rank3: rank3, indep: indep}
}

// rocksaltFixture: NaCl conventional cell, 8 atoms, 4 lattice points.
func rocksaltFixture(t *testing.T) fixture {
	return buildFixture(t,
		[3][3]float64{{5.64, 0, 0}, {0, 5.64, 0}, {0, 0, 5.64}},
		[][3]float64{
			{0, 0, 0}, {0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0},
			{0.5, 0.5, 0.5}, {0.5, 0, 0}, {0, 0.5, 0}, {0, 0, 0.5},
		},
		[]int{11, 11, 11, 11, 17, 17, 17, 17},
	)
}

// polarFixture: a two-species polar tetragonal cell (point group 4mm),
// 2 atoms, 1 lattice point, 8 coset representatives.
func polarFixture(t *testing.T) fixture {
	return buildFixture(t,
		[3][3]float64{{3, 0, 0}, {0, 3, 0}, {0, 0, 5}},
		[][3]float64{{0, 0, 0}, {0.5, 0.5, 0.3}},
		[]int{30, 16},
	)
}

// polarSupercellFixture: the polar cell doubled along x, 4 atoms,
// 2 lattice points, 4 coset representatives.
func polarSupercellFixture(t *testing.T) fixture {
	return buildFixture(t,
		[3][3]float64{{6, 0, 0}, {0, 3, 0}, {0, 0, 5}},
		[][3]float64{{0, 0, 0}, {0.5, 0, 0}, {0.25, 0.5, 0.3}, {0.75, 0.5, 0.3}},
		[]int{30, 30, 16, 16},
	)
}

// maxAbsDiff returns the largest entry magnitude of a - b.
func maxAbsDiff(t *testing.T, a, b *sparse.CSR) float64 {
	t.Helper()
	diff, err := sparse.Add(a, b.Scale(-1))
	require.NoError(t, err)

	return diff.MaxAbs()
}

// trace sums the diagonal of a square sparse matrix.
func trace(t *testing.T, m *sparse.CSR) float64 {
	t.Helper()
	var sum float64
	for d := 0; d < m.Rows(); d++ {
		v, err := m.At(d, d)
		require.NoError(t, err)
		sum += v
	}

	return sum
}
