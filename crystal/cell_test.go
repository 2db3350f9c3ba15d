package crystal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeforge/fcsym/crystal"
)

// cubic returns a simple cubic cell with one atom at the origin and one at
// the body center.
func cubic(t *testing.T, a float64) *crystal.Cell {
	t.Helper()
	cell, err := crystal.NewCell(
		[3][3]float64{{a, 0, 0}, {0, a, 0}, {0, 0, a}},
		[][3]float64{{0, 0, 0}, {0.5, 0.5, 0.5}},
		[]int{55, 17},
	)
	require.NoError(t, err)

	return cell
}

// TestNewCell_SingularLattice verifies that a rank-deficient lattice is
// rejected with ErrSingularLattice.
func TestNewCell_SingularLattice(t *testing.T) {
	_, err := crystal.NewCell(
		[3][3]float64{{1, 0, 0}, {2, 0, 0}, {0, 0, 1}},
		[][3]float64{{0, 0, 0}},
		[]int{1},
	)
	assert.ErrorIs(t, err, crystal.ErrSingularLattice)
}

// TestNewCell_SizeMismatch verifies positions/species length agreement.
func TestNewCell_SizeMismatch(t *testing.T) {
	_, err := crystal.NewCell(
		[3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		[][3]float64{{0, 0, 0}, {0.5, 0.5, 0.5}},
		[]int{1},
	)
	assert.ErrorIs(t, err, crystal.ErrSizeMismatch)
}

// TestNewCell_NoAtoms verifies the empty-cell error.
func TestNewCell_NoAtoms(t *testing.T) {
	_, err := crystal.NewCell(
		[3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		nil, nil,
	)
	assert.ErrorIs(t, err, crystal.ErrNoAtoms)
}

// TestNewCell_NaN verifies NaN rejection in lattice and positions.
func TestNewCell_NaN(t *testing.T) {
	nan := math.NaN()
	_, err := crystal.NewCell(
		[3][3]float64{{nan, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		[][3]float64{{0, 0, 0}},
		[]int{1},
	)
	assert.ErrorIs(t, err, crystal.ErrNaNInf)

	_, err = crystal.NewCell(
		[3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		[][3]float64{{nan, 0, 0}},
		[]int{1},
	)
	assert.ErrorIs(t, err, crystal.ErrNaNInf)
}

// TestCell_WrapsFractional verifies positions land in [0,1).
func TestCell_WrapsFractional(t *testing.T) {
	cell, err := crystal.NewCell(
		[3][3]float64{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}},
		[][3]float64{{-0.25, 1.5, 1.0}},
		[]int{6},
	)
	require.NoError(t, err)

	p, err := cell.Position(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, p[0], 1e-15)
	assert.InDelta(t, 0.5, p[1], 1e-15)
	assert.InDelta(t, 0.0, p[2], 1e-15)
}

// TestCell_VolumeAndMetric checks the cached volume and the metric tensor of
// a cubic cell.
func TestCell_VolumeAndMetric(t *testing.T) {
	cell := cubic(t, 4.0)
	assert.InDelta(t, 64.0, cell.Volume(), 1e-12)

	g := cell.Metric()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 16.0
			}
			assert.InDelta(t, want, g.At(i, j), 1e-12)
		}
	}
}

// TestCell_Cartesian converts a fractional vector through a non-trivial
// (triclinic-ish) lattice.
func TestCell_Cartesian(t *testing.T) {
	cell, err := crystal.NewCell(
		[3][3]float64{{2, 0, 0}, {1, 3, 0}, {0, 1, 4}},
		[][3]float64{{0, 0, 0}},
		[]int{1},
	)
	require.NoError(t, err)

	// cart = Lᵀ·frac with rows as basis vectors.
	c := cell.Cartesian([3]float64{0.5, 1, 0.25})
	assert.InDelta(t, 0.5*2+1*1, c[0], 1e-12)
	assert.InDelta(t, 1*3+0.25*1, c[1], 1e-12)
	assert.InDelta(t, 0.25*4, c[2], 1e-12)
}

// TestCell_MinImageDistance verifies the periodic image is preferred over
// the direct separation.
func TestCell_MinImageDistance(t *testing.T) {
	cell, err := crystal.NewCell(
		[3][3]float64{{10, 0, 0}, {0, 10, 0}, {0, 0, 10}},
		[][3]float64{{0.05, 0, 0}, {0.95, 0, 0}},
		[]int{1, 1},
	)
	require.NoError(t, err)

	d, err := cell.MinImageDistance(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-12, "0.95 → 0.05 crosses the boundary at 0.10 fractional")

	_, err = cell.MinImageDistance(0, 5)
	assert.ErrorIs(t, err, crystal.ErrAtomIndex)
}

// TestCell_PairDistances checks symmetry and the zero diagonal.
func TestCell_PairDistances(t *testing.T) {
	cell := cubic(t, 4.0)
	d := cell.PairDistances()
	require.Len(t, d, 4)
	assert.Equal(t, 0.0, d[0])
	assert.Equal(t, 0.0, d[3])
	assert.Equal(t, d[1], d[2])
	assert.InDelta(t, 4.0*math.Sqrt(3)/2, d[1], 1e-12)
}

// TestCell_AccessorsCopy verifies accessors hand out copies, not views.
func TestCell_AccessorsCopy(t *testing.T) {
	cell := cubic(t, 4.0)

	pos := cell.Positions()
	pos[0][0] = 0.9
	p, err := cell.Position(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p[0])

	sp := cell.Species()
	sp[0] = -1
	assert.Equal(t, 55, cell.Species()[0])

	lat := cell.Lattice()
	lat.Set(0, 0, -7)
	assert.Equal(t, 4.0, cell.Lattice().At(0, 0))
}
