// SPDX-License-Identifier: MIT

package crystal

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DetTol is the absolute determinant threshold below which a lattice is
// rejected as singular.
const DetTol = 1e-12

// Cell is an immutable periodic structure: lattice, fractional positions
// and species labels. Construct with NewCell; the zero value is not usable.
type Cell struct {
	lattice   *mat.Dense   // 3×3, rows are basis vectors
	positions [][3]float64 // fractional, wrapped into [0,1)
	species   []int        // len == len(positions)
	volume    float64      // |det(lattice)|, cached at construction
}

// NewCell validates and builds a Cell.
// Stage 1 (Validate): finite lattice with |det| > DetTol, non-empty atom
// list, matching positions/species lengths, finite positions.
// Stage 2 (Prepare): wrap every fractional coordinate into [0,1).
// Stage 3 (Finalize): copy everything into private storage.
// Complexity: O(N) time and memory.
func NewCell(lattice [3][3]float64, positions [][3]float64, species []int) (*Cell, error) {
	flat := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !isFinite(lattice[i][j]) {
				return nil, ErrNaNInf
			}
			flat = append(flat, lattice[i][j])
		}
	}
	lat := mat.NewDense(3, 3, flat)
	det := mat.Det(lat)
	if math.Abs(det) < DetTol {
		return nil, ErrSingularLattice
	}
	if len(positions) == 0 {
		return nil, ErrNoAtoms
	}
	if len(positions) != len(species) {
		return nil, ErrSizeMismatch
	}

	pos := make([][3]float64, len(positions))
	for i, p := range positions {
		for k := 0; k < 3; k++ {
			if !isFinite(p[k]) {
				return nil, ErrNaNInf
			}
			pos[i][k] = wrapFrac(p[k])
		}
	}
	sp := make([]int, len(species))
	copy(sp, species)

	return &Cell{lattice: lat, positions: pos, species: sp, volume: math.Abs(det)}, nil
}

// NumAtoms returns the number of atoms in the cell. Complexity: O(1).
func (c *Cell) NumAtoms() int { return len(c.positions) }

// Volume returns the cell volume |det(lattice)|. Complexity: O(1).
func (c *Cell) Volume() float64 { return c.volume }

// Lattice returns a copy of the 3×3 lattice matrix (rows are basis vectors).
func (c *Cell) Lattice() *mat.Dense {
	return mat.DenseCopyOf(c.lattice)
}

// Metric returns the lattice metric tensor G = L·Lᵀ, where G[i][j] is the dot
// product of basis vectors i and j. Rotations expressed in the lattice basis
// preserve this tensor exactly.
func (c *Cell) Metric() *mat.Dense {
	var g mat.Dense
	g.Mul(c.lattice, c.lattice.T())

	return &g
}

// Position returns the fractional position of atom i.
func (c *Cell) Position(i int) ([3]float64, error) {
	if i < 0 || i >= len(c.positions) {
		return [3]float64{}, ErrAtomIndex
	}

	return c.positions[i], nil
}

// Positions returns a copy of all fractional positions.
func (c *Cell) Positions() [][3]float64 {
	out := make([][3]float64, len(c.positions))
	copy(out, c.positions)

	return out
}

// Species returns a copy of the species labels.
func (c *Cell) Species() []int {
	out := make([]int, len(c.species))
	copy(out, c.species)

	return out
}

// Cartesian converts a fractional vector to Cartesian coordinates,
// cart = Lᵀ·frac with basis vectors as lattice rows. Complexity: O(1).
func (c *Cell) Cartesian(frac [3]float64) [3]float64 {
	var cart [3]float64
	for k := 0; k < 3; k++ {
		for i := 0; i < 3; i++ {
			cart[k] += frac[i] * c.lattice.At(i, k)
		}
	}

	return cart
}

// wrapFrac maps any finite value into [0,1).
func wrapFrac(v float64) float64 {
	w := v - math.Floor(v)
	if w >= 1 { // guard against floating-point spill at the boundary
		w = 0
	}

	return w
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
