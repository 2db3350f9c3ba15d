// SPDX-License-Identifier: MIT

package cutoff

import (
	"errors"

	"github.com/latticeforge/fcsym/crystal"
)

var (
	// ErrNilCell indicates a nil *crystal.Cell argument.
	ErrNilCell = errors.New("cutoff: cell is nil")

	// ErrBadRadius indicates a non-positive cutoff radius.
	ErrBadRadius = errors.New("cutoff: radius must be > 0")
)

// Cutoff holds a precomputed pair-proximity table for one cell and radius.
// Immutable after NewCutoff.
type Cutoff struct {
	n      int
	radius float64
	within []bool // row-major N×N, minimum-image distance <= radius
}

// NewCutoff builds the pair table. Distances are minimum-image Cartesian;
// the diagonal is always within.
// Complexity: O(27·N²).
func NewCutoff(cell *crystal.Cell, radius float64) (*Cutoff, error) {
	if cell == nil {
		return nil, ErrNilCell
	}
	if radius <= 0 {
		return nil, ErrBadRadius
	}

	n := cell.NumAtoms()
	dist := cell.PairDistances()
	within := make([]bool, n*n)
	for i, d := range dist {
		within[i] = d <= radius
	}

	return &Cutoff{n: n, radius: radius, within: within}, nil
}

// Radius returns the cutoff radius.
func (c *Cutoff) Radius() float64 { return c.radius }

// PairWithin reports whether atoms i and j are within the radius.
func (c *Cutoff) PairWithin(i, j int) bool {
	return c.within[i*c.n+j]
}

// TripleMask returns a length-N³ boolean mask over ordered atom triples
// (i, j, k), flat index i·N² + j·N + k. A triple is retained when all of
// (i,j), (i,k) and (j,k) are within the radius.
// Complexity: O(N³).
func (c *Cutoff) TripleMask() []bool {
	n := c.n
	mask := make([]bool, n*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !c.within[i*n+j] {
				continue
			}
			base := (i*n + j) * n
			for k := 0; k < n; k++ {
				mask[base+k] = c.within[i*n+k] && c.within[j*n+k]
			}
		}
	}

	return mask
}
