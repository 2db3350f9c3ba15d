// SPDX-License-Identifier: MIT

package symfind

import (
	"errors"

	"github.com/latticeforge/fcsym/crystal"
	"github.com/latticeforge/fcsym/spgrep"
)

// MetricRelTol is the relative tolerance for the metric-preservation test
// WᵀGW == G that screens candidate rotations. Sensitivity to very
// ill-conditioned lattices is untested; keep lattices reasonably shaped.
const MetricRelTol = 1e-8

// Finder enumerates the space-group operations of a cell. The zero value is
// not usable; construct with NewFinder.
type Finder struct {
	resolver Resolver
}

// NewFinder returns a ready-to-use Finder.
func NewFinder() *Finder { return &Finder{} }

// FindOperations returns every (rotation, translation) pair mapping the
// cell onto itself, with rotations searched over integer matrices with
// entries in {-1, 0, +1}.
// Stage 1 (Screen): keep the unimodular candidates preserving the metric.
// Stage 2 (Pair): for each kept rotation, try translations that send atom 0
// onto each same-species atom.
// Stage 3 (Verify): accept a pair when every atom acquires a unique
// same-species image within tol.
// Enumeration order is deterministic, so downstream first-occurrence coset
// selection is reproducible.
// Complexity: O(3⁹·N) screening + O(rotations·N³) verification.
func (f *Finder) FindOperations(cell *crystal.Cell, tol float64) ([]spgrep.Operation, error) {
	if cell == nil {
		return nil, ErrNilCell
	}
	if tol <= 0 {
		return nil, ErrBadTolerance
	}

	g := metricArray(cell)
	gTol := MetricRelTol * maxAbs3(g)

	positions := cell.Positions()
	species := cell.Species()

	var ops []spgrep.Operation
	for _, w := range metricRotations(g, gTol) {
		wx0 := applyRotation(w, positions[0])
		var tried [][3]float64
		for j := range positions {
			if species[j] != species[0] {
				continue
			}
			var t [3]float64
			for k := 0; k < 3; k++ {
				t[k] = wrap(positions[j][k] - wx0[k])
			}
			if containsVec(tried, t, tol) {
				continue
			}
			tried = append(tried, t)

			op := spgrep.Operation{Rotation: w, Translation: t}
			if _, err := f.resolver.ResolvePermutation(cell, op, tol); err != nil {
				if errors.Is(err, ErrNoMatch) {
					continue // not a symmetry operation, keep scanning
				}

				return nil, err
			}
			ops = append(ops, op)
		}
	}
	if len(ops) == 0 {
		return nil, ErrNoOperations
	}

	return ops, nil
}

// metricRotations enumerates all 3×3 integer matrices with entries in
// {-1,0,+1}, |det| = 1 and WᵀGW == G within gTol.
func metricRotations(g [3][3]float64, gTol float64) [][3][3]int {
	var out [][3][3]int
	var digits [9]int
	for {
		var w [3][3]int
		for d := 0; d < 9; d++ {
			w[d/3][d%3] = digits[d] - 1
		}
		if d := detInt(w); d == 1 || d == -1 {
			if preservesMetric(w, g, gTol) {
				out = append(out, w)
			}
		}

		// advance the base-3 counter
		d := 0
		for ; d < 9; d++ {
			digits[d]++
			if digits[d] < 3 {
				break
			}
			digits[d] = 0
		}
		if d == 9 {
			break
		}
	}

	return out
}

// preservesMetric reports whether WᵀGW equals G within tol.
func preservesMetric(w [3][3]int, g [3][3]float64, tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var m float64
			for a := 0; a < 3; a++ {
				for b := 0; b < 3; b++ {
					m += float64(w[a][i]) * g[a][b] * float64(w[b][j])
				}
			}
			if diff := m - g[i][j]; diff > tol || diff < -tol {
				return false
			}
		}
	}

	return true
}

func detInt(w [3][3]int) int {
	return w[0][0]*(w[1][1]*w[2][2]-w[1][2]*w[2][1]) -
		w[0][1]*(w[1][0]*w[2][2]-w[1][2]*w[2][0]) +
		w[0][2]*(w[1][0]*w[2][1]-w[1][1]*w[2][0])
}

func metricArray(cell *crystal.Cell) [3][3]float64 {
	m := cell.Metric()
	var g [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			g[i][j] = m.At(i, j)
		}
	}

	return g
}

func maxAbs3(g [3][3]float64) float64 {
	var best float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := g[i][j]
			if v < 0 {
				v = -v
			}
			if v > best {
				best = v
			}
		}
	}

	return best
}

// containsVec reports whether v matches any listed vector within tol under
// the periodic (minimum-image) component distance.
func containsVec(list [][3]float64, v [3]float64, tol float64) bool {
	for _, u := range list {
		if fracClose(u, v, tol) {
			return true
		}
	}

	return false
}
