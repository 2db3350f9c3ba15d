// SPDX-License-Identifier: MIT

package symfind

import (
	"fmt"
	"math"

	"github.com/latticeforge/fcsym/crystal"
	"github.com/latticeforge/fcsym/spgrep"
)

// Resolver matches atoms under a space-group operation. Stateless; the zero
// value is ready to use and implements spgrep.PermutationResolver.
type Resolver struct{}

// ResolvePermutation returns perm with perm[i] = index of the atom that
// atom i is carried onto by op, matched per fractional component under the
// minimum image within tol. Fails with ErrNoMatch when any atom has no
// same-species image or two atoms claim the same image.
// Complexity: O(N²).
func (Resolver) ResolvePermutation(cell *crystal.Cell, op spgrep.Operation, tol float64) ([]int, error) {
	if cell == nil {
		return nil, ErrNilCell
	}
	if tol <= 0 {
		return nil, ErrBadTolerance
	}

	positions := cell.Positions()
	species := cell.Species()
	n := len(positions)

	perm := make([]int, n)
	taken := make([]bool, n)
	for i := 0; i < n; i++ {
		img := applyRotation(op.Rotation, positions[i])
		for k := 0; k < 3; k++ {
			img[k] = wrap(img[k] + op.Translation[k])
		}

		found := -1
		for j := 0; j < n; j++ {
			if species[j] != species[i] {
				continue
			}
			if fracClose(positions[j], img, tol) {
				found = j
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("atom %d: %w", i, ErrNoMatch)
		}
		if taken[found] {
			return nil, fmt.Errorf("atoms collide on image %d: %w", found, ErrNoMatch)
		}
		taken[found] = true
		perm[i] = found
	}

	return perm, nil
}

// applyRotation computes W·x for a fractional position x.
func applyRotation(w [3][3]int, x [3]float64) [3]float64 {
	var out [3]float64
	for i := 0; i < 3; i++ {
		out[i] = float64(w[i][0])*x[0] + float64(w[i][1])*x[1] + float64(w[i][2])*x[2]
	}

	return out
}

// wrap maps a fractional coordinate into [0,1).
func wrap(v float64) float64 {
	w := v - math.Floor(v)
	if w >= 1 {
		w = 0
	}

	return w
}

// fracClose reports per-component minimum-image closeness of two wrapped
// fractional vectors.
func fracClose(a, b [3]float64, tol float64) bool {
	for k := 0; k < 3; k++ {
		d := math.Abs(a[k] - b[k])
		if 1-d < d {
			d = 1 - d
		}
		if d > tol {
			return false
		}
	}

	return true
}
