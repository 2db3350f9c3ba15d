// Package crystal models the immutable periodic structure that every other
// fcsym package consumes.
//
// A Cell bundles a 3×3 lattice matrix (rows are basis vectors, in whatever
// length unit the caller uses), N fractional atomic positions wrapped into
// [0,1), and N integer species labels. All validation happens at
// construction; after NewCell returns, the Cell never changes and all
// accessors hand out copies.
//
// Beyond raw storage the package derives the handful of geometric
// quantities the symmetry pipeline needs: the metric tensor (for
// rotation-candidate screening), Cartesian conversion, the cell volume and
// minimum-image pair distances (for distance cutoffs).
package crystal
