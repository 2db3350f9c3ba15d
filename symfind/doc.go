// Package symfind is the built-in symmetry backend for fcsym: it realizes
// the spgrep collaborator contracts without an external symmetry library.
//
// Finder enumerates every integer lattice-basis rotation with entries in
// {-1, 0, +1} that preserves the lattice metric tensor, pairs each with
// candidate fractional translations (images of atom 0 on same-species
// atoms), and keeps the pairs under which every atom maps onto an atom of
// the same species within tolerance. The entry range covers conventional
// cells and diagonal supercells; exotic supercell shapes whose rotations
// need larger integer entries are out of scope.
//
// Resolver independently matches atoms under a given operation, and
// IndependentAtoms partitions atoms into lattice-translation orbits,
// returning one representative per orbit.
//
// The operation set produced by Finder is complete within the searched
// rotation range, hence closed under composition and inversion.
package symfind
