// Package fcsym derives symmetry-reduced parameterizations of crystal
// lattice force-constant tensors.
//
// Given a periodic supercell, fcsym builds permutation and rotation
// representations of every space-group operation acting on atom indices and
// Cartesian tensor axes, then compresses the rank-3 force-constant parameter
// space down to one representative per lattice-translation orbit and
// projects it onto the symmetry-invariant subspace.
//
// The work is organized under six subpackages:
//
//	crystal/  — immutable periodic cell: lattice, fractional positions, species
//	sparse/   — COO triplet builder and CSR matrices (Add, Mul, Kron, ...)
//	spgrep/   — space-group representations: coset representatives,
//	            rank-K tensor transforms, atom-tuple permutation matrices
//	symfind/  — built-in symmetry backend: operation search, atom matching,
//	            translation-orbit partitioning
//	cutoff/   — distance-based masks over atom triplets
//	compress/ — decompression index maps, compression isometry,
//	            coset projector
//
// A typical pipeline:
//
//	cell, _ := crystal.NewCell(lattice, positions, species)
//	rep, _ := spgrep.NewRep(cell, symfind.NewFinder(), symfind.Resolver{})
//	rr, _ := spgrep.NewRankRep(rep, 3)
//	indep := symfind.IndependentAtoms(rep.TranslationPermutations())
//	proj, _ := compress.CosetProjector(rr, indep)
//
// proj is a sparse, idempotent, symmetric operator whose range is the
// symmetry-invariant subspace of the compressed parameter space; downstream
// solvers consume it together with the compression matrix.
package fcsym
