// Package cutoff derives distance-based truncation masks for force-constant
// work: which ordered atom tuples may carry nonzero values when
// interactions beyond a radius are neglected.
//
// A Cutoff precomputes minimum-image pair distances once; TripleMask then
// answers, for all N³ ordered atom triples, whether every pairwise distance
// in the triple is within the radius. The rank-3 masked paths of spgrep and
// compress consume that mask directly.
package cutoff
