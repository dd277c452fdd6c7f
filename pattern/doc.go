// Package pattern implements the 72-bit coarse invariant that classifies
// orthogonal 6×6 matrices over Z[1/√2] by their leading denominator
// structure.
//
// What
//
//   - Pattern packs two bits per matrix cell: the high bit marks a cell
//     holding a maximum-denominator-exponent entry, the low bit an odd
//     √2-component (or a next-to-maximum exponent). Only the "leading
//     digit" structure of a matrix survives the projection.
//   - Case partitions patterns into eight coarse classes by the Hamming
//     weight of the high bit-plane, with row/column tiebreakers.
//   - Orbit enumerates the 6!·2^6 row-permutation / row-mod variants of a
//     pattern, the pattern-level analogue of matrix canonicalisation,
//     used to cross whole equivalence classes off a search checklist.
//   - Parse reads the checklist wire format: one binary line per pattern,
//     72 characters, or 36 characters for the high-bit-only short form.
//
// Why
//
//	The enumeration searches for circuits realising abstract sign
//	patterns predicted by theory. Matching on the full matrix would be
//	hopeless; the lossy projection is cheap to compute, cheap to store,
//	and closed under the transformations the search must ignore.
//
// The projection itself lives with the matrix package (it only needs the
// exponent map, which keeps the dependency one-directional); this package
// receives the projected cells via FromCells.
package pattern
