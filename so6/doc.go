// Package so6 implements orthogonal 6×6 matrices over Z[1/√2], the
// matrices realised by three-qubit Clifford+T circuits, together with
// the canonical-form machinery that makes their enumeration feasible.
//
// What
//
//   - Matrix stores 36 ring.Element values column-major, a byte-packed
//     history of the generator sequence that built it, and a canonical
//     view: a row permutation, a column permutation, and a sign
//     convention. The physical storage is never reordered; the view
//     selects the representative.
//   - Fifteen transvection generators ("T-matrices"), each acting on one
//     row pair, with an optimised left-multiplication that touches only
//     the two affected rows.
//   - Canonicalize picks the lexicographically minimal member of the
//     orbit under row permutations, column permutations, and independent
//     sign flips. Equality and the deduplication Key are defined on that
//     canonical view.
//   - Per-row and per-column frequency multisets of absolute entry
//     values, maintained in lock-step with every mutation, partition
//     rows and columns into the equivalence classes the canonicaliser
//     enumerates over.
//
// Why
//
//	Two circuits are interchangeable when their matrices differ only by
//	qubit relabelling and sign choices. Enumerating products without a
//	unique representative per orbit would blow up by a factor of up to
//	6!·6!·2^11; canonicalisation after every multiplication keeps the
//	breadth-first frontier tight.
//
// Determinism
//
//	Canonicalize is a pure function of the physical entries: matrices in
//	the same orbit always canonicalise to identical views, so Key is a
//	sound deduplication fingerprint.
package so6
