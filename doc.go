// Package so6enum enumerates, up to permutation and sign equivalence,
// the orthogonal 6×6 matrices over Z[1/√2] reachable as products of the
// fifteen T-generators — a complete catalogue of three-qubit Clifford+T
// circuits by T-count.
//
// 🚀 What is so6enum?
//
//	A pure-Go enumeration engine built from four pieces:
//		• ring/      — exact (a + b·√2)/√2^k arithmetic with canonical reduction
//		• so6/       — 6×6 matrices, the generator table, and canonical forms
//		• pattern/   — the packed 72-bit leading-denominator invariant and its
//		  eight-way case classifier
//		• enumerate/ — the parallel breadth-first driver with concurrent
//		  deduplication and the pattern checklist
//
// ✨ Why so6enum?
//
//   - Exact – no floating point anywhere; equality is decidable and the
//     catalogue is trustworthy
//   - Canonical – one representative per orbit under row/column
//     permutations and sign flips keeps frontiers millions of matrices
//     smaller than the raw product count
//   - Parallel – levels fan out across a worker pool; deduplication
//     relies on set membership, never on arrival order
//
// The cmd/so6enum binary wires the pieces together: `run` drives an
// enumeration against a pattern checklist, `replay` reconstructs
// matrices from recorded circuit strings, and `chart` renders a run's
// growth statistics to HTML.
//
// Quick start:
//
//	m, _ := so6.Replay("0 9 14")   // T₀ then T₉ then T₁₄
//	fmt.Println(m.TCount())        // 3
//	p := m.ToPattern()
//	fmt.Println(p.Case())          // coarse class of its denominator structure
//
// See each package's doc.go for the full contract.
package so6enum
