// Package enumerate drives the breadth-first generation of canonical
// SO(6) matrices by T-count.
//
// What
//
//   - Run grows the frontier level by level: every matrix at T-count k
//     is left-multiplied by each of the fifteen generators, the product
//     canonicalised, and inserted into the next level's concurrent set.
//     Winners of the insertion race that are also absent from the prior
//     level are new discoveries.
//   - A pattern checklist turns discoveries into output: when a new
//     matrix's pattern is still on the list, its circuit string is
//     appended to the per-T-count data file and the pattern's whole
//     row-permutation/row-mod orbit is crossed off.
//   - For the first StoredDepth levels whole frontiers are held in
//     memory. Beyond that the driver switches to free multiplication:
//     retained generating sets (the previous levels pushed through T₀)
//     multiply the last stored frontier, recording pattern hits without
//     deduplication.
//
// Concurrency
//
//	The (S, Tᵢ) work at each level is fanned out over an errgroup worker
//	pool. The prior and current sets are read-only during a level; the
//	next set is write-mostly behind sharded locks; insertion races are
//	benign: set membership, not arrival order, defines the result. The
//	output stream is serialised; line order within a level is therefore
//	non-deterministic and accepted.
//
// Failure
//
//	An I/O error on a level's output file aborts the run. There are no
//	mid-level checkpoints and no retries.
package enumerate
