// Package ring implements exact arithmetic over Z[1/√2], the ring of
// dyadic rationals extended by √2.
//
// What
//
//   - Element represents a number (A + B·√2)/√2^K with small signed
//     integer components. Sums of equal-exponent operands come out in
//     reduced form; sums that align unequal exponents, and products,
//     keep their scaled form until Reduced is called.
//   - Supports addition (functional and in-place), negation, subtraction,
//     multiplication, exact division, absolute value, and a total
//     lexicographic ordering on the component triple.
//
// Why
//
//   - Entries of orthogonal matrices generated by Clifford+T circuits
//     live in this ring; floating point cannot represent them exactly,
//     and exactness is what makes canonical-form deduplication sound.
//
// Reduction invariant
//
//	A reduced non-zero element has an odd A component. Zero is represented
//	as (0, 0, 0) exclusively. Reduction repeatedly halves both components
//	while both are even (K -= 2), then swaps and halves once more if only
//	A is even (K -= 1).
//
// Complexity: all operations are O(1) on fixed-width integers.
package ring
