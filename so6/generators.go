package so6

import "fmt"

// NumGenerators is the number of T-matrices.
const NumGenerators = 15

// generatorRows enumerates the unordered 2-subsets of {0..5} in the
// fixed order that defines generator indices 0..14.
var generatorRows = [NumGenerators][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
	{1, 2}, {1, 3}, {1, 4}, {1, 5},
	{2, 3}, {2, 4}, {2, 5},
	{3, 4}, {3, 5},
	{4, 5},
}

// GeneratorRows returns the row pair acted on by generator i.
func GeneratorRows(i int) (r1, r2 int, err error) {
	if i < 0 || i >= NumGenerators {
		return 0, 0, fmt.Errorf("%w: %d", ErrGeneratorIndex, i)
	}
	return generatorRows[i][0], generatorRows[i][1], nil
}

// Generator materialises T_i as a matrix: the identity everywhere except
// a 45° rotation block on its row pair. Its history records the single
// generator index.
func Generator(i int) (*Matrix, error) {
	m := Identity()
	return m.LeftMulT(i)
}

// LeftMulT returns T_i · m without touching m.
//
// The transvection acts column by column on the generator's row pair:
//
//	(M[r1,c], M[r2,c]) ← ((M[r1,c]+M[r2,c])/√2, (M[r2,c]−M[r1,c])/√2)
//
// realised as row1 += row2, row2 −= old row1, then a denominator-
// exponent rise on every modified entry. Frequency multisets follow
// each entry in lock-step. The generator index is appended to the
// history and the result is canonicalised.
func (m *Matrix) LeftMulT(i int) (*Matrix, error) {
	out, err := m.leftMulT(i)
	if err != nil {
		return nil, err
	}
	out.Canonicalize()
	return out, nil
}

// leftMulT is LeftMulT without the terminating canonicalisation; replay
// uses it to defer the expensive step to the end of a circuit.
func (m *Matrix) leftMulT(i int) (*Matrix, error) {
	if i < 0 || i >= NumGenerators {
		return nil, fmt.Errorf("%w: %d", ErrGeneratorIndex, i)
	}
	r1, r2 := generatorRows[i][0], generatorRows[i][1]

	out := m.Clone()
	for c := 0; c < Dim; c++ {
		a := out.arr[c][r1]
		b := out.arr[c][r2]

		na := a.Add(b)
		na.RaiseDE()
		nb := b.Sub(a)
		nb.RaiseDE()

		out.set(r1, c, na)
		out.set(r2, c, nb)
	}
	out.appendHistory(byte(i + 1))
	return out, nil
}

// LeftMulTTranspose returns T_iᵀ · m, undoing a LeftMulT step. The
// inverse rotation is
//
//	(M[r1,c], M[r2,c]) ← ((M[r1,c]−M[r2,c])/√2, (M[r1,c]+M[r2,c])/√2)
//
// History is not rewound: walking a circuit backwards is a diagnostic
// operation, not a construction step.
func (m *Matrix) LeftMulTTranspose(i int) (*Matrix, error) {
	if i < 0 || i >= NumGenerators {
		return nil, fmt.Errorf("%w: %d", ErrGeneratorIndex, i)
	}
	r1, r2 := generatorRows[i][0], generatorRows[i][1]

	out := m.Clone()
	for c := 0; c < Dim; c++ {
		a := out.arr[c][r1]
		b := out.arr[c][r2]

		na := a.Sub(b)
		na.RaiseDE()
		nb := a.Add(b)
		nb.RaiseDE()

		out.set(r1, c, na)
		out.set(r2, c, nb)
	}
	out.Canonicalize()
	return out, nil
}
