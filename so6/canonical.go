package so6

import (
	"sort"

	"github.com/tmendel/so6enum/ring"
)

// signRounds caps the sign-propagation fixed point. If the vote has not
// settled after this many passes, canonicalisation falls back to the
// full enumeration of 32 sign masks.
const signRounds = 8

// eqClass is one row- or column-equivalence class: the indices sharing
// a frequency multiset, ordered by that multiset's key.
type eqClass struct {
	key     freqMap
	members []uint8
}

// classesFor groups indices 0..5 by equal frequency multiset and orders
// the classes by their key. Members enter in ascending index order.
func classesFor(freqs *[Dim]freqMap) []eqClass {
	var classes []eqClass
	for i := 0; i < Dim; i++ {
		placed := false
		for j := range classes {
			if classes[j].key.equal(freqs[i]) {
				classes[j].members = append(classes[j].members, uint8(i))
				placed = true
				break
			}
		}
		if !placed {
			classes = append(classes, eqClass{key: freqs[i], members: []uint8{uint8(i)}})
		}
	}
	sort.SliceStable(classes, func(a, b int) bool {
		return classes[a].key.cmp(classes[b].key) < 0
	})
	return classes
}

// flattenInto concatenates class members into a permutation array.
func flattenInto(perm *[Dim]uint8, classes []eqClass) {
	i := 0
	for _, cls := range classes {
		copy(perm[i:], cls.members)
		i += len(cls.members)
	}
}

// nextClassPermutation advances the Cartesian product of intra-class
// permutations, odometer style: the first class with a lexicographic
// successor advances, earlier classes reset to ascending order.
// Returns false when the product is exhausted.
func nextClassPermutation(classes []eqClass) bool {
	for i := range classes {
		if nextPermutationU8(classes[i].members) {
			return true
		}
		sort.Slice(classes[i].members, func(a, b int) bool {
			return classes[i].members[a] < classes[i].members[b]
		})
	}
	return false
}

// nextPermutationU8 advances s to its lexicographic successor in place,
// returning false when s was the final permutation.
func nextPermutationU8(s []uint8) bool {
	i := len(s) - 2
	for i >= 0 && s[i] >= s[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(s) - 1
	for s[j] <= s[i] {
		j--
	}
	s[i], s[j] = s[j], s[i]
	for l, r := i+1, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
	return true
}

// columnView reads physical column physCol in rowPerm order.
func (m *Matrix) columnView(physCol uint8, rowPerm *[Dim]uint8) [Dim]ring.Element {
	var out [Dim]ring.Element
	for i := 0; i < Dim; i++ {
		out[i] = m.arr[physCol][rowPerm[i]]
	}
	return out
}

// lexCmpColumns compares two column vectors under possibly different
// sign masks and returns -1, 0, or +1 for a < b, a == b, a > b.
//
// The walk first skips positions where both vectors vanish. At the
// first position where only one side is non-zero, the zero side is the
// GREATER one, a deliberate quirk of the ordering, preserved so that
// canonical forms place their non-zeros as early as possible. When both
// sides are non-zero, each mask is flipped globally as needed to make
// its first non-zero positive; subsequent entries compare under the
// adjusted masks, descending, with the same zero-beats-non-zero rule.
func lexCmpColumns(a [Dim]ring.Element, maskA uint16, b [Dim]ring.Element, maskB uint16) int {
	i := 0
	for ; i < Dim; i++ {
		az, bz := a[i].IsZero(), b[i].IsZero()
		if az && bz {
			continue
		}
		if az {
			return 1
		}
		if bz {
			return -1
		}
		if (a[i].A < 0) != (signAt(maskA, i) == SignNegative) {
			maskA = ^maskA
		}
		if (b[i].A < 0) != (signAt(maskB, i) == SignNegative) {
			maskB = ^maskB
		}
		break
	}

	for ; i < Dim; i++ {
		av, bv := a[i], b[i]
		if signAt(maskA, i) == SignNegative {
			av = av.Neg()
		}
		if signAt(maskB, i) == SignNegative {
			bv = bv.Neg()
		}
		c := bv.Cmp(av)
		if c == 0 {
			continue
		}
		if a[i].IsZero() {
			return 1
		}
		if b[i].IsZero() {
			return -1
		}
		return c
	}
	return 0
}

// Canonicalize computes the canonical view of m: the (Row, Col, sign)
// triple whose sign-adjusted column sequence is minimal over the orbit
// of intra-class row permutations, intra-class column orderings, and
// sign masks over the last five canonical rows (the first row's sign is
// pinned positive; a global flip is redundant).
//
// The physical entries are never touched; canonicalisation is
// idempotent and a pure function of the entries.
func (m *Matrix) Canonicalize() {
	rowClasses := classesFor(&m.rowFreq)
	colClasses := classesFor(&m.colFreq)

	var bestRow, bestCol [Dim]uint8
	var bestSign uint16
	haveBest := false

	for {
		var rp [Dim]uint8
		flattenInto(&rp, rowClasses)

		for _, sc := range m.signCandidates(&rp, colClasses) {
			cp := m.sortedColPerm(colClasses, &rp, sc)
			if !haveBest {
				bestRow, bestCol, bestSign = rp, cp, sc
				haveBest = true
				continue
			}
			if m.candidateBeats(&bestRow, &bestCol, bestSign, &rp, &cp, sc) {
				bestRow, bestCol, bestSign = rp, cp, sc
			}
		}

		if !nextClassPermutation(rowClasses) {
			break
		}
	}

	m.Row, m.Col, m.sign = bestRow, bestCol, bestSign
}

// sortedColPerm orders each column class by the lexicographic order of
// its column vectors under the given row permutation and sign mask,
// then concatenates the classes into a full column permutation.
func (m *Matrix) sortedColPerm(colClasses []eqClass, rp *[Dim]uint8, sc uint16) [Dim]uint8 {
	var cp [Dim]uint8
	idx := 0
	for _, cls := range colClasses {
		mem := append([]uint8(nil), cls.members...)
		sort.SliceStable(mem, func(i, j int) bool {
			a := m.columnView(mem[i], rp)
			b := m.columnView(mem[j], rp)
			return lexCmpColumns(a, sc, b, sc) < 0
		})
		copy(cp[idx:], mem)
		idx += len(mem)
	}
	return cp
}

// candidateBeats reports whether the candidate view is strictly smaller
// than the best-so-far, comparing all six sign-adjusted columns.
func (m *Matrix) candidateBeats(bestRow, bestCol *[Dim]uint8, bestSign uint16, rp, cp *[Dim]uint8, sc uint16) bool {
	for col := 0; col < Dim; col++ {
		cur := m.columnView(bestCol[col], bestRow)
		cand := m.columnView(cp[col], rp)
		switch lexCmpColumns(cur, bestSign, cand, sc) {
		case 0:
			continue
		case 1:
			return true
		default:
			return false
		}
	}
	return false
}

// signCandidates derives the set of sign masks worth enumerating for a
// given row permutation. A two-way vote propagates row signs into
// column signs and back: a row is positive when the weighted majority
// of its non-zero entries' (column-sign × entry-sign) products is
// positive; an undetermined column takes the sign of its first
// determined non-zero row times that entry's sign. Positions that stay
// unset or conflicted after the fixed point are enumerated both ways.
//
// The fixed point is capped at signRounds passes; if it has not settled
// by then, the full 32-mask enumeration is returned instead.
func (m *Matrix) signCandidates(rp *[Dim]uint8, colClasses []eqClass) []uint16 {
	rowMask := withSign(0, 0, SignPositive)
	var colMask uint16

	converged := false
	for round := 0; round < signRounds; round++ {
		changed := false
		for pos := 0; pos < Dim; pos++ {
			cur := signAt(rowMask, pos)
			if cur == SignUnset || cur == SignConflict {
				if v := m.majorityVote(rp[pos], colMask, colClasses); v != SignUnset {
					rowMask = withSign(rowMask, pos, v)
					changed = true
				}
			}

			rs := signAt(rowMask, pos)
			if rs != SignPositive && rs != SignNegative {
				continue
			}
			for c := 0; c < Dim; c++ {
				cc := signAt(colMask, c)
				if cc == SignPositive || cc == SignNegative {
					continue
				}
				e := m.arr[c][rp[pos]]
				if e.IsZero() {
					continue
				}
				want := rs
				if e.A < 0 {
					want = rs ^ signBits
				}
				colMask = withSign(colMask, c, want)
				changed = true
			}
		}
		if !changed {
			converged = true
			break
		}
	}

	if !converged {
		return allSignMasks()
	}

	masks := []uint16{0}
	for pos := 0; pos < Dim; pos++ {
		s := signAt(rowMask, pos)
		if s == SignPositive || s == SignNegative {
			for i := range masks {
				masks[i] = withSign(masks[i], pos, s)
			}
			continue
		}
		n := len(masks)
		for i := 0; i < n; i++ {
			masks = append(masks, withSign(masks[i], pos, SignNegative))
			masks[i] = withSign(masks[i], pos, SignPositive)
		}
	}
	return masks
}

// majorityVote tallies the sign votes of one physical row over the
// determined columns, class by class: the first class with a non-zero
// total decides.
func (m *Matrix) majorityVote(physRow uint8, colMask uint16, colClasses []eqClass) uint16 {
	total := 0
	for _, cls := range colClasses {
		for _, c := range cls.members {
			s := signAt(colMask, int(c))
			if s != SignPositive && s != SignNegative {
				continue
			}
			e := m.arr[c][physRow]
			if e.IsZero() {
				continue
			}
			if (s == SignNegative) == (e.A < 0) {
				total++
			} else {
				total--
			}
		}
		if total != 0 {
			if total < 0 {
				return SignNegative
			}
			return SignPositive
		}
	}
	return SignUnset
}

// allSignMasks enumerates the 32 masks over canonical rows 1..5 with
// row 0 pinned positive.
func allSignMasks() []uint16 {
	masks := make([]uint16, 0, 32)
	for k := 0; k < 32; k++ {
		sc := withSign(0, 0, SignPositive)
		for l := 1; l < Dim; l++ {
			if k>>(l-1)&1 == 1 {
				sc = withSign(sc, l, SignNegative)
			} else {
				sc = withSign(sc, l, SignPositive)
			}
		}
		masks = append(masks, sc)
	}
	return masks
}

// Compare orders canonical representatives by their sign-adjusted
// column sequences, columns 0..4; the rightmost column is determined by
// the others through orthogonality. Matrices compare equal exactly when
// their canonical views coincide on those columns.
func (m *Matrix) Compare(o *Matrix) int {
	for col := 0; col < Dim-1; col++ {
		a := m.columnView(m.Col[col], &m.Row)
		b := o.columnView(o.Col[col], &o.Row)
		if c := lexCmpColumns(a, m.sign, b, o.sign); c != 0 {
			return c
		}
	}
	return 0
}

// Equals reports canonical equality.
func (m *Matrix) Equals(o *Matrix) bool { return m.Compare(o) == 0 }

// Key returns the deduplication fingerprint: the sign-normalised
// entries of canonical columns 0..4, three bytes per entry. Two
// matrices share a Key exactly when Compare reports equality, so the
// string is safe as a set key.
func (m *Matrix) Key() string {
	var buf [(Dim - 1) * Dim * 3]byte
	i := 0
	for col := 0; col < Dim-1; col++ {
		v := m.columnView(m.Col[col], &m.Row)

		eff := m.sign
		for r := 0; r < Dim; r++ {
			if v[r].IsZero() {
				continue
			}
			if (v[r].A < 0) != (signAt(eff, r) == SignNegative) {
				eff = ^eff
			}
			break
		}

		for r := 0; r < Dim; r++ {
			e := v[r]
			if signAt(eff, r) == SignNegative {
				e = e.Neg()
			}
			buf[i] = byte(e.A)
			buf[i+1] = byte(e.B)
			buf[i+2] = byte(e.K)
			i += 3
		}
	}
	return string(buf[:])
}
