package so6

import (
	"errors"

	"github.com/tmendel/so6enum/ring"
)

// Sentinel errors for matrix operations.
var (
	// ErrGeneratorIndex is returned when a generator index lies outside 0..14.
	ErrGeneratorIndex = errors.New("so6: generator index out of range")

	// ErrBadHistory is returned when a history string or byte sequence
	// cannot be replayed.
	ErrBadHistory = errors.New("so6: malformed history")
)

// Sign states of one canonical row position, two bits each.
// Unset and Conflict both mean the position must be enumerated over.
const (
	SignUnset    uint16 = 0b00
	SignPositive uint16 = 0b01
	SignNegative uint16 = 0b10
	SignConflict uint16 = 0b11

	signBits uint16 = 0b11
)

// signAt extracts the two sign bits of position i from a packed mask.
func signAt(mask uint16, i int) uint16 {
	return mask >> (2 * i) & signBits
}

// withSign returns mask with position i replaced by sign.
func withSign(mask uint16, i int, sign uint16) uint16 {
	return mask&^(signBits<<(2*i)) | sign<<(2*i)
}

// freqPair is one distinct absolute value and its multiplicity.
type freqPair struct {
	val ring.Element
	n   uint8
}

// freqMap is the multiset of absolute entry values of one row or
// column, kept sorted by the ring ordering. Six entries at most, so a
// flat sorted slice beats a tree map here.
type freqMap []freqPair

// add increments the multiplicity of v, inserting it in order.
func (f *freqMap) add(v ring.Element) {
	s := *f
	for i := range s {
		switch s[i].val.Cmp(v) {
		case 0:
			s[i].n++
			return
		case 1:
			s = append(s, freqPair{})
			copy(s[i+1:], s[i:])
			s[i] = freqPair{val: v, n: 1}
			*f = s
			return
		}
	}
	*f = append(s, freqPair{val: v, n: 1})
}

// remove decrements the multiplicity of v, dropping it at zero.
// Removing a value that is absent is a programming error upstream; the
// call is a no-op to keep the container total.
func (f *freqMap) remove(v ring.Element) {
	s := *f
	for i := range s {
		if s[i].val.Cmp(v) == 0 {
			s[i].n--
			if s[i].n == 0 {
				*f = append(s[:i], s[i+1:]...)
			}
			return
		}
	}
}

// cmp orders two multisets lexicographically over their sorted
// (value, multiplicity) pairs: the class-key ordering the
// canonicaliser uses to arrange equivalence classes.
func (f freqMap) cmp(o freqMap) int {
	for i := 0; i < len(f) && i < len(o); i++ {
		if c := f[i].val.Cmp(o[i].val); c != 0 {
			return c
		}
		if f[i].n != o[i].n {
			if f[i].n < o[i].n {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(f) < len(o):
		return -1
	case len(f) > len(o):
		return 1
	default:
		return 0
	}
}

func (f freqMap) equal(o freqMap) bool { return f.cmp(o) == 0 }

// clone deep-copies the multiset.
func (f freqMap) clone() freqMap {
	out := make(freqMap, len(f))
	copy(out, f)
	return out
}
