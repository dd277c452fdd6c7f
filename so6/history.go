package so6

import (
	"fmt"
	"strconv"
	"strings"
)

// appendHistory records one generator application. Each history byte
// packs up to two indices shifted by +1, low nibble first; a zero
// nibble marks an empty slot.
func (m *Matrix) appendHistory(p byte) {
	if len(m.hist) == 0 || m.hist[len(m.hist)-1]&0xF0 != 0 {
		m.hist = append(m.hist, p)
		return
	}
	m.hist[len(m.hist)-1] |= p << 4
}

// History returns the packed history bytes.
func (m *Matrix) History() []byte {
	return append([]byte(nil), m.hist...)
}

// TCount returns the number of generator applications recorded in the
// history: the T-count of the circuit that built m.
func (m *Matrix) TCount() int {
	n := 0
	for _, b := range m.hist {
		n++
		if b > 15 {
			n++
		}
	}
	return n
}

// LastGenerator returns the most recently applied generator index, or
// -1 for an empty history.
func (m *Matrix) LastGenerator() int {
	if len(m.hist) == 0 {
		return -1
	}
	b := m.hist[len(m.hist)-1]
	if b > 15 {
		return int(b>>4) - 1
	}
	return int(b&0x0F) - 1
}

// CircuitString renders the history as space-separated decimal
// generator indices in 0..14, oldest first; this is the per-T-count output
// line format.
func (m *Matrix) CircuitString() string {
	if len(m.hist) == 0 {
		return ""
	}
	var b strings.Builder
	for _, h := range m.hist {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(h&0x0F) - 1))
		if h > 15 {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(int(h>>4) - 1))
		}
	}
	return b.String()
}

// Replay rebuilds a matrix from a circuit string: decimal generator
// indices applied to the identity in order, with a single
// canonicalisation at the end.
func Replay(circuit string) (*Matrix, error) {
	m := Identity()
	for _, field := range strings.Fields(circuit) {
		idx, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadHistory, field)
		}
		m, err = m.leftMulT(idx)
		if err != nil {
			return nil, err
		}
	}
	m.Canonicalize()
	return m, nil
}

// ReplayHistory rebuilds a matrix from packed history bytes.
func ReplayHistory(hist []byte) (*Matrix, error) {
	m := Identity()
	var err error
	for _, b := range hist {
		if b&0x0F == 0 {
			return nil, fmt.Errorf("%w: empty low nibble", ErrBadHistory)
		}
		if m, err = m.leftMulT(int(b&0x0F) - 1); err != nil {
			return nil, err
		}
		if b > 15 {
			if m, err = m.leftMulT(int(b>>4) - 1); err != nil {
				return nil, err
			}
		}
	}
	m.Canonicalize()
	return m, nil
}
