package so6

import (
	"fmt"
	"strings"

	"github.com/tmendel/so6enum/pattern"
	"github.com/tmendel/so6enum/ring"
)

// Dim is the matrix dimension.
const Dim = 6

// Matrix is an orthogonal 6×6 matrix over Z[1/√2].
//
// The physical storage arr is column-major and never reordered; Row,
// Col, and sign are the canonical view computed by Canonicalize.
// The per-row and per-column frequency multisets are maintained in
// lock-step with every entry mutation and define the equivalence
// classes canonicalisation permutes within.
type Matrix struct {
	arr [Dim][Dim]ring.Element // arr[col][row]

	hist []byte // packed generator indices, two per byte

	Row  [Dim]uint8
	Col  [Dim]uint8
	sign uint16

	rowFreq [Dim]freqMap
	colFreq [Dim]freqMap
}

// resetView installs the identity view (all signs positive) that a
// freshly built matrix carries before canonicalisation.
func (m *Matrix) resetView() {
	for i := 0; i < Dim; i++ {
		m.Row[i] = uint8(i)
		m.Col[i] = uint8(i)
	}
	m.sign = 0
	for i := 0; i < Dim; i++ {
		m.sign = withSign(m.sign, i, SignPositive)
	}
}

// zero returns an all-zero matrix with consistent frequency maps and an
// identity view.
func zero() *Matrix {
	m := &Matrix{}
	m.resetView()
	for i := 0; i < Dim; i++ {
		m.rowFreq[i] = freqMap{{val: ring.Zero(), n: Dim}}
		m.colFreq[i] = freqMap{{val: ring.Zero(), n: Dim}}
	}
	return m
}

// Identity returns the canonical identity matrix with empty history.
func Identity() *Matrix {
	m := zero()
	for d := 0; d < Dim; d++ {
		m.set(d, d, ring.One())
	}
	m.Canonicalize()
	return m
}

// FromEntries builds a matrix from entries indexed [row][col], without
// canonicalising. The caller owns the claim that the entries form an
// orthogonal matrix; IsOrthogonal checks it.
func FromEntries(entries [Dim][Dim]ring.Element) *Matrix {
	m := zero()
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			m.set(r, c, entries[r][c])
		}
	}
	return m
}

// At returns the physical entry at (row, col).
func (m *Matrix) At(row, col int) ring.Element { return m.arr[col][row] }

// CanonicalAt returns the entry at canonical position (row, col): the
// physical entry selected by the Row and Col views, without sign
// adjustment.
func (m *Matrix) CanonicalAt(row, col int) ring.Element {
	return m.arr[m.Col[col]][m.Row[row]]
}

// Sign returns the packed sign convention of the canonical view.
func (m *Matrix) Sign() uint16 { return m.sign }

// set stores v at (row, col), keeping both frequency multisets
// consistent.
func (m *Matrix) set(row, col int, v ring.Element) {
	old := m.arr[col][row]
	if old == v {
		return
	}
	m.rowFreq[row].remove(old.Abs())
	m.colFreq[col].remove(old.Abs())
	m.arr[col][row] = v
	m.rowFreq[row].add(v.Abs())
	m.colFreq[col].add(v.Abs())
}

// Clone returns a deep copy sharing nothing with m.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		arr:  m.arr,
		hist: append([]byte(nil), m.hist...),
		Row:  m.Row,
		Col:  m.Col,
		sign: m.sign,
	}
	for i := 0; i < Dim; i++ {
		out.rowFreq[i] = m.rowFreq[i].clone()
		out.colFreq[i] = m.colFreq[i].clone()
	}
	return out
}

// Mul returns m·o. Ordinary cubic multiplication over the ring, with
// inner iterations skipped when either factor is ring zero. The
// product's history is o's history followed by m's, and its view is
// left un-canonicalised; callers canonicalise when they need the
// representative.
func (m *Matrix) Mul(o *Matrix) *Matrix {
	prod := zero()
	prod.hist = make([]byte, 0, len(o.hist)+len(m.hist))
	prod.hist = append(prod.hist, o.hist...)
	prod.hist = append(prod.hist, m.hist...)

	var acc [Dim][Dim]ring.Element
	for row := 0; row < Dim; row++ {
		for k := 0; k < Dim; k++ {
			left := m.arr[k][row]
			if left.IsZero() {
				continue
			}
			for col := 0; col < Dim; col++ {
				right := o.arr[col][k]
				if right.IsZero() {
					continue
				}
				acc[col][row].AddAssign(left.Mul(right))
			}
		}
	}
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			prod.set(r, c, acc[c][r])
		}
	}
	return prod
}

// Transpose returns the physical transpose with an empty history.
func (m *Matrix) Transpose() *Matrix {
	out := zero()
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			out.set(r, c, m.arr[r][c])
		}
	}
	return out
}

// IsOrthogonal reports whether m·mᵀ is the identity over the ring.
func (m *Matrix) IsOrthogonal() bool {
	for r := 0; r < Dim; r++ {
		for s := r; s < Dim; s++ {
			var dot ring.Element
			for c := 0; c < Dim; c++ {
				dot.AddAssign(m.arr[c][r].Mul(m.arr[c][s]))
			}
			dot = dot.Reduced()
			if r == s {
				if !dot.Equal(ring.One()) {
					return false
				}
			} else if !dot.IsZero() {
				return false
			}
		}
	}
	return true
}

// LDE returns the largest denominator exponent across all entries.
func (m *Matrix) LDE() int8 {
	var max int8
	first := true
	for c := 0; c < Dim; c++ {
		for r := 0; r < Dim; r++ {
			k := m.arr[c][r].K
			if first || k > max {
				max = k
				first = false
			}
		}
	}
	return max
}

// ToPattern projects m onto its 72-bit leading-denominator pattern.
// Only the exponent map matters: with L the largest exponent, a cell is
// "high" when its entry sits at L with a non-zero integer part, and
// "low" when it sits at L−1, or at L with an odd √2-component.
func (m *Matrix) ToPattern() pattern.Pattern {
	lde := m.LDE()
	var cells pattern.Cells
	for c := 0; c < Dim; c++ {
		for r := 0; r < Dim; r++ {
			z := m.arr[c][r]
			if z.IsZero() || z.K < lde-1 {
				continue
			}
			if z.K == lde {
				cells[r][c] = pattern.Cell{High: true, Low: z.B&1 == 1}
				continue
			}
			cells[r][c] = pattern.Cell{Low: true}
		}
	}
	return pattern.FromCells(cells)
}

// String renders the canonical view row by row, entries in the compact
// ring form, sign convention applied.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < Dim; i++ {
		left, right := "| ", " |"
		switch i {
		case 0:
			left, right = "⌈ ", " ⌉"
		case Dim - 1:
			left, right = "⌊ ", " ⌋"
		}
		b.WriteString(left)
		for j := 0; j < Dim; j++ {
			v := m.CanonicalAt(i, j)
			if signAt(m.sign, i) == SignNegative {
				v = v.Neg()
			}
			fmt.Fprintf(&b, "%8s", v)
		}
		b.WriteString(right)
		b.WriteByte('\n')
	}
	return b.String()
}
