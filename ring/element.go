package ring

import (
	"errors"
	"fmt"
)

// ErrNonDividing is returned by Div when the divisor does not divide the
// dividend exactly in Z[1/√2]. Call sites in this module arrange for the
// divisor to be a factor, so hitting this error indicates a programming
// mistake rather than bad input.
var ErrNonDividing = errors.New("ring: divisor does not divide dividend")

// Element is a value of the ring Z[1/√2], stored as the triple
// (A + B·√2)/√2^K. Eight-bit components suffice for every matrix entry
// this module produces; arithmetic wraps the same way the enumeration's
// reference data was generated, so the width is part of the format.
//
// Elements are plain values: copy freely, compare with Cmp or ==
// (both operands reduced).
type Element struct {
	A int8 // integer part of the numerator
	B int8 // coefficient of √2 in the numerator
	K int8 // denominator exponent: the power of √2 dividing the numerator
}

// New builds the element (a + b·√2)/√2^k without reducing it.
// Use Reduced when canonical component values are required.
func New(a, b, k int8) Element { return Element{A: a, B: b, K: k} }

// Zero returns the ring zero, represented as (0, 0, 0) exclusively.
func Zero() Element { return Element{} }

// One returns the ring unit.
func One() Element { return Element{A: 1} }

// InvSqrt2 returns 1/√2 in reduced form.
func InvSqrt2() Element { return Element{A: 1, K: 1} }

// IsZero reports whether z is the ring zero. A reduced non-zero element
// always has a non-zero A component, so the single test suffices.
func (z Element) IsZero() bool { return z.A == 0 }

// IsNegative reports whether z's leading non-zero component is negative:
// A when A is non-zero, otherwise B. This is the component sign used by
// Abs, not the numeric sign of the value (1 − 4√2 reports false).
func (z Element) IsNegative() bool {
	if z.A < 0 {
		return true
	}
	return z.A == 0 && z.B < 0
}

// Neg returns -z.
func (z Element) Neg() Element { return Element{A: -z.A, B: -z.B, K: z.K} }

// Abs returns z with its leading component made non-negative.
func (z Element) Abs() Element {
	if z.A < 0 {
		return z.Neg()
	}
	return z
}

// Add returns z + o.
func (z Element) Add(o Element) Element {
	z.AddAssign(o)
	return z
}

// Sub returns z - o.
func (z Element) Sub(o Element) Element {
	z.AddAssign(o.Neg())
	return z
}

// AddAssign adds o into z in place.
//
// Operands with unequal exponents are aligned first: the smaller-exponent
// operand's components are scaled by 2^(Δ/2) when the difference Δ is
// even; an odd Δ additionally swaps the components and doubles the new
// integer part. Reduction runs only on the Δ == 0 path; aligned sums
// keep their scaled form, matching how the matrix pipeline expects
// exponents to evolve.
func (z *Element) AddAssign(o Element) {
	if o.A == 0 {
		return
	}
	if z.A == 0 {
		*z = o
		return
	}

	diff := z.K - o.K
	if diff < 0 {
		diff = -diff
	}

	if o.K < z.K {
		if diff&1 == 1 {
			z.A += o.B << ((diff + 1) >> 1)
			z.B += o.A << (diff >> 1)
		} else {
			z.A += o.A << (diff >> 1)
			z.B += o.B << (diff >> 1)
			if diff == 0 {
				z.reduce()
			}
		}
		return
	}

	if diff&1 == 1 {
		z.A, z.B = z.B, z.A
		z.A <<= 1
		diff--
	}
	z.A <<= diff >> 1
	z.B <<= diff >> 1
	z.A += o.A
	z.B += o.B
	aligned := z.K == o.K
	z.K = o.K
	if aligned {
		z.reduce()
	}
}

// Mul returns z × o:
//
//	(a+b√2)/√2^k × (c+d√2)/√2^l = (ac + 2bd + (ad+bc)√2)/√2^(k+l)
//
// The product is not reduced; products feed additions that reduce on
// the aligned path.
func (z Element) Mul(o Element) Element {
	return Element{
		A: z.A*o.A + (z.B*o.B)<<1,
		B: z.A*o.B + z.B*o.A,
		K: z.K + o.K,
	}
}

// Div returns z / o. The quotient is exact only when o is a ring factor
// of z; otherwise Div returns ErrNonDividing. Dividing zero yields zero
// regardless of o.
func (z Element) Div(o Element) (Element, error) {
	if z.A == 0 {
		return Zero(), nil
	}

	// Rationalise: multiply numerator and denominator by the conjugate
	// (c - d√2), whose norm is c² - 2d².
	den := int(o.A)*int(o.A) - 2*int(o.B)*int(o.B)
	if den == 0 {
		return Zero(), fmt.Errorf("%w: zero divisor norm", ErrNonDividing)
	}
	a := int(z.A)*int(o.A) - 2*int(z.B)*int(o.B)
	b := int(z.B)*int(o.A) - int(z.A)*int(o.B)
	if a%den != 0 || b%den != 0 {
		return Zero(), fmt.Errorf("%w: %v / %v", ErrNonDividing, z, o)
	}

	return Element{A: int8(a / den), B: int8(b / den), K: z.K - o.K}, nil
}

// RaiseDE raises the denominator exponent by one, dividing z by √2.
// The zero element is left untouched so that (0,0,0) stays canonical.
func (z *Element) RaiseDE() {
	if z.A != 0 {
		z.K++
	}
}

// Cmp orders elements lexicographically on (A, B, K) and returns
// -1, 0, or +1. This is the component ordering the canonicaliser and
// the frequency multisets rely on, not a numeric ordering.
func (z Element) Cmp(o Element) int {
	switch {
	case z.A != o.A:
		return cmpInt8(z.A, o.A)
	case z.B != o.B:
		return cmpInt8(z.B, o.B)
	default:
		return cmpInt8(z.K, o.K)
	}
}

// Equal reports component equality.
func (z Element) Equal(o Element) bool { return z == o }

// Reduced returns z in its reduced form: both components halved while
// both are even (K -= 2), then one swap-and-halve if only A is even
// (K -= 1). Zero normalises to (0, 0, 0).
func (z Element) Reduced() Element {
	z.reduce()
	return z
}

func (z *Element) reduce() {
	if z.A == 0 && z.B == 0 {
		z.K = 0
		return
	}
	for z.A&1 == 0 && z.B&1 == 0 {
		z.A >>= 1
		z.B >>= 1
		z.K -= 2
	}
	if z.A&1 == 0 {
		z.A, z.B = z.B, z.A>>1
		z.K--
	}
}

// String renders z as "A,BeK" (for example "-1,2e3"), the compact form
// used throughout the project's data dumps.
func (z Element) String() string {
	return fmt.Sprintf("%d,%de%d", z.A, z.B, z.K)
}

func cmpInt8(a, b int8) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
