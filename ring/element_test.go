package ring_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmendel/so6enum/ring"
)

// TestReduced_FixedPoint verifies reduce(reduce(x)) == reduce(x).
func TestReduced_FixedPoint(t *testing.T) {
	cases := []ring.Element{
		ring.New(4, 2, 5),
		ring.New(0, 4, 6),
		ring.New(2, 0, 1),
		ring.New(-8, -4, 4),
		ring.New(3, 2, 0),
		ring.New(0, 0, 7),
	}
	for _, c := range cases {
		once := c.Reduced()
		assert.Equal(t, once, once.Reduced(), "reduce must be idempotent for %v", c)
	}
}

// TestReduced_Zero confirms that every representation of zero normalises
// to the exclusive (0,0,0) form.
func TestReduced_Zero(t *testing.T) {
	assert.Equal(t, ring.Zero(), ring.New(0, 0, 5).Reduced())
	assert.Equal(t, ring.Zero(), ring.New(0, 0, -3).Reduced())
}

// TestReduced_OddLeading checks that a reduced non-zero element has an
// odd A component, and that elements with odd A are already reduced.
func TestReduced_OddLeading(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		a := int8(rng.Intn(31) - 15)
		if a&1 == 0 {
			a++ // force odd
		}
		b := int8(rng.Intn(31) - 15)
		k := int8(rng.Intn(9))
		e := ring.New(a, b, k)
		assert.Equal(t, e, e.Reduced(), "odd A must be a reduction fixed point")
	}
}

// TestReduced_HalvesEvenPairs exercises the two reduction moves directly.
func TestReduced_HalvesEvenPairs(t *testing.T) {
	// (4 + 2√2)/√2^6 → halve once to (2,1), then swap-and-halve to (1,1).
	assert.Equal(t, ring.New(1, 1, 3), ring.New(4, 2, 6).Reduced())
	// Only A even: (2 + 1√2)/√2^4 → swap to (1 + 1√2)/√2^3.
	assert.Equal(t, ring.New(1, 1, 3), ring.New(2, 1, 4).Reduced())
	// Pure √2 component normalises into the A slot.
	assert.Equal(t, ring.New(1, 0, 0), ring.New(0, 1, 1).Reduced())
}

// TestAdd_EqualExponents checks that the Δ=0 path reduces.
func TestAdd_EqualExponents(t *testing.T) {
	// 1/√2 + 1/√2 = 2/√2 = √2: the raw sum (2,0,1) is halved to (1,0,-1).
	got := ring.New(1, 0, 1).Add(ring.New(1, 0, 1))
	// (2+0√2)/√2 = 2/√2 = √2 = (0,1,0); reduction swaps to keep A odd.
	assert.Equal(t, ring.New(0, 1, 0).Reduced(), got)
	assert.Equal(t, got, got.Reduced(), "Δ=0 sums must come out reduced")
}

// TestAdd_UnequalExponents checks alignment without reduction.
func TestAdd_UnequalExponents(t *testing.T) {
	// 1 + 1/√2: align 1 = √2/√2 → (0+1·√2)/√2; sum = (1 + 1·√2)/√2.
	got := ring.New(1, 0, 0).Add(ring.New(1, 0, 1))
	assert.Equal(t, ring.New(1, 1, 1), got)

	// Same value either way round.
	assert.Equal(t, got, ring.New(1, 0, 1).Add(ring.New(1, 0, 0)))
}

// TestAdd_ZeroIdentity confirms both zero shortcuts.
func TestAdd_ZeroIdentity(t *testing.T) {
	x := ring.New(3, -1, 4)
	assert.Equal(t, x, x.Add(ring.Zero()))
	assert.Equal(t, x, ring.Zero().Add(x))
}

// TestReduce_AddHomomorphism verifies
// reduce(x+y) == reduce(reduce(x) + reduce(y)) over random operands.
func TestReduce_AddHomomorphism(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		// Operands must be valid ring representations (non-zero A or
		// true zero); scaled-but-unreduced forms arise by doubling.
		x := randomReduced(rng)
		y := randomReduced(rng)
		scaled := ring.New(x.A<<1, x.B<<1, x.K+2)

		direct := scaled.Add(y).Reduced()
		viaReduced := scaled.Reduced().Add(y.Reduced()).Reduced()
		assert.Equal(t, direct, viaReduced, "x=%v y=%v", x, y)
	}
}

// TestSub_RoundTrip verifies x + y - y == x for random reduced operands.
func TestSub_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		x := randomReduced(rng)
		y := randomReduced(rng)
		got := x.Add(y).Sub(y)
		assert.Equal(t, x.Reduced(), got.Reduced(), "x=%v y=%v", x, y)
	}
}

// TestMul_Formula spot-checks the product formula against hand results.
func TestMul_Formula(t *testing.T) {
	// (1+√2)(1+√2) = 3 + 2√2
	assert.Equal(t, ring.New(3, 2, 0), ring.New(1, 1, 0).Mul(ring.New(1, 1, 0)))
	// (1/√2)² = 1/2 = (1+0√2)/√2²
	assert.Equal(t, ring.New(1, 0, 2), ring.InvSqrt2().Mul(ring.InvSqrt2()))
	// Exponents accumulate.
	assert.Equal(t, ring.New(1, 0, 5), ring.New(1, 0, 2).Mul(ring.New(1, 0, 3)))
}

// TestDiv_ExactAndRejecting covers the exact path and ErrNonDividing.
func TestDiv_ExactAndRejecting(t *testing.T) {
	x := ring.New(1, 1, 0)
	y := ring.New(3, -2, 1)
	prod := x.Mul(y)

	q, err := prod.Div(y)
	require.NoError(t, err)
	assert.Equal(t, x, q)

	q, err = prod.Div(x)
	require.NoError(t, err)
	assert.Equal(t, y, q)

	_, err = ring.New(1, 0, 0).Div(ring.New(3, 0, 0))
	assert.ErrorIs(t, err, ring.ErrNonDividing)

	// Zero dividend never errors.
	q, err = ring.Zero().Div(ring.New(3, 0, 0))
	require.NoError(t, err)
	assert.True(t, q.IsZero())
}

// TestCmp_Lexicographic verifies the component ordering.
func TestCmp_Lexicographic(t *testing.T) {
	assert.Equal(t, -1, ring.New(1, 5, 5).Cmp(ring.New(2, 0, 0)))
	assert.Equal(t, 1, ring.New(2, 1, 0).Cmp(ring.New(2, 0, 9)))
	assert.Equal(t, -1, ring.New(2, 1, 0).Cmp(ring.New(2, 1, 1)))
	assert.Equal(t, 0, ring.New(2, 1, 3).Cmp(ring.New(2, 1, 3)))
}

// TestAbsAndSign covers Abs and IsNegative.
func TestAbsAndSign(t *testing.T) {
	assert.Equal(t, ring.New(3, -1, 2), ring.New(-3, 1, 2).Abs())
	assert.Equal(t, ring.New(3, 1, 2), ring.New(3, 1, 2).Abs())
	assert.True(t, ring.New(-1, 4, 0).IsNegative())
	assert.False(t, ring.New(1, -4, 0).IsNegative())
	assert.False(t, ring.Zero().IsNegative())
}

// TestRaiseDE confirms the zero element is never given an exponent.
func TestRaiseDE(t *testing.T) {
	z := ring.Zero()
	z.RaiseDE()
	assert.Equal(t, ring.Zero(), z)

	e := ring.New(1, 1, 2)
	e.RaiseDE()
	assert.Equal(t, ring.New(1, 1, 3), e)
}

// TestString checks the dump format.
func TestString(t *testing.T) {
	assert.Equal(t, "-1,2e3", ring.New(-1, 2, 3).String())
}

// randomReduced draws a small reduced element with odd A.
func randomReduced(rng *rand.Rand) ring.Element {
	a := int8(rng.Intn(15) - 7)
	if a&1 == 0 {
		a++
	}
	return ring.New(a, int8(rng.Intn(15)-7), int8(rng.Intn(6)))
}
