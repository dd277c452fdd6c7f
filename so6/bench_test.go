package so6_test

import (
	"testing"

	"github.com/tmendel/so6enum/so6"
)

// BenchmarkLeftMulT measures a generator application including the
// terminating canonicalisation: the enumeration's unit of work.
func BenchmarkLeftMulT(b *testing.B) {
	m, err := so6.Replay("0 9 14 2 7")
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.LeftMulT(i % so6.NumGenerators); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCanonicalize isolates the dominant cost.
func BenchmarkCanonicalize(b *testing.B) {
	m, err := so6.Replay("0 9 14 2 7 11")
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Canonicalize()
	}
}

// BenchmarkMul measures full cubic multiplication with zero skipping.
func BenchmarkMul(b *testing.B) {
	x, err := so6.Replay("0 9 14")
	if err != nil {
		b.Fatal(err)
	}
	y, err := so6.Replay("2 7 11")
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Mul(y)
	}
}
