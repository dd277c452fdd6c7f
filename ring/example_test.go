package ring_test

import (
	"fmt"

	"github.com/tmendel/so6enum/ring"
)

// ExampleElement_Add shows exponent alignment: adding 1 and 1/√2 scales
// the unit into the √2-denominator frame before summing components.
func ExampleElement_Add() {
	one := ring.One()
	half := ring.InvSqrt2()

	fmt.Println(one.Add(half))
	// Output:
	// 1,1e1
}

// ExampleElement_Reduced demonstrates the canonical form: both
// components even halves the pair, a lone even A swaps and halves.
func ExampleElement_Reduced() {
	fmt.Println(ring.New(4, 2, 6).Reduced())
	fmt.Println(ring.New(2, 1, 4).Reduced())
	// Output:
	// 1,1e3
	// 1,1e3
}
