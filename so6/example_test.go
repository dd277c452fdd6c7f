package so6_test

import (
	"fmt"

	"github.com/tmendel/so6enum/so6"
)

// ExampleReplay rebuilds a three-gate circuit from its history string;
// the matrix remembers the circuit that built it.
func ExampleReplay() {
	m, err := so6.Replay("0 9 14")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(m.TCount())
	fmt.Println(m.CircuitString())
	fmt.Println(m.IsOrthogonal())
	// Output:
	// 3
	// 0 9 14
	// true
}

// ExampleMatrix_Mul shows history concatenation: the right operand's
// circuit runs first.
func ExampleMatrix_Mul() {
	a, _ := so6.Replay("0 9")
	b, _ := so6.Replay("14")

	fmt.Println(a.Mul(b).CircuitString())
	// Output:
	// 14 0 9
}
