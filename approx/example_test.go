package approx_test

import (
	"fmt"

	"github.com/katalvlaran/linsolve/approx"
)

func ExamplePolynomial() {
	f := func(x float64) float64 { return 1 + 2*x + 3*x*x }
	c, err := approx.Polynomial(f, 2, 0, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.6f\n", c)
	fmt.Printf("%.6f\n", approx.Horner(c, 1))
	// Output:
	// [1.000000 2.000000 3.000000]
	// 6.000000
}
