package numeric_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmath/numeric"
)

func ExampleFactorial() {
	f, err := numeric.Factorial(5)
	if err != nil {
		panic(err)
	}
	fmt.Println(f)

	_, err = numeric.Factorial(int8(6))
	fmt.Println(err)
	// Output:
	// 120
	// Factorial: n=6: numeric: result overflows integer type
}

func ExampleSubfactorial() {
	for n := 0; n <= 6; n++ {
		d, _ := numeric.Subfactorial(n)
		fmt.Print(d, " ")
	}
	fmt.Println()
	// Output: 1 0 1 2 9 44 265
}

func ExampleBigFactorial() {
	f, _ := numeric.BigFactorial(30)
	fmt.Println(f)
	// Output: 265252859812191058636308480000000
}
