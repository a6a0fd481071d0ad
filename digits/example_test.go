package digits_test

import (
	"fmt"

	"github.com/katalvlaran/acyclic/digits"
)

// ExampleArray packs ternary digits into uint64 words and reads them back.
func ExampleArray() {
	a, _ := digits.New(3, 5)
	_ = a.Set(0, 2)
	_ = a.Set(4, 1)

	for i := 0; i < a.Len(); i++ {
		d, _ := a.Get(i)
		fmt.Print(d)
	}
	fmt.Println()
	// Output:
	// 20001
}

// ExampleArray_ResizeWithZeros shows that digits dropped by a shrink do
// not come back when the array grows again.
func ExampleArray_ResizeWithZeros() {
	a, _ := digits.New(3, 4)
	for i := 0; i < 4; i++ {
		_ = a.Set(i, 2)
	}

	_ = a.ResizeWithZeros(2)
	_ = a.ResizeWithZeros(4)

	for i := 0; i < a.Len(); i++ {
		d, _ := a.Get(i)
		fmt.Print(d)
	}
	fmt.Println()
	// Output:
	// 2200
}
