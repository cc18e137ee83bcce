package grid_test

import (
	"fmt"

	"github.com/katalvlaran/lvlspd/grid"
)

// ExampleShape_Index demonstrates the linearized addressing used by every
// lvlspd kernel: axis 1 varies fastest, axis 3 slowest.
func ExampleShape_Index() {
	shape, err := grid.NewShape(5, 4, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(shape.Index(0, 0, 0))
	fmt.Println(shape.Index(1, 0, 0))
	fmt.Println(shape.Index(0, 1, 0))
	fmt.Println(shape.Index(0, 0, 1))
	// Output:
	// 0
	// 1
	// 5
	// 20
}

// ExampleField demonstrates basic field arithmetic.
func ExampleField() {
	f := grid.NewField(grid.MustShape(2, 2, 1))
	f.Fill(3)
	f.Scale(2)

	dot, err := f.Dot(f)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("‖f‖² = %g\n", dot)
	// Output:
	// ‖f‖² = 144
}
