// File: matrix/example_test.go
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/packmat/matrix"
)

////////////////////////////////////////////////////////////////////////////////
// Example: construction and default-value compression
////////////////////////////////////////////////////////////////////////////////

// ExampleNew demonstrates that unwritten cells read back as the default
// and that a single write leaves the rest of the grid untouched.
func ExampleNew() {
	m, _ := matrix.New(3, 3, matrix.WithDefault(2))
	m, _ = m.Set(matrix.Position{Row: 0, Col: 0}, 8)

	for _, row := range m.ToNested() {
		fmt.Println(row)
	}
	fmt.Println("extent:", m.SparseExtent(), "of", m.Size())

	// Output:
	// [8 2 2]
	// [2 2 2]
	// [2 2 2]
	// extent: 1 of 9
}

////////////////////////////////////////////////////////////////////////////////
// Example: aggregates over a mostly-default grid
////////////////////////////////////////////////////////////////////////////////

// ExampleSum demonstrates the elided-tail correction: only one cell was
// ever written, yet the sum covers the whole grid.
func ExampleSum() {
	m, _ := matrix.New(100, 100, matrix.WithDefault(1))
	m, _ = m.Set(matrix.Position{Row: 0, Col: 5}, 42)

	fmt.Println(matrix.Sum(m))
	// Output:
	// 10041
}

////////////////////////////////////////////////////////////////////////////////
// Example: structural transforms
////////////////////////////////////////////////////////////////////////////////

// ExampleMatrix_Transpose demonstrates the shape swap.
func ExampleMatrix_Transpose() {
	m, _ := matrix.FromNested([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	for _, row := range m.Transpose().ToNested() {
		fmt.Println(row)
	}
	// Output:
	// [1 4]
	// [2 5]
	// [3 6]
}

////////////////////////////////////////////////////////////////////////////////
// Example: resumable reduction
////////////////////////////////////////////////////////////////////////////////

// ExampleReduce demonstrates the suspend/resume protocol: the consumer
// pauses a traversal, does other work, then picks up where it stopped.
func ExampleReduce() {
	m, _ := matrix.FromFlat([]int{10, 20, 30, 40}, 2, 2)

	r := matrix.Reduce(m.Seq(), 0, func(v, acc int) matrix.Command[int] {
		if acc+v >= 30 {
			return matrix.Suspend(acc + v)
		}
		return matrix.Cont(acc + v)
	})
	fmt.Println("paused at:", r.Acc)

	r, _ = r.Resume(r.Acc)
	fmt.Println("state:", r.State == matrix.ReduceSuspended, "acc:", r.Acc)

	// Output:
	// paused at: 30
	// state: true acc: 60
}
