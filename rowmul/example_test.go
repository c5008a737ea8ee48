package rowmul_test

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/rowmul/matrix"
	"github.com/katalvlaran/rowmul/rowmul"
)

// ExampleCompute multiplies two 3×3 matrices with one worker per row.
func ExampleCompute() {
	a, _ := matrix.NewDenseFrom([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	b, _ := matrix.NewDenseFrom([][]int{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}})

	c, err := rowmul.Compute(context.Background(), a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = matrix.Fprint(os.Stdout, c)
	// Output:
	//   30  24  18
	//   84  69  54
	//  138 114  90
}

// ExampleSpawn drives the spawn phase and the barrier separately.
func ExampleSpawn() {
	a, _ := matrix.NewDenseFrom([][]int{{2, 0}, {0, 2}})
	b, _ := matrix.NewDenseFrom([][]int{{1, 2}, {3, 4}})
	c, _ := matrix.NewDense(2, 2)

	ctx := context.Background()
	workers, err := rowmul.Spawn(ctx, a, b, c)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = rowmul.WaitAll(ctx, workers); err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, w := range workers {
		fmt.Println("row", w.Row(), w.State())
	}
	fmt.Print(c)
	// Output:
	// row 0 completed
	// row 1 completed
	// [2, 4]
	// [6, 8]
}
