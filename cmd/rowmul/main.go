// Command rowmul multiplies two fixed 3×3 integer matrices, computing each
// row of the result on its own worker, and prints the product.
//
// Usage:
//
//	rowmul
//
// Output:
//
//	Resultant Matrix C = A x B:
//	  30  24  18
//	  84  69  54
//	 138 114  90
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rowmul/matrix"
	"github.com/katalvlaran/rowmul/rowmul"
)

// size is the fixed dimension of the operands.
const size = 3

// header precedes the printed product.
const header = "Resultant Matrix C = A x B:"

var (
	inputA = [size][size]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	inputB = [size][size]int{
		{9, 8, 7},
		{6, 5, 4},
		{3, 2, 1},
	}
)

func main() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command. opts are forwarded to rowmul.Compute.
func newRootCmd(opts ...rowmul.Option) *cobra.Command {
	return &cobra.Command{
		Use:           "rowmul",
		Short:         "Multiply two fixed 3x3 matrices with one worker per row",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts...)
		},
	}
}

// run computes A × B and writes the report to w.
func run(ctx context.Context, w io.Writer, opts ...rowmul.Option) error {
	a, err := denseOf(inputA)
	if err != nil {
		return err
	}
	b, err := denseOf(inputB)
	if err != nil {
		return err
	}
	c, err := rowmul.Compute(ctx, a, b, opts...)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(w, header); err != nil {
		return err
	}

	return matrix.Fprint(w, c)
}

func denseOf(in [size][size]int) (*matrix.Dense, error) {
	rows := make([][]int, size)
	for i := range in {
		rows[i] = in[i][:]
	}

	return matrix.NewDenseFrom(rows)
}
