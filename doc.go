// Package rowmul is the root of a small library and command for multiplying
// square integer matrices in parallel, one worker per output row.
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/     — Dense integer matrix, row write handles, reference product, formatting
//	rowmul/     — the parallel Row-Multiplier: spawn, join/wait barrier, pool strategy
//	cmd/rowmul/ — the no-argument CLI printing the fixed 3×3 product
//	examples/   — runnable comparison of the per-row and pool strategies
//
// Quick example:
//
//	c, err := rowmul.Compute(ctx, a, b)
//
//	go install github.com/katalvlaran/rowmul/cmd/rowmul@latest
package rowmul
