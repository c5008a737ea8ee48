// SPDX-License-Identifier: MIT

package rowmul

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rowmul/matrix"
)

// poolSize resolves the worker count for the Pool strategy: never more
// workers than rows, GOMAXPROCS when unset.
func poolSize(requested, rows int) int {
	if requested <= 0 {
		requested = runtime.GOMAXPROCS(0)
	}

	return max(1, min(requested, rows))
}

// computePool runs a fixed set of workers that claim rows from a shared
// counter. A row index is claimed exactly once, so each row still has a
// single writer. The first failing worker cancels the others.
func computePool(ctx context.Context, a, b, c *matrix.Dense, o Options) error {
	n := c.Rows()
	workers := poolSize(o.workers, n)

	var next atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for range workers {
		g.Go(func() (err error) {
			row := -1
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("%w: row %d: panic: %v", ErrWorkerFailed, row, p)
				}
			}()
			for {
				if err = gctx.Err(); err != nil {
					return err
				}
				row = int(next.Add(1)) - 1
				if row >= n {
					return nil
				}
				out, werr := c.RowWriter(row)
				if werr != nil {
					return fmt.Errorf("rowmul: %w", werr)
				}
				if werr = computeRow(a, b, out, o.cellHook); werr != nil {
					return fmt.Errorf("%w: row %d: %w", ErrWorkerFailed, row, werr)
				}
			}
		})
	}

	return g.Wait()
}
