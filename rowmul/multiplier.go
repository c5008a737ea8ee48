// SPDX-License-Identifier: MIT

// Package rowmul - orchestration: validate, spawn, barrier.
//
// Purpose:
//   - Partition C by row once, before any worker starts.
//   - Hand each worker only its own matrix.RowWriter.
//   - Block in WaitAll until every worker has terminated.
//
// Error policy:
//   - Any spawn failure or worker failure aborts the whole product; C is never
//     returned partially written.

package rowmul

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rowmul/matrix"
)

// Compute returns C = a × b, computing each row of C on its own worker.
//
// Implementation:
//   - Stage 1: validate shapes and worker count.
//   - Stage 2: allocate C (zeroed).
//   - Stage 3: run the configured strategy and wait on the barrier.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
//   - ErrSpawnFailed naming the row that could not be started.
//   - ErrWorkerFailed naming the row whose worker failed.
//   - ctx.Err() when ctx is done before the barrier completes.
func Compute(ctx context.Context, a, b *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	if err := validate(a, b, o); err != nil {
		return nil, err
	}
	c, err := matrix.NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, fmt.Errorf("rowmul: %w", err)
	}

	switch o.strategy {
	case Pool:
		err = computePool(ctx, a, b, c, o)
	default:
		err = computePerRow(ctx, a, b, c, o)
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Spawn starts one worker per row of c. Worker r computes row r of a × b
// into c and touches no other row. The caller must pass the returned workers
// to WaitAll before reading c.
//
// If a worker cannot be started, Spawn waits for the workers already running,
// then returns an error that wraps ErrSpawnFailed and names the row.
func Spawn(ctx context.Context, a, b, c *matrix.Dense, opts ...Option) ([]*Worker, error) {
	o := gatherOptions(opts...)
	if err := validate(a, b, o); err != nil {
		return nil, err
	}
	if err := matrix.ValidateNotNil(c); err != nil {
		return nil, fmt.Errorf("rowmul: output: %w", err)
	}
	if c.Rows() != a.Rows() || c.Cols() != b.Cols() {
		return nil, fmt.Errorf("rowmul: output is %d×%d, want %d×%d: %w",
			c.Rows(), c.Cols(), a.Rows(), b.Cols(), matrix.ErrDimensionMismatch)
	}

	return spawn(ctx, a, b, c, o)
}

// WaitAll blocks until every worker has terminated or ctx is done.
//
// After a nil return every write made by every worker is visible to the
// caller. The first worker error is returned once all workers have
// terminated. If ctx is done first, WaitAll returns ctx.Err() and the workers
// are left to finish on their own.
func WaitAll(ctx context.Context, workers []*Worker) error {
	var g errgroup.Group
	for _, w := range workers {
		g.Go(func() error {
			select {
			case <-w.done:
				return w.err
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	return g.Wait()
}

func computePerRow(ctx context.Context, a, b, c *matrix.Dense, o Options) error {
	workers, err := spawn(ctx, a, b, c, o)
	if err != nil {
		return err
	}

	return WaitAll(ctx, workers)
}

// spawn hands out row writers and starts workers in row order.
func spawn(ctx context.Context, a, b, c *matrix.Dense, o Options) ([]*Worker, error) {
	n := c.Rows()
	workers := make([]*Worker, 0, n)
	var r int
	for r = 0; r < n; r++ {
		if err := ctx.Err(); err != nil {
			drain(workers)
			return nil, err
		}
		out, err := c.RowWriter(r)
		if err != nil {
			drain(workers)
			return nil, fmt.Errorf("rowmul: %w", err)
		}
		w := newWorker(r)
		if err = o.spawner.Spawn(r, func() {
			w.run(func() error { return computeRow(a, b, out, o.cellHook) })
		}); err != nil {
			w.abort(err)
			drain(workers)
			return nil, fmt.Errorf("%w: row %d: %w", ErrSpawnFailed, r, err)
		}
		workers = append(workers, w)
	}

	return workers, nil
}

// drain waits for already started workers so nothing writes into c after an
// aborted spawn returns.
func drain(workers []*Worker) {
	_ = WaitAll(context.Background(), workers)
}

// validate enforces the multiplier contract: square, compatible operands and
// a worker count that maps onto the rows.
func validate(a, b *matrix.Dense, o Options) error {
	if err := matrix.ValidateSquare(a); err != nil {
		return fmt.Errorf("rowmul: a: %w", err)
	}
	if err := matrix.ValidateSquare(b); err != nil {
		return fmt.Errorf("rowmul: b: %w", err)
	}
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return fmt.Errorf("rowmul: %w", err)
	}
	if o.strategy == PerRow && o.workers != 0 && o.workers != a.Rows() {
		return fmt.Errorf("rowmul: %d workers for %d rows: %w", o.workers, a.Rows(), matrix.ErrDimensionMismatch)
	}

	return nil
}
