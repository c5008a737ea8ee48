// Package rowmul multiplies square integer matrices in parallel, one worker
// per output row.
//
// What & Why:
//
//	The output C = A × B is partitioned by row before any worker starts.
//	Worker r receives A and B (read-only) and the matrix.RowWriter for row r
//	of C; it never holds a reference to any other row. Because the partition is
//	a disjoint cover of C, no lock guards the output. The orchestrator blocks
//	in WaitAll until every worker has finished, which makes all worker writes
//	visible before C is returned.
//
// Strategies:
//
//	PerRow (default) spawns exactly Rows() workers, one per row.
//	Pool runs a fixed number of workers that pull row indices from a shared
//	counter; each row is still owned by exactly one worker.
//
// Cancellation:
//
//	If ctx is done before the barrier completes, Compute returns ctx.Err() and
//	discards C. Workers already running are detached and finish on their own.
//
// Usage:
//
//	c, err := rowmul.Compute(ctx, a, b)
//	if err != nil {
//		return err
//	}
package rowmul
