// SPDX-License-Identifier: MIT

package rowmul

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/rowmul/matrix"
)

// State is the lifecycle state of a Worker. A worker transitions exactly
// once, from Running to Completed or Failed.
type State int32

const (
	// Running: the worker has been created and may be computing its row.
	Running State = iota
	// Completed: every cell of the owned row has been written.
	Completed
	// Failed: the worker could not be started or terminated abnormally.
	Failed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Worker is the handle of one row worker.
type Worker struct {
	row   int
	state atomic.Int32
	done  chan struct{}
	err   error // written before done is closed
}

func newWorker(row int) *Worker {
	return &Worker{row: row, done: make(chan struct{})}
}

// Row returns the index of the output row owned by the worker.
func (w *Worker) Row() int { return w.row }

// State returns the current lifecycle state. Safe for concurrent use.
func (w *Worker) State() State { return State(w.state.Load()) }

// Done is closed once the worker has terminated.
func (w *Worker) Done() <-chan struct{} { return w.done }

// Err returns the termination error. It is nil until Done is closed and nil
// afterwards for a Completed worker.
func (w *Worker) Err() error {
	select {
	case <-w.done:
		return w.err
	default:
		return nil
	}
}

// run executes job and records the outcome. A panic inside job is converted
// into ErrWorkerFailed so it cannot take the process down.
func (w *Worker) run(job func() error) {
	defer close(w.done)
	defer func() {
		if p := recover(); p != nil {
			w.finish(fmt.Errorf("%w: row %d: panic: %v", ErrWorkerFailed, w.row, p))
		}
	}()
	if err := job(); err != nil {
		w.finish(fmt.Errorf("%w: row %d: %w", ErrWorkerFailed, w.row, err))
		return
	}
	w.finish(nil)
}

// abort marks a worker that was never started.
func (w *Worker) abort(err error) {
	w.finish(err)
	close(w.done)
}

func (w *Worker) finish(err error) {
	w.err = err
	if err != nil {
		w.state.Store(int32(Failed))
		return
	}
	w.state.Store(int32(Completed))
}

// computeRow writes row out.Row() of a × b through out. It is the body of
// every worker regardless of strategy.
func computeRow(a, b *matrix.Dense, out *matrix.RowWriter, hook func(row, col int)) error {
	if hook == nil {
		return matrix.MulRow(a, b, out)
	}
	row := out.Row()
	var col int
	for col = 0; col < out.Len(); col++ {
		if err := out.Set(col, matrix.DotRowCol(a, b, row, col)); err != nil {
			return err
		}
		hook(row, col)
	}

	return nil
}
