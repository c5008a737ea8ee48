// SPDX-License-Identifier: MIT

// Package rowmul: functional configuration for Compute and Spawn.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global state; every call resolves its own Options.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package rowmul

import "fmt"

// Strategy selects how rows are distributed over workers.
type Strategy int

const (
	// PerRow spawns exactly one worker per output row.
	PerRow Strategy = iota

	// Pool runs a fixed set of workers that pull row indices from a shared
	// counter. Each row is still computed by exactly one worker.
	Pool
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case PerRow:
		return "per-row"
	case Pool:
		return "pool"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultStrategy is one worker per row.
	DefaultStrategy = PerRow

	// DefaultWorkers = 0 means "derive": Rows() under PerRow,
	// GOMAXPROCS capped at Rows() under Pool.
	DefaultWorkers = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicStrategyInvalid = "rowmul: WithStrategy: unknown strategy"
	panicWorkersInvalid  = "rowmul: WithWorkers: workers must be >= 0"
	panicSpawnerNil      = "rowmul: WithSpawner: spawner must be non-nil"
)

// Spawner starts fn on a new concurrent execution context on behalf of the
// worker that owns row. A non-nil error means the context could not be
// created and fn will never run.
type Spawner interface {
	Spawn(row int, fn func()) error
}

// SpawnerFunc adapts a plain function to Spawner.
type SpawnerFunc func(row int, fn func()) error

// Spawn calls f(row, fn).
func (f SpawnerFunc) Spawn(row int, fn func()) error { return f(row, fn) }

// goSpawner starts every worker on its own goroutine. Goroutine creation
// cannot fail, so Spawn always returns nil.
type goSpawner struct{}

func (goSpawner) Spawn(_ int, fn func()) error {
	go fn()

	return nil
}

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	strategy Strategy
	workers  int
	spawner  Spawner
	cellHook func(row, col int)
}

// WithStrategy selects the row distribution strategy.
// Panics on an unknown Strategy value.
func WithStrategy(s Strategy) Option {
	if s != PerRow && s != Pool {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.strategy = s }
}

// WithWorkers sets the requested worker count.
//
// Under PerRow a non-zero n must equal the row count; Compute reports
// matrix.ErrDimensionMismatch otherwise. Under Pool, n is capped at the row
// count and 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithSpawner replaces the goroutine launcher used by the PerRow strategy.
// Intended for instrumentation and for injecting spawn failures in tests.
func WithSpawner(s Spawner) Option {
	if s == nil {
		panic(panicSpawnerNil)
	}

	return func(o *Options) { o.spawner = s }
}

// WithCellHook installs fn to run on the worker goroutine right after the
// worker has written cell (row, col). fn must be safe for concurrent use.
// A nil fn removes the hook.
func WithCellHook(fn func(row, col int)) Option {
	return func(o *Options) { o.cellHook = fn }
}

// gatherOptions applies user-provided setters on top of the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		strategy: DefaultStrategy,
		workers:  DefaultWorkers,
		spawner:  goSpawner{},
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
