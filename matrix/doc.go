// Package matrix provides the integer matrix primitives used by rowmul.
//
// The matrix package provides:
//
//   - Dense, a row-major int matrix with bounds-checked At/Set that return
//     sentinel errors instead of panicking.
//   - RowWriter, a write handle restricted to a single row of a Dense. It is
//     the only view a parallel row worker ever receives on its output.
//   - Mul, the single-threaded textbook product used as the reference result.
//   - Fprint, the fixed-width text rendering used by the CLI.
//
// Integer arithmetic follows native int semantics; overflow wraps.
//
// See the examples in this package and rowmul for usage patterns.
package matrix
