// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major int buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Hand out per-row write handles (RowWriter) so concurrent writers can be
//     confined to disjoint rows by construction.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); RowWriter: O(1).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxRow       = "Row"       // method tag used in error wrappers
	ctxRowWriter = "RowWriter" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w". The sentinel is preserved for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major integer matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int   // row and column counts (>0 for every public constructor)
	data []int // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	buf := make([]int, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFrom builds a Dense from row literals, copying the values.
//
// Implementation:
//   - Stage 1: reject empty input or an empty first row (ErrBadShape).
//   - Stage 2: every row must have the first row's length (ErrBadShape).
//   - Stage 3: copy rows into a fresh flat buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]int) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d cols, want %d: %w", i, len(rows[i]), cols, ErrBadShape)
		}
		copy(m.data[i*cols:(i+1)*cols], rows[i])
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range. Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row r. Mutating the result does not affect m.
// Complexity: O(c).
func (m *Dense) Row(r int) ([]int, error) {
	if r < 0 || r >= m.r {
		return nil, denseErrorf(ctxRow, r, 0, ErrOutOfRange)
	}
	out := make([]int, m.c)
	copy(out, m.data[r*m.c:(r+1)*m.c])

	return out, nil
}

// RowWriter returns the exclusive write handle for row r.
//
// Behavior highlights:
//   - The handle addresses only the cells of row r; no method reaches other rows.
//   - Writes are visible in m without copying.
//   - Handing distinct rows to distinct goroutines is race-free without locks.
//
// Errors:
//   - ErrOutOfRange when r is outside [0, Rows()).
func (m *Dense) RowWriter(r int) (*RowWriter, error) {
	if r < 0 || r >= m.r {
		return nil, denseErrorf(ctxRowWriter, r, 0, ErrOutOfRange)
	}
	lo, hi := r*m.c, (r+1)*m.c

	// Full slice expression caps capacity at the row end.
	return &RowWriter{row: r, cells: m.data[lo:hi:hi]}, nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have the same shape and identical cells.
// Two nil matrices are equal; nil and non-nil are not.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	var i int
	for i = range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String is a human-readable dump of rows for diagnostics.
// Not for hot paths; use Fprint for the fixed-width report format.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.Itoa(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// RowWriter is the write handle for a single row of a Dense.
// It is obtained from Dense.RowWriter and cannot address any other row.
type RowWriter struct {
	row   int
	cells []int // window over the owning Dense buffer; cap == len
}

// Row returns the index of the row this handle owns.
func (w *RowWriter) Row() int { return w.row }

// Len returns the number of cells in the owned row (the matrix column count).
func (w *RowWriter) Len() int { return len(w.cells) }

// Set stores v in column col of the owned row.
// Errors: ErrOutOfRange when col is outside [0, Len()).
func (w *RowWriter) Set(col, v int) error {
	if col < 0 || col >= len(w.cells) {
		return denseErrorf(ctxSet, w.row, col, ErrOutOfRange)
	}
	w.cells[col] = v

	return nil
}
