// SPDX-License-Identifier: MIT
// Package matrix - reference linear algebra kernels.
//
// Purpose:
//   - Provide the single-threaded product every parallel strategy is checked against.
//   - Keep loop orders fixed; integer arithmetic is exact up to native int wrap-around.
//
// Contracts:
//   - Kernels validate through validators.go and wrap failures with matrixErrorf(op, err).
//   - Operands are never mutated; the result is always a fresh Dense.

package matrix

import "fmt"

// operation tags used in error wrappers
const (
	opMul    = "Mul"
	opMulRow = "MulRow"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product a × b computed sequentially.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: allocate Dense(a.Rows, b.Cols).
//   - Stage 3: i-k-j accumulation on the flat buffers (row-major friendly).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(n·k·m), Space O(n·m).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 int
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // contributes nothing
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// DotRowCol returns Σ_k a[row][k]·b[k][col], the inner product behind one cell
// of a × b. Inputs are assumed compatible (ValidateMulCompatible) and in range;
// this is the hot-path kernel for row workers, so it does not re-validate.
func DotRowCol(a, b *Dense, row, col int) int {
	var sum, k int
	base := row * a.c
	for k = 0; k < a.c; k++ {
		sum += a.data[base+k] * b.data[k*b.c+col]
	}

	return sum
}

// MulRow writes row w.Row() of a × b through w.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch from ValidateMulCompatible.
//   - ErrDimensionMismatch when w.Len() != b.Cols().
//   - ErrOutOfRange when w.Row() is not a row of a.
func MulRow(a, b *Dense, w *RowWriter) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opMulRow, err)
	}
	if w.Len() != b.c {
		return matrixErrorf(opMulRow, ErrDimensionMismatch)
	}
	if w.row >= a.r {
		return matrixErrorf(opMulRow, ErrOutOfRange)
	}
	var col int
	for col = 0; col < b.c; col++ {
		w.cells[col] = DotRowCol(a, b, w.row, col)
	}

	return nil
}
