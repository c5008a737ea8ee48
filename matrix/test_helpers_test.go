// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense and the reference kernels.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rowmul/matrix"
)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFrom BUILDS a *Dense from row literals or fails the test.
func MustFrom(t testing.TB, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom(%v): %v", rows, err)
	}

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) int {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomDense FILLS an r×c *Dense with values in [-50, 50) from seed.
// Deterministic for a fixed seed.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err := m.Set(i, j, rng.Intn(100)-50); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// naiveMul is the textbook i-j-k triple loop over the public accessors,
// kept independent from the package kernels.
func naiveMul(t testing.TB, a, b *matrix.Dense) *matrix.Dense {
	t.Helper()
	out := MustDense(t, a.Rows(), b.Cols())
	var i, j, k, sum int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < b.Cols(); j++ {
			sum = 0
			for k = 0; k < a.Cols(); k++ {
				sum += MustAt(t, a, i, k) * MustAt(t, b, k, j)
			}
			if err := out.Set(i, j, sum); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return out
}
