// SPDX-License-Identifier: MIT

package rowmul_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rowmul/matrix"
)

var (
	fixtureA = [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	fixtureB = [][]int{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}}
	fixtureC = [][]int{{30, 24, 18}, {84, 69, 54}, {138, 114, 90}}
)

func mustFrom(t testing.TB, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func mustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// randomSquare returns an n×n matrix with values in [-50, 50), fixed by seed.
func randomSquare(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustDense(t, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, rng.Intn(100)-50))
		}
	}

	return m
}

func mustMul(t testing.TB, a, b *matrix.Dense) *matrix.Dense {
	t.Helper()
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return c
}
