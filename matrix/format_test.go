// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rowmul/matrix"
)

func TestFprint_FixedWidth(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, [][]int{{30, 24, 18}, {84, 69, 54}, {138, 114, 90}})
	var buf bytes.Buffer
	require.NoError(t, matrix.Fprint(&buf, m))
	require.Equal(t, "  30  24  18\n  84  69  54\n 138 114  90\n", buf.String())
}

func TestFprint_WideAndNegative(t *testing.T) {
	t.Parallel()

	// Values wider than the field are not truncated.
	m := MustFrom(t, [][]int{{-1, 12345}})
	var buf bytes.Buffer
	require.NoError(t, matrix.Fprint(&buf, m))
	require.Equal(t, "  -112345\n", buf.String())
}

func TestFprint_Nil(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.ErrorIs(t, matrix.Fprint(&buf, nil), matrix.ErrNilMatrix)
	require.Zero(t, buf.Len())
}
