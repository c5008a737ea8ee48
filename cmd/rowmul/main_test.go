package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rowmul/rowmul"
)

const wantReport = "Resultant Matrix C = A x B:\n" +
	"  30  24  18\n" +
	"  84  69  54\n" +
	" 138 114  90\n"

func TestRootCmd_PrintsProduct(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Equal(t, wantReport, out.String())
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestRun_SpawnFailureIsReported(t *testing.T) {
	errBoom := errors.New("boom")
	spawner := rowmul.SpawnerFunc(func(row int, fn func()) error {
		if row == 1 {
			return errBoom
		}
		go fn()
		return nil
	})

	var out bytes.Buffer
	err := run(context.Background(), &out, rowmul.WithSpawner(spawner))
	require.ErrorIs(t, err, rowmul.ErrSpawnFailed)
	require.Contains(t, err.Error(), "row 1")
	require.Empty(t, out.String(), "nothing is printed on failure")
}
