package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadInputs_DIMACS(t *testing.T) {
	graphPath := writeFixture(t, "graph.gr", "p sp 4 4\na 1 2 3\na 2 3 1\na 3 4 5\na 1 4 9\n")
	coordPath := writeFixture(t, "coords.co", "p aux sp co 4\nv 1 0 0\nv 2 0 10\nv 3 10 10\nv 4 10 0\n")

	edges, coords, err := readInputs(graphPath, "dimacs", coordPath)
	require.NoError(t, err)
	require.Len(t, edges, 4)
	require.Len(t, coords, 4)
}

func TestReadInputs_UnknownFormat(t *testing.T) {
	_, _, err := readInputs("anything", "unknown", "anything")
	require.ErrorIs(t, err, ErrInvariantViolation)
}

func TestExitCodeFor(t *testing.T) {
	require.Equal(t, 0, exitCodeFor(nil))
	require.Equal(t, 1, exitCodeFor(ErrInvariantViolation))
	require.Equal(t, 2, exitCodeFor(errors.New("some io failure")))
}
