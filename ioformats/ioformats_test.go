package ioformats_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DennisOSRM/toolbox-rs-sub000/core"
	"github.com/DennisOSRM/toolbox-rs-sub000/ioformats"
	"github.com/DennisOSRM/toolbox-rs-sub000/partition"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadDIMACSGraph(t *testing.T) {
	path := writeTemp(t, "graph.gr", "c a comment\np sp 4 4\na 1 2 3\na 2 3 1\na 3 4 5\na 1 4 9\n")
	edges, err := ioformats.ReadDIMACSGraph(path, ioformats.WeightOriginal)
	require.NoError(t, err)
	require.Equal(t, []core.InputEdge[uint32]{
		core.NewInputEdge[uint32](0, 1, 3),
		core.NewInputEdge[uint32](1, 2, 1),
		core.NewInputEdge[uint32](2, 3, 5),
		core.NewInputEdge[uint32](0, 3, 9),
	}, edges)
}

func TestReadDIMACSGraph_UnitWeights(t *testing.T) {
	path := writeTemp(t, "graph.gr", "p sp 2 1\na 1 2 100\n")
	edges, err := ioformats.ReadDIMACSGraph(path, ioformats.WeightUnit)
	require.NoError(t, err)
	require.Equal(t, uint32(1), edges[0].Data)
}

func TestReadDIMACSCoordinates(t *testing.T) {
	path := writeTemp(t, "coords.co", "p aux sp co 3\nv 1 10 20\nv 2 30 40\nv 3 50 60\n")
	coords, err := ioformats.ReadDIMACSCoordinates(path)
	require.NoError(t, err)
	require.Len(t, coords, 3)
	require.EqualValues(t, 20, coords[0].Lat)
	require.EqualValues(t, 10, coords[0].Lon)
}

func TestReadDDSGGraph(t *testing.T) {
	path := writeTemp(t, "graph.ddsg", "d\n4 3\n0 1 5 0\n1 2 3 1\n2 3 7 2\n3 3 9 3\n")
	edges, err := ioformats.ReadDDSGGraph(path, ioformats.WeightOriginal)
	require.NoError(t, err)
	// edge 0: direction both -> 2 directed edges
	// edge 1: forward -> 1 edge
	// edge 2: reverse -> 1 edge, swapped
	// edge 3: self-loop -> dropped before direction is even considered
	require.Equal(t, []core.InputEdge[uint32]{
		core.NewInputEdge[uint32](0, 1, 5),
		core.NewInputEdge[uint32](1, 0, 5),
		core.NewInputEdge[uint32](1, 2, 3),
		core.NewInputEdge[uint32](3, 2, 7),
	}, edges)
}

func TestReadDDSGGraph_BadHeader(t *testing.T) {
	path := writeTemp(t, "graph.ddsg", "not-d\n")
	_, err := ioformats.ReadDDSGGraph(path, ioformats.WeightOriginal)
	require.ErrorIs(t, err, ioformats.ErrUnexpectedHeader)
}

func TestReadMETISGraph(t *testing.T) {
	path := writeTemp(t, "graph.metis", "3 2\n2\n1 3\n2\n")
	edges, err := ioformats.ReadMETISGraph(path)
	require.NoError(t, err)
	require.Equal(t, []core.InputEdge[uint32]{
		core.NewInputEdge[uint32](0, 1, 1),
		core.NewInputEdge[uint32](1, 0, 1),
		core.NewInputEdge[uint32](1, 2, 1),
		core.NewInputEdge[uint32](2, 1, 1),
	}, edges)
}

func TestPartitionFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.partition")
	ids := []partition.ID{partition.Root(), partition.New(2), partition.New(3)}

	require.NoError(t, ioformats.WritePartitionFile(path, ids))
	read, err := ioformats.ReadPartitionFile(path)
	require.NoError(t, err)
	require.Equal(t, ids, read)
}

func TestWriteAssignmentCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assignment.csv")
	ids := []partition.ID{partition.New(2), partition.New(3)}
	require.NoError(t, ioformats.WriteAssignmentCSV(path, ids))
}

func TestWriteCutCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cut.csv")
	ids := []partition.ID{partition.New(2), partition.New(3)}
	edges := []core.InputEdge[uint32]{
		core.NewInputEdge[uint32](0, 1, 5),
	}
	require.NoError(t, ioformats.WriteCutCSV(path, edges, ids))
}
