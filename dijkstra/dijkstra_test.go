package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DennisOSRM/toolbox-rs-sub000/core"
	"github.com/DennisOSRM/toolbox-rs-sub000/dijkstra"
)

func sampleWeightedGraph(t *testing.T) *core.StaticGraph[uint32] {
	t.Helper()
	edges := []core.InputEdge[uint32]{
		core.NewInputEdge[uint32](0, 1, 3),
		core.NewInputEdge[uint32](1, 2, 3),
		core.NewInputEdge[uint32](4, 2, 1),
		core.NewInputEdge[uint32](2, 3, 6),
		core.NewInputEdge[uint32](0, 4, 2),
		core.NewInputEdge[uint32](4, 5, 2),
		core.NewInputEdge[uint32](5, 3, 7),
		core.NewInputEdge[uint32](1, 5, 2),
	}
	g, err := core.NewStaticGraph(edges)
	require.NoError(t, err)
	require.Equal(t, 6, g.NumberOfNodes())
	return g
}

func TestOneToMany_SingleTarget(t *testing.T) {
	g := sampleWeightedGraph(t)
	d := dijkstra.New(g.NumberOfNodes())
	require.NoError(t, d.Run(g, 0, []core.NodeID{3}))
	require.EqualValues(t, 9, d.Distance(3))
}

func TestOneToMany_AllPairs(t *testing.T) {
	g := sampleWeightedGraph(t)
	const no = dijkstra.UnreachableDistance
	results := [6][6]uint32{
		{0, 3, 3, 9, 2, 4},
		{no, 0, 3, 9, no, 2},
		{no, no, 0, 6, no, no},
		{no, no, no, 0, no, no},
		{no, no, 1, 7, 0, 2},
		{no, no, no, 7, no, 0},
	}

	targets := []core.NodeID{0, 1, 2, 3, 4, 5}
	d := dijkstra.New(g.NumberOfNodes())
	for i := 0; i < 6; i++ {
		require.NoError(t, d.Run(g, core.NodeID(i), targets))
		for j := 0; j < 6; j++ {
			require.Equalf(t, results[i][j], d.Distance(core.NodeID(j)), "i=%d j=%d", i, j)
		}
	}
}

func TestOneToMany_PathReconstruction(t *testing.T) {
	g := sampleWeightedGraph(t)
	d := dijkstra.New(g.NumberOfNodes())
	require.NoError(t, d.Run(g, 0, []core.NodeID{3}))
	require.EqualValues(t, 9, d.Distance(3))

	var path []core.NodeID
	for node := core.NodeID(3); ; {
		path = append([]core.NodeID{node}, path...)
		parent := d.Parent(node)
		if parent == node {
			break
		}
		node = parent
	}
	require.Equal(t, []core.NodeID{0, 4, 2, 3}, path)
}

func TestOneToMany_EmptyTargets(t *testing.T) {
	g := sampleWeightedGraph(t)
	d := dijkstra.New(g.NumberOfNodes())
	require.ErrorIs(t, d.Run(g, 0, nil), dijkstra.ErrEmptyTargetSet)
}
