package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DennisOSRM/toolbox-rs-sub000/core"
	"github.com/DennisOSRM/toolbox-rs-sub000/flow"
	"github.com/DennisOSRM/toolbox-rs-sub000/geo"
	"github.com/DennisOSRM/toolbox-rs-sub000/partition"
)

// twoClusterFixture builds two tightly-connected 4-node clusters joined by
// a single low-capacity bridge edge, separated along the north-south axis
// so Inertial Flow's axis 0 should isolate them with a cheap cut.
func twoClusterFixture() ([]core.InputEdge[flow.ResidualCapacity], []geo.FPCoordinate) {
	heavy := flow.NewResidualCapacity(100)
	bridge := flow.NewResidualCapacity(1)

	coords := []geo.FPCoordinate{
		geo.New(0, 0), geo.New(0, 1), geo.New(0, 2), geo.New(0, 3),
		geo.New(100, 0), geo.New(100, 1), geo.New(100, 2), geo.New(100, 3),
	}

	var edges []core.InputEdge[flow.ResidualCapacity]
	clusterA := []core.NodeID{0, 1, 2, 3}
	clusterB := []core.NodeID{4, 5, 6, 7}
	for _, cluster := range [][]core.NodeID{clusterA, clusterB} {
		for _, u := range cluster {
			for _, v := range cluster {
				if u != v {
					edges = append(edges, core.NewInputEdge(u, v, heavy))
				}
			}
		}
	}
	edges = append(edges, core.NewInputEdge(3, 4, bridge), core.NewInputEdge(4, 3, bridge))
	return edges, coords
}

func TestPartitioner_SplitsAtCheapBridge(t *testing.T) {
	edges, coords := twoClusterFixture()
	p := partition.NewPartitioner(1, 1, 0.25)

	ids, err := p.Partition(edges, coords)
	require.NoError(t, err)
	require.Len(t, ids, 8)

	clusterAID := ids[0]
	for _, v := range []int{1, 2, 3} {
		require.Equal(t, clusterAID, ids[v], "cluster A nodes should share a partition id")
	}
	clusterBID := ids[4]
	for _, v := range []int{5, 6, 7} {
		require.Equal(t, clusterBID, ids[v], "cluster B nodes should share a partition id")
	}
	require.NotEqual(t, clusterAID, clusterBID)
	require.Equal(t, partition.Root(), clusterAID.Parent())
	require.Equal(t, partition.Root(), clusterBID.Parent())
}

func TestPartitioner_RespectsMinCellSize(t *testing.T) {
	edges, coords := twoClusterFixture()
	p := partition.NewPartitioner(4, 100, 0.25)

	ids, err := p.Partition(edges, coords)
	require.NoError(t, err)
	for _, id := range ids {
		require.Equal(t, partition.Root(), id)
	}
}
