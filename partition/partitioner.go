package partition

import (
	"golang.org/x/sync/errgroup"

	"github.com/DennisOSRM/toolbox-rs-sub000/core"
	"github.com/DennisOSRM/toolbox-rs-sub000/flow"
	"github.com/DennisOSRM/toolbox-rs-sub000/geo"
	"github.com/DennisOSRM/toolbox-rs-sub000/inertial"
)

// Partitioner recursively bisects a graph with Inertial Flow, assigning
// every node a hierarchical ID that encodes the path of cuts it fell on
// the source side of.
type Partitioner struct {
	maxDepth    uint32
	minCellSize int
	balance     float64
}

// NewPartitioner returns a Partitioner that recurses at most maxDepth
// levels deep and stops bisecting a cell once it has fewer than
// minCellSize nodes, contracting balance's fraction of each axis's
// extremes at every cut.
func NewPartitioner(maxDepth uint32, minCellSize int, balance float64) *Partitioner {
	return &Partitioner{maxDepth: maxDepth, minCellSize: minCellSize, balance: balance}
}

// Partition assigns every node in a graph of len(coords) nodes a
// PartitionID. edges carries the full edge set (with residual
// capacities) and coords the node coordinates, both indexed by the
// node's dense original ID. The returned slice is fully populated: a
// cell that could not be cut further keeps its ancestor's ID as a leaf.
func (p *Partitioner) Partition(edges []core.InputEdge[flow.ResidualCapacity], coords []geo.FPCoordinate) ([]ID, error) {
	ids := make([]ID, len(coords))
	for i := range ids {
		ids[i] = Root()
	}

	nodeSet := make([]core.NodeID, len(coords))
	for i := range nodeSet {
		nodeSet[i] = core.NodeID(i)
	}

	if err := p.partitionCell(edges, coords, nodeSet, ids, Root(), 0); err != nil {
		return nil, err
	}
	return ids, nil
}

// partitionCell attempts to bisect nodeSet. On success it writes
// left_child(currentID)/right_child(currentID) into ids for the two
// halves and recurses into each in parallel. When the cell has no internal
// edges, every axis aborted, or the cut leaves one side empty, it leaves
// nodeSet's entries at currentID, making it a leaf; an error from the axis
// step is returned instead.
func (p *Partitioner) partitionCell(edges []core.InputEdge[flow.ResidualCapacity], coords []geo.FPCoordinate, nodeSet []core.NodeID, ids []ID, currentID ID, depth uint32) error {
	if len(nodeSet) < p.minCellSize || depth == p.maxDepth {
		return nil
	}

	table := NewRenumberingTableWithSizeHint(len(coords), len(nodeSet))
	for i, v := range nodeSet {
		table.Set(v, uint32(i))
	}

	localCoords := make([]geo.FPCoordinate, len(nodeSet))
	for i, v := range nodeSet {
		localCoords[i] = coords[v]
	}

	var localEdges []core.InputEdge[flow.ResidualCapacity]
	for _, e := range edges {
		if table.ContainsKey(e.Source) && table.ContainsKey(e.Target) {
			localEdges = append(localEdges, core.NewInputEdge(table.Get(e.Source), table.Get(e.Target), e.Data))
		}
	}
	if len(localEdges) == 0 {
		return nil
	}

	result, _, ok, err := inertial.SelectBest(localEdges, localCoords, p.balance)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	var left, right []core.NodeID
	for i, v := range nodeSet {
		if result.SourceSide[i] {
			left = append(left, v)
		} else {
			right = append(right, v)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return nil
	}

	leftID, rightID := currentID.LeftChild(), currentID.RightChild()
	for _, v := range left {
		ids[v] = leftID
	}
	for _, v := range right {
		ids[v] = rightID
	}

	g := new(errgroup.Group)
	g.Go(func() error {
		return p.partitionCell(edges, coords, left, ids, leftID, depth+1)
	})
	g.Go(func() error {
		return p.partitionCell(edges, coords, right, ids, rightID, depth+1)
	})
	return g.Wait()
}
