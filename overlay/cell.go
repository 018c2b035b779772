package overlay

import (
	"fmt"
	"sort"

	"github.com/DennisOSRM/toolbox-rs-sub000/core"
	"github.com/DennisOSRM/toolbox-rs-sub000/dijkstra"
)

// BaseCell is one leaf partition cell prior to processing: its boundary
// node sets and the intra-cell edges connecting them (and any interior
// nodes on the paths between them).
type BaseCell struct {
	IncomingNodes []core.NodeID
	OutgoingNodes []core.NodeID
	Edges         []core.InputEdge[uint32]
}

// MatrixCell is the result of processing a BaseCell: the pairwise
// shortest-path distance from every incoming node to every outgoing
// node, stored row-major with incoming nodes as rows.
type MatrixCell struct {
	IncomingNodes []core.NodeID
	OutgoingNodes []core.NodeID
	Matrix        []uint32
}

// Process renumbers the cell's nodes densely (incoming nodes first,
// then outgoing, then any interior nodes encountered in edge order),
// builds a CSR subgraph over that numbering, and runs one-to-many
// Dijkstra from every incoming node to every outgoing node to fill the
// distance matrix.
func (c *BaseCell) Process() (*MatrixCell, error) {
	seen := make(map[core.NodeID]uint32, len(c.IncomingNodes)+len(c.OutgoingNodes))
	assign := func(n core.NodeID) uint32 {
		if id, ok := seen[n]; ok {
			return id
		}
		id := uint32(len(seen))
		seen[n] = id
		return id
	}
	for _, n := range c.IncomingNodes {
		assign(n)
	}
	for _, n := range c.OutgoingNodes {
		assign(n)
	}

	newEdges := make([]core.InputEdge[uint32], len(c.Edges))
	for i, e := range c.Edges {
		newEdges[i] = core.NewInputEdge(assign(e.Source), assign(e.Target), e.Data)
	}

	numIncoming := len(c.IncomingNodes)
	numOutgoing := len(c.OutgoingNodes)
	matrix := make([]uint32, numIncoming*numOutgoing)
	for i := range matrix {
		matrix[i] = dijkstra.UnreachableDistance
	}

	if len(c.Edges) > 0 {
		graph, err := core.NewStaticGraph(newEdges)
		if err != nil {
			return nil, err
		}

		// seen may assign ids to boundary nodes with no intra-cell edge
		// at all (isolated in this cell); size the search past whatever
		// the edge-inferred graph accounts for so such ids stay in range.
		numNodes := graph.NumberOfNodes()
		if len(seen) > numNodes {
			numNodes = len(seen)
		}

		targets := make([]core.NodeID, numOutgoing)
		for j := 0; j < numOutgoing; j++ {
			targets[j] = core.NodeID(numIncoming + j)
		}

		search := dijkstra.New(numNodes)
		for source := 0; source < numIncoming; source++ {
			if err := search.Run(graph, core.NodeID(source), targets); err != nil {
				return nil, err
			}
			for j, target := range targets {
				matrix[source*numOutgoing+j] = search.Distance(target)
			}
		}
	}

	return &MatrixCell{
		IncomingNodes: append([]core.NodeID(nil), c.IncomingNodes...),
		OutgoingNodes: append([]core.NodeID(nil), c.OutgoingNodes...),
		Matrix:        matrix,
	}, nil
}

// GetDistanceRow returns the distance row for incoming node u: its
// distance to every outgoing node, in OutgoingNodes order. IncomingNodes
// must be sorted for the binary search to find u.
func (m *MatrixCell) GetDistanceRow(u core.NodeID) ([]uint32, error) {
	index := sort.Search(len(m.IncomingNodes), func(i int) bool {
		return m.IncomingNodes[i] >= u
	})
	if index >= len(m.IncomingNodes) || m.IncomingNodes[index] != u {
		return nil, fmt.Errorf("overlay: node %d not found in incoming boundary", u)
	}
	width := len(m.OutgoingNodes)
	return m.Matrix[index*width : (index+1)*width], nil
}

// OverlayEdges derives the skeleton-graph edge list implied by this
// cell's distance matrix: one edge per (incoming, outgoing) pair with a
// finite distance, addressed by the cell's original (un-renumbered)
// boundary node IDs. Indexed row-major: row i (incoming node i) times
// the outgoing-node count, plus column j.
func (m *MatrixCell) OverlayEdges() []core.InputEdge[uint32] {
	result := make([]core.InputEdge[uint32], 0, len(m.IncomingNodes)*len(m.OutgoingNodes))
	width := len(m.OutgoingNodes)

	for i, source := range m.IncomingNodes {
		for j, target := range m.OutgoingNodes {
			distance := m.Matrix[i*width+j]
			if distance != dijkstra.UnreachableDistance {
				result = append(result, core.NewInputEdge(source, target, distance))
			}
		}
	}

	return result
}
