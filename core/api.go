package core

import "sort"

// NewStaticGraph builds a StaticGraph from a flat edge list. Input is sorted
// by (Source, Target) (stable, so parallel edges retain their relative
// order) and never mutated further: edges[i] in the returned graph appear in
// that sorted order within each node's edge range.
//
// Complexity: O(E log E) for the sort, O(V + E) for the rest.
func NewStaticGraph[T any](edges []InputEdge[T]) (*StaticGraph[T], error) {
	if len(edges) == 0 {
		return nil, ErrEmptyInput
	}

	sorted := make([]InputEdge[T], len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Source != sorted[j].Source {
			return sorted[i].Source < sorted[j].Source
		}
		return sorted[i].Target < sorted[j].Target
	})

	var numberOfNodes NodeID
	for _, e := range sorted {
		if e.Source+1 > numberOfNodes {
			numberOfNodes = e.Source + 1
		}
		if e.Target+1 > numberOfNodes {
			numberOfNodes = e.Target + 1
		}
	}

	g := &StaticGraph[T]{
		nodeArray: make([]nodeArrayEntry, 0, numberOfNodes+1),
		edgeArray: make([]edgeArrayEntry[T], len(sorted)),
	}

	offset := 0
	for n := NodeID(0); n < numberOfNodes; n++ {
		g.nodeArray = append(g.nodeArray, nodeArrayEntry{firstEdge: EdgeID(offset)})
		for offset != len(sorted) && sorted[offset].Source == n {
			offset++
		}
	}
	// sentinel
	g.nodeArray = append(g.nodeArray, nodeArrayEntry{firstEdge: EdgeID(len(sorted))})

	for i, e := range sorted {
		g.edgeArray[i] = edgeArrayEntry[T]{target: e.Target, data: e.Data}
	}

	return g, nil
}

// NumberOfNodes returns the number of nodes in the graph.
func (g *StaticGraph[T]) NumberOfNodes() int {
	return len(g.nodeArray) - 1
}

// NumberOfEdges returns the number of edges in the graph.
func (g *StaticGraph[T]) NumberOfEdges() int {
	return len(g.edgeArray)
}

// BeginEdges returns the EdgeID of n's first outgoing edge.
func (g *StaticGraph[T]) BeginEdges(n NodeID) EdgeID {
	return g.nodeArray[n].firstEdge
}

// EndEdges returns one past the EdgeID of n's last outgoing edge.
func (g *StaticGraph[T]) EndEdges(n NodeID) EdgeID {
	return g.nodeArray[n+1].firstEdge
}

// EdgeRange returns [begin, end) such that EdgeArray slots begin..end-1
// are n's outgoing edges.
func (g *StaticGraph[T]) EdgeRange(n NodeID) (begin, end EdgeID) {
	return g.BeginEdges(n), g.EndEdges(n)
}

// OutDegree returns the number of outgoing edges of n.
func (g *StaticGraph[T]) OutDegree(n NodeID) int {
	return int(g.EndEdges(n) - g.BeginEdges(n))
}

// Target returns the target node of edge e.
func (g *StaticGraph[T]) Target(e EdgeID) NodeID {
	return g.edgeArray[e].target
}

// Data returns the payload of edge e.
func (g *StaticGraph[T]) Data(e EdgeID) T {
	return g.edgeArray[e].data
}

// SetData overwrites the payload of edge e in place.
func (g *StaticGraph[T]) SetData(e EdgeID, data T) {
	g.edgeArray[e].data = data
}

// FindEdge returns the EdgeID of the first edge source->target, or
// (InvalidEdgeID, false) if none exists. Edges within a node's range are
// sorted by target, so this runs in O(log degree).
func (g *StaticGraph[T]) FindEdge(source, target NodeID) (EdgeID, bool) {
	begin, end := g.EdgeRange(source)
	lo, hi := int(begin), int(end)
	for lo < hi {
		mid := (lo + hi) / 2
		if g.edgeArray[mid].target < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < int(end) && g.edgeArray[lo].target == target {
		return EdgeID(lo), true
	}
	return InvalidEdgeID, false
}

// CheckIntegrity verifies, in O(V+E), that every edge targets an in-range
// node and that node-array offsets are non-decreasing.
func (g *StaticGraph[T]) CheckIntegrity() bool {
	n := g.NumberOfNodes()
	for _, e := range g.edgeArray {
		if int(e.target) >= n {
			return false
		}
	}
	for i := 1; i < len(g.nodeArray); i++ {
		if g.nodeArray[i-1].firstEdge > g.nodeArray[i].firstEdge {
			return false
		}
	}
	return true
}

// nodeColor is used internally by CycleCheck's DFS coloring.
type nodeColor uint8

const (
	colorWhite nodeColor = iota
	colorGrey
	colorBlack
)

// CycleCheck reports whether the graph contains a directed cycle, via an
// iterative DFS with node coloring (white/grey/black).
func (g *StaticGraph[T]) CycleCheck() bool {
	n := g.NumberOfNodes()
	colors := make([]nodeColor, n)
	var stack []NodeID

	for root := NodeID(0); int(root) < n; root++ {
		if colors[root] != colorWhite {
			continue
		}
		stack = append(stack, root)
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			if colors[node] != colorGrey {
				colors[node] = colorGrey
				begin, end := g.EdgeRange(node)
				for e := begin; e < end; e++ {
					target := g.Target(e)
					switch colors[target] {
					case colorWhite:
						stack = append(stack, target)
					case colorGrey:
						return true
					}
				}
			} else {
				stack = stack[:len(stack)-1]
				colors[node] = colorBlack
			}
		}
	}
	return false
}
