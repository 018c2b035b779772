// Package core defines the static compressed-sparse-row (CSR) graph used
// throughout the partitioner: StaticGraph, InputEdge, NodeID and EdgeID.
//
// Unlike an adjacency-list graph, a StaticGraph is built once from a
// complete edge list and never mutated afterwards. This trades update
// flexibility for compact, cache-friendly storage and O(1) access to a
// node's outgoing edge range — the access pattern every algorithm in this
// module (flow, dijkstra, inertial, overlay) depends on.
//
// Construction stably sorts the input edges by (source, target) and derives
// two parallel slices: NodeArray holds one first-edge offset per node plus
// a trailing sentinel, and EdgeArray holds the edges themselves in sorted
// order. A node's outgoing edges are exactly EdgeArray[NodeArray[n]:NodeArray[n+1]].
//
// Errors:
//
//	ErrEmptyInput  - NewStaticGraph was called with no edges.
//	ErrNodeOutOfRange - names a node ID outside [0, NumberOfNodes).
//	ErrEdgeOutOfRange - names an edge ID outside [0, NumberOfEdges).
//
// No StaticGraph method returns the two range errors: the accessors do not
// check their arguments and panic on an out-of-range ID.
package core
