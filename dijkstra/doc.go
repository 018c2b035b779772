// Package dijkstra implements one-to-many Dijkstra over a weighted
// core.StaticGraph[uint32], reusing a heap.Addressable as its priority
// queue: decrease-key keeps the running distance for frontier nodes, and
// the heap's per-node payload carries the node's parent for path
// unpacking.
//
// A single run settles nodes in increasing distance order from one source
// and reports the distance to every requested target, terminating as soon
// as every target has been settled rather than exhausting the whole
// connected component. This early exit is what makes repeated one-to-many
// calls (one per boundary node of a partition cell, see package overlay)
// affordable at scale.
//
// Unreached targets report UnreachableDistance.
package dijkstra
