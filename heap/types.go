package heap

import "github.com/DennisOSRM/toolbox-rs-sub000/core"

// Weight is any ordered numeric type usable as a heap key.
type Weight interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// nodeState tracks where a node stands relative to the heap.
type nodeState uint8

const (
	stateNotInserted nodeState = iota
	stateInHeap
	stateRemoved
)

// element is one slot of the 1-indexed heap array.
type element[W Weight] struct {
	node   core.NodeID
	weight W
}

// slot holds the per-node bookkeeping addressed directly by NodeID.
type slot[W Weight, D any] struct {
	state  nodeState
	weight W
	data   D
	pos    int // index into heap[], valid when state == stateInHeap
}

// Addressable is a binary min-heap over core.NodeID keys, weighted by W,
// carrying an arbitrary per-node payload D. Capacity is fixed at
// construction to the number of nodes in the graph being searched.
type Addressable[W Weight, D any] struct {
	heap    []element[W]
	slots   []slot[W, D]
	touched []core.NodeID
}

// New returns an empty Addressable heap sized for numNodes distinct node
// IDs in [0, numNodes).
func New[W Weight, D any](numNodes int) *Addressable[W, D] {
	return &Addressable[W, D]{
		heap:  make([]element[W], 1, numNodes+1), // slot 0 is the sentinel
		slots: make([]slot[W, D], numNodes),
	}
}
