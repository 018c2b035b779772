package flow

import (
	"errors"
	"sync/atomic"
)

// Sentinel errors for the flow package.
var (
	// ErrEmptyEdgeList indicates BuildResidual/NewDinic was given no edges.
	ErrEmptyEdgeList = errors.New("flow: edge list is empty")

	// ErrNotComputed indicates MaxFlow or Assignment was called before Run.
	ErrNotComputed = errors.New("flow: max-flow was not computed")
)

// ResidualCapacity is the per-edge payload of a residual graph: the
// remaining capacity available for augmentation along this directed edge.
type ResidualCapacity struct {
	Capacity int32
}

// NewResidualCapacity constructs a ResidualCapacity with the given forward
// capacity.
func NewResidualCapacity(capacity int32) ResidualCapacity {
	return ResidualCapacity{Capacity: capacity}
}

// SharedBound is an atomic upper bound on max-flow value, shared across
// concurrently running Dinic instances (e.g. the four inertial-flow axis
// workers). Any instance may lower it; all instances read it to decide
// whether to abort early. There is no stronger synchronization need here:
// a flow value only ever decreases, and a late read simply means one more
// wasted augmentation, not an incorrect result.
type SharedBound struct {
	value atomic.Int32
}

// NewSharedBound returns a SharedBound initialized to the given value
// (typically math.MaxInt32, i.e. "no bound yet").
func NewSharedBound(initial int32) *SharedBound {
	b := &SharedBound{}
	b.value.Store(initial)
	return b
}

// Load returns the current bound.
func (b *SharedBound) Load() int32 {
	return b.value.Load()
}

// Lower atomically sets the bound to min(current, candidate).
func (b *SharedBound) Lower(candidate int32) {
	for {
		current := b.value.Load()
		if candidate >= current {
			return
		}
		if b.value.CompareAndSwap(current, candidate) {
			return
		}
	}
}
