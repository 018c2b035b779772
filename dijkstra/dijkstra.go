package dijkstra

import (
	"github.com/DennisOSRM/toolbox-rs-sub000/core"
	"github.com/DennisOSRM/toolbox-rs-sub000/heap"
)

// OneToMany is a reusable one-to-many Dijkstra search. Construct once per
// graph size with New and call Run repeatedly; each Run clears and
// reuses the internal priority queue, avoiding a fresh allocation per
// search (the same object is run once per boundary node when building a
// MatrixCell).
type OneToMany struct {
	queue *heap.Addressable[uint32, core.NodeID]
}

// New returns a OneToMany search ready for a graph with numNodes nodes.
func New(numNodes int) *OneToMany {
	return &OneToMany{queue: heap.New[uint32, core.NodeID](numNodes)}
}

// Run computes shortest distances from source to every node in targets
// over g (edge data is the arc weight). It stops as soon as every target
// has been settled, which may be well before the whole graph is explored.
// Call Distance after Run to read out results; unreached targets report
// UnreachableDistance.
func (d *OneToMany) Run(g *core.StaticGraph[uint32], source core.NodeID, targets []core.NodeID) error {
	if len(targets) == 0 {
		return ErrEmptyTargetSet
	}
	d.queue.Clear()

	remaining := make(map[core.NodeID]struct{}, len(targets))
	for _, t := range targets {
		remaining[t] = struct{}{}
	}

	d.queue.Insert(source, 0, source)
	for !d.queue.IsEmpty() && len(remaining) > 0 {
		u := d.queue.DeleteMin()
		delete(remaining, u)

		distance := d.queue.Weight(u)
		begin, end := g.EdgeRange(u)
		for e := begin; e < end; e++ {
			v := g.Target(e)
			newDistance := distance + g.Data(e)
			switch {
			case !d.queue.Inserted(v):
				d.queue.Insert(v, newDistance, u)
			case !d.queue.Removed(v) && d.queue.Weight(v) > newDistance:
				d.queue.DecreaseKey(v, newDistance)
				d.queue.SetData(v, u)
			}
		}
	}
	return nil
}

// Distance returns the shortest distance found to node from the most
// recent Run's source, or UnreachableDistance if node was never reached.
// Every target passed to Run is settled or unreached when Run returns; for
// other nodes the value may be a tentative distance that was not settled
// before the search stopped.
func (d *OneToMany) Distance(node core.NodeID) uint32 {
	if !d.queue.Inserted(node) {
		return UnreachableDistance
	}
	return d.queue.Weight(node)
}

// Parent returns node's predecessor on the shortest path tree from the
// most recent Run's source. Parent(source) == source.
func (d *OneToMany) Parent(node core.NodeID) core.NodeID {
	return d.queue.Data(node)
}
