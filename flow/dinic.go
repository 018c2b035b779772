package flow

import (
	"math"

	"github.com/DennisOSRM/toolbox-rs-sub000/core"
)

// Dinic solves maximum flow / minimum cut between a fixed source and sink
// over a residual graph built by BuildResidual. A Dinic instance is used
// once: construct with NewDinic, call Run (or RunWithBound), then read
// MaxFlow/Assignment.
type Dinic struct {
	residual *core.StaticGraph[ResidualCapacity]
	source   core.NodeID
	sink     core.NodeID

	level   []int
	parents []core.NodeID
	stack   []stackFrame

	bound    *SharedBound
	maxFlow  int32
	finished bool
}

type stackFrame struct {
	node core.NodeID
	flow int32
}

const levelUnreached = -1

// NewDinic builds the residual graph from edges and returns a Dinic ready
// to run between source and sink.
func NewDinic(edges []core.InputEdge[ResidualCapacity], source, sink core.NodeID) (*Dinic, error) {
	residual, err := BuildResidual(edges)
	if err != nil {
		return nil, err
	}
	return &Dinic{residual: residual, source: source, sink: sink}, nil
}

// NewDinicFromResidual wraps an already-built residual graph.
func NewDinicFromResidual(residual *core.StaticGraph[ResidualCapacity], source, sink core.NodeID) *Dinic {
	return &Dinic{residual: residual, source: source, sink: sink}
}

// Run computes max-flow with no early-termination bound.
func (d *Dinic) Run() {
	d.run(nil)
}

// RunWithBound computes max-flow, aborting early once the running flow
// value exceeds bound's current value, and lowering bound to the final
// flow value when finished. An aborted run leaves bound unchanged.
func (d *Dinic) RunWithBound(bound *SharedBound) {
	d.run(bound)
}

func (d *Dinic) run(bound *SharedBound) {
	d.bound = bound
	n := d.residual.NumberOfNodes()
	d.parents = make([]core.NodeID, n)
	d.level = make([]int, n)

	var flow int32
	for d.bfs() {
		flow += d.dfs()
		if d.bound != nil && flow > d.bound.Load() {
			d.maxFlow = flow
			return
		}
	}
	if d.bound != nil {
		d.bound.Lower(flow)
	}
	d.maxFlow = flow
	d.finished = true
}

// bfs builds the level graph via a single reverse breadth-first search
// starting at the sink; level[v] becomes the distance to the sink along
// edges with spare reverse capacity. Returns whether the source was
// reached, i.e. whether an augmenting path can exist.
func (d *Dinic) bfs() bool {
	for i := range d.level {
		d.level[i] = levelUnreached
	}
	queue := make([]core.NodeID, 0, len(d.level))
	queue = append(queue, d.sink)
	d.level[d.sink] = 0

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		begin, end := d.residual.EdgeRange(u)
		for e := begin; e < end; e++ {
			v := d.residual.Target(e)
			if v != d.source && d.level[v] != levelUnreached {
				continue
			}
			revEdge, _ := d.residual.FindEdge(v, u)
			if d.residual.Data(revEdge).Capacity < 1 {
				continue
			}
			d.level[v] = d.level[u] + 1
			if v != d.source {
				queue = append(queue, v)
			}
		}
	}
	return d.level[d.source] != levelUnreached
}

// dfs runs the blocking-flow phase as a single depth-first search. On each
// augmenting path found, it applies the flow immediately and rewinds the
// stack to the tail of the closest saturated edge rather than restarting
// the search from the source.
func (d *Dinic) dfs() int32 {
	d.stack = d.stack[:0]
	for i := range d.parents {
		d.parents[i] = core.InvalidNodeID
	}

	d.stack = append(d.stack, stackFrame{node: d.source, flow: math.MaxInt32})
	d.parents[d.source] = d.source

	var blockingFlow int32
	for len(d.stack) > 0 {
		top := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]
		u, flow := top.node, top.flow

		begin, end := d.residual.EdgeRange(u)
		for e := begin; e < end; e++ {
			v := d.residual.Target(e)
			if d.parents[v] != core.InvalidNodeID {
				continue
			}
			if d.level[u] < d.level[v] {
				continue
			}
			available := d.residual.Data(e).Capacity
			if available < 1 {
				continue
			}
			d.parents[v] = u
			sent := flow
			if available < sent {
				sent = available
			}

			if v == d.sink {
				closestTail := d.augment(v, sent, u)
				d.rewindTo(closestTail)
				blockingFlow += sent
				d.parents[d.sink] = core.InvalidNodeID
				break
			}
			d.stack = append(d.stack, stackFrame{node: v, flow: sent})
		}
	}
	return blockingFlow
}

// augment walks the parent chain from v back to the source, applying flow
// to each edge, and returns the tail of the edge closest to the source
// that became saturated (capacity reduced to zero).
func (d *Dinic) augment(v core.NodeID, flow int32, tailHint core.NodeID) core.NodeID {
	closestTail := tailHint
	for {
		u := d.parents[v]
		if u == v {
			break
		}
		fwdEdge, _ := d.residual.FindEdge(u, v)
		remaining := d.residual.Data(fwdEdge).Capacity - flow
		d.residual.SetData(fwdEdge, ResidualCapacity{Capacity: remaining})
		if remaining == 0 {
			closestTail = u
		}
		revEdge, _ := d.residual.FindEdge(v, u)
		d.residual.SetData(revEdge, ResidualCapacity{Capacity: d.residual.Data(revEdge).Capacity + flow})
		v = u
	}
	return closestTail
}

// rewindTo pops stack frames until the top frame's parent is closestTail,
// so the DFS resumes from there rather than restarting at the source.
func (d *Dinic) rewindTo(closestTail core.NodeID) {
	for len(d.stack) > 0 {
		node := d.stack[len(d.stack)-1].node
		d.stack = d.stack[:len(d.stack)-1]
		if d.parents[node] == closestTail {
			return
		}
	}
}

// MaxFlow returns the computed max-flow value, or ErrNotComputed if Run
// has not completed.
func (d *Dinic) MaxFlow() (int32, error) {
	if !d.finished {
		return 0, ErrNotComputed
	}
	return d.maxFlow, nil
}

// Assignment returns a reachability bitset over the final residual graph,
// rooted at source: Assignment()[v] is true iff v is still reachable from
// source along edges with spare capacity, i.e. v lies on the source side
// of the min cut. Requires Run to have completed.
func (d *Dinic) Assignment(source core.NodeID) ([]bool, error) {
	if !d.finished {
		return nil, ErrNotComputed
	}
	n := d.residual.NumberOfNodes()
	reachable := make([]bool, n)
	reachable[source] = true
	stack := []core.NodeID{source}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		begin, end := d.residual.EdgeRange(node)
		for e := begin; e < end; e++ {
			target := d.residual.Target(e)
			if !reachable[target] && d.residual.Data(e).Capacity > 0 {
				reachable[target] = true
				stack = append(stack, target)
			}
		}
	}
	return reachable, nil
}

// Residual exposes the underlying residual graph, e.g. for the overlay
// package to run its own reachability queries against a finished Dinic.
func (d *Dinic) Residual() *core.StaticGraph[ResidualCapacity] {
	return d.residual
}
