// Package flow computes maximum flow / minimum cut over a StaticGraph using
// Cherkassky's variant of Dinitz' algorithm: a single reverse breadth-first
// search from the sink builds the level graph, then a single depth-first
// search drives the blocking-flow phase, rewinding the DFS stack to the tail
// of the most recently saturated edge instead of restarting from the source.
//
// Dinic solvers may share a single upper bound (via SharedBound) across
// concurrently running instances — an instance that finishes lowers the
// bound to its flow value, and an instance whose own running flow exceeds
// the bound after a blocking-flow phase aborts early. This is how the
// inertial-flow axis step avoids computing a full max-flow on axes it can
// already tell will lose.
//
// Errors:
//
//	ErrEmptyEdgeList - BuildResidual/NewDinic given no edges.
//	ErrNotComputed   - MaxFlow/Assignment called before Run.
package flow
