package inertial

import (
	"math"
	"sort"

	"github.com/DennisOSRM/toolbox-rs-sub000/core"
	"github.com/DennisOSRM/toolbox-rs-sub000/flow"
	"github.com/DennisOSRM/toolbox-rs-sub000/geo"
)

// Step runs one inertial-flow axis step: project every node in coords
// onto the given axis, contract the bFactor extremes on each side into a
// virtual source (0) and sink (1), and solve max-flow between them over
// edges, aborting early if bound is beaten by a concurrent axis.
//
// edges and coords are indexed by the same dense node numbering; the
// renumbering table returned maps that numbering onto the 0/1-rooted ids
// the solver actually ran on.
func Step(axis int, edges []core.InputEdge[flow.ResidualCapacity], coords []geo.FPCoordinate, bFactor float64, bound *flow.SharedBound) (Result, []uint32, error) {
	if bFactor <= 0 || bFactor > 0.5 {
		return Result{}, nil, ErrInvalidBalanceFactor
	}

	n := len(coords)
	c0, c1 := Coefficient(axis)

	proxy := make([]int, n)
	for i := range proxy {
		proxy[i] = i
	}
	sort.SliceStable(proxy, func(i, j int) bool {
		return geo.Project(coords[proxy[i]], c0, c1) > geo.Project(coords[proxy[j]], c0, c1)
	})

	contractionSize := int(float64(n) * bFactor)
	sources := proxy[:contractionSize]
	targets := proxy[n-contractionSize:]

	const unset = math.MaxUint32
	renumber := make([]uint32, n)
	for i := range renumber {
		renumber[i] = unset
	}
	for _, s := range sources {
		renumber[s] = 0
	}
	for _, t := range targets {
		renumber[t] = 1
	}

	next := uint32(2)
	relabeled := make([]core.InputEdge[flow.ResidualCapacity], 0, len(edges))
	for _, e := range edges {
		if renumber[e.Source] == unset {
			renumber[e.Source] = next
			next++
		}
		if renumber[e.Target] == unset {
			renumber[e.Target] = next
			next++
		}
		src, dst := renumber[e.Source], renumber[e.Target]
		if src == dst {
			continue
		}
		relabeled = append(relabeled, core.NewInputEdge(core.NodeID(src), core.NodeID(dst), e.Data))
	}

	solver, err := flow.NewDinic(relabeled, 0, 1)
	if err != nil {
		return Result{}, nil, err
	}
	solver.RunWithBound(bound)

	maxFlow, err := solver.MaxFlow()
	if err != nil {
		return Result{Axis: axis, MaxFlow: math.MaxInt32, Aborted: true}, renumber, nil
	}

	assignment, err := solver.Assignment(0)
	if err != nil {
		return Result{Axis: axis, MaxFlow: math.MaxInt32, Aborted: true}, renumber, nil
	}

	leftSize := 0
	for _, onSourceSide := range assignment {
		if onSourceSide {
			leftSize++
		}
	}
	rightSize := len(assignment) - leftSize
	leftSize += len(sources) - 1
	rightSize += len(targets) - 1

	balance := float64(min(leftSize, rightSize)) / float64(leftSize+rightSize)

	sourceSide := make([]bool, n)
	for node := 0; node < n; node++ {
		id := renumber[node]
		if id < uint32(len(assignment)) {
			sourceSide[node] = assignment[id]
		}
	}

	return Result{
		Axis:       axis,
		MaxFlow:    maxFlow,
		Balance:    balance,
		SourceSide: sourceSide,
	}, renumber, nil
}
