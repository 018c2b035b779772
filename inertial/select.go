package inertial

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/DennisOSRM/toolbox-rs-sub000/core"
	"github.com/DennisOSRM/toolbox-rs-sub000/flow"
	"github.com/DennisOSRM/toolbox-rs-sub000/geo"
)

// SelectBest runs all four axis steps concurrently, sharing one
// SharedBound so a cheap cut found on one axis preempts the rest, and
// returns the result with the lowest max-flow (ties broken in favor of
// the more balanced split). If every axis aborted, ok is false and the
// cell should become a leaf.
func SelectBest(edges []core.InputEdge[flow.ResidualCapacity], coords []geo.FPCoordinate, bFactor float64) (best Result, renumbering []uint32, ok bool, err error) {
	bound := flow.NewSharedBound(int32(len(coords)))

	results := make([]Result, 4)
	renumberings := make([][]uint32, 4)

	g, _ := errgroup.WithContext(context.Background())
	for axis := 0; axis < 4; axis++ {
		axis := axis
		g.Go(func() error {
			r, rn, stepErr := Step(axis, edges, coords, bFactor, bound)
			if stepErr != nil {
				return stepErr
			}
			results[axis] = r
			renumberings[axis] = rn
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, nil, false, err
	}

	bestAxis := -1
	for axis, r := range results {
		if r.Aborted {
			continue
		}
		if bestAxis == -1 {
			bestAxis = axis
			continue
		}
		switch {
		case r.MaxFlow < results[bestAxis].MaxFlow:
			bestAxis = axis
		case r.MaxFlow == results[bestAxis].MaxFlow && r.Balance > results[bestAxis].Balance:
			bestAxis = axis
		}
	}
	if bestAxis == -1 {
		return Result{}, nil, false, nil
	}
	return results[bestAxis], renumberings[bestAxis], true, nil
}
