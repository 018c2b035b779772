package inertial_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DennisOSRM/toolbox-rs-sub000/core"
	"github.com/DennisOSRM/toolbox-rs-sub000/flow"
	"github.com/DennisOSRM/toolbox-rs-sub000/geo"
	"github.com/DennisOSRM/toolbox-rs-sub000/inertial"
)

func TestCoefficient_IterateWithWrap(t *testing.T) {
	for i := 0; i < 4; i++ {
		c0a, c1a := inertial.Coefficient(i)
		c0b, c1b := inertial.Coefficient(i + 4)
		require.Equal(t, c0a, c0b)
		require.Equal(t, c1a, c1b)
	}
}

// squareFixture is a 4-node square, edges forming a one-way ring with unit
// capacity on each edge, coordinates placed so axis 0 (north-south) cleanly
// separates the top pair from the bottom pair.
func squareFixture() ([]core.InputEdge[flow.ResidualCapacity], []geo.FPCoordinate) {
	coords := []geo.FPCoordinate{
		geo.New(0, 0),   // node 0, bottom-left
		geo.New(10, 0),  // node 1, top-left
		geo.New(10, 10), // node 2, top-right
		geo.New(0, 10),  // node 3, bottom-right
	}
	cap := flow.NewResidualCapacity(1)
	edges := []core.InputEdge[flow.ResidualCapacity]{
		core.NewInputEdge(0, 1, cap),
		core.NewInputEdge(1, 2, cap),
		core.NewInputEdge(2, 3, cap),
		core.NewInputEdge(3, 0, cap),
	}
	return edges, coords
}

func TestStep_NorthSouthAxis(t *testing.T) {
	edges, coords := squareFixture()
	bound := flow.NewSharedBound(int32(len(coords)))
	result, renumbering, err := inertial.Step(0, edges, coords, 0.25, bound)
	require.NoError(t, err)
	require.False(t, result.Aborted)
	require.Len(t, renumbering, 4)
	require.GreaterOrEqual(t, result.Balance, 0.0)
	require.LessOrEqual(t, result.Balance, 1.0)
}

func TestSelectBest_PicksAnAxis(t *testing.T) {
	edges, coords := squareFixture()
	best, renumbering, ok, err := inertial.SelectBest(edges, coords, 0.25)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, renumbering, 4)
	require.GreaterOrEqual(t, best.MaxFlow, int32(0))
}
