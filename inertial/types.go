package inertial

import "errors"

// Sentinel errors for the inertial package.
var (
	// ErrInvalidAxis names an axis index outside 0..3. No function in this
	// package returns it: Coefficient, and so Step, wrap the index mod 4.
	ErrInvalidAxis = errors.New("inertial: axis index must be in 0..3")
	// ErrInvalidBalanceFactor indicates b was not in (0, 0.5].
	ErrInvalidBalanceFactor = errors.New("inertial: balance factor must be in (0, 0.5]")
)

// coefficients holds the four fixed (c0, c1) projection pairs used to cut
// along the north-south, east-west, and two diagonal axes. Index wraps
// modulo 4 so callers can iterate past 3 without bounds-checking.
var coefficients = [4][2]int64{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// Coefficient returns the (c0, c1) projection pair for the given axis
// index, wrapping modulo 4.
func Coefficient(axis int) (c0, c1 int64) {
	pair := coefficients[axis%4]
	return pair[0], pair[1]
}

// Result is the outcome of one axis step.
type Result struct {
	// Axis is the index this result was computed for.
	Axis int
	// MaxFlow is the min-cut value found, or math.MaxInt32 if the step
	// aborted because the shared upper bound was beaten elsewhere.
	MaxFlow int32
	// Balance is min(left,right)/(left+right); zero when aborted.
	Balance float64
	// SourceSide reports, for each original node, whether it ended up on
	// the source side of the cut. Empty when aborted.
	SourceSide []bool
	// Aborted is true if the shared upper bound preempted this axis.
	Aborted bool
}
