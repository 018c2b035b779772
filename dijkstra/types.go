package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors for the dijkstra package.
var (
	// ErrEmptyTargetSet indicates Run was called with no targets.
	ErrEmptyTargetSet = errors.New("dijkstra: target set is empty")
)

// UnreachableDistance is reported for a target that cannot be reached from
// the source.
const UnreachableDistance uint32 = math.MaxUint32
