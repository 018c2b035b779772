package partition

import "math"

// noEntry marks an unset slot in the dense-vector backing.
const noEntry = math.MaxUint32

// RenumberingTable maps a sparse or dense key universe down to a compact
// range, used to give each partition cell's local subgraph its own dense
// 0..N node numbering. When the expected number of keys actually used is
// a small fraction of the universe it backs itself with a map instead of
// a full-size slice, matching the densities seen in a single
// recursive-bisection cell versus the whole graph.
type RenumberingTable struct {
	dense []uint32
	sparse map[uint32]uint32
}

// NewRenumberingTableWithSizeHint picks a backing store for a key
// universe of universeSize, expected to hold around usageBound entries.
// A universe more than 8x the expected usage switches to a map so a
// single cell's renumbering doesn't allocate an array sized for the
// whole graph.
func NewRenumberingTableWithSizeHint(universeSize, usageBound int) *RenumberingTable {
	if usageBound <= 0 || universeSize/usageBound > 8 {
		return &RenumberingTable{sparse: make(map[uint32]uint32)}
	}
	dense := make([]uint32, universeSize)
	for i := range dense {
		dense[i] = noEntry
	}
	return &RenumberingTable{dense: dense}
}

// Set records that key renumbers to value.
func (t *RenumberingTable) Set(key, value uint32) {
	if t.sparse != nil {
		t.sparse[key] = value
		return
	}
	t.dense[key] = value
}

// Get returns the value key was set to. It panics if key was never set.
func (t *RenumberingTable) Get(key uint32) uint32 {
	if t.sparse != nil {
		v, ok := t.sparse[key]
		if !ok {
			panic("partition: renumbering table has no entry for key")
		}
		return v
	}
	v := t.dense[key]
	if v == noEntry {
		panic("partition: renumbering table has no entry for key")
	}
	return v
}

// ContainsKey reports whether key has been Set.
func (t *RenumberingTable) ContainsKey(key uint32) bool {
	if t.sparse != nil {
		_, ok := t.sparse[key]
		return ok
	}
	return t.dense[key] != noEntry
}
