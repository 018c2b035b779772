// Package heap implements an addressable (indexable) binary min-heap: a
// heap that additionally supports looking up and decreasing the key of an
// already-inserted element by its identity, the operation a plain
// container/heap cannot do without an external bookkeeping layer.
//
// Addressable is specialized to dense NodeID keys (any graph in this
// module numbers its nodes 0..N-1), so lookups are backed by a slice
// indexed by NodeID rather than a hash map — every Insert/DecreaseKey/
// Weight/Data call is O(1) plus the O(log n) heap fix-up, with no hashing
// overhead.
//
// The heap array is 1-indexed; slot 0 is an unused sentinel, which keeps
// the parent/child arithmetic (parent = key/2, children = 2*key, 2*key+1)
// free of off-by-one adjustments.
package heap
