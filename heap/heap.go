package heap

import "github.com/DennisOSRM/toolbox-rs-sub000/core"

// Len returns the number of elements currently in the heap.
func (h *Addressable[W, D]) Len() int {
	return len(h.heap) - 1
}

// IsEmpty reports whether the heap currently holds no elements.
func (h *Addressable[W, D]) IsEmpty() bool {
	return h.Len() == 0
}

// Inserted reports whether node has ever been passed to Insert since the
// heap was created or last Clear()ed, regardless of whether it has since
// been popped via DeleteMin.
func (h *Addressable[W, D]) Inserted(node core.NodeID) bool {
	return h.slots[node].state != stateNotInserted
}

// Removed reports whether node was inserted and has since been popped via
// DeleteMin.
func (h *Addressable[W, D]) Removed(node core.NodeID) bool {
	return h.slots[node].state == stateRemoved
}

// Weight returns the current key of an inserted node.
func (h *Addressable[W, D]) Weight(node core.NodeID) W {
	return h.slots[node].weight
}

// Data returns the payload attached to an inserted node.
func (h *Addressable[W, D]) Data(node core.NodeID) D {
	return h.slots[node].data
}

// SetData overwrites the payload attached to an inserted node.
func (h *Addressable[W, D]) SetData(node core.NodeID, data D) {
	h.slots[node].data = data
}

// Min returns the node with the smallest key. Panics if the heap is empty.
func (h *Addressable[W, D]) Min() core.NodeID {
	return h.heap[1].node
}

// Insert adds node with the given weight and payload. node must not
// already be inserted (re-inserting after a DeleteMin requires no special
// handling since the slot is simply overwritten and re-pushed).
func (h *Addressable[W, D]) Insert(node core.NodeID, weight W, data D) {
	key := len(h.heap)
	h.heap = append(h.heap, element[W]{node: node, weight: weight})
	if h.slots[node].state == stateNotInserted {
		h.touched = append(h.touched, node)
	}
	h.slots[node] = slot[W, D]{state: stateInHeap, weight: weight, data: data, pos: key}
	h.upHeap(key)
}

// DecreaseKey lowers node's weight and restores the heap property. node
// must currently be in the heap.
func (h *Addressable[W, D]) DecreaseKey(node core.NodeID, weight W) {
	h.slots[node].weight = weight
	h.heap[h.slots[node].pos].weight = weight
	h.upHeap(h.slots[node].pos)
}

// DeleteMin removes and returns the node with the smallest key. Panics if
// the heap is empty.
func (h *Addressable[W, D]) DeleteMin() core.NodeID {
	removedNode := h.heap[1].node
	last := len(h.heap) - 1
	h.heap[1] = h.heap[last]
	h.heap = h.heap[:last]
	if len(h.heap) > 1 {
		h.slots[h.heap[1].node].pos = 1
		h.downHeap(1)
	}
	h.slots[removedNode].state = stateRemoved
	h.slots[removedNode].pos = 0
	return removedNode
}

// Clear empties the heap, resetting every touched node back to
// not-inserted.
func (h *Addressable[W, D]) Clear() {
	for _, node := range h.touched {
		h.slots[node] = slot[W, D]{}
	}
	h.touched = h.touched[:0]
	h.heap = h.heap[:1]
}

func (h *Addressable[W, D]) upHeap(key int) {
	risingElement := h.heap[key]
	parent := key >> 1
	for parent >= 1 && h.heap[parent].weight > risingElement.weight {
		h.heap[key] = h.heap[parent]
		h.slots[h.heap[key].node].pos = key
		key = parent
		parent >>= 1
	}
	h.heap[key] = risingElement
	h.slots[risingElement.node].pos = key
}

func (h *Addressable[W, D]) downHeap(key int) {
	droppingElement := h.heap[key]
	n := len(h.heap)
	child := key << 1
	for child < n {
		if sibling := child + 1; sibling < n && h.heap[child].weight > h.heap[sibling].weight {
			child = sibling
		}
		if droppingElement.weight <= h.heap[child].weight {
			break
		}
		h.heap[key] = h.heap[child]
		h.slots[h.heap[key].node].pos = key
		key = child
		child <<= 1
	}
	h.heap[key] = droppingElement
	h.slots[droppingElement.node].pos = key
}
