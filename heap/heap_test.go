package heap_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DennisOSRM/toolbox-rs-sub000/core"
	"github.com/DennisOSRM/toolbox-rs-sub000/heap"
)

func TestAddressable_InsertSize(t *testing.T) {
	h := heap.New[int32, int32](21)
	h.Insert(20, 1, 2)
	require.EqualValues(t, 20, h.Min())
	require.False(t, h.IsEmpty())
	require.Equal(t, 1, h.Len())
}

func TestAddressable_HeapSort(t *testing.T) {
	h := heap.New[int32, int32](8)
	input := []int32{4, 1, 6, 7, 5}
	for _, v := range input {
		h.Insert(core.NodeID(v), v, 0)
	}
	require.EqualValues(t, 1, h.Min())

	var result []int32
	for !h.IsEmpty() {
		result = append(result, int32(h.DeleteMin()))
	}
	require.Len(t, result, 5)
	require.True(t, h.IsEmpty())

	sort.Slice(input, func(i, j int) bool { return input[i] < input[j] })
	require.Equal(t, input, result)
}

func TestAddressable_DecreaseKey(t *testing.T) {
	h := heap.New[int32, int32](4)
	h.Insert(0, 10, 0)
	h.Insert(1, 20, 0)
	h.Insert(2, 30, 0)

	h.DecreaseKey(2, 5)
	require.EqualValues(t, 2, h.Min())
	require.EqualValues(t, 5, h.Weight(2))
}

func TestAddressable_InsertedAndRemoved(t *testing.T) {
	h := heap.New[int32, int32](2)
	require.False(t, h.Inserted(0))

	h.Insert(0, 1, 0)
	require.True(t, h.Inserted(0))
	require.False(t, h.Removed(0))

	h.DeleteMin()
	require.True(t, h.Inserted(0))
	require.True(t, h.Removed(0))
}

func TestAddressable_Clear(t *testing.T) {
	h := heap.New[int32, int32](3)
	h.Insert(0, 1, 0)
	h.Insert(1, 2, 0)
	h.Clear()

	require.True(t, h.IsEmpty())
	require.False(t, h.Inserted(0))
	require.False(t, h.Inserted(1))
}
