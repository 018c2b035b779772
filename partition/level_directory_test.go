package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DennisOSRM/toolbox-rs-sub000/partition"
)

func TestLevelDirectory_CrossesAtLevel(t *testing.T) {
	ids := []partition.ID{
		partition.New(0b1100), // node 0
		partition.New(0b1101), // node 1, sibling of 0
		partition.New(0b1110), // node 2, cousin of 0
	}
	levels := []uint32{0, 1, 2}
	dir := partition.NewLevelDirectory(ids, levels)

	require.True(t, dir.CrossesAtLevel(0, 1, 0))
	require.False(t, dir.CrossesAtLevel(0, 1, 1))
	require.True(t, dir.CrossesAtLevel(0, 2, 1))
	require.False(t, dir.CrossesAtLevel(0, 2, 2))
}

func TestLevelDirectory_GetCrossingLevels(t *testing.T) {
	ids := []partition.ID{
		partition.New(16),
		partition.New(20),
	}
	levels := []uint32{0, 1, 2, 3}
	dir := partition.NewLevelDirectory(ids, levels)

	crossing := dir.GetCrossingLevels(0, 1)
	require.Equal(t, []uint32{0, 1, 2}, crossing)
}
