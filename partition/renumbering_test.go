package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DennisOSRM/toolbox-rs-sub000/partition"
)

func TestRenumberingTable_FullUniverse(t *testing.T) {
	table := partition.NewRenumberingTableWithSizeHint(10, 10)
	for i := uint32(0); i < 10; i++ {
		table.Set(i, 10-i)
	}
	for i := uint32(0); i < 10; i++ {
		require.Equal(t, 10-i, table.Get(i))
	}
}

func TestRenumberingTable_SparseUniverse(t *testing.T) {
	table := partition.NewRenumberingTableWithSizeHint(10000, 10)
	for i := uint32(0); i < 10; i++ {
		table.Set(1234+i, i)
	}
	for i := uint32(0); i < 10; i++ {
		require.Equal(t, i, table.Get(1234+i))
	}
	for i := uint32(0); i < 1234; i++ {
		require.False(t, table.ContainsKey(i))
	}
	for i := uint32(1234); i < 1244; i++ {
		require.True(t, table.ContainsKey(i))
	}
	for i := uint32(1244); i < 10000; i++ {
		require.False(t, table.ContainsKey(i))
	}
}
