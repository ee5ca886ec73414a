package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benjaminfaber/bvhtraverse/pkg/tree"
)

// Worked example: 5 real leaves padded to 8 leaf slots (3 virtual leaves),
// levels = 4 (root=1, leaf level=4). Leaf slots are numbered 0..7 and map
// to implicit indices 8..15; slots 0..4 are real, 5..7 are virtual.
//
// Tree shape (implicit indices):
//
//	level1:        1
//	level2:      2   3
//	level3:    4  5 6  7
//	level4:  8 9 10 11 12 13 14 15
//
// node6 (children 12,13) has a real left leaf (slot4) and virtual right
// leaf (slot5): node6 itself is real. node7 (children 14,15) has both
// leaves virtual: node7 itself is virtual and unstored.
func fiveLeafMeta() tree.Metadata {
	return tree.Metadata{Levels: 4, VirtualLeaves: 3}
}

func TestLevelOf(t *testing.T) {
	require.Equal(t, 1, tree.LevelOf(1))
	require.Equal(t, 2, tree.LevelOf(2))
	require.Equal(t, 2, tree.LevelOf(3))
	require.Equal(t, 3, tree.LevelOf(4))
	require.Equal(t, 3, tree.LevelOf(7))
	require.Equal(t, 4, tree.LevelOf(8))
	require.Equal(t, 4, tree.LevelOf(15))
}

func TestIsVirtual_FiveLeaves(t *testing.T) {
	m := fiveLeafMeta()

	// Internal levels: only node7 (level 3) is fully virtual.
	require.False(t, m.IsVirtual(1)) // root
	require.False(t, m.IsVirtual(2))
	require.False(t, m.IsVirtual(3))
	require.False(t, m.IsVirtual(4))
	require.False(t, m.IsVirtual(5))
	require.False(t, m.IsVirtual(6)) // real left leaf, virtual right leaf
	require.True(t, m.IsVirtual(7))  // both leaves virtual

	// Leaf level: slots 0..4 (implicit 8..12) real, 5..7 (implicit 13..15) virtual.
	require.False(t, m.IsVirtual(8))
	require.False(t, m.IsVirtual(12))
	require.True(t, m.IsVirtual(13))
	require.True(t, m.IsVirtual(14))
	require.True(t, m.IsVirtual(15))
}

func TestVirtualNodesBefore_FiveLeaves(t *testing.T) {
	m := fiveLeafMeta()

	// No virtual internal node precedes any node at levels 1-3: the
	// lone virtual internal node (7) lives at level 3 itself, so
	// nothing strictly before levels 1, 2, or 3 is virtual.
	require.Equal(t, 0, m.VirtualNodesBefore(1))
	require.Equal(t, 0, m.VirtualNodesBefore(2))
	require.Equal(t, 0, m.VirtualNodesBefore(3))
}

func TestStorageIndex_FiveLeaves(t *testing.T) {
	m := fiveLeafMeta()

	// With nothing virtual before levels 1-3, storage index is the
	// implicit index shifted down by one (the root lands on 0), and
	// every real internal node gets a distinct slot.
	require.Equal(t, 0, m.StorageIndex(1, 1))
	require.Equal(t, 1, m.StorageIndex(2, 2))
	require.Equal(t, 2, m.StorageIndex(3, 2))
	require.Equal(t, 3, m.StorageIndex(4, 3))
	require.Equal(t, 4, m.StorageIndex(5, 3))
	require.Equal(t, 5, m.StorageIndex(6, 3))
}

func TestNumAbove(t *testing.T) {
	require.Equal(t, 0, tree.Metadata{Levels: 1}.NumAbove())
	require.Equal(t, 1, tree.Metadata{Levels: 2}.NumAbove())
	require.Equal(t, 7, fiveLeafMeta().NumAbove()) // 2^3 - 1
}

func TestLeafOrderIndex(t *testing.T) {
	m := fiveLeafMeta()
	require.Equal(t, 8, m.LeafLevelStart())

	order := []int{4, 0, 3, 1, 2, 0, 0, 0} // last 3 slots unused (virtual)

	require.Equal(t, 4, m.LeafOrderIndex(8, order))  // slot 0
	require.Equal(t, 0, m.LeafOrderIndex(9, order))  // slot 1
	require.Equal(t, 2, m.LeafOrderIndex(12, order)) // slot 4, last real leaf
}

// A single-leaf tree (no padding) has one level and no internal nodes.
func TestMetadata_SingleLeaf(t *testing.T) {
	m := tree.Metadata{Levels: 1, VirtualLeaves: 0}
	require.Equal(t, 0, m.NumAbove())
	require.False(t, m.IsVirtual(1))
	require.Equal(t, 0, m.LeafOrderIndex(1, []int{0}))
}

// A perfectly-balanced tree (leaf count already a power of two) has no
// virtual leaves at all, so every position at every level is real.
func TestMetadata_NoPadding(t *testing.T) {
	m := tree.Metadata{Levels: 3, VirtualLeaves: 0} // 4 real leaves, no padding
	for implicit := 1; implicit <= 7; implicit++ {
		require.False(t, m.IsVirtual(implicit), "implicit %d", implicit)
	}
	require.Equal(t, 0, m.VirtualNodesBefore(2))
	require.Equal(t, 0, m.VirtualNodesBefore(3))
}
