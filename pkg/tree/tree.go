// Package tree implements the implicit (array-based) binary-tree
// addressing scheme the traversal core uses: 1-based breadth-first
// numbering, virtual-node skip accounting, and the leaf-order lookup.
// It consumes BVH level metadata; it does not build trees.
package tree

import "math/bits"

// Metadata describes the shape of an implicit binary tree padded to a
// complete tree with 2^(Levels-1) leaf slots. Levels counts the root as
// level 1, so a single-leaf tree has Levels == 1 and no internal nodes.
type Metadata struct {
	Levels        int
	VirtualLeaves int
}

// LevelOf returns the 1-based level an implicit index belongs to: level
// L covers the range [2^(L-1), 2^L-1]. bits.Len gives exactly that,
// since for I in that range the position of I's highest set bit is L.
func LevelOf(implicit int) int {
	return bits.Len(uint(implicit))
}

func (m Metadata) shiftedVirtualLeaves(shift int) int {
	if shift < 0 {
		shift = 0
	}
	if shift >= 63 {
		return 0
	}
	return m.VirtualLeaves >> uint(shift)
}

// virtualAtLevel returns f(L), the count of fully-virtual (entirely
// unstored) positions AT level L: virtual_leaves >> (levels - L). Used
// by IsVirtual.
func (m Metadata) virtualAtLevel(level int) int {
	return m.shiftedVirtualLeaves(m.Levels - level)
}

// virtualNodesLevel is the intermediate quantity feeding
// VirtualNodesBefore: virtual_leaves >> (levels - (L-1)), i.e. f(L-1) —
// the virtual count one level shallower than L.
func (m Metadata) virtualNodesLevel(level int) int {
	return m.shiftedVirtualLeaves(m.Levels - (level - 1))
}

// VirtualNodesBefore returns the number of virtual positions strictly
// before level L, cumulative across all earlier levels:
// 2*virtual_nodes_level - popcount(virtual_nodes_level). Because the
// virtual suffix at every level is a contiguous run, this closed form
// telescopes the per-level virtual counts of every shallower level
// into one expression.
func (m Metadata) VirtualNodesBefore(level int) int {
	v := m.virtualNodesLevel(level)
	return 2*v - bits.OnesCount(uint(v))
}

// StorageIndex converts an implicit index at level L into the index
// into the caller's flat internal-node array. The root (implicit=1,
// level=1, VirtualNodesBefore=0) must land on storage index 0, so the
// literal implicit-VirtualNodesBefore offset needs the same 1-based-
// to-0-based correction LeafLevelStart() applies on the leaf side.
func (m Metadata) StorageIndex(implicit, level int) int {
	return implicit - m.VirtualNodesBefore(level) - 1
}

// IsVirtual reports whether implicit is one of the padding positions
// introduced to complete the binary tree. Virtual leaves — and the
// virtual internal nodes they imply — are always the rightmost
// positions at their level, since the build process appends padding
// after the real (Morton-ordered) leaves.
func (m Metadata) IsVirtual(implicit int) bool {
	level := LevelOf(implicit)
	last := (1 << uint(level)) - 1
	v := m.virtualAtLevel(level)
	return implicit > last-v
}

// NumAbove returns the count of internal-node implicit positions
// spanning levels 1..Levels-1: 2^(Levels-1) - 1.
func (m Metadata) NumAbove() int {
	if m.Levels <= 0 {
		return 0
	}
	return (1 << uint(m.Levels-1)) - 1
}

// LeafLevelStart returns the implicit index of the first leaf-level
// position (leaf slot 0): 2^(Levels-1), one more than NumAbove(). A
// naive 0-indexed leaf lookup at implicit - NumAbove() is off by one;
// the correct offset for order[] is LeafLevelStart().
func (m Metadata) LeafLevelStart() int {
	if m.Levels <= 0 {
		return 1
	}
	return 1 << uint(m.Levels-1)
}

// LeafOrderIndex maps a leaf-level implicit index to the index of its
// original primitive, via order[implicit - LeafLevelStart()].
func (m Metadata) LeafOrderIndex(implicit int, order []int) int {
	return order[implicit-m.LeafLevelStart()]
}
