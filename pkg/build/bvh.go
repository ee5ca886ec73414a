// Package build is the BVH construction collaborator the traversal
// core assumes but does not itself implement. It produces a real,
// Morton/Hilbert-ordered BVH from a flat primitive list: a minimal
// builder, not a full SAH tree, since tree construction proper sits
// outside the traversal core's contract.
package build

import (
	"math/bits"

	"github.com/benjaminfaber/bvhtraverse/pkg/bvol"
	"github.com/benjaminfaber/bvhtraverse/pkg/tree"
)

// BVH3 is a complete, built bounding-volume hierarchy over 3D
// triangles: node array, leaf array (indexed by original primitive
// index), the Morton-order permutation, and level metadata.
type BVH3[T bvol.Float] struct {
	Meta   tree.Metadata
	Nodes  []bvol.BBox3[T]
	Leaves []bvol.BBox3[T]
	Order  []int
	Dim    int
}

// BVH2 is the 2D analog of BVH3, built over line segments.
type BVH2[T bvol.Float] struct {
	Meta   tree.Metadata
	Nodes  []bvol.BBox2[T]
	Leaves []bvol.BBox2[T]
	Order  []int
	Dim    int
}

// nextPow2 returns the smallest power of two >= n, n >= 1.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// levelsFor returns the total level count (root=1, leaf level=levels)
// of a complete binary tree with paddedLeaves leaf slots.
func levelsFor(paddedLeaves int) int {
	return bits.Len(uint(paddedLeaves))
}
