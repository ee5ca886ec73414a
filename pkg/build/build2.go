package build

import (
	"sort"

	"github.com/benjaminfaber/bvhtraverse/pkg/bvherrs"
	"github.com/benjaminfaber/bvhtraverse/pkg/bvol"
	"github.com/benjaminfaber/bvhtraverse/pkg/tree"
)

// BuildBVH2 constructs a BVH2 over a list of 2D segments, each given as
// its two endpoints. Leaves are ordered by 2D Hilbert index.
func BuildBVH2[T bvol.Float](segments [][2]bvol.Vec2[T]) (*BVH2[T], error) {
	n := len(segments)
	if n == 0 {
		return nil, bvherrs.ErrEmptyLeafSet
	}

	leaves := make([]bvol.BBox2[T], n)
	scene := bvol.BBox2FromSegment(segments[0][0], segments[0][1])
	for i, seg := range segments {
		leaves[i] = bvol.BBox2FromSegment(seg[0], seg[1])
		scene = scene.Union(leaves[i])
	}

	order := hilbertOrder2(leaves, scene)

	paddedLeaves := nextPow2(n)
	levels := levelsFor(paddedLeaves)
	meta := tree.Metadata{Levels: levels, VirtualLeaves: paddedLeaves - n}

	b := &builder2[T]{
		leaves: leaves,
		order:  order,
		meta:   meta,
		nodes:  make([]bvol.BBox2[T], meta.NumAbove()),
	}
	if levels > 1 {
		b.build(1, 1, 0, paddedLeaves)
	}

	return &BVH2[T]{Meta: meta, Nodes: b.nodes, Leaves: leaves, Order: order, Dim: 2}, nil
}

func hilbertOrder2[T bvol.Float](leaves []bvol.BBox2[T], scene bvol.BBox2[T]) []int {
	n := len(leaves)
	codes := make([]uint32, n)
	for i, box := range leaves {
		c := box.Center()
		x := quantizeHilbert(float64(c.X), float64(scene.Lo.X), float64(scene.Up.X))
		y := quantizeHilbert(float64(c.Y), float64(scene.Lo.Y), float64(scene.Up.Y))
		codes[i] = hilbertXYToIndex(x, y)
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return codes[order[i]] < codes[order[j]] })
	return order
}

const hilbertGridMax = (1 << hilbertBits) - 1

func quantizeHilbert(v, lo, up float64) uint32 {
	if up <= lo {
		return 0
	}
	q := (v - lo) / (up - lo) * hilbertGridMax
	if q < 0 {
		return 0
	}
	if q > hilbertGridMax {
		return hilbertGridMax
	}
	return uint32(q)
}

type builder2[T bvol.Float] struct {
	leaves []bvol.BBox2[T]
	order  []int
	meta   tree.Metadata
	nodes  []bvol.BBox2[T]
}

func (b *builder2[T]) leafBox(slot int) bvol.BBox2[T] {
	return b.leaves[b.order[slot]]
}

func (b *builder2[T]) build(implicit, level, lo, hi int) bvol.BBox2[T] {
	if level == b.meta.Levels {
		return b.leafBox(lo)
	}

	mid := (lo + hi) / 2
	left := b.build(2*implicit, level+1, lo, mid)

	realLeaves := len(b.leaves)
	if mid >= realLeaves {
		b.nodes[b.meta.StorageIndex(implicit, level)] = left
		return left
	}

	right := b.build(2*implicit+1, level+1, mid, hi)
	box := left.Union(right)
	b.nodes[b.meta.StorageIndex(implicit, level)] = box
	return box
}
