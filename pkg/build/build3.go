package build

import (
	"sort"

	"github.com/benjaminfaber/bvhtraverse/pkg/bvherrs"
	"github.com/benjaminfaber/bvhtraverse/pkg/bvol"
	"github.com/benjaminfaber/bvhtraverse/pkg/tree"
)

// BuildBVH3 constructs a BVH3 over a list of triangles, each given as
// its three vertices. Leaves are ordered by 3D Morton code so spatially
// nearby triangles end up in nearby tree positions; the returned Order
// records, for each leaf slot in that Morton order, the original index
// into triangles.
func BuildBVH3[T bvol.Float](triangles [][3]bvol.Vec3[T]) (*BVH3[T], error) {
	n := len(triangles)
	if n == 0 {
		return nil, bvherrs.ErrEmptyLeafSet
	}

	leaves := make([]bvol.BBox3[T], n)
	scene := bvol.BBox3FromTriangle(triangles[0][0], triangles[0][1], triangles[0][2])
	for i, tri := range triangles {
		leaves[i] = bvol.BBox3FromTriangle(tri[0], tri[1], tri[2])
		scene = scene.Union(leaves[i])
	}

	order := mortonOrder3(leaves, scene)

	paddedLeaves := nextPow2(n)
	levels := levelsFor(paddedLeaves)
	meta := tree.Metadata{Levels: levels, VirtualLeaves: paddedLeaves - n}

	b := &builder3[T]{
		leaves: leaves,
		order:  order,
		meta:   meta,
		nodes:  make([]bvol.BBox3[T], meta.NumAbove()),
	}
	if levels > 1 {
		b.build(1, 1, 0, paddedLeaves)
	}

	return &BVH3[T]{Meta: meta, Nodes: b.nodes, Leaves: leaves, Order: order, Dim: 3}, nil
}

func mortonOrder3[T bvol.Float](leaves []bvol.BBox3[T], scene bvol.BBox3[T]) []int {
	n := len(leaves)
	codes := make([]uint64, n)
	for i, box := range leaves {
		c := box.Center()
		x := quantize(float64(c.X), float64(scene.Lo.X), float64(scene.Up.X))
		y := quantize(float64(c.Y), float64(scene.Lo.Y), float64(scene.Up.Y))
		z := quantize(float64(c.Z), float64(scene.Lo.Z), float64(scene.Up.Z))
		codes[i] = morton3D(x, y, z)
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return codes[order[i]] < codes[order[j]] })
	return order
}

// builder3 recursively fills the internal-node array from the
// Morton-ordered leaves. Leaf-slot ranges are half-open over the
// padded leaf-slot space [0, paddedLeaves); a range's low end is
// always a real slot, since virtual leaves are only ever the trailing
// padding appended after every real leaf.
type builder3[T bvol.Float] struct {
	leaves []bvol.BBox3[T]
	order  []int
	meta   tree.Metadata
	nodes  []bvol.BBox3[T]
}

func (b *builder3[T]) leafBox(slot int) bvol.BBox3[T] {
	return b.leaves[b.order[slot]]
}

// build returns the bounding box of leaf-slot range [lo,hi) rooted at
// implicit index `implicit` at level `level`, storing internal-node
// boxes along the way. The caller guarantees lo is a real (non-virtual)
// slot.
func (b *builder3[T]) build(implicit, level, lo, hi int) bvol.BBox3[T] {
	if level == b.meta.Levels {
		return b.leafBox(lo)
	}

	mid := (lo + hi) / 2
	left := b.build(2*implicit, level+1, lo, mid)

	realLeaves := len(b.leaves)
	if mid >= realLeaves {
		// Right subtree is entirely virtual padding: never stored,
		// not recursed into.
		b.nodes[b.meta.StorageIndex(implicit, level)] = left
		return left
	}

	right := b.build(2*implicit+1, level+1, mid, hi)
	box := left.Union(right)
	b.nodes[b.meta.StorageIndex(implicit, level)] = box
	return box
}
