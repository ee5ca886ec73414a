package traverse

import (
	"github.com/benjaminfaber/bvhtraverse/pkg/build"
	"github.com/benjaminfaber/bvhtraverse/pkg/bvol"
	"github.com/benjaminfaber/bvhtraverse/pkg/query"
)

// IntersectPoints2 returns every (leaf_primitive_index, point_index)
// pair where points[point_index] lies within that leaf's bounding box.
func IntersectPoints2[T bvol.Float](bvh *build.BVH2[T], points []bvol.Vec2[T], opts Options) ([]Pair, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	hit := func(box bvol.BBox2[T], q int) bool { return query.PointInBox2(box, points[q]) }
	return run2(bvh, len(points), hit, opts), nil
}

// IntersectRays2 returns every (leaf_primitive_index, ray_index) pair
// where rays[ray_index] intersects that leaf's bounding box.
func IntersectRays2[T bvol.Float](bvh *build.BVH2[T], rays []query.Ray2[T], opts Options) ([]Pair, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	hit := func(box bvol.BBox2[T], q int) bool { return query.HitBoxRay2(box, rays[q]) }
	return run2(bvh, len(rays), hit, opts), nil
}

func run2[T bvol.Float](bvh *build.BVH2[T], numQueries int, hit func(bvol.BBox2[T], int) bool, opts Options) []Pair {
	if numQueries == 0 {
		return nil
	}

	src := make([]Pair, numQueries)
	for q := 0; q < numQueries; q++ {
		src[q] = Pair{Node: 1, Query: q}
	}

	for level := 1; level < bvh.Meta.Levels; level++ {
		src = forkJoin(src, opts, 2, func(taskSrc, out []Pair) int {
			return internalStep2(bvh, level, taskSrc, hit, out)
		})
		if len(src) == 0 {
			return nil
		}
	}

	return forkJoin(src, opts, 1, func(taskSrc, out []Pair) int {
		return leafStep2(bvh, taskSrc, hit, out)
	})
}

func internalStep2[T bvol.Float](bvh *build.BVH2[T], level int, src []Pair, hit func(bvol.BBox2[T], int) bool, out []Pair) int {
	n := 0
	for _, pr := range src {
		box := bvh.Nodes[bvh.Meta.StorageIndex(pr.Node, level)]
		if !hit(box, pr.Query) {
			continue
		}
		left := 2 * pr.Node
		out[n] = Pair{Node: left, Query: pr.Query}
		n++
		if right := left + 1; !bvh.Meta.IsVirtual(right) {
			out[n] = Pair{Node: right, Query: pr.Query}
			n++
		}
	}
	return n
}

func leafStep2[T bvol.Float](bvh *build.BVH2[T], src []Pair, hit func(bvol.BBox2[T], int) bool, out []Pair) int {
	n := 0
	for _, pr := range src {
		iorder := bvh.Meta.LeafOrderIndex(pr.Node, bvh.Order)
		if hit(bvh.Leaves[iorder], pr.Query) {
			out[n] = Pair{Node: iorder, Query: pr.Query}
			n++
		}
	}
	return n
}
