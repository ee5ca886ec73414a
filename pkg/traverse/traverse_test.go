package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benjaminfaber/bvhtraverse/pkg/build"
	"github.com/benjaminfaber/bvhtraverse/pkg/bvol"
	"github.com/benjaminfaber/bvhtraverse/pkg/query"
	"github.com/benjaminfaber/bvhtraverse/pkg/traverse"
)

func v3(x, y, z float64) bvol.Vec3[float64] { return bvol.Vec3[float64]{X: x, Y: y, Z: z} }

func triAt(cx, cy, cz float64) [3]bvol.Vec3[float64] {
	return [3]bvol.Vec3[float64]{
		v3(cx, cy, cz),
		v3(cx+0.2, cy, cz),
		v3(cx, cy+0.2, cz),
	}
}

// Scenario F: a 10x10x10 grid of triangles, queried with one point
// landing exactly at each triangle's first vertex plus a handful of
// points known to miss everything.
func buildGrid(t *testing.T) (*build.BVH3[float64], [][3]bvol.Vec3[float64]) {
	t.Helper()
	var tris [][3]bvol.Vec3[float64]
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			for z := 0; z < 10; z++ {
				tris = append(tris, triAt(float64(x), float64(y), float64(z)))
			}
		}
	}
	bvh, err := build.BuildBVH3[float64](tris)
	require.NoError(t, err)
	return bvh, tris
}

func TestScenarioF_GridPointQuery(t *testing.T) {
	bvh, tris := buildGrid(t)

	points := make([]bvol.Vec3[float64], 0, len(tris)+2)
	for _, tri := range tris {
		points = append(points, tri[0]) // each triangle's first vertex
	}
	points = append(points, v3(100, 100, 100), v3(-1, -1, -1)) // misses

	pairs, err := traverse.IntersectPoints3(bvh, points, traverse.DefaultOptions())
	require.NoError(t, err)

	hitQueries := make(map[int]bool)
	for _, p := range pairs {
		hitQueries[p.Query] = true
	}
	for q := 0; q < len(tris); q++ {
		require.True(t, hitQueries[q], "point %d should hit its own triangle's box", q)
	}
	require.False(t, hitQueries[len(tris)], "far-away point should miss everything")
	require.False(t, hitQueries[len(tris)+1], "far-away point should miss everything")
}

// bruteForce computes the same (leaf, query) pair set by testing every
// query against every leaf bounding box directly, bypassing the tree.
func bruteForcePoints(bvh *build.BVH3[float64], points []bvol.Vec3[float64]) map[[2]int]bool {
	out := make(map[[2]int]bool)
	for leaf := range bvh.Leaves {
		for q, p := range points {
			if query.PointInBox3(bvh.Leaves[leaf], p) {
				out[[2]int{leaf, q}] = true
			}
		}
	}
	return out
}

func pairSet(pairs []traverse.Pair) map[[2]int]bool {
	out := make(map[[2]int]bool)
	for _, p := range pairs {
		out[[2]int{p.Node, p.Query}] = true
	}
	return out
}

// Invariant 5: the traversal result set equals the brute-force
// soundness-and-completeness reference set.
func TestInvariant5_SoundnessAndCompleteness(t *testing.T) {
	bvh, _ := buildGrid(t)

	points := []bvol.Vec3[float64]{
		v3(0, 0, 0), v3(3.1, 3.1, 3.1), v3(9, 9, 9), v3(50, 50, 50), v3(-5, -5, -5),
	}

	pairs, err := traverse.IntersectPoints3(bvh, points, traverse.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, bruteForcePoints(bvh, points), pairSet(pairs))
}

// Invariant 6: the result set is invariant under num_threads, though
// the order of pairs may differ between thread counts.
func TestInvariant6_ThreadCountInvariance(t *testing.T) {
	bvh, _ := buildGrid(t)

	points := make([]bvol.Vec3[float64], 0, 400)
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			points = append(points, v3(float64(x)+0.05, float64(y)+0.05, 0))
			points = append(points, v3(float64(x)+0.05, float64(y)+0.05, 5))
		}
	}

	var reference map[[2]int]bool
	for _, numThreads := range []int{1, 2, 3, 4, 8, 16} {
		opts := traverse.Options{NumThreads: numThreads, MinTraversalsPerThread: 4}
		pairs, err := traverse.IntersectPoints3(bvh, points, opts)
		require.NoError(t, err)

		got := pairSet(pairs)
		if reference == nil {
			reference = got
		} else {
			require.Equal(t, reference, got, "result set changed at numThreads=%d", numThreads)
		}
	}
}

func TestIntersectRays3_HitsExpectedLeaf(t *testing.T) {
	bvh, _ := buildGrid(t)

	rays := []query.Ray3[float64]{
		{Origin: v3(0.05, 0.05, -5), Dir: v3(0, 0, 1)},  // should hit triangle at (0,0,0)
		{Origin: v3(0.05, 0.05, -5), Dir: v3(0, 0, -1)}, // backward, should miss
	}

	pairs, err := traverse.IntersectRays3(bvh, rays, traverse.DefaultOptions())
	require.NoError(t, err)

	hitFirstRay := false
	for _, p := range pairs {
		if p.Query == 0 {
			hitFirstRay = true
		}
		require.NotEqual(t, 1, p.Query, "backward ray must not hit anything")
	}
	require.True(t, hitFirstRay)
}

func TestOptions_Validate(t *testing.T) {
	require.NoError(t, traverse.DefaultOptions().Validate())
	require.Error(t, traverse.Options{NumThreads: 0, MinTraversalsPerThread: 1}.Validate())
	require.Error(t, traverse.Options{NumThreads: 1, MinTraversalsPerThread: 0}.Validate())
}

