package query_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benjaminfaber/bvhtraverse/pkg/bvol"
	"github.com/benjaminfaber/bvhtraverse/pkg/query"
)

func v3(x, y, z float64) bvol.Vec3[float64] { return bvol.Vec3[float64]{X: x, Y: y, Z: z} }

// Scenario A: 3D ray-box hit.
func TestHitBoxRay3_Hit(t *testing.T) {
	box := bvol.NewBBox3(v3(0, 0, 0), v3(1, 1, 1))
	ray := query.Ray3[float64]{Origin: v3(-1, 0.5, 0.5), Dir: v3(1, 0, 0)}
	require.True(t, query.HitBoxRay3(box, ray))
}

// Scenario B: 3D ray-box backward (behind origin) misses.
func TestHitBoxRay3_Backward(t *testing.T) {
	box := bvol.NewBBox3(v3(0, 0, 0), v3(1, 1, 1))
	ray := query.Ray3[float64]{Origin: v3(-1, 0.5, 0.5), Dir: v3(-1, 0, 0)}
	require.False(t, query.HitBoxRay3(box, ray))
}

// Boundary: ray tangent to a box corner has tmin == tmax, which is a hit.
func TestHitBoxRay3_TangentCorner(t *testing.T) {
	box := bvol.NewBBox3(v3(0, 0, 0), v3(1, 1, 1))
	ray := query.Ray3[float64]{Origin: v3(-1, 1, 1), Dir: v3(1, 0, 0)}
	require.True(t, query.HitBoxRay3(box, ray))
}

// Boundary: ray parallel to a slab and outside it misses (inv_d = +Inf
// with the origin above the Y slab makes both Y t-values -Inf, pushing
// tmax to -Inf).
func TestHitBoxRay3_ParallelOutsideSlab(t *testing.T) {
	box := bvol.NewBBox3(v3(0, 0, 0), v3(1, 1, 1))
	ray := query.Ray3[float64]{Origin: v3(0.5, 2, 0.5), Dir: v3(1, 0, 0)}
	require.False(t, query.HitBoxRay3(box, ray))
}

// Boundary: ray origin inside a sphere is always a hit, regardless of
// direction.
func TestHitSphereRay3_OriginInside(t *testing.T) {
	s := bvol.BSphere3[float64]{X: v3(0, 0, 0), R: 5}
	for _, dir := range []bvol.Vec3[float64]{v3(1, 0, 0), v3(-1, 0, 0), v3(0, 0, 1)} {
		ray := query.Ray3[float64]{Origin: v3(1, 1, 1), Dir: dir}
		require.True(t, query.HitSphereRay3(s, ray))
	}
}

func TestHitSphereRay3_Miss(t *testing.T) {
	s := bvol.BSphere3[float64]{X: v3(0, 0, 0), R: 1}
	ray := query.Ray3[float64]{Origin: v3(10, 10, 10), Dir: v3(1, 0, 0)}
	require.False(t, query.HitSphereRay3(s, ray))
}

// Boundary: a point exactly on a box face is a hit (<= on both sides).
func TestPointInBox3_OnFace(t *testing.T) {
	box := bvol.NewBBox3(v3(0, 0, 0), v3(1, 1, 1))
	require.True(t, query.PointInBox3(box, v3(1, 0.5, 0.5)))
}

// Boundary: a point exactly on a sphere's surface is a miss (strict <).
func TestPointInSphere3_OnSurface(t *testing.T) {
	s := bvol.BSphere3[float64]{X: v3(0, 0, 0), R: 2}
	require.False(t, query.PointInSphere3(s, v3(2, 0, 0)))
	require.True(t, query.PointInSphere3(s, v3(1, 0, 0)))
}
