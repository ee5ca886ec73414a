package query

import "github.com/benjaminfaber/bvhtraverse/pkg/bvol"

// HitBoxRay3 tests a ray against a 3D box using the slab method. A
// direction component of exactly zero yields +/-Inf through division,
// which flows correctly through the min/max folding below rather than
// needing a special parallel-ray branch.
func HitBoxRay3[T bvol.Float](box bvol.BBox3[T], ray Ray3[T]) bool {
	invX := 1 / ray.Dir.X
	t1x := (box.Lo.X - ray.Origin.X) * invX
	t2x := (box.Up.X - ray.Origin.X) * invX
	tmin := bvol.Min2(t1x, t2x)
	tmax := bvol.Max2(t1x, t2x)

	invY := 1 / ray.Dir.Y
	t1y := (box.Lo.Y - ray.Origin.Y) * invY
	t2y := (box.Up.Y - ray.Origin.Y) * invY
	tmin = bvol.Max2(tmin, bvol.Min2(t1y, t2y))
	tmax = bvol.Min2(tmax, bvol.Max2(t1y, t2y))

	invZ := 1 / ray.Dir.Z
	t1z := (box.Lo.Z - ray.Origin.Z) * invZ
	t2z := (box.Up.Z - ray.Origin.Z) * invZ
	tmin = bvol.Max2(tmin, bvol.Min2(t1z, t2z))
	tmax = bvol.Min2(tmax, bvol.Max2(t1z, t2z))

	return tmin <= tmax && tmax >= 0
}

// HitBoxRay2 tests a ray against a 2D box using the slab method.
func HitBoxRay2[T bvol.Float](box bvol.BBox2[T], ray Ray2[T]) bool {
	invX := 1 / ray.Dir.X
	t1x := (box.Lo.X - ray.Origin.X) * invX
	t2x := (box.Up.X - ray.Origin.X) * invX
	tmin := bvol.Min2(t1x, t2x)
	tmax := bvol.Max2(t1x, t2x)

	invY := 1 / ray.Dir.Y
	t1y := (box.Lo.Y - ray.Origin.Y) * invY
	t2y := (box.Up.Y - ray.Origin.Y) * invY
	tmin = bvol.Max2(tmin, bvol.Min2(t1y, t2y))
	tmax = bvol.Min2(tmax, bvol.Max2(t1y, t2y))

	return tmin <= tmax && tmax >= 0
}
