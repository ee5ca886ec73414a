package query

import "github.com/benjaminfaber/bvhtraverse/pkg/bvol"

// PointInBox3 tests whether p lies within box, inclusive of the faces.
func PointInBox3[T bvol.Float](box bvol.BBox3[T], p bvol.Vec3[T]) bool {
	return box.Lo.X <= p.X && p.X <= box.Up.X &&
		box.Lo.Y <= p.Y && p.Y <= box.Up.Y &&
		box.Lo.Z <= p.Z && p.Z <= box.Up.Z
}

// PointInBox2 tests whether p lies within box, inclusive of the faces.
func PointInBox2[T bvol.Float](box bvol.BBox2[T], p bvol.Vec2[T]) bool {
	return box.Lo.X <= p.X && p.X <= box.Up.X &&
		box.Lo.Y <= p.Y && p.Y <= box.Up.Y
}

// PointInSphere3 tests whether p lies strictly within sphere; a point
// exactly on the surface is a miss.
func PointInSphere3[T bvol.Float](s bvol.BSphere3[T], p bvol.Vec3[T]) bool {
	return bvol.Dist3Sq(s.X, p) < s.R*s.R
}

// PointInSphere2 tests whether p lies strictly within the circle.
func PointInSphere2[T bvol.Float](s bvol.BSphere2[T], p bvol.Vec2[T]) bool {
	return bvol.Dist2Sq(s.X, p) < s.R*s.R
}
