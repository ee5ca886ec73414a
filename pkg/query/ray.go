// Package query implements the ray/point intersection predicates against
// bounding boxes and bounding spheres: the slab method for boxes, the
// quadratic-root method for spheres.
package query

import "github.com/benjaminfaber/bvhtraverse/pkg/bvol"

// Ray2 is a ray in 2D: origin p and direction d.
type Ray2[T bvol.Float] struct {
	Origin, Dir bvol.Vec2[T]
}

// Ray3 is a ray in 3D.
type Ray3[T bvol.Float] struct {
	Origin, Dir bvol.Vec3[T]
}
