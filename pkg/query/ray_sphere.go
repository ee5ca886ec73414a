package query

import "github.com/benjaminfaber/bvhtraverse/pkg/bvol"

// HitSphereRay3 tests a ray against a 3D bounding sphere by solving
// ||(p+t*d)-x||^2 == r^2. The origin-inside and b<=0 shortcuts avoid an
// actual sqrt: a forward root exists without computing t explicitly.
func HitSphereRay3[T bvol.Float](s bvol.BSphere3[T], ray Ray3[T]) bool {
	oc := ray.Origin.Sub(s.X)

	a := bvol.Dot3(ray.Dir, ray.Dir)
	b := 2 * bvol.Dot3(oc, ray.Dir)
	c := bvol.Dot3(oc, oc) - s.R*s.R
	delta := b*b - 4*a*c

	if delta < 0 {
		return false
	}
	if c <= 0 {
		return true // ray origin is inside the sphere
	}
	return b <= 0
}
