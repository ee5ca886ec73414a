package bvol

// Vec2 is a 2D point or vector, parameterized over its element type so a
// caller can build a BVH of float32 segments as cheaply as float64 ones.
type Vec2[T Float] struct {
	X, Y T
}

// Vec3 is a 3D point or vector.
type Vec3[T Float] struct {
	X, Y, Z T
}

// Add returns the sum of two 2D vectors.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }

// Sub returns the difference of two 2D vectors.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }

// Scale returns the 2D vector scaled by s.
func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{v.X * s, v.Y * s} }

// Add returns the sum of two 3D vectors.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference of two 3D vectors.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns the 3D vector scaled by s.
func (v Vec3[T]) Scale(s T) Vec3[T] { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }

// Dot2 returns the dot product of two 2D vectors.
func Dot2[T Float](a, b Vec2[T]) T { return a.X*b.X + a.Y*b.Y }

// Dot3 returns the dot product of two 3D vectors.
func Dot3[T Float](a, b Vec3[T]) T { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Dist2Sq returns the squared Euclidean distance between two 2D points.
func Dist2Sq[T Float](a, b Vec2[T]) T {
	d := a.Sub(b)
	return d.X*d.X + d.Y*d.Y
}

// Dist3Sq returns the squared Euclidean distance between two 3D points.
func Dist3Sq[T Float](a, b Vec3[T]) T {
	d := a.Sub(b)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

// Dist2 returns the Euclidean distance between two 2D points.
func Dist2[T Float](a, b Vec2[T]) T { return sqrtT(Dist2Sq(a, b)) }

// Dist3 returns the Euclidean distance between two 3D points.
func Dist3[T Float](a, b Vec3[T]) T { return sqrtT(Dist3Sq(a, b)) }

// Length returns the magnitude of v.
func (v Vec2[T]) Length() T { return sqrtT(v.X*v.X + v.Y*v.Y) }

// Length returns the magnitude of v.
func (v Vec3[T]) Length() T { return sqrtT(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
