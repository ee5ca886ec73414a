package bvol

// BBox3 is an axis-aligned bounding box in 3D. Invariant: Lo[i] <= Up[i]
// per axis whenever constructed from real geometry; Lo == Up for a
// degenerate (point) box.
type BBox3[T Float] struct {
	Lo, Up Vec3[T]
}

// NewBBox3 stores lo and up verbatim.
func NewBBox3[T Float](lo, up Vec3[T]) BBox3[T] {
	return BBox3[T]{Lo: lo, Up: up}
}

// BBox3FromPoints builds the box enclosing two points.
func BBox3FromPoints[T Float](p1, p2 Vec3[T]) BBox3[T] {
	return BBox3[T]{
		Lo: Vec3[T]{Min2(p1.X, p2.X), Min2(p1.Y, p2.Y), Min2(p1.Z, p2.Z)},
		Up: Vec3[T]{Max2(p1.X, p2.X), Max2(p1.Y, p2.Y), Max2(p1.Z, p2.Z)},
	}
}

// BBox3FromTriangle builds the box enclosing a triangle's three vertices.
func BBox3FromTriangle[T Float](p1, p2, p3 Vec3[T]) BBox3[T] {
	return BBox3[T]{
		Lo: Vec3[T]{Min3(p1.X, p2.X, p3.X), Min3(p1.Y, p2.Y, p3.Y), Min3(p1.Z, p2.Z, p3.Z)},
		Up: Vec3[T]{Max3(p1.X, p2.X, p3.X), Max3(p1.Y, p2.Y, p3.Y), Max3(p1.Z, p2.Z, p3.Z)},
	}
}

// BBox3FromSphere converts a bounding sphere to its enclosing box.
func BBox3FromSphere[T Float](s BSphere3[T]) BBox3[T] {
	r := Vec3[T]{s.R, s.R, s.R}
	return BBox3[T]{Lo: s.X.Sub(r), Up: s.X.Add(r)}
}

// BBox3FromSpheres returns the box enclosing two spheres. If one sphere
// fully encloses the other, the box is just the larger sphere's box;
// otherwise it's the box around both spheres' expanded corners.
func BBox3FromSpheres[T Float](a, b BSphere3[T]) BBox3[T] {
	d := Dist3(a.X, b.X)
	if d+a.R <= b.R {
		return BBox3FromSphere(b)
	}
	if d+b.R <= a.R {
		return BBox3FromSphere(a)
	}
	return BBox3FromSphere(a).Union(BBox3FromSphere(b))
}

// Union returns the box enclosing both a and b.
func (a BBox3[T]) Union(b BBox3[T]) BBox3[T] {
	return BBox3[T]{
		Lo: Vec3[T]{Min2(a.Lo.X, b.Lo.X), Min2(a.Lo.Y, b.Lo.Y), Min2(a.Lo.Z, b.Lo.Z)},
		Up: Vec3[T]{Max2(a.Up.X, b.Up.X), Max2(a.Up.Y, b.Up.Y), Max2(a.Up.Z, b.Up.Z)},
	}
}

// Center returns the componentwise midpoint of Lo and Up.
func (a BBox3[T]) Center() Vec3[T] {
	return a.Lo.Add(a.Up).Scale(0.5)
}
