package bvol

// BBox2 is an axis-aligned bounding box in 2D, for line-segment geometry.
type BBox2[T Float] struct {
	Lo, Up Vec2[T]
}

// NewBBox2 stores lo and up verbatim.
func NewBBox2[T Float](lo, up Vec2[T]) BBox2[T] {
	return BBox2[T]{Lo: lo, Up: up}
}

// BBox2FromPoints builds the box enclosing two points.
func BBox2FromPoints[T Float](p1, p2 Vec2[T]) BBox2[T] {
	return BBox2[T]{
		Lo: Vec2[T]{Min2(p1.X, p2.X), Min2(p1.Y, p2.Y)},
		Up: Vec2[T]{Max2(p1.X, p2.X), Max2(p1.Y, p2.Y)},
	}
}

// BBox2FromSegment builds the box enclosing a segment's two endpoints.
// This is the same shape as BBox2FromPoints; the segment-specific name
// just documents intent at call sites.
func BBox2FromSegment[T Float](a, b Vec2[T]) BBox2[T] {
	return BBox2FromPoints(a, b)
}

// BBox2FromSphere converts a bounding circle to its enclosing box.
func BBox2FromSphere[T Float](s BSphere2[T]) BBox2[T] {
	r := Vec2[T]{s.R, s.R}
	return BBox2[T]{Lo: s.X.Sub(r), Up: s.X.Add(r)}
}

// BBox2FromSpheres returns the box enclosing two circles.
func BBox2FromSpheres[T Float](a, b BSphere2[T]) BBox2[T] {
	d := Dist2(a.X, b.X)
	if d+a.R <= b.R {
		return BBox2FromSphere(b)
	}
	if d+b.R <= a.R {
		return BBox2FromSphere(a)
	}
	return BBox2FromSphere(a).Union(BBox2FromSphere(b))
}

// Union returns the box enclosing both a and b.
func (a BBox2[T]) Union(b BBox2[T]) BBox2[T] {
	return BBox2[T]{
		Lo: Vec2[T]{Min2(a.Lo.X, b.Lo.X), Min2(a.Lo.Y, b.Lo.Y)},
		Up: Vec2[T]{Max2(a.Up.X, b.Up.X), Max2(a.Up.Y, b.Up.Y)},
	}
}

// Center returns the componentwise midpoint of Lo and Up.
func (a BBox2[T]) Center() Vec2[T] {
	return a.Lo.Add(a.Up).Scale(0.5)
}
