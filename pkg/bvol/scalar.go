// Package bvol implements the bounding-volume primitives shared by the
// traversal core: axis-aligned boxes and bounding spheres in 2 and 3
// dimensions, and the unrolled scalar helpers they're built from.
package bvol

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the element type bounding volumes are parameterized over.
type Float = constraints.Float

// Min2 returns the smaller of a and b using a plain comparison, not
// math.Min — unlike math.Min, a NaN operand does not always win here,
// so a stray NaN coordinate can silently poison downstream box math
// instead of being specially handled.
func Min2[T Float](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max2 returns the larger of a and b using a plain comparison.
func Max2[T Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min3 returns the smallest of a, b, c.
func Min3[T Float](a, b, c T) T {
	return Min2(Min2(a, b), c)
}

// Max3 returns the largest of a, b, c.
func Max3[T Float](a, b, c T) T {
	return Max2(Max2(a, b), c)
}

// Pow2 returns 1<<k.
func Pow2(k int) int {
	return 1 << uint(k)
}

// epsilon returns the machine epsilon of T (the gap between 1 and the
// next representable value), used by the circumsphere construction's
// collinearity test.
func epsilon[T Float]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math.Nextafter32(1, 2) - 1)
	default:
		return T(math.Nextafter(1, 2) - 1)
	}
}

func sqrtT[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}
