package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector used by the per-pixel shading path
type Vec3F struct {
	X, Y, Z float64
}

func V3F(x, y, z float64) Vec3F {
	return Vec3F{x, y, z}
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FMagSq(v Vec3F) float64 {
	return V3FDot(v, v)
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FNormalize returns the unit vector of v, zero vector for zero input
func V3FNormalize(v Vec3F) Vec3F {
	n, _ := V3FUnit(v)
	return n
}

// V3FUnit returns the unit vector of v and false when v has zero magnitude
// One division, three multiplies
func V3FUnit(v Vec3F) (Vec3F, bool) {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}, false
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}, true
}

// V3FReflect reflects incident vector i about normal n: i - 2(i·n)n
// With unit i and unit n the result is unit length; no renormalization
func V3FReflect(i, n Vec3F) Vec3F {
	k := 2.0 * V3FDot(i, n)
	return Vec3F{i.X - k*n.X, i.Y - k*n.Y, i.Z - k*n.Z}
}

// V3FNear reports whether a and b differ by at most eps on every axis
func V3FNear(a, b Vec3F, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}
