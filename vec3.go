package vecs

import "fmt"

// Vec3 is a 3D vector.
type Vec3[T Float] struct {
	x, y, z T
}

// V3 returns a new Vec3 with the given components.
func V3[T Float](x, y, z T) Vec3[T] { return Vec3[T]{x: x, y: y, z: z} }

// X returns the x component.
func (v Vec3[T]) X() T { return v.x }

// Y returns the y component.
func (v Vec3[T]) Y() T { return v.y }

// Z returns the z component.
func (v Vec3[T]) Z() T { return v.z }

// Set replaces all three components in place.
func (v *Vec3[T]) Set(x, y, z T) {
	v.x = x
	v.y = y
	v.z = z
}

// Add returns v+w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] { return Vec3[T]{v.x + w.x, v.y + w.y, v.z + w.z} }

// Sub returns v-w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] { return Vec3[T]{v.x - w.x, v.y - w.y, v.z - w.z} }

// AddAssign adds w to v in place.
func (v *Vec3[T]) AddAssign(w Vec3[T]) {
	v.x += w.x
	v.y += w.y
	v.z += w.z
}

// SubAssign subtracts w from v in place.
func (v *Vec3[T]) SubAssign(w Vec3[T]) {
	v.x -= w.x
	v.y -= w.y
	v.z -= w.z
}

// Mul returns the componentwise product of v and w.
func (v Vec3[T]) Mul(w Vec3[T]) Vec3[T] { return Vec3[T]{v.x * w.x, v.y * w.y, v.z * w.z} }

// MulScalar returns v scaled by s.
func (v Vec3[T]) MulScalar(s T) Vec3[T] { return Vec3[T]{v.x * s, v.y * s, v.z * s} }

// Div returns the componentwise quotient of v and w. Zero components in w
// are not checked and produce Inf or NaN.
func (v Vec3[T]) Div(w Vec3[T]) Vec3[T] { return Vec3[T]{v.x / w.x, v.y / w.y, v.z / w.z} }

// DivScalar returns v divided by s. A zero s is not checked.
func (v Vec3[T]) DivScalar(s T) Vec3[T] { return Vec3[T]{v.x / s, v.y / s, v.z / s} }

// ScalarDiv3 returns the componentwise quotient (s/v.x, s/v.y, s/v.z).
func ScalarDiv3[T Float](s T, v Vec3[T]) Vec3[T] { return Vec3[T]{s / v.x, s / v.y, s / v.z} }

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v.x, -v.y, -v.z} }

// Dot returns the dot product of v and w.
func (v Vec3[T]) Dot(w Vec3[T]) T { return v.x*w.x + v.y*w.y + v.z*w.z }

// Cross returns the right-handed cross product of v and w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.y*w.z - v.z*w.y,
		v.z*w.x - v.x*w.z,
		v.x*w.y - v.y*w.x,
	}
}

// Length returns sqrt(x² + y² + z²). The zero vector has length 0.
func (v Vec3[T]) Length() T { return sqrt(v.x*v.x + v.y*v.y + v.z*v.z) }

// LengthSquared returns x² + y² + z², avoiding the square root.
func (v Vec3[T]) LengthSquared() T { return v.x*v.x + v.y*v.y + v.z*v.z }

// Normalize returns v scaled to unit length. The zero vector yields NaN
// components.
func (v Vec3[T]) Normalize() Vec3[T] { return v.DivScalar(v.Length()) }

// Abs returns the componentwise absolute value of v.
func (v Vec3[T]) Abs() Vec3[T] { return Vec3[T]{abs(v.x), abs(v.y), abs(v.z)} }

// String formats v as "(x, y, z)".
func (v Vec3[T]) String() string { return fmt.Sprintf("(%v, %v, %v)", v.x, v.y, v.z) }
