package vecs

import (
	"fmt"
	"math"
)

// Float is the component constraint for Vec2 and Vec3.
type Float interface {
	~float32 | ~float64
}

// Vec2 is a 2D vector.
type Vec2[T Float] struct {
	x, y T
}

// V2 returns a new Vec2 with the given components.
func V2[T Float](x, y T) Vec2[T] { return Vec2[T]{x: x, y: y} }

// X returns the x component.
func (v Vec2[T]) X() T { return v.x }

// Y returns the y component.
func (v Vec2[T]) Y() T { return v.y }

// Set replaces both components in place.
func (v *Vec2[T]) Set(x, y T) {
	v.x = x
	v.y = y
}

// Add returns v+w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] { return Vec2[T]{v.x + w.x, v.y + w.y} }

// Sub returns v-w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] { return Vec2[T]{v.x - w.x, v.y - w.y} }

// AddAssign adds w to v in place.
func (v *Vec2[T]) AddAssign(w Vec2[T]) {
	v.x += w.x
	v.y += w.y
}

// SubAssign subtracts w from v in place.
func (v *Vec2[T]) SubAssign(w Vec2[T]) {
	v.x -= w.x
	v.y -= w.y
}

// Mul returns the componentwise product of v and w.
func (v Vec2[T]) Mul(w Vec2[T]) Vec2[T] { return Vec2[T]{v.x * w.x, v.y * w.y} }

// MulScalar returns v scaled by s.
func (v Vec2[T]) MulScalar(s T) Vec2[T] { return Vec2[T]{v.x * s, v.y * s} }

// Div returns the componentwise quotient of v and w. Zero components in w
// are not checked and produce Inf or NaN.
func (v Vec2[T]) Div(w Vec2[T]) Vec2[T] { return Vec2[T]{v.x / w.x, v.y / w.y} }

// DivScalar returns v divided by s. A zero s is not checked.
func (v Vec2[T]) DivScalar(s T) Vec2[T] { return Vec2[T]{v.x / s, v.y / s} }

// ScalarDiv2 returns the componentwise quotient (s/v.x, s/v.y).
func ScalarDiv2[T Float](s T, v Vec2[T]) Vec2[T] { return Vec2[T]{s / v.x, s / v.y} }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-v.x, -v.y} }

// Dot returns the dot product of v and w.
func (v Vec2[T]) Dot(w Vec2[T]) T { return v.x*w.x + v.y*w.y }

// Length returns sqrt(x² + y²). The zero vector has length 0.
func (v Vec2[T]) Length() T { return sqrt(v.x*v.x + v.y*v.y) }

// LengthSquared returns x² + y², avoiding the square root.
func (v Vec2[T]) LengthSquared() T { return v.x*v.x + v.y*v.y }

// Normal returns the left perpendicular (-y, x). It keeps the length of v;
// see Normalize for the unit vector.
func (v Vec2[T]) Normal() Vec2[T] { return Vec2[T]{-v.y, v.x} }

// Normalize returns v scaled to unit length. The zero vector yields NaN
// components.
func (v Vec2[T]) Normalize() Vec2[T] { return v.DivScalar(v.Length()) }

// Abs returns the componentwise absolute value of v.
func (v Vec2[T]) Abs() Vec2[T] { return Vec2[T]{abs(v.x), abs(v.y)} }

// String formats v as "(x, y)".
func (v Vec2[T]) String() string { return fmt.Sprintf("(%v, %v)", v.x, v.y) }

func sqrt[T Float](v T) T { return T(math.Sqrt(float64(v))) }

func abs[T Float](v T) T { return T(math.Abs(float64(v))) }
