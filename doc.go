// Package vecs provides generic, allocation-free 2D and 3D vector types.
//
// Vec2 and Vec3 are plain value types over float32 or float64 components.
// All operations except Set, AddAssign and SubAssign return new values, and
// both types are comparable, so == and != give structural equality under the
// element type. Instances are safe to share for concurrent reads.
//
// Division is never checked: dividing by a zero scalar or zero component
// yields IEEE infinities or NaNs, which propagate through later operations
// instead of being reported as errors.
package vecs
