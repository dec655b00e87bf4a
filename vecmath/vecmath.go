// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vecmath provides the 3-vector, quaternion and rigid-transform
// primitives that the rest of the narrow-phase core is built on.
//
// The vector and quaternion algebra is github.com/go-gl/mathgl's mgl64
// types, aliased here rather than wrapped, so that every function in
// this module reads and writes the exact same values the caller's own
// math does. What this package adds on top are the handful of
// operations the narrow-phase needs that mgl64 does not name directly:
// oriented-point mapping and the "direction from b to a" convention.
package vecmath

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a 3-component vector of finite 64-bit floats.
type Vec3 = mgl64.Vec3

// Quaternion is a unit quaternion used to represent an orientation.
type Quaternion = mgl64.Quat

// NewVec3 returns the vector (x, y, z).
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Zero is the zero vector.
var Zero = Vec3{0, 0, 0}

// IdentityQuaternion returns the identity quaternion (no rotation).
func IdentityQuaternion() Quaternion {
	return mgl64.QuatIdent()
}

// Rotate transforms v from local to world frame by q.
func Rotate(q Quaternion, v Vec3) Vec3 {
	return q.Rotate(v)
}

// Distance returns the distance between a and b.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// Direction returns the unit vector pointing from b toward a.
// Undefined (NaN-producing) when a == b; callers must short-circuit
// via a distance check before calling Direction on coincident points.
func Direction(a, b Vec3) Vec3 {
	return a.Sub(b).Normalize()
}

// Transform is a rigid transform: a rotation followed by a translation.
type Transform struct {
	Position   Vec3
	Quaternion Quaternion
}

// IdentityTransform returns the transform that maps every point to itself.
func IdentityTransform() Transform {
	return Transform{Position: Zero, Quaternion: IdentityQuaternion()}
}

// PointToWorld maps a point p from the frame described by t into world space.
func (t Transform) PointToWorld(p Vec3) Vec3 {
	return Rotate(t.Quaternion, p).Add(t.Position)
}

// VectorToWorld rotates a direction/vector from the frame described by t into world space,
// without applying the translation.
func (t Transform) VectorToWorld(v Vec3) Vec3 {
	return Rotate(t.Quaternion, v)
}

// Compose returns the transform equivalent to applying local within the frame of outer,
// i.e. outer.PointToWorld(local.PointToWorld(p)) == Compose(outer, local).PointToWorld(p).
// This is how a shape's body-local transform is combined with its body's world transform.
func Compose(outer, local Transform) Transform {
	return Transform{
		Position:   outer.PointToWorld(local.Position),
		Quaternion: outer.Quaternion.Mul(local.Quaternion).Normalize(),
	}
}
