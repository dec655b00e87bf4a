// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape defines the closed set of collision shape variants the
// narrow-phase dispatches over: planes, spheres and convex polyhedra.
package shape

import "github.com/convexcore/narrowphase/hull"

// Kind identifies which of the three shape variants a Shape holds.
type Kind int

const (
	// PlaneKind is an infinite plane through the shape's local origin,
	// with outward normal (0, 0, 1) in the shape's own frame.
	PlaneKind Kind = iota
	// SphereKind is a sphere of Shape.Radius centered on the shape's
	// local origin.
	SphereKind
	// ConvexKind is an arbitrary convex polyhedron, held in Shape.Hull.
	ConvexKind
)

func (k Kind) String() string {
	switch k {
	case PlaneKind:
		return "Plane"
	case SphereKind:
		return "Sphere"
	case ConvexKind:
		return "Convex"
	default:
		return "Unknown"
	}
}

// Shape is a tagged union over the three collision shape variants. Only
// the field matching Kind is meaningful; the zero value of the others is
// unused. Shapes are immutable once constructed and are identified by an
// Id minted when the shape is attached to a body (world.World.AddShape).
type Shape struct {
	Kind   Kind
	Radius float64
	Hull   *hull.ConvexPolyhedron
}

// Id opaquely and stably identifies a shape attached to a body.
type Id string

// NewPlane returns a Shape representing an infinite plane through the
// local origin with local outward normal (0, 0, 1).
func NewPlane() Shape {
	return Shape{Kind: PlaneKind}
}

// NewSphere returns a Shape representing a sphere of the given radius
// centered on the local origin. It panics if radius is not positive,
// since a non-positive radius is a construction-time programming error.
func NewSphere(radius float64) Shape {
	if radius <= 0 {
		panic("shape: sphere radius must be positive")
	}
	return Shape{Kind: SphereKind, Radius: radius}
}

// NewConvex returns a Shape wrapping an already-built convex polyhedron.
// It panics if h is nil.
func NewConvex(h *hull.ConvexPolyhedron) Shape {
	if h == nil {
		panic("shape: convex hull must not be nil")
	}
	return Shape{Kind: ConvexKind, Hull: h}
}
