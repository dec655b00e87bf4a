// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dispatch implements the 9-way shape-pair contact generation
// table: for every combination of plane, sphere and convex shapes, it
// produces the set of contact points between them.
package dispatch

import (
	"github.com/convexcore/narrowphase/internal/tracelog"
	"github.com/convexcore/narrowphase/shape"
	"github.com/convexcore/narrowphase/vecmath"
)

// ContactPoint is a single point of contact between two shapes, in world
// space, not yet attributed to a body pair. Ni is the contact normal,
// oriented from the first shape's owning body toward the second's,
// except where a generator's own convention is documented otherwise.
// Ri and Rj are vectors from the respective bodies' positions (not the
// shapes' own transforms) to the contact point, except that sphereSphere
// measures both, and sphereConvex measures Ri, from the sphere's center.
type ContactPoint struct {
	Ni vecmath.Vec3
	Ri vecmath.Vec3
	Rj vecmath.Vec3
}

// Dispatch computes the contact points between shapeA (attached to a
// body at bodyPosA, shapeA itself positioned at worldA) and shapeB
// (attached to a body at bodyPosB, positioned at worldB). The returned
// points' Ni, Ri and Rj are oriented for body1 == shapeA's body, body2
// == shapeB's body.
//
// Each of the nine (Kind, Kind) combinations has a canonical generator
// that only exists for one fixed argument order: Plane before Sphere or
// Convex, and Sphere before Convex. When the caller's actual order is
// reversed, Dispatch calls the canonical generator with arguments
// swapped and then negates Ni and swaps Ri/Rj on every returned point,
// which restores the caller's original body1/body2 labeling.
//
// logger, if non-nil, receives DEBUG-level tracing of the SAT search and
// clipping pipeline when the pair is Convex/Convex; it is ignored by
// every other generator, which has no search to trace.
func Dispatch(shapeA shape.Shape, worldA vecmath.Transform, bodyPosA vecmath.Vec3, shapeB shape.Shape, worldB vecmath.Transform, bodyPosB vecmath.Vec3, logger *tracelog.Logger) []ContactPoint {

	switch shapeA.Kind {
	case shape.PlaneKind:
		switch shapeB.Kind {
		case shape.PlaneKind:
			return nil
		case shape.SphereKind:
			return planeSphere(worldA, worldB.Position, shapeB.Radius, bodyPosA, bodyPosB)
		case shape.ConvexKind:
			return planeConvex(worldA, worldB, shapeB.Hull, bodyPosA, bodyPosB)
		}

	case shape.SphereKind:
		switch shapeB.Kind {
		case shape.PlaneKind:
			return swapAndNegate(planeSphere(worldB, worldA.Position, shapeA.Radius, bodyPosB, bodyPosA))
		case shape.SphereKind:
			return sphereSphere(worldA.Position, shapeA.Radius, worldB.Position, shapeB.Radius)
		case shape.ConvexKind:
			return sphereConvex(worldA.Position, shapeA.Radius, worldB, shapeB.Hull, bodyPosB)
		}

	case shape.ConvexKind:
		switch shapeB.Kind {
		case shape.PlaneKind:
			return swapAndNegate(planeConvex(worldB, worldA, shapeA.Hull, bodyPosB, bodyPosA))
		case shape.SphereKind:
			return swapAndNegate(sphereConvex(worldB.Position, shapeB.Radius, worldA, shapeA.Hull, bodyPosA))
		case shape.ConvexKind:
			return convexConvex(worldA, shapeA.Hull, bodyPosA, worldB, shapeB.Hull, bodyPosB, logger)
		}
	}

	return nil
}

// swapAndNegate restores the caller's body1/body2 labeling after a
// canonical generator was invoked with its arguments reversed.
func swapAndNegate(contacts []ContactPoint) []ContactPoint {
	out := make([]ContactPoint, len(contacts))
	for i, c := range contacts {
		out[i] = ContactPoint{
			Ni: c.Ni.Mul(-1),
			Ri: c.Rj,
			Rj: c.Ri,
		}
	}
	return out
}
