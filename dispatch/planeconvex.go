// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dispatch

import (
	"github.com/convexcore/narrowphase/hull"
	"github.com/convexcore/narrowphase/vecmath"
)

// planeConvex is the canonical Plane/Convex generator: plane is always
// body1, the convex hull is always body2. It emits one contact per hull
// vertex that lies on the back side of the plane's own world normal —
// the same per-vertex test used for plane-vs-polyhedron rest contacts
// in most narrow-phase implementations. Every penetrating vertex
// contributes, including duplicates; the solver is expected to tolerate
// redundant contacts.
func planeConvex(planeWorld vecmath.Transform, hullWorld vecmath.Transform, h *hull.ConvexPolyhedron, bodyPosPlane, bodyPosHull vecmath.Vec3) []ContactPoint {

	n := planeWorld.VectorToWorld(planeLocalNormal)
	planePoint := planeWorld.Position

	var contacts []ContactPoint
	for i := range h.Vertices {
		w := h.WorldVertex(i, hullWorld)
		d := n.Dot(w.Sub(planePoint))
		if d > 0 {
			continue
		}
		projected := w.Sub(n.Mul(d))
		contacts = append(contacts, ContactPoint{
			Ni: n,
			Ri: projected.Sub(bodyPosPlane),
			Rj: w.Sub(bodyPosHull),
		})
	}
	return contacts
}
