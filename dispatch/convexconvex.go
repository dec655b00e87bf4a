// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dispatch

import (
	"github.com/convexcore/narrowphase/hull"
	"github.com/convexcore/narrowphase/internal/tracelog"
	"github.com/convexcore/narrowphase/vecmath"
)

// convexConvexClipMin and convexConvexClipMax bound how far a clipped
// point may sit from the reference face plane, in either direction,
// before it is discarded as a clipping artifact rather than a genuine
// contact. Both are generous: the hulls are already known to overlap by
// the time clipping runs, so almost every surviving point legitimately
// falls well inside this window.
const (
	convexConvexClipMin = -100.0
	convexConvexClipMax = 100.0
)

// convexConvex is the Convex/Convex generator. It is symmetric in
// argument order, so unlike the other mixed-kind pairs it has no
// canonical "first argument" and Dispatch calls it directly regardless
// of which body is shapeA. Its normal convention is the other literal
// exception to body1-to-body2 framing: ni is the negation of the
// separating axis, which by construction points from hullA to hullB.
func convexConvex(tA vecmath.Transform, hullA *hull.ConvexPolyhedron, bodyPosA vecmath.Vec3, tB vecmath.Transform, hullB *hull.ConvexPolyhedron, bodyPosB vecmath.Vec3, logger *tracelog.Logger) []ContactPoint {

	sepAxis, ok := hull.FindSeparatingAxis(tA, hullA, tB, hullB, logger)
	if !ok {
		return nil
	}

	clipped := hull.ClipAgainstHull(tA, hullA, tB, hullB, sepAxis, convexConvexClipMin, convexConvexClipMax, logger)
	if len(clipped) == 0 {
		return nil
	}

	ni := sepAxis.Mul(-1)

	contacts := make([]ContactPoint, 0, len(clipped))
	for _, c := range clipped {
		q := c.Normal.Mul(-c.Depth)
		contacts = append(contacts, ContactPoint{
			Ni: ni,
			Ri: c.Point.Add(q).Sub(bodyPosA),
			Rj: c.Point.Sub(bodyPosB),
		})
	}
	return contacts
}
