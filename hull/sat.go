// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"github.com/convexcore/narrowphase/internal/tracelog"
	"github.com/convexcore/narrowphase/vecmath"
)

// FindSeparatingAxis searches the face normals of both hulls and the
// cross products of their unique edges for a world-space axis that
// separates hullA (in frame tA) from hullB (in frame tB).
//
// If any candidate axis shows negative overlap, the hulls do not
// intersect and FindSeparatingAxis returns ok == false; axis is then the
// zero vector and must not be used. Otherwise every candidate overlaps
// or merely touches (zero overlap), and FindSeparatingAxis returns ok ==
// true with axis set to the candidate of least overlap, oriented to
// point from hullA's origin toward hullB's origin. This mirrors
// FindPenetrationAxis/TestPenetrationAxis/ProjectOntoWorldAxis, except
// that overlap search continues past the first interpenetrating axis
// instead of stopping there, since the caller needs the minimum, not
// merely some, penetration axis for clipping. If logger is non-nil, every
// candidate axis considered and the final chosen axis are traced at
// DEBUG level.
func FindSeparatingAxis(tA vecmath.Transform, hullA *ConvexPolyhedron, tB vecmath.Transform, hullB *ConvexPolyhedron, logger *tracelog.Logger) (vecmath.Vec3, bool) {

	var best vecmath.Vec3
	bestOverlap := -1.0
	haveBest := false

	considerCandidate := func(axis vecmath.Vec3) (separated bool) {
		if axis.Len() < edgeTolerance {
			return false
		}
		axis = axis.Normalize()

		maxA, minA := hullA.ProjectOntoAxis(tA, axis)
		maxB, minB := hullB.ProjectOntoAxis(tB, axis)

		overlap := min(maxA-minB, maxB-minA)
		trace(logger, "hull: candidate axis %v overlap=%.6f", axis, overlap)
		if overlap < 0 {
			return true
		}
		if !haveBest || overlap < bestOverlap {
			haveBest = true
			bestOverlap = overlap
			best = axis
		}
		return false
	}

	for i := range hullA.Faces {
		if considerCandidate(hullA.WorldFaceNormal(i, tA)) {
			return vecmath.Zero, false
		}
	}
	for i := range hullB.Faces {
		if considerCandidate(hullB.WorldFaceNormal(i, tB)) {
			return vecmath.Zero, false
		}
	}

	edgesA := hullA.UniqueEdges()
	edgesB := hullB.UniqueEdges()
	for _, eaLocal := range edgesA {
		eaWorld := tA.VectorToWorld(eaLocal)
		for _, ebLocal := range edgesB {
			ebWorld := tB.VectorToWorld(ebLocal)
			cross := eaWorld.Cross(ebWorld)
			if considerCandidate(cross) {
				return vecmath.Zero, false
			}
		}
	}

	if !haveBest {
		// Hulls have no faces or edges to test; treat as non-colliding.
		return vecmath.Zero, false
	}

	centerDelta := tA.Position.Sub(tB.Position)
	if best.Dot(centerDelta) > 0 {
		best = best.Mul(-1)
	}

	trace(logger, "hull: chosen separating axis %v overlap=%.6f", best, bestOverlap)
	return best, true
}
