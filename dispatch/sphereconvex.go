// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dispatch

import (
	"github.com/convexcore/narrowphase/hull"
	"github.com/convexcore/narrowphase/vecmath"
)

const pointInPolygonTolerance = 1e-9

// sphereConvex is the canonical Sphere/Convex generator: the sphere is
// always body1, the hull is always body2. Its ri is measured from the
// sphere's center rather than from body1's position; rj is measured
// from the hull body's position.
//
// It runs a three-stage search maintaining a single running winner
// (bestPoint, bestPenetration), starting from no winner and a
// penetration floor of zero so that nothing wins unless it genuinely
// overlaps the sphere. A later stage's candidate displaces an earlier
// one on a tie, which is why vertices run first, faces second and edges
// last: edges only fire per-face, as a fallback for when the sphere
// crosses that face's plane but the face's own polygon test rejects the
// sphere's projection. Every stage measures penetration the same way, as
// the radius minus the distance from the sphere's center to the
// candidate vertex, edge point or face plane.
func sphereConvex(spherePos vecmath.Vec3, sphereRadius float64, hullWorld vecmath.Transform, h *hull.ConvexPolyhedron, bodyPosHull vecmath.Vec3) []ContactPoint {

	haveBest := false
	var bestPoint vecmath.Vec3
	bestPenetration := 0.0

	consider := func(point vecmath.Vec3, penetration float64) {
		if penetration >= bestPenetration {
			haveBest = true
			bestPoint = point
			bestPenetration = penetration
		}
	}

	// Stage 1: vertices.
	for i := range h.Vertices {
		w := h.WorldVertex(i, hullWorld)
		pen := sphereRadius - vecmath.Distance(w, spherePos)
		consider(w, pen)
	}

	// Stage 2 (faces) and stage 3 (edges, as a per-face fallback).
	for i := range h.Faces {
		faceVerts := h.WorldFaceVertices(i, hullWorld)
		normal := h.WorldFaceNormal(i, hullWorld)
		p := faceVerts[0]

		side := normal.Dot(spherePos.Sub(p))
		pen := sphereRadius - side

		crossed := side > 0 && pen >= bestPenetration
		handled := false
		if crossed {
			if pointInPolygon(faceVerts, normal, spherePos) {
				worldContact := spherePos.Add(normal.Mul(pen - sphereRadius))
				consider(worldContact, pen)
				handled = true
			}
		}

		if handled || !crossed {
			continue
		}

		n := len(faceVerts)
		for k := 0; k < n; k++ {
			prev := faceVerts[k]
			curr := faceVerts[(k+1)%n]
			e := curr.Sub(prev)
			elen := e.Len()
			if elen == 0 {
				continue
			}
			u := e.Mul(1 / elen)
			s := spherePos.Sub(prev).Dot(u)
			if s > 0 && s*s < e.Dot(e) {
				q := prev.Add(u.Mul(s))
				edgePen := sphereRadius - vecmath.Distance(q, spherePos)
				if edgePen >= bestPenetration {
					consider(q, edgePen)
				}
			}
		}
	}

	if !haveBest {
		return nil
	}

	diff := bestPoint.Sub(spherePos)
	if diff.Len() == 0 {
		return nil
	}
	ni := diff.Normalize()

	return []ContactPoint{{
		Ni: ni,
		Ri: diff.Add(ni.Mul(bestPenetration)),
		Rj: bestPoint.Sub(bodyPosHull),
	}}
}

// pointInPolygon reports whether p, assumed to lie near the plane of
// the convex polygon verts (with outward normal), falls within its
// boundary. It walks the ring once testing that the sign of
// (edge × normal) · (p − prev) stays consistent; a sign flip means p is
// outside that edge's half-plane.
func pointInPolygon(verts []vecmath.Vec3, normal vecmath.Vec3, p vecmath.Vec3) bool {

	n := len(verts)
	if n < 3 {
		return false
	}

	sign := 0
	prev := verts[n-1]
	for i := 0; i < n; i++ {
		v := verts[i]
		edge := v.Sub(prev)
		s := edge.Cross(normal).Dot(p.Sub(prev))

		switch {
		case s < -pointInPolygonTolerance:
			if sign > 0 {
				return false
			}
			sign = -1
		case s > pointInPolygonTolerance:
			if sign < 0 {
				return false
			}
			sign = 1
		}
		prev = v
	}
	return true
}
