// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"github.com/convexcore/narrowphase/internal/tracelog"
	"github.com/convexcore/narrowphase/vecmath"
)

// Contact is a single point of a clipped contact manifold, expressed in
// world space, together with the manifold's shared normal and this
// point's penetration depth along that normal.
type Contact struct {
	Point  vecmath.Vec3
	Normal vecmath.Vec3
	Depth  float64
}

// ClipAgainstHull builds the contact manifold between hullA (frame tA) and
// hullB (frame tB) given a separating axis already known to point from
// hullA toward hullB. hullB's face whose outward normal has the most
// negative dot with sepAxis is the incident face; hullA's face whose
// outward normal has the largest dot with sepAxis is the reference face.
// The incident face's polygon is clipped against the side planes of the
// reference face's neighbors, and each surviving point is re-measured
// against the reference face plane itself: only those whose signed
// distance falls within [minDist, maxDist] become contacts, each
// projected onto the reference plane along its own reference normal. If
// logger is non-nil, the chosen reference/incident face indices and the
// clipped vertex count are traced at DEBUG level.
func ClipAgainstHull(tA vecmath.Transform, hullA *ConvexPolyhedron, tB vecmath.Transform, hullB *ConvexPolyhedron, sepAxis vecmath.Vec3, minDist, maxDist float64, logger *tracelog.Logger) []Contact {

	refFace := -1
	bestRefDot := 0.0
	for i := range hullA.Faces {
		d := hullA.WorldFaceNormal(i, tA).Dot(sepAxis)
		if refFace == -1 || d > bestRefDot {
			refFace = i
			bestRefDot = d
		}
	}

	incFace := -1
	bestIncDot := 0.0
	for i := range hullB.Faces {
		d := hullB.WorldFaceNormal(i, tB).Dot(sepAxis)
		if incFace == -1 || d < bestIncDot {
			incFace = i
			bestIncDot = d
		}
	}

	if refFace == -1 || incFace == -1 {
		return nil
	}

	trace(logger, "hull: reference face=%d incident face=%d", refFace, incFace)

	polygon := hullB.WorldFaceVertices(incFace, tB)
	clipped := ClipFaceAgainstHull(polygon, hullA, tA, refFace)
	trace(logger, "hull: clipped polygon vertex count=%d", len(clipped))

	refNormal := hullA.WorldFaceNormal(refFace, tA)
	refPoint := hullA.WorldVertex(hullA.Faces[refFace].VertexIndices[0], tA)

	var contacts []Contact
	for _, v := range clipped {
		d := v.Sub(refPoint).Dot(refNormal)
		if d < minDist || d > maxDist {
			continue
		}
		contacts = append(contacts, Contact{
			Point:  v.Sub(refNormal.Mul(d)),
			Normal: refNormal,
			Depth:  -d,
		})
	}
	trace(logger, "hull: manifold contact count=%d", len(contacts))
	return contacts
}

// ClipFaceAgainstHull clips polygon (a world-space face polygon, usually
// belonging to some other hull) against the side planes of every face of
// hull that is adjacent to refFaceIndex, i.e. shares an edge with it.
// This bounds the polygon to the footprint of the reference face without
// needing the reference face to be convex-complete on its own.
func ClipFaceAgainstHull(polygon []vecmath.Vec3, hull *ConvexPolyhedron, t vecmath.Transform, refFaceIndex int) []vecmath.Vec3 {

	refFace := hull.Faces[refFaceIndex]
	clipped := polygon

	for i, f := range hull.Faces {
		if i == refFaceIndex {
			continue
		}
		if !facesShareEdge(refFace, f) {
			continue
		}
		if len(clipped) == 0 {
			break
		}
		planeNormal := hull.WorldFaceNormal(i, t)
		planePoint := hull.WorldVertex(f.VertexIndices[0], t)
		clipped = ClipFaceAgainstPlane(clipped, planeNormal, planePoint)
	}
	return clipped
}

// ClipFaceAgainstPlane clips a world-space polygon against a half-space
// defined by planeNormal (outward) and a point on the plane, keeping the
// portion of the polygon with non-positive signed distance from the
// plane (the Sutherland-Hodgman algorithm, run once per clip plane).
func ClipFaceAgainstPlane(polygon []vecmath.Vec3, planeNormal, planePoint vecmath.Vec3) []vecmath.Vec3 {

	if len(polygon) == 0 {
		return nil
	}

	signedDist := func(p vecmath.Vec3) float64 {
		return p.Sub(planePoint).Dot(planeNormal)
	}

	var out []vecmath.Vec3
	n := len(polygon)
	for i := 0; i < n; i++ {
		curr := polygon[i]
		prev := polygon[(i+n-1)%n]
		currDist := signedDist(curr)
		prevDist := signedDist(prev)

		currInside := currDist <= 0
		prevInside := prevDist <= 0

		if currInside != prevInside {
			t := prevDist / (prevDist - currDist)
			out = append(out, prev.Add(curr.Sub(prev).Mul(t)))
		}
		if currInside {
			out = append(out, curr)
		}
	}
	return out
}

// facesShareEdge reports whether a and b have two consecutive vertex
// indices, in either winding order, in common — i.e. they share a
// polyhedron edge rather than merely a vertex.
func facesShareEdge(a, b Face) bool {
	aEdges := faceEdgeSet(a)
	bEdges := faceEdgeSet(b)
	for _, e := range aEdges {
		for _, o := range bEdges {
			if (e[0] == o[0] && e[1] == o[1]) || (e[0] == o[1] && e[1] == o[0]) {
				return true
			}
		}
	}
	return false
}

func faceEdgeSet(f Face) [][2]int {
	n := len(f.VertexIndices)
	edges := make([][2]int, n)
	for i := 0; i < n; i++ {
		edges[i] = [2]int{f.VertexIndices[(i+n-1)%n], f.VertexIndices[i]}
	}
	return edges
}
