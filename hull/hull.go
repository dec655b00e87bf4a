// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hull implements the convex polyhedron data model and the
// geometric queries the narrow-phase needs against it: face normals,
// supporting features, separating-axis search and face-against-hull
// clipping.
package hull

import (
	"github.com/convexcore/narrowphase/vecmath"
)

// Face is a single planar, convex face of a ConvexPolyhedron. VertexIndices
// is an ordered ring of indices into the owning polyhedron's Vertices,
// wound consistently (all CW or all CCW viewed along Normal) so that
// Normal points outward from the hull interior.
type Face struct {
	VertexIndices []int
	Normal        vecmath.Vec3
}

// ConvexPolyhedron is an immutable convex polyhedron in local (shape) frame.
type ConvexPolyhedron struct {
	Vertices []vecmath.Vec3
	Faces    []Face

	// uniqueEdges is a de-duplicated (up to sign and near-parallel
	// duplicates) list of local-frame edge directions, precomputed once
	// at construction because the separating-axis search runs once per
	// colliding pair and must not rebuild it every call.
	uniqueEdges []vecmath.Vec3
}

// edgeTolerance is how close to ±1 the cosine between two edge directions
// must come (|cos| > 1 - edgeTolerance) for them to be considered
// duplicates for the purposes of SAT candidate generation, and the
// minimum length a candidate cross product must have before it is
// trusted as a separating-axis direction.
const edgeTolerance = 1e-6

// NewConvexPolyhedron validates and constructs a convex polyhedron from its
// vertices and faces. It panics if any face has fewer than 3 vertex indices
// or references an index outside of vertices — these are programming
// errors in the caller, not runtime data conditions, so they are not
// reported through a returned error.
func NewConvexPolyhedron(vertices []vecmath.Vec3, faces []Face) *ConvexPolyhedron {

	for _, f := range faces {
		if len(f.VertexIndices) < 3 {
			panic("hull: face has fewer than 3 vertices")
		}
		for _, idx := range f.VertexIndices {
			if idx < 0 || idx >= len(vertices) {
				panic("hull: face vertex index out of range")
			}
		}
	}

	h := &ConvexPolyhedron{
		Vertices: vertices,
		Faces:    faces,
	}
	h.uniqueEdges = computeUniqueEdges(vertices, faces)
	return h
}

// UniqueEdges returns the hull's de-duplicated local-frame edge directions.
func (h *ConvexPolyhedron) UniqueEdges() []vecmath.Vec3 {
	return h.uniqueEdges
}

// computeUniqueEdges walks every face's vertex ring and keeps one
// representative direction per edge, collapsing directions that are
// parallel (up to sign) within edgeTolerance.
func computeUniqueEdges(vertices []vecmath.Vec3, faces []Face) []vecmath.Vec3 {

	var edges []vecmath.Vec3

	addIfUnique := func(dir vecmath.Vec3) {
		if dir.Len() < edgeTolerance {
			return
		}
		dir = dir.Normalize()
		for _, existing := range edges {
			d := dir.Dot(existing)
			if d > 1-edgeTolerance || d < -(1-edgeTolerance) {
				return
			}
		}
		edges = append(edges, dir)
	}

	for _, f := range faces {
		n := len(f.VertexIndices)
		for i := 0; i < n; i++ {
			curr := vertices[f.VertexIndices[i]]
			prev := vertices[f.VertexIndices[(i+n-1)%n]]
			addIfUnique(curr.Sub(prev))
		}
	}
	return edges
}

// WorldVertex returns vertex i of h transformed into world space by t.
func (h *ConvexPolyhedron) WorldVertex(i int, t vecmath.Transform) vecmath.Vec3 {
	return t.PointToWorld(h.Vertices[i])
}

// WorldFaceNormal returns the outward normal of face i, rotated into world space by t.
func (h *ConvexPolyhedron) WorldFaceNormal(i int, t vecmath.Transform) vecmath.Vec3 {
	return t.VectorToWorld(h.Faces[i].Normal)
}

// WorldFaceVertices returns the vertices of face i of h, transformed into world space by t.
func (h *ConvexPolyhedron) WorldFaceVertices(i int, t vecmath.Transform) []vecmath.Vec3 {
	face := h.Faces[i]
	out := make([]vecmath.Vec3, len(face.VertexIndices))
	for k, vi := range face.VertexIndices {
		out[k] = h.WorldVertex(vi, t)
	}
	return out
}

// FoldFaceNormals iterates the faces of h in stored order, applying visit to
// each one's world-space normal, a world-space vertex on that face, the
// face's index, and the running accumulator.
func FoldFaceNormals[Acc any](h *ConvexPolyhedron, t vecmath.Transform, seed Acc, visit func(worldNormal, worldVertex vecmath.Vec3, faceIndex int, acc Acc) Acc) Acc {

	acc := seed
	for i, f := range h.Faces {
		worldNormal := t.VectorToWorld(f.Normal)
		worldVertex := h.WorldVertex(f.VertexIndices[0], t)
		acc = visit(worldNormal, worldVertex, i, acc)
	}
	return acc
}

// ProjectOntoAxis projects every vertex of h, transformed into world space by
// t, onto the world-space axis, and returns the maximum and minimum
// projections found.
func (h *ConvexPolyhedron) ProjectOntoAxis(t vecmath.Transform, axis vecmath.Vec3) (max, min float64) {

	max = t.PointToWorld(h.Vertices[0]).Dot(axis)
	min = max
	for i := 1; i < len(h.Vertices); i++ {
		p := t.PointToWorld(h.Vertices[i]).Dot(axis)
		if p > max {
			max = p
		}
		if p < min {
			min = p
		}
	}
	return max, min
}
