// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import "github.com/convexcore/narrowphase/vecmath"

// FromBox builds a ConvexPolyhedron for an axis-aligned box centered on the
// shape origin, with the given per-axis half extents. Each face's vertex
// ring is wound so that the right-hand rule over consecutive edges agrees
// with the face's stored outward Normal.
func FromBox(halfExtents vecmath.Vec3) *ConvexPolyhedron {

	x, y, z := halfExtents.X(), halfExtents.Y(), halfExtents.Z()
	if x <= 0 || y <= 0 || z <= 0 {
		panic("hull: box half extents must be positive")
	}

	vertices := []vecmath.Vec3{
		vecmath.NewVec3(-x, -y, -z), // 0
		vecmath.NewVec3(x, -y, -z),  // 1
		vecmath.NewVec3(x, y, -z),   // 2
		vecmath.NewVec3(-x, y, -z),  // 3
		vecmath.NewVec3(-x, -y, z),  // 4
		vecmath.NewVec3(x, -y, z),   // 5
		vecmath.NewVec3(x, y, z),    // 6
		vecmath.NewVec3(-x, y, z),   // 7
	}

	faces := []Face{
		{VertexIndices: []int{1, 2, 6, 5}, Normal: vecmath.NewVec3(1, 0, 0)},
		{VertexIndices: []int{0, 4, 7, 3}, Normal: vecmath.NewVec3(-1, 0, 0)},
		{VertexIndices: []int{3, 7, 6, 2}, Normal: vecmath.NewVec3(0, 1, 0)},
		{VertexIndices: []int{0, 1, 5, 4}, Normal: vecmath.NewVec3(0, -1, 0)},
		{VertexIndices: []int{4, 5, 6, 7}, Normal: vecmath.NewVec3(0, 0, 1)},
		{VertexIndices: []int{0, 3, 2, 1}, Normal: vecmath.NewVec3(0, 0, -1)},
	}

	return NewConvexPolyhedron(vertices, faces)
}
