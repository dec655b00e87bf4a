// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dispatch

import "github.com/convexcore/narrowphase/vecmath"

// planeLocalNormal is the plane shape's outward normal in its own frame.
var planeLocalNormal = vecmath.NewVec3(0, 0, 1)

// planeSphere is the canonical Plane/Sphere generator: plane is always
// body1, sphere is always body2. The plane's own world normal is used
// as-is, with no sign correction for which side the sphere happens to
// be on — a sphere resting on the plane's back side is, by the plane's
// one-sided convention, already penetrating.
func planeSphere(planeWorld vecmath.Transform, spherePos vecmath.Vec3, sphereRadius float64, bodyPosPlane, bodyPosSphere vecmath.Vec3) []ContactPoint {

	n := planeWorld.VectorToWorld(planeLocalNormal)
	planePoint := planeWorld.Position

	w := spherePos.Sub(n.Mul(sphereRadius))
	d := n.Dot(w.Sub(planePoint))
	if d > 0 {
		return nil
	}

	projected := w.Sub(n.Mul(d))

	return []ContactPoint{{
		Ni: n,
		Ri: projected.Sub(bodyPosPlane),
		Rj: w.Sub(bodyPosSphere),
	}}
}
