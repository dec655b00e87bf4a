// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dispatch

import "github.com/convexcore/narrowphase/vecmath"

// sphereSphere is the canonical Sphere/Sphere generator, and one of the
// two pairs (with convexConvex) whose normal convention runs opposite
// the usual body1-to-body2 framing: ni points from body2's center toward
// body1's. It is the only generator whose ri and rj are both measured
// from the sphere centers themselves rather than from body positions —
// a literal reading of the pair's contact formula, which takes only the
// two centers and radii as input.
func sphereSphere(c1 vecmath.Vec3, r1 float64, c2 vecmath.Vec3, r2 float64) []ContactPoint {

	delta := c1.Sub(c2)
	dist := delta.Len()
	if dist > r1+r2 {
		return nil
	}
	if dist == 0 {
		// Coincident centers: no well-defined direction, fall through to
		// the invariant-reduction policy of producing no contact.
		return nil
	}

	ni := delta.Mul(1 / dist)

	return []ContactPoint{{
		Ni: ni,
		Ri: ni.Mul(r1),
		Rj: ni.Mul(-r2),
	}}
}
