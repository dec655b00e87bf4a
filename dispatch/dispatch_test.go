package dispatch

import (
	"testing"

	"github.com/convexcore/narrowphase/hull"
	"github.com/convexcore/narrowphase/shape"
	"github.com/convexcore/narrowphase/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchSphereSphereOverlap(t *testing.T) {
	s1 := shape.NewSphere(1)
	s2 := shape.NewSphere(1)

	tA := vecmath.Transform{Position: vecmath.NewVec3(0, 0, 0), Quaternion: vecmath.IdentityQuaternion()}
	tB := vecmath.Transform{Position: vecmath.NewVec3(1.5, 0, 0), Quaternion: vecmath.IdentityQuaternion()}

	contacts := Dispatch(s1, tA, tA.Position, s2, tB, tB.Position, nil)
	require.Len(t, contacts, 1)
	assert.InDelta(t, -1.0, contacts[0].Ni.X(), 1e-9)
	assert.InDelta(t, 0.0, contacts[0].Ni.Y(), 1e-9)
}

func TestDispatchSphereSphereSeparated(t *testing.T) {
	s1 := shape.NewSphere(1)
	s2 := shape.NewSphere(1)

	tA := vecmath.IdentityTransform()
	tB := vecmath.Transform{Position: vecmath.NewVec3(10, 0, 0), Quaternion: vecmath.IdentityQuaternion()}

	contacts := Dispatch(s1, tA, tA.Position, s2, tB, tB.Position, nil)
	assert.Empty(t, contacts)
}

func TestDispatchConvexConvexOverlap(t *testing.T) {
	c1 := shape.NewConvex(hull.FromBox(vecmath.NewVec3(0.5, 0.5, 0.5)))
	c2 := shape.NewConvex(hull.FromBox(vecmath.NewVec3(0.5, 0.5, 0.5)))

	tA := vecmath.Transform{Position: vecmath.NewVec3(0, 0, 0), Quaternion: vecmath.IdentityQuaternion()}
	tB := vecmath.Transform{Position: vecmath.NewVec3(0.9, 0, 0), Quaternion: vecmath.IdentityQuaternion()}

	contacts := Dispatch(c1, tA, tA.Position, c2, tB, tB.Position, nil)
	require.NotEmpty(t, contacts)
	for _, c := range contacts {
		assert.InDelta(t, -1.0, c.Ni.X(), 1e-9)
	}
}

func TestDispatchPlanePlaneIsAlwaysEmpty(t *testing.T) {
	p1 := shape.NewPlane()
	p2 := shape.NewPlane()
	tr := vecmath.IdentityTransform()
	assert.Empty(t, Dispatch(p1, tr, tr.Position, p2, tr, tr.Position, nil))
}

func TestDispatchPlaneSphereRestingContact(t *testing.T) {
	plane := shape.NewPlane()
	sphere := shape.NewSphere(1)

	planeT := vecmath.IdentityTransform()
	sphereT := vecmath.Transform{Position: vecmath.NewVec3(0, 0, 0.5), Quaternion: vecmath.IdentityQuaternion()}

	contacts := Dispatch(plane, planeT, planeT.Position, sphere, sphereT, sphereT.Position, nil)
	require.Len(t, contacts, 1)
	assert.InDelta(t, 1.0, contacts[0].Ni.Z(), 1e-9)
}

func TestDispatchSpherePlaneIsSwappedAndNegated(t *testing.T) {
	plane := shape.NewPlane()
	sphere := shape.NewSphere(1)

	planeT := vecmath.IdentityTransform()
	sphereT := vecmath.Transform{Position: vecmath.NewVec3(0, 0, 0.5), Quaternion: vecmath.IdentityQuaternion()}

	forward := Dispatch(plane, planeT, planeT.Position, sphere, sphereT, sphereT.Position, nil)
	reversed := Dispatch(sphere, sphereT, sphereT.Position, plane, planeT, planeT.Position, nil)

	require.Len(t, forward, 1)
	require.Len(t, reversed, 1)
	assert.InDelta(t, -forward[0].Ni.Z(), reversed[0].Ni.Z(), 1e-9)
	assert.True(t, forward[0].Ri.ApproxEqual(reversed[0].Rj))
	assert.True(t, forward[0].Rj.ApproxEqual(reversed[0].Ri))
}

func TestDispatchPlaneConvexRestingBox(t *testing.T) {
	plane := shape.NewPlane()
	box := shape.NewConvex(hull.FromBox(vecmath.NewVec3(0.5, 0.5, 0.5)))

	planeT := vecmath.IdentityTransform()
	boxT := vecmath.Transform{Position: vecmath.NewVec3(0, 0, 0.4), Quaternion: vecmath.IdentityQuaternion()}

	contacts := Dispatch(plane, planeT, planeT.Position, box, boxT, boxT.Position, nil)
	require.Len(t, contacts, 4)
}

func TestDispatchSphereConvexContactWhenOverlapping(t *testing.T) {
	sphere := shape.NewSphere(1)
	box := shape.NewConvex(hull.FromBox(vecmath.NewVec3(0.5, 0.5, 0.5)))

	sphereT := vecmath.Transform{Position: vecmath.NewVec3(0, 0, 1.2), Quaternion: vecmath.IdentityQuaternion()}
	boxT := vecmath.IdentityTransform()

	contacts := Dispatch(sphere, sphereT, sphereT.Position, box, boxT, boxT.Position, nil)
	require.Len(t, contacts, 1)
	assert.InDelta(t, 1.0, contacts[0].Ni.Len(), 1e-9)
}

func TestDispatchSphereConvexNoContactWhenFar(t *testing.T) {
	sphere := shape.NewSphere(1)
	box := shape.NewConvex(hull.FromBox(vecmath.NewVec3(0.5, 0.5, 0.5)))

	sphereT := vecmath.Transform{Position: vecmath.NewVec3(0, 0, 10), Quaternion: vecmath.IdentityQuaternion()}
	boxT := vecmath.IdentityTransform()

	contacts := Dispatch(sphere, sphereT, sphereT.Position, box, boxT, boxT.Position, nil)
	assert.Empty(t, contacts)
}
