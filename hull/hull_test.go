package hull

import (
	"testing"

	"github.com/convexcore/narrowphase/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitBox() *ConvexPolyhedron {
	return FromBox(vecmath.NewVec3(1, 1, 1))
}

func TestFromBoxHasSixFacesAndEightVertices(t *testing.T) {
	b := unitBox()
	assert.Len(t, b.Vertices, 8)
	assert.Len(t, b.Faces, 6)
}

func TestFromBoxUniqueEdges(t *testing.T) {
	b := unitBox()
	// A box has 3 distinct edge directions once antiparallel duplicates
	// are collapsed: along X, Y and Z.
	assert.Len(t, b.UniqueEdges(), 3)
}

func TestFromBoxRejectsNonPositiveExtents(t *testing.T) {
	assert.Panics(t, func() {
		FromBox(vecmath.NewVec3(0, 1, 1))
	})
}

func TestNewConvexPolyhedronRejectsDegenerateFace(t *testing.T) {
	verts := []vecmath.Vec3{vecmath.Zero, vecmath.NewVec3(1, 0, 0)}
	assert.Panics(t, func() {
		NewConvexPolyhedron(verts, []Face{{VertexIndices: []int{0, 1}}})
	})
}

func TestNewConvexPolyhedronRejectsOutOfRangeIndex(t *testing.T) {
	verts := []vecmath.Vec3{vecmath.Zero, vecmath.NewVec3(1, 0, 0), vecmath.NewVec3(0, 1, 0)}
	assert.Panics(t, func() {
		NewConvexPolyhedron(verts, []Face{{VertexIndices: []int{0, 1, 5}}})
	})
}

func TestWorldFaceNormalRotates(t *testing.T) {
	b := unitBox()
	tr := vecmath.Transform{Position: vecmath.Zero, Quaternion: vecmath.IdentityQuaternion()}
	n := b.WorldFaceNormal(0, tr)
	assert.InDelta(t, 1.0, n.X(), 1e-9)
}

func TestProjectOntoAxis(t *testing.T) {
	b := unitBox()
	tr := vecmath.IdentityTransform()
	max, min := b.ProjectOntoAxis(tr, vecmath.NewVec3(1, 0, 0))
	assert.InDelta(t, 1.0, max, 1e-9)
	assert.InDelta(t, -1.0, min, 1e-9)
}

func TestFoldFaceNormalsVisitsEveryFace(t *testing.T) {
	b := unitBox()
	tr := vecmath.IdentityTransform()
	count := FoldFaceNormals(b, tr, 0, func(_, _ vecmath.Vec3, _ int, acc int) int {
		return acc + 1
	})
	require.Equal(t, 6, count)
}
