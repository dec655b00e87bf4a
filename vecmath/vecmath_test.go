package vecmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestDirectionUnitLength(t *testing.T) {
	d := Direction(NewVec3(3, 4, 0), NewVec3(0, 0, 0))
	assert.InDelta(t, 1.0, d.Len(), 1e-9)
	assert.InDelta(t, 0.6, d.X(), 1e-9)
	assert.InDelta(t, 0.8, d.Y(), 1e-9)
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(NewVec3(3, 4, 0), Zero), 1e-9)
}

func TestPointToWorldIdentity(t *testing.T) {
	tr := IdentityTransform()
	p := NewVec3(1, 2, 3)
	got := tr.PointToWorld(p)
	assert.True(t, got.ApproxEqual(p))
}

func TestPointToWorldTranslation(t *testing.T) {
	tr := Transform{Position: NewVec3(1, 0, 0), Quaternion: IdentityQuaternion()}
	got := tr.PointToWorld(NewVec3(0, 1, 0))
	assert.True(t, got.ApproxEqual(NewVec3(1, 1, 0)))
}

func TestPointToWorldRotation(t *testing.T) {
	// Rotate +X by 90 degrees around +Z should give +Y.
	q := mgl64.QuatRotate(math.Pi/2, NewVec3(0, 0, 1))
	tr := Transform{Position: Zero, Quaternion: q}
	got := tr.PointToWorld(NewVec3(1, 0, 0))
	assert.InDelta(t, 0.0, got.X(), 1e-9)
	assert.InDelta(t, 1.0, got.Y(), 1e-9)
}

func TestComposeTransforms(t *testing.T) {
	outer := Transform{Position: NewVec3(10, 0, 0), Quaternion: IdentityQuaternion()}
	local := Transform{Position: NewVec3(0, 5, 0), Quaternion: IdentityQuaternion()}
	composed := Compose(outer, local)
	got := composed.PointToWorld(Zero)
	assert.True(t, got.ApproxEqual(NewVec3(10, 5, 0)))
}
