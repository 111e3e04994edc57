package orbit

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-4

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], eps, "component %d: want %v got %v", i, want, got)
	}
}

func TestNew_RoundTripsPosition(t *testing.T) {
	pos := mgl32.Vec3{3, 2, 4}
	c := New(pos, mgl32.Vec3{})
	assert.InDelta(t, pos.Len(), c.Distance, eps)
	assertVec(t, pos, c.Position())
}

func TestNew_WithTargetOffset(t *testing.T) {
	target := mgl32.Vec3{1, 1, 1}
	pos := mgl32.Vec3{1, 1, 6}
	c := New(pos, target)
	assert.InDelta(t, 5, c.Distance, eps)
	assertVec(t, pos, c.Position())
}

func TestRotate_ClampsPitch(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	c.Rotate(0, 1e6)
	assert.InDelta(t, maxPitch, c.Pitch, eps)
	c.Rotate(0, -1e7)
	assert.InDelta(t, -maxPitch, c.Pitch, eps)
}

func TestRotate_YawKeepsDistance(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	c.Rotate(-math32.Pi/2/DefaultRotateSpeed, 0)
	assertVec(t, mgl32.Vec3{5, 0, 0}, c.Position())
	assert.InDelta(t, 5, c.Position().Len(), eps)
}

func TestZoom_ClampsDistance(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	c.Zoom(1)
	assert.InDelta(t, 4.5, c.Distance, eps)

	for i := 0; i < 200; i++ {
		c.Zoom(1)
	}
	assert.Equal(t, float32(DefaultMinDistance), c.Distance)

	for i := 0; i < 200; i++ {
		c.Zoom(-5)
	}
	assert.Equal(t, float32(DefaultMaxDistance), c.Distance)

	before := c.Distance
	c.Zoom(0)
	assert.Equal(t, before, c.Distance)
}
