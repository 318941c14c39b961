package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCameraStateRoundTrip(t *testing.T) {
	c := NewCamera(mgl32.Vec3{1, 2, 3})
	c.OnAngleChange(100, 50)

	state := c.State()
	c2 := NewCamera(mgl32.Vec3{0, 0, 0})
	c2.Restore(state)

	assert.Equal(t, c.Pos(), c2.Pos())
	assert.Equal(t, c.Front(), c2.Front())
	assert.Equal(t, c.Matrix(), c2.Matrix())
}

func TestCameraMatrixIsLookAt(t *testing.T) {
	c := NewCamera(mgl32.Vec3{4, 3, 6})
	want := mgl32.LookAtV(c.Pos(), c.Pos().Add(c.Front()), mgl32.Vec3{0, 1, 0})
	got := c.Matrix()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5)
	}
}

func TestCameraPitchClamp(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	// Large but accepted per-event deltas, many times over.
	for i := 0; i < 100; i++ {
		c.OnAngleChange(0, 199)
	}
	assert.True(t, c.Front().Y() <= 1)
	assert.InDelta(t, sin(radian(89)), c.Front().Y(), 1e-5)

	for i := 0; i < 200; i++ {
		c.OnAngleChange(0, -199)
	}
	assert.InDelta(t, sin(radian(-89)), c.Front().Y(), 1e-5)
}

func TestCameraIgnoresWildAngleJumps(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	before := c.Front()
	c.OnAngleChange(500, 0)
	assert.Equal(t, before, c.Front())
}

func TestCameraFlipFlying(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	assert.True(t, c.Flying())
	c.FlipFlying()
	assert.False(t, c.Flying())

	// Walking moves along the horizontal front even when pitched up.
	c.OnAngleChange(0, 100)
	c.OnMoveChange(MoveForward, 1)
	assert.InDelta(t, 0, c.Pos().Y(), 1e-5)
}

func TestCameraMoveForwardFlying(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 0})
	front := c.Front()
	c.OnMoveChange(MoveForward, 1)
	// Flying moves along the view direction, scaled 5x.
	diff := c.Pos().Sub(front.Mul(5))
	assert.InDelta(t, 0, diff.Len(), 1e-5)
}

func TestCameraStrafeIsHorizontal(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 0})
	c.OnMoveChange(MoveRight, 1)
	assert.InDelta(t, 0, c.Pos().Y(), 1e-5)
	c.OnMoveChange(MoveLeft, 1)
	assert.InDelta(t, 0, c.Pos().Len(), 1e-5)
}
