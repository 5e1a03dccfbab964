package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"scene-demo/internal/input"
)

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d of %v", i, got)
	}
}

func TestNew_LooksDownNegativeZ(t *testing.T) {
	c := New(mgl32.Vec3{}, 1)
	assertVec(t, mgl32.Vec3{0, 0, -1}, c.Forward())
	assert.Equal(t, float32(defaultFovy), c.Fovy())
}

func TestLookAt(t *testing.T) {
	c := New(mgl32.Vec3{66, -10, 2}, 2)
	target := mgl32.Vec3{0, 0, 7}
	c.LookAt(target)

	want := target.Sub(c.Position()).Normalize()
	assertVec(t, want, c.Forward())

	// The target lies on the eye-space -Z axis.
	eye := mgl32.TransformCoordinate(target, c.ViewMatrix())
	assert.InDelta(t, 0, eye.X(), 1e-3)
	assert.InDelta(t, 0, eye.Y(), 1e-3)
	assert.Less(t, eye.Z(), float32(0))
}

func TestLookAt_SamePointIsIgnored(t *testing.T) {
	c := New(mgl32.Vec3{1, 2, 3}, 1)
	c.LookAt(mgl32.Vec3{1, 2, 3})
	assertVec(t, mgl32.Vec3{0, 0, -1}, c.Forward())
}

func TestLookAt_ClampsPitch(t *testing.T) {
	c := New(mgl32.Vec3{}, 1)
	c.LookAt(mgl32.Vec3{0, 10, 0})
	assert.LessOrEqual(t, c.pitch, float32(maxPitch))
	assert.Less(t, c.Forward().Y(), float32(1))
}

func TestUpdate_Movement(t *testing.T) {
	tests := []struct {
		name string
		key  input.Key
		want mgl32.Vec3
	}{
		{"forward", input.KeyCameraForward, mgl32.Vec3{0, 0, -2}},
		{"back", input.KeyCameraBack, mgl32.Vec3{0, 0, 2}},
		{"left", input.KeyCameraLeft, mgl32.Vec3{-2, 0, 0}},
		{"right", input.KeyCameraRight, mgl32.Vec3{2, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(mgl32.Vec3{}, 2)
			in := &input.Snapshot{}
			in.SetDown(tt.key)
			c.Update(1, in)
			assertVec(t, tt.want, c.Position())
		})
	}
}

func TestUpdate_DiagonalNotFaster(t *testing.T) {
	c := New(mgl32.Vec3{}, 1)
	in := &input.Snapshot{}
	in.SetDown(input.KeyCameraForward)
	in.SetDown(input.KeyCameraRight)
	c.Update(1, in)
	assert.InDelta(t, 1, c.Position().Len(), 1e-5)
}

func TestUpdate_MouseLook(t *testing.T) {
	c := New(mgl32.Vec3{}, 1)
	c.SetSensitivity(0.01)
	in := &input.Snapshot{}
	in.SetMouseDelta(100, 0)
	c.Update(0, in)
	// Moving the mouse right turns the view to the right (+X).
	assert.Greater(t, c.Forward().X(), float32(0))
	assert.InDelta(t, 1, c.Forward().Len(), 1e-5)
}

func TestSetFovy_IgnoresNonPositive(t *testing.T) {
	c := New(mgl32.Vec3{}, 1)
	c.SetFovy(0)
	assert.Equal(t, float32(defaultFovy), c.Fovy())
	c.SetFovy(70)
	assert.Equal(t, float32(70), c.Fovy())
}
