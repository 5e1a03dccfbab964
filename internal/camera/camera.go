package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"scene-demo/internal/input"
)

const (
	defaultFovy        = 50
	defaultSensitivity = 0.003
	// maxPitch keeps the view direction away from the up vector.
	maxPitch = 89 * math32.Pi / 180
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera is a free-fly camera: WASD moves along the view direction, the mouse turns it.
// Yaw 0 looks down -Z.
type Camera struct {
	pos         mgl32.Vec3
	yaw, pitch  float32
	speed       float32
	sensitivity float32
	fovy        float32
}

// New returns a camera at pos looking down -Z, moving speed units per second.
func New(pos mgl32.Vec3, speed float32) *Camera {
	return &Camera{
		pos:         pos,
		speed:       speed,
		sensitivity: defaultSensitivity,
		fovy:        defaultFovy,
	}
}

// SetPosition moves the camera without changing where it looks.
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.pos = pos
}

// SetSpeed sets the movement speed in units per second.
func (c *Camera) SetSpeed(speed float32) {
	c.speed = speed
}

// SetSensitivity sets radians of turn per pixel of mouse movement.
func (c *Camera) SetSensitivity(s float32) {
	c.sensitivity = s
}

// SetFovy sets the vertical field of view in degrees.
func (c *Camera) SetFovy(deg float32) {
	if deg > 0 {
		c.fovy = deg
	}
}

// LookAt turns the camera towards target. Looking straight up or down is clamped.
func (c *Camera) LookAt(target mgl32.Vec3) {
	d := target.Sub(c.pos)
	if d.Len() == 0 {
		return
	}
	d = d.Normalize()
	c.pitch = clampPitch(math32.Asin(d.Y()))
	c.yaw = math32.Atan2(d.X(), -d.Z())
}

// Update applies one frame of mouse look and WASD movement.
func (c *Camera) Update(dt float32, in input.Input) {
	dx, dy := in.MouseDelta()
	c.yaw += dx * c.sensitivity
	c.pitch = clampPitch(c.pitch - dy*c.sensitivity)

	fwd := c.Forward()
	right := fwd.Cross(worldUp).Normalize()
	var move mgl32.Vec3
	if in.Down(input.KeyCameraForward) {
		move = move.Add(fwd)
	}
	if in.Down(input.KeyCameraBack) {
		move = move.Sub(fwd)
	}
	if in.Down(input.KeyCameraRight) {
		move = move.Add(right)
	}
	if in.Down(input.KeyCameraLeft) {
		move = move.Sub(right)
	}
	if move.Len() > 0 {
		c.pos = c.pos.Add(move.Normalize().Mul(c.speed * dt))
	}
}

// Forward returns the unit view direction.
func (c *Camera) Forward() mgl32.Vec3 {
	cp := math32.Cos(c.pitch)
	return mgl32.Vec3{
		cp * math32.Sin(c.yaw),
		math32.Sin(c.pitch),
		-cp * math32.Cos(c.yaw),
	}
}

// ViewMatrix returns the world-to-eye transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.pos, c.Target(), worldUp)
}

// Position returns the eye position.
func (c *Camera) Position() mgl32.Vec3 { return c.pos }

// Target returns the point one unit ahead of the eye.
func (c *Camera) Target() mgl32.Vec3 { return c.pos.Add(c.Forward()) }

// Up returns the world up vector; the camera never rolls.
func (c *Camera) Up() mgl32.Vec3 { return worldUp }

// Fovy returns the vertical field of view in degrees.
func (c *Camera) Fovy() float32 { return c.fovy }

func clampPitch(p float32) float32 {
	return max(-maxPitch, min(maxPitch, p))
}
