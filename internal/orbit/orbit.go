package orbit

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// pitch stays just short of straight up/down so the view matrix never degenerates.
	maxPitch = math32.Pi/2 - 0.01

	DefaultRotateSpeed = 0.005 // radians per pixel of drag
	DefaultZoomSpeed   = 0.1   // fraction of distance per wheel notch
	DefaultMinDistance = 0.5
	DefaultMaxDistance = 100
)

// Controls orbits a camera around Target. Yaw is around +Y, pitch is elevation above the XZ plane.
type Controls struct {
	Target      mgl32.Vec3
	Yaw         float32
	Pitch       float32
	Distance    float32
	MinDistance float32
	MaxDistance float32
	RotateSpeed float32
	ZoomSpeed   float32
}

// New returns controls looking at target from position.
func New(position, target mgl32.Vec3) *Controls {
	c := &Controls{
		Target:      target,
		MinDistance: DefaultMinDistance,
		MaxDistance: DefaultMaxDistance,
		RotateSpeed: DefaultRotateSpeed,
		ZoomSpeed:   DefaultZoomSpeed,
	}
	offset := position.Sub(target)
	c.Distance = offset.Len()
	if c.Distance > 0 {
		c.Pitch = math32.Asin(clamp(offset.Y()/c.Distance, -1, 1))
		c.Yaw = math32.Atan2(offset.X(), offset.Z())
	}
	c.clamp()
	return c
}

// Rotate applies a mouse drag of (dx, dy) pixels. Dragging right spins the model right,
// dragging down tilts the camera up.
func (c *Controls) Rotate(dx, dy float32) {
	c.Yaw -= dx * c.RotateSpeed
	c.Pitch += dy * c.RotateSpeed
	c.clamp()
}

// Zoom applies wheel notches; positive moves closer.
func (c *Controls) Zoom(wheel float32) {
	if wheel == 0 {
		return
	}
	c.Distance *= 1 - wheel*c.ZoomSpeed
	c.clamp()
}

// Position returns the camera position for the current angles.
func (c *Controls) Position() mgl32.Vec3 {
	cp := math32.Cos(c.Pitch)
	offset := mgl32.Vec3{
		c.Distance * cp * math32.Sin(c.Yaw),
		c.Distance * math32.Sin(c.Pitch),
		c.Distance * cp * math32.Cos(c.Yaw),
	}
	return c.Target.Add(offset)
}

func (c *Controls) clamp() {
	c.Pitch = clamp(c.Pitch, -maxPitch, maxPitch)
	if c.MinDistance > 0 && c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.MaxDistance > 0 && c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
	c.Yaw = math32.Mod(c.Yaw, 2*math32.Pi)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
