package camera

import (
	gomath "math"

	"github.com/Faultbox/cubeman/pkg/math"
)

// Orbit circles the origin at a fixed distance.
type Orbit struct {
	// Spherical coordinates
	Distance float32
	Pitch    float32 // radians, positive looks down
	Yaw      float32 // radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbit starts in front of the figure at the front preset's distance.
func NewOrbit() Orbit {
	return Orbit{
		Distance:        3.0,
		Pitch:           0.0,
		Yaw:             0.0,
		MinDistance:     1.0,
		MaxDistance:     10.0,
		MinPitch:        -1.4,
		MaxPitch:        1.4,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (o Orbit) Position() math.Vec3 {
	cp := gomath.Cos(float64(o.Pitch))
	return math.Vec3{
		X: o.Distance * float32(cp*gomath.Sin(float64(o.Yaw))),
		Y: o.Distance * float32(gomath.Sin(float64(o.Pitch))),
		Z: o.Distance * float32(cp*gomath.Cos(float64(o.Yaw))),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (o Orbit) ViewMatrix() math.Mat4 {
	return math.LookAt(o.Position(), target, up)
}

// Drag updates rotation from a mouse drag delta in pixels.
func (o Orbit) Drag(dx, dy float32) Orbit {
	o.Yaw -= dx * o.DragSensitivity
	o.Pitch += dy * o.DragSensitivity

	if o.Pitch < o.MinPitch {
		o.Pitch = o.MinPitch
	}
	if o.Pitch > o.MaxPitch {
		o.Pitch = o.MaxPitch
	}
	return o
}

// Zoom updates distance from a scroll wheel delta.
func (o Orbit) Zoom(delta float32) Orbit {
	o.Distance -= delta * o.Distance * o.ZoomSensitivity
	if o.Distance < o.MinDistance {
		o.Distance = o.MinDistance
	}
	if o.Distance > o.MaxDistance {
		o.Distance = o.MaxDistance
	}
	return o
}
