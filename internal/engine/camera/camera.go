// Package camera provides the view presets and projection used to look at the figure.
package camera

import (
	"github.com/Faultbox/cubeman/pkg/math"
)

// Projection parameters.
const (
	FieldOfView = 65.0 // degrees, vertical
	Near        = 0.1
	Far         = 100.0
)

// Preset identifies a fixed look-at configuration.
type Preset int

const (
	ViewStartup      Preset = iota // front view before any selection
	ViewSide                       // key 1
	ViewOverShoulder               // key 2
	ViewFront                      // key 3
	ViewOrbit                      // key 4, free look
)

var presetNames = map[Preset]string{
	ViewStartup:      "startup",
	ViewSide:         "side",
	ViewOverShoulder: "shoulder",
	ViewFront:        "front",
	ViewOrbit:        "orbit",
}

func (p Preset) String() string {
	if name, ok := presetNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePreset looks a preset up by name.
func ParsePreset(name string) (Preset, bool) {
	for p, n := range presetNames {
		if n == name {
			return p, true
		}
	}
	return 0, false
}

// Eye returns the camera position of a fixed preset. ViewOrbit has no
// fixed eye and reports false.
func (p Preset) Eye() (math.Vec3, bool) {
	switch p {
	case ViewStartup:
		return math.Vec3{Z: 2}, true
	case ViewSide:
		return math.Vec3{X: 3}, true
	case ViewOverShoulder:
		return math.Vec3{X: 0.5, Y: 1, Z: -2}, true
	case ViewFront:
		return math.Vec3{Z: 3}, true
	default:
		return math.Vec3{}, false
	}
}

var (
	target = math.Vec3{}
	up     = math.Vec3{Y: 1}
)

// State is the camera's projection and view. It is a value: every update
// returns a new State and leaves the receiver untouched.
type State struct {
	Preset     Preset
	Aspect     float32
	Projection math.Mat4
	View       math.Mat4
	Orbit      Orbit
}

// New returns the startup camera with a square aspect ratio.
func New() State {
	s := State{
		Preset:     ViewStartup,
		Aspect:     1,
		Projection: projection(1),
		Orbit:      NewOrbit(),
	}
	eye, _ := ViewStartup.Eye()
	s.View = math.LookAt(eye, target, up)
	return s
}

func projection(aspect float32) math.Mat4 {
	return math.Perspective(math.Radians(FieldOfView), aspect, Near, Far)
}

// Select cuts to preset p. There is no transition between views.
func (s State) Select(p Preset) State {
	if eye, ok := p.Eye(); ok {
		s.Preset = p
		s.View = math.LookAt(eye, target, up)
		return s
	}
	if p == ViewOrbit {
		s.Preset = p
		s.View = s.Orbit.ViewMatrix()
	}
	return s
}

// Resize recomputes the projection for a width x height viewport.
// A degenerate viewport leaves the state unchanged and returns false.
func (s State) Resize(width, height int) (State, bool) {
	if width <= 0 || height <= 0 {
		return s, false
	}
	s.Aspect = float32(width) / float32(height)
	s.Projection = projection(s.Aspect)
	return s, true
}

// Drag rotates the orbit camera. Fixed presets ignore it.
func (s State) Drag(dx, dy float32) State {
	if s.Preset != ViewOrbit {
		return s
	}
	s.Orbit = s.Orbit.Drag(dx, dy)
	s.View = s.Orbit.ViewMatrix()
	return s
}

// Zoom moves the orbit camera closer or further. Fixed presets ignore it.
func (s State) Zoom(delta float32) State {
	if s.Preset != ViewOrbit {
		return s
	}
	s.Orbit = s.Orbit.Zoom(delta)
	s.View = s.Orbit.ViewMatrix()
	return s
}

// ViewProjection returns projection * view.
func (s State) ViewProjection() math.Mat4 {
	return s.Projection.Mul(s.View)
}
