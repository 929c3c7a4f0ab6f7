// Package scene ties the animation clock, the pose composer and the camera
// into one per-frame update.
//
// All frame state lives in State, which callers pass in and get back; the
// Scene itself only holds immutable data (mesh, keyframes, part table).
package scene

import (
	"github.com/Faultbox/cubeman/internal/cubeman"
	"github.com/Faultbox/cubeman/internal/engine/camera"
	"github.com/Faultbox/cubeman/pkg/math"
)

// spinAxis is the axis the whole figure turns around.
var spinAxis = math.Vec3{X: 1, Y: 1}

// State is everything that changes from frame to frame.
type State struct {
	Seconds float64 // animation time the pose was computed for
	Pose    cubeman.Pose
	Camera  camera.State
	Spin    float32 // whole-figure rotation in radians, never advanced
}

// SelectView cuts the camera to preset p.
func (s State) SelectView(p camera.Preset) State {
	s.Camera = s.Camera.Select(p)
	return s
}

// Resize updates the projection aspect. Degenerate sizes are ignored and
// reported with false.
func (s State) Resize(width, height int) (State, bool) {
	cam, ok := s.Camera.Resize(width, height)
	s.Camera = cam
	return s, ok
}

// DrawCall is one body part ready to submit: its model transform and the
// combined projection * view * model matrix.
type DrawCall struct {
	Part  string
	Model math.Mat4
	PVM   math.Mat4
	Mesh  *cubeman.Mesh
}

// Scene owns the immutable figure data.
type Scene struct {
	mesh     cubeman.Mesh
	clock    cubeman.Clock
	composer *cubeman.Composer
}

// New builds the cube mesh and the default figure.
func New() *Scene {
	sc := &Scene{
		mesh:  cubeman.BuildColorCube(),
		clock: cubeman.NewClock(),
	}
	sc.composer = cubeman.NewComposer(&sc.mesh, cubeman.DefaultParts())
	return sc
}

// Mesh returns the shared cube mesh for upload.
func (sc *Scene) Mesh() *cubeman.Mesh {
	return &sc.mesh
}

// Clock returns the animation clock.
func (sc *Scene) Clock() cubeman.Clock {
	return sc.clock
}

// Initial returns the state before the first tick.
func (sc *Scene) Initial() State {
	return State{
		Pose:   sc.clock.Advance(0),
		Camera: camera.New(),
	}
}

// Step recomputes the pose for the given animation time.
func (sc *Scene) Step(s State, seconds float64) State {
	s.Seconds = seconds
	s.Pose = sc.clock.Advance(seconds)
	return s
}

// World returns the transform applied to the whole figure.
func (sc *Scene) World(s State) math.Mat4 {
	return math.Identity().Rotate(s.Spin, spinAxis)
}

// Draws returns the figure's draw calls for the state, in part order.
func (sc *Scene) Draws(s State) []DrawCall {
	return sc.AppendDraws(nil, s)
}

// AppendDraws appends the figure's draw calls to dst.
func (sc *Scene) AppendDraws(dst []DrawCall, s State) []DrawCall {
	viewProj := s.Camera.ViewProjection()
	for _, cmd := range sc.composer.Compose(sc.World(s), s.Pose) {
		dst = append(dst, DrawCall{
			Part:  cmd.Part,
			Model: cmd.Model,
			PVM:   viewProj.Mul(cmd.Model),
			Mesh:  cmd.Mesh,
		})
	}
	return dst
}
