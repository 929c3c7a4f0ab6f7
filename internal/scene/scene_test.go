package scene

import (
	"testing"

	"github.com/Faultbox/cubeman/internal/cubeman"
	"github.com/Faultbox/cubeman/internal/engine/camera"
	"github.com/Faultbox/cubeman/pkg/math"
)

func TestInitialState(t *testing.T) {
	sc := New()
	s := sc.Initial()

	if s.Camera.Preset != camera.ViewStartup {
		t.Errorf("expected startup view, got %v", s.Camera.Preset)
	}
	if s.Spin != 0 {
		t.Errorf("expected no spin, got %v", s.Spin)
	}
	kf := cubeman.DefaultKeyframes()
	if s.Pose.Right != kf[0] || s.Pose.Left != kf[2] {
		t.Errorf("initial pose = %+v", s.Pose)
	}
}

func TestStepRecomputesPose(t *testing.T) {
	sc := New()
	s := sc.Step(sc.Initial(), 1.0)

	kf := cubeman.DefaultKeyframes()
	if s.Pose.Right != kf[2] {
		t.Errorf("right pose at 1s = %+v, want %+v", s.Pose.Right, kf[2])
	}
	if s.Seconds != 1.0 {
		t.Errorf("seconds = %v, want 1", s.Seconds)
	}

	// Stepping is a pure function of time
	again := sc.Step(sc.Step(sc.Initial(), 0.3), 1.0)
	if again.Pose != s.Pose {
		t.Error("Step should not depend on the previous pose")
	}
}

func TestWorldIsIdentityWithoutSpin(t *testing.T) {
	sc := New()
	if w := sc.World(sc.Initial()); !w.ApproxEqual(math.Identity(), 0) {
		t.Errorf("world = %v, want identity", w)
	}
}

func TestDrawsCombinePVM(t *testing.T) {
	sc := New()
	s := sc.Step(sc.Initial(), 0.6).SelectView(camera.ViewSide)
	s, _ = s.Resize(1280, 720)

	draws := sc.Draws(s)
	if len(draws) != 10 {
		t.Fatalf("expected 10 draw calls, got %d", len(draws))
	}

	vp := s.Camera.ViewProjection()
	for _, d := range draws {
		if d.PVM != vp.Mul(d.Model) {
			t.Errorf("%s: PVM is not projection*view*model", d.Part)
		}
		if d.Mesh != sc.Mesh() {
			t.Errorf("%s: draw call does not use the shared mesh", d.Part)
		}
	}
	if draws[0].Part != "body" || draws[1].Part != "head" {
		t.Errorf("draw order starts %q, %q", draws[0].Part, draws[1].Part)
	}
}

func TestDrawsRestBody(t *testing.T) {
	sc := New()
	draws := sc.Draws(sc.Initial())
	want := math.Scale(math.Vec3{X: 0.4, Y: 1, Z: 0.2})
	if !draws[0].Model.ApproxEqual(want, 1e-6) {
		t.Errorf("body model = %v, want %v", draws[0].Model, want)
	}
}

func TestApply(t *testing.T) {
	sc := New()
	base := sc.Initial()

	tests := []struct {
		name   string
		ev     Event
		action Action
		preset camera.Preset
	}{
		{"key 1", Event{Kind: EventKey, Key: '1'}, ActionViewChanged, camera.ViewSide},
		{"key 2", Event{Kind: EventKey, Key: '2'}, ActionViewChanged, camera.ViewOverShoulder},
		{"key 3", Event{Kind: EventKey, Key: '3'}, ActionViewChanged, camera.ViewFront},
		{"key 4", Event{Kind: EventKey, Key: '4'}, ActionViewChanged, camera.ViewOrbit},
		{"q", Event{Kind: EventKey, Key: 'q'}, ActionQuit, camera.ViewStartup},
		{"Q", Event{Kind: EventKey, Key: 'Q'}, ActionQuit, camera.ViewStartup},
		{"escape", Event{Kind: EventKey, Key: KeyEscape}, ActionQuit, camera.ViewStartup},
		{"other key", Event{Kind: EventKey, Key: 'x'}, ActionNone, camera.ViewStartup},
		{"window close", Event{Kind: EventQuit}, ActionQuit, camera.ViewStartup},
		{"screenshot", Event{Kind: EventScreenshot}, ActionScreenshot, camera.ViewStartup},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, action := Apply(base, tt.ev)
			if action != tt.action {
				t.Errorf("action = %v, want %v", action, tt.action)
			}
			if s.Camera.Preset != tt.preset {
				t.Errorf("preset = %v, want %v", s.Camera.Preset, tt.preset)
			}
		})
	}
}

func TestApplyResize(t *testing.T) {
	sc := New()
	s, action := Apply(sc.Initial(), Event{Kind: EventResize, Width: 1000, Height: 500})
	if action != ActionResized || s.Camera.Aspect != 2 {
		t.Errorf("resize: action %v, aspect %v", action, s.Camera.Aspect)
	}

	same, action := Apply(s, Event{Kind: EventResize, Width: 1000, Height: 0})
	if action != ActionNone {
		t.Errorf("zero-height resize reported %v", action)
	}
	if same.Camera.Projection != s.Camera.Projection {
		t.Error("zero-height resize must keep the previous projection")
	}
}

func TestApplyDragOnlyInOrbit(t *testing.T) {
	sc := New()
	s := sc.Initial()
	dragged, _ := Apply(s, Event{Kind: EventDrag, DX: 50, DY: 10})
	if dragged.Camera.View != s.Camera.View {
		t.Error("drag should not move a fixed preset")
	}

	orbit, _ := Apply(s, Event{Kind: EventKey, Key: '4'})
	dragged, _ = Apply(orbit, Event{Kind: EventDrag, DX: 50, DY: 10})
	if dragged.Camera.View == orbit.Camera.View {
		t.Error("drag should move the orbit camera")
	}
	zoomed, _ := Apply(orbit, Event{Kind: EventZoom, Delta: 1})
	if zoomed.Camera.Orbit.Distance >= orbit.Camera.Orbit.Distance {
		t.Error("zooming in should shorten the orbit distance")
	}
}
