package terminal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/cubeman/internal/engine/camera"
	"github.com/Faultbox/cubeman/internal/scene"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func cellColors(screen tcell.Screen, x, y int) (rune, [3]int32, [3]int32) {
	r, _, style, _ := screen.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	fr, fgc, fb := fg.RGB()
	br, bgc, bb := bg.RGB()
	return r, [3]int32{fr, fgc, fb}, [3]int32{br, bgc, bb}
}

func TestDrawFigure(t *testing.T) {
	screen := newSimScreen(t, 40, 20)
	p := New(screen, scene.New(), camera.ViewStartup, 30)

	p.Draw(0)

	r, fg, _ := cellColors(screen, 19, 11)
	if r != halfBlock {
		t.Errorf("expected half block, got %q", r)
	}
	if fg == ([3]int32{}) {
		t.Error("expected the body to color the cell near the center")
	}

	_, fg, bg := cellColors(screen, 0, 0)
	if fg != ([3]int32{}) || bg != ([3]int32{}) {
		t.Errorf("expected black background in the corner, got fg %v bg %v", fg, bg)
	}
}

func TestDrawTracksAspect(t *testing.T) {
	screen := newSimScreen(t, 30, 10)
	p := New(screen, scene.New(), camera.ViewStartup, 30)

	p.Draw(0.25)

	// 30 columns by 10 rows of two pixels each
	if got := p.State().Camera.Aspect; got != 1.5 {
		t.Errorf("expected aspect 1.5, got %v", got)
	}
	if p.State().Seconds != 0.25 {
		t.Errorf("expected state time 0.25, got %v", p.State().Seconds)
	}
}

func TestHandleEvent(t *testing.T) {
	tests := []struct {
		name     string
		ev       tcell.Event
		running  bool
		wantView camera.Preset
	}{
		{"view side", tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone), true, camera.ViewSide},
		{"view shoulder", tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone), true, camera.ViewOverShoulder},
		{"view front", tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), true, camera.ViewFront},
		{"view orbit", tcell.NewEventKey(tcell.KeyRune, '4', tcell.ModNone), true, camera.ViewOrbit},
		{"other key", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true, camera.ViewStartup},
		{"quit q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false, camera.ViewStartup},
		{"quit Q", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), false, camera.ViewStartup},
		{"quit escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false, camera.ViewStartup},
		{"quit ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), false, camera.ViewStartup},
		{"resize", tcell.NewEventResize(20, 10), true, camera.ViewStartup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newSimScreen(t, 20, 10)
			p := New(screen, scene.New(), camera.ViewStartup, 30)

			if got := p.HandleEvent(tt.ev); got != tt.running {
				t.Errorf("expected running=%v, got %v", tt.running, got)
			}
			if got := p.State().Camera.Preset; got != tt.wantView {
				t.Errorf("expected view %v, got %v", tt.wantView, got)
			}
		})
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	p := New(screen, scene.New(), camera.ViewStartup, 60)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.Run(ctx); err != nil {
		t.Errorf("expected clean exit, got %v", err)
	}
}

func TestRunStopsOnContext(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	p := New(screen, scene.New(), camera.ViewStartup, 60)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := p.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}
