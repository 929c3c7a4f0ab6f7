// Package terminal shows the animated figure in a text terminal. Each cell
// is split into two pixels with the upper half block, foreground on top and
// background below.
package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/cubeman/internal/cubeman"
	"github.com/Faultbox/cubeman/internal/engine/camera"
	"github.com/Faultbox/cubeman/internal/engine/raster"
	"github.com/Faultbox/cubeman/internal/logger"
	"github.com/Faultbox/cubeman/internal/scene"
)

const halfBlock = '▀'

// Preview draws the figure on a tcell screen.
type Preview struct {
	screen tcell.Screen
	scene  *scene.Scene
	state  scene.State
	fb     *raster.FrameBuffer
	draws  []scene.DrawCall
	fps    int
}

// New creates a preview on an initialized screen.
func New(screen tcell.Screen, sc *scene.Scene, view camera.Preset, fps int) *Preview {
	if fps <= 0 {
		fps = 30
	}
	return &Preview{
		screen: screen,
		scene:  sc,
		state:  sc.Initial().SelectView(view),
		fps:    fps,
	}
}

// State returns the current frame state.
func (p *Preview) State() scene.State {
	return p.state
}

// Draw renders the figure at the given animation time and shows it.
func (p *Preview) Draw(seconds float64) {
	cols, rows := p.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	w, h := cols, rows*2

	if p.fb == nil || p.fb.Width != w || p.fb.Height != h {
		fb, err := raster.NewFrameBuffer(w, h)
		if err != nil {
			logger.Warn("terminal framebuffer", zap.Int("width", w), zap.Int("height", h), zap.Error(err))
			return
		}
		p.fb = fb
		p.state, _ = p.state.Resize(w, h)
	}

	p.state = p.scene.Step(p.state, seconds)
	p.draws = p.scene.AppendDraws(p.draws[:0], p.state)
	raster.Render(p.fb, p.draws)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := p.fb.At(x, y*2)
			bottom := p.fb.At(x, y*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top[0]), int32(top[1]), int32(top[2]))).
				Background(tcell.NewRGBColor(int32(bottom[0]), int32(bottom[1]), int32(bottom[2])))
			p.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	p.screen.Show()
}

// KeyEvent translates a tcell key into a scene event.
func KeyEvent(ev *tcell.EventKey) scene.Event {
	switch ev.Key() {
	case tcell.KeyEscape:
		return scene.Event{Kind: scene.EventKey, Key: scene.KeyEscape}
	case tcell.KeyCtrlC:
		return scene.Event{Kind: scene.EventQuit}
	case tcell.KeyRune:
		return scene.Event{Kind: scene.EventKey, Key: ev.Rune()}
	}
	return scene.Event{}
}

// HandleEvent applies one terminal event. It returns false when the
// preview should exit.
func (p *Preview) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		next, action := scene.Apply(p.state, KeyEvent(ev))
		p.state = next
		switch action {
		case scene.ActionQuit:
			return false
		case scene.ActionViewChanged:
			logger.Debug("view changed", zap.Stringer("view", p.state.Camera.Preset))
		}

	case *tcell.EventResize:
		p.screen.Sync()
		// Force a new framebuffer on the next draw
		p.fb = nil
	}
	return true
}

// Run animates until ctx is done or the user quits.
func (p *Preview) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(p.fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go p.screen.ChannelEvents(events, quit)

	start := time.Now()
	p.Draw(0)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if ev == nil {
				return nil
			}
			if !p.HandleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			p.Draw(cubeman.Seconds(start, now))
		}
	}
}
