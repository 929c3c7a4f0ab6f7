// Package viewer runs the interactive OpenGL window.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubeman/internal/cubeman"
	"github.com/Faultbox/cubeman/internal/engine/audio"
	"github.com/Faultbox/cubeman/internal/engine/camera"
	"github.com/Faultbox/cubeman/internal/engine/input"
	"github.com/Faultbox/cubeman/internal/engine/renderer"
	"github.com/Faultbox/cubeman/internal/engine/window"
	"github.com/Faultbox/cubeman/internal/logger"
	"github.com/Faultbox/cubeman/internal/scene"
	"github.com/Faultbox/cubeman/internal/snapshot"
)

// Config holds viewer configuration.
type Config struct {
	Width         int
	Height        int
	Fullscreen    bool
	VSync         bool
	View          camera.Preset
	ScreenshotDir string
	Sound         bool
	Volume        float64
}

// Viewer owns the window, the GL renderer and the frame state.
type Viewer struct {
	config   Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	capture  *snapshot.Capture
	audio    *audio.Manager
	steps    *audio.StepTracker

	scene *scene.Scene
	state scene.State
	draws []scene.DrawCall
}

// New opens the window and uploads the figure.
func New(cfg Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Stringer("view", cfg.View),
	)

	v := &Viewer{
		config:  cfg,
		scene:   scene.New(),
		capture: snapshot.NewCapture(cfg.ScreenshotDir, "cubeman"),
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      window.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The drawable may be larger than the window on high-DPI displays
	w, h := v.window.DrawableSize()

	// Renderer after window, the GL context must exist
	v.renderer, err = renderer.New(renderer.Config{Width: w, Height: h}, v.scene.Mesh())
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()

	if cfg.Sound {
		v.initAudio()
	}

	v.state = v.scene.Initial().SelectView(cfg.View)
	v.state, _ = v.state.Resize(w, h)
	v.window.ShowView(v.state.Camera.Preset.String())

	logger.Info("viewer initialized")
	return v, nil
}

// Run drives the frame loop until the window is closed or a quit key is
// pressed.
func (v *Viewer) Run() error {
	v.running = true

	start := time.Now()
	lastTime := start
	fps := NewFPSCounter(start)

	logger.Info("starting frame loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		for _, ev := range v.input.Update() {
			v.handle(ev)
		}
		if !v.running {
			break
		}

		v.state = v.scene.Step(v.state, cubeman.Seconds(start, now))
		v.footsteps()
		v.render()
		v.window.SwapBuffers()

		if n, ok := fps.Tick(now); ok {
			logger.Debug("fps",
				zap.Int("count", n),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
		}
	}
	return nil
}

// initAudio opens the speaker. The viewer runs silently if it cannot.
func (v *Viewer) initAudio() {
	m := audio.New(v.config.Volume)
	if err := m.Init(); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
		return
	}
	v.audio = m
	v.steps = audio.NewStepTracker(v.scene.Clock())
}

func (v *Viewer) footsteps() {
	if v.audio == nil {
		return
	}
	if side, ok := v.steps.Update(v.state.Seconds); ok {
		if err := v.audio.PlayStep(side); err != nil {
			logger.Debug("footstep", zap.Error(err))
		}
	}
}

func (v *Viewer) handle(ev scene.Event) {
	next, action := scene.Apply(v.state, ev)
	v.state = next

	switch action {
	case scene.ActionQuit:
		v.running = false

	case scene.ActionViewChanged:
		view := v.state.Camera.Preset.String()
		v.window.ShowView(view)
		logger.Debug("view changed", zap.String("view", view))

	case scene.ActionResized:
		// Events report window points; the viewport needs pixels
		w, h := v.window.DrawableSize()
		next, ok := v.state.Resize(w, h)
		if !ok {
			logger.Debug("degenerate resize ignored", zap.Int("width", w), zap.Int("height", h))
			return
		}
		v.state = next
		v.renderer.Resize(w, h)

	case scene.ActionScreenshot:
		v.screenshot()
	}
}

func (v *Viewer) render() {
	v.draws = v.scene.AppendDraws(v.draws[:0], v.state)
	v.renderer.Begin()
	v.renderer.Draw(v.draws)
	v.renderer.End()
}

// screenshot captures the current frame.
func (v *Viewer) screenshot() {
	v.render()
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.capture.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases the renderer and window.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.audio != nil {
		v.audio.Close()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
