// Package input translates SDL2 events into scene events.
package input

import (
	"github.com/Faultbox/cubeman/internal/scene"
	"github.com/veandco/go-sdl2/sdl"
)

// Input polls SDL and keeps the translated events of the last update.
type Input struct {
	events   []scene.Event
	dragging bool
}

// New creates an input handler.
func New() *Input {
	return &Input{
		events: make([]scene.Event, 0, 16),
	}
}

// Update drains the SDL event queue.
func (i *Input) Update() []scene.Event {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if ev, ok := i.translate(event); ok {
			i.events = append(i.events, ev)
		}
	}
	return i.events
}

// Events returns the events from the last Update.
func (i *Input) Events() []scene.Event {
	return i.events
}

func (i *Input) translate(event sdl.Event) (scene.Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return scene.Event{Kind: scene.EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return scene.Event{
				Kind:   scene.EventResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return scene.Event{}, false
		}
		return KeyEvent(e.Keysym.Sym), true

	case *sdl.MouseButtonEvent:
		if e.Button == sdl.BUTTON_LEFT {
			i.dragging = e.Type == sdl.MOUSEBUTTONDOWN
		}

	case *sdl.MouseMotionEvent:
		if i.dragging {
			return scene.Event{
				Kind: scene.EventDrag,
				DX:   float32(e.XRel),
				DY:   float32(e.YRel),
			}, true
		}

	case *sdl.MouseWheelEvent:
		if e.Y != 0 {
			return scene.Event{Kind: scene.EventZoom, Delta: float32(e.Y)}, true
		}
	}
	return scene.Event{}, false
}

// KeyEvent maps an SDL keycode to a scene event. F12 requests a
// screenshot; everything else is passed on as a rune.
func KeyEvent(sym sdl.Keycode) scene.Event {
	switch sym {
	case sdl.K_F12:
		return scene.Event{Kind: scene.EventScreenshot}
	case sdl.K_ESCAPE:
		return scene.Event{Kind: scene.EventKey, Key: scene.KeyEscape}
	}
	return scene.Event{Kind: scene.EventKey, Key: rune(sym)}
}
