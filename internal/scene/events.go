package scene

import (
	"github.com/Faultbox/cubeman/internal/engine/camera"
)

// EventKind classifies a platform-neutral input event.
type EventKind int

const (
	EventNone EventKind = iota
	EventKey
	EventResize
	EventDrag
	EventZoom
	EventScreenshot
	EventQuit
)

// Event is an input event translated by a platform shell.
type Event struct {
	Kind   EventKind
	Key    rune // EventKey
	Width  int  // EventResize
	Height int
	DX, DY float32 // EventDrag
	Delta  float32 // EventZoom
}

// Action tells the shell what to do after an event was applied.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionScreenshot
	ActionViewChanged
	ActionResized
)

// KeyEscape is the rune shells report for the escape key.
const KeyEscape = 0x1b

// ViewKeys maps keys to camera presets.
var ViewKeys = map[rune]camera.Preset{
	'1': camera.ViewSide,
	'2': camera.ViewOverShoulder,
	'3': camera.ViewFront,
	'4': camera.ViewOrbit,
}

// Apply updates the state for one event.
func Apply(s State, ev Event) (State, Action) {
	switch ev.Kind {
	case EventQuit:
		return s, ActionQuit

	case EventScreenshot:
		return s, ActionScreenshot

	case EventKey:
		switch ev.Key {
		case 'q', 'Q', KeyEscape:
			return s, ActionQuit
		}
		if p, ok := ViewKeys[ev.Key]; ok {
			return s.SelectView(p), ActionViewChanged
		}

	case EventResize:
		if next, ok := s.Resize(ev.Width, ev.Height); ok {
			return next, ActionResized
		}

	case EventDrag:
		s.Camera = s.Camera.Drag(ev.DX, ev.DY)

	case EventZoom:
		s.Camera = s.Camera.Zoom(ev.Delta)
	}
	return s, ActionNone
}
