package cubeman

import (
	gomath "math"
	"time"
)

// DefaultCycle is the length of one full walk cycle in seconds.
const DefaultCycle = 2.0

// Clock maps wall-clock time onto the keyframe cycle.
// It keeps no state between calls.
type Clock struct {
	Cycle     float64 // seconds per cycle, > 0
	Keyframes KeyframeTable
}

// NewClock returns a clock running the default walk cycle.
func NewClock() Clock {
	return Clock{
		Cycle:     DefaultCycle,
		Keyframes: DefaultKeyframes(),
	}
}

// Phase returns the keyframe pair active at the given time and the
// interpolation fraction t in [0, 1) between them.
func (c Clock) Phase(seconds float64) (cur, next int, t float32) {
	elapsed := gomath.Mod(seconds, c.Cycle)
	if elapsed < 0 {
		elapsed += c.Cycle
	}
	progress := elapsed / c.Cycle
	raw := progress * KeyframeCount

	cur = int(gomath.Floor(raw))
	frac := raw - float64(cur)
	if cur >= KeyframeCount {
		// progress rounded up to exactly 1
		cur, frac = KeyframeCount-1, 1
	}
	next = (cur + 1) % KeyframeCount
	return cur, next, float32(frac)
}

// Advance computes the pose at the given time. The right side interpolates
// keyframes cur->next; the left side does the same two keyframes later,
// which puts it half a cycle out of phase.
func (c Clock) Advance(seconds float64) Pose {
	cur, next, t := c.Phase(seconds)
	half := KeyframeCount / 2
	return Pose{
		Right: c.Keyframes.At(cur).Lerp(c.Keyframes.At(next), t),
		Left:  c.Keyframes.At(cur+half).Lerp(c.Keyframes.At(next+half), t),
	}
}

// Seconds converts a monotonic clock reading into seconds since start.
func Seconds(start, now time.Time) float64 {
	return now.Sub(start).Seconds()
}
