package viewer

import "time"

// FPSCounter counts frames over one-second windows.
type FPSCounter struct {
	frames int
	since  time.Time
}

// NewFPSCounter starts counting at now.
func NewFPSCounter(now time.Time) *FPSCounter {
	return &FPSCounter{since: now}
}

// Tick records a frame. Once a second has passed it returns the frame
// count for that window and starts a new one.
func (c *FPSCounter) Tick(now time.Time) (int, bool) {
	c.frames++
	if now.Sub(c.since) < time.Second {
		return 0, false
	}
	n := c.frames
	c.frames = 0
	c.since = now
	return n, true
}
