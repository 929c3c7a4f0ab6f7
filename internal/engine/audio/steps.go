package audio

import "github.com/Faultbox/cubeman/internal/cubeman"

// Foot plants happen when the clock enters these keyframes.
const (
	rightPlant = 0
	leftPlant  = 2
)

// StepTracker reports a foot plant each time the animation clock enters
// keyframe 0 (right foot) or keyframe 2 (left foot).
type StepTracker struct {
	clock   cubeman.Clock
	last    int
	started bool
}

// NewStepTracker watches clock.
func NewStepTracker(clock cubeman.Clock) *StepTracker {
	return &StepTracker{clock: clock}
}

// Update advances the tracker to seconds. The first call only records the
// starting keyframe.
func (s *StepTracker) Update(seconds float64) (cubeman.Side, bool) {
	cur, _, _ := s.clock.Phase(seconds)
	if !s.started {
		s.started = true
		s.last = cur
		return 0, false
	}
	if cur == s.last {
		return 0, false
	}
	s.last = cur
	switch cur {
	case rightPlant:
		return cubeman.SideRight, true
	case leftPlant:
		return cubeman.SideLeft, true
	}
	return 0, false
}
