// Package audio plays a short footstep tick whenever a foot is planted.
package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/Faultbox/cubeman/internal/cubeman"
)

// DefaultSampleRate is the playback sample rate.
const DefaultSampleRate = beep.SampleRate(44100)

// StepDuration is the length of one footstep tick.
const StepDuration = 60 * time.Millisecond

// ErrNotInitialized is returned when playing before Init.
var ErrNotInitialized = errors.New("audio not initialized")

// Step pitches in Hz; the right foot is a little lower.
var stepFreq = map[cubeman.Side]float64{
	cubeman.SideRight: 110,
	cubeman.SideLeft:  130,
}

// Manager mixes footstep sounds into the speaker.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer

	volume float64 // 0.0 to 1.0
}

// New creates a manager at the given volume.
func New(volume float64) *Manager {
	return &Manager{
		sampleRate: DefaultSampleRate,
		mixer:      &beep.Mixer{},
		volume:     clamp(volume, 0, 1),
	}
}

// Init opens the audio device.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close stops playback.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		speaker.Clear()
	}
	m.initialized = false
}

// SetVolume sets the footstep volume, clamped to 0..1.
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clamp(vol, 0, 1)
}

// Volume returns the footstep volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// PlayStep queues a footstep for side.
func (m *Manager) PlayStep(side cubeman.Side) error {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.volume
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}

	tick := &effects.Volume{
		Streamer: StepSound(m.sampleRate, stepFreq[side]),
		Base:     2,
		Volume:   volumeToDb(vol),
		Silent:   vol <= 0,
	}
	speaker.Lock()
	m.mixer.Add(tick)
	speaker.Unlock()
	return nil
}

// StepSound returns a finite footstep tick at freq Hz.
func StepSound(sr beep.SampleRate, freq float64) beep.Streamer {
	return beep.Take(sr.N(StepDuration), &stepGenerator{sr: sr, freq: freq, length: sr.N(StepDuration)})
}

// stepGenerator is a sine with a fast attack and linear decay.
type stepGenerator struct {
	sr     beep.SampleRate
	freq   float64
	length int
	pos    int
}

func (g *stepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		attack := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1)
		decay := math.Max(1-float64(g.pos)/float64(g.length), 0)
		s := 0.4 * attack * decay * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *stepGenerator) Err() error {
	return nil
}

// volumeToDb maps 0..1 onto the base-2 exponent effects.Volume expects.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return math.Log2(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
