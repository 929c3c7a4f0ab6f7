// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/cubeman/internal/engine/camera"
	"github.com/Faultbox/cubeman/internal/logger"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	View     ViewConfig     `yaml:"view"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Terminal TerminalConfig `yaml:"terminal"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ViewConfig holds the camera the viewer starts with.
type ViewConfig struct {
	Preset        string `yaml:"preset"` // startup, side, shoulder, front or orbit
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// SnapshotConfig holds headless rendering settings.
type SnapshotConfig struct {
	OutputDir   string  `yaml:"output_dir"`
	Format      string  `yaml:"format"` // png, webp or tga
	Size        int     `yaml:"size"`
	Supersample int     `yaml:"supersample"`
	Time        float64 `yaml:"time"`   // seconds, for a single still
	Frames      int     `yaml:"frames"` // > 1 renders a sequence across one cycle
	Animated    bool    `yaml:"animated"`
	FrameMs     int     `yaml:"frame_ms"`
	Workers     int     `yaml:"workers"`
}

// TerminalConfig holds terminal preview settings.
type TerminalConfig struct {
	FPS int `yaml:"fps"`
}

// AudioConfig holds footstep sound settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      512,
			Height:     512,
			Fullscreen: false,
			VSync:      true,
		},
		View: ViewConfig{
			Preset:        camera.ViewStartup.String(),
			ScreenshotDir: "screenshots",
		},
		Snapshot: SnapshotConfig{
			OutputDir:   "out",
			Format:      "png",
			Size:        512,
			Supersample: 2,
			Time:        0,
			Frames:      1,
			Animated:    false,
			FrameMs:     50,
			Workers:     4,
		},
		Terminal: TerminalConfig{
			FPS: 30,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Formats lists the supported snapshot encodings.
var Formats = []string{"png", "webp", "tga"}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks values that would otherwise fail deep inside a shell.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	}
	if _, ok := camera.ParsePreset(c.View.Preset); !ok {
		return fmt.Errorf("%w: unknown view preset %q", ErrInvalid, c.View.Preset)
	}
	if !validFormat(c.Snapshot.Format) {
		return fmt.Errorf("%w: unknown snapshot format %q", ErrInvalid, c.Snapshot.Format)
	}
	if c.Snapshot.Size <= 0 || c.Snapshot.Supersample <= 0 {
		return fmt.Errorf("%w: snapshot size %d x%d", ErrInvalid, c.Snapshot.Size, c.Snapshot.Supersample)
	}
	if c.Snapshot.Frames <= 0 || c.Snapshot.Workers <= 0 || c.Snapshot.FrameMs <= 0 {
		return fmt.Errorf("%w: snapshot frames %d, workers %d, frame_ms %d",
			ErrInvalid, c.Snapshot.Frames, c.Snapshot.Workers, c.Snapshot.FrameMs)
	}
	if c.Terminal.FPS <= 0 {
		return fmt.Errorf("%w: terminal fps %d", ErrInvalid, c.Terminal.FPS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %v", ErrInvalid, c.Audio.Volume)
	}
	if !logger.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}

// StartPreset returns the configured initial camera preset.
func (c *Config) StartPreset() camera.Preset {
	p, ok := camera.ParsePreset(c.View.Preset)
	if !ok {
		return camera.ViewStartup
	}
	return p
}

func validFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}
