package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagView       = flag.String("view", "", "Initial view: startup, side, shoulder, front, orbit")
	flagOut        = flag.String("out", "", "Snapshot output directory")
	flagFormat     = flag.String("format", "", "Snapshot format: png, webp, tga")
	flagTime       = flag.Float64("time", -1, "Snapshot animation time in seconds")
	flagFrames     = flag.Int("frames", 0, "Number of snapshot frames across one cycle")
	flagAnimated   = flag.Bool("animated", false, "Write the snapshot frames as one animated WebP")
	flagMute       = flag.Bool("mute", false, "Disable footstep sounds")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config to the user config directory and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagView != "" {
		cfg.View.Preset = *flagView
	}
	if *flagOut != "" {
		cfg.Snapshot.OutputDir = *flagOut
	}
	if *flagFormat != "" {
		cfg.Snapshot.Format = *flagFormat
	}
	if *flagTime >= 0 {
		cfg.Snapshot.Time = *flagTime
	}
	if *flagFrames > 0 {
		cfg.Snapshot.Frames = *flagFrames
	}
	if *flagMute {
		cfg.Audio.Enabled = false
	}
	if *flagAnimated {
		cfg.Snapshot.Animated = true
		cfg.Snapshot.Format = "webp"
	}
}
