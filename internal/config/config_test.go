package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/cubeman/internal/engine/camera"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 512 || cfg.Graphics.Height != 512 {
		t.Errorf("expected 512x512, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.View.Preset != "startup" {
		t.Errorf("expected startup preset, got %s", cfg.View.Preset)
	}
	if cfg.StartPreset() != camera.ViewStartup {
		t.Errorf("expected ViewStartup, got %v", cfg.StartPreset())
	}

	if cfg.Snapshot.Format != "png" {
		t.Errorf("expected png, got %s", cfg.Snapshot.Format)
	}
	if cfg.Snapshot.Size != 512 || cfg.Snapshot.Supersample != 2 {
		t.Errorf("unexpected snapshot size %d x%d", cfg.Snapshot.Size, cfg.Snapshot.Supersample)
	}
	if cfg.Snapshot.Frames != 1 || cfg.Snapshot.Workers != 4 || cfg.Snapshot.FrameMs != 50 {
		t.Errorf("unexpected snapshot defaults: %+v", cfg.Snapshot)
	}

	if cfg.Terminal.FPS != 30 {
		t.Errorf("expected terminal fps 30, got %d", cfg.Terminal.FPS)
	}

	if !cfg.Audio.Enabled || cfg.Audio.Volume != 0.5 {
		t.Errorf("unexpected audio defaults: %+v", cfg.Audio)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 800
  height: 600
  fullscreen: true
  vsync: false

view:
  preset: shoulder

snapshot:
  output_dir: "renders"
  format: webp
  frames: 16
  animated: true

terminal:
  fps: 20

logging:
  level: "debug"
  log_file: "cubeman.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 800 || cfg.Graphics.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.StartPreset() != camera.ViewOverShoulder {
		t.Errorf("expected shoulder view, got %v", cfg.StartPreset())
	}
	if cfg.Snapshot.OutputDir != "renders" || cfg.Snapshot.Format != "webp" {
		t.Errorf("unexpected snapshot output: %+v", cfg.Snapshot)
	}
	if cfg.Snapshot.Frames != 16 || !cfg.Snapshot.Animated {
		t.Errorf("unexpected snapshot sequence: %+v", cfg.Snapshot)
	}
	// Fields absent from the file keep their defaults
	if cfg.Snapshot.Size != 512 || cfg.Snapshot.Workers != 4 {
		t.Errorf("expected unset snapshot fields to keep defaults: %+v", cfg.Snapshot)
	}
	if cfg.Terminal.FPS != 20 {
		t.Errorf("expected terminal fps 20, got %d", cfg.Terminal.FPS)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "cubeman.log" {
		t.Errorf("expected log file 'cubeman.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileUnknownKey(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "typo.yaml")
	if err := os.WriteFile(configPath, []byte("snapshots:\n  size: 64\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error for unknown section, got nil")
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("empty file should keep defaults: %v", err)
	}
	if cfg.Snapshot.Size != 512 {
		t.Errorf("expected default size, got %d", cfg.Snapshot.Size)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"negative height", func(c *Config) { c.Graphics.Height = -1 }},
		{"unknown preset", func(c *Config) { c.View.Preset = "overhead" }},
		{"unknown format", func(c *Config) { c.Snapshot.Format = "gif" }},
		{"zero size", func(c *Config) { c.Snapshot.Size = 0 }},
		{"zero supersample", func(c *Config) { c.Snapshot.Supersample = 0 }},
		{"zero frames", func(c *Config) { c.Snapshot.Frames = 0 }},
		{"zero workers", func(c *Config) { c.Snapshot.Workers = 0 }},
		{"zero frame_ms", func(c *Config) { c.Snapshot.FrameMs = 0 }},
		{"zero terminal fps", func(c *Config) { c.Terminal.FPS = 0 }},
		{"loud audio", func(c *Config) { c.Audio.Volume = 1.5 }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestValidateAcceptsEveryPreset(t *testing.T) {
	for _, name := range []string{"startup", "side", "shoulder", "front", "orbit"} {
		cfg := Default()
		cfg.View.Preset = name
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)
	t.Setenv(EnvConfig, "")

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}

	envPath := filepath.Join(tmpDir, "elsewhere.yaml")
	if err := os.WriteFile(envPath, []byte("terminal:\n  fps: 12\n"), 0644); err != nil {
		t.Fatalf("failed to create env config: %v", err)
	}
	t.Setenv(EnvConfig, envPath)
	if path := findConfigFile(); path != envPath {
		t.Errorf("expected %s from %s, got %s", envPath, EnvConfig, path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 1024
				*flagHeight = 768
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 1024 || cfg.Graphics.Height != 768 {
					t.Errorf("expected 1024x768, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "view flag",
			setup: func() { *flagView = "side" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.StartPreset() != camera.ViewSide {
					t.Errorf("expected side view, got %v", cfg.StartPreset())
				}
			},
			teardown: func() { *flagView = "" },
		},
		{
			name: "snapshot flags",
			setup: func() {
				*flagOut = "frames"
				*flagFormat = "tga"
				*flagTime = 0.75
				*flagFrames = 12
			},
			verify: func(t *testing.T, cfg *Config) {
				s := cfg.Snapshot
				if s.OutputDir != "frames" || s.Format != "tga" || s.Time != 0.75 || s.Frames != 12 {
					t.Errorf("unexpected snapshot config: %+v", s)
				}
			},
			teardown: func() {
				*flagOut = ""
				*flagFormat = ""
				*flagTime = -1
				*flagFrames = 0
			},
		},
		{
			name:  "mute flag",
			setup: func() { *flagMute = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Audio.Enabled {
					t.Error("expected audio disabled with mute flag")
				}
			},
			teardown: func() { *flagMute = false },
		},
		{
			name: "animated forces webp",
			setup: func() {
				*flagFormat = "png"
				*flagAnimated = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Snapshot.Animated || cfg.Snapshot.Format != "webp" {
					t.Errorf("expected animated webp, got %+v", cfg.Snapshot)
				}
			},
			teardown: func() {
				*flagFormat = ""
				*flagAnimated = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 640
  height: 480
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1024
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, height from file
	if cfg.Graphics.Width != 1024 {
		t.Errorf("expected width 1024 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 480 {
		t.Errorf("expected height 480 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("view:\n  preset: overhead\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.View.Preset = "front"
	cfg.Snapshot.Frames = 24
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.StartPreset() != camera.ViewFront || loaded.Snapshot.Frames != 24 {
		t.Errorf("saved config did not reload: %+v", loaded)
	}
}
