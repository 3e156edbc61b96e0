// Package config loads the sandbox settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/Carmen-Shannon/oxy-sandbox/common"
	"github.com/Carmen-Shannon/oxy-sandbox/engine/scene"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where cmd/sandbox looks for its settings, relative to the working directory.
const DefaultPath = "config/sandbox.yaml"

const (
	DefaultTitle    = "oxy sandbox"
	DefaultWidth    = 1280
	DefaultHeight   = 720
	DefaultTickRate = 60.0
	DefaultPreset   = scene.PresetAssignment
)

var (
	// ErrInvalidWindow is returned for a non-positive window width or height.
	ErrInvalidWindow = errors.New("window size must be positive")
	// ErrInvalidRate is returned for a negative tick rate or frame limit.
	ErrInvalidRate = errors.New("rates must not be negative")
	// ErrInvalidGain is returned for a negative rubber-band gain.
	ErrInvalidGain = errors.New("rubber-band gain must not be negative")
	// ErrInvalidWorkers is returned for a negative worker count.
	ErrInvalidWorkers = errors.New("worker count must not be negative")
	// ErrUnknownPreset is returned when the preset is not one of scene.PresetNames.
	ErrUnknownPreset = errors.New("unknown preset")
)

// Window holds the window settings.
type Window struct {
	Title         string `yaml:"title"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	CaptureCursor bool   `yaml:"capture_cursor"`
}

// Config is the on-disk sandbox configuration.
type Config struct {
	Window         Window  `yaml:"window"`
	TickRate       float64 `yaml:"tick_rate"`   // simulation ticks per second
	FrameLimit     float64 `yaml:"frame_limit"` // 0 = uncapped
	Profiling      bool    `yaml:"profiling"`
	Preset         string  `yaml:"preset"`
	Seed           int64   `yaml:"seed"`
	RubberBandGain float32 `yaml:"rubber_band_gain"` // 0 = camera.DefaultGain
	Workers        int     `yaml:"workers"`          // 0 = update objects on the tick goroutine
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Window: Window{
			Title:         DefaultTitle,
			Width:         DefaultWidth,
			Height:        DefaultHeight,
			CaptureCursor: true,
		},
		TickRate: DefaultTickRate,
		Preset:   DefaultPreset,
		Seed:     1,
		Workers:  max(runtime.NumCPU()-1, 1),
	}
}

// Load reads the YAML file at path over Default(). Keys absent from the file keep their defaults.
// A missing file is not an error and yields Default().
//
// Parameters:
//   - path: the settings file
//
// Returns:
//   - Config: the validated configuration
//   - error: read, parse, or validation error, wrapped with the path
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Window.Title = common.Coalesce(cfg.Window.Title, DefaultTitle)
	cfg.TickRate = common.Coalesce(cfg.TickRate, DefaultTickRate)
	cfg.Preset = common.Coalesce(cfg.Preset, DefaultPreset)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
//
// Parameters:
//   - path: destination file
//   - cfg: the configuration to write
//
// Returns:
//   - error: error if the directory or file cannot be written
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first invalid setting.
//
// Returns:
//   - error: one of the Err* sentinels, possibly wrapped with the offending value
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	if c.TickRate < 0 || c.FrameLimit < 0 {
		return fmt.Errorf("%w: tick_rate=%v frame_limit=%v", ErrInvalidRate, c.TickRate, c.FrameLimit)
	}
	if c.RubberBandGain < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidGain, c.RubberBandGain)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	if !slices.Contains(scene.PresetNames(), c.Preset) {
		return fmt.Errorf("%w %q (have %v)", ErrUnknownPreset, c.Preset, scene.PresetNames())
	}
	return nil
}

// Aspect returns the window aspect ratio.
func (c Config) Aspect() float32 {
	return float32(c.Window.Width) / float32(c.Window.Height)
}

// PresetConfig returns the scene preset parameters for this configuration.
func (c Config) PresetConfig() scene.PresetConfig {
	return scene.PresetConfig{
		Aspect:         c.Aspect(),
		Seed:           c.Seed,
		RubberBandGain: c.RubberBandGain,
	}
}
