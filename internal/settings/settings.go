package settings

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"orbitdemo/internal/control"
)

// EnvConfig names the environment variable holding an optional YAML file path.
const EnvConfig = "ORBITDEMO_CONFIG"

// Settings are the tunables a user may override without rebuilding.
type Settings struct {
	LogLevel        string  `yaml:"log_level"`
	DragScale       float64 `yaml:"drag_scale"`
	RotationDamping float64 `yaml:"rotation_damping"`
	MusicVolume     float64 `yaml:"music_volume"`
	WindowWidth     int     `yaml:"window_width"`
	WindowHeight    int     `yaml:"window_height"`
}

func Default() Settings {
	return Settings{
		LogLevel:        "debug",
		DragScale:       control.DefaultDragScale,
		RotationDamping: control.DefaultRotationDamping,
		MusicVolume:     0.24,
		WindowWidth:     800,
		WindowHeight:    600,
	}
}

// Load decodes YAML over the defaults. Keys not present keep their default
// value and unknown keys are rejected. An empty document yields the defaults.
func Load(r io.Reader) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func LoadFile(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("open settings: %w", err)
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// FromEnv loads the file named by EnvConfig, or returns the defaults when
// the variable is unset.
func FromEnv() (Settings, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

func (s Settings) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"drag_scale", s.DragScale},
		{"rotation_damping", s.RotationDamping},
		{"music_volume", s.MusicVolume},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s must be finite, got %v", f.name, f.v)
		}
	}
	if s.DragScale < 0 {
		return fmt.Errorf("drag_scale must not be negative, got %v", s.DragScale)
	}
	if s.RotationDamping <= 0 {
		return fmt.Errorf("rotation_damping must be positive, got %v", s.RotationDamping)
	}
	if s.MusicVolume < 0 || s.MusicVolume > 1 {
		return fmt.Errorf("music_volume must be within [0,1], got %v", s.MusicVolume)
	}
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.WindowWidth, s.WindowHeight)
	}
	return nil
}

// Gestures returns an interpreter configured from the settings.
func (s Settings) Gestures() control.GestureInterpreter {
	return control.GestureInterpreter{
		DragScale:       s.DragScale,
		RotationDamping: s.RotationDamping,
	}
}
