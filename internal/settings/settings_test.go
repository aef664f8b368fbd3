package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbitdemo/internal/control"
)

func TestLoad(t *testing.T) {
	t.Run("Empty document keeps defaults", func(t *testing.T) {
		s, err := Load(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, Default(), s)
	})

	t.Run("Partial override", func(t *testing.T) {
		s, err := Load(strings.NewReader("drag_scale: 2.5\nlog_level: info\n"))
		require.NoError(t, err)
		assert.Equal(t, 2.5, s.DragScale)
		assert.Equal(t, "info", s.LogLevel)
		assert.Equal(t, control.DefaultRotationDamping, s.RotationDamping)
		assert.Equal(t, 800, s.WindowWidth)
	})

	t.Run("Unknown key", func(t *testing.T) {
		_, err := Load(strings.NewReader("zoom: 3\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode settings")
	})

	t.Run("Invalid values", func(t *testing.T) {
		for _, doc := range []string{
			"rotation_damping: 0\n",
			"music_volume: 1.5\n",
			"window_width: -1\n",
		} {
			_, err := Load(strings.NewReader(doc))
			assert.Error(t, err, doc)
		}
	})

	t.Run("Drag scale must be finite and non-negative", func(t *testing.T) {
		for doc, msg := range map[string]string{
			"drag_scale: .nan\n":       "drag_scale must be finite",
			"drag_scale: .inf\n":       "drag_scale must be finite",
			"drag_scale: -2\n":         "drag_scale must not be negative",
			"rotation_damping: .nan\n": "rotation_damping must be finite",
			"music_volume: .nan\n":     "music_volume must be finite",
		} {
			_, err := Load(strings.NewReader(doc))
			require.Error(t, err, doc)
			assert.Contains(t, err.Error(), msg)
		}
	})

	t.Run("Zero drag scale is allowed", func(t *testing.T) {
		s, err := Load(strings.NewReader("drag_scale: 0\n"))
		require.NoError(t, err)
		assert.Zero(t, s.DragScale)
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orbitdemo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("music_volume: 0.5\nwindow_width: 1024\nwindow_height: 768\n"), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.MusicVolume)
	assert.Equal(t, 1024, s.WindowWidth)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromEnv(t *testing.T) {
	t.Run("Unset", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		s, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, Default(), s)
	})

	t.Run("Set", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cfg.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rotation_damping: 4\n"), 0o644))
		t.Setenv(EnvConfig, path)

		s, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, 4.0, s.RotationDamping)
	})
}

func TestSettings_Gestures(t *testing.T) {
	s := Default()
	s.DragScale = 3
	g := s.Gestures()
	assert.Equal(t, 3.0, g.DragScale)
	assert.Equal(t, control.DefaultRotationDamping, g.RotationDamping)
}
