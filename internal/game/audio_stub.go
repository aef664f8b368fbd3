//go:build audio_stub

package game

import "orbitdemo/internal/control"

// AudioSystem without a device: the music never loads, so lifecycle
// handling is skipped every tick.
type AudioSystem struct{}

func InitAudio(volume float64) (*AudioSystem, error) { return &AudioSystem{}, nil }

func (a *AudioSystem) Sink() control.AudioSink { return nil }
func (a *AudioSystem) Close() error            { return nil }
