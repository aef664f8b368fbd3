//go:build !audio_stub

package game

import (
	"fmt"

	"github.com/hajimehoshi/oto/v2"

	"orbitdemo/internal/control"
	"orbitdemo/internal/sound"
)

// AudioSystem owns the oto context and the background music player.
type AudioSystem struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	music  *Music
}

// InitAudio opens the audio device. The context becomes usable
// asynchronously; Sink reports nil until then.
func InitAudio(volume float64) (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(sound.SampleRate, sound.ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	return &AudioSystem{ctx: ctx, ready: ready, volume: volume}, nil
}

// Sink returns the looping background music, starting it on first use once
// the context is ready. It returns nil while audio is unavailable.
func (a *AudioSystem) Sink() control.AudioSink {
	if a == nil || a.ctx == nil {
		return nil
	}
	if a.music != nil {
		return a.music
	}
	select {
	case <-a.ready:
	default:
		return nil
	}
	a.music = newMusic(a.ctx, a.volume)
	return a.music
}

func (a *AudioSystem) Close() error {
	if a == nil || a.music == nil {
		return nil
	}
	return a.music.Close()
}

// Music is the background track. It satisfies control.AudioSink.
type Music struct {
	player oto.Player
}

func newMusic(ctx *oto.Context, volume float64) *Music {
	player := ctx.NewPlayer(sound.NewLoop(1))
	player.SetVolume(volume)
	player.Play()
	return &Music{player: player}
}

func (m *Music) Play()  { m.player.Play() }
func (m *Music) Pause() { m.player.Pause() }

func (m *Music) Close() error { return m.player.Close() }
