//go:build !android

package game

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"orbitdemo/internal/control"
	"orbitdemo/internal/scene"
	"orbitdemo/internal/settings"
)

// Run starts the app on the current platform.
func Run(cfg settings.Settings, log *zap.Logger) error {
	return RunDesktop(cfg, log)
}

// RunDesktop opens a glfw window and runs the tick loop until it is closed.
// The mouse stands in for a single touch contact.
func RunDesktop(cfg settings.Settings, log *zap.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.WindowWidth, cfg.WindowHeight)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	audio, err := InitAudio(cfg.MusicVolume)
	if err != nil {
		log.Warn("audio init failed (continuing without sound)", zap.Error(err))
	}
	defer func() {
		if err := audio.Close(); err != nil {
			log.Warn("close audio", zap.Error(err))
		}
	}()

	sc := scene.Default()
	rend, err := NewRenderer(sc)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	systems := control.NewSystems(sc.Camera, control.NewButton(sc.Button.Label), log)
	systems.Gestures = cfg.Gestures()
	events := control.NewEvents()
	input := NewInput(window, events)

	log.Info("desktop loop started",
		zap.Int("width", cfg.WindowWidth),
		zap.Int("height", cfg.WindowHeight),
		zap.Float64("drag_scale", cfg.DragScale),
	)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		size := input.Poll(window, sc.Button, dt)
		systems.Update(events.Drain(size), audio.Sink())

		fbW, fbH := window.GetFramebufferSize()
		if !drawable(size, fbW, fbH) {
			glfw.WaitEventsTimeout(IdleWait)
			continue
		}
		rend.Draw(systems.Camera, systems.Button.Color, size.Width, size.Height, fbW, fbH)
		window.SwapBuffers()
	}
	log.Info("desktop loop stopped")
	return nil
}
