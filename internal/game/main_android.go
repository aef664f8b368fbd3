//go:build android

package game

import (
	"go.uber.org/zap"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	"orbitdemo/internal/control"
	"orbitdemo/internal/scene"
	"orbitdemo/internal/settings"
)

// Run starts the app on the current platform.
func Run(cfg settings.Settings, log *zap.Logger) error {
	RunAndroid(cfg, log)
	return nil
}

type mobileApp struct {
	log *zap.Logger

	scene    scene.Scene
	systems  *control.Systems
	events   *control.Events
	rotation *control.RotationTracker
	audio    *AudioSystem

	sz size.Event

	// touch that went down on the button, if any
	buttonTouch touch.Sequence
	buttonDown  bool
}

func newMobileApp(cfg settings.Settings, log *zap.Logger, audio *AudioSystem) *mobileApp {
	sc := scene.Default()
	systems := control.NewSystems(sc.Camera, control.NewButton(sc.Button.Label), log)
	systems.Gestures = cfg.Gestures()
	return &mobileApp{
		log:      log,
		scene:    sc,
		systems:  systems,
		events:   control.NewEvents(),
		rotation: control.NewRotationTracker(),
		audio:    audio,
	}
}

// window reports the current surface size, or nil before the first size
// event and while the surface has no area.
func (m *mobileApp) window() *control.WindowSize {
	if m.sz.WidthPx <= 0 || m.sz.HeightPx <= 0 {
		return nil
	}
	return &control.WindowSize{Width: float64(m.sz.WidthPx), Height: float64(m.sz.HeightPx)}
}

func (m *mobileApp) tick() {
	m.systems.Update(m.events.Drain(m.window()), m.audio.Sink())
}

func (m *mobileApp) handleTouch(e touch.Event) {
	te := control.FromMobileTouch(e)
	m.events.PushTouch(te)
	if g, ok := m.rotation.Observe(te); ok {
		m.events.PushRotation(g)
	}

	w := m.window()
	if w == nil {
		return
	}
	switch e.Type {
	case touch.TypeBegin:
		if !m.buttonDown && m.scene.Button.Contains(w.Width, w.Height, te.Position) {
			m.buttonTouch = e.Sequence
			m.buttonDown = true
			m.events.SetInteraction(control.InteractionPressed)
		}
	case touch.TypeEnd:
		if m.buttonDown && e.Sequence == m.buttonTouch {
			m.buttonDown = false
			m.events.SetInteraction(control.InteractionNone)
		}
	}
}

// RunAndroid drives the app from x/mobile events. Paint events are the
// regular tick; lifecycle events tick immediately, because no paint arrives
// while the app is in the background.
func RunAndroid(cfg settings.Settings, log *zap.Logger) {
	audio, err := InitAudio(cfg.MusicVolume)
	if err != nil {
		log.Warn("audio init failed (continuing without sound)", zap.Error(err))
	}
	game := newMobileApp(cfg, log, audio)

	app.Main(func(a app.App) {
		var glctx gl.Context
		var rend *mobileRenderer

		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				game.events.PushLifecycle(control.FromMobileLifecycle(e)...)
				game.tick()

				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					ctx, ok := e.DrawContext.(gl.Context)
					if !ok {
						continue
					}
					glctx = ctx
					r, err := newMobileRenderer(glctx, game.scene)
					if err != nil {
						log.Error("renderer init failed", zap.Error(err))
						continue
					}
					rend = r
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					if rend != nil && glctx != nil {
						rend.destroy(glctx)
					}
					rend = nil
					glctx = nil
				}
				if e.To == lifecycle.StageDead {
					if err := audio.Close(); err != nil {
						log.Warn("close audio", zap.Error(err))
					}
					return
				}

			case size.Event:
				game.sz = e

			case touch.Event:
				game.handleTouch(e)

			case paint.Event:
				if glctx == nil || rend == nil || e.External {
					continue
				}
				game.tick()
				rend.draw(glctx, game.systems.Camera, game.systems.Button.Color, game.sz)
				a.Publish()
				a.Send(paint.Event{})
			}
		}
	})
}
