package control

import "go.uber.org/zap"

// Systems owns the per-process state the update systems mutate: the single
// camera, the gesture memory and the single button.
type Systems struct {
	Gestures GestureInterpreter
	Camera   Transform
	Gesture  GestureState
	Button   Button

	log *zap.Logger
}

func NewSystems(cam Transform, button Button, log *zap.Logger) *Systems {
	if log == nil {
		log = zap.NewNop()
	}
	return &Systems{
		Gestures: NewGestureInterpreter(),
		Camera:   cam,
		Button:   button,
		log:      log,
	}
}

// Update runs every system once for the tick. sink may be nil while the
// music is still loading.
func (s *Systems) Update(f Frame, sink AudioSink) {
	s.Gestures.Update(f.Window, &s.Camera, &s.Gesture, f.Touches, f.Rotations)

	for _, e := range f.Lifecycle {
		s.log.Debug("app lifecycle", zap.Stringer("event", e), zap.Bool("audio", sink != nil))
	}
	HandleLifecycle(f.Lifecycle, sink)

	if f.Interaction != nil {
		s.Button.SetInteraction(*f.Interaction)
	}
	if s.Button.Changed() {
		s.log.Debug("button interaction", zap.Stringer("state", s.Button.Interaction))
	}
	StyleButton(&s.Button)
}
