//go:build !android

package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl64"

	"orbitdemo/internal/control"
	"orbitdemo/internal/scene"
)

// mouseTouchID is the touch identifier given to the emulated mouse contact.
const mouseTouchID = 0

// Input turns glfw mouse, keyboard and window state into the same events a
// touch screen produces.
type Input struct {
	events *control.Events

	mouseDown bool
	lastPos   mgl64.Vec2
}

// NewInput installs the window callbacks that report lifecycle changes.
// Minimising the window suspends the app; focus changes announce it.
func NewInput(window *glfw.Window, events *control.Events) *Input {
	window.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		if iconified {
			events.PushLifecycle(control.Suspended)
		} else {
			events.PushLifecycle(control.Running)
		}
	})
	window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if focused {
			events.PushLifecycle(control.WillResume)
		} else {
			events.PushLifecycle(control.WillSuspend)
		}
	})
	return &Input{events: events}
}

// Poll samples the mouse and keys once per tick and queues the resulting
// events. It returns the window size, or nil while the window has no area.
func (in *Input) Poll(window *glfw.Window, button scene.ButtonLayout, dt float64) *control.WindowSize {
	w, h := window.GetSize()
	if w <= 0 || h <= 0 {
		return nil
	}
	size := &control.WindowSize{Width: float64(w), Height: float64(h)}

	cx, cy := window.GetCursorPos()
	pos := mgl64.Vec2{cx, cy}
	down := window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press

	switch {
	case down && !in.mouseDown:
		in.events.PushTouch(control.TouchEvent{Phase: control.TouchStarted, Position: pos, ID: mouseTouchID})
	case down && pos != in.lastPos:
		in.events.PushTouch(control.TouchEvent{Phase: control.TouchMoved, Position: pos, ID: mouseTouchID})
	case !down && in.mouseDown:
		in.events.PushTouch(control.TouchEvent{Phase: control.TouchEnded, Position: pos, ID: mouseTouchID})
	}
	in.mouseDown = down
	in.lastPos = pos

	if window.GetKey(glfw.KeyQ) == glfw.Press {
		in.events.PushRotation(control.RotationGesture{Delta: KeyRotationRate * dt})
	}
	if window.GetKey(glfw.KeyE) == glfw.Press {
		in.events.PushRotation(control.RotationGesture{Delta: -KeyRotationRate * dt})
	}

	state := control.InteractionNone
	if button.Contains(size.Width, size.Height, pos) {
		state = control.InteractionHovered
		if down {
			state = control.InteractionPressed
		}
	}
	in.events.SetInteraction(state)

	return size
}
