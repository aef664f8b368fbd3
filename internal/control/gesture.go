package control

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultDragScale is the world distance covered by a drag across the full window.
	DefaultDragScale = 5.0
	// DefaultRotationDamping divides every rotation gesture delta.
	DefaultRotationDamping = 10.0
)

type TouchPhase int

const (
	TouchStarted TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCanceled
)

func (p TouchPhase) String() string {
	switch p {
	case TouchStarted:
		return "started"
	case TouchMoved:
		return "moved"
	case TouchEnded:
		return "ended"
	case TouchCanceled:
		return "canceled"
	}
	return fmt.Sprintf("TouchPhase(%d)", int(p))
}

// TouchEvent is one sample of a touch contact in window pixels, origin top-left.
type TouchEvent struct {
	Phase    TouchPhase
	Position mgl64.Vec2
	ID       uint64
}

// RotationGesture is a two-finger rotation in radians since the previous
// sample. Positive is counter-clockwise on screen.
type RotationGesture struct {
	Delta float64
}

type WindowSize struct {
	Width, Height float64
}

func (w *WindowSize) usable() bool {
	return w != nil && w.Width > 0 && w.Height > 0
}

// GestureState is the memory the interpreter carries between ticks.
type GestureState struct {
	// LastPosition is nil until a touch has been seen since the latest Started.
	LastPosition *mgl64.Vec2
}

// Reset forgets the drag baseline.
func (s *GestureState) Reset() { s.LastPosition = nil }

// GestureInterpreter turns touch drags into camera translation around the
// origin and rotation gestures into camera roll.
type GestureInterpreter struct {
	DragScale       float64
	RotationDamping float64
}

func NewGestureInterpreter() GestureInterpreter {
	return GestureInterpreter{
		DragScale:       DefaultDragScale,
		RotationDamping: DefaultRotationDamping,
	}
}

// Update runs one tick. Touches are applied first, in order, then rotations
// are applied against the forward axis left by the touch pass. A missing or
// zero-sized window makes the whole tick a no-op.
func (g GestureInterpreter) Update(window *WindowSize, cam *Transform, state *GestureState, touches []TouchEvent, rotations []RotationGesture) {
	if !window.usable() || cam == nil || state == nil {
		return
	}

	for _, t := range touches {
		if t.Phase == TouchStarted {
			state.Reset()
		}
		if prev := state.LastPosition; prev != nil {
			g.drag(window, cam, *prev, t.Position)
		}
		pos := t.Position
		state.LastPosition = &pos
	}

	damping := g.RotationDamping
	if damping == 0 {
		damping = DefaultRotationDamping
	}
	for _, r := range rotations {
		cam.RotateAxis(cam.Forward(), r.Delta/damping)
	}
}

// drag moves the camera in the XZ plane and re-aims it at the origin.
// Degenerate aims drop the move.
func (g GestureInterpreter) drag(window *WindowSize, cam *Transform, prev, cur mgl64.Vec2) {
	dx := (cur.X() - prev.X()) / window.Width
	dy := (cur.Y() - prev.Y()) / window.Height

	next := NewTransform(
		cam.Translation.X()+dx*g.DragScale,
		cam.Translation.Y(),
		cam.Translation.Z()+dy*g.DragScale,
	)
	if aimed, ok := next.LookingAt(Origin, WorldUp); ok {
		*cam = aimed
	}
}
