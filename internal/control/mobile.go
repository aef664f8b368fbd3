package control

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/touch"
)

// FromMobileTouch converts an x/mobile touch event. x/mobile has no cancel
// phase; a lost contact arrives as TypeEnd.
func FromMobileTouch(e touch.Event) TouchEvent {
	phase := TouchMoved
	switch e.Type {
	case touch.TypeBegin:
		phase = TouchStarted
	case touch.TypeEnd:
		phase = TouchEnded
	}
	return TouchEvent{
		Phase:    phase,
		Position: mgl64.Vec2{float64(e.X), float64(e.Y)},
		ID:       uint64(e.Sequence),
	}
}

// FromMobileLifecycle maps an x/mobile stage change onto the transitions it
// implies, in the order they happen. Losing focus precedes suspension and
// becoming visible precedes running.
func FromMobileLifecycle(e lifecycle.Event) []AppLifecycle {
	var out []AppLifecycle
	if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff {
		out = append(out, WillSuspend)
	}
	if e.Crosses(lifecycle.StageVisible) == lifecycle.CrossOff {
		out = append(out, Suspended)
	}
	if e.Crosses(lifecycle.StageVisible) == lifecycle.CrossOn {
		out = append(out, WillResume)
	}
	if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOn {
		out = append(out, Running)
	}
	if e.To == lifecycle.StageDead {
		out = append(out, Idle)
	}
	return out
}

// RotationTracker synthesizes rotation gestures from the first two active
// touch contacts, since x/mobile does not recognize them itself.
type RotationTracker struct {
	contacts map[uint64]mgl64.Vec2
	order    []uint64

	angle    float64
	tracking bool
}

func NewRotationTracker() *RotationTracker {
	return &RotationTracker{contacts: make(map[uint64]mgl64.Vec2)}
}

// Observe feeds one touch event. It reports a gesture when the two tracked
// contacts turned since the previous sample.
func (r *RotationTracker) Observe(e TouchEvent) (RotationGesture, bool) {
	switch e.Phase {
	case TouchStarted:
		if _, ok := r.contacts[e.ID]; !ok {
			r.order = append(r.order, e.ID)
		}
		r.contacts[e.ID] = e.Position
		r.tracking = false
	case TouchMoved:
		if _, ok := r.contacts[e.ID]; !ok {
			return RotationGesture{}, false
		}
		r.contacts[e.ID] = e.Position
	case TouchEnded, TouchCanceled:
		r.remove(e.ID)
		r.tracking = false
		return RotationGesture{}, false
	}

	if len(r.order) < 2 {
		r.tracking = false
		return RotationGesture{}, false
	}
	a := r.contacts[r.order[0]]
	b := r.contacts[r.order[1]]
	// Screen Y grows downwards; flip it so positive angles turn counter-clockwise.
	angle := math.Atan2(-(b.Y() - a.Y()), b.X()-a.X())

	prev, was := r.angle, r.tracking
	r.angle = angle
	r.tracking = true
	if !was {
		return RotationGesture{}, false
	}
	d := angDiff(prev, angle)
	if d == 0 {
		return RotationGesture{}, false
	}
	return RotationGesture{Delta: d}, true
}

func (r *RotationTracker) Active() int { return len(r.order) }

func (r *RotationTracker) remove(id uint64) {
	if _, ok := r.contacts[id]; !ok {
		return
	}
	delete(r.contacts, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}
