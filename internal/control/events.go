package control

// Frame is everything the systems consume during one tick.
type Frame struct {
	// Window is nil when there is no primary window this tick.
	Window      *WindowSize
	Touches     []TouchEvent
	Rotations   []RotationGesture
	Lifecycle   []AppLifecycle
	Interaction *Interaction
}

// Events queues platform input between ticks. Callbacks push into it and the
// loop drains it once per tick, so every system sees a fixed ordered list.
type Events struct {
	touches     []TouchEvent
	rotations   []RotationGesture
	lifecycle   []AppLifecycle
	interaction *Interaction
}

func NewEvents() *Events {
	return &Events{}
}

func (q *Events) PushTouch(e TouchEvent)          { q.touches = append(q.touches, e) }
func (q *Events) PushRotation(e RotationGesture)  { q.rotations = append(q.rotations, e) }
func (q *Events) PushLifecycle(e ...AppLifecycle) { q.lifecycle = append(q.lifecycle, e...) }

// SetInteraction records the button state seen most recently; only the last
// value before a drain is kept.
func (q *Events) SetInteraction(i Interaction) {
	q.interaction = &i
}

func (q *Events) Len() int {
	return len(q.touches) + len(q.rotations) + len(q.lifecycle)
}

// Drain hands the queued events to a Frame and empties the queue.
func (q *Events) Drain(window *WindowSize) Frame {
	f := Frame{
		Window:      window,
		Touches:     q.touches,
		Rotations:   q.rotations,
		Lifecycle:   q.lifecycle,
		Interaction: q.interaction,
	}
	q.touches = nil
	q.rotations = nil
	q.lifecycle = nil
	q.interaction = nil
	return f
}
