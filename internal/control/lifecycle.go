package control

import "fmt"

// AppLifecycle is an OS-reported transition of the app's foreground state.
type AppLifecycle int

const (
	Idle AppLifecycle = iota
	WillSuspend
	Suspended
	WillResume
	Running
)

func (l AppLifecycle) String() string {
	switch l {
	case Idle:
		return "idle"
	case WillSuspend:
		return "will-suspend"
	case Suspended:
		return "suspended"
	case WillResume:
		return "will-resume"
	case Running:
		return "running"
	}
	return fmt.Sprintf("AppLifecycle(%d)", int(l))
}

// AudioSink is the music handle the reactor drives. Both calls are idempotent.
type AudioSink interface {
	Play()
	Pause()
}

// HandleLifecycle pauses on Suspended and plays on Running, in arrival
// order. Nothing happens while the sink is nil.
func HandleLifecycle(events []AppLifecycle, sink AudioSink) {
	if sink == nil {
		return
	}
	for _, e := range events {
		switch e {
		case Suspended:
			sink.Pause()
		case Running:
			sink.Play()
		case Idle, WillSuspend, WillResume:
		}
	}
}
