package control

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func requireVec3(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		require.InDeltaf(t, want[i], got[i], eps, "component %d: want %v got %v", i, want, got)
	}
}

func startCamera(t *testing.T) Transform {
	t.Helper()
	cam, ok := NewTransform(-2, 2.5, 5).LookingAt(Origin, WorldUp)
	require.True(t, ok)
	return cam
}

func touchAt(phase TouchPhase, x, y float64) TouchEvent {
	return TouchEvent{Phase: phase, Position: mgl64.Vec2{x, y}}
}

func TestGestureInterpreter_Drag(t *testing.T) {
	t.Run("Single drag scales by window and drag factor", func(t *testing.T) {
		g := NewGestureInterpreter()
		cam := startCamera(t)
		var state GestureState

		g.Update(&WindowSize{Width: 1000, Height: 1000}, &cam, &state, []TouchEvent{
			touchAt(TouchStarted, 100, 100),
			touchAt(TouchMoved, 200, 100),
		}, nil)

		requireVec3(t, mgl64.Vec3{-1.5, 2.5, 5}, cam.Translation)
		requireVec3(t, cam.Translation.Mul(-1).Normalize(), cam.Forward())
		require.NotNil(t, state.LastPosition)
		assert.Equal(t, mgl64.Vec2{200, 100}, *state.LastPosition)
	})

	t.Run("Vertical drag moves along Z and leaves Y", func(t *testing.T) {
		g := NewGestureInterpreter()
		cam := startCamera(t)
		var state GestureState

		g.Update(&WindowSize{Width: 800, Height: 400}, &cam, &state, []TouchEvent{
			touchAt(TouchStarted, 10, 100),
			touchAt(TouchMoved, 10, 140),
		}, nil)

		requireVec3(t, mgl64.Vec3{-2, 2.5, 5 + 40.0/400*5}, cam.Translation)
	})

	t.Run("Bare started does not move", func(t *testing.T) {
		g := NewGestureInterpreter()
		cam := startCamera(t)
		before := cam
		var state GestureState

		g.Update(&WindowSize{Width: 1000, Height: 1000}, &cam, &state, []TouchEvent{
			touchAt(TouchStarted, 300, 300),
		}, nil)

		assert.Equal(t, before, cam)
		require.NotNil(t, state.LastPosition)
		assert.Equal(t, mgl64.Vec2{300, 300}, *state.LastPosition)
	})

	t.Run("Started resets a stale baseline", func(t *testing.T) {
		g := NewGestureInterpreter()
		cam := startCamera(t)
		stale := mgl64.Vec2{0, 0}
		state := GestureState{LastPosition: &stale}

		g.Update(&WindowSize{Width: 1000, Height: 1000}, &cam, &state, []TouchEvent{
			touchAt(TouchStarted, 500, 500),
			touchAt(TouchMoved, 500, 500),
		}, nil)

		requireVec3(t, mgl64.Vec3{-2, 2.5, 5}, cam.Translation)
	})

	t.Run("Baseline persists across ticks", func(t *testing.T) {
		g := NewGestureInterpreter()
		cam := startCamera(t)
		var state GestureState
		win := &WindowSize{Width: 1000, Height: 1000}

		g.Update(win, &cam, &state, []TouchEvent{touchAt(TouchStarted, 100, 100)}, nil)
		g.Update(win, &cam, &state, []TouchEvent{touchAt(TouchMoved, 100, 300)}, nil)

		requireVec3(t, mgl64.Vec3{-2, 2.5, 6}, cam.Translation)
	})

	t.Run("Cumulative displacement is the sum of steps", func(t *testing.T) {
		g := NewGestureInterpreter()
		cam := startCamera(t)
		var state GestureState
		points := [][2]float64{{100, 100}, {150, 120}, {90, 200}, {400, 50}, {380, 60}}

		var touches []TouchEvent
		var wantX, wantZ float64
		for i, p := range points {
			phase := TouchMoved
			if i == 0 {
				phase = TouchStarted
			} else {
				wantX += (p[0] - points[i-1][0]) / 1000 * DefaultDragScale
				wantZ += (p[1] - points[i-1][1]) / 500 * DefaultDragScale
			}
			touches = append(touches, touchAt(phase, p[0], p[1]))
		}
		touches = append(touches, touchAt(TouchEnded, 380, 60))

		g.Update(&WindowSize{Width: 1000, Height: 500}, &cam, &state, touches, nil)

		requireVec3(t, mgl64.Vec3{-2 + wantX, 2.5, 5 + wantZ}, cam.Translation)
	})

	t.Run("Ended still records the baseline", func(t *testing.T) {
		g := NewGestureInterpreter()
		cam := startCamera(t)
		var state GestureState

		g.Update(&WindowSize{Width: 100, Height: 100}, &cam, &state, []TouchEvent{
			touchAt(TouchStarted, 10, 10),
			touchAt(TouchEnded, 20, 10),
		}, nil)

		require.NotNil(t, state.LastPosition)
		assert.Equal(t, mgl64.Vec2{20, 10}, *state.LastPosition)
		requireVec3(t, mgl64.Vec3{-1.5, 2.5, 5}, cam.Translation)
	})

	t.Run("Custom drag scale", func(t *testing.T) {
		g := GestureInterpreter{DragScale: 2, RotationDamping: DefaultRotationDamping}
		cam := startCamera(t)
		var state GestureState

		g.Update(&WindowSize{Width: 1000, Height: 1000}, &cam, &state, []TouchEvent{
			touchAt(TouchStarted, 0, 0),
			touchAt(TouchMoved, 500, 0),
		}, nil)

		requireVec3(t, mgl64.Vec3{-1, 2.5, 5}, cam.Translation)
	})
}

func TestGestureInterpreter_NoWindow(t *testing.T) {
	touches := []TouchEvent{
		touchAt(TouchStarted, 100, 100),
		touchAt(TouchMoved, 900, 700),
	}
	rotations := []RotationGesture{{Delta: 12}}

	for name, win := range map[string]*WindowSize{
		"Missing":    nil,
		"Zero width": {Width: 0, Height: 600},
		"Zero size":  {},
	} {
		t.Run(name, func(t *testing.T) {
			g := NewGestureInterpreter()
			cam := startCamera(t)
			before := cam
			var state GestureState

			g.Update(win, &cam, &state, touches, rotations)

			assert.Equal(t, before, cam)
			assert.Nil(t, state.LastPosition)
		})
	}
}

func TestGestureState_Reset(t *testing.T) {
	last := mgl64.Vec2{3, 4}
	state := GestureState{LastPosition: &last}

	state.Reset()

	assert.Nil(t, state.LastPosition)
}

func TestGestureInterpreter_Rotation(t *testing.T) {
	t.Run("Single rotation rolls about forward", func(t *testing.T) {
		g := NewGestureInterpreter()
		cam := startCamera(t)
		forward, up := cam.Forward(), cam.Up()
		var state GestureState

		g.Update(&WindowSize{Width: 1000, Height: 1000}, &cam, &state, nil, []RotationGesture{{Delta: 30}})

		requireVec3(t, forward, cam.Forward())
		requireVec3(t, mgl64.QuatRotate(3, forward).Rotate(up), cam.Up())
		requireVec3(t, mgl64.Vec3{-2, 2.5, 5}, cam.Translation)
	})

	t.Run("Rotations accumulate in one tick", func(t *testing.T) {
		g := NewGestureInterpreter()
		cam := startCamera(t)
		forward, up := cam.Forward(), cam.Up()
		var state GestureState

		g.Update(&WindowSize{Width: 1000, Height: 1000}, &cam, &state, nil, []RotationGesture{{Delta: 30}, {Delta: 30}})

		requireVec3(t, mgl64.QuatRotate(6, forward).Rotate(up), cam.Up())
	})

	t.Run("Rotation reads forward after the touch pass", func(t *testing.T) {
		g := NewGestureInterpreter()
		cam := startCamera(t)
		var state GestureState

		g.Update(&WindowSize{Width: 1000, Height: 1000}, &cam, &state, []TouchEvent{
			touchAt(TouchStarted, 100, 100),
			touchAt(TouchMoved, 600, 100),
		}, []RotationGesture{{Delta: math.Pi * 10}})

		aimed, ok := NewTransform(0.5, 2.5, 5).LookingAt(Origin, WorldUp)
		require.True(t, ok)
		requireVec3(t, aimed.Translation, cam.Translation)
		requireVec3(t, aimed.Forward(), cam.Forward())
		// Half a turn about forward flips up.
		requireVec3(t, aimed.Up().Mul(-1), cam.Up())
	})

	t.Run("Drag re-aims and clears roll", func(t *testing.T) {
		g := NewGestureInterpreter()
		cam := startCamera(t)
		var state GestureState
		win := &WindowSize{Width: 1000, Height: 1000}

		g.Update(win, &cam, &state, nil, []RotationGesture{{Delta: 10}})
		g.Update(win, &cam, &state, []TouchEvent{
			touchAt(TouchStarted, 0, 0),
			touchAt(TouchMoved, 0, 0),
		}, nil)

		assert.InDelta(t, 0, cam.Right().Y(), eps)
	})
}

func TestGestureInterpreter_Degenerate(t *testing.T) {
	t.Run("Drag onto the look target is dropped", func(t *testing.T) {
		g := NewGestureInterpreter()
		cam := NewTransform(0.5, 0, 0)
		before := cam
		var state GestureState

		g.Update(&WindowSize{Width: 1000, Height: 1000}, &cam, &state, []TouchEvent{
			touchAt(TouchStarted, 200, 0),
			touchAt(TouchMoved, 100, 0),
		}, nil)

		assert.Equal(t, before, cam)
		require.NotNil(t, state.LastPosition)
		assert.Equal(t, mgl64.Vec2{100, 0}, *state.LastPosition)
	})

	t.Run("Drag to straight above the target is dropped", func(t *testing.T) {
		g := NewGestureInterpreter()
		cam := NewTransform(0.5, 3, 0)
		before := cam
		var state GestureState

		g.Update(&WindowSize{Width: 1000, Height: 1000}, &cam, &state, []TouchEvent{
			touchAt(TouchStarted, 200, 0),
			touchAt(TouchMoved, 100, 0),
		}, nil)

		assert.Equal(t, before, cam)
		assert.False(t, math.IsNaN(cam.Rotation.W))
	})
}
