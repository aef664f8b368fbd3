package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	playing bool
	calls   []string
}

func (s *fakeSink) Play() {
	s.playing = true
	s.calls = append(s.calls, "play")
}

func (s *fakeSink) Pause() {
	s.playing = false
	s.calls = append(s.calls, "pause")
}

func TestHandleLifecycle(t *testing.T) {
	t.Run("Mapping", func(t *testing.T) {
		cases := []struct {
			event AppLifecycle
			calls []string
		}{
			{Idle, nil},
			{WillSuspend, nil},
			{WillResume, nil},
			{Suspended, []string{"pause"}},
			{Running, []string{"play"}},
		}
		for _, tc := range cases {
			t.Run(tc.event.String(), func(t *testing.T) {
				sink := &fakeSink{}
				HandleLifecycle([]AppLifecycle{tc.event}, sink)
				assert.Equal(t, tc.calls, sink.calls)
			})
		}
	})

	t.Run("Last write wins", func(t *testing.T) {
		sink := &fakeSink{}
		HandleLifecycle([]AppLifecycle{Suspended, Running}, sink)
		assert.True(t, sink.playing)

		HandleLifecycle([]AppLifecycle{Running, Suspended}, sink)
		assert.False(t, sink.playing)
		assert.Equal(t, []string{"pause", "play", "play", "pause"}, sink.calls)
	})

	t.Run("Full suspend and resume cycle", func(t *testing.T) {
		sink := &fakeSink{playing: true}
		HandleLifecycle([]AppLifecycle{WillSuspend, Suspended}, sink)
		require.False(t, sink.playing)
		HandleLifecycle([]AppLifecycle{WillResume, Running}, sink)
		assert.True(t, sink.playing)
	})

	t.Run("Suspended is idempotent across ticks", func(t *testing.T) {
		once := &fakeSink{playing: true}
		HandleLifecycle([]AppLifecycle{Suspended}, once)

		twice := &fakeSink{playing: true}
		HandleLifecycle([]AppLifecycle{Suspended}, twice)
		HandleLifecycle([]AppLifecycle{Suspended}, twice)

		assert.Equal(t, once.playing, twice.playing)
		assert.False(t, twice.playing)
	})

	t.Run("Nil sink skips the pass", func(t *testing.T) {
		require.NotPanics(t, func() {
			HandleLifecycle([]AppLifecycle{Suspended, Running}, nil)
		})
	})

	t.Run("Empty tick does nothing", func(t *testing.T) {
		sink := &fakeSink{playing: true}
		HandleLifecycle(nil, sink)
		assert.Empty(t, sink.calls)
		assert.True(t, sink.playing)
	})
}

func TestAppLifecycle_String(t *testing.T) {
	assert.Equal(t, "suspended", Suspended.String())
	assert.Equal(t, "AppLifecycle(42)", AppLifecycle(42).String())
}
