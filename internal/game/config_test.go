package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orbitdemo/internal/control"
)

func TestDrawable(t *testing.T) {
	win := &control.WindowSize{Width: 800, Height: 600}

	assert.True(t, drawable(win, 1600, 1200))
	assert.False(t, drawable(nil, 1600, 1200), "minimised window")
	assert.False(t, drawable(&control.WindowSize{}, 1600, 1200))
	assert.False(t, drawable(win, 0, 1200))
	assert.False(t, drawable(win, 1600, 0))
}
