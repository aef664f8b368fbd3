package game

import "orbitdemo/internal/control"

// Window defaults.
const (
	WindowTitle = "Orbit Demo"
)

// IdleWait is how long the desktop loop blocks on window events, in
// seconds, while there is nothing to draw.
const IdleWait = 0.1

// KeyRotationRate is the rotation gesture, in radians per second, emitted
// while Q or E is held on desktop. It is divided by the rotation damping
// like any other gesture.
const KeyRotationRate = 10.0

// Lighting.
const (
	// LightPowerScale maps the scene's point light intensity onto the
	// shader's inverse-square falloff.
	LightPowerScale = 1.25e-3
	AmbientLight    = 0.15
)

// Clear colour (sky).
const (
	ClearR = 0.08
	ClearG = 0.09
	ClearB = 0.12
)

// Audio.
const (
	// BitDepth selects 32-bit float samples (oto.FormatFloat32LE).
	BitDepth = 0
)

// drawable reports whether a frame can be rendered for the window and
// framebuffer sizes.
func drawable(size *control.WindowSize, fbW, fbH int) bool {
	return size != nil && size.Width > 0 && size.Height > 0 && fbW > 0 && fbH > 0
}
