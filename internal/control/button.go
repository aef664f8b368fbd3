package control

import "fmt"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Floats returns the colour as 0..1 components for GL uniforms.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

var Palette = struct {
	Blue  RGB
	Gray  RGB
	White RGB
	Black RGB
}{
	Blue:  RGB{R: 0, G: 0, B: 255},
	Gray:  RGB{R: 128, G: 128, B: 128},
	White: RGB{R: 255, G: 255, B: 255},
	Black: RGB{R: 0, G: 0, B: 0},
}

type Interaction int

const (
	InteractionNone Interaction = iota
	InteractionHovered
	InteractionPressed
)

func (i Interaction) String() string {
	switch i {
	case InteractionNone:
		return "none"
	case InteractionHovered:
		return "hovered"
	case InteractionPressed:
		return "pressed"
	}
	return fmt.Sprintf("Interaction(%d)", int(i))
}

// Color returns the background colour shown for the interaction state.
func (i Interaction) Color() RGB {
	switch i {
	case InteractionPressed:
		return Palette.Blue
	case InteractionHovered:
		return Palette.Gray
	default:
		return Palette.White
	}
}

// Button is the single on-screen button. Color only follows Interaction
// when StyleButton runs after a change.
type Button struct {
	Label       string
	Interaction Interaction
	Color       RGB

	changed bool
}

func NewButton(label string) Button {
	return Button{Label: label, Color: Palette.White}
}

// SetInteraction records a new state; repeating the current state is not a change.
func (b *Button) SetInteraction(i Interaction) {
	if b.Interaction == i {
		return
	}
	b.Interaction = i
	b.changed = true
}

func (b *Button) Changed() bool { return b.changed }

// StyleButton recolours b if its interaction changed since the last call.
func StyleButton(b *Button) {
	if b == nil || !b.changed {
		return
	}
	b.Color = b.Interaction.Color()
	b.changed = false
}
