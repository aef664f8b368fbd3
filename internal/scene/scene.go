package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"orbitdemo/internal/control"
)

type MeshKind int

const (
	MeshPlane MeshKind = iota
	MeshCube
	MeshSphere
)

// Object is one static mesh instance.
type Object struct {
	Mesh     MeshKind
	Position mgl64.Vec3
	Color    [3]float32
}

// Model returns the object's world matrix. Objects are never rotated.
func (o Object) Model() mgl64.Mat4 {
	return mgl64.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z())
}

type PointLight struct {
	Position  mgl64.Vec3
	Intensity float64
}

// ButtonLayout anchors the button to the window edges in pixels.
type ButtonLayout struct {
	Left, Right, Bottom float64
	Height              float64
	Label               string
	FontSize            float64
}

// Rect returns the button rectangle in window pixels, origin top-left.
// ok is false when the window is too small to hold it.
func (b ButtonLayout) Rect(winW, winH float64) (x0, y0, x1, y1 float64, ok bool) {
	x0 = b.Left
	x1 = winW - b.Right
	y1 = winH - b.Bottom
	y0 = y1 - b.Height
	if x1 <= x0 || y0 < 0 {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1, y1, true
}

// Contains reports whether a window pixel lies inside the button.
func (b ButtonLayout) Contains(winW, winH float64, p mgl64.Vec2) bool {
	x0, y0, x1, y1, ok := b.Rect(winW, winH)
	if !ok {
		return false
	}
	return p.X() >= x0 && p.X() <= x1 && p.Y() >= y0 && p.Y() <= y1
}

// NDC returns the button rectangle in GL normalized device coordinates.
func (b ButtonLayout) NDC(winW, winH float64) (x0, y0, x1, y1 float32, ok bool) {
	px0, py0, px1, py1, ok := b.Rect(winW, winH)
	if !ok {
		return 0, 0, 0, 0, false
	}
	toX := func(x float64) float32 { return float32(x/winW*2 - 1) }
	toY := func(y float64) float32 { return float32(1 - y/winH*2) }
	return toX(px0), toY(py1), toX(px1), toY(py0), true
}

type Scene struct {
	Objects []Object
	Light   PointLight
	Camera  control.Transform
	Button  ButtonLayout
}

// Default is the demo scene: a ground plane, a cube at the origin, a sphere
// off to the side, one point light and a camera aimed at the origin.
func Default() Scene {
	cam, _ := control.NewTransform(-2.0, 2.5, 5.0).LookingAt(control.Origin, control.WorldUp)
	return Scene{
		Objects: []Object{
			{Mesh: MeshPlane, Position: mgl64.Vec3{0, 0, 0}, Color: [3]float32{0.1, 0.2, 0.1}},
			{Mesh: MeshCube, Position: mgl64.Vec3{0, 0.5, 0}, Color: [3]float32{0.5, 0.4, 0.3}},
			{Mesh: MeshSphere, Position: mgl64.Vec3{1.5, 1.5, 1.5}, Color: [3]float32{0.1, 0.4, 0.8}},
		},
		Light: PointLight{
			Position:  mgl64.Vec3{4.0, 8.0, 4.0},
			Intensity: 1_000_000.0,
		},
		Camera: cam,
		Button: ButtonLayout{
			Left:     50,
			Right:    50,
			Bottom:   50,
			Height:   60,
			Label:    "Test Button",
			FontSize: 30,
		},
	}
}

// Projection is the perspective used for the 3D pass.
func Projection(winW, winH float64) mgl64.Mat4 {
	aspect := 1.0
	if winW > 0 && winH > 0 {
		aspect = winW / winH
	}
	return mgl64.Perspective(math.Pi/4, aspect, 0.1, 100)
}

// ToF32 converts a matrix for upload as a GL uniform.
func ToF32(m mgl64.Mat4) [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}
