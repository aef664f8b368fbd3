package control

import "github.com/go-gl/mathgl/mgl64"

// lookEpsilon is the smallest squared length accepted for a look-at axis.
const lookEpsilon = 1e-12

var (
	WorldUp = mgl64.Vec3{0, 1, 0}
	Origin  = mgl64.Vec3{0, 0, 0}
)

// Transform is the camera pose in world space. Local -Z is forward, +Y is up.
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
}

func NewTransform(x, y, z float64) Transform {
	return Transform{
		Translation: mgl64.Vec3{x, y, z},
		Rotation:    mgl64.QuatIdent(),
	}
}

// LookingAt returns t re-oriented so forward points at target with the given
// up hint. When the view direction is zero-length or parallel to up the
// original transform is returned with ok == false.
func (t Transform) LookingAt(target, up mgl64.Vec3) (Transform, bool) {
	back := t.Translation.Sub(target)
	if !(back.Dot(back) > lookEpsilon) {
		return t, false
	}
	back = back.Normalize()
	right := up.Cross(back)
	if !(right.Dot(right) > lookEpsilon) {
		return t, false
	}
	right = right.Normalize()
	realUp := back.Cross(right)

	basis := mgl64.Mat3FromCols(right, realUp, back)
	t.Rotation = mgl64.Mat4ToQuat(basis.Mat4()).Normalize()
	return t, true
}

func (t Transform) Forward() mgl64.Vec3 { return t.Rotation.Rotate(mgl64.Vec3{0, 0, -1}) }
func (t Transform) Up() mgl64.Vec3      { return t.Rotation.Rotate(mgl64.Vec3{0, 1, 0}) }
func (t Transform) Right() mgl64.Vec3   { return t.Rotation.Rotate(mgl64.Vec3{1, 0, 0}) }

// RotateAxis rotates the transform in place about a world-space axis through
// its own translation. A zero axis leaves it unchanged.
func (t *Transform) RotateAxis(axis mgl64.Vec3, angle float64) {
	if !(axis.Dot(axis) > lookEpsilon) {
		return
	}
	q := mgl64.QuatRotate(angle, axis.Normalize())
	t.Rotation = q.Mul(t.Rotation).Normalize()
}

// View returns the world-to-camera matrix.
func (t Transform) View() mgl64.Mat4 {
	p := t.Translation
	return t.Rotation.Inverse().Mat4().Mul4(mgl64.Translate3D(-p.X(), -p.Y(), -p.Z()))
}
