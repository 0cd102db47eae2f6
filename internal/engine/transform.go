package engine

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Transform holds the local position, orientation and scale of a GameObject.
// Rotation is Euler angles in radians, applied intrinsically X then Y then Z.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in radians
	Scale    rl.Vector3
}

// Matrix composes the world matrix T * Rz * Ry * Rx * S.
func (t Transform) Matrix() rl.Matrix {
	return Compose(t.Position, t.Rotation, t.Scale)
}

// Compose builds a world matrix from position, Euler rotation (radians) and
// scale. Scale is applied first, then rotation X, Y, Z, then translation.
// The same matrix convention is used by rendering, picking and physics;
// they must never diverge.
func Compose(position, rotation, scale rl.Vector3) rl.Matrix {
	scaleM := rl.MatrixScale(scale.X, scale.Y, scale.Z)

	rotX := rl.MatrixRotateX(rotation.X)
	rotY := rl.MatrixRotateY(rotation.Y)
	rotZ := rl.MatrixRotateZ(rotation.Z)
	rotM := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	transM := rl.MatrixTranslate(position.X, position.Y, position.Z)

	return rl.MatrixMultiply(rl.MatrixMultiply(scaleM, rotM), transM)
}

// Decompose recovers position, Euler rotation (radians) and scale from a
// matrix built by Compose. Scale components come back as positive magnitudes.
//
// Euler decomposition is ambiguous near +-90 degrees of pitch (rotation.Y):
// several angle triples produce the same matrix there. This picks the
// asin branch, pitch in [-pi/2, pi/2], and makes no round-trip promise in
// the singular region.
func Decompose(m rl.Matrix) (position, rotation, scale rl.Vector3) {
	position = rl.Vector3{X: m.M12, Y: m.M13, Z: m.M14}

	sx := math32.Sqrt(m.M0*m.M0 + m.M1*m.M1 + m.M2*m.M2)
	sy := math32.Sqrt(m.M4*m.M4 + m.M5*m.M5 + m.M6*m.M6)
	sz := math32.Sqrt(m.M8*m.M8 + m.M9*m.M9 + m.M10*m.M10)
	scale = rl.Vector3{X: sx, Y: sy, Z: sz}

	if sx < 1e-8 || sy < 1e-8 || sz < 1e-8 {
		// Degenerate scale, no orientation to recover.
		return position, rl.Vector3{}, scale
	}

	// Normalized columns form the rotation matrix Rz*Ry*Rx.
	r20 := m.M2 / sx
	r21 := m.M6 / sy
	r22 := m.M10 / sz
	r00 := m.M0 / sx
	r10 := m.M1 / sx
	r01 := m.M4 / sy
	r11 := m.M5 / sy

	pitch := -math32.Asin(clamp1(r20))
	if math32.Abs(r20) > 0.999999 {
		// Gimbal lock: roll and yaw share an axis, fold everything into yaw.
		rotation = rl.Vector3{
			X: 0,
			Y: pitch,
			Z: math32.Atan2(-r01, r11),
		}
		return position, rotation, scale
	}

	rotation = rl.Vector3{
		X: math32.Atan2(r21, r22),
		Y: pitch,
		Z: math32.Atan2(r10, r00),
	}
	return position, rotation, scale
}

func clamp1(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
