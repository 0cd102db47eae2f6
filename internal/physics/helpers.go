package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// cross computes the cross product of two vectors
func cross(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// clamp restricts a value to a range
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

// sanitize replaces non-finite components with the fallback. NaN must never
// reach a scene transform; it would corrupt rendering silently.
func sanitize(v rl.Vector3, fallback rl.Vector3) rl.Vector3 {
	if !finite(v.X) {
		v.X = fallback.X
	}
	if !finite(v.Y) {
		v.Y = fallback.Y
	}
	if !finite(v.Z) {
		v.Z = fallback.Z
	}
	return v
}

// horizontalLength returns the XZ-plane magnitude of v.
func horizontalLength(v rl.Vector3) float32 {
	return math32.Sqrt(v.X*v.X + v.Z*v.Z)
}
