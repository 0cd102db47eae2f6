package physics

import (
	"forge3d/internal/components"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rotation below these magnitudes is treated as no rotation, so the cheap
// axis-aligned test runs instead of the oriented one.
const (
	boxRotationEpsilon      = 0.01 // radians
	cylinderRotationEpsilon = 0.1  // radians
)

// XZOverlap reports whether a circle footprint (center, radius) overlaps the
// given bounds in the ground plane. Dispatch is by shape:
//
//   - sphere/cylinder/capsule: circle-vs-circle distance test, except a
//     tilted cylinder which degrades to the oriented box path
//   - box, cone and mesh with noticeable rotation: point-in-oriented-rect
//     with the point expanded by radius
//   - everything else, including unknown shapes: expanded AABB test
func XZOverlap(center rl.Vector3, radius float32, b Bounds) bool {
	switch b.Shape {
	case components.ShapeSphere, components.ShapeCapsule:
		return circleOverlap(center, radius, b)

	case components.ShapeCylinder:
		// A cylinder lying on its side no longer has a circular footprint.
		if absf(b.Rotation.X) > cylinderRotationEpsilon || absf(b.Rotation.Z) > cylinderRotationEpsilon {
			return NewOrientedBoxXZ(b).ContainsXZ(center, radius)
		}
		return circleOverlap(center, radius, b)

	case components.ShapeBox, components.ShapeCone, components.ShapeMesh:
		if absf(b.Rotation.X) > boxRotationEpsilon ||
			absf(b.Rotation.Y) > boxRotationEpsilon ||
			absf(b.Rotation.Z) > boxRotationEpsilon {
			return NewOrientedBoxXZ(b).ContainsXZ(center, radius)
		}
		return b.Box.Expand(radius).ContainsXZ(center)

	default:
		return b.Box.Expand(radius).ContainsXZ(center)
	}
}

func circleOverlap(center rl.Vector3, radius float32, b Bounds) bool {
	dx := center.X - b.Center.X
	dz := center.Z - b.Center.Z
	dist := math32.Sqrt(dx*dx + dz*dz)
	return dist < radius+b.Radius
}
