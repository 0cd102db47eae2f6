package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrientedBoxXZ is a yaw-rotated rectangle footprint. Pitch and roll are
// ignored; for footprint queries only the rotation about Y matters, the
// other axes are covered by the coarse radius/AABB approximations.
type OrientedBoxXZ struct {
	Center   rl.Vector3
	HalfSize rl.Vector3 // unrotated half extents
	Yaw      float32    // radians
}

// NewOrientedBoxXZ builds the footprint box from a bounding representation.
func NewOrientedBoxXZ(b Bounds) OrientedBoxXZ {
	return OrientedBoxXZ{
		Center:   b.Center,
		HalfSize: b.HalfExtents,
		Yaw:      b.Rotation.Y,
	}
}

// ContainsXZ reports whether the point, expanded by radius, falls inside the
// box footprint. The point is inverse-rotated into the box's local frame so
// the comparison is a plain extent check.
func (o OrientedBoxXZ) ContainsXZ(p rl.Vector3, radius float32) bool {
	dx := p.X - o.Center.X
	dz := p.Z - o.Center.Z

	c := math32.Cos(o.Yaw)
	s := math32.Sin(o.Yaw)
	localX := dx*c - dz*s
	localZ := dx*s + dz*c

	return absf(localX) <= o.HalfSize.X+radius && absf(localZ) <= o.HalfSize.Z+radius
}
