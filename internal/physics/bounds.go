package physics

import (
	"forge3d/internal/components"
	"forge3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bounds is the world-space bounding representation of one object: the AABB
// of its fully transformed vertices plus shape-specific extras. Radius and
// half extents come from the untransformed extents scaled by the transform's
// scale; rotation deliberately does not affect them (coarse approximation,
// the AABB covers the rotated mesh).
type Bounds struct {
	Shape       components.PhysicsShape
	Box         AABB
	Center      rl.Vector3
	Radius      float32    // horizontal radius approximation
	HalfHeight  float32    // vertical half extent before rotation
	HalfExtents rl.Vector3 // scaled local half extents, unrotated
	Rotation    rl.Vector3 // Euler radians, for oriented footprint tests
}

// ComputeBounds derives Bounds from the object's current transform and
// geometry. Pure; calling it twice on an unchanged object yields identical
// results.
func ComputeBounds(obj *engine.GameObject) Bounds {
	shape := components.ShapeBox
	if rb := engine.GetComponent[*components.Rigidbody](obj); rb != nil {
		shape = rb.Shape
	}

	b := Bounds{
		Shape:    shape,
		Center:   obj.WorldPosition(),
		Rotation: obj.WorldRotation(),
	}

	scale := obj.WorldScale()

	// Without geometry the object is a unit cube: scale is its full size,
	// matching the AABB fallback below.
	localMin := rl.Vector3{X: -0.5, Y: -0.5, Z: -0.5}
	localMax := rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}

	mr := engine.GetComponent[*components.MeshRenderer](obj)
	if mr != nil && mr.Geometry != nil && len(mr.Geometry.Vertices) > 0 {
		localMin, localMax = mr.Geometry.LocalExtents()

		world := obj.WorldMatrix()
		first := rl.Vector3Transform(mr.Geometry.Vertices[0], world)
		b.Box = AABB{Min: first, Max: first}
		for _, v := range mr.Geometry.Vertices[1:] {
			p := rl.Vector3Transform(v, world)
			if p.X < b.Box.Min.X {
				b.Box.Min.X = p.X
			}
			if p.Y < b.Box.Min.Y {
				b.Box.Min.Y = p.Y
			}
			if p.Z < b.Box.Min.Z {
				b.Box.Min.Z = p.Z
			}
			if p.X > b.Box.Max.X {
				b.Box.Max.X = p.X
			}
			if p.Y > b.Box.Max.Y {
				b.Box.Max.Y = p.Y
			}
			if p.Z > b.Box.Max.Z {
				b.Box.Max.Z = p.Z
			}
		}
	} else {
		// No geometry: unit cube footprint scaled by the transform.
		size := rl.Vector3{X: absf(scale.X), Y: absf(scale.Y), Z: absf(scale.Z)}
		b.Box = NewAABBFromCenter(b.Center, size)
	}

	ex := (localMax.X - localMin.X) * absf(scale.X) / 2
	ey := (localMax.Y - localMin.Y) * absf(scale.Y) / 2
	ez := (localMax.Z - localMin.Z) * absf(scale.Z) / 2
	b.HalfExtents = rl.Vector3{X: ex, Y: ey, Z: ez}
	b.HalfHeight = ey

	switch shape {
	case components.ShapeSphere:
		b.Radius = maxf(ex, maxf(ey, ez))
	case components.ShapeCylinder, components.ShapeCapsule:
		b.Radius = maxf(ex, ez)
	default:
		b.Radius = maxf(ex, ez)
	}

	return b
}

// BottomY returns the lowest point of the shape, used for ground contact.
// Mesh and terrain shapes use the transformed AABB; the analytic shapes use
// their unrotated approximations.
func (b Bounds) BottomY() float32 {
	switch b.Shape {
	case components.ShapeSphere:
		return b.Center.Y - b.Radius
	case components.ShapeBox, components.ShapeCone, components.ShapeCylinder, components.ShapeCapsule:
		return b.Center.Y - b.HalfHeight
	default:
		return b.Box.Min.Y
	}
}

// TopY mirrors BottomY for the upper surface.
func (b Bounds) TopY() float32 {
	switch b.Shape {
	case components.ShapeSphere:
		return b.Center.Y + b.Radius
	case components.ShapeBox, components.ShapeCone, components.ShapeCylinder, components.ShapeCapsule:
		return b.Center.Y + b.HalfHeight
	default:
		return b.Box.Max.Y
	}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
