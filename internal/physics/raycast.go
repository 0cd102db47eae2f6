package physics

import (
	"forge3d/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Ray is a world-space ray with a normalized direction.
type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3
}

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

const planeDenomEpsilon = 1e-6

// RayPlane intersects the ray with the plane through planePoint with the
// given normal. Returns false when the ray is parallel (|denom| below
// epsilon) or the intersection lies behind the origin.
func RayPlane(ray Ray, planePoint, planeNormal rl.Vector3) (rl.Vector3, bool) {
	denom := rl.Vector3DotProduct(ray.Direction, planeNormal)
	if absf(denom) < planeDenomEpsilon {
		return rl.Vector3{}, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(planePoint, ray.Origin), planeNormal) / denom
	if t < 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(ray.Origin, rl.Vector3Scale(ray.Direction, t)), true
}

// RayTriangle runs the Moller-Trumbore intersection test. Returns the
// distance along the ray, or false when the ray misses or the triangle is
// degenerate.
func RayTriangle(ray Ray, v0, v1, v2 rl.Vector3) (float32, bool) {
	edge1 := rl.Vector3Subtract(v1, v0)
	edge2 := rl.Vector3Subtract(v2, v0)

	h := cross(ray.Direction, edge2)
	a := rl.Vector3DotProduct(edge1, h)
	if absf(a) < 1e-7 {
		return 0, false // parallel or degenerate
	}

	f := 1 / a
	s := rl.Vector3Subtract(ray.Origin, v0)
	u := f * rl.Vector3DotProduct(s, h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := cross(s, edge1)
	v := f * rl.Vector3DotProduct(ray.Direction, q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := f * rl.Vector3DotProduct(edge2, q)
	if t < 1e-6 {
		return 0, false
	}
	return t, true
}

// RayAABB runs the slab test against an axis-aligned box. Returns the hit
// with a face normal, or false.
func RayAABB(ray Ray, box AABB, maxDistance float32) (RaycastHit, bool) {
	origin := ray.Origin
	direction := ray.Direction
	min := box.Min
	max := box.Max

	var tmin, tmax float32

	// X slab
	if direction.X != 0 {
		t1 := (min.X - origin.X) / direction.X
		t2 := (max.X - origin.X) / direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X < min.X || origin.X > max.X {
		return RaycastHit{}, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Y slab
	if direction.Y != 0 {
		t1 := (min.Y - origin.Y) / direction.Y
		t2 := (max.Y - origin.Y) / direction.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Y < min.Y || origin.Y > max.Y {
		return RaycastHit{}, false
	}

	if tmin > tmax {
		return RaycastHit{}, false
	}

	// Z slab
	if direction.Z != 0 {
		t1 := (min.Z - origin.Z) / direction.Z
		t2 := (max.Z - origin.Z) / direction.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Z < min.Z || origin.Z > max.Z {
		return RaycastHit{}, false
	}

	if tmin > tmax || tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Face normal from whichever slab the hit point sits on
	var normal rl.Vector3
	epsilon := float32(0.001)
	if absf(point.X-min.X) < epsilon {
		normal = rl.Vector3{X: -1}
	} else if absf(point.X-max.X) < epsilon {
		normal = rl.Vector3{X: 1}
	} else if absf(point.Y-min.Y) < epsilon {
		normal = rl.Vector3{Y: -1}
	} else if absf(point.Y-max.Y) < epsilon {
		normal = rl.Vector3{Y: 1}
	} else if absf(point.Z-min.Z) < epsilon {
		normal = rl.Vector3{Z: -1}
	} else {
		normal = rl.Vector3{Z: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

// RaySphere intersects the ray with a sphere.
func RaySphere(ray Ray, center rl.Vector3, radius, maxDistance float32) (RaycastHit, bool) {
	oc := rl.Vector3Subtract(ray.Origin, center)
	a := rl.Vector3DotProduct(ray.Direction, ray.Direction)
	b := 2.0 * rl.Vector3DotProduct(oc, ray.Direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return RaycastHit{}, false
	}

	sq := math32.Sqrt(discriminant)
	t := (-b - sq) / (2 * a)
	if t < 0 {
		t = (-b + sq) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(ray.Origin, rl.Vector3Scale(ray.Direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

// ClosestPointBetweenRays returns the parameters along each ray at the
// closest approach and the distance between those points. Used for picking
// thin gizmo handles.
func ClosestPointBetweenRays(aOrigin, aDir, bOrigin, bDir rl.Vector3) (t1, t2, dist float32) {
	w0 := rl.Vector3Subtract(aOrigin, bOrigin)

	a := rl.Vector3DotProduct(aDir, aDir)
	b := rl.Vector3DotProduct(aDir, bDir)
	c := rl.Vector3DotProduct(bDir, bDir)
	d := rl.Vector3DotProduct(aDir, w0)
	e := rl.Vector3DotProduct(bDir, w0)

	denom := a*c - b*b
	if absf(denom) < 1e-6 {
		// Near-parallel rays, fall back to projecting the origin gap.
		t1 = 0
		t2 = e / c
	} else {
		t1 = (b*e - c*d) / denom
		t2 = (a*e - b*d) / denom
	}

	p1 := rl.Vector3Add(aOrigin, rl.Vector3Scale(aDir, t1))
	p2 := rl.Vector3Add(bOrigin, rl.Vector3Scale(bDir, t2))
	dist = rl.Vector3Length(rl.Vector3Subtract(p1, p2))
	return t1, t2, dist
}
