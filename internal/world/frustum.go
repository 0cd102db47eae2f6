package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum is the six planes of a view frustum used for culling.
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane is ax + by + cz + d = 0.
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum extracts the planes from explicit view and projection
// matrices (Gribb/Hartmann). Matrices are passed in so the extraction works
// without a window, same as ray picking.
func ExtractFrustum(view, proj rl.Matrix) Frustum {
	vp := rl.MatrixMultiply(view, proj)

	var f Frustum

	// Left: row4 + row1
	f.planes[0] = normalizePlane(Plane{
		normal:   rl.Vector3{X: vp.M3 + vp.M0, Y: vp.M7 + vp.M4, Z: vp.M11 + vp.M8},
		distance: vp.M15 + vp.M12,
	})
	// Right: row4 - row1
	f.planes[1] = normalizePlane(Plane{
		normal:   rl.Vector3{X: vp.M3 - vp.M0, Y: vp.M7 - vp.M4, Z: vp.M11 - vp.M8},
		distance: vp.M15 - vp.M12,
	})
	// Bottom: row4 + row2
	f.planes[2] = normalizePlane(Plane{
		normal:   rl.Vector3{X: vp.M3 + vp.M1, Y: vp.M7 + vp.M5, Z: vp.M11 + vp.M9},
		distance: vp.M15 + vp.M13,
	})
	// Top: row4 - row2
	f.planes[3] = normalizePlane(Plane{
		normal:   rl.Vector3{X: vp.M3 - vp.M1, Y: vp.M7 - vp.M5, Z: vp.M11 - vp.M9},
		distance: vp.M15 - vp.M13,
	})
	// Near: row4 + row3
	f.planes[4] = normalizePlane(Plane{
		normal:   rl.Vector3{X: vp.M3 + vp.M2, Y: vp.M7 + vp.M6, Z: vp.M11 + vp.M10},
		distance: vp.M15 + vp.M14,
	})
	// Far: row4 - row3
	f.planes[5] = normalizePlane(Plane{
		normal:   rl.Vector3{X: vp.M3 - vp.M2, Y: vp.M7 - vp.M6, Z: vp.M11 - vp.M10},
		distance: vp.M15 - vp.M14,
	})

	return f
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere reports whether a sphere is inside or intersects the
// frustum.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := 0; i < 6; i++ {
		dist := rl.Vector3DotProduct(f.planes[i].normal, center) + f.planes[i].distance
		if dist < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether a point is inside the frustum.
func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for i := 0; i < 6; i++ {
		dist := rl.Vector3DotProduct(f.planes[i].normal, point) + f.planes[i].distance
		if dist < 0 {
			return false
		}
	}
	return true
}
