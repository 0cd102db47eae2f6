package physics

import (
	"forge3d/internal/components"
	"forge3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ScreenToWorldRay unprojects a screen point through the given view and
// projection matrices. The viewport is the render target size in pixels.
// Matrices are passed explicitly so the function stays a pure query.
func ScreenToWorldRay(x, y float32, view, proj rl.Matrix, viewportW, viewportH float32) Ray {
	ndcX := 2*x/viewportW - 1
	ndcY := 1 - 2*y/viewportH

	inv := rl.MatrixInvert(rl.MatrixMultiply(view, proj))

	near := unprojectPoint(inv, ndcX, ndcY, -1)
	far := unprojectPoint(inv, ndcX, ndcY, 1)

	dir := rl.Vector3Subtract(far, near)
	if rl.Vector3Length(dir) < 1e-8 {
		dir = rl.Vector3{Z: -1}
	}
	return Ray{Origin: near, Direction: rl.Vector3Normalize(dir)}
}

func unprojectPoint(inv rl.Matrix, x, y, z float32) rl.Vector3 {
	ox := inv.M0*x + inv.M4*y + inv.M8*z + inv.M12
	oy := inv.M1*x + inv.M5*y + inv.M9*z + inv.M13
	oz := inv.M2*x + inv.M6*y + inv.M10*z + inv.M14
	ow := inv.M3*x + inv.M7*y + inv.M11*z + inv.M15
	if absf(ow) < 1e-12 {
		ow = 1
	}
	return rl.Vector3{X: ox / ow, Y: oy / ow, Z: oz / ow}
}

// PickClosest tests the ray against every candidate's triangle mesh in world
// space and returns the index of the closest positive hit. Ties go to the
// lowest index, matching scene list order. Pure query; selection state is
// the caller's business.
func PickClosest(ray Ray, objects []*engine.GameObject) (int, RaycastHit, bool) {
	bestIdx := -1
	var best RaycastHit
	best.Distance = float32(1e30)

	for i, obj := range objects {
		if obj == nil || !obj.Active {
			continue
		}
		mr := engine.GetComponent[*components.MeshRenderer](obj)
		if mr == nil || mr.Geometry == nil || len(mr.Geometry.Faces) == 0 {
			continue
		}

		// Coarse AABB rejection before the per-triangle work.
		bounds := ComputeBounds(obj)
		if _, ok := RayAABB(ray, bounds.Box, best.Distance); !ok {
			continue
		}

		world := obj.WorldMatrix()
		verts := make([]rl.Vector3, len(mr.Geometry.Vertices))
		for vi, v := range mr.Geometry.Vertices {
			verts[vi] = rl.Vector3Transform(v, world)
		}

		for _, face := range mr.Geometry.Faces {
			if int(face[0]) >= len(verts) || int(face[1]) >= len(verts) || int(face[2]) >= len(verts) {
				continue
			}
			v0, v1, v2 := verts[face[0]], verts[face[1]], verts[face[2]]
			t, ok := RayTriangle(ray, v0, v1, v2)
			if !ok || t >= best.Distance {
				continue
			}
			n := cross(rl.Vector3Subtract(v1, v0), rl.Vector3Subtract(v2, v0))
			if rl.Vector3Length(n) > 1e-8 {
				n = rl.Vector3Normalize(n)
			}
			best = RaycastHit{
				GameObject: obj,
				Point:      rl.Vector3Add(ray.Origin, rl.Vector3Scale(ray.Direction, t)),
				Normal:     n,
				Distance:   t,
			}
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return -1, RaycastHit{}, false
	}
	return bestIdx, best, true
}
