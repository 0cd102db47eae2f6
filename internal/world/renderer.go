package world

import (
	"sort"

	"forge3d/internal/components"
	"forge3d/internal/engine"
	"forge3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	renderNear float32 = 0.1
	renderFar  float32 = 2000.0
)

// Renderer draws the scene meshes. Opaque objects go first, transparent
// ones after, sorted back to front. Everything outside the view frustum is
// skipped.
type Renderer struct {
	GridSlices  int32
	GridSpacing float32
}

func NewRenderer() *Renderer {
	return &Renderer{GridSlices: 100, GridSpacing: 1}
}

// Draw renders all scene objects. Must run between BeginMode3D/EndMode3D
// with the same camera.
func (r *Renderer) Draw(camera rl.Camera3D, w *World, selected *engine.GameObject) {
	view := rl.GetCameraMatrix(camera)
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	proj := rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, renderNear, renderFar)
	frustum := ExtractFrustum(view, proj)

	var opaque, transparent []*components.MeshRenderer
	for _, g := range w.Scene.GameObjects {
		if !g.Active {
			continue
		}
		mr := engine.GetComponent[*components.MeshRenderer](g)
		if mr == nil {
			continue
		}

		bounds := physics.ComputeBounds(g)
		radius := rl.Vector3Length(bounds.Box.Size()) / 2
		if !frustum.ContainsSphere(bounds.Box.Center(), radius) {
			continue
		}

		if mr.Transparent() {
			transparent = append(transparent, mr)
		} else {
			opaque = append(opaque, mr)
		}
	}

	sort.Slice(transparent, func(i, j int) bool {
		di := rl.Vector3Distance(transparent[i].GetGameObject().WorldPosition(), camera.Position)
		dj := rl.Vector3Distance(transparent[j].GetGameObject().WorldPosition(), camera.Position)
		return di > dj
	})

	for _, mr := range opaque {
		mr.Draw()
	}
	for _, mr := range transparent {
		mr.Draw()
	}

	rl.DrawGrid(r.GridSlices, r.GridSpacing)

	if selected != nil {
		b := physics.ComputeBounds(selected)
		rl.DrawBoundingBox(rl.BoundingBox{Min: b.Box.Min, Max: b.Box.Max}, rl.Yellow)
	}
}
