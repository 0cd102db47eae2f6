//go:build !game

package game

import (
	"forge3d/internal/engine"
	"forge3d/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type GizmoMode int

const (
	GizmoMove GizmoMode = iota
	GizmoRotate
)

// Handle proxy dimensions at unit scale. The whole gizmo is scaled by
// camera distance so it keeps a constant size on screen.
const (
	gizmoArrowLen   float32 = 2.0
	gizmoShaftR     float32 = 0.04
	gizmoTipLen     float32 = 0.35
	gizmoTipR       float32 = 0.12
	gizmoRingRadius float32 = 1.6
	gizmoRingR      float32 = 0.04
	gizmoArrowHit   float32 = 0.25
	gizmoRingHit    float32 = 0.3
	gizmoDistScale  float32 = 0.1
)

var gizmoAxes = [3]rl.Vector3{
	{X: 1},
	{Y: 1},
	{Z: 1},
}

var gizmoColors = [3]rl.Color{rl.Red, rl.Green, rl.Blue}

// gizmoHandles is the cached handle proxy: rebuilt whenever the selection,
// the mode or the selected transform changes.
type gizmoHandles struct {
	valid  bool
	uid    uint64
	mode   GizmoMode
	source engine.Transform

	center rl.Vector3
	scale  float32
}

// refreshGizmo rebuilds the handle proxy if anything it derives from moved.
func (e *Editor) refreshGizmo(cam rl.Camera3D) {
	if e.Selected == nil {
		e.handles.valid = false
		return
	}
	h := &e.handles
	if h.valid && h.uid == e.Selected.UID && h.mode == e.gizmoMode && h.source == e.Selected.Transform {
		// Camera motion only rescales; cheap enough to redo every frame.
		h.scale = gizmoScaleFor(h.center, cam.Position)
		return
	}
	h.valid = true
	h.uid = e.Selected.UID
	h.mode = e.gizmoMode
	h.source = e.Selected.Transform
	h.center = e.Selected.WorldPosition()
	h.scale = gizmoScaleFor(h.center, cam.Position)
}

func gizmoScaleFor(center, camPos rl.Vector3) float32 {
	s := rl.Vector3Distance(center, camPos) * gizmoDistScale
	if s < 0.01 {
		s = 0.01
	}
	return s
}

// pickGizmoAxis returns the handle axis under the ray, or -1. Arrows use
// the closest approach between the ray and the axis line; rings use the
// distance from the ring circle in its plane.
func (e *Editor) pickGizmoAxis(ray physics.Ray) int {
	if e.Selected == nil || !e.handles.valid {
		return -1
	}
	center := e.handles.center
	s := e.handles.scale

	bestDist := float32(math32.MaxFloat32)
	bestAxis := -1

	switch e.gizmoMode {
	case GizmoRotate:
		radius := gizmoRingRadius * s
		hit := gizmoRingHit * s
		for i, axis := range gizmoAxes {
			pt, ok := physics.RayPlane(ray, center, axis)
			if !ok {
				continue
			}
			fromRing := absf(rl.Vector3Distance(pt, center) - radius)
			if fromRing < hit && fromRing < bestDist {
				bestDist = fromRing
				bestAxis = i
			}
		}
	default:
		length := (gizmoArrowLen + gizmoTipLen) * s
		hit := gizmoArrowHit * s
		for i, axis := range gizmoAxes {
			_, t2, dist := physics.ClosestPointBetweenRays(ray.Origin, ray.Direction, center, axis)
			if t2 > 0 && t2 < length && dist < hit && dist < bestDist {
				bestDist = dist
				bestAxis = i
			}
		}
	}
	return bestAxis
}

// startDrag begins a gizmo drag on the given axis. The pre-drag transform
// goes on the undo stack before anything moves.
func (e *Editor) startDrag(axisIdx int, ray physics.Ray, cam rl.Camera3D) {
	e.pushUndo()

	e.dragging = true
	e.dragAxisIdx = axisIdx
	e.dragAxis = gizmoAxes[axisIdx]
	e.dragCenter = e.Selected.WorldPosition()
	e.dragStartTransform = e.Selected.Transform
	e.dragStartMatrix = e.Selected.WorldMatrix()

	if e.gizmoMode == GizmoRotate {
		// Ring drags happen in the ring's own plane.
		e.dragPlaneNormal = e.dragAxis
		if pt, ok := physics.RayPlane(ray, e.dragCenter, e.dragPlaneNormal); ok {
			e.dragStartVec = rl.Vector3Subtract(pt, e.dragCenter)
		} else {
			e.dragStartVec = rl.Vector3{}
		}
		return
	}

	// Translation drags on a plane that contains the axis and faces the
	// camera, so the ray intersection stays well conditioned.
	viewFront := rl.Vector3Normalize(rl.Vector3Subtract(e.dragCenter, cam.Position))
	e.dragPlaneNormal = rl.Vector3Normalize(
		rl.Vector3CrossProduct(rl.Vector3CrossProduct(e.dragAxis, viewFront), e.dragAxis))

	if pt, ok := physics.RayPlane(ray, e.dragCenter, e.dragPlaneNormal); ok {
		e.dragStartT = rl.Vector3DotProduct(rl.Vector3Subtract(pt, e.dragCenter), e.dragAxis)
	} else {
		e.dragStartT = 0
	}
}

func (e *Editor) updateDrag(ray physics.Ray) {
	if e.Selected == nil {
		e.endDrag()
		return
	}

	pt, ok := physics.RayPlane(ray, e.dragCenter, e.dragPlaneNormal)
	if !ok {
		return
	}

	switch e.gizmoMode {
	case GizmoMove:
		// Project onto the drag axis; off-axis components of the hit
		// point are discarded.
		t := rl.Vector3DotProduct(rl.Vector3Subtract(pt, e.dragCenter), e.dragAxis)
		delta := t - e.dragStartT
		e.Selected.Transform.Position = rl.Vector3Add(
			e.dragStartTransform.Position, rl.Vector3Scale(e.dragAxis, delta))

	case GizmoRotate:
		angle, ok := ringAngle(e.dragStartVec, rl.Vector3Subtract(pt, e.dragCenter), e.dragAxis)
		if !ok {
			return
		}
		e.applyRotation(angle)
	}
}

// ringAngle returns the signed angle from v0 to v1 around axis. Vectors
// shorter than the epsilon are degenerate and rejected.
func ringAngle(v0, v1, axis rl.Vector3) (float32, bool) {
	const eps = 1e-4
	if rl.Vector3Length(v0) < eps || rl.Vector3Length(v1) < eps {
		return 0, false
	}
	n0 := rl.Vector3Normalize(v0)
	n1 := rl.Vector3Normalize(v1)

	d := rl.Vector3DotProduct(n0, n1)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	angle := math32.Acos(d)
	if rl.Vector3DotProduct(axis, rl.Vector3CrossProduct(n0, n1)) < 0 {
		angle = -angle
	}
	return angle, true
}

// applyRotation rotates the start matrix around the drag axis through the
// object center and decomposes the result back onto the transform. The
// composed order can perturb scale slightly for already-rotated objects;
// the decompose keeps it bounded.
func (e *Editor) applyRotation(angle float32) {
	c := e.dragCenter
	rot := rl.MatrixRotate(e.dragAxis, angle)

	// T(c) * R * T(-c) * start, built right to left.
	m := rl.MatrixMultiply(rot, rl.MatrixTranslate(c.X, c.Y, c.Z))
	m = rl.MatrixMultiply(rl.MatrixTranslate(-c.X, -c.Y, -c.Z), m)
	m = rl.MatrixMultiply(e.dragStartMatrix, m)

	pos, rotE, scale := engine.Decompose(m)
	e.Selected.Transform.Position = pos
	e.Selected.Transform.Rotation = rotE
	e.Selected.Transform.Scale = scale
}

func (e *Editor) endDrag() {
	e.dragging = false
	e.dragStartVec = rl.Vector3{}
	e.handles.valid = false
}

// Draw3D draws the gizmo for the current selection. Call inside
// BeginMode3D; depth testing is disabled so handles draw over geometry.
func (e *Editor) Draw3D() {
	if e.Selected == nil || !e.handles.valid {
		return
	}

	rl.DrawRenderBatchActive()
	rl.DisableDepthTest()

	center := e.handles.center
	s := e.handles.scale

	for i, axis := range gizmoAxes {
		color := gizmoColors[i]
		if (e.dragging && e.dragAxisIdx == i) || (!e.dragging && e.hoveredAxis == i) {
			color = rl.Yellow
		}

		switch e.gizmoMode {
		case GizmoMove:
			shaftEnd := rl.Vector3Add(center, rl.Vector3Scale(axis, gizmoArrowLen*s))
			tipEnd := rl.Vector3Add(center, rl.Vector3Scale(axis, (gizmoArrowLen+gizmoTipLen)*s))
			rl.DrawCylinderEx(center, shaftEnd, gizmoShaftR*s, gizmoShaftR*s, 8, color)
			// Tapering to radius zero makes the cone tip.
			rl.DrawCylinderEx(shaftEnd, tipEnd, gizmoTipR*s, 0, 8, color)

		case GizmoRotate:
			drawRing(center, axis, gizmoRingRadius*s, gizmoRingR*s, color)
		}
	}

	rl.DrawRenderBatchActive()
	rl.EnableDepthTest()
}

// drawRing draws a circle around axis as short cylinder segments.
func drawRing(center, axis rl.Vector3, radius, thickness float32, color rl.Color) {
	// Two perpendicular directions spanning the ring plane.
	ref := rl.Vector3{Y: 1}
	if absf(axis.Y) > 0.9 {
		ref = rl.Vector3{X: 1}
	}
	u := rl.Vector3Normalize(rl.Vector3CrossProduct(axis, ref))
	v := rl.Vector3CrossProduct(axis, u)

	const segments = 32
	prev := rl.Vector3Add(center, rl.Vector3Scale(u, radius))
	for i := 1; i <= segments; i++ {
		t := float32(i) / segments * 2 * math32.Pi
		p := rl.Vector3Add(center, rl.Vector3Add(
			rl.Vector3Scale(u, radius*math32.Cos(t)),
			rl.Vector3Scale(v, radius*math32.Sin(t))))
		rl.DrawCylinderEx(prev, p, thickness, thickness, 6, color)
		prev = p
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
