//go:build !game

package game

import (
	"testing"

	"forge3d/internal/engine"
	"forge3d/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gizmoEditor(pos rl.Vector3, mode GizmoMode) (*Editor, *engine.GameObject) {
	obj := engine.NewGameObject("box")
	obj.Transform.Position = pos
	obj.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}

	e := &Editor{gizmoMode: mode}
	e.Selected = obj
	e.handles = gizmoHandles{
		valid:  true,
		uid:    obj.UID,
		mode:   mode,
		source: obj.Transform,
		center: pos,
		scale:  1,
	}
	return e, obj
}

func TestGizmoScaleForGrowsWithDistance(t *testing.T) {
	center := rl.Vector3{}
	assert.InDelta(t, 1.0, gizmoScaleFor(center, rl.Vector3{X: 10}), 1e-5)
	assert.InDelta(t, 5.0, gizmoScaleFor(center, rl.Vector3{Z: 50}), 1e-5)
	// Never collapses to zero, even with the camera on top of the object.
	assert.Equal(t, float32(0.01), gizmoScaleFor(center, center))
}

func TestRingAngleSign(t *testing.T) {
	x := rl.Vector3{X: 1}
	z := rl.Vector3{Z: 1}
	up := rl.Vector3{Y: 1}

	a, ok := ringAngle(x, z, up)
	require.True(t, ok)
	assert.InDelta(t, -math32.Pi/2, a, 1e-5)

	a, ok = ringAngle(z, x, up)
	require.True(t, ok)
	assert.InDelta(t, math32.Pi/2, a, 1e-5)

	a, ok = ringAngle(x, x, up)
	require.True(t, ok)
	assert.InDelta(t, 0, a, 1e-5)
}

func TestRingAngleRejectsDegenerateVectors(t *testing.T) {
	_, ok := ringAngle(rl.Vector3{}, rl.Vector3{X: 1}, rl.Vector3{Y: 1})
	assert.False(t, ok)
	_, ok = ringAngle(rl.Vector3{X: 1}, rl.Vector3{X: 1e-6}, rl.Vector3{Y: 1})
	assert.False(t, ok)
}

func TestPickGizmoAxisArrow(t *testing.T) {
	e, _ := gizmoEditor(rl.Vector3{}, GizmoMove)

	// Straight down the -Z axis through the X arrow shaft.
	ray := physics.Ray{Origin: rl.Vector3{X: 1, Z: 5}, Direction: rl.Vector3{Z: -1}}
	assert.Equal(t, 0, e.pickGizmoAxis(ray))

	// Past the arrow tip: no handle there.
	ray = physics.Ray{Origin: rl.Vector3{X: 5, Z: 5}, Direction: rl.Vector3{Z: -1}}
	assert.Equal(t, -1, e.pickGizmoAxis(ray))

	// Far off every axis.
	ray = physics.Ray{Origin: rl.Vector3{X: 1, Y: 3, Z: 5}, Direction: rl.Vector3{Z: -1}}
	assert.Equal(t, -1, e.pickGizmoAxis(ray))
}

func TestPickGizmoAxisRing(t *testing.T) {
	e, _ := gizmoEditor(rl.Vector3{}, GizmoRotate)

	// Hits the X ring (YZ plane) right on its radius.
	ray := physics.Ray{Origin: rl.Vector3{X: 5, Y: gizmoRingRadius}, Direction: rl.Vector3{X: -1}}
	assert.Equal(t, 0, e.pickGizmoAxis(ray))

	// Inside the ring, farther than the hit band.
	ray = physics.Ray{Origin: rl.Vector3{X: 5, Y: 0.5}, Direction: rl.Vector3{X: -1}}
	assert.Equal(t, -1, e.pickGizmoAxis(ray))
}

func TestPickGizmoAxisWithoutSelection(t *testing.T) {
	e := &Editor{}
	ray := physics.Ray{Origin: rl.Vector3{Z: 5}, Direction: rl.Vector3{Z: -1}}
	assert.Equal(t, -1, e.pickGizmoAxis(ray))
}

func TestTranslateDragProjectsOntoAxis(t *testing.T) {
	e, obj := gizmoEditor(rl.Vector3{}, GizmoMove)
	e.dragging = true
	e.dragAxisIdx = 0
	e.dragAxis = rl.Vector3{X: 1}
	e.dragCenter = rl.Vector3{}
	e.dragPlaneNormal = rl.Vector3{Z: 1}
	e.dragStartT = 0
	e.dragStartTransform = obj.Transform

	// Plane hit at (3, 0.7, 0): only the axis component moves the object.
	ray := physics.Ray{Origin: rl.Vector3{X: 3, Y: 0.7, Z: 5}, Direction: rl.Vector3{Z: -1}}
	e.updateDrag(ray)

	assert.InDelta(t, 3, obj.Transform.Position.X, 1e-5)
	assert.Equal(t, float32(0), obj.Transform.Position.Y)
	assert.Equal(t, float32(0), obj.Transform.Position.Z)

	// Parallel ray misses the plane and must not move anything.
	e.updateDrag(physics.Ray{Origin: rl.Vector3{X: 9, Z: 5}, Direction: rl.Vector3{X: 1}})
	assert.InDelta(t, 3, obj.Transform.Position.X, 1e-5)
}

func TestApplyRotationSpinsAroundCenter(t *testing.T) {
	e, obj := gizmoEditor(rl.Vector3{X: 2}, GizmoRotate)
	e.dragAxis = rl.Vector3{Y: 1}
	e.dragCenter = obj.Transform.Position
	e.dragStartTransform = obj.Transform
	e.dragStartMatrix = obj.WorldMatrix()

	e.applyRotation(math32.Pi / 2)

	// Rotation about the object's own center leaves position untouched.
	assert.InDelta(t, 2, obj.Transform.Position.X, 1e-4)
	assert.InDelta(t, 0, obj.Transform.Position.Y, 1e-4)
	assert.InDelta(t, 0, obj.Transform.Position.Z, 1e-4)
	assert.InDelta(t, math32.Pi/2, obj.Transform.Rotation.Y, 1e-4)
	assert.InDelta(t, 1, obj.Transform.Scale.X, 1e-4)
	assert.InDelta(t, 1, obj.Transform.Scale.Y, 1e-4)
	assert.InDelta(t, 1, obj.Transform.Scale.Z, 1e-4)
}

func TestApplyRotationIsAbsoluteFromDragStart(t *testing.T) {
	// Each drag update rebuilds from the start matrix, so two updates do
	// not accumulate.
	e, obj := gizmoEditor(rl.Vector3{}, GizmoRotate)
	e.dragAxis = rl.Vector3{Y: 1}
	e.dragCenter = rl.Vector3{}
	e.dragStartTransform = obj.Transform
	e.dragStartMatrix = obj.WorldMatrix()

	e.applyRotation(1.0)
	e.applyRotation(0.25)

	assert.InDelta(t, 0.25, obj.Transform.Rotation.Y, 1e-4)
}

func TestRefreshGizmoCachesUntilTransformChanges(t *testing.T) {
	e, obj := gizmoEditor(rl.Vector3{X: 1}, GizmoMove)
	cam := rl.Camera3D{Position: rl.Vector3{X: 1, Z: 10}}

	e.refreshGizmo(cam)
	require.True(t, e.handles.valid)
	assert.InDelta(t, 1.0, e.handles.scale, 1e-5)

	// Camera moved: only the scale updates.
	cam.Position = rl.Vector3{X: 1, Z: 20}
	e.refreshGizmo(cam)
	assert.InDelta(t, 2.0, e.handles.scale, 1e-5)

	// Object moved: the proxy follows.
	obj.Transform.Position = rl.Vector3{X: 3}
	e.refreshGizmo(cam)
	assert.Equal(t, float32(3), e.handles.center.X)

	e.Selected = nil
	e.refreshGizmo(cam)
	assert.False(t, e.handles.valid)
}
