//go:build !game

package game

import (
	"fmt"

	"forge3d/internal/engine"
	"forge3d/internal/physics"
	"forge3d/internal/world"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// EditorCamera is the free-fly editing camera. Yaw and pitch are radians,
// same convention as the scene file camera record.
type EditorCamera struct {
	Position  rl.Vector3
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
}

type Editor struct {
	Active   bool
	Selected *engine.GameObject
	world    *world.World
	camera   EditorCamera

	// Gizmo state
	gizmoMode          GizmoMode
	handles            gizmoHandles
	dragging           bool
	dragAxisIdx        int
	dragAxis           rl.Vector3
	dragPlaneNormal    rl.Vector3
	dragCenter         rl.Vector3
	dragStartT         float32    // axis offset at drag start (translate)
	dragStartVec       rl.Vector3 // center-relative hit at drag start (rotate)
	dragStartTransform engine.Transform
	dragStartMatrix    rl.Matrix
	hoveredAxis        int // -1 = none

	// Queued inspector commands, applied once per frame.
	pending []Command

	undoStack []UndoState

	// Panels
	hierarchyScroll int32
	hierarchyWidth  int32
	inspectorWidth  int32
	inspector       inspectorState

	// Status flash under the top bar
	statusMsg  string
	statusTime float64
}

func NewEditor(w *world.World) *Editor {
	return &Editor{
		world: w,
		camera: EditorCamera{
			Position:  rl.Vector3{X: 10, Y: 8, Z: 10},
			Yaw:       -2.35,
			Pitch:     -0.5,
			MoveSpeed: 10.0,
		},
		hoveredAxis:    -1,
		undoStack:      make([]UndoState, 0, maxUndoStack),
		hierarchyWidth: 210,
		inspectorWidth: 300,
	}
}

func (e *Editor) Enter() {
	e.Active = true
	e.Selected = nil
	e.endDrag()
	rl.EnableCursor()
	initRayguiStyle()
}

func (e *Editor) Exit() {
	e.Active = false
	e.Selected = nil
	e.endDrag()
	rl.DisableCursor()
}

// SetCamera places the fly camera, used after scene load and when play
// mode hands the camera back.
func (e *Editor) SetCamera(rec world.CameraRecord) {
	e.camera.Position = rl.Vector3{X: rec.Position[0], Y: rec.Position[1], Z: rec.Position[2]}
	e.camera.Yaw = rec.Yaw
	e.camera.Pitch = rec.Pitch
}

// CameraRecord captures the fly camera for saving and for play mode.
func (e *Editor) CameraRecord() world.CameraRecord {
	return world.CameraRecord{
		Position: [3]float32{e.camera.Position.X, e.camera.Position.Y, e.camera.Position.Z},
		Yaw:      e.camera.Yaw,
		Pitch:    e.camera.Pitch,
	}
}

func (e *Editor) Update(deltaTime float32) {
	e.applyCommands()

	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyLeftSuper)

	if ctrl && rl.IsKeyPressed(rl.KeyZ) {
		e.undo()
	}
	if ctrl && rl.IsKeyPressed(rl.KeyS) {
		e.saveScene()
	}
	if ctrl && rl.IsKeyPressed(rl.KeyD) && e.Selected != nil {
		if dup, err := e.world.Duplicate(e.Selected); err == nil {
			e.Selected = dup
		} else {
			e.setStatus("Duplicate failed: %v", err)
		}
	}
	if e.Selected != nil && !e.inspector.editingText() &&
		(rl.IsKeyPressed(rl.KeyDelete) || rl.IsKeyPressed(rl.KeyBackspace)) {
		e.deleteSelected()
	}

	e.updateCamera(deltaTime)

	// Gizmo mode hotkeys; skipped while flying or typing so WASD stays free.
	if !rl.IsMouseButtonDown(rl.MouseRightButton) && !e.inspector.editingText() {
		if rl.IsKeyPressed(rl.KeyW) {
			e.gizmoMode = GizmoMove
		}
		if rl.IsKeyPressed(rl.KeyE) {
			e.gizmoMode = GizmoRotate
		}
	}

	cam := e.GetRaylibCamera()
	e.refreshGizmo(cam)
	ray := e.mouseRay(cam)

	if e.dragging {
		if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
			e.endDrag()
		} else {
			e.updateDrag(ray)
		}
		return
	}

	e.hoveredAxis = e.pickGizmoAxis(ray)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !e.mouseInPanel() {
		if e.Selected != nil && e.hoveredAxis >= 0 {
			e.startDrag(e.hoveredAxis, ray, cam)
			return
		}
		if obj, _, ok := e.world.Pick(ray); ok {
			e.setSelected(obj)
		} else {
			e.setSelected(nil)
		}
	}
}

func (e *Editor) setSelected(obj *engine.GameObject) {
	e.Selected = obj
	e.handles.valid = false
	e.inspector.cancel()
}

func (e *Editor) deleteSelected() {
	if e.Selected == nil {
		return
	}
	e.pushDeleteUndo(e.Selected)
	e.world.Delete(e.Selected)
	e.setStatus("Deleted %s", e.Selected.Name)
	e.setSelected(nil)
}

func (e *Editor) saveScene() {
	path := e.world.ScenePath
	if path == "" {
		path = "scene" + world.SceneFileExt
	}
	if err := e.world.SaveScene(path, e.CameraRecord()); err != nil {
		e.setStatus("Save failed: %v", err)
		return
	}
	e.world.ScenePath = path
	e.setStatus("Saved %s", path)
}

// EditingText reports whether a text field owns the keyboard, so global
// hotkeys like the play toggle stay quiet.
func (e *Editor) EditingText() bool {
	return e.inspector.editingText()
}

func (e *Editor) setStatus(format string, args ...any) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusTime = rl.GetTime()
}

// updateCamera handles right-mouse fly controls: hold RMB to look, WASD to
// move, E/Q for vertical, shift+wheel for speed.
func (e *Editor) updateCamera(deltaTime float32) {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		mouseDelta := rl.GetMouseDelta()
		e.camera.Yaw += mouseDelta.X * 0.1 * rl.Deg2rad
		e.camera.Pitch -= mouseDelta.Y * 0.1 * rl.Deg2rad
		e.camera.Pitch = clampf(e.camera.Pitch, -maxFlyPitch, maxFlyPitch)

		forward, right := e.getDirections()
		speed := e.camera.MoveSpeed * deltaTime

		if rl.IsKeyDown(rl.KeyW) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(forward, speed))
		}
		if rl.IsKeyDown(rl.KeyS) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(forward, -speed))
		}
		if rl.IsKeyDown(rl.KeyA) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(right, speed))
		}
		if rl.IsKeyDown(rl.KeyD) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(right, -speed))
		}
		if rl.IsKeyDown(rl.KeyE) {
			e.camera.Position.Y += speed
		}
		if rl.IsKeyDown(rl.KeyQ) {
			e.camera.Position.Y -= speed
		}
	}

	scroll := rl.GetMouseWheelMove()
	if scroll != 0 && (rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)) {
		e.camera.MoveSpeed = clampf(e.camera.MoveSpeed+scroll*2.0, 1.0, 100.0)
	}
}

const maxFlyPitch = 89 * math32.Pi / 180

func (e *Editor) getDirections() (forward, right rl.Vector3) {
	forward = rl.Vector3{
		X: math32.Cos(e.camera.Yaw) * math32.Cos(e.camera.Pitch),
		Y: math32.Sin(e.camera.Pitch),
		Z: math32.Sin(e.camera.Yaw) * math32.Cos(e.camera.Pitch),
	}
	right = rl.Vector3{
		X: math32.Sin(e.camera.Yaw),
		Y: 0,
		Z: -math32.Cos(e.camera.Yaw),
	}
	return
}

func (e *Editor) GetRaylibCamera() rl.Camera3D {
	forward, _ := e.getDirections()
	return rl.Camera3D{
		Position:   e.camera.Position,
		Target:     rl.Vector3Add(e.camera.Position, forward),
		Up:         rl.Vector3{Y: 1},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}

// mouseRay builds the picking ray through the cursor using the same
// projection as the renderer.
func (e *Editor) mouseRay(cam rl.Camera3D) physics.Ray {
	m := rl.GetMousePosition()
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	view := rl.GetCameraMatrix(cam)
	proj := rl.MatrixPerspective(cam.Fovy*rl.Deg2rad, w/h, 0.1, 2000)
	return physics.ScreenToWorldRay(m.X, m.Y, view, proj, w, h)
}

// mouseInPanel reports whether the cursor sits over editor chrome, where
// clicks must not reach the 3D viewport.
func (e *Editor) mouseInPanel() bool {
	m := rl.GetMousePosition()
	screenW := float32(rl.GetScreenWidth())
	if m.Y <= float32(topBarHeight) {
		return true
	}
	if m.X <= float32(e.hierarchyWidth) {
		return true
	}
	if m.X >= screenW-float32(e.inspectorWidth) {
		return true
	}
	return false
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
