//go:build game

package game

import (
	"forge3d/internal/engine"
	"forge3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shipping builds carry no editor; this stub keeps the game loop compiling
// with the editing surface compiled out.
type Editor struct {
	Active   bool
	Selected *engine.GameObject
	camera   world.CameraRecord
}

type EditorPrefs struct {
	WindowWidth  int
	WindowHeight int
	ScenePath    string
}

func NewEditor(_ *world.World) *Editor { return &Editor{} }

func (e *Editor) Enter()            { rl.EnableCursor() }
func (e *Editor) Exit()             { rl.DisableCursor() }
func (e *Editor) Update(_ float32)  {}
func (e *Editor) EditingText() bool { return false }

func (e *Editor) SetCamera(rec world.CameraRecord) { e.camera = rec }
func (e *Editor) CameraRecord() world.CameraRecord { return e.camera }

func (e *Editor) GetRaylibCamera() rl.Camera3D {
	pos := rl.Vector3{X: e.camera.Position[0], Y: e.camera.Position[1], Z: e.camera.Position[2]}
	return rl.Camera3D{
		Position:   pos,
		Target:     rl.Vector3Add(pos, rl.Vector3{Z: 1}),
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func (e *Editor) Draw3D() {}
func (e *Editor) DrawUI() {}

func (e *Editor) SavePrefs(_, _ int, _ string) error { return nil }
func (e *Editor) ApplyPrefs(_ *EditorPrefs)          {}

func LoadEditorPrefs() *EditorPrefs {
	return &EditorPrefs{WindowWidth: 1280, WindowHeight: 720}
}
