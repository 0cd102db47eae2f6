//go:build !game

package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const prefsFile = ".forge3d_editor.yaml"

// EditorPrefs is the per-user editor state persisted between sessions.
type EditorPrefs struct {
	WindowWidth    int        `yaml:"window_width"`
	WindowHeight   int        `yaml:"window_height"`
	CameraPosition [3]float32 `yaml:"camera_position"`
	CameraYaw      float32    `yaml:"camera_yaw"`   // radians
	CameraPitch    float32    `yaml:"camera_pitch"` // radians
	MoveSpeed      float32    `yaml:"move_speed"`
	GizmoMode      int        `yaml:"gizmo_mode"`
	ScenePath      string     `yaml:"scene_path"`
}

func defaultPrefs() *EditorPrefs {
	return &EditorPrefs{
		WindowWidth:    1280,
		WindowHeight:   720,
		CameraPosition: [3]float32{10, 8, 10},
		CameraYaw:      -2.35,
		CameraPitch:    -0.5,
		MoveSpeed:      10,
	}
}

// LoadEditorPrefs reads the prefs file. A missing or unparsable file comes
// back as defaults; a broken prefs file must never stop the editor.
func LoadEditorPrefs() *EditorPrefs {
	data, err := os.ReadFile(prefsFile)
	if err != nil {
		return defaultPrefs()
	}
	prefs := defaultPrefs()
	if err := yaml.Unmarshal(data, prefs); err != nil {
		return defaultPrefs()
	}
	if prefs.WindowWidth < 320 || prefs.WindowHeight < 240 {
		prefs.WindowWidth = 1280
		prefs.WindowHeight = 720
	}
	return prefs
}

// SavePrefs writes the current editor state next to the binary.
func (e *Editor) SavePrefs(windowW, windowH int, scenePath string) error {
	prefs := EditorPrefs{
		WindowWidth:    windowW,
		WindowHeight:   windowH,
		CameraPosition: [3]float32{e.camera.Position.X, e.camera.Position.Y, e.camera.Position.Z},
		CameraYaw:      e.camera.Yaw,
		CameraPitch:    e.camera.Pitch,
		MoveSpeed:      e.camera.MoveSpeed,
		GizmoMode:      int(e.gizmoMode),
		ScenePath:      scenePath,
	}
	data, err := yaml.Marshal(&prefs)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(prefsFile, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// ApplyPrefs restores camera and gizmo state saved by a previous session.
func (e *Editor) ApplyPrefs(prefs *EditorPrefs) {
	if prefs == nil {
		return
	}
	e.camera.Position.X = prefs.CameraPosition[0]
	e.camera.Position.Y = prefs.CameraPosition[1]
	e.camera.Position.Z = prefs.CameraPosition[2]
	e.camera.Yaw = prefs.CameraYaw
	e.camera.Pitch = prefs.CameraPitch
	if prefs.MoveSpeed > 0 {
		e.camera.MoveSpeed = prefs.MoveSpeed
	}
	if prefs.GizmoMode == int(GizmoRotate) {
		e.gizmoMode = GizmoRotate
	}
}
