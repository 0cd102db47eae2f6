package game

import (
	"fmt"
	"log"
	"os"

	"forge3d/internal/components"
	"forge3d/internal/engine"
	"forge3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Game owns the main loop and the editor/play mode switch. Entering play
// snapshots the scene and builds the physics arena; leaving play restores
// the snapshot verbatim and discards the arena.
type Game struct {
	World    *world.World
	Renderer *world.Renderer
	Editor   *Editor

	Playing  bool
	Player   *engine.GameObject
	snapshot *world.Snapshot

	scenePath string
}

func New(scenePath string) *Game {
	w := world.New()
	return &Game{
		World:     w,
		Renderer:  world.NewRenderer(),
		Editor:    NewEditor(w),
		scenePath: scenePath,
	}
}

func (g *Game) Run() {
	prefs := LoadEditorPrefs()
	if g.scenePath == "" {
		g.scenePath = prefs.ScenePath
	}
	if g.scenePath == "" {
		g.scenePath = "scene" + world.SceneFileExt
	}

	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(int32(prefs.WindowWidth), int32(prefs.WindowHeight), "forge3d")
	defer rl.CloseWindow()
	rl.SetTargetFPS(120)
	rl.SetExitKey(0)

	g.Editor.ApplyPrefs(prefs)
	g.loadOrSeedScene()
	g.Editor.Enter()
	defer g.World.Unload()

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()

		if rl.IsKeyPressed(rl.KeyP) && !g.Editor.EditingText() {
			g.togglePlay()
		}

		if g.Playing {
			g.updatePlay(dt)
		} else {
			g.Editor.Update(dt)
		}
		g.draw()
	}

	if err := g.Editor.SavePrefs(rl.GetScreenWidth(), rl.GetScreenHeight(), g.scenePath); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// loadOrSeedScene loads the scene file, or seeds a small default scene
// when the file is missing. A load failure leaves the seeded scene alone
// and is only logged; it must not kill the editor.
func (g *Game) loadOrSeedScene() {
	if _, err := os.Stat(g.scenePath); err == nil {
		cam, err := g.World.LoadScene(g.scenePath)
		if err != nil {
			log.Printf("load scene %s: %v", g.scenePath, err)
		} else {
			g.Editor.SetCamera(cam)
			return
		}
	}

	g.World.AddTerrain(1, 1, rl.NewColor(110, 160, 90, 255))
	if cube, err := g.World.AddPrimitive(world.PrimitiveCube); err == nil {
		cube.Transform.Position = rl.Vector3{Y: 1}
	}
	g.World.ScenePath = g.scenePath
}

func (g *Game) togglePlay() {
	if g.Playing {
		g.exitPlay()
	} else {
		g.enterPlay()
	}
}

// enterPlay freezes the editing state and starts the simulation: scene
// snapshot first, then a fresh physics arena, then the player spawn at the
// editor camera.
func (g *Game) enterPlay() {
	camRec := g.Editor.CameraRecord()
	snap, err := g.World.TakeSnapshot(camRec)
	if err != nil {
		log.Printf("play aborted, snapshot failed: %v", err)
		return
	}
	g.snapshot = snap
	g.World.Physics.Rebuild(g.World.Scene)

	eye := rl.Vector3{X: camRec.Position[0], Y: camRec.Position[1], Z: camRec.Position[2]}
	g.Player = newPlayer(eye)
	fps := engine.GetComponent[*components.FPSController](g.Player)
	fps.Yaw = camRec.Yaw
	fps.Pitch = camRec.Pitch
	g.World.Scene.AddGameObject(g.Player)

	g.Editor.Exit()
	g.Playing = true
	rl.DisableCursor()
}

// exitPlay tears the simulation down and restores the pre-play scene.
func (g *Game) exitPlay() {
	if g.Player != nil {
		g.World.Scene.RemoveGameObject(g.Player)
		g.Player = nil
	}
	cam := g.World.RestoreSnapshot(g.snapshot)
	g.snapshot = nil
	g.Playing = false

	g.Editor.SetCamera(cam)
	g.Editor.Enter()
}

// updatePlay runs one simulation frame: player input and movement, the
// physics step, then enemy AI against the new positions.
func (g *Game) updatePlay(dt float32) {
	fps := engine.GetComponent[*components.FPSController](g.Player)
	if fps == nil {
		return
	}
	fps.Update(dt)
	stepPlayer(g.Player, fps, g.World.Physics, dt)

	g.World.Physics.Step(dt)

	playerPos := g.Player.Transform.Position
	for _, obj := range g.World.Scene.GameObjects {
		if ch := engine.GetComponent[*components.Chaser](obj); ch != nil {
			stepChaser(obj, ch, g.World.Physics, playerPos, dt)
		}
	}
}

func (g *Game) draw() {
	var cam rl.Camera3D
	var selected *engine.GameObject
	if g.Playing {
		fps := engine.GetComponent[*components.FPSController](g.Player)
		cam = fps.Camera()
	} else {
		cam = g.Editor.GetRaylibCamera()
		selected = g.Editor.Selected
	}

	rl.BeginDrawing()
	rl.ClearBackground(g.World.Environment.SkyColor)

	rl.BeginMode3D(cam)
	g.Renderer.Draw(cam, g.World, selected)
	if !g.Playing {
		g.Editor.Draw3D()
	}
	rl.EndMode3D()

	if g.Playing {
		g.drawPlayHUD()
	} else {
		g.Editor.DrawUI()
	}
	rl.EndDrawing()
}

func (g *Game) drawPlayHUD() {
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	rl.DrawLine(w/2-6, h/2, w/2+6, h/2, rl.RayWhite)
	rl.DrawLine(w/2, h/2-6, w/2, h/2+6, rl.RayWhite)
	rl.DrawText("WASD move, Space jump, P to stop", 10, h-26, 18, rl.Fade(rl.RayWhite, 0.7))
	rl.DrawFPS(10, 10)

	if fps := engine.GetComponent[*components.FPSController](g.Player); fps != nil {
		p := g.Player.Transform.Position
		rl.DrawText(fmt.Sprintf("%.1f %.1f %.1f", p.X, p.Y, p.Z), 10, 34, 16, rl.Fade(rl.RayWhite, 0.5))
	}
}
