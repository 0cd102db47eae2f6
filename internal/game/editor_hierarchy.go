//go:build !game

package game

import (
	"forge3d/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spawnable entries in the hierarchy panel, one button each.
var spawnKinds = []world.PrimitiveKind{
	world.PrimitiveCube,
	world.PrimitiveSphere,
	world.PrimitiveCone,
	world.PrimitiveCylinder,
	world.PrimitiveCapsule,
}

// drawHierarchy draws the scene object list on the left, with spawn
// buttons at the top.
func (e *Editor) drawHierarchy() {
	panelX := int32(0)
	panelY := topBarHeight
	panelW := e.hierarchyWidth
	panelH := int32(rl.GetScreenHeight()) - panelY

	rl.DrawRectangle(panelX, panelY, panelW, panelH, colorBgPanel)
	rl.DrawRectangle(panelX+panelW-1, panelY, 1, panelH, colorBorder)

	rl.DrawText("Scene", panelX+12, panelY+8, 18, colorTextSecondary)

	y := panelY + 32
	btnW := float32(panelW)/2 - 12
	for i, kind := range spawnKinds {
		bx := float32(panelX+8) + float32(i%2)*(btnW+4)
		by := float32(y + int32(i/2)*26)
		if gui.Button(rl.Rectangle{X: bx, Y: by, Width: btnW, Height: 22}, "+ "+string(kind)) {
			e.spawnPrimitive(kind)
		}
	}
	y += int32((len(spawnKinds)+1)/2) * 26

	if gui.Button(rl.Rectangle{X: float32(panelX + 8), Y: float32(y), Width: btnW, Height: 22}, "+ terrain") {
		e.spawnTerrain()
	}
	if gui.Button(rl.Rectangle{X: float32(panelX+8) + btnW + 4, Y: float32(y), Width: btnW, Height: 22}, "+ enemy") {
		obj := e.world.SpawnEnemy()
		e.setSelected(obj)
		e.setStatus("Spawned %s", obj.Name)
	}
	y += 30

	// Object list, wheel-scrolled, clipped to the panel.
	mousePos := rl.GetMousePosition()
	inPanel := mousePos.X <= float32(panelW) && mousePos.Y >= float32(y)
	if inPanel && !rl.IsMouseButtonDown(rl.MouseRightButton) {
		e.hierarchyScroll -= int32(rl.GetMouseWheelMove() * 20)
		if e.hierarchyScroll < 0 {
			e.hierarchyScroll = 0
		}
	}

	itemH := int32(22)
	objects := e.world.Scene.GameObjects
	maxScroll := int32(len(objects))*itemH - (panelH - (y - panelY))
	if maxScroll < 0 {
		maxScroll = 0
	}
	if e.hierarchyScroll > maxScroll {
		e.hierarchyScroll = maxScroll
	}

	rl.BeginScissorMode(panelX, y, panelW, panelH-(y-panelY))
	for i, g := range objects {
		itemY := y + int32(i)*itemH - e.hierarchyScroll
		if itemY+itemH < y || itemY > panelY+panelH {
			continue
		}

		hovered := inPanel && mousePos.Y >= float32(itemY) && mousePos.Y < float32(itemY+itemH)
		if g == e.Selected {
			rl.DrawRectangle(panelX, itemY, panelW, itemH, colorSelection)
			rl.DrawRectangle(panelX, itemY, 3, itemH, colorAccent)
		} else if hovered {
			rl.DrawRectangle(panelX, itemY, panelW, itemH, colorBgHover)
		}

		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			e.setSelected(g)
		}

		txtColor := colorTextSecondary
		if g == e.Selected {
			txtColor = colorAccentLight
		}
		rl.DrawText(g.Name, panelX+12, itemY+3, 16, txtColor)
	}
	rl.EndScissorMode()
}

// spawnPrimitive creates a primitive five units in front of the camera.
func (e *Editor) spawnPrimitive(kind world.PrimitiveKind) {
	obj, err := e.world.AddPrimitive(kind)
	if err != nil {
		e.setStatus("Spawn failed: %v", err)
		return
	}
	forward, _ := e.getDirections()
	obj.Transform.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(forward, 5))
	e.setSelected(obj)
	e.setStatus("Created %s", obj.Name)
}

func (e *Editor) spawnTerrain() {
	obj := e.world.AddTerrain(1, 1, rl.NewColor(110, 160, 90, 255))
	e.setSelected(obj)
	e.setStatus("Created %s", obj.Name)
}
