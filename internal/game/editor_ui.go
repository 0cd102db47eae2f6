//go:build !game

package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const topBarHeight int32 = 36

// Dark theme shared by the panels.
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorBgActive  = rl.NewColor(48, 48, 65, 255)

	colorAccent      = rl.NewColor(108, 99, 255, 255)
	colorAccentLight = rl.NewColor(167, 139, 250, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)

	colorBorder    = rl.NewColor(255, 255, 255, 13)
	colorSelection = rl.NewColor(108, 99, 255, 60)
)

var rayguiStyled bool

// initRayguiStyle applies the dark theme to raygui controls once.
func initRayguiStyle() {
	if rayguiStyled {
		return
	}
	rayguiStyled = true

	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(40, 40, 55, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// DrawUI draws the editor chrome: top bar, panels and the status flash.
// Runs outside BeginMode3D.
func (e *Editor) DrawUI() {
	screenW := int32(rl.GetScreenWidth())

	rl.DrawRectangle(0, 0, screenW, topBarHeight, colorBgDark)
	rl.DrawRectangle(0, topBarHeight-1, screenW, 1, colorBorder)

	rl.DrawText("EDITOR", 12, 7, 22, colorAccent)

	modeNames := [2]string{"[W] Move", "[E] Rotate"}
	for i, name := range modeNames {
		color := colorTextMuted
		if GizmoMode(i) == e.gizmoMode {
			color = colorAccentLight
		}
		rl.DrawText(name, int32(115+i*100), 9, 18, color)
	}
	rl.DrawText("Ctrl+S: Save  |  Ctrl+D: Duplicate  |  Ctrl+Z: Undo  |  P: Play", 340, 9, 18, colorTextMuted)
	rl.DrawText(fmt.Sprintf("Speed: %.0f", e.camera.MoveSpeed), screenW-120, 9, 18, colorTextMuted)

	if e.statusMsg != "" && rl.GetTime()-e.statusTime < 2.0 {
		rl.DrawText(e.statusMsg, screenW/2-80, topBarHeight+8, 16, rl.NewColor(100, 220, 100, 255))
	}

	e.drawHierarchy()
	e.drawInspector()
}
