//go:build !game

package game

import (
	"fmt"
	"strconv"

	"forge3d/internal/components"
	"forge3d/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// inspectorState tracks which field is being typed into. Only one field
// edits at a time; everything else displays live scene values.
type inspectorState struct {
	activeField string // "" = none
	buffer      string
}

func (s *inspectorState) editingText() bool { return s.activeField != "" }

func (s *inspectorState) cancel() {
	s.activeField = ""
	s.buffer = ""
}

// drawInspector draws the selected object's properties on the right. All
// edits go through the command queue; the panel never writes to the scene
// directly.
func (e *Editor) drawInspector() {
	panelW := e.inspectorWidth
	panelX := int32(rl.GetScreenWidth()) - panelW
	panelY := topBarHeight
	panelH := int32(rl.GetScreenHeight()) - panelY

	rl.DrawRectangle(panelX, panelY, panelW, panelH, colorBgPanel)
	rl.DrawRectangle(panelX, panelY, 1, panelH, colorBorder)

	if e.Selected == nil {
		rl.DrawText("Nothing selected", panelX+12, panelY+12, 16, colorTextMuted)
		return
	}
	obj := e.Selected

	y := panelY + 10
	y = e.drawNameField(panelX, y, panelW, obj)
	y = e.drawTransformSection(panelX, y, panelW, obj)
	y = e.drawMaterialSection(panelX, y, panelW, obj)
	e.drawPhysicsSection(panelX, y, panelW, obj)
}

func (e *Editor) drawNameField(panelX, y, panelW int32, obj *engine.GameObject) int32 {
	fieldX := panelX + 10
	fieldW := panelW - 20
	fieldH := int32(24)

	editing := e.inspector.activeField == "name"
	hovered := mouseOver(fieldX, y, fieldW, fieldH)

	bg := colorBgElement
	if editing {
		bg = colorBgActive
	} else if hovered {
		bg = colorBgHover
	}
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(fieldX), Y: float32(y), Width: float32(fieldW), Height: float32(fieldH)}, 0.2, 6, bg)

	if editing {
		rl.DrawText(e.inspector.buffer+"_", fieldX+8, y+4, 18, colorTextPrimary)
		e.readChars()
		if commit, cancel := fieldExit(hovered); commit {
			e.queue(SetName{Target: obj, Name: e.inspector.buffer})
			e.inspector.cancel()
		} else if cancel {
			e.inspector.cancel()
		}
	} else {
		rl.DrawText(obj.Name, fieldX+8, y+4, 18, colorAccentLight)
		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			e.inspector.activeField = "name"
			e.inspector.buffer = obj.Name
		}
	}
	return y + fieldH + 10
}

func (e *Editor) drawTransformSection(panelX, y, panelW int32, obj *engine.GameObject) int32 {
	rl.DrawText("Transform", panelX+12, y, 18, colorTextSecondary)
	y += 24

	labelW := int32(45)
	fieldW := (panelW - 38 - labelW) / 3
	fieldH := int32(22)
	startX := panelX + 12 + labelW

	t := obj.Transform
	pos := t.Position
	rotDeg := rl.Vector3Scale(t.Rotation, rl.Rad2deg)
	scale := t.Scale
	changed := false

	rl.DrawText("Pos", panelX+14, y+4, 16, colorTextMuted)
	changed = e.floatField(startX, y, fieldW, fieldH, "pos.x", &pos.X) || changed
	changed = e.floatField(startX+fieldW+2, y, fieldW, fieldH, "pos.y", &pos.Y) || changed
	changed = e.floatField(startX+2*(fieldW+2), y, fieldW, fieldH, "pos.z", &pos.Z) || changed
	y += fieldH + 4

	// Rotation is stored in radians and edited in degrees.
	rl.DrawText("Rot", panelX+14, y+4, 16, colorTextMuted)
	changed = e.floatField(startX, y, fieldW, fieldH, "rot.x", &rotDeg.X) || changed
	changed = e.floatField(startX+fieldW+2, y, fieldW, fieldH, "rot.y", &rotDeg.Y) || changed
	changed = e.floatField(startX+2*(fieldW+2), y, fieldW, fieldH, "rot.z", &rotDeg.Z) || changed
	y += fieldH + 4

	rl.DrawText("Scale", panelX+14, y+4, 16, colorTextMuted)
	changed = e.floatField(startX, y, fieldW, fieldH, "scale.x", &scale.X) || changed
	changed = e.floatField(startX+fieldW+2, y, fieldW, fieldH, "scale.y", &scale.Y) || changed
	changed = e.floatField(startX+2*(fieldW+2), y, fieldW, fieldH, "scale.z", &scale.Z) || changed
	y += fieldH + 10

	if changed {
		e.pushUndo()
		e.queue(NewSetTransform(obj, pos, rl.Vector3Scale(rotDeg, rl.Deg2rad), scale))
	}
	return y
}

func (e *Editor) drawMaterialSection(panelX, y, panelW int32, obj *engine.GameObject) int32 {
	mr := engine.GetComponent[*components.MeshRenderer](obj)
	if mr == nil {
		return y
	}

	rl.DrawText("Material", panelX+12, y, 18, colorTextSecondary)
	y += 24

	sliderX := float32(panelX + 50)
	sliderW := float32(panelW - 90)
	labels := [4]string{"R", "G", "B", "A"}
	vals := [4]float32{float32(mr.Color.R), float32(mr.Color.G), float32(mr.Color.B), float32(mr.Color.A)}
	changed := false

	for i := range vals {
		rl.DrawText(labels[i], panelX+14, y+2, 16, colorTextMuted)
		nv := gui.Slider(rl.Rectangle{X: sliderX, Y: float32(y), Width: sliderW, Height: 16},
			"", fmt.Sprintf("%d", int32(vals[i])), vals[i], 0, 255)
		if nv != vals[i] {
			vals[i] = nv
			changed = true
		}
		y += 22
	}

	if changed {
		e.queue(SetColor{Target: obj, Color: rl.NewColor(uint8(vals[0]), uint8(vals[1]), uint8(vals[2]), uint8(vals[3]))})
	}
	return y + 8
}

func (e *Editor) drawPhysicsSection(panelX, y, panelW int32, obj *engine.GameObject) int32 {
	rl.DrawText("Physics", panelX+12, y, 18, colorTextSecondary)
	y += 24

	rb := engine.GetComponent[*components.Rigidbody](obj)
	kind := components.KindNone
	shape := components.ShapeBox
	mass := float32(1)
	if rb != nil {
		kind, shape, mass = rb.Kind, rb.Shape, rb.Mass
	}

	btnW := float32(panelW-32) / 2
	changed := false

	// Cycle buttons; terrain is pinned to its shape.
	if gui.Button(rl.Rectangle{X: float32(panelX + 12), Y: float32(y), Width: btnW, Height: 22}, kind.String()) {
		kind = nextKind(kind)
		changed = true
	}
	shapeLabel := shape.String()
	if obj.Terrain {
		rl.DrawText(shapeLabel, panelX+16+int32(btnW), y+4, 16, colorTextMuted)
	} else if gui.Button(rl.Rectangle{X: float32(panelX+16) + btnW, Y: float32(y), Width: btnW, Height: 22}, shapeLabel) {
		shape = nextShape(shape)
		changed = true
	}
	y += 28

	rl.DrawText("Mass", panelX+14, y+4, 16, colorTextMuted)
	if e.floatField(panelX+60, y, 80, 22, "mass", &mass) {
		changed = true
	}
	y += 30

	if changed {
		e.queue(NewSetPhysics(obj, kind, shape, mass))
	}
	return y
}

func nextKind(k components.PhysicsKind) components.PhysicsKind {
	switch k {
	case components.KindNone:
		return components.KindStatic
	case components.KindStatic:
		return components.KindRigidBody
	default:
		return components.KindNone
	}
}

func nextShape(s components.PhysicsShape) components.PhysicsShape {
	switch s {
	case components.ShapeBox:
		return components.ShapeSphere
	case components.ShapeSphere:
		return components.ShapeCylinder
	case components.ShapeCylinder:
		return components.ShapeCapsule
	case components.ShapeCapsule:
		return components.ShapeCone
	case components.ShapeCone:
		return components.ShapeMesh
	default:
		return components.ShapeBox
	}
}

// floatField draws one numeric input. While inactive it shows the live
// value; clicking starts editing, enter or clicking away commits. Returns
// true and writes through the pointer when a commit parses; text that does
// not parse leaves the value alone.
func (e *Editor) floatField(x, y, w, h int32, id string, value *float32) bool {
	editing := e.inspector.activeField == id
	hovered := mouseOver(x, y, w, h)

	bg := colorBgElement
	if editing {
		bg = colorBgActive
	} else if hovered {
		bg = colorBgHover
	}
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}, 0.2, 4, bg)

	if !editing {
		rl.DrawText(fmt.Sprintf("%.2f", *value), x+6, y+4, 16, colorTextSecondary)
		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			e.inspector.activeField = id
			e.inspector.buffer = strconv.FormatFloat(float64(*value), 'f', -1, 32)
		}
		return false
	}

	rl.DrawText(e.inspector.buffer+"_", x+6, y+4, 16, colorTextPrimary)
	e.readChars()

	if commit, cancel := fieldExit(hovered); commit {
		parsed := parseFloatField(e.inspector.buffer, *value)
		e.inspector.cancel()
		if parsed != *value {
			*value = parsed
			return true
		}
	} else if cancel {
		e.inspector.cancel()
	}
	return false
}

// readChars appends typed characters to the edit buffer.
func (e *Editor) readChars() {
	for {
		key := rl.GetCharPressed()
		if key == 0 {
			break
		}
		e.inspector.buffer += string(rune(key))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(e.inspector.buffer) > 0 {
		e.inspector.buffer = e.inspector.buffer[:len(e.inspector.buffer)-1]
	}
}

// fieldExit reports how an active field ends this frame: enter or a click
// elsewhere commits, escape cancels.
func fieldExit(hovered bool) (commit, cancel bool) {
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		return true, false
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !hovered {
		return true, false
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		return false, true
	}
	return false, false
}

func mouseOver(x, y, w, h int32) bool {
	m := rl.GetMousePosition()
	return m.X >= float32(x) && m.X <= float32(x+w) &&
		m.Y >= float32(y) && m.Y <= float32(y+h)
}
