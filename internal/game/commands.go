//go:build !game

package game

import (
	"strconv"

	"forge3d/internal/components"
	"forge3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Command is an edit produced by the inspector panels. Panels only read
// scene state and queue commands; the editor applies the queue once per
// frame, so widget code never mutates objects mid-draw.
type Command interface {
	Apply(e *Editor)
}

// SetTransform replaces the target's transform. Values arrive already
// parsed; construction rejects the degenerate cases the stepper and the
// decompose path cannot handle.
type SetTransform struct {
	Target   *engine.GameObject
	Position rl.Vector3
	Rotation rl.Vector3
	Scale    rl.Vector3
}

// NewSetTransform validates the requested transform against the current
// one. Non-finite components and zero scale components keep their old
// values instead of failing the whole edit.
func NewSetTransform(target *engine.GameObject, pos, rot, scale rl.Vector3) SetTransform {
	cur := target.Transform
	return SetTransform{
		Target:   target,
		Position: sanitizeVec(pos, cur.Position),
		Rotation: sanitizeVec(rot, cur.Rotation),
		Scale:    sanitizeScale(scale, cur.Scale),
	}
}

func (c SetTransform) Apply(e *Editor) {
	if c.Target == nil {
		return
	}
	c.Target.Transform.Position = c.Position
	c.Target.Transform.Rotation = c.Rotation
	c.Target.Transform.Scale = c.Scale
}

// SetColor changes the material base color. Transparency is carried by the
// alpha channel; the renderer sorts anything below opaque into the blended
// pass.
type SetColor struct {
	Target *engine.GameObject
	Color  rl.Color
}

func (c SetColor) Apply(e *Editor) {
	if c.Target == nil {
		return
	}
	if mr := engine.GetComponent[*components.MeshRenderer](c.Target); mr != nil {
		mr.Color = c.Color
	}
}

// SetPhysics changes the physics kind, shape and mass of the target.
// Plane2D is only legal on terrain and terrain accepts nothing else, so
// construction coerces both directions rather than erroring.
type SetPhysics struct {
	Target *engine.GameObject
	Kind   components.PhysicsKind
	Shape  components.PhysicsShape
	Mass   float32
}

func NewSetPhysics(target *engine.GameObject, kind components.PhysicsKind, shape components.PhysicsShape, mass float32) SetPhysics {
	if target != nil {
		if target.Terrain {
			shape = components.ShapePlane2D
		} else if shape == components.ShapePlane2D {
			shape = components.ShapeBox
		}
	}
	if !(mass > 0) {
		mass = 1
	}
	return SetPhysics{Target: target, Kind: kind, Shape: shape, Mass: mass}
}

func (c SetPhysics) Apply(e *Editor) {
	if c.Target == nil {
		return
	}
	rb := engine.GetComponent[*components.Rigidbody](c.Target)
	if rb == nil {
		rb = components.NewRigidbody()
		c.Target.AddComponent(rb)
	}
	rb.Kind = c.Kind
	rb.Shape = c.Shape
	rb.Mass = c.Mass
}

// SetName renames the target. Empty names keep the old one.
type SetName struct {
	Target *engine.GameObject
	Name   string
}

func (c SetName) Apply(e *Editor) {
	if c.Target == nil || c.Name == "" {
		return
	}
	c.Target.Name = c.Name
}

func (e *Editor) queue(c Command) {
	e.pending = append(e.pending, c)
}

// applyCommands runs the queued edits. Called once at the top of the
// editor frame, before input handling reads scene state.
func (e *Editor) applyCommands() {
	for _, c := range e.pending {
		c.Apply(e)
	}
	e.pending = e.pending[:0]
}

// parseFloatField turns inspector text into a float. Anything that does
// not parse, including partial input like "-" or "1.2.3", leaves the
// current value untouched.
func parseFloatField(text string, current float32) float32 {
	v, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return current
	}
	f := float32(v)
	if !finite32(f) {
		return current
	}
	return f
}

func sanitizeVec(v, fallback rl.Vector3) rl.Vector3 {
	if !finite32(v.X) {
		v.X = fallback.X
	}
	if !finite32(v.Y) {
		v.Y = fallback.Y
	}
	if !finite32(v.Z) {
		v.Z = fallback.Z
	}
	return v
}

func sanitizeScale(v, fallback rl.Vector3) rl.Vector3 {
	v = sanitizeVec(v, fallback)
	if v.X == 0 {
		v.X = fallback.X
	}
	if v.Y == 0 {
		v.Y = fallback.Y
	}
	if v.Z == 0 {
		v.Z = fallback.Z
	}
	return v
}

func finite32(f float32) bool {
	return f == f && f > -3.4e38 && f < 3.4e38
}
