//go:build !game

package game

import (
	"math"
	"testing"

	"forge3d/internal/components"
	"forge3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatField(t *testing.T) {
	assert.Equal(t, float32(1.5), parseFloatField("1.5", 7))
	assert.Equal(t, float32(-0.25), parseFloatField("-.25", 7))
	// Partial or invalid input keeps the current value.
	assert.Equal(t, float32(7), parseFloatField("", 7))
	assert.Equal(t, float32(7), parseFloatField("-", 7))
	assert.Equal(t, float32(7), parseFloatField("1.2.3", 7))
	assert.Equal(t, float32(7), parseFloatField("abc", 7))
	assert.Equal(t, float32(7), parseFloatField("1e40", 7), "overflow keeps the current value")
}

func TestNewSetTransformSanitizes(t *testing.T) {
	obj := engine.NewGameObject("box")
	obj.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	obj.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}

	nan := float32(math.NaN())
	cmd := NewSetTransform(obj,
		rl.Vector3{X: nan, Y: 5, Z: 6},
		rl.Vector3{},
		rl.Vector3{X: 0, Y: 3, Z: nan})

	// NaN position keeps the old component, valid ones pass through.
	assert.Equal(t, float32(1), cmd.Position.X)
	assert.Equal(t, float32(5), cmd.Position.Y)
	// Zero and NaN scale components fall back to the current scale.
	assert.Equal(t, float32(2), cmd.Scale.X)
	assert.Equal(t, float32(3), cmd.Scale.Y)
	assert.Equal(t, float32(2), cmd.Scale.Z)
}

func TestSetTransformApply(t *testing.T) {
	obj := engine.NewGameObject("box")
	obj.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	e := &Editor{}

	e.queue(NewSetTransform(obj, rl.Vector3{X: 4}, rl.Vector3{Y: 1.5}, rl.Vector3{X: 1, Y: 1, Z: 1}))
	assert.Equal(t, float32(0), obj.Transform.Position.X, "queued edits apply later, not immediately")

	e.applyCommands()
	assert.Equal(t, float32(4), obj.Transform.Position.X)
	assert.Equal(t, float32(1.5), obj.Transform.Rotation.Y)
	assert.Empty(t, e.pending, "queue drains after apply")
}

func TestSetPhysicsCoercesShape(t *testing.T) {
	terrain := engine.NewGameObject("ground")
	terrain.Terrain = true
	cmd := NewSetPhysics(terrain, components.KindStatic, components.ShapeBox, 1)
	assert.Equal(t, components.ShapePlane2D, cmd.Shape, "terrain only ever gets the plane shape")

	box := engine.NewGameObject("box")
	cmd = NewSetPhysics(box, components.KindRigidBody, components.ShapePlane2D, 1)
	assert.Equal(t, components.ShapeBox, cmd.Shape, "plane shape is reserved for terrain")
}

func TestSetPhysicsDefaultsMass(t *testing.T) {
	box := engine.NewGameObject("box")
	assert.Equal(t, float32(1), NewSetPhysics(box, components.KindRigidBody, components.ShapeBox, 0).Mass)
	assert.Equal(t, float32(1), NewSetPhysics(box, components.KindRigidBody, components.ShapeBox, -3).Mass)
	nan := float32(math.NaN())
	assert.Equal(t, float32(1), NewSetPhysics(box, components.KindRigidBody, components.ShapeBox, nan).Mass)
	assert.Equal(t, float32(2.5), NewSetPhysics(box, components.KindRigidBody, components.ShapeBox, 2.5).Mass)
}

func TestSetPhysicsAddsRigidbodyWhenMissing(t *testing.T) {
	obj := engine.NewGameObject("bare")
	e := &Editor{}

	e.queue(NewSetPhysics(obj, components.KindRigidBody, components.ShapeSphere, 4))
	e.applyCommands()

	rb := engine.GetComponent[*components.Rigidbody](obj)
	require.NotNil(t, rb)
	assert.Equal(t, components.KindRigidBody, rb.Kind)
	assert.Equal(t, components.ShapeSphere, rb.Shape)
	assert.Equal(t, float32(4), rb.Mass)
}

func TestSetColorChangesMaterial(t *testing.T) {
	obj := engine.NewGameObject("box")
	mr := components.NewMeshRenderer(nil, rl.White)
	obj.AddComponent(mr)
	e := &Editor{}

	e.queue(SetColor{Target: obj, Color: rl.NewColor(200, 40, 40, 120)})
	e.applyCommands()

	assert.Equal(t, rl.NewColor(200, 40, 40, 120), mr.Color)
	assert.True(t, mr.Transparent(), "alpha below opaque marks the material transparent")
}

func TestSetNameRejectsEmpty(t *testing.T) {
	obj := engine.NewGameObject("old")
	e := &Editor{}

	e.queue(SetName{Target: obj, Name: ""})
	e.queue(SetName{Target: nil, Name: "x"})
	e.applyCommands()
	assert.Equal(t, "old", obj.Name)

	e.queue(SetName{Target: obj, Name: "new"})
	e.applyCommands()
	assert.Equal(t, "new", obj.Name)
}
