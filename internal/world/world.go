package world

import (
	"fmt"

	"forge3d/internal/components"
	"forge3d/internal/engine"
	"forge3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PrimitiveKind names a generated mesh in scene files and spawn commands.
type PrimitiveKind string

const (
	PrimitiveCube     PrimitiveKind = "cube"
	PrimitiveSphere   PrimitiveKind = "sphere"
	PrimitiveCone     PrimitiveKind = "cone"
	PrimitiveCylinder PrimitiveKind = "cylinder"
	PrimitiveCapsule  PrimitiveKind = "capsule"
)

// Environment holds the scene-wide colors saved with the map.
type Environment struct {
	SunColor  rl.Color
	SkyColor  rl.Color
	HaloColor rl.Color
}

func DefaultEnvironment() Environment {
	return Environment{
		SunColor:  rl.Color{R: 255, G: 255, B: 242, A: 255},
		SkyColor:  rl.Color{R: 135, G: 206, B: 235, A: 255},
		HaloColor: rl.Color{R: 255, G: 230, B: 178, A: 38},
	}
}

// World owns the scene list, the physics arena and the environment state.
// The editor and the game loop both go through it; nothing here touches
// the window or GPU.
type World struct {
	Scene       *engine.Scene
	Physics     *physics.World
	Environment Environment
	ScenePath   string

	counter int // suffix for generated object names
}

func New() *World {
	return &World{
		Scene:       engine.NewScene("Main"),
		Physics:     physics.NewWorld(),
		Environment: DefaultEnvironment(),
	}
}

// AddPrimitive spawns a primitive at the origin with the default material
// and no physics. Returns the new object, already in the scene.
func (w *World) AddPrimitive(kind PrimitiveKind) (*engine.GameObject, error) {
	var geo *engine.Geometry
	shape := components.ShapeBox

	switch kind {
	case PrimitiveCube:
		geo = CubeGeometry()
	case PrimitiveSphere:
		geo = SphereGeometry()
		shape = components.ShapeSphere
	case PrimitiveCone:
		geo = ConeGeometry()
		shape = components.ShapeCone
	case PrimitiveCylinder:
		geo = CylinderGeometry()
		shape = components.ShapeCylinder
	case PrimitiveCapsule:
		geo = CapsuleGeometry()
		shape = components.ShapeCapsule
	default:
		return nil, fmt.Errorf("unknown primitive kind %q", kind)
	}

	w.counter++
	obj := engine.NewGameObject(fmt.Sprintf("%s_%d", titleOf(kind), w.counter))

	mr := components.NewMeshRenderer(geo, rl.LightGray)
	mr.Primitive = string(kind)
	obj.AddComponent(mr)

	rb := components.NewRigidbody()
	rb.Kind = components.KindNone
	rb.Shape = shape
	obj.AddComponent(rb)

	w.Scene.AddGameObject(obj)
	return obj, nil
}

// AddTerrain spawns a flat km-scale ground plane. Terrain is always a
// Static Plane2D; no other shape is legal on it.
func (w *World) AddTerrain(sizeXKm, sizeZKm float32, color rl.Color) *engine.GameObject {
	obj := engine.NewGameObject(fmt.Sprintf("Terrain_%.1fx%.1fkm", sizeXKm, sizeZKm))
	obj.Terrain = true

	mr := components.NewMeshRenderer(TerrainGeometry(sizeXKm*1000, sizeZKm*1000), color)
	mr.Primitive = "terrain"
	mr.Dims = []float32{sizeXKm, sizeZKm}
	obj.AddComponent(mr)
	obj.AddComponent(components.NewStaticBody(components.ShapePlane2D))

	w.Scene.AddGameObject(obj)
	return obj
}

// SpawnEnemy creates the chasing enemy: a red capsule RigidBody of mass 1
// away from the origin.
func (w *World) SpawnEnemy() *engine.GameObject {
	w.counter++
	obj := engine.NewGameObject(fmt.Sprintf("Enemy_%d", w.counter))
	obj.Transform.Position = rl.Vector3{X: 5, Y: 1, Z: 5}

	mr := components.NewMeshRenderer(CapsuleGeometry(), rl.Red)
	mr.Primitive = string(PrimitiveCapsule)
	obj.AddComponent(mr)

	rb := components.NewRigidbody()
	rb.Shape = components.ShapeCapsule
	rb.Mass = 1
	obj.AddComponent(rb)

	obj.AddComponent(components.NewChaser())

	w.Scene.AddGameObject(obj)
	return obj
}

// Duplicate deep-copies an object next to the original: numeric state is
// copied, the texture handle is shared, and the copy gets its own UID and
// a +1 X offset.
func (w *World) Duplicate(src *engine.GameObject) (*engine.GameObject, error) {
	if src == nil {
		return nil, fmt.Errorf("duplicate: no object selected")
	}

	dup := engine.NewGameObject(src.Name + "_copy")
	dup.Transform = src.Transform
	dup.Transform.Position.X += 1.0
	dup.Tags = append([]string(nil), src.Tags...)
	dup.Terrain = src.Terrain

	if mr := engine.GetComponent[*components.MeshRenderer](src); mr != nil {
		clone, err := mr.CloneShared()
		if err != nil {
			return nil, fmt.Errorf("duplicate %s: %w", src.Name, err)
		}
		dup.AddComponent(clone)
	}
	if rb := engine.GetComponent[*components.Rigidbody](src); rb != nil {
		dup.AddComponent(&components.Rigidbody{
			Kind:  rb.Kind,
			Shape: rb.Shape,
			Mass:  rb.Mass,
		})
	}
	if ch := engine.GetComponent[*components.Chaser](src); ch != nil {
		dup.AddComponent(&components.Chaser{Speed: ch.Speed, StopDistance: ch.StopDistance})
	}

	w.Scene.AddGameObject(dup)
	return dup, nil
}

// Delete removes an object from the scene and releases its GPU state.
func (w *World) Delete(obj *engine.GameObject) {
	if obj == nil {
		return
	}
	if mr := engine.GetComponent[*components.MeshRenderer](obj); mr != nil {
		mr.Unload()
	}
	w.Scene.RemoveGameObject(obj)
}

// Pick casts a ray against every scene object's triangles and returns the
// closest hit object.
func (w *World) Pick(ray physics.Ray) (*engine.GameObject, physics.RaycastHit, bool) {
	idx, hit, ok := physics.PickClosest(ray, w.Scene.GameObjects)
	if !ok {
		return nil, physics.RaycastHit{}, false
	}
	return w.Scene.GameObjects[idx], hit, true
}

// Unload releases every object's GPU resources. Call once on shutdown.
func (w *World) Unload() {
	for _, obj := range w.Scene.GameObjects {
		if mr := engine.GetComponent[*components.MeshRenderer](obj); mr != nil {
			mr.Unload()
		}
	}
}

func titleOf(kind PrimitiveKind) string {
	s := string(kind)
	if s == "" {
		return "Object"
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
