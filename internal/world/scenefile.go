package world

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"forge3d/internal/components"
	"forge3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pelletier/go-toml/v2"
)

// Scene files are TOML with the .forgemap extension.
const SceneFileExt = ".forgemap"

type SceneFile struct {
	Info        SceneInfo      `toml:"scene_info"`
	Camera      CameraRecord   `toml:"camera"`
	Environment EnvRecord      `toml:"environment"`
	Objects     []ObjectRecord `toml:"objects"`
}

type SceneInfo struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Engine  string `toml:"engine"`
}

// CameraRecord is the editor camera pose saved with the scene. Yaw and
// pitch are radians.
type CameraRecord struct {
	Position [3]float32 `toml:"position"`
	Yaw      float32    `toml:"yaw"`
	Pitch    float32    `toml:"pitch"`
}

type EnvRecord struct {
	SunColor  [4]float32 `toml:"sun_color"`
	SkyColor  [4]float32 `toml:"sky_color"`
	HaloColor [4]float32 `toml:"halo_color"`
}

type ObjectRecord struct {
	ID        int              `toml:"id"`
	Name      string           `toml:"name"`
	Enemy     bool             `toml:"is_enemy,omitempty"`
	ModelFile string           `toml:"model_file,omitempty"`
	Transform TransformRecord  `toml:"transform"`
	Material  MaterialRecord   `toml:"material"`
	Physics   PhysicsRecord    `toml:"physics"`
	Terrain   *TerrainRecord   `toml:"terrain_data,omitempty"`
	Primitive *PrimitiveRecord `toml:"primitive_data,omitempty"`
}

// TransformRecord stores rotation in radians, matching the runtime.
type TransformRecord struct {
	Position [3]float32 `toml:"position"`
	Rotation [3]float32 `toml:"rotation"`
	Scale    [3]float32 `toml:"scale"`
}

type MaterialRecord struct {
	BaseColor   [4]float32 `toml:"base_color"`
	Transparent bool       `toml:"is_transparent"`
}

type PhysicsRecord struct {
	Kind  string  `toml:"type"`
	Shape string  `toml:"shape"`
	Mass  float32 `toml:"mass"`
}

type TerrainRecord struct {
	SizeXKm float32 `toml:"size_x_km"`
	SizeZKm float32 `toml:"size_z_km"`
}

type PrimitiveRecord struct {
	Type string `toml:"type"`
}

// SaveScene writes the whole scene to path. Player and other code-managed
// objects are skipped; they are rebuilt by the runtime, not the file.
func (w *World) SaveScene(path string, cam CameraRecord) error {
	sf := SceneFile{
		Info: SceneInfo{
			Name:    sceneNameFromPath(path),
			Version: "1.0.0",
			Engine:  "forge3d",
		},
		Camera: cam,
		Environment: EnvRecord{
			SunColor:  colorToFloats(w.Environment.SunColor),
			SkyColor:  colorToFloats(w.Environment.SkyColor),
			HaloColor: colorToFloats(w.Environment.HaloColor),
		},
	}

	for i, g := range w.Scene.GameObjects {
		if engine.GetComponent[*components.FPSController](g) != nil {
			continue
		}
		sf.Objects = append(sf.Objects, objectRecord(i, g))
	}

	data, err := toml.Marshal(sf)
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

func objectRecord(id int, g *engine.GameObject) ObjectRecord {
	rec := ObjectRecord{
		ID:   id,
		Name: g.Name,
		Transform: TransformRecord{
			Position: vecToFloats(g.Transform.Position),
			Rotation: vecToFloats(g.Transform.Rotation),
			Scale:    vecToFloats(g.Transform.Scale),
		},
		Physics: PhysicsRecord{Kind: components.KindNone.String(), Shape: components.ShapeBox.String(), Mass: 1},
	}

	if mr := engine.GetComponent[*components.MeshRenderer](g); mr != nil {
		rec.Material = MaterialRecord{
			BaseColor:   colorToFloats(mr.Color),
			Transparent: mr.Transparent(),
		}
		rec.ModelFile = mr.ModelPath
		if g.Terrain {
			if len(mr.Dims) == 2 {
				rec.Terrain = &TerrainRecord{SizeXKm: mr.Dims[0], SizeZKm: mr.Dims[1]}
			}
		} else if mr.Primitive != "" {
			rec.Primitive = &PrimitiveRecord{Type: mr.Primitive}
		}
	}

	if rb := engine.GetComponent[*components.Rigidbody](g); rb != nil {
		rec.Physics = PhysicsRecord{
			Kind:  rb.Kind.String(),
			Shape: rb.Shape.String(),
			Mass:  rb.Mass,
		}
	}

	rec.Enemy = engine.GetComponent[*components.Chaser](g) != nil

	return rec
}

// LoadScene replaces the scene with the file's contents and returns the
// saved camera pose. On any error the current scene is left untouched.
func (w *World) LoadScene(path string) (CameraRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CameraRecord{}, fmt.Errorf("read scene: %w", err)
	}

	var sf SceneFile
	if err := toml.Unmarshal(data, &sf); err != nil {
		return CameraRecord{}, fmt.Errorf("parse scene: %w", err)
	}

	// Build everything before touching the live scene.
	loaded := make([]*engine.GameObject, 0, len(sf.Objects))
	for _, rec := range sf.Objects {
		obj, ok := objectFromRecord(rec)
		if !ok {
			continue
		}
		loaded = append(loaded, obj)
	}

	w.Unload()
	w.Scene.Clear()
	for _, obj := range loaded {
		w.Scene.AddGameObject(obj)
	}

	w.Environment = Environment{
		SunColor:  floatsToColor(sf.Environment.SunColor),
		SkyColor:  floatsToColor(sf.Environment.SkyColor),
		HaloColor: floatsToColor(sf.Environment.HaloColor),
	}
	w.ScenePath = path
	return sf.Camera, nil
}

func objectFromRecord(rec ObjectRecord) (*engine.GameObject, bool) {
	g := engine.NewGameObject(rec.Name)
	g.Transform.Position = floatsToVec(rec.Transform.Position)
	g.Transform.Rotation = floatsToVec(rec.Transform.Rotation)
	if rec.Transform.Scale == ([3]float32{}) {
		g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		g.Transform.Scale = floatsToVec(rec.Transform.Scale)
	}

	color := floatsToColor(rec.Material.BaseColor)

	var mr *components.MeshRenderer
	switch {
	case rec.Terrain != nil:
		g.Terrain = true
		mr = components.NewMeshRenderer(
			TerrainGeometry(rec.Terrain.SizeXKm*1000, rec.Terrain.SizeZKm*1000), color)
		mr.Primitive = "terrain"
		mr.Dims = []float32{rec.Terrain.SizeXKm, rec.Terrain.SizeZKm}

	case rec.Primitive != nil:
		geo, ok := primitiveGeometry(PrimitiveKind(rec.Primitive.Type))
		if !ok {
			log.Printf("scene: object %q has unknown primitive %q, skipping", rec.Name, rec.Primitive.Type)
			return nil, false
		}
		mr = components.NewMeshRenderer(geo, color)
		mr.Primitive = rec.Primitive.Type

	case rec.ModelFile != "":
		// Model geometry is imported on first draw; the record only
		// carries the source path.
		mr = components.NewMeshRenderer(nil, color)
		mr.ModelPath = rec.ModelFile

	default:
		log.Printf("scene: object %q has no geometry source, skipping", rec.Name)
		return nil, false
	}
	g.AddComponent(mr)

	kind := components.ParseKind(rec.Physics.Kind)
	shape := components.ParseShape(rec.Physics.Shape)
	if g.Terrain && shape != components.ShapePlane2D {
		log.Printf("scene: terrain %q gets Plane2D, ignoring shape %q", rec.Name, rec.Physics.Shape)
		shape = components.ShapePlane2D
	}
	if !g.Terrain && shape == components.ShapePlane2D {
		log.Printf("scene: Plane2D only legal on terrain, %q falls back to Box", rec.Name)
		shape = components.ShapeBox
	}
	// Mass 0 is legal and means a weightless static; only reject negatives
	// and NaN from hand-edited files.
	mass := rec.Physics.Mass
	if !(mass >= 0) {
		mass = 1
	}
	g.AddComponent(&components.Rigidbody{Kind: kind, Shape: shape, Mass: mass})

	if rec.Enemy {
		g.AddComponent(components.NewChaser())
	}

	return g, true
}

func primitiveGeometry(kind PrimitiveKind) (*engine.Geometry, bool) {
	switch kind {
	case PrimitiveCube:
		return CubeGeometry(), true
	case PrimitiveSphere:
		return SphereGeometry(), true
	case PrimitiveCone:
		return ConeGeometry(), true
	case PrimitiveCylinder:
		return CylinderGeometry(), true
	case PrimitiveCapsule:
		return CapsuleGeometry(), true
	}
	return nil, false
}

func sceneNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func vecToFloats(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func floatsToVec(f [3]float32) rl.Vector3 {
	return rl.Vector3{X: f[0], Y: f[1], Z: f[2]}
}

func colorToFloats(c rl.Color) [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

func floatsToColor(f [4]float32) rl.Color {
	return rl.Color{
		R: colorByte(f[0]),
		G: colorByte(f[1]),
		B: colorByte(f[2]),
		A: colorByte(f[3]),
	}
}

func colorByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
