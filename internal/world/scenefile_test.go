package world

import (
	"os"
	"path/filepath"
	"testing"

	"forge3d/internal/components"
	"forge3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneSaveLoadRoundTrip(t *testing.T) {
	w := New()

	crate, err := w.AddPrimitive(PrimitiveCube)
	require.NoError(t, err)
	crate.Transform.Position = rl.Vector3{X: 2, Y: 1, Z: -3}
	crate.Transform.Rotation = rl.Vector3{Y: 0.5}
	crate.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}
	rb := engine.GetComponent[*components.Rigidbody](crate)
	rb.Kind = components.KindRigidBody
	rb.Mass = 3.5
	mr := engine.GetComponent[*components.MeshRenderer](crate)
	mr.Color = rl.Color{R: 255, G: 128, B: 0, A: 255}

	w.AddTerrain(1.0, 2.0, rl.Color{R: 102, G: 153, B: 77, A: 255})
	w.SpawnEnemy()

	cam := CameraRecord{Position: [3]float32{0, 2, 8}, Yaw: 1.2, Pitch: -0.3}
	path := filepath.Join(t.TempDir(), "test"+SceneFileExt)
	require.NoError(t, w.SaveScene(path, cam))

	loadedWorld := New()
	loadedCam, err := loadedWorld.LoadScene(path)
	require.NoError(t, err)

	assert.Equal(t, cam, loadedCam)
	require.Len(t, loadedWorld.Scene.GameObjects, 3)

	obj := loadedWorld.Scene.FindByName(crate.Name)
	require.NotNil(t, obj)
	assert.Equal(t, crate.Transform.Position, obj.Transform.Position)
	assert.Equal(t, crate.Transform.Rotation, obj.Transform.Rotation)
	assert.Equal(t, crate.Transform.Scale, obj.Transform.Scale)

	lrb := engine.GetComponent[*components.Rigidbody](obj)
	require.NotNil(t, lrb)
	assert.Equal(t, components.KindRigidBody, lrb.Kind)
	assert.Equal(t, components.ShapeBox, lrb.Shape)
	assert.InDelta(t, 3.5, lrb.Mass, 1e-5)

	lmr := engine.GetComponent[*components.MeshRenderer](obj)
	require.NotNil(t, lmr)
	assert.Equal(t, mr.Color, lmr.Color)
	require.NotNil(t, lmr.Geometry)
	assert.Len(t, lmr.Geometry.Faces, 12)
}

func TestSceneLoadRestoresTerrain(t *testing.T) {
	w := New()
	w.AddTerrain(1.5, 0.5, rl.Green)

	path := filepath.Join(t.TempDir(), "terrain"+SceneFileExt)
	require.NoError(t, w.SaveScene(path, CameraRecord{}))

	loaded := New()
	_, err := loaded.LoadScene(path)
	require.NoError(t, err)

	require.Len(t, loaded.Scene.GameObjects, 1)
	terrain := loaded.Scene.GameObjects[0]
	assert.True(t, terrain.Terrain)

	rb := engine.GetComponent[*components.Rigidbody](terrain)
	require.NotNil(t, rb)
	assert.Equal(t, components.KindStatic, rb.Kind)
	assert.Equal(t, components.ShapePlane2D, rb.Shape)

	mr := engine.GetComponent[*components.MeshRenderer](terrain)
	require.NotNil(t, mr)
	min, max := mr.Geometry.LocalExtents()
	assert.InDelta(t, -750, min.X, 1e-3)
	assert.InDelta(t, 250, max.Z, 1e-3)
}

func TestSceneLoadRestoresEnemy(t *testing.T) {
	w := New()
	w.SpawnEnemy()

	path := filepath.Join(t.TempDir(), "enemy"+SceneFileExt)
	require.NoError(t, w.SaveScene(path, CameraRecord{}))

	loaded := New()
	_, err := loaded.LoadScene(path)
	require.NoError(t, err)

	require.Len(t, loaded.Scene.GameObjects, 1)
	enemy := loaded.Scene.GameObjects[0]
	assert.NotNil(t, engine.GetComponent[*components.Chaser](enemy))
	assert.Equal(t, rl.Vector3{X: 5, Y: 1, Z: 5}, enemy.Transform.Position)
}

func TestSceneRoundTripKeepsZeroMassStatic(t *testing.T) {
	w := New()
	pillar, err := w.AddPrimitive(PrimitiveCylinder)
	require.NoError(t, err)
	rb := engine.GetComponent[*components.Rigidbody](pillar)
	rb.Kind = components.KindStatic
	rb.Mass = 0

	path := filepath.Join(t.TempDir(), "static"+SceneFileExt)
	require.NoError(t, w.SaveScene(path, CameraRecord{}))

	loaded := New()
	_, err = loaded.LoadScene(path)
	require.NoError(t, err)

	require.Len(t, loaded.Scene.GameObjects, 1)
	lrb := engine.GetComponent[*components.Rigidbody](loaded.Scene.GameObjects[0])
	require.NotNil(t, lrb)
	assert.Equal(t, components.KindStatic, lrb.Kind)
	assert.Equal(t, float32(0), lrb.Mass, "statics keep their zero mass")
}

func TestSceneLoadRejectsNegativeMass(t *testing.T) {
	scene := `
[[objects]]
name = "Box"
[objects.transform]
scale = [1.0, 1.0, 1.0]
[objects.physics]
type = "rigidbody"
shape = "cube"
mass = -2.0
[objects.primitive_data]
type = "cube"
`
	path := filepath.Join(t.TempDir(), "negmass"+SceneFileExt)
	require.NoError(t, os.WriteFile(path, []byte(scene), 0644))

	w := New()
	_, err := w.LoadScene(path)
	require.NoError(t, err)

	require.Len(t, w.Scene.GameObjects, 1)
	rb := engine.GetComponent[*components.Rigidbody](w.Scene.GameObjects[0])
	require.NotNil(t, rb)
	assert.Equal(t, float32(1), rb.Mass)
}

func TestSceneLoadFailureLeavesSceneUntouched(t *testing.T) {
	w := New()
	w.AddPrimitive(PrimitiveSphere)

	_, err := w.LoadScene(filepath.Join(t.TempDir(), "missing.forgemap"))
	assert.Error(t, err)
	assert.Len(t, w.Scene.GameObjects, 1, "failed load must not clear the scene")

	bad := filepath.Join(t.TempDir(), "bad.forgemap")
	require.NoError(t, os.WriteFile(bad, []byte("not [valid toml"), 0644))
	_, err = w.LoadScene(bad)
	assert.Error(t, err)
	assert.Len(t, w.Scene.GameObjects, 1)
}

func TestSceneLoadCoercesIllegalPlane2D(t *testing.T) {
	scene := `
[[objects]]
name = "Box"
[objects.transform]
position = [0.0, 0.0, 0.0]
rotation = [0.0, 0.0, 0.0]
scale = [1.0, 1.0, 1.0]
[objects.material]
base_color = [1.0, 1.0, 1.0, 1.0]
[objects.physics]
type = "static"
shape = "2dplane"
mass = 1.0
[objects.primitive_data]
type = "cube"
`
	path := filepath.Join(t.TempDir(), "plane"+SceneFileExt)
	require.NoError(t, os.WriteFile(path, []byte(scene), 0644))

	w := New()
	_, err := w.LoadScene(path)
	require.NoError(t, err)

	require.Len(t, w.Scene.GameObjects, 1)
	rb := engine.GetComponent[*components.Rigidbody](w.Scene.GameObjects[0])
	require.NotNil(t, rb)
	assert.Equal(t, components.ShapeBox, rb.Shape, "Plane2D is only legal on terrain")
}

func TestSceneLoadSkipsUnknownPrimitive(t *testing.T) {
	scene := `
[[objects]]
name = "Weird"
[objects.transform]
scale = [1.0, 1.0, 1.0]
[objects.primitive_data]
type = "dodecahedron"

[[objects]]
name = "Box"
[objects.transform]
scale = [1.0, 1.0, 1.0]
[objects.primitive_data]
type = "cube"
`
	path := filepath.Join(t.TempDir(), "unknown"+SceneFileExt)
	require.NoError(t, os.WriteFile(path, []byte(scene), 0644))

	w := New()
	_, err := w.LoadScene(path)
	require.NoError(t, err)

	require.Len(t, w.Scene.GameObjects, 1)
	assert.Equal(t, "Box", w.Scene.GameObjects[0].Name)
}
