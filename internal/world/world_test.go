package world

import (
	"testing"

	"forge3d/internal/components"
	"forge3d/internal/engine"
	"forge3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPrimitiveDefaults(t *testing.T) {
	w := New()

	obj, err := w.AddPrimitive(PrimitiveSphere)
	require.NoError(t, err)

	assert.Contains(t, obj.Name, "Sphere")
	assert.Same(t, w.Scene, obj.Scene)

	rb := engine.GetComponent[*components.Rigidbody](obj)
	require.NotNil(t, rb)
	assert.Equal(t, components.KindNone, rb.Kind, "new primitives start without physics")
	assert.Equal(t, components.ShapeSphere, rb.Shape)

	_, err = w.AddPrimitive(PrimitiveKind("teapot"))
	assert.Error(t, err)
}

func TestDuplicateOffsetsAndSharesTexture(t *testing.T) {
	w := New()
	src, err := w.AddPrimitive(PrimitiveCube)
	require.NoError(t, err)
	src.Transform.Position = rl.Vector3{X: 4, Y: 2}
	srcMr := engine.GetComponent[*components.MeshRenderer](src)
	srcMr.Texture = rl.Texture2D{ID: 7}
	srcMr.HasTexture = true
	srcRb := engine.GetComponent[*components.Rigidbody](src)
	srcRb.Kind = components.KindRigidBody
	srcRb.Mass = 2

	dup, err := w.Duplicate(src)
	require.NoError(t, err)

	assert.NotEqual(t, src.UID, dup.UID)
	assert.Equal(t, rl.Vector3{X: 5, Y: 2}, dup.Transform.Position)

	dupMr := engine.GetComponent[*components.MeshRenderer](dup)
	require.NotNil(t, dupMr)
	assert.Equal(t, srcMr.Texture.ID, dupMr.Texture.ID, "texture handle is shared")
	require.NotNil(t, dupMr.Geometry)
	assert.NotSame(t, srcMr.Geometry, dupMr.Geometry, "geometry is copied")

	dupRb := engine.GetComponent[*components.Rigidbody](dup)
	require.NotNil(t, dupRb)
	assert.Equal(t, components.KindRigidBody, dupRb.Kind)
	assert.Equal(t, float32(2), dupRb.Mass)
	assert.Equal(t, rl.Vector3{}, dupRb.Velocity, "motion state is not copied")

	_, err = w.Duplicate(nil)
	assert.Error(t, err)
}

func TestDeleteRemovesFromScene(t *testing.T) {
	w := New()
	obj, err := w.AddPrimitive(PrimitiveCube)
	require.NoError(t, err)

	w.Delete(obj)

	assert.Empty(t, w.Scene.GameObjects)
	assert.Nil(t, obj.Scene)
	w.Delete(nil) // no-op
}

func TestPickReturnsSceneObject(t *testing.T) {
	w := New()
	obj, err := w.AddPrimitive(PrimitiveCube)
	require.NoError(t, err)

	ray := physics.Ray{Origin: rl.Vector3{Z: 5}, Direction: rl.Vector3{Z: -1}}
	hitObj, hit, ok := w.Pick(ray)

	require.True(t, ok)
	assert.Same(t, obj, hitObj)
	assert.InDelta(t, 4.0, hit.Distance, 1e-4)
}

func TestSnapshotRestoreAfterSimulation(t *testing.T) {
	w := New()
	ball, err := w.AddPrimitive(PrimitiveSphere)
	require.NoError(t, err)
	ball.Transform.Position = rl.Vector3{Y: 5}
	rb := engine.GetComponent[*components.Rigidbody](ball)
	rb.Kind = components.KindRigidBody

	cam := CameraRecord{Position: [3]float32{1, 2, 3}, Yaw: 0.4}
	snap, err := w.TakeSnapshot(cam)
	require.NoError(t, err)

	w.Physics.Rebuild(w.Scene)
	for i := 0; i < 60; i++ {
		w.Physics.Step(1.0 / 60.0)
	}
	require.NotEqual(t, float32(5), ball.Transform.Position.Y, "simulation should have moved the ball")

	restored := w.RestoreSnapshot(snap)

	assert.Equal(t, cam, restored)
	assert.Equal(t, rl.Vector3{Y: 5}, ball.Transform.Position)
	assert.Equal(t, rl.Vector3{}, rb.Velocity)
	assert.Empty(t, w.Physics.Bodies, "physics arena is discarded")
}

func TestSnapshotIgnoresObjectsSpawnedDuringPlay(t *testing.T) {
	w := New()
	snap, err := w.TakeSnapshot(CameraRecord{})
	require.NoError(t, err)

	enemy := w.SpawnEnemy()
	w.RestoreSnapshot(snap)

	assert.Equal(t, rl.Vector3{X: 5, Y: 1, Z: 5}, enemy.Transform.Position)
}

func TestFrustumCullsBehindCamera(t *testing.T) {
	view := rl.MatrixLookAt(rl.Vector3{Z: 10}, rl.Vector3{}, rl.Vector3{Y: 1})
	proj := rl.MatrixPerspective(70*rl.Deg2rad, 16.0/9.0, 0.1, 1000)
	f := ExtractFrustum(view, proj)

	assert.True(t, f.ContainsPoint(rl.Vector3{}))
	assert.False(t, f.ContainsPoint(rl.Vector3{Z: 20}), "behind the camera")
	assert.True(t, f.ContainsSphere(rl.Vector3{X: 50}, 60), "large sphere overlaps")
	assert.False(t, f.ContainsSphere(rl.Vector3{Z: 30}, 5))
}
