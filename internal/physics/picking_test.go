package physics

import (
	"testing"

	"forge3d/internal/components"
	"forge3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cubeGeometry is a 2x2x2 cube around the origin, 12 triangles.
func cubeGeometry() *engine.Geometry {
	return &engine.Geometry{
		Vertices: []rl.Vector3{
			{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1},
			{X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1},
			{X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
		},
		Faces: [][3]int32{
			{0, 2, 1}, {0, 3, 2}, // back
			{4, 5, 6}, {4, 6, 7}, // front
			{0, 1, 5}, {0, 5, 4}, // bottom
			{3, 7, 6}, {3, 6, 2}, // top
			{0, 4, 7}, {0, 7, 3}, // left
			{1, 2, 6}, {1, 6, 5}, // right
		},
	}
}

func meshObject(name string, pos rl.Vector3) *engine.GameObject {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos
	obj.AddComponent(&components.MeshRenderer{Geometry: cubeGeometry()})
	return obj
}

func TestPickClosestHitsCubeFrontFace(t *testing.T) {
	cube := meshObject("cube", rl.Vector3{})
	ray := Ray{Origin: rl.Vector3{Z: 5}, Direction: rl.Vector3{Z: -1}}

	idx, hit, ok := PickClosest(ray, []*engine.GameObject{cube})

	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 4.0, hit.Distance, 1e-4)
	assert.InDelta(t, 1.0, hit.Point.Z, 1e-4)
	assert.Same(t, cube, hit.GameObject)
}

func TestPickClosestPrefersNearerObject(t *testing.T) {
	far := meshObject("far", rl.Vector3{Z: -10})
	near := meshObject("near", rl.Vector3{})
	ray := Ray{Origin: rl.Vector3{Z: 5}, Direction: rl.Vector3{Z: -1}}

	idx, hit, ok := PickClosest(ray, []*engine.GameObject{far, near})

	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Same(t, near, hit.GameObject)
}

func TestPickClosestTieGoesToLowestIndex(t *testing.T) {
	a := meshObject("a", rl.Vector3{})
	b := meshObject("b", rl.Vector3{})
	ray := Ray{Origin: rl.Vector3{Z: 5}, Direction: rl.Vector3{Z: -1}}

	idx, _, ok := PickClosest(ray, []*engine.GameObject{a, b})

	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestPickClosestSkipsInactiveAndEmpty(t *testing.T) {
	hidden := meshObject("hidden", rl.Vector3{})
	hidden.Active = false
	bare := engine.NewGameObject("bare")
	ray := Ray{Origin: rl.Vector3{Z: 5}, Direction: rl.Vector3{Z: -1}}

	idx, _, ok := PickClosest(ray, []*engine.GameObject{hidden, bare, nil})

	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

func TestPickClosestMiss(t *testing.T) {
	cube := meshObject("cube", rl.Vector3{})
	ray := Ray{Origin: rl.Vector3{X: 10, Z: 5}, Direction: rl.Vector3{Z: -1}}

	_, _, ok := PickClosest(ray, []*engine.GameObject{cube})

	assert.False(t, ok)
}

func TestPickClosestRespectsScale(t *testing.T) {
	cube := meshObject("cube", rl.Vector3{})
	cube.Transform.Scale = rl.Vector3{X: 3, Y: 3, Z: 3}
	ray := Ray{Origin: rl.Vector3{Z: 5}, Direction: rl.Vector3{Z: -1}}

	_, hit, ok := PickClosest(ray, []*engine.GameObject{cube})

	require.True(t, ok)
	assert.InDelta(t, 2.0, hit.Distance, 1e-4, "scaled cube face sits at z=3")
}

func TestScreenToWorldRayCenterLooksAlongCamera(t *testing.T) {
	view := rl.MatrixLookAt(rl.Vector3{Z: 10}, rl.Vector3{}, rl.Vector3{Y: 1})
	proj := rl.MatrixPerspective(70*rl.Deg2rad, 16.0/9.0, 0.1, 1000)

	ray := ScreenToWorldRay(640, 360, view, proj, 1280, 720)

	assert.InDelta(t, 0.0, ray.Direction.X, 1e-4)
	assert.InDelta(t, 0.0, ray.Direction.Y, 1e-4)
	assert.InDelta(t, -1.0, ray.Direction.Z, 1e-4)
	assert.InDelta(t, 0.0, ray.Origin.X, 1e-3)
	assert.InDelta(t, 0.0, ray.Origin.Y, 1e-3)
}

func TestScreenToWorldRayPicksSceneObject(t *testing.T) {
	cube := meshObject("cube", rl.Vector3{})
	view := rl.MatrixLookAt(rl.Vector3{Z: 5}, rl.Vector3{}, rl.Vector3{Y: 1})
	proj := rl.MatrixPerspective(70*rl.Deg2rad, 16.0/9.0, 0.1, 1000)

	ray := ScreenToWorldRay(640, 360, view, proj, 1280, 720)
	_, hit, ok := PickClosest(ray, []*engine.GameObject{cube})

	require.True(t, ok)
	assert.InDelta(t, 1.0, hit.Point.Z, 1e-2)
}
