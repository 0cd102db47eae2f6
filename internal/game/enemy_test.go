package game

import (
	"testing"

	"forge3d/internal/components"
	"forge3d/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnemy(pos rl.Vector3) (*engine.GameObject, *components.Chaser) {
	obj := engine.NewGameObject("Enemy")
	obj.Transform.Position = pos
	rb := components.NewRigidbody()
	rb.Shape = components.ShapeCapsule
	rb.Mass = 1
	obj.AddComponent(rb)
	ch := components.NewChaser()
	obj.AddComponent(ch)
	return obj, ch
}

func TestChaserWalksTowardTarget(t *testing.T) {
	enemy, ch := newEnemy(rl.Vector3{Y: 1})
	pw := walkerWorld(t, enemy)

	stepChaser(enemy, ch, pw, rl.Vector3{X: 10, Y: 1}, 1.0/60.0)

	body := pw.BodyByUID(enemy.UID)
	assert.InDelta(t, ch.Speed*chaseForceScale, body.Velocity.X, 1e-5)
	assert.InDelta(t, 0, body.Velocity.Z, 1e-5)
	assert.InDelta(t, math32.Pi/2, enemy.Transform.Rotation.Y, 1e-5, "faces the walk direction")
}

func TestChaserVelocityMirroredIntoRigidbody(t *testing.T) {
	enemy, ch := newEnemy(rl.Vector3{Y: 1})
	pw := walkerWorld(t, enemy)

	stepChaser(enemy, ch, pw, rl.Vector3{Z: -10, Y: 1}, 1.0/60.0)

	rb := engine.GetComponent[*components.Rigidbody](enemy)
	body := pw.BodyByUID(enemy.UID)
	assert.Equal(t, body.Velocity.X, rb.Velocity.X)
	assert.Equal(t, body.Velocity.Z, rb.Velocity.Z)
	assert.InDelta(t, -ch.Speed*chaseForceScale, body.Velocity.Z, 1e-5)
}

func TestChaserNeverLaunchesUpward(t *testing.T) {
	// A ground bounce leaves a rigid body with upward velocity; the chase
	// step zeroes it so enemies stay on their feet.
	enemy, ch := newEnemy(rl.Vector3{Y: 1})
	pw := walkerWorld(t, enemy)
	body := pw.BodyByUID(enemy.UID)
	body.Velocity = rl.Vector3{Y: 2.7}

	stepChaser(enemy, ch, pw, rl.Vector3{X: 10, Y: 1}, 1.0/60.0)

	rb := engine.GetComponent[*components.Rigidbody](enemy)
	assert.Equal(t, float32(0), body.Velocity.Y)
	assert.Equal(t, float32(0), rb.Velocity.Y)
}

func TestChaserKeepsFallingVelocity(t *testing.T) {
	enemy, ch := newEnemy(rl.Vector3{Y: 5})
	pw := walkerWorld(t, enemy)
	body := pw.BodyByUID(enemy.UID)
	body.Velocity = rl.Vector3{Y: -6}

	stepChaser(enemy, ch, pw, rl.Vector3{X: 10, Y: 5}, 1.0/60.0)

	assert.Equal(t, float32(-6), body.Velocity.Y)
}

func TestChaserStopsInsideStopDistance(t *testing.T) {
	enemy, ch := newEnemy(rl.Vector3{Y: 1})
	pw := walkerWorld(t, enemy)
	body := pw.BodyByUID(enemy.UID)
	body.Velocity = rl.Vector3{X: 2, Z: 2}

	stepChaser(enemy, ch, pw, rl.Vector3{X: 0.3, Y: 1}, 1.0/60.0)

	assert.Equal(t, float32(0), body.Velocity.X)
	assert.Equal(t, float32(0), body.Velocity.Z)
}

func TestChaserStoppedByStaticObstacle(t *testing.T) {
	enemy, ch := newEnemy(rl.Vector3{Y: 1})
	wall := staticBox("wall", rl.Vector3{X: 0.7, Y: 1}, rl.Vector3{X: 1, Y: 2, Z: 1})
	pw := walkerWorld(t, enemy, wall)

	stepChaser(enemy, ch, pw, rl.Vector3{X: 10, Y: 1}, 1.0/60.0)

	body := pw.BodyByUID(enemy.UID)
	assert.Equal(t, float32(0), body.Velocity.X)
	assert.Equal(t, float32(0), body.Velocity.Z)
}

func TestChaserKeepsPushingThroughRigidBodies(t *testing.T) {
	// A rigid crate in the path does not stop the chase; the stepper
	// resolves the contact.
	enemy, ch := newEnemy(rl.Vector3{Y: 1})
	crate := rigidBox("crate", 1, rl.Vector3{X: 0.7, Y: 0.5}, rl.Vector3{X: 1, Y: 1, Z: 1})
	pw := walkerWorld(t, enemy, crate)

	stepChaser(enemy, ch, pw, rl.Vector3{X: 10, Y: 1}, 1.0/60.0)

	body := pw.BodyByUID(enemy.UID)
	assert.InDelta(t, ch.Speed*chaseForceScale, body.Velocity.X, 1e-5)
}

func TestChaserWithoutBodyIsIgnored(t *testing.T) {
	enemy, ch := newEnemy(rl.Vector3{Y: 1})
	pw := walkerWorld(t) // enemy never registered

	require.NotPanics(t, func() {
		stepChaser(enemy, ch, pw, rl.Vector3{X: 10}, 1.0/60.0)
	})
}
