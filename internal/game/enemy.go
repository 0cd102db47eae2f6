package game

import (
	"forge3d/internal/components"
	"forge3d/internal/engine"
	"forge3d/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// chaseForceScale converts chase speed to the horizontal velocity written
// into the body each frame.
const chaseForceScale float32 = 2.0

// stepChaser points one enemy at the player: horizontal velocity toward the
// target, vertical motion left to the stepper, yaw facing the walk
// direction. The enemy stops inside its stop distance and when its next
// position would run into a static obstacle.
func stepChaser(obj *engine.GameObject, ch *components.Chaser, pw *physics.World, target rl.Vector3, dt float32) {
	body := pw.BodyByUID(obj.UID)
	if body == nil {
		return
	}
	pos := obj.Transform.Position

	dx := target.X - pos.X
	dz := target.Z - pos.Z
	dist := math32.Sqrt(dx*dx + dz*dz)

	if dist < ch.StopDistance || dist < 1e-6 {
		setHorizontalVelocity(obj, body, 0, 0)
		return
	}

	vx := dx / dist * ch.Speed * chaseForceScale
	vz := dz / dist * ch.Speed * chaseForceScale

	// Look ahead one frame; statics stop the chase, rigid bodies get
	// bumped by the stepper as usual.
	predicted := rl.Vector3{X: pos.X + vx*dt, Y: pos.Y, Z: pos.Z + vz*dt}
	if hit, blocked := pw.BlockedAt(predicted, body.Bounds.Radius, pos.Y-0.4, obj.UID); blocked {
		if hit.Kind == components.KindStatic {
			setHorizontalVelocity(obj, body, 0, 0)
			return
		}
	}

	setHorizontalVelocity(obj, body, vx, vz)
	obj.Transform.Rotation.Y = math32.Atan2(dx, dz)
}

func setHorizontalVelocity(obj *engine.GameObject, body *physics.Body, vx, vz float32) {
	body.Velocity.X = vx
	body.Velocity.Z = vz
	// Enemies never fly: falling is allowed, ground bounces are not.
	if body.Velocity.Y > 0 {
		body.Velocity.Y = 0
	}
	if rb := engine.GetComponent[*components.Rigidbody](obj); rb != nil {
		rb.Velocity = body.Velocity
	}
}
