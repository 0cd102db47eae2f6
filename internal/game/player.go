package game

import (
	"forge3d/internal/components"
	"forge3d/internal/engine"
	"forge3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// playerPushMass is the effective mass used when the player shoves a
// RigidBody out of the way.
const playerPushMass float32 = 70

// playerStepHeight is how far the player can walk up without jumping.
const playerStepHeight float32 = 0.5

// newPlayer builds the play-mode player: an invisible capsule of input
// state whose position is the eye point.
func newPlayer(eye rl.Vector3) *engine.GameObject {
	obj := engine.NewGameObject("Player")
	obj.Transform.Position = eye
	obj.AddComponent(components.NewFPSController())
	return obj
}

// stepPlayer advances the player one frame: gravity and jumping, then
// camera-relative horizontal movement with axis-separated sliding, then
// ground snapping. Blocked movement into a RigidBody becomes a push.
func stepPlayer(obj *engine.GameObject, fps *components.FPSController, pw *physics.World, dt float32) {
	pos := obj.Transform.Position
	feet := pos.Y - fps.EyeHeight

	// Vertical motion.
	fps.Velocity.Y -= fps.Gravity * dt
	if fps.JumpPressed && fps.Grounded {
		fps.Velocity.Y = fps.JumpSpeed
		fps.Grounded = false
	}

	// Horizontal intent.
	move := rl.Vector3{
		X: fps.WishDir.X * fps.MoveSpeed * dt,
		Z: fps.WishDir.Z * fps.MoveSpeed * dt,
	}

	waist := rl.Vector3{X: pos.X, Y: feet + playerStepHeight, Z: pos.Z}
	stepY := feet + playerStepHeight

	if move.X != 0 || move.Z != 0 {
		target := rl.Vector3{X: waist.X + move.X, Y: waist.Y, Z: waist.Z + move.Z}
		hit, blocked := pw.BlockedAt(target, fps.Radius, stepY, obj.UID)
		if !blocked {
			pos.X += move.X
			pos.Z += move.Z
		} else {
			pw.PushBody(hit, move, playerPushMass)

			// Slide: keep whichever single axis is still free,
			// X first then Z.
			xOnly := rl.Vector3{X: waist.X + move.X, Y: waist.Y, Z: waist.Z}
			if _, b := pw.BlockedAt(xOnly, fps.Radius, stepY, obj.UID); !b {
				pos.X += move.X
			} else {
				zOnly := rl.Vector3{X: waist.X, Y: waist.Y, Z: waist.Z + move.Z}
				if _, b := pw.BlockedAt(zOnly, fps.Radius, stepY, obj.UID); !b {
					pos.Z += move.Z
				}
			}
		}
	}

	// Integrate vertical and snap to the highest static surface under the
	// feet.
	pos.Y += fps.Velocity.Y * dt
	feet = pos.Y - fps.EyeHeight
	ground := pw.GroundHeightAt(rl.Vector3{X: pos.X, Y: feet + playerStepHeight, Z: pos.Z}, fps.Radius, feet+playerStepHeight)
	if feet <= ground {
		pos.Y = ground + fps.EyeHeight
		if fps.Velocity.Y < 0 {
			fps.Velocity.Y = 0
		}
		fps.Grounded = true
	} else {
		fps.Grounded = false
	}

	obj.Transform.Position = pos
}
