package components

import (
	"forge3d/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// FPSController reads look/move/jump input for the play-mode player. It only
// produces intent (look angles, wish direction, jump edge); the game loop
// applies gravity, collision sliding and ground snapping, since those need
// the physics world.
type FPSController struct {
	engine.BaseComponent
	Yaw       float32 // radians
	Pitch     float32 // radians, clamped to +-89 degrees
	LookSpeed float32
	MoveSpeed float32
	Gravity   float32
	JumpSpeed float32
	EyeHeight float32
	Radius    float32 // horizontal collision radius

	Velocity rl.Vector3
	Grounded bool

	// Set by Update each frame, consumed by the game loop.
	WishDir     rl.Vector3 // normalized XZ movement intent
	JumpPressed bool
}

const maxPitch = 89 * math32.Pi / 180

func NewFPSController() *FPSController {
	return &FPSController{
		LookSpeed: 0.1,
		MoveSpeed: 5.0,
		Gravity:   15.0,
		JumpSpeed: 8.0,
		EyeHeight: 1.8,
		Radius:    0.3,
	}
}

func (f *FPSController) Update(deltaTime float32) {
	// Mouse look
	mouseDelta := rl.GetMouseDelta()
	f.Yaw += mouseDelta.X * f.LookSpeed * rl.Deg2rad
	f.Pitch -= mouseDelta.Y * f.LookSpeed * rl.Deg2rad

	if f.Pitch > maxPitch {
		f.Pitch = maxPitch
	}
	if f.Pitch < -maxPitch {
		f.Pitch = -maxPitch
	}

	forward, right := f.getDirections()

	var moveDir rl.Vector3
	if rl.IsKeyDown(rl.KeyW) {
		moveDir.X += forward.X
		moveDir.Z += forward.Z
	}
	if rl.IsKeyDown(rl.KeyS) {
		moveDir.X -= forward.X
		moveDir.Z -= forward.Z
	}
	if rl.IsKeyDown(rl.KeyA) {
		moveDir.X += right.X
		moveDir.Z += right.Z
	}
	if rl.IsKeyDown(rl.KeyD) {
		moveDir.X -= right.X
		moveDir.Z -= right.Z
	}

	// Normalize diagonal movement
	moveLen := math32.Sqrt(moveDir.X*moveDir.X + moveDir.Z*moveDir.Z)
	if moveLen > 0 {
		moveDir.X /= moveLen
		moveDir.Z /= moveLen
	}

	f.WishDir = moveDir
	f.JumpPressed = rl.IsKeyPressed(rl.KeySpace)
}

func (f *FPSController) getDirections() (forward, right rl.Vector3) {
	forward = rl.Vector3{
		X: math32.Cos(f.Yaw),
		Y: 0,
		Z: math32.Sin(f.Yaw),
	}
	right = rl.Vector3{
		X: math32.Sin(f.Yaw),
		Y: 0,
		Z: -math32.Cos(f.Yaw),
	}
	return
}

// GetLookDirection returns the full 3D view direction.
func (f *FPSController) GetLookDirection() rl.Vector3 {
	return rl.Vector3{
		X: math32.Cos(f.Yaw) * math32.Cos(f.Pitch),
		Y: math32.Sin(f.Pitch),
		Z: math32.Sin(f.Yaw) * math32.Cos(f.Pitch),
	}
}

// Camera builds the raylib camera at the player's eye position.
func (f *FPSController) Camera() rl.Camera3D {
	g := f.GetGameObject()
	pos := g.Transform.Position
	return rl.Camera3D{
		Position:   pos,
		Target:     rl.Vector3Add(pos, f.GetLookDirection()),
		Up:         rl.Vector3{Y: 1},
		Fovy:       70,
		Projection: rl.CameraPerspective,
	}
}
