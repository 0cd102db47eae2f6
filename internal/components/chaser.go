package components

import (
	"forge3d/internal/engine"
)

// Chaser marks an object as an AI enemy that walks toward the player during
// play mode. Movement itself happens in the game loop, which has access to
// the physics world for collision checks.
type Chaser struct {
	engine.BaseComponent
	Speed        float32 // horizontal chase speed
	StopDistance float32 // no movement inside this range
}

func NewChaser() *Chaser {
	return &Chaser{
		Speed:        1.0,
		StopDistance: 0.5,
	}
}
