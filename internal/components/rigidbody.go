package components

import (
	"forge3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PhysicsKind selects how the stepper treats an object.
type PhysicsKind int

const (
	KindNone PhysicsKind = iota // not simulated, not collidable
	KindStatic
	KindRigidBody
)

func (k PhysicsKind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindRigidBody:
		return "rigidbody"
	default:
		return "none"
	}
}

// ParseKind maps a scene-file string to a PhysicsKind. Unknown values
// come back as KindNone.
func ParseKind(s string) PhysicsKind {
	switch s {
	case "static":
		return KindStatic
	case "rigidbody":
		return KindRigidBody
	default:
		return KindNone
	}
}

// PhysicsShape selects the bounding approximation used for collision.
type PhysicsShape int

const (
	ShapeBox PhysicsShape = iota
	ShapeSphere
	ShapeCylinder
	ShapeCapsule
	ShapeCone // collides as a box
	ShapeMesh
	ShapePlane2D // terrain only
)

func (s PhysicsShape) String() string {
	switch s {
	case ShapeSphere:
		return "sphere"
	case ShapeCylinder:
		return "cylinder"
	case ShapeCapsule:
		return "capsule"
	case ShapeCone:
		return "cone"
	case ShapeMesh:
		return "mesh"
	case ShapePlane2D:
		return "2dplane"
	default:
		return "box"
	}
}

// ParseShape maps a scene-file string to a PhysicsShape. Unknown or legacy
// shape names fall back to box behavior instead of failing the load.
func ParseShape(s string) PhysicsShape {
	switch s {
	case "sphere":
		return ShapeSphere
	case "cylinder":
		return ShapeCylinder
	case "capsule":
		return ShapeCapsule
	case "cone":
		return ShapeCone
	case "mesh":
		return ShapeMesh
	case "2dplane":
		return ShapePlane2D
	default:
		return ShapeBox
	}
}

// Rigidbody carries the physics settings of a scene object. Velocity and
// angular velocity live here between steps; the stepper rebuilds its body
// arena from these components when simulation starts.
type Rigidbody struct {
	engine.BaseComponent
	Kind            PhysicsKind
	Shape           PhysicsShape
	Mass            float32 // >= 0, meaningful only when Kind != KindNone
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3 // radians per second on each axis
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Kind:  KindRigidBody,
		Shape: ShapeBox,
		Mass:  1.0,
	}
}

func NewStaticBody(shape PhysicsShape) *Rigidbody {
	return &Rigidbody{
		Kind:  KindStatic,
		Shape: shape,
		Mass:  0,
	}
}

// Stop zeroes all motion, used when simulation state is restored.
func (r *Rigidbody) Stop() {
	r.Velocity = rl.Vector3{}
	r.AngularVelocity = rl.Vector3{}
}
